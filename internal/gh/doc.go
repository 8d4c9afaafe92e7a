// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gh is the adapter between gh-pr-sync and the GitHub CLI. It owns
// the argument protocol for `gh pr list`, the raw JSON shape gh emits, and
// the classification of subprocess failures into typed errors.
//
// The package includes:
//   - A Client interface returning the raw gh payload
//   - CLIClient, which runs the gh binary as a subprocess
//   - MockClient for testing code that depends on Client
//   - Raw pull request types and DecodePullRequests
//
// Basic usage:
//
//	client := gh.NewCLIClient("gh")
//	data, err := client.ListPullRequests(ctx, gh.ListOptions{Limit: 100})
//	if err != nil {
//	    // Handle error
//	}
//	prs, err := gh.DecodePullRequests(data)
package gh
