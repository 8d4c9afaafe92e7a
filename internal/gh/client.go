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

package gh

import "context"

// Client defines the interface for listing pull requests through gh.
// This interface allows the sync pipeline to be tested without a subprocess.
type Client interface {
	// ListPullRequests runs the list query described by opts and returns the
	// raw JSON payload gh wrote to stdout. Failures are typed errors from
	// the internal errors package.
	ListPullRequests(ctx context.Context, opts ListOptions) ([]byte, error)
}
