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

// Package main implements the gh-pr-sync command-line interface.
// This tool mirrors the pull requests of a GitHub repository into a local
// directory, one YAML file per pull request, using the GitHub CLI (gh) for
// access and authentication.
//
// The CLI supports:
//   - Syncing open pull requests (default behavior)
//   - Syncing every state with the --all flag
//   - Targeting another repository with --repo
//   - Configuration files and PRSYNC_* environment variables
//
// Usage:
//
//	gh-pr-sync pull [flags]
//
// Example:
//
//	gh auth login
//	gh-pr-sync pull --repo cli/cli --limit 20
//
// Each run replaces the *.yaml files in .prs/ with the current result.
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: gh reported an authentication, not-found or rate limit failure
//   - 3: gh reported a network error
//   - 127: gh could not be started
package main
