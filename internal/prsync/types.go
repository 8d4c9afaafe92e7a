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

package prsync

import "time"

// PullRequest is the normalized descriptor written to disk. Field order is
// the key order of the YAML document.
type PullRequest struct {
	Number    int          `yaml:"number"`
	Title     string       `yaml:"title"`
	State     string       `yaml:"state"`
	Author    string       `yaml:"author"`
	Head      string       `yaml:"head"`
	Base      string       `yaml:"base"`
	Labels    []string     `yaml:"labels"`
	CreatedAt time.Time    `yaml:"created_at"`
	UpdatedAt time.Time    `yaml:"updated_at"`
	MergedAt  *time.Time   `yaml:"merged_at,omitempty"`
	Additions int          `yaml:"additions"`
	Deletions int          `yaml:"deletions"`
	IsDraft   bool         `yaml:"is_draft"`
	Files     []FileChange `yaml:"files"`
	Body      *string      `yaml:"body,omitempty"`
}

// FileChange is one file touched by a pull request.
type FileChange struct {
	Path      string `yaml:"path"`
	Additions int    `yaml:"additions"`
	Deletions int    `yaml:"deletions"`
}

// Options selects what a sync fetches.
type Options struct {
	// Repo is OWNER/REPO, or empty for the repository gh infers.
	Repo string

	// Limit bounds the number of pull requests fetched. Must be positive.
	Limit int

	// IncludeClosed fetches every state instead of open only.
	IncludeClosed bool
}
