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

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	syncerrors "github.com/sirseerhq/gh-pr-sync/internal/errors"
)

// PullRequest is a single element of the `gh pr list --json` payload.
// Optional fields are pointers so that a missing or null value stays
// distinguishable from an empty one.
type PullRequest struct {
	Number      int        `json:"number"`
	Title       string     `json:"title"`
	State       string     `json:"state"`
	Author      *Author    `json:"author"`
	HeadRefName string     `json:"headRefName"`
	BaseRefName string     `json:"baseRefName"`
	Labels      *LabelList `json:"labels"`
	Files       *FileList  `json:"files"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
	MergedAt    *string    `json:"mergedAt"`
	Body        *string    `json:"body"`
	Additions   int        `json:"additions"`
	Deletions   int        `json:"deletions"`
	IsDraft     bool       `json:"isDraft"`
}

// Author is the pull request author as reported by gh.
type Author struct {
	Login string `json:"login"`
}

// Label is a pull request label. gh also reports id, color and
// description, which are not kept.
type Label struct {
	Name string `json:"name"`
}

// File is one changed file of a pull request.
type File struct {
	Path      string `json:"path"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// LabelList accepts labels either as a JSON array or as a GraphQL
// connection object ({"nodes": [...]}).
type LabelList []Label

// UnmarshalJSON implements json.Unmarshaler.
func (l *LabelList) UnmarshalJSON(data []byte) error {
	return unmarshalConnection(data, (*[]Label)(l))
}

// FileList accepts files in the same two shapes as LabelList.
type FileList []File

// UnmarshalJSON implements json.Unmarshaler.
func (f *FileList) UnmarshalJSON(data []byte) error {
	return unmarshalConnection(data, (*[]File)(f))
}

func unmarshalConnection[T any](data []byte, out *[]T) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var conn struct {
			Nodes []T `json:"nodes"`
		}
		if err := json.Unmarshal(trimmed, &conn); err != nil {
			return err
		}
		*out = conn.Nodes
		return nil
	}
	return json.Unmarshal(trimmed, out)
}

// ListOptions configures a `gh pr list` query.
type ListOptions struct {
	// Repo overrides the repository in OWNER/REPO form. Empty means the
	// repository gh resolves from the current directory.
	Repo string

	// Limit is the maximum number of pull requests gh returns.
	Limit int

	// IncludeClosed requests every state instead of open only.
	IncludeClosed bool
}

// State returns the value passed to gh's --state flag.
func (o ListOptions) State() string {
	if o.IncludeClosed {
		return "all"
	}
	return "open"
}

// requiredFields must be present and non-null on every record.
var requiredFields = []string{
	"number",
	"title",
	"state",
	"headRefName",
	"baseRefName",
	"createdAt",
	"updatedAt",
	"additions",
	"deletions",
}

// DecodePullRequests parses a gh payload. Anything other than a JSON array
// of pull request objects carrying every required field is a
// ResponseParseError.
func DecodePullRequests(data []byte) ([]PullRequest, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &syncerrors.ResponseParseError{Err: errors.New("expected a JSON array of pull requests")}
	}

	var prs []PullRequest
	if err := json.Unmarshal(trimmed, &prs); err != nil {
		return nil, &syncerrors.ResponseParseError{Err: err}
	}
	if err := checkRequiredFields(trimmed); err != nil {
		return nil, &syncerrors.ResponseParseError{Err: err}
	}
	return prs, nil
}

func checkRequiredFields(data []byte) error {
	var records []map[string]json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}
	for i, record := range records {
		if record == nil {
			return fmt.Errorf("pull request at index %d is null", i)
		}
		for _, field := range requiredFields {
			raw, ok := record[field]
			if !ok || string(bytes.TrimSpace(raw)) == "null" {
				return fmt.Errorf("pull request at index %d: missing required field %q", i, field)
			}
		}
	}
	return nil
}
