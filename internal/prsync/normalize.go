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

import (
	"strings"
	"time"

	syncerrors "github.com/sirseerhq/gh-pr-sync/internal/errors"
	"github.com/sirseerhq/gh-pr-sync/internal/gh"
)

// Field names reported in FieldParseError.
const (
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
	FieldMergedAt  = "merged_at"
)

// Normalize converts a raw gh record into the descriptor shape. Absent
// author, labels and files become empty values; an absent or empty body and
// an absent merge time are left nil so they are omitted from output.
func Normalize(raw gh.PullRequest) (PullRequest, error) {
	createdAt, err := parseTimestamp(raw.Number, FieldCreatedAt, raw.CreatedAt)
	if err != nil {
		return PullRequest{}, err
	}
	updatedAt, err := parseTimestamp(raw.Number, FieldUpdatedAt, raw.UpdatedAt)
	if err != nil {
		return PullRequest{}, err
	}

	var mergedAt *time.Time
	if raw.MergedAt != nil && *raw.MergedAt != "" {
		t, err := parseTimestamp(raw.Number, FieldMergedAt, *raw.MergedAt)
		if err != nil {
			return PullRequest{}, err
		}
		// Some gh versions report unmerged pull requests as the zero instant.
		if !t.IsZero() {
			mergedAt = &t
		}
	}

	pr := PullRequest{
		Number:    raw.Number,
		Title:     raw.Title,
		State:     strings.ToLower(raw.State),
		Head:      raw.HeadRefName,
		Base:      raw.BaseRefName,
		Labels:    []string{},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		MergedAt:  mergedAt,
		Additions: raw.Additions,
		Deletions: raw.Deletions,
		IsDraft:   raw.IsDraft,
		Files:     []FileChange{},
	}

	if raw.Author != nil {
		pr.Author = raw.Author.Login
	}
	if raw.Labels != nil {
		for _, l := range *raw.Labels {
			pr.Labels = append(pr.Labels, l.Name)
		}
	}
	if raw.Files != nil {
		for _, f := range *raw.Files {
			pr.Files = append(pr.Files, FileChange{
				Path:      f.Path,
				Additions: f.Additions,
				Deletions: f.Deletions,
			})
		}
	}
	if raw.Body != nil && *raw.Body != "" {
		body := *raw.Body
		pr.Body = &body
	}

	return pr, nil
}

func parseTimestamp(number int, field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, &syncerrors.FieldParseError{Number: number, Field: field, Value: value, Err: err}
	}
	return t.UTC(), nil
}
