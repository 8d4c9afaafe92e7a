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

package testutil

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"
)

// PullRequestBuilder provides a fluent API for creating gh pr list records
type PullRequestBuilder struct {
	number      int
	title       string
	state       string
	body        *string
	author      string
	head        string
	base        string
	createdAt   string
	updatedAt   string
	mergedAt    *string
	additions   int
	deletions   int
	isDraft     bool
	labels      []string
	files       []map[string]interface{}
	connections bool
}

// NewPullRequestBuilder creates a new PR builder with defaults
func NewPullRequestBuilder(number int) *PullRequestBuilder {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, number%365)
	return &PullRequestBuilder{
		number:    number,
		title:     fmt.Sprintf("PR %d", number),
		state:     "OPEN",
		author:    fmt.Sprintf("user%d", number),
		head:      fmt.Sprintf("feature-%d", number),
		base:      "main",
		createdAt: created.Format(time.RFC3339),
		updatedAt: created.Add(time.Hour).Format(time.RFC3339),
		additions: 10,
		deletions: 5,
	}
}

// WithTitle sets the PR title
func (b *PullRequestBuilder) WithTitle(title string) *PullRequestBuilder {
	b.title = title
	return b
}

// WithState sets the PR state (OPEN, CLOSED, MERGED)
func (b *PullRequestBuilder) WithState(state string) *PullRequestBuilder {
	b.state = state
	return b
}

// WithBody sets the PR body/description
func (b *PullRequestBuilder) WithBody(body string) *PullRequestBuilder {
	b.body = &body
	return b
}

// WithAuthor sets the PR author. An empty login drops the author object.
func (b *PullRequestBuilder) WithAuthor(author string) *PullRequestBuilder {
	b.author = author
	return b
}

// WithCreatedAt sets the raw createdAt value, so tests can inject bad dates
func (b *PullRequestBuilder) WithCreatedAt(value string) *PullRequestBuilder {
	b.createdAt = value
	return b
}

// WithMergedAt marks the PR as merged at the given time
func (b *PullRequestBuilder) WithMergedAt(t time.Time) *PullRequestBuilder {
	merged := t.Format(time.RFC3339)
	b.mergedAt = &merged
	b.state = "MERGED"
	return b
}

// WithChanges sets the additions/deletions
func (b *PullRequestBuilder) WithChanges(additions, deletions int) *PullRequestBuilder {
	b.additions = additions
	b.deletions = deletions
	return b
}

// WithFile adds a changed file
func (b *PullRequestBuilder) WithFile(path string, additions, deletions int) *PullRequestBuilder {
	b.files = append(b.files, map[string]interface{}{
		"path":      path,
		"additions": additions,
		"deletions": deletions,
	})
	return b
}

// WithLabels adds labels to the PR
func (b *PullRequestBuilder) WithLabels(labels ...string) *PullRequestBuilder {
	b.labels = labels
	return b
}

// AsDraft marks the PR as a draft
func (b *PullRequestBuilder) AsDraft() *PullRequestBuilder {
	b.isDraft = true
	return b
}

// AsConnections emits labels and files as {"nodes": [...]} objects instead
// of plain arrays.
func (b *PullRequestBuilder) AsConnections() *PullRequestBuilder {
	b.connections = true
	return b
}

// Build creates the PR record in the shape gh pr list --json prints
func (b *PullRequestBuilder) Build() map[string]interface{} {
	labels := make([]map[string]interface{}, len(b.labels))
	for i, label := range b.labels {
		labels[i] = map[string]interface{}{
			"id":   fmt.Sprintf("LA_%d_%d", b.number, i),
			"name": label,
		}
	}
	files := b.files
	if files == nil {
		files = []map[string]interface{}{}
	}

	pr := map[string]interface{}{
		"number":      b.number,
		"title":       b.title,
		"state":       b.state,
		"headRefName": b.head,
		"baseRefName": b.base,
		"createdAt":   b.createdAt,
		"updatedAt":   b.updatedAt,
		"additions":   b.additions,
		"deletions":   b.deletions,
		"isDraft":     b.isDraft,
	}

	if b.connections {
		pr["labels"] = map[string]interface{}{"nodes": labels}
		pr["files"] = map[string]interface{}{"nodes": files}
	} else {
		pr["labels"] = labels
		pr["files"] = files
	}

	if b.author != "" {
		pr["author"] = map[string]interface{}{
			"login":  b.author,
			"is_bot": false,
		}
	}
	if b.body != nil {
		pr["body"] = *b.body
	}
	if b.mergedAt != nil {
		pr["mergedAt"] = *b.mergedAt
	} else {
		pr["mergedAt"] = nil
	}

	return pr
}

// Payload encodes records as the JSON array gh writes to stdout
func Payload(t *testing.T, builders ...*PullRequestBuilder) []byte {
	t.Helper()

	records := make([]map[string]interface{}, len(builders))
	for i, b := range builders {
		records[i] = b.Build()
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}
	return data
}
