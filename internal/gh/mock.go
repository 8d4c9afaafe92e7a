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
	"context"
	"encoding/json"
	"fmt"

	syncerrors "github.com/sirseerhq/gh-pr-sync/internal/errors"
)

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	// Payload is returned verbatim when set. Otherwise PullRequests is
	// encoded as JSON.
	Payload      []byte
	PullRequests []PullRequest

	// Error to return
	Error error

	// Behavior flags
	ShouldFailLaunch bool
	ShouldFailAuth   bool

	// Track calls for verification
	CallCount int
	LastOpts  ListOptions
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		PullRequests: generateTestPRs(),
	}
}

// ListPullRequests implements the Client interface
func (m *MockClient) ListPullRequests(ctx context.Context, opts ListOptions) ([]byte, error) {
	m.CallCount++
	m.LastOpts = opts

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.ShouldFailLaunch {
		return nil, &syncerrors.LaunchError{Binary: DefaultBinary, Err: fmt.Errorf("executable file not found in $PATH")}
	}

	if m.ShouldFailAuth {
		return nil, &syncerrors.ExecutionError{
			ExitCode: 4,
			Stderr:   "To get started with GitHub CLI, please run:  gh auth login",
		}
	}

	if m.Error != nil {
		return nil, m.Error
	}

	if m.Payload != nil {
		return m.Payload, nil
	}

	prs := m.PullRequests
	if len(prs) > opts.Limit && opts.Limit > 0 {
		prs = prs[:opts.Limit]
	}
	if prs == nil {
		prs = []PullRequest{}
	}
	return json.Marshal(prs)
}

func strPtr(s string) *string { return &s }

// generateTestPRs creates sample pull request data for testing
func generateTestPRs() []PullRequest {
	return []PullRequest{
		{
			Number:      1234,
			Title:       "Add new feature for data processing",
			State:       "OPEN",
			Author:      &Author{Login: "alice"},
			HeadRefName: "feature/data-processing",
			BaseRefName: "main",
			Labels:      &LabelList{{Name: "enhancement"}},
			Files:       &FileList{{Path: "internal/data/process.go", Additions: 120, Deletions: 4}},
			CreatedAt:   "2024-03-01T09:00:00Z",
			UpdatedAt:   "2024-03-04T17:30:00Z",
			Body:        strPtr("Adds a streaming processor."),
			Additions:   120,
			Deletions:   4,
		},
		{
			Number:      1233,
			Title:       "Fix memory leak in parser",
			State:       "MERGED",
			Author:      &Author{Login: "bob"},
			HeadRefName: "fix/parser-leak",
			BaseRefName: "main",
			CreatedAt:   "2024-02-20T10:00:00Z",
			UpdatedAt:   "2024-02-22T08:15:00Z",
			MergedAt:    strPtr("2024-02-22T08:15:00Z"),
			Additions:   12,
			Deletions:   30,
		},
		{
			Number:      1232,
			Title:       "Update documentation",
			State:       "OPEN",
			HeadRefName: "docs/update",
			BaseRefName: "main",
			CreatedAt:   "2024-02-18T12:00:00Z",
			UpdatedAt:   "2024-02-18T12:00:00Z",
			Body:        strPtr(""),
			Additions:   8,
			Deletions:   2,
			IsDraft:     true,
		},
	}
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithPullRequests sets specific pull requests to return
func WithPullRequests(prs []PullRequest) MockClientOption {
	return func(m *MockClient) {
		m.PullRequests = prs
	}
}

// WithPayload makes the client return raw bytes instead of encoded pull requests
func WithPayload(payload []byte) MockClientOption {
	return func(m *MockClient) {
		m.Payload = payload
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithAuthFailure makes the client simulate gh reporting a missing login
func WithAuthFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailAuth = true
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
