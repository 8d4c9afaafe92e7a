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

// Package metadata types describe what a single sync did. The summary is
// reported on the diagnostic stream at the end of a run; it is never written
// next to the descriptor files.
package metadata

import (
	"time"
)

// SyncParams captures the input parameters of a sync.
type SyncParams struct {
	Repository    string `json:"repository,omitempty"`
	Limit         int    `json:"limit"`
	IncludeClosed bool   `json:"include_closed"`
}

// SyncSummary contains statistics about a completed sync.
type SyncSummary struct {
	Parameters   SyncParams    `json:"parameters"`
	TotalPRs     int           `json:"total_prs"`
	FirstPR      int           `json:"first_pr_number"`
	LastPR       int           `json:"last_pr_number"`
	OldestPR     time.Time     `json:"oldest_pr_date"`
	NewestPR     time.Time     `json:"newest_pr_date"`
	StaleRemoved int           `json:"stale_removed"`
	Duration     time.Duration `json:"duration"`
	StartedAt    time.Time     `json:"started_at"`
	CompletedAt  time.Time     `json:"completed_at"`
}

// Fields returns the summary as alternating key/value pairs for structured
// loggers.
func (s SyncSummary) Fields() []interface{} {
	fields := []interface{}{
		"total", s.TotalPRs,
		"stale_removed", s.StaleRemoved,
		"duration", s.Duration,
	}
	if s.TotalPRs > 0 {
		fields = append(fields,
			"first", s.FirstPR,
			"last", s.LastPR,
			"oldest", s.OldestPR.Format(time.RFC3339),
			"newest", s.NewestPR.Format(time.RFC3339),
		)
	}
	return fields
}
