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

// Package metadata tracks statistics about a sync: how many pull requests
// were written, the range of numbers and dates they cover, how many stale
// files were cleared, and how long the run took.
package metadata

import (
	"time"
)

// Tracker collects statistics during a sync. Create a new tracker at the
// start of each sync and call its methods to record activity.
type Tracker struct {
	startTime    time.Time
	params       SyncParams
	staleRemoved int
	prStats      PRStats
	now          func() time.Time
}

// PRStats holds statistical information about pull requests processed
// during a sync.
type PRStats struct {
	TotalPRs int       // Total number of PRs processed
	FirstPR  int       // Lowest PR number seen
	LastPR   int       // Highest PR number seen
	OldestPR time.Time // Earliest PR creation date
	NewestPR time.Time // Latest PR update date
}

// New creates a new tracker and initializes it with the current time.
func New(params SyncParams) *Tracker {
	return newWithClock(params, time.Now)
}

func newWithClock(params SyncParams, now func() time.Time) *Tracker {
	return &Tracker{
		startTime: now(),
		params:    params,
		now:       now,
	}
}

// RecordStaleRemoved records how many previous outputs were deleted.
func (t *Tracker) RecordStaleRemoved(n int) {
	t.staleRemoved += n
}

// UpdatePRStats updates the running statistics with data from a single pull request.
func (t *Tracker) UpdatePRStats(prNumber int, createdAt, updatedAt time.Time) {
	t.prStats.TotalPRs++

	if t.prStats.TotalPRs == 1 || prNumber < t.prStats.FirstPR {
		t.prStats.FirstPR = prNumber
	}
	if prNumber > t.prStats.LastPR {
		t.prStats.LastPR = prNumber
	}

	if t.prStats.OldestPR.IsZero() || createdAt.Before(t.prStats.OldestPR) {
		t.prStats.OldestPR = createdAt
	}
	if updatedAt.After(t.prStats.NewestPR) {
		t.prStats.NewestPR = updatedAt
	}
}

// Summary returns the statistics gathered so far.
func (t *Tracker) Summary() SyncSummary {
	completedAt := t.now()

	return SyncSummary{
		Parameters:   t.params,
		TotalPRs:     t.prStats.TotalPRs,
		FirstPR:      t.prStats.FirstPR,
		LastPR:       t.prStats.LastPR,
		OldestPR:     t.prStats.OldestPR,
		NewestPR:     t.prStats.NewestPR,
		StaleRemoved: t.staleRemoved,
		Duration:     completedAt.Sub(t.startTime),
		StartedAt:    t.startTime,
		CompletedAt:  completedAt,
	}
}
