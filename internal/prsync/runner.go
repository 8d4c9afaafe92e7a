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
	"context"
	"fmt"

	syncerrors "github.com/sirseerhq/gh-pr-sync/internal/errors"
	"github.com/sirseerhq/gh-pr-sync/internal/gh"
	"github.com/sirseerhq/gh-pr-sync/internal/metadata"
	"github.com/sirseerhq/gh-pr-sync/internal/output"
	"go.uber.org/zap"
)

// Runner executes syncs: fetch through gh, normalize, replace the output
// directory contents.
type Runner struct {
	client gh.Client
	writer output.OutputWriter
	logger *zap.SugaredLogger
}

// NewRunner wires a runner. A nil logger discards progress output.
func NewRunner(client gh.Client, writer output.OutputWriter, logger *zap.SugaredLogger) *Runner {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Runner{
		client: client,
		writer: writer,
		logger: logger,
	}
}

// Pull runs one sync and returns the number of descriptor files written.
//
// Records are processed in the order gh returned them and the first error
// aborts the run. Files written before the failure are left in place.
func (r *Runner) Pull(ctx context.Context, opts Options) (int, error) {
	if opts.Limit <= 0 {
		return 0, fmt.Errorf("%w: limit must be positive, got %d", syncerrors.ErrInvalidArgument, opts.Limit)
	}

	tracker := metadata.New(metadata.SyncParams{
		Repository:    opts.Repo,
		Limit:         opts.Limit,
		IncludeClosed: opts.IncludeClosed,
	})

	listOpts := gh.ListOptions{
		Repo:          opts.Repo,
		Limit:         opts.Limit,
		IncludeClosed: opts.IncludeClosed,
	}
	r.logger.Infof("Fetching %s pull requests...", listOpts.State())
	r.logger.Debugw("running gh", "args", gh.BuildArgs(listOpts))

	data, err := r.client.ListPullRequests(ctx, listOpts)
	if err != nil {
		return 0, err
	}

	raws, err := gh.DecodePullRequests(data)
	if err != nil {
		return 0, err
	}
	r.logger.Infof("Found %d pull requests", len(raws))

	if err := r.writer.Prepare(); err != nil {
		return 0, err
	}
	removed, err := r.writer.ClearStale()
	if err != nil {
		return 0, err
	}
	tracker.RecordStaleRemoved(removed)
	r.logger.Debugw("cleared stale outputs", "removed", removed)

	written := 0
	for _, raw := range raws {
		pr, err := Normalize(raw)
		if err != nil {
			return written, err
		}

		path, err := r.writer.Write(Filename(pr.Number, pr.Title), pr)
		if err != nil {
			return written, err
		}
		written++
		tracker.UpdatePRStats(pr.Number, pr.CreatedAt, pr.UpdatedAt)

		r.logger.Infof("  %d %s", pr.Number, pr.Title)
		r.logger.Debugw("wrote descriptor", "path", path)
	}

	r.logger.Infow("Sync complete", tracker.Summary().Fields()...)
	return written, nil
}
