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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirseerhq/gh-pr-sync/internal/config"
	"github.com/sirseerhq/gh-pr-sync/internal/gh"
	"github.com/sirseerhq/gh-pr-sync/internal/log"
	"github.com/sirseerhq/gh-pr-sync/internal/output"
	"github.com/sirseerhq/gh-pr-sync/internal/prsync"
	"github.com/spf13/cobra"
)

const defaultLimit = 100

type pullOptions struct {
	repo  string
	limit int
	all   bool
}

// newPullCommand creates the pull command
func newPullCommand(global *globalOptions) *cobra.Command {
	var opts pullOptions

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Replace the local pull request descriptors with the current list",
		Long: `Fetch pull requests with 'gh pr list' and write one YAML file per pull
request into the output directory (default .prs/).

Existing *.yaml files in the output directory are removed first, so pull
requests that no longer match the query disappear. Other files are kept.

By default only open pull requests of the current directory's repository are
fetched:
  - Use --repo OWNER/REPO to target another repository
  - Use --all to include closed and merged pull requests
  - Use --limit to change the maximum number fetched (default 100)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, global, &opts)
			if err != nil {
				return err
			}
			return runPull(cmd.Context(), cfg, opts, cmd.ErrOrStderr())
		},
	}

	addPullFlags(cmd, &opts)

	return cmd
}

func addPullFlags(cmd *cobra.Command, opts *pullOptions) {
	cmd.Flags().StringVarP(&opts.repo, "repo", "r", "", "Repository in OWNER/REPO form (default: repository of the current directory)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", defaultLimit, "Maximum number of pull requests to fetch")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Include closed and merged pull requests")
}

// resolveConfig loads configuration and layers the command-line flags on top.
// Flags left at their defaults yield to the configured values.
func resolveConfig(cmd *cobra.Command, global *globalOptions, opts *pullOptions) (*config.Config, error) {
	cfg, err := config.LoadConfigForRepo(global.configPath, opts.repo)
	if err != nil {
		return nil, err
	}

	if global.logLevel != "" {
		cfg.Log.Level = global.logLevel
	}
	if !cmd.Flags().Changed("limit") {
		opts.limit = cfg.Defaults.Limit
	}
	if !cmd.Flags().Changed("all") {
		opts.all = cfg.Defaults.IncludeClosed
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// runPull executes one sync with the resolved configuration
func runPull(ctx context.Context, cfg *config.Config, opts pullOptions, stderr io.Writer) error {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if err := log.Init(log.Config{Level: level, Format: cfg.Log.Format, Output: stderr}); err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.GH.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.GH.Timeout)
		defer cancel()
	}

	client := gh.NewCLIClient(cfg.GH.Binary).WithEnv("GH_PROMPT_DISABLED=1", "NO_COLOR=1")
	log.Debug("using gh", "binary", client.Binary(), "timeout", cfg.GH.Timeout)

	writer := output.NewDirWriter(cfg.Output.Dir, cfg.Output.Extension)
	runner := prsync.NewRunner(client, writer, log.Get())

	count, err := runner.Pull(ctx, prsync.Options{
		Repo:          opts.repo,
		Limit:         opts.limit,
		IncludeClosed: opts.all,
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			log.Warnf("gh did not finish within %s", cfg.GH.Timeout)
		}
		return err
	}

	log.Progressf("Synced %d pull requests to %s/", count, writer.Dir())
	return nil
}
