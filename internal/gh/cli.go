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
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"

	syncerrors "github.com/sirseerhq/gh-pr-sync/internal/errors"
)

// DefaultBinary is the gh executable looked up in PATH.
const DefaultBinary = "gh"

// JSONFields is the field selection passed to `gh pr list --json`.
var JSONFields = []string{
	"number",
	"title",
	"state",
	"author",
	"headRefName",
	"baseRefName",
	"labels",
	"files",
	"createdAt",
	"updatedAt",
	"mergedAt",
	"body",
	"additions",
	"deletions",
	"isDraft",
}

// CLIClient implements Client by running the gh binary.
type CLIClient struct {
	binary string
	env    []string
}

// NewCLIClient creates a client for the given gh binary. An empty binary
// falls back to DefaultBinary.
func NewCLIClient(binary string) *CLIClient {
	if binary == "" {
		binary = DefaultBinary
	}
	return &CLIClient{binary: binary}
}

// WithEnv returns a copy of the client that appends env to the inherited
// environment of every subprocess.
func (c *CLIClient) WithEnv(env ...string) *CLIClient {
	clone := *c
	clone.env = append(append([]string(nil), c.env...), env...)
	return &clone
}

// Binary returns the executable the client runs.
func (c *CLIClient) Binary() string {
	return c.binary
}

// BuildArgs returns the gh arguments for opts. The order is fixed so that
// callers and tests can rely on it.
func BuildArgs(opts ListOptions) []string {
	args := []string{
		"pr", "list",
		"--state", opts.State(),
		"--limit", strconv.Itoa(opts.Limit),
		"--json", strings.Join(JSONFields, ","),
	}
	if opts.Repo != "" {
		args = append(args, "--repo", opts.Repo)
	}
	return args
}

// ListPullRequests runs `gh pr list` and returns its stdout.
func (c *CLIClient) ListPullRequests(ctx context.Context, opts ListOptions) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.binary, BuildArgs(opts)...)
	if len(c.env) > 0 {
		cmd.Env = append(cmd.Environ(), c.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, &syncerrors.ExecutionError{
					ExitCode: exitErr.ExitCode(),
					Stderr:   "gh interrupted: " + ctxErr.Error(),
				}
			}
			return nil, &syncerrors.ExecutionError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		// Start failed: binary missing, not executable, or bad working dir.
		return nil, &syncerrors.LaunchError{Binary: c.binary, Err: err}
	}

	return stdout.Bytes(), nil
}
