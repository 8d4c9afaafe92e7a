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
	"errors"
	"fmt"
	"io"
	"os"

	syncerrors "github.com/sirseerhq/gh-pr-sync/internal/errors"
	"github.com/sirseerhq/gh-pr-sync/internal/giterror"
	"github.com/spf13/cobra"
)

var version = "dev"

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	logLevel   string
}

func main() {
	os.Exit(run())
}

func run() int {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

// execute runs the command tree and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if hint := hintFor(err); hint != "" {
			fmt.Fprintf(stderr, "Hint: %s\n", hint)
		}
		return mapErrorToExitCode(err)
	}
	return 0
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "gh-pr-sync",
		Short: "Mirror GitHub pull requests into local YAML files",
		Long: `gh-pr-sync lists the pull requests of a GitHub repository through the
GitHub CLI and writes one YAML descriptor per pull request into .prs/.

Every run replaces the previous descriptors, so the directory always reflects
the latest query. Authentication is handled by gh (run 'gh auth login').`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: .pr-sync.yaml or ~/.config/pr-sync/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Diagnostic verbosity: debug, progress (alias info), warn or error")

	rootCmd.AddCommand(newPullCommand(opts))

	return rootCmd
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, syncerrors.ErrSubprocessLaunch) {
		return 127 // gh missing or not executable
	}

	if errors.Is(err, syncerrors.ErrSubprocessExecution) {
		inspector := giterror.NewErrorChainInspector(giterror.NewInspector())
		switch {
		case inspector.IsAuthError(err), inspector.IsNotFoundError(err), inspector.IsRateLimitError(err):
			return 2 // Authentication/authorization errors
		case inspector.IsNetworkError(err):
			return 3 // Network errors
		}
	}

	return 1 // General error
}

// hintFor suggests a next step for failures the user can fix outside the tool.
func hintFor(err error) string {
	switch {
	case errors.Is(err, syncerrors.ErrSubprocessLaunch):
		return "install the GitHub CLI from https://cli.github.com or set PRSYNC_GH_BINARY"
	case errors.Is(err, syncerrors.ErrSubprocessExecution):
		return giterror.Hint(giterror.NewErrorChainInspector(giterror.NewInspector()), err)
	}
	return ""
}
