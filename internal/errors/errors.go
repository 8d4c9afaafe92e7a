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

// Package errors defines the error kinds a sync can fail with. Every kind
// has a sentinel for errors.Is checks and a typed error carrying context for
// errors.As. The CLI maps them to exit codes.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrSubprocessLaunch indicates the gh binary could not be started.
	// Maps to exit code 127.
	ErrSubprocessLaunch = errors.New("failed to launch gh")

	// ErrSubprocessExecution indicates gh ran but exited non-zero.
	// Maps to exit code 1, 2 or 3 depending on what gh reported.
	ErrSubprocessExecution = errors.New("gh pr list failed")

	// ErrResponseParse indicates gh output was not the expected JSON array.
	ErrResponseParse = errors.New("failed to parse gh output")

	// ErrFieldParse indicates a single field of a pull request could not be interpreted.
	ErrFieldParse = errors.New("invalid pull request field")

	// ErrEncode indicates a descriptor could not be serialized.
	ErrEncode = errors.New("failed to encode descriptor")

	// ErrFilesystem indicates a directory or file operation failed.
	ErrFilesystem = errors.New("filesystem operation failed")

	// ErrInvalidArgument indicates a caller supplied an unusable option.
	ErrInvalidArgument = errors.New("invalid argument")
)

// LaunchError is returned when the gh binary is missing or not executable.
type LaunchError struct {
	Binary string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("%s %q (is it installed?): %v", ErrSubprocessLaunch, e.Binary, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

func (e *LaunchError) Is(target error) bool { return target == ErrSubprocessLaunch }

// ExecutionError is returned when gh exits with a non-zero status. Stderr
// holds the diagnostic text gh printed.
type ExecutionError struct {
	ExitCode int
	Stderr   string
}

func (e *ExecutionError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s: exit status %d", ErrSubprocessExecution, e.ExitCode)
	}
	return fmt.Sprintf("%s: %s", ErrSubprocessExecution, msg)
}

func (e *ExecutionError) Is(target error) bool { return target == ErrSubprocessExecution }

// ghExitAuthRequired is the status gh exits with when no login is configured.
const ghExitAuthRequired = 4

// IsAuthError reports whether gh exited because authentication is required.
func (e *ExecutionError) IsAuthError() bool { return e.ExitCode == ghExitAuthRequired }

// ResponseParseError wraps a decoding failure of the gh payload.
type ResponseParseError struct {
	Err error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("%s: %v", ErrResponseParse, e.Err)
}

func (e *ResponseParseError) Unwrap() error { return e.Err }

func (e *ResponseParseError) Is(target error) bool { return target == ErrResponseParse }

// FieldParseError identifies the record and field that could not be parsed.
type FieldParseError struct {
	Number int
	Field  string
	Value  string
	Err    error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("pull request #%d: invalid %s %q: %v", e.Number, e.Field, e.Value, e.Err)
}

func (e *FieldParseError) Unwrap() error { return e.Err }

func (e *FieldParseError) Is(target error) bool { return target == ErrFieldParse }

// EncodeError names the file whose content could not be serialized.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrEncode, e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func (e *EncodeError) Is(target error) bool { return target == ErrEncode }

// FilesystemError names the operation and path that failed.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

func (e *FilesystemError) Is(target error) bool { return target == ErrFilesystem }
