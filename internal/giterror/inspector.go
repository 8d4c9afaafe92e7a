package giterror

import (
	"errors"
	"strings"
)

type Inspector interface {
	// IsAuthError returns true if gh reported a missing login or rejected credentials.
	IsAuthError(err error) bool

	// IsNotFoundError returns true if the repository could not be resolved.
	IsNotFoundError(err error) bool

	// IsRateLimitError returns true if the error represents a rate limit error.
	IsRateLimitError(err error) bool

	// IsNetworkError returns true if the error represents a network connectivity error.
	IsNetworkError(err error) bool
}

// GHErrorInspector implements the Inspector interface for gh diagnostics.
type GHErrorInspector struct{}

// NewInspector creates a new GHErrorInspector.
func NewInspector() Inspector {
	return &GHErrorInspector{}
}

// IsAuthError checks if the error is an authentication or authorization error.
func (i *GHErrorInspector) IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "401") ||
		strings.Contains(errStr, "bad credentials") ||
		strings.Contains(errStr, "gh auth login") ||
		strings.Contains(errStr, "not logged into") ||
		strings.Contains(errStr, "authentication") ||
		(strings.Contains(errStr, "403") && !strings.Contains(errStr, "rate limit"))
}

// IsNotFoundError checks if the error is a not found error.
func (i *GHErrorInspector) IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "404") ||
		strings.Contains(errStr, "could not resolve to a repository") ||
		strings.Contains(errStr, "not a git repository") ||
		strings.Contains(errStr, "no git remotes found") ||
		strings.Contains(errStr, "none of the git remotes")
}

// IsRateLimitError checks if the error is a rate limit error.
func (i *GHErrorInspector) IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "429")
}

// IsNetworkError checks if the error is a network connectivity error.
func (i *GHErrorInspector) IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "dial tcp") ||
		strings.Contains(errStr, "tls handshake") ||
		strings.Contains(errStr, "network is unreachable")
}

// ErrorChainInspector wraps a base inspector and first asks the error chain
// for an auth classification through an IsAuthError method. gh's exit status
// 4 is reported that way even when its message matches no known text.
type ErrorChainInspector struct {
	Inspector
}

// NewErrorChainInspector creates a new ErrorChainInspector that checks the
// error chain and falls back to base for everything else.
func NewErrorChainInspector(base Inspector) Inspector {
	return &ErrorChainInspector{Inspector: base}
}

// IsAuthError checks the error chain first, then falls back to the base inspector.
func (e *ErrorChainInspector) IsAuthError(err error) bool {
	var authErr interface{ IsAuthError() bool }
	if errors.As(err, &authErr) && authErr.IsAuthError() {
		return true
	}
	return e.Inspector.IsAuthError(err)
}

// Hint returns a one-line suggestion for a classified gh failure, or an
// empty string when there is nothing useful to add.
func Hint(inspector Inspector, err error) string {
	switch {
	case inspector.IsRateLimitError(err):
		return "GitHub rate limit reached; wait and retry"
	case inspector.IsAuthError(err):
		return "run 'gh auth login' or set GH_TOKEN"
	case inspector.IsNotFoundError(err):
		return "check --repo, or run inside a clone with a GitHub remote"
	case inspector.IsNetworkError(err):
		return "check network connectivity to GitHub"
	}
	return ""
}
