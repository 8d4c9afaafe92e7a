package giterror

import (
	"errors"
	"fmt"
	"testing"

	syncerrors "github.com/sirseerhq/gh-pr-sync/internal/errors"
)

func ghFailure(stderr string) error {
	return &syncerrors.ExecutionError{ExitCode: 1, Stderr: stderr}
}

func TestGHErrorInspector_IsAuthError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "not logged in",
			err:  ghFailure("To get started with GitHub CLI, please run:  gh auth login\nAlternatively, populate the GH_TOKEN environment variable"),
			want: true,
		},
		{
			name: "bad credentials",
			err:  ghFailure("HTTP 401: Bad credentials (https://api.github.com/graphql)"),
			want: true,
		},
		{
			name: "saml enforcement",
			err:  ghFailure("HTTP 403: Resource protected by organization SAML enforcement"),
			want: true,
		},
		{
			name: "rate limit is not auth",
			err:  ghFailure("HTTP 403: API rate limit exceeded for user ID 1"),
			want: false,
		},
		{
			name: "wrapped auth error",
			err:  fmt.Errorf("pull: %w", ghFailure("HTTP 401: Bad credentials")),
			want: true,
		},
		{
			name: "not an auth error",
			err:  errors.New("something went wrong"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsAuthError(tt.err); got != tt.want {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGHErrorInspector_IsNotFoundError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unknown repository",
			err:  ghFailure(`GraphQL: Could not resolve to a Repository with the name 'octo/nope'. (repository)`),
			want: true,
		},
		{
			name: "outside a clone",
			err:  ghFailure("failed to run git: fatal: not a git repository (or any of the parent directories): .git"),
			want: true,
		},
		{
			name: "no remotes",
			err:  ghFailure("no git remotes found"),
			want: true,
		},
		{
			name: "other",
			err:  ghFailure("unknown flag: --bogus"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNotFoundError(tt.err); got != tt.want {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGHErrorInspector_IsRateLimitError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"api rate limit", ghFailure("GraphQL: API rate limit exceeded for user ID 1."), true},
		{"secondary rate limit", ghFailure("HTTP 403: You have exceeded a secondary rate limit"), true},
		{"429", ghFailure("HTTP 429: Too Many Requests"), true},
		{"other", ghFailure("HTTP 500"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsRateLimitError(tt.err); got != tt.want {
				t.Errorf("IsRateLimitError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGHErrorInspector_IsNetworkError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"dns", ghFailure("error connecting to api.github.com: dial tcp: lookup api.github.com: no such host"), true},
		{"refused", ghFailure("connect: connection refused"), true},
		{"tls", ghFailure("net/http: TLS handshake timeout"), true},
		{"other", ghFailure("HTTP 401: Bad credentials"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNetworkError(tt.err); got != tt.want {
				t.Errorf("IsNetworkError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorChainInspector(t *testing.T) {
	inspector := NewErrorChainInspector(NewInspector())

	// gh exits 4 when no login is configured, whatever it prints.
	notLoggedIn := fmt.Errorf("sync: %w", &syncerrors.ExecutionError{ExitCode: 4, Stderr: "please sign in"})
	if NewInspector().IsAuthError(notLoggedIn) {
		t.Fatal("base inspector should not recognise the message")
	}
	if !inspector.IsAuthError(notLoggedIn) {
		t.Error("IsAuthError() = false, want true from exit status 4")
	}
	if inspector.IsNetworkError(notLoggedIn) || inspector.IsNotFoundError(notLoggedIn) || inspector.IsRateLimitError(notLoggedIn) {
		t.Error("exit status 4 should classify as auth only")
	}

	if inspector.IsAuthError(ghFailure("unknown flag: --json")) {
		t.Error("IsAuthError() = true for an unclassified failure")
	}

	// Falls back to string inspection.
	if !inspector.IsAuthError(ghFailure("HTTP 401: Bad credentials")) {
		t.Error("IsAuthError() = false, want true from base inspector")
	}
	if !inspector.IsRateLimitError(ghFailure("API rate limit exceeded")) {
		t.Error("IsRateLimitError() = false, want true from base inspector")
	}
}

func TestHint(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"auth", ghFailure("HTTP 401: Bad credentials"), "run 'gh auth login' or set GH_TOKEN"},
		{"rate limit wins over 403", ghFailure("HTTP 403: API rate limit exceeded"), "GitHub rate limit reached; wait and retry"},
		{"not found", ghFailure("Could not resolve to a Repository"), "check --repo, or run inside a clone with a GitHub remote"},
		{"network", ghFailure("dial tcp: i/o timeout"), "check network connectivity to GitHub"},
		{"unclassified", ghFailure("unknown flag"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hint(inspector, tt.err); got != tt.want {
				t.Errorf("Hint() = %q, want %q", got, tt.want)
			}
		})
	}
}
