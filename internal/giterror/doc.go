// Package giterror classifies failures reported by the GitHub CLI. gh prints
// free-form diagnostics on stderr, so the checks are string based, with an
// error-chain layer on top for errors that know their own kind.
package giterror
