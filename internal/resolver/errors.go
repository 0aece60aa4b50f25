package resolver

import "errors"

// Every error in this taxonomy is recoverable by falling through to the
// next source; none of them escapes Resolve.
var (
	// ErrToolUnavailable means no git executable was found on PATH.
	ErrToolUnavailable = errors.New("git executable not available")

	// ErrNoMatchingTag means describe found no reachable tag matching the
	// configured pattern.
	ErrNoMatchingTag = errors.New("no matching tag reachable")

	// ErrHistoryTruncated means the checkout is a shallow clone and the
	// one-time deepening fetch did not succeed.
	ErrHistoryTruncated = errors.New("shallow history could not be deepened")

	// ErrManifestMissing means no configured manifest file was found.
	ErrManifestMissing = errors.New("no manifest file found")

	// ErrParseEmpty means the describe tag was empty after stripping the
	// "v" prefix.
	ErrParseEmpty = errors.New("tag is empty after prefix stripping")
)
