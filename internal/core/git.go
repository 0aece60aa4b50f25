package core

// GitOperations is the query surface relver needs from the git executable.
// All methods operate on the repository containing the configured project
// root. Implementations live in internal/gitx.
type GitOperations interface {
	// Describe runs a describe query constrained to tags matching
	// matchPattern, with an abbreviated hash of abbrev hex characters.
	// Returns the raw describe output (e.g. "v0.5-2-g034f").
	Describe(matchPattern string, abbrev int) (string, error)

	// DiffIndexNames returns the names of tracked files that differ from
	// HEAD. Empty output means a clean working tree.
	DiffIndexNames() (string, error)

	// IsShallow reports whether the checkout has truncated history.
	IsShallow() (bool, error)

	// FetchUnshallow converts a shallow clone into a full-history one.
	FetchUnshallow() error
}
