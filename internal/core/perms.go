package core

import "os"

// File permission constants shared across the codebase.
const (
	// PermOwnerRW is for files only the owner should touch (config files).
	PermOwnerRW os.FileMode = 0o600

	// PermSharedRead is for generated artifacts consumed by build steps.
	PermSharedRead os.FileMode = 0o644
)
