// Package version reports relver's own build version.
package version

import (
	"runtime/debug"
	"strings"
)

// version is the fallback for builds outside module-aware tooling.
// Overridable at link time with -ldflags "-X relver/internal/version.version=...".
var version = "0.1.0"

// GetVersion returns the tool version, preferring the module version
// recorded by the Go toolchain.
func GetVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok &&
		info.Main.Version != "" && info.Main.Version != "(devel)" {
		return strings.TrimPrefix(info.Main.Version, "v")
	}
	return version
}
