// Package vparse splits resolved version strings into their major, minor,
// and patch component tokens for substitution into build files.
package vparse

import "strings"

// Unknown is the sentinel used when no source yielded a usable version.
// It propagates from the raw string into every component.
const Unknown = "UNKNOWN"

// Components holds the individual version tokens extracted from a raw
// version string. A missing segment is the empty string, which is distinct
// from the explicit Unknown sentinel.
type Components struct {
	Major string
	Minor string
	Patch string
}

// Split extracts the major, minor, and patch tokens from raw.
//
// Both "." and "-" act as separators, so a describe-derived string such as
// "0.5-2-034f" yields the same components as "0.5.2". Tokens beyond the
// third are discarded: for a raw like "1.2.3-4-abcd" the patch component is
// "3" and the commit-distance/hash remainder is dropped from the components
// while staying visible in the raw string. This lossy extraction matches
// the historical behavior downstream consumers rely on.
func Split(raw string) Components {
	if raw == Unknown {
		return Components{Major: Unknown, Minor: Unknown, Patch: Unknown}
	}

	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '.' || r == '-'
	})

	var c Components
	if len(tokens) > 0 {
		c.Major = tokens[0]
	}
	if len(tokens) > 1 {
		c.Minor = tokens[1]
	}
	if len(tokens) > 2 {
		c.Patch = tokens[2]
	}
	return c
}
