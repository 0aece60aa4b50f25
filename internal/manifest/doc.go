// Package manifest reads version fields out of foreign packaging manifests
// (package.xml, package.json, Chart.yaml, Cargo.toml). It backs the
// resolver's manifest fallback source and the doctor diagnostics.
package manifest
