// Package resolver derives a single version string for a project checkout
// from an ordered pipeline of sources: a pinned .version marker file, git
// tag history, and a foreign packaging manifest. Resolution never fails
// hard; when every source declines the result carries the UNKNOWN sentinel.
package resolver
