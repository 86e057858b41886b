// Package buildinfo exposes the version metadata stamped at link time.
package buildinfo

// Overridden through -ldflags on release builds; the defaults identify a
// local dev build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
