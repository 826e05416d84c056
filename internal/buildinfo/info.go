// Package buildinfo carries the version identity stamped into the tillbook
// binary at release time.
package buildinfo

// Overridden via -ldflags when cutting a release; a plain `go build`
// produces a dev binary.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
