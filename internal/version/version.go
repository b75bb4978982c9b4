// Package version holds build information injected with -ldflags.
package version

var (
	// Version is the released version of pyscout.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
)
