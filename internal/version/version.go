// Package version carries build metadata injected at link time via
// -ldflags "-X github.com/doeshing/chaincalc/internal/version.Version=...".
package version

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit hash of the build.
	Commit = ""
	// BuildDate is the build timestamp.
	BuildDate = ""
)
