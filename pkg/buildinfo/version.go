// Package buildinfo holds the version information stamped into dotstyle
// binaries at build time:
//
//	go build -ldflags "-X github.com/matzehuels/dotstyle/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/dotstyle/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/dotstyle/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Version also scopes cache keys, so upgrading the binary never serves
// artifacts produced by an older codec.
package buildinfo

import "fmt"

var (
	// Version is the semantic version, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}
