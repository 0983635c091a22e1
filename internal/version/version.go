package version

// Set at build time with
// -ldflags "-X Keystone/internal/version.Version=1.0.0".
var (
	Version = "0.1.0"

	BuildTime = "unknown"

	GitCommit = "unknown"
)
