package version

// Set at build time with -ldflags "-X github.com/powledger/powledger/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
)
