package version

// Version is the release version shown on the dashboard and reported by the
// CLI. It can be overridden at build time:
//
//	go build -ldflags "-X 'github.com/devgenius/devgenius/internal/version.Version=1.3.0'"
var Version = "1.2.0"
