package version

// Version is the build version string reported by --version and stamped into
// the default Configuration. It can be overridden at build time:
//
//	go build -ldflags "-X pipecheck/internal/version.Version=1.2.3"
var Version = "0.1.0"
