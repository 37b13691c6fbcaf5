// Package buildinfo holds version information injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/watchfire-io/scratchpad/internal/buildinfo.Version=0.2.0" ./cmd/scratchpad
package buildinfo

var (
	Version    = "dev"
	Codename   = "Scribble"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
