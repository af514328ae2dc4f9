// Package constant holds build-time version information, set via ldflags.
package constant

var (
	Version   = "dev"
	BuildTime = "unknown"
)
