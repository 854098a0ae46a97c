// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Pcmcast is the canonical application identifier used for filesystem paths and CLI branding.
	Pcmcast = "pcmcast"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the default HTTP User-Agent string used when fetching remote playlists.
	UserAgent = Pcmcast + "/" + Version
)

// Build metadata, overridden at link time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
