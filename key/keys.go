// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// PCM Sink Endpoint - these keys describe where the decoded PCM stream is delivered.
// A host beginning with '/' is treated as a Unix socket or FIFO path instead of a TCP endpoint.
const (
	PlayerHost       = "player.host"
	PlayerPort       = "player.port"
	PlayerStartDelay = "player.start_delay"
)

// Decode Engine - these keys control the external ffmpeg invocation.
const (
	PlayerFfmpeg       = "player.ffmpeg"
	PlayerProbeTimeout = "player.probe_timeout"
)

// Playlist Retrieval - these keys bound remote playlist document fetches.
const (
	PlaylistFetchTimeout = "playlist.fetch_timeout"
	PlaylistMaxSize      = "playlist.max_size"
)

// Metadata Extraction - these keys govern the one-shot ffmpeg probe.
const (
	MetadataProbe = "metadata.probe"
	MetadataCache = "metadata.cache"
)

// History Tracking - these keys configure the persistence of playback records.
const (
	HistorySaveOnPlay = "history.save_on_play"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the now-playing view behavior.
const (
	TUIEnabled  = "tui.enabled"
	TUIShowURLs = "tui.show_urls"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
