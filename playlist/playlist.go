// Package playlist parses M3U playlist documents into an ordered track queue.
package playlist

import (
	"net/url"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

// Directive prefixes recognized beyond standard M3U.
const (
	extinf = "#EXTINF:"
	// extimg names an artwork file for the whole playlist; the first
	// occurrence wins.
	extimg = "#EXTIMG:"
	// Player-specific option directives are recognized and discarded so they
	// are never mistaken for playable entries.
	extvlcopt  = "#EXTVLCOPT:"
	pcmcastopt = "#PCMCAST-OPT:"
)

// Entry is a single resolvable track reference.
type Entry struct {
	// URI is the fully resolved media reference.
	URI string
	// Title is the EXTINF display name, empty when the playlist carries none.
	Title string
	// Duration is the EXTINF advertised length in seconds, 0 when unknown.
	Duration int
}

// Playlist is the parse result of one playlist document.
type Playlist struct {
	Entries []Entry
	// AlbumArt is the resolved artwork reference, empty when the document
	// carries no artwork directive.
	AlbumArt string
}

// Empty reports whether the document contained zero playable entries.
func (p Playlist) Empty() bool {
	return len(p.Entries) == 0
}

// URIs returns the ordered resolved references.
func (p Playlist) URIs() []string {
	uris := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		uris[i] = e.URI
	}
	return uris
}

// Parse reads a playlist document. Relative references are resolved against
// the directory component of location, the playlist's own address. A document
// with no playable entries parses to an empty result, not an error.
func Parse(document, location string) Playlist {
	var (
		result  Playlist
		pending Entry
	)

	for _, line := range strings.Split(document, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, extinf):
			pending = parseExtinf(strings.TrimPrefix(line, extinf))

		case strings.HasPrefix(line, extimg):
			if result.AlbumArt == "" {
				result.AlbumArt = resolve(strings.TrimSpace(strings.TrimPrefix(line, extimg)), location)
			}

		case strings.HasPrefix(line, extvlcopt), strings.HasPrefix(line, pcmcastopt):
			// Recognized player options, intentionally dropped.

		case strings.HasPrefix(line, "#"):
			// Unknown directives and comments are opaque.

		default:
			pending.URI = resolve(line, location)
			result.Entries = append(result.Entries, pending)
			pending = Entry{}
		}
	}

	return result
}

// parseExtinf splits "<duration>,<display name>" from an EXTINF header.
func parseExtinf(value string) Entry {
	entry := Entry{}

	duration, title, found := strings.Cut(value, ",")
	if !found {
		entry.Title = strings.TrimSpace(value)
		return entry
	}

	if seconds, err := strconv.Atoi(strings.TrimSpace(duration)); err == nil && seconds > 0 {
		entry.Duration = seconds
	}
	entry.Title = strings.TrimSpace(title)
	return entry
}

// resolve joins a possibly relative reference with the playlist location.
func resolve(ref, location string) string {
	if ref == "" || isAbsolute(ref) || location == "" {
		return ref
	}

	if isURL(location) {
		base, err := url.Parse(location)
		if err != nil {
			return ref
		}
		base.Path = path.Join(path.Dir(base.Path), ref)
		base.RawQuery = ""
		return base.String()
	}

	return filepath.Join(filepath.Dir(location), ref)
}

func isAbsolute(ref string) bool {
	return isURL(ref) || strings.HasPrefix(ref, "/")
}

func isURL(ref string) bool {
	return strings.Contains(ref, "://")
}
