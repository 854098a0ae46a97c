// Package metadata extracts track descriptions from the decode program's probe output.
package metadata

import (
	"regexp"
	"strings"

	"github.com/pcmcast-cli/pcmcast/ffmpeg"
	"github.com/pcmcast-cli/pcmcast/util"
	"github.com/samber/mo"
)

// Media describes the currently loaded track.
type Media struct {
	Title    string
	Artist   mo.Option[string]
	Album    mo.Option[string]
	Duration mo.Option[int]
}

// Diagnostic output matchers. The probe emits structured KEY=value tags on
// stdout while container info, including the Duration line and any shoutcast
// headers, arrives on stderr; Parse accepts the combined text.
var (
	durationRe    = regexp.MustCompile(`Duration:\s*(?P<clock>\d+:\d{1,2}:\d{1,2}(?:\.\d+)?)`)
	tagRe         = regexp.MustCompile(`(?i)^(?P<key>title|artist|album)=(?P<value>.*)$`)
	streamTitleRe = regexp.MustCompile(`StreamTitle='(?P<title>[^']*)'`)
	icyNameRe     = regexp.MustCompile(`(?i)icy-name\s*[:=]\s*(?P<name>.+)`)
)

// Parse scans probe output for a duration and track tags.
//
// Tag priority: explicit TITLE/ARTIST/ALBUM lines first; when none of the
// three keys is present, a streaming-radio StreamTitle marker, then a station
// name marker, supply the title alone. Returns nil when no recognizable
// pattern is found; malformed text is never an error.
func Parse(diagnostic string) *Media {
	media := &Media{}
	found := false

	if groups := util.ReGroups(durationRe, diagnostic); len(groups) > 0 {
		if seconds, err := ffmpeg.ParseClock(groups["clock"]); err == nil {
			media.Duration = mo.Some(ffmpeg.RoundSeconds(seconds))
			found = true
		}
	}

	tagged := parseTags(diagnostic, media)
	if tagged {
		found = true
	}
	// Tag lines may carry artist/album without a usable title; the stream
	// markers then still supply one.
	if media.Title == "" && parseStreamMarkers(diagnostic, media) {
		found = true
	}

	if !found {
		return nil
	}
	return media
}

// parseTags fills title/artist/album from explicit KEY=value lines.
func parseTags(diagnostic string, media *Media) bool {
	tagged := false

	for _, line := range strings.Split(diagnostic, "\n") {
		groups := util.ReGroups(tagRe, strings.TrimRight(line, "\r"))
		if len(groups) == 0 {
			continue
		}

		value := strings.TrimSpace(groups["value"])
		if value == "" {
			continue
		}

		switch strings.ToLower(groups["key"]) {
		case "title":
			media.Title = value
		case "artist":
			media.Artist = mo.Some(value)
		case "album":
			media.Album = mo.Some(value)
		}
		tagged = true
	}

	return tagged
}

// parseStreamMarkers falls back to shoutcast-style markers, first matching
// marker wins and supplies only the title.
func parseStreamMarkers(diagnostic string, media *Media) bool {
	if groups := util.ReGroups(streamTitleRe, diagnostic); len(groups) > 0 {
		if title := strings.TrimSpace(groups["title"]); title != "" {
			media.Title = title
			return true
		}
	}

	if groups := util.ReGroups(icyNameRe, diagnostic); len(groups) > 0 {
		if name := strings.TrimSpace(groups["name"]); name != "" {
			media.Title = name
			return true
		}
	}

	return false
}
