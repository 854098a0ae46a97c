package controller

import (
	"fmt"
	"strings"

	"github.com/pcmcast-cli/pcmcast/playlist"
	"github.com/samber/lo"
)

// RepeatMode selects the end-of-track decision rule.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatOne
	RepeatAll
)

func (m RepeatMode) String() string {
	switch m {
	case RepeatOne:
		return "one"
	case RepeatAll:
		return "all"
	default:
		return "off"
	}
}

// ParseRepeatMode maps a textual mode to a RepeatMode.
func ParseRepeatMode(s string) (RepeatMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "":
		return RepeatOff, nil
	case "one":
		return RepeatOne, nil
	case "all":
		return RepeatAll, nil
	default:
		return RepeatOff, fmt.Errorf("unknown repeat mode %q (expected off, one or all)", s)
	}
}

// Track is a single queued item.
type Track struct {
	URI string
	// Title is the playlist display name, empty for direct play requests.
	Title string
	// Duration is the playlist advertised length in seconds, 0 when unknown.
	Duration int
}

// Queue is the ordered track sequence with the current-track pointer.
// It is replaced wholesale on every new play request, never mutated in place.
type Queue struct {
	tracks []Track
	index  int
}

// NewQueue builds a queue positioned at the first track.
func NewQueue(tracks []Track) Queue {
	return Queue{tracks: tracks}
}

// queueFromPlaylist converts parsed playlist entries into a queue.
func queueFromPlaylist(entries []playlist.Entry) Queue {
	return NewQueue(lo.Map(entries, func(e playlist.Entry, _ int) Track {
		return Track{URI: e.URI, Title: e.Title, Duration: e.Duration}
	}))
}

// Empty reports whether no tracks are queued.
func (q Queue) Empty() bool {
	return len(q.tracks) == 0
}

// Len returns the number of queued tracks.
func (q Queue) Len() int {
	return len(q.tracks)
}

// Index returns the current-track pointer position.
func (q Queue) Index() int {
	return q.index
}

// Tracks returns the queued tracks in playback order.
func (q Queue) Tracks() []Track {
	return q.tracks
}

// Current returns the track under the pointer.
func (q Queue) Current() (Track, bool) {
	if q.Empty() {
		return Track{}, false
	}
	return q.tracks[q.index], true
}

// HasNext reports whether a track exists immediately after the pointer.
func (q Queue) HasNext() bool {
	return q.index+1 < len(q.tracks)
}

// HasPrevious reports whether the pointer can retreat or restart.
// Previous at the first track restarts it, so any non-empty queue qualifies.
func (q Queue) HasPrevious() bool {
	return !q.Empty()
}

// Next moves the pointer forward. Manual navigation never wraps.
func (q *Queue) Next() bool {
	if !q.HasNext() {
		return false
	}
	q.index++
	return true
}

// Previous moves the pointer back, staying on the first track when already
// there rather than underflowing.
func (q *Queue) Previous() bool {
	if q.Empty() {
		return false
	}
	if q.index > 0 {
		q.index--
	}
	return true
}

// Advance applies the end-of-track decision rule after a clean process exit.
// It reports whether another track should start.
func (q *Queue) Advance(mode RepeatMode) bool {
	if q.Empty() {
		return false
	}

	switch mode {
	case RepeatOne:
		return true
	case RepeatAll:
		q.index = (q.index + 1) % len(q.tracks)
		return true
	default:
		return q.Next()
	}
}
