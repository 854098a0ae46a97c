// Package controller orchestrates the playback lifecycle. It owns the track
// queue, the current decode process and all state derived from them, and it is
// the only place that starts or terminates processes.
//
// All async observers (process watcher, progress tracker, metadata probe) are
// stamped with a generation number when spawned. Every lifecycle operation
// bumps the generation, so an observer that finishes after its process was
// superseded finds a newer generation under the lock and discards its result
// instead of clobbering fresh state.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pcmcast-cli/pcmcast/ffmpeg"
	"github.com/pcmcast-cli/pcmcast/history"
	"github.com/pcmcast-cli/pcmcast/key"
	"github.com/pcmcast-cli/pcmcast/log"
	"github.com/pcmcast-cli/pcmcast/metadata"
	"github.com/pcmcast-cli/pcmcast/playlist"
	"github.com/pcmcast-cli/pcmcast/progress"
	"github.com/pcmcast-cli/pcmcast/source"
	"github.com/pcmcast-cli/pcmcast/util"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// State is the externally visible playback state.
type State int

const (
	Idle State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Media type hints accepted by PlayMedia.
const (
	MediaTypeMusic    = "music"
	MediaTypePlaylist = "playlist"
)

var (
	ErrNothingPlaying  = errors.New("nothing is playing")
	ErrNotPlaying      = errors.New("playback is not running")
	ErrNotPaused       = errors.New("playback is not paused")
	ErrNoNextTrack     = errors.New("no next track in the queue")
	ErrEmptyPlaylist   = errors.New("playlist contains no playable entries")
	ErrDurationUnknown = errors.New("track duration is unknown")
)

// Controller drives playback of a queue of tracks through sequential decode
// processes. All exported methods are safe for concurrent use.
type Controller struct {
	mu sync.Mutex

	resolver source.Resolver
	sink     ffmpeg.Sink
	delayMs  string

	state  State
	queue  Queue
	repeat RepeatMode

	// albumArt is the cover reference of the loaded playlist, if any.
	albumArt string

	handle     *ffmpeg.Handle
	generation uint64
	seekOffset int

	position mo.Option[progress.Update]
	media    *metadata.Media
	// historyRecord is the pending history entry for the playing track; its
	// position is flushed when the track is left or playback goes idle.
	historyRecord *history.Record
	// mediaURI is the track the probe result belongs to; metadata survives
	// seek restarts of the same track but never leaks across tracks.
	mediaURI string

	// startProcess is swapped in tests to avoid spawning a real decoder.
	startProcess func(program string, args []string) (*ffmpeg.Handle, error)
}

// New builds an idle controller playing towards the given sink.
func New(resolver source.Resolver, sink ffmpeg.Sink, delayMs string) *Controller {
	return &Controller{
		resolver:     resolver,
		sink:         sink,
		delayMs:      delayMs,
		startProcess: ffmpeg.Start,
	}
}

// FromConfig builds a controller wired to the configured sink and start delay.
func FromConfig(resolver source.Resolver) *Controller {
	return New(resolver, ffmpeg.Sink{
		Host: viper.GetString(key.PlayerHost),
		Port: viper.GetString(key.PlayerPort),
	}, viper.GetString(key.PlayerStartDelay))
}

// PlayMedia resolves the given media reference, replaces the queue and starts
// the first track. On any resolution or fetch failure the previous queue and
// state are left untouched.
func (c *Controller) PlayMedia(ctx context.Context, mediaType, mediaID string) error {
	resolved, err := c.resolver.Resolve(mediaID)
	if err != nil {
		return fmt.Errorf("resolve media: %w", err)
	}

	var (
		queue Queue
		art   string
	)

	if mediaType == MediaTypePlaylist || playlist.IsPlaylistRef(resolved) {
		parsed, err := playlist.Fetch(ctx, resolved)
		if err != nil {
			return fmt.Errorf("fetch playlist: %w", err)
		}

		if parsed.Empty() {
			return ErrEmptyPlaylist
		}

		queue = queueFromPlaylist(parsed.Entries)
		art = parsed.AlbumArt
	} else {
		queue = NewQueue([]Track{{URI: resolved}})
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.queue = queue
	c.albumArt = art

	return c.startCurrentLocked(0)
}

// Pause suspends the decode process without tearing it down.
func (c *Controller) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Playing || c.handle == nil {
		return ErrNotPlaying
	}

	if err := c.handle.Pause(); err != nil {
		return fmt.Errorf("suspend decode process: %w", err)
	}

	c.state = Paused
	return nil
}

// Resume continues a paused decode process.
func (c *Controller) Resume() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Paused || c.handle == nil {
		return ErrNotPaused
	}

	if err := c.handle.Resume(); err != nil {
		return fmt.Errorf("continue decode process: %w", err)
	}

	c.state = Playing
	return nil
}

// Stop terminates playback and discards the queue. Stopping an idle
// controller is a no-op.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	if c.handle != nil {
		c.handle.Terminate()
		c.handle = nil
	}

	c.queue = Queue{}
	c.repeat = RepeatOff
	c.albumArt = ""
	c.idleLocked()
}

// Next starts the track after the pointer. Navigation never wraps,
// regardless of repeat mode.
func (c *Controller) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Idle {
		return ErrNothingPlaying
	}

	if !c.queue.Next() {
		return ErrNoNextTrack
	}

	return c.startCurrentLocked(0)
}

// Previous starts the track before the pointer, or restarts the first track
// when already there.
func (c *Controller) Previous() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Idle || !c.queue.Previous() {
		return ErrNothingPlaying
	}

	return c.startCurrentLocked(0)
}

// Seek restarts the current track at the given position. The decoder has no
// native seek, so this is a process restart with a start offset. Positions are
// clamped to the known duration; seeking an unprobed track is rejected.
func (c *Controller) Seek(positionSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Idle || c.handle == nil || !c.handle.Alive() {
		return ErrNothingPlaying
	}

	duration, ok := c.durationLocked()
	if !ok {
		return ErrDurationUnknown
	}

	positionSeconds = util.Min(util.Max(positionSeconds, 0), duration)

	return c.startCurrentLocked(positionSeconds)
}

// SetRepeat switches the end-of-track decision rule. Takes effect at the next
// track boundary.
func (c *Controller) SetRepeat(mode RepeatMode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.repeat = mode
}

// RefreshState re-derives the state from the actual process condition. A
// controller that believes it is playing but whose process is gone falls back
// to idle. The queue is left intact for inspection.
func (c *Controller) RefreshState() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Idle && (c.handle == nil || !c.handle.Alive()) {
		c.idleLocked()
	}
}

// Browse lists playable items under the given path through the resolver.
func (c *Controller) Browse(path string) ([]source.Item, error) {
	return c.resolver.Browse(path)
}

// startCurrentLocked supersedes any running process and starts the track
// under the pointer at the given offset. Callers hold c.mu.
func (c *Controller) startCurrentLocked(offsetSeconds int) error {
	track, ok := c.queue.Current()
	if !ok {
		return ErrNothingPlaying
	}

	c.flushHistoryLocked()

	// Orphan every observer of the previous process before touching it.
	c.generation++
	generation := c.generation

	if c.handle != nil {
		c.handle.Terminate()
		c.handle = nil
	}

	invocation := ffmpeg.Playback{
		URI:         track.URI,
		Sink:        c.sink,
		SeekSeconds: offsetSeconds,
		DelayMs:     c.delayMs,
	}

	handle, err := c.startProcess(ffmpeg.Program(), invocation.Args())
	if err != nil {
		c.idleLocked()
		return fmt.Errorf("start decode process: %w", err)
	}

	log.Infof("started decode process pid %d for %s at %ds", handle.Pid(), track.URI, offsetSeconds)

	c.handle = handle
	c.state = Playing
	c.seekOffset = offsetSeconds
	c.position = mo.None[progress.Update]()

	if track.URI != c.mediaURI {
		c.media = nil
		c.mediaURI = track.URI
	}

	go c.watch(generation, handle)
	go c.observeProgress(generation, handle, offsetSeconds)
	go c.probe(generation, track.URI)

	if offsetSeconds == 0 {
		c.recordHistory(track)
	}

	return nil
}

// watch waits for the process to exit and applies the end-of-track rule.
func (c *Controller) watch(generation uint64, handle *ffmpeg.Handle) {
	<-handle.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		// Superseded by a newer process, nothing to decide.
		return
	}

	if code := handle.ExitCode(); code != 0 {
		log.Errorf("decode process pid %d exited with code %d", handle.Pid(), code)
		c.idleLocked()
		return
	}

	if !c.queue.Advance(c.repeat) {
		c.idleLocked()
		return
	}

	if err := c.startCurrentLocked(0); err != nil {
		log.Errorf("advance to next track: %s", err)
	}
}

// observeProgress follows the diagnostic stream, publishing position updates
// until the process goes away.
func (c *Controller) observeProgress(generation uint64, handle *ffmpeg.Handle, offsetSeconds int) {
	progress.Track(handle.Stderr(), offsetSeconds, func(update progress.Update) {
		c.mu.Lock()
		defer c.mu.Unlock()

		if generation != c.generation {
			return
		}

		c.position = mo.Some(update)
	})
}

// probe asks the decoder for the track's metadata. A result arriving after
// the track was superseded is discarded.
func (c *Controller) probe(generation uint64, uri string) {
	media, err := metadata.Probe(context.Background(), uri)
	if err != nil {
		log.Errorf("probe %s: %s", uri, err)
		return
	}

	if media == nil {
		return
	}

	c.deliverProbe(generation, uri, media)
}

// deliverProbe applies a probe result unless the track it belongs to has been
// superseded in the meantime.
func (c *Controller) deliverProbe(generation uint64, uri string, media *metadata.Media) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation || uri != c.mediaURI {
		return
	}

	c.media = media
}

// recordHistory preserves the track in the play history. Callers hold c.mu.
func (c *Controller) recordHistory(track Track) {
	if !viper.GetBool(key.HistorySaveOnPlay) {
		return
	}

	record := &history.Record{
		URI:      track.URI,
		Title:    track.Title,
		PlayedAt: time.Now(),
	}
	c.historyRecord = record

	go func() {
		if err := history.Save(record); err != nil {
			log.Errorf("save history record: %s", err)
		}
	}()
}

// flushHistoryLocked writes the last observed position back to the pending
// history record. Callers hold c.mu.
func (c *Controller) flushHistoryLocked() {
	if c.historyRecord == nil {
		return
	}

	record := *c.historyRecord
	if update, ok := c.position.Get(); ok {
		record.Position = update.Position
	}

	go func() {
		if err := history.Save(&record); err != nil {
			log.Errorf("update history record: %s", err)
		}
	}()
}

// idleLocked drops all playback-derived state. The queue is untouched so a
// finished session can still be inspected. Callers hold c.mu.
func (c *Controller) idleLocked() {
	c.flushHistoryLocked()
	c.historyRecord = nil

	c.state = Idle
	c.handle = nil
	c.seekOffset = 0
	c.position = mo.None[progress.Update]()
	c.media = nil
	c.mediaURI = ""
}

// durationLocked returns the known track length in seconds. The probe result
// wins over the playlist hint. Callers hold c.mu.
func (c *Controller) durationLocked() (int, bool) {
	if c.media != nil {
		if duration, ok := c.media.Duration.Get(); ok {
			return duration, true
		}
	}

	if track, ok := c.queue.Current(); ok && track.Duration > 0 {
		return track.Duration, true
	}

	return 0, false
}
