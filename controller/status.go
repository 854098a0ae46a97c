package controller

import (
	"github.com/pcmcast-cli/pcmcast/metadata"
	"github.com/pcmcast-cli/pcmcast/progress"
	"github.com/samber/mo"
)

// Capabilities flags the transport operations valid right now. They are
// derived from the live state on every Status call, never stored.
type Capabilities struct {
	Pause    bool
	Resume   bool
	Stop     bool
	Seek     bool
	Next     bool
	Previous bool
}

// Status is a point-in-time snapshot of the controller.
type Status struct {
	State State

	Track mo.Option[Track]
	// Media is the probed metadata of the current track, nil until the
	// probe lands.
	Media *metadata.Media
	// Duration is the best known track length in seconds.
	Duration mo.Option[int]
	Position mo.Option[progress.Update]

	Repeat   RepeatMode
	AlbumArt string

	QueueIndex int
	QueueLen   int

	Capabilities Capabilities
}

// Status captures the current playback state under the lock.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	status := Status{
		State:      c.state,
		Repeat:     c.repeat,
		AlbumArt:   c.albumArt,
		QueueIndex: c.queue.Index(),
		QueueLen:   c.queue.Len(),
		Track:      mo.None[Track](),
		Duration:   mo.None[int](),
	}

	if track, ok := c.queue.Current(); ok {
		status.Track = mo.Some(track)
	}

	if c.state == Idle {
		return status
	}

	status.Media = c.media
	status.Position = c.position

	if duration, ok := c.durationLocked(); ok {
		status.Duration = mo.Some(duration)
	}

	alive := c.handle != nil && c.handle.Alive()
	durationKnown := status.Duration.IsPresent()

	status.Capabilities = Capabilities{
		Pause:    c.state == Playing && alive && durationKnown,
		Resume:   c.state == Paused && alive,
		Stop:     true,
		Seek:     alive && durationKnown,
		Next:     c.queue.HasNext(),
		Previous: c.queue.HasPrevious(),
	}

	return status
}
