// Package progress extracts a live playback position from the decode process's diagnostic stream.
//
// During playback ffmpeg overwrites a single terminal line with progress
// reports, delimiting each with a carriage return. The tracker reads one
// chunk per delimiter, pulls out the time= marker and publishes an absolute
// position adjusted for the seek offset the process was started with.
package progress

import (
	"bufio"
	"io"
	"regexp"
	"time"

	"github.com/pcmcast-cli/pcmcast/ffmpeg"
	"github.com/pcmcast-cli/pcmcast/util"
)

// Update is a single position observation.
type Update struct {
	// Position is the absolute track position in whole seconds.
	Position int
	// At is the observation timestamp.
	At time.Time
}

// timeRe matches the progress marker emitted on each diagnostic chunk.
var timeRe = regexp.MustCompile(`time=(?P<clock>\d+:\d{1,2}:\d{1,2}(?:\.\d+)?)`)

// Track consumes the diagnostic stream until end-of-input, publishing an
// Update for every chunk carrying a parsable time marker. Chunks without a
// marker are skipped silently. Reaching the end of the stream is the normal
// way this task ends; it is not reported as a failure.
func Track(r io.Reader, offsetSeconds int, publish func(Update)) {
	reader := bufio.NewReader(r)

	for {
		chunk, err := reader.ReadString('\r')

		if pos, ok := extract(chunk); ok {
			publish(Update{Position: pos + offsetSeconds, At: time.Now()})
		}

		if err != nil {
			return
		}
	}
}

// extract pulls the position in whole seconds out of one diagnostic chunk.
func extract(chunk string) (int, bool) {
	groups := util.ReGroups(timeRe, chunk)
	clock, ok := groups["clock"]
	if !ok {
		return 0, false
	}

	seconds, err := ffmpeg.ParseClock(clock)
	if err != nil {
		return 0, false
	}

	return ffmpeg.RoundSeconds(seconds), true
}
