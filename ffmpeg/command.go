// Package ffmpeg supervises the external decode process that converts arbitrary
// source audio into a raw PCM stream aimed at a fixed sink.
//
// The invocation contract is fixed: playback mode re-encodes to signed 16-bit
// little-endian stereo at 48 kHz, probe mode dumps ffmetadata without producing
// any audio output. The process has no native pause, resume or seek primitive;
// those are implemented by the caller through signals and restarts.
package ffmpeg

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pcmcast-cli/pcmcast/key"
	"github.com/pcmcast-cli/pcmcast/util"
	"github.com/spf13/viper"
)

// Sink describes the PCM destination for playback mode.
type Sink struct {
	// Host is a TCP host, or a Unix socket/FIFO path when it begins with '/'.
	Host string
	// Port is the TCP port; ignored for socket paths.
	Port string
}

// Target renders the sink as an ffmpeg output argument.
func (s Sink) Target() string {
	if strings.HasPrefix(s.Host, "/") {
		return s.Host
	}
	return fmt.Sprintf("tcp://%s:%s", s.Host, s.Port)
}

// Playback describes a single playback-mode invocation.
type Playback struct {
	URI string
	Sink Sink
	// SeekSeconds is the start offset; 0 means play from the beginning.
	SeekSeconds int
	// DelayMs is the adelay filter value in milliseconds; empty disables the filter.
	DelayMs string
}

// Args builds the fixed playback argument set.
func (p Playback) Args() []string {
	args := []string{"-y"}
	if p.SeekSeconds > 0 {
		args = append(args, "-ss", FormatClock(float64(p.SeekSeconds)))
	}
	args = append(args,
		"-i", p.URI,
		"-f", "u16le",
		"-acodec", "pcm_s16le",
		"-ac", "2",
		"-ar", "48000",
	)
	if p.DelayMs != "" {
		args = append(args, "-af", fmt.Sprintf("adelay=%s:all=true", p.DelayMs))
	}
	return append(args, p.Sink.Target())
}

// ProbeArgs builds the metadata-probe argument set for a URI.
// Structured tags arrive on stdout, stream/container info on stderr.
func ProbeArgs(uri string) []string {
	return []string{"-i", uri, "-f", "ffmetadata", "-"}
}

// Program resolves the configured ffmpeg executable path.
func Program() string {
	if p := viper.GetString(key.PlayerFfmpeg); p != "" {
		return p
	}
	return "ffmpeg"
}

// clockRe matches an HH:MM:SS timestamp with an optional fractional part.
var clockRe = regexp.MustCompile(`^(?P<h>\d+):(?P<m>\d{1,2}):(?P<s>\d{1,2}(?:\.\d+)?)$`)

// ParseClock converts an HH:MM:SS.ff timestamp into seconds.
func ParseClock(clock string) (float64, error) {
	groups := util.ReGroups(clockRe, strings.TrimSpace(clock))
	if len(groups) == 0 {
		return 0, fmt.Errorf("malformed clock value %q", clock)
	}

	h, _ := strconv.Atoi(groups["h"])
	m, _ := strconv.Atoi(groups["m"])
	s, err := strconv.ParseFloat(groups["s"], 64)
	if err != nil {
		return 0, fmt.Errorf("malformed clock value %q: %w", clock, err)
	}

	return float64(h)*3600 + float64(m)*60 + s, nil
}

// RoundSeconds rounds a fractional second count to the nearest whole second.
func RoundSeconds(seconds float64) int {
	return int(math.Round(seconds))
}

// FormatClock renders a second count as HH:MM:SS for the -ss flag.
func FormatClock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
