package ffmpeg

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSink(t *testing.T) {
	Convey("Sink", t, func() {
		Convey("TCP host renders a tcp:// endpoint", func() {
			s := Sink{Host: "192.168.1.10", Port: "4953"}
			So(s.Target(), ShouldEqual, "tcp://192.168.1.10:4953")
		})

		Convey("A host beginning with '/' is treated as a socket path", func() {
			s := Sink{Host: "/run/snapcast/pcm", Port: "4953"}
			So(s.Target(), ShouldEqual, "/run/snapcast/pcm")
		})
	})
}

func TestPlaybackArgs(t *testing.T) {
	Convey("Playback args", t, func() {
		sink := Sink{Host: "127.0.0.1", Port: "4953"}

		Convey("Base invocation carries the fixed PCM contract", func() {
			args := Playback{URI: "http://radio.example/stream", Sink: sink}.Args()
			So(strings.Join(args, " "), ShouldEqual,
				"-y -i http://radio.example/stream -f u16le -acodec pcm_s16le -ac 2 -ar 48000 tcp://127.0.0.1:4953")
		})

		Convey("Seek offset inserts -ss before the input", func() {
			args := Playback{URI: "song.flac", Sink: sink, SeekSeconds: 95}.Args()
			So(args[1], ShouldEqual, "-ss")
			So(args[2], ShouldEqual, "00:01:35")
			So(args[3], ShouldEqual, "-i")
		})

		Convey("Zero offset omits the seek flag", func() {
			args := Playback{URI: "song.flac", Sink: sink}.Args()
			So(strings.Join(args, " "), ShouldNotContainSubstring, "-ss")
		})

		Convey("Start delay appends an adelay filter before the target", func() {
			args := Playback{URI: "song.flac", Sink: sink, DelayMs: "750"}.Args()
			joined := strings.Join(args, " ")
			So(joined, ShouldContainSubstring, "-af adelay=750:all=true")
			So(args[len(args)-1], ShouldEqual, "tcp://127.0.0.1:4953")
		})
	})
}

func TestProbeArgs(t *testing.T) {
	Convey("Probe args request ffmetadata on stdout", t, func() {
		So(ProbeArgs("song.mp3"), ShouldResemble, []string{"-i", "song.mp3", "-f", "ffmetadata", "-"})
	})
}

func TestClock(t *testing.T) {
	Convey("ParseClock", t, func() {
		Convey("Whole timestamps", func() {
			seconds, err := ParseClock("00:03:21")
			So(err, ShouldBeNil)
			So(seconds, ShouldEqual, 201)
		})

		Convey("Fractional timestamps", func() {
			seconds, err := ParseClock("01:02:03.50")
			So(err, ShouldBeNil)
			So(seconds, ShouldAlmostEqual, 3723.5, 0.001)
		})

		Convey("Garbage is rejected", func() {
			_, err := ParseClock("not a clock")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("FormatClock", t, func() {
		So(FormatClock(0), ShouldEqual, "00:00:00")
		So(FormatClock(95), ShouldEqual, "00:01:35")
		So(FormatClock(3723), ShouldEqual, "01:02:03")
	})

	Convey("RoundSeconds", t, func() {
		So(RoundSeconds(201.49), ShouldEqual, 201)
		So(RoundSeconds(201.5), ShouldEqual, 202)
	})
}
