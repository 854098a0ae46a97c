package progress

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTrack(t *testing.T) {
	Convey("Track", t, func() {
		collect := func(stream string, offset int) []int {
			var positions []int
			Track(strings.NewReader(stream), offset, func(u Update) {
				positions = append(positions, u.Position)
			})
			return positions
		}

		Convey("Publishes one update per carriage-return chunk", func() {
			stream := "size=256kB time=00:00:01.04 bitrate=1536kbps\r" +
				"size=512kB time=00:00:02.11 bitrate=1536kbps\r" +
				"size=768kB time=00:00:03.02 bitrate=1536kbps\r"
			So(collect(stream, 0), ShouldResemble, []int{1, 2, 3})
		})

		Convey("Adds the seek offset to every position", func() {
			stream := "time=00:00:05.00\rtime=00:00:06.00\r"
			So(collect(stream, 90), ShouldResemble, []int{95, 96})
		})

		Convey("Rounds fractional timestamps", func() {
			So(collect("time=00:01:35.60\r", 0), ShouldResemble, []int{96})
		})

		Convey("Skips chunks without a time marker", func() {
			stream := "Press [q] to stop\rtime=00:00:02.00\rgarbage\r"
			So(collect(stream, 0), ShouldResemble, []int{2})
		})

		Convey("Handles a final chunk without a trailing delimiter", func() {
			So(collect("time=00:00:07.00", 0), ShouldResemble, []int{7})
		})

		Convey("Empty stream produces no updates and returns", func() {
			So(collect("", 0), ShouldBeEmpty)
		})

		Convey("Records an observation timestamp", func() {
			var got Update
			Track(strings.NewReader("time=00:00:01.00\r"), 0, func(u Update) { got = u })
			So(got.At.IsZero(), ShouldBeFalse)
		})
	})
}
