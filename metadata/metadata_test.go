package metadata

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// probeFixture resembles the combined probe output for a tagged file:
// ffmetadata tags on stdout interleaved with container info from stderr.
const probeFixture = `;FFMETADATA1
title=Bohemian Rhapsody
artist=Queen
album=A Night at the Opera
encoder=Lavf59.27.100
Input #0, mp3, from 'song.mp3':
  Duration: 00:05:55.10, start: 0.025057, bitrate: 320 kb/s
`

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Tagged file yields full media info", func() {
			media := Parse(probeFixture)
			So(media, ShouldNotBeNil)
			So(media.Title, ShouldEqual, "Bohemian Rhapsody")
			So(media.Artist.MustGet(), ShouldEqual, "Queen")
			So(media.Album.MustGet(), ShouldEqual, "A Night at the Opera")
			So(media.Duration.MustGet(), ShouldEqual, 355)
		})

		Convey("Tag keys match case-insensitively", func() {
			media := Parse("TITLE=Loud\nARTIST=Someone\n")
			So(media, ShouldNotBeNil)
			So(media.Title, ShouldEqual, "Loud")
			So(media.Artist.MustGet(), ShouldEqual, "Someone")
		})

		Convey("Duration rounds to whole seconds", func() {
			media := Parse("  Duration: 00:03:21.52, start: 0.0, bitrate: 128 kb/s\n")
			So(media, ShouldNotBeNil)
			So(media.Duration.MustGet(), ShouldEqual, 202)
		})

		Convey("StreamTitle supplies the title when no tags are present", func() {
			media := Parse("Metadata update for StreamTitle: 'Artist - Song Name'\n" +
				"    StreamTitle='Artist - Song Name'\n" +
				"  Duration: N/A, bitrate: 128 kb/s\n")
			So(media, ShouldNotBeNil)
			So(media.Title, ShouldEqual, "Artist - Song Name")
			So(media.Artist.IsAbsent(), ShouldBeTrue)
			So(media.Album.IsAbsent(), ShouldBeTrue)
		})

		Convey("StreamTitle takes priority over the station name", func() {
			media := Parse("icy-name: Some Radio\nStreamTitle='Now Playing'\n")
			So(media, ShouldNotBeNil)
			So(media.Title, ShouldEqual, "Now Playing")
		})

		Convey("Station name is used when nothing else matches", func() {
			media := Parse("icy-name: Some Radio\n")
			So(media, ShouldNotBeNil)
			So(media.Title, ShouldEqual, "Some Radio")
		})

		Convey("Stream markers fill a title missing from the tag set", func() {
			media := Parse("album=Compilation\nStreamTitle='Fallback Title'\n")
			So(media, ShouldNotBeNil)
			So(media.Title, ShouldEqual, "Fallback Title")
			So(media.Album.MustGet(), ShouldEqual, "Compilation")
		})

		Convey("Arbitrary text yields nil, not an error", func() {
			So(Parse("complete nonsense\nnothing to see here\n"), ShouldBeNil)
			So(Parse(""), ShouldBeNil)
		})
	})
}
