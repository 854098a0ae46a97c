package source

import (
	"testing"

	"github.com/pcmcast-cli/pcmcast/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDirectResolve(t *testing.T) {
	Convey("Direct.Resolve", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		resolver := Direct{}

		Convey("URLs pass through untouched", func() {
			url, err := resolver.Resolve("http://radio.example/stream")
			So(err, ShouldBeNil)
			So(url, ShouldEqual, "http://radio.example/stream")
		})

		Convey("Existing local paths resolve to absolute paths", func() {
			So(filesystem.API().WriteFile("/music/song.mp3", []byte("x"), 0644), ShouldBeNil)
			path, err := resolver.Resolve("/music/song.mp3")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "/music/song.mp3")
		})

		Convey("Missing local paths are rejected", func() {
			_, err := resolver.Resolve("/music/absent.mp3")
			So(err, ShouldNotBeNil)
		})

		Convey("Flag-like references are rejected", func() {
			_, err := resolver.Resolve("-loglevel")
			So(err, ShouldNotBeNil)
		})

		Convey("Empty references are rejected", func() {
			_, err := resolver.Resolve("  ")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestDirectBrowse(t *testing.T) {
	Convey("Direct.Browse", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		fs := filesystem.API()
		lo.Must0(fs.MkdirAll("/music/albums", 0755))
		lo.Must0(fs.WriteFile("/music/one.mp3", []byte("x"), 0644))
		lo.Must0(fs.WriteFile("/music/two.flac", []byte("x"), 0644))
		lo.Must0(fs.WriteFile("/music/list.m3u", []byte("x"), 0644))
		lo.Must0(fs.WriteFile("/music/notes.txt", []byte("x"), 0644))
		lo.Must0(fs.WriteFile("/music/.hidden.mp3", []byte("x"), 0644))

		items, err := Direct{}.Browse("/music")
		So(err, ShouldBeNil)

		Convey("Directories come first, audio and playlists follow, the rest is skipped", func() {
			names := lo.Map(items, func(i Item, _ int) string { return i.Name })
			So(names, ShouldResemble, []string{"albums", "list.m3u", "one.mp3", "two.flac"})
			So(items[0].Dir, ShouldBeTrue)
		})

		Convey("Filter fuzzy-matches by name", func() {
			filtered := Filter(items, "one")
			So(len(filtered), ShouldEqual, 1)
			So(filtered[0].Name, ShouldEqual, "one.mp3")

			So(Filter(items, ""), ShouldResemble, items)
		})

		Convey("Browsing a missing directory is an error", func() {
			_, err := Direct{}.Browse("/absent")
			So(err, ShouldNotBeNil)
		})
	})
}
