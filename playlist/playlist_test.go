package playlist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pcmcast-cli/pcmcast/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/pcmcast-cli/pcmcast/key"
)

func init() {
	viper.SetDefault(key.PlaylistFetchTimeout, 5)
	viper.SetDefault(key.PlaylistMaxSize, 64*1024)
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Entries, artwork and option directives", func() {
			document := strings.Join([]string{
				"#EXTM3U",
				"#EXTVLCOPT:network-caching=1000",
				"#EXTIMG:cover.jpg",
				"#EXTINF:185,Artist - First Song",
				"first.mp3",
				"#EXTINF:221,Artist - Second Song",
				"second.mp3",
			}, "\n")

			result := Parse(document, "/music/album/list.m3u")
			So(result.Empty(), ShouldBeFalse)
			So(result.URIs(), ShouldResemble, []string{
				"/music/album/first.mp3",
				"/music/album/second.mp3",
			})
			So(result.AlbumArt, ShouldEqual, "/music/album/cover.jpg")
			So(result.Entries[0].Title, ShouldEqual, "Artist - First Song")
			So(result.Entries[0].Duration, ShouldEqual, 185)
		})

		Convey("Directive ordering does not matter", func() {
			document := strings.Join([]string{
				"#EXTINF:10,One",
				"one.mp3",
				"#PCMCAST-OPT:gain=3",
				"two.mp3",
				"#EXTIMG:art.png",
			}, "\n")

			result := Parse(document, "/pl/x.m3u")
			So(len(result.Entries), ShouldEqual, 2)
			So(result.AlbumArt, ShouldEqual, "/pl/art.png")
		})

		Convey("Option directives are never playable entries", func() {
			result := Parse("#EXTVLCOPT:start-time=30\n#PCMCAST-OPT:foo=bar\n", "/pl/x.m3u")
			So(result.Empty(), ShouldBeTrue)
		})

		Convey("First artwork directive wins", func() {
			result := Parse("#EXTIMG:a.png\n#EXTIMG:b.png\nsong.mp3\n", "/pl/x.m3u")
			So(result.AlbumArt, ShouldEqual, "/pl/a.png")
		})

		Convey("Absolute references are left untouched", func() {
			document := "http://radio.example/stream\n/srv/music/track.flac\n"
			result := Parse(document, "/pl/x.m3u")
			So(result.URIs(), ShouldResemble, []string{
				"http://radio.example/stream",
				"/srv/music/track.flac",
			})
		})

		Convey("Relative references resolve against a remote playlist URL", func() {
			result := Parse("song.mp3\n", "http://host.example/lists/mix.m3u")
			So(result.URIs(), ShouldResemble, []string{"http://host.example/lists/song.mp3"})
		})

		Convey("Empty or comment-only documents parse to an empty result", func() {
			So(Parse("", "/pl/x.m3u").Empty(), ShouldBeTrue)
			So(Parse("#EXTM3U\n# a comment\n", "/pl/x.m3u").Empty(), ShouldBeTrue)
		})

		Convey("EXTINF without a duration still carries the title", func() {
			result := Parse("#EXTINF:-1,Live Stream\nhttp://radio.example/live\n", "")
			So(result.Entries[0].Title, ShouldEqual, "Live Stream")
			So(result.Entries[0].Duration, ShouldEqual, 0)
		})
	})
}

func TestIsPlaylistRef(t *testing.T) {
	Convey("IsPlaylistRef", t, func() {
		So(IsPlaylistRef("/music/list.m3u"), ShouldBeTrue)
		So(IsPlaylistRef("http://host/list.M3U8?token=x"), ShouldBeTrue)
		So(IsPlaylistRef("/music/song.mp3"), ShouldBeFalse)
		So(IsPlaylistRef("http://host/stream"), ShouldBeFalse)
	})
}

func TestFetch(t *testing.T) {
	Convey("Fetch", t, func() {
		Convey("Reads local playlists through the virtualized filesystem", func() {
			filesystem.SetMemMapFs()
			defer filesystem.SetOsFs()

			document := "#EXTINF:10,One\none.mp3\n"
			So(filesystem.API().WriteFile("/pl/local.m3u", []byte(document), 0644), ShouldBeNil)

			result, err := Fetch(context.Background(), "/pl/local.m3u")
			So(err, ShouldBeNil)
			So(result.URIs(), ShouldResemble, []string{"/pl/one.mp3"})
		})

		Convey("Missing local file is an error", func() {
			filesystem.SetMemMapFs()
			defer filesystem.SetOsFs()

			_, err := Fetch(context.Background(), "/pl/absent.m3u")
			So(err, ShouldNotBeNil)
		})

		Convey("Fetches remote playlists over HTTP", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("#EXTM3U\nsong.mp3\n"))
			}))
			defer server.Close()

			result, err := Fetch(context.Background(), server.URL+"/lists/mix.m3u")
			So(err, ShouldBeNil)
			So(len(result.Entries), ShouldEqual, 1)
			So(result.Entries[0].URI, ShouldEndWith, "/lists/song.mp3")
		})

		Convey("Non-200 responses are an error", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			}))
			defer server.Close()

			_, err := Fetch(context.Background(), server.URL+"/gone.m3u")
			So(err, ShouldNotBeNil)
		})
	})
}
