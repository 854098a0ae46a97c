package config

import (
	"testing"

	"github.com/pcmcast-cli/pcmcast/filesystem"
	"github.com/pcmcast-cli/pcmcast/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Sink defaults match the snapcast convention", func() {
			_ = Setup()
			So(viper.GetString(key.PlayerPort), ShouldEqual, "4953")
			So(viper.GetString(key.PlayerFfmpeg), ShouldEqual, "ffmpeg")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("player.start.delay")
			So(result, ShouldEqual, "player_start_delay")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		f := Default[key.PlayerHost]

		Convey("Env name carries the application prefix", func() {
			So(f.Env(), ShouldEqual, "PCMCAST_PLAYER_HOST")
		})

		Convey("typeName matches the default value", func() {
			probe := Default[key.MetadataProbe]
			maxSize := Default[key.PlaylistMaxSize]
			So(f.typeName(), ShouldEqual, "string")
			So(probe.typeName(), ShouldEqual, "bool")
			So(maxSize.typeName(), ShouldEqual, "int")
		})
	})
}
