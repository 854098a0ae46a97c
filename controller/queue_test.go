package controller

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func threeTracks() Queue {
	return NewQueue([]Track{
		{URI: "a.mp3", Title: "A"},
		{URI: "b.mp3", Title: "B"},
		{URI: "c.mp3", Title: "C"},
	})
}

func TestQueue(t *testing.T) {
	Convey("Queue", t, func() {
		Convey("An empty queue has no current track", func() {
			q := NewQueue(nil)
			So(q.Empty(), ShouldBeTrue)

			_, ok := q.Current()
			So(ok, ShouldBeFalse)
			So(q.HasNext(), ShouldBeFalse)
			So(q.HasPrevious(), ShouldBeFalse)
		})

		Convey("Manual navigation", func() {
			q := threeTracks()

			Convey("Next walks forward and stops at the last track", func() {
				So(q.Next(), ShouldBeTrue)
				So(q.Next(), ShouldBeTrue)
				So(q.Next(), ShouldBeFalse)
				So(q.Index(), ShouldEqual, 2)
			})

			Convey("Previous at the first track stays on it", func() {
				So(q.Previous(), ShouldBeTrue)
				So(q.Index(), ShouldEqual, 0)

				current, _ := q.Current()
				So(current.URI, ShouldEqual, "a.mp3")
			})

			Convey("Previous retreats from the middle", func() {
				q.Next()
				So(q.Previous(), ShouldBeTrue)
				So(q.Index(), ShouldEqual, 0)
			})
		})

		Convey("Advance", func() {
			Convey("Repeat one stays on the same track", func() {
				q := threeTracks()
				So(q.Advance(RepeatOne), ShouldBeTrue)
				So(q.Index(), ShouldEqual, 0)
			})

			Convey("Repeat all wraps from the last track to the first", func() {
				q := threeTracks()
				q.Next()
				q.Next()

				So(q.Advance(RepeatAll), ShouldBeTrue)
				So(q.Index(), ShouldEqual, 0)
			})

			Convey("No repeat stops after the last track", func() {
				q := threeTracks()
				So(q.Advance(RepeatOff), ShouldBeTrue)
				So(q.Index(), ShouldEqual, 1)

				q.Next()
				So(q.Advance(RepeatOff), ShouldBeFalse)
			})
		})
	})
}

func TestParseRepeatMode(t *testing.T) {
	Convey("ParseRepeatMode", t, func() {
		for input, expected := range map[string]RepeatMode{
			"off": RepeatOff,
			"":    RepeatOff,
			"one": RepeatOne,
			"ALL": RepeatAll,
		} {
			mode, err := ParseRepeatMode(input)
			So(err, ShouldBeNil)
			So(mode, ShouldEqual, expected)
		}

		_, err := ParseRepeatMode("twice")
		So(err, ShouldNotBeNil)
	})
}
