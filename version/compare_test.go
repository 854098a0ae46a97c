package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Orders semantic versions", func() {
			for _, c := range []struct {
				a, b     string
				expected int
			}{
				{"1.0.0", "1.0.0", 0},
				{"v1.0.0", "1.0.0", 0},
				{"1.2.3", "1.2.2", 1},
				{"1.2.3", "1.3.0", -1},
				{"2.0.0", "1.9.9", 1},
				{"0.1.0", "0.1.1", -1},
			} {
				result, err := Compare(c.a, c.b)
				So(err, ShouldBeNil)
				So(result, ShouldEqual, c.expected)
			}
		})

		Convey("Rejects malformed versions", func() {
			_, err := Compare("abc", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}
