package utils

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCapitalize(t *testing.T) {
	Convey("TestCapitalize", t, func() {
		So(Capitalize("species"), ShouldEqual, "Species")
		So(Capitalize("Species"), ShouldEqual, "Species")
		So(Capitalize(""), ShouldEqual, "")
		So(Capitalize("éclair"), ShouldEqual, "Éclair")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("TestMaxMin", t, func() {
		So(Max(3, 5), ShouldEqual, 5)
		So(Min(3, 5), ShouldEqual, 3)
		So(Max(-1.5, -2.5), ShouldEqual, -1.5)
	})
}
