package util

import (
	"testing"

	"github.com/anisan-cli/animedex/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "record", "records"), ShouldEqual, "1 record")
		So(Quantify(0, "record", "records"), ShouldEqual, "0 records")
		So(Quantify(20, "record", "records"), ShouldEqual, "20 records")
	})
}

func TestHumanize(t *testing.T) {
	Convey("Humanize", t, func() {
		So(Humanize("finished"), ShouldEqual, "Finished")
		So(Humanize("not_yet_released"), ShouldEqual, "Not yet released")
		So(Humanize(""), ShouldEqual, "")
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(5, 1, 10), ShouldEqual, 5)
		So(Clamp(-3, 1, 10), ShouldEqual, 1)
		So(Clamp(42, 1, 10), ShouldEqual, 10)

		Convey("An empty range collapses to its lower bound", func() {
			So(Clamp(3, 1, 0), ShouldEqual, 1)
		})
	})
}

func TestDelete(t *testing.T) {
	Convey("Given files on the memory backend", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.WriteFile("/a/b/file.txt", []byte("x"), 0644), ShouldBeNil)

		Convey("A single file is removed", func() {
			So(Delete("/a/b/file.txt"), ShouldBeNil)
			exists, _ := fs.Exists("/a/b/file.txt")
			So(exists, ShouldBeFalse)
		})

		Convey("A directory is removed recursively", func() {
			So(Delete("/a"), ShouldBeNil)
			exists, _ := fs.DirExists("/a")
			So(exists, ShouldBeFalse)
		})

		Convey("A missing path is an error", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[string]
		s.Push("list")
		s.Push("detail")
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, "detail")
		So(s.Pop(), ShouldEqual, "detail")
		So(s.Pop(), ShouldEqual, "list")
		So(s.Pop(), ShouldEqual, "")
		So(s.Len(), ShouldEqual, 0)
	})
}
