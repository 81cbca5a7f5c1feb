package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRecordURL(t *testing.T) {
	Convey("RecordURL", t, func() {
		So(RecordURL("7442"), ShouldEqual, "https://kitsu.io/anime/7442")
		So(RecordURL("a/b"), ShouldEqual, "https://kitsu.io/anime/a%2Fb")
	})
}

func TestCommand(t *testing.T) {
	Convey("command", t, func() {
		Convey("Should pick the platform opener", func() {
			cmd, ok := command("linux", "https://kitsu.io")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", "https://kitsu.io"})

			cmd, ok = command("darwin", "https://kitsu.io")
			So(ok, ShouldBeTrue)
			So(cmd.Args[0], ShouldEqual, "open")
		})

		Convey("Should refuse unknown platforms", func() {
			_, ok := command("plan9", "https://kitsu.io")
			So(ok, ShouldBeFalse)
		})
	})
}
