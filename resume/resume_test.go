package resume

import (
	"testing"

	"github.com/anisan-cli/animedex/filesystem"
	"github.com/anisan-cli/animedex/key"
	"github.com/anisan-cli/animedex/pagination"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestResume(t *testing.T) {
	Convey("Given resume is enabled", t, func() {
		viper.Set(key.ResumeEnable, true)
		viper.Set(key.PaginationDefaultLimit, 10)
		So(Clear(), ShouldBeNil)

		Convey("When nothing was saved", func() {
			snapshot, err := Get()

			Convey("Then there is no snapshot", func() {
				So(err, ShouldBeNil)
				So(snapshot.IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("When a page is saved", func() {
			So(SavePage(pagination.Params{Limit: 20, Offset: 60}), ShouldBeNil)
			snapshot, err := Get()

			Convey("Then it is restored", func() {
				So(err, ShouldBeNil)
				So(snapshot.MustGet().Params(), ShouldResemble, pagination.Params{Limit: 20, Offset: 60})
				So(snapshot.MustGet().Record, ShouldBeEmpty)
			})

			Convey("Then an opened record is kept with it", func() {
				So(SaveRecord("7442"), ShouldBeNil)
				snapshot, _ := Get()
				So(snapshot.MustGet().Record, ShouldEqual, "7442")
				So(snapshot.MustGet().Params().Offset, ShouldEqual, 60)
			})
		})

		Convey("When a record is saved without a page", func() {
			So(SaveRecord("1"), ShouldBeNil)
			snapshot, _ := Get()
			So(snapshot.MustGet().Params(), ShouldResemble, pagination.Params{Limit: 10})
		})
	})

	Convey("Given resume is disabled", t, func() {
		viper.Set(key.ResumeEnable, false)
		So(Clear(), ShouldBeNil)
		So(SavePage(pagination.Params{Limit: 5, Offset: 5}), ShouldBeNil)

		snapshot, err := Get()
		So(err, ShouldBeNil)
		So(snapshot.IsAbsent(), ShouldBeTrue)
	})
}
