package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestBackend(t *testing.T) {
	Convey("Filesystem backend", t, func() {
		Convey("Should default to the OS", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to memory", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Should accept a custom filesystem", func() {
			SetFs(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			So(API().Name(), ShouldEqual, "ReadOnlyFilter")
			SetMemMapFs()
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("Given the gache adapter on a memory backend", t, func() {
		SetMemMapFs()
		var fs GacheFs

		Convey("It creates directories and files through the backend", func() {
			So(fs.MkdirAll("/cache/animedex", os.ModePerm), ShouldBeNil)

			f, err := fs.OpenFile("/cache/animedex/state.json", os.O_CREATE|os.O_RDWR, 0644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte("{}"))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			exists, err := API().Exists("/cache/animedex/state.json")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})
	})
}
