package network

import (
	"net/http"
	"testing"
	"time"

	"github.com/anisan-cli/animedex/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	Convey("Given a configured timeout", t, func() {
		viper.Set(key.APITimeout, 7)

		Convey("The client applies it", func() {
			c := New()
			So(c.Timeout, ShouldEqual, 7*time.Second)
			So(c.Transport, ShouldHaveSameTypeAs, &http.Transport{})
		})

		Convey("Zero disables the client timeout", func() {
			viper.Set(key.APITimeout, 0)
			So(New().Timeout, ShouldEqual, time.Duration(0))
		})
	})
}
