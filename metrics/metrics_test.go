package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestObserveRequest(t *testing.T) {
	Convey("Given a recorded request", t, func() {
		before := testutil.ToFloat64(requestsTotal.WithLabelValues("page", "success"))
		ObserveRequest("page", "success", 120*time.Millisecond)

		Convey("The counter for its labels grows by one", func() {
			after := testutil.ToFloat64(requestsTotal.WithLabelValues("page", "success"))
			So(after-before, ShouldEqual, 1)
		})

		Convey("Other outcomes are untouched", func() {
			So(testutil.ToFloat64(requestsTotal.WithLabelValues("page", "never")), ShouldEqual, 0)
		})
	})
}

func TestStaleResult(t *testing.T) {
	Convey("Stale results are counted per controller", t, func() {
		before := testutil.ToFloat64(staleResults.WithLabelValues("list"))
		StaleResult("list")
		StaleResult("list")
		So(testutil.ToFloat64(staleResults.WithLabelValues("list"))-before, ShouldEqual, 2)
	})
}

func TestWriteTextfile(t *testing.T) {
	Convey("Given some observations", t, func() {
		ObserveRequest("one", "http_status", time.Second)
		path := filepath.Join(t.TempDir(), "animedex.prom")

		Convey("The registry is written in text format", func() {
			So(WriteTextfile(path), ShouldBeNil)
			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(strings.Contains(string(data), `animedex_requests_total{operation="one",outcome="http_status"}`), ShouldBeTrue)
		})
	})
}
