package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/anisan-cli/animedex/filesystem"
	"github.com/anisan-cli/animedex/kitsu"
	"github.com/anisan-cli/animedex/pagination"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

var titles = []string{"Cowboy Bebop", "Trigun", "Cowboy Bebop: The Movie", "Monster"}

type fakeSource struct {
	status int
}

func (f *fakeSource) FetchPage(_ context.Context, limit, offset int) (*kitsu.Page, error) {
	if f.status != 0 {
		return nil, &kitsu.FetchError{Kind: kitsu.HTTPStatus, Op: "page", StatusCode: f.status}
	}

	page := &kitsu.Page{Count: len(titles)}
	for i := offset; i < min(offset+limit, len(titles)); i++ {
		page.Records = append(page.Records, kitsu.Record{
			ID:         fmt.Sprint(i + 1),
			Attributes: kitsu.Attributes{CanonicalTitle: titles[i]},
		})
	}
	return page, nil
}

func (f *fakeSource) FetchOne(_ context.Context, id string) (*kitsu.Record, error) {
	if f.status != 0 {
		return nil, &kitsu.FetchError{Kind: kitsu.HTTPStatus, Op: "one", StatusCode: f.status}
	}

	return &kitsu.Record{ID: id, Attributes: kitsu.Attributes{
		CanonicalTitle: "Cowboy Bebop",
		Status:         "finished",
		EpisodeCount:   26,
		Synopsis:       "Space bounty hunters.",
	}}, nil
}

func TestWriteJson(t *testing.T) {
	Convey("writeJson", t, func() {
		Convey("Should produce valid JSON for an empty result", func() {
			var buf bytes.Buffer
			err := writeJson(&buf, &Output{Page: 1, Limit: 10, Filter: "test", Result: []*Anime{}})
			So(err, ShouldBeNil)

			var output Output
			err = json.Unmarshal(buf.Bytes(), &output)
			So(err, ShouldBeNil)
			So(output.Filter, ShouldEqual, "test")
			So(output.Result, ShouldHaveLength, 0)
		})
	})
}

func TestList(t *testing.T) {
	Convey("Given a catalog of four records", t, func() {
		var buf bytes.Buffer
		options := &Options{Out: &buf, Params: pagination.Params{Limit: 2, Offset: 2}}

		Convey("When listing the second page as text", func() {
			err := List(&fakeSource{}, options)

			Convey("Then each record is printed as id and title", func() {
				So(err, ShouldBeNil)
				So(buf.String(), ShouldEqual, "3\tCowboy Bebop: The Movie\n4\tMonster\n")
			})
		})

		Convey("When listing as JSON", func() {
			options.Json = true
			err := List(&fakeSource{}, options)
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)

			Convey("Then the pagination fields are derived from the params", func() {
				So(output.Page, ShouldEqual, 2)
				So(output.Total, ShouldEqual, 4)
				So(output.TotalPages, ShouldEqual, 2)
				So(output.Result, ShouldHaveLength, 2)
				So(output.Result[1].URL, ShouldEndWith, "/4")
			})
		})

		Convey("When filtering the first page", func() {
			options.Params = pagination.Params{Limit: 4}
			options.Filter = "bebop"
			err := List(&fakeSource{}, options)

			Convey("Then only matching titles remain", func() {
				So(err, ShouldBeNil)
				So(buf.String(), ShouldEqual, "1\tCowboy Bebop\n3\tCowboy Bebop: The Movie\n")
			})
		})

		Convey("When picking the last of the filtered records", func() {
			options.Params = pagination.Params{Limit: 4}
			options.Filter = "bebop"
			picker, err := ParsePicker("last", options.Filter)
			So(err, ShouldBeNil)
			options.Picker = mo.Some(picker)

			err = List(&fakeSource{}, options)

			Convey("Then the picked record is printed in full", func() {
				So(err, ShouldBeNil)
				So(buf.String(), ShouldStartWith, "Cowboy Bebop: The Movie\n")
				So(buf.String(), ShouldContainSubstring, "URL: ")
			})
		})

		Convey("When the source answers with an error status", func() {
			err := List(&fakeSource{status: http.StatusServiceUnavailable}, options)

			Convey("Then the fetch error is returned with its kind", func() {
				So(err, ShouldNotBeNil)
				So(kitsu.KindOf(err), ShouldEqual, kitsu.HTTPStatus)
				So(buf.Len(), ShouldEqual, 0)
			})
		})
	})
}

func TestShow(t *testing.T) {
	Convey("Given a record id", t, func() {
		var buf bytes.Buffer
		options := &Options{Out: &buf}

		Convey("When showing it as text", func() {
			err := Show(&fakeSource{}, "1", options)

			Convey("Then title, fields and synopsis are printed", func() {
				So(err, ShouldBeNil)
				So(buf.String(), ShouldStartWith, "Cowboy Bebop\n")
				So(buf.String(), ShouldContainSubstring, "Status: finished\n")
				So(buf.String(), ShouldContainSubstring, "Episodes: 26\n")
				So(buf.String(), ShouldEndWith, "Space bounty hunters.\n")
			})
		})

		Convey("When showing it as JSON", func() {
			options.Json = true
			So(Show(&fakeSource{}, "1", options), ShouldBeNil)

			var anime Anime
			So(json.Unmarshal(buf.Bytes(), &anime), ShouldBeNil)
			So(anime.Record.ID, ShouldEqual, "1")
		})

		Convey("When the record does not exist", func() {
			err := Show(&fakeSource{status: http.StatusNotFound}, "404", options)

			Convey("Then the status message is returned", func() {
				So(err.Error(), ShouldEqual, "failed to fetch anime details: status 404")
			})
		})
	})
}

func TestParsePicker(t *testing.T) {
	Convey("ParsePicker", t, func() {
		records := []kitsu.Record{{ID: "1"}, {ID: "2"}}

		Convey("Should clamp a numeric index to the last record", func() {
			picker, err := ParsePicker("7", "")
			So(err, ShouldBeNil)
			So(picker(records).ID, ShouldEqual, "2")
		})

		Convey("Should return nil for an empty page", func() {
			picker, _ := ParsePicker("first", "")
			So(picker(nil), ShouldBeNil)
		})

		Convey("Should reject unknown pickers", func() {
			_, err := ParsePicker("random", "")
			So(err, ShouldNotBeNil)
		})
	})
}
