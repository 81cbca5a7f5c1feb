package kitsu

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

const samplePage = `{
	"data": [
		{"id": "1", "attributes": {"titles": {"en": "Cowboy Bebop", "en_jp": "Cowboy Bebop"}, "canonicalTitle": "Cowboy Bebop", "episodeCount": 26, "averageRating": "82.14", "startDate": "1998-04-03"}},
		{"id": "2", "attributes": {"titles": {"en_jp": "Cowboy Bebop: Tengoku no Tobira"}, "canonicalTitle": "Cowboy Bebop: The Movie"}}
	],
	"meta": {"count": 57}
}`

const sampleOne = `{"data": {"id": "7442", "attributes": {"titles": {"en": "Attack on Titan"}, "canonicalTitle": "Shingeki no Kyojin", "synopsis": "Humanity fights titans.", "status": "finished", "ratingFrequencies": {"2": "10", "20": "5"}}}}`

func serve(status int, body string, queries *[]string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if queries != nil {
			*queries = append(*queries, r.URL.RequestURI())
		}
		w.Header().Set("Content-Type", mediaType)
		w.WriteHeader(status)
		_, _ = fmt.Fprint(w, body)
	}))
}

func TestFetchPage(t *testing.T) {
	Convey("Given a Kitsu server", t, func() {
		Convey("When a page is requested", func() {
			var requests []string
			srv := serve(http.StatusOK, samplePage, &requests)
			defer srv.Close()

			page, err := New(srv.URL+"/anime", srv.Client()).FetchPage(context.Background(), 10, 20)

			Convey("Then records and the collection size are returned", func() {
				So(err, ShouldBeNil)
				So(page.Count, ShouldEqual, 57)
				So(page.Records, ShouldHaveLength, 2)
				So(page.Records[0].ID, ShouldEqual, "1")
				So(page.Records[0].Attributes.EpisodeCount, ShouldEqual, 26)
			})

			Convey("Then the JSON:API page parameters are sent", func() {
				So(requests, ShouldHaveLength, 1)
				So(requests[0], ShouldEqual, "/anime?page%5Blimit%5D=10&page%5Boffset%5D=20")
			})
		})

		Convey("When the server answers with an error status", func() {
			srv := serve(http.StatusInternalServerError, `{"errors": []}`, nil)
			defer srv.Close()

			_, err := New(srv.URL, srv.Client()).FetchPage(context.Background(), 10, 0)

			Convey("Then the error is an HTTPStatus failure", func() {
				var fe *FetchError
				So(errors.As(err, &fe), ShouldBeTrue)
				So(fe.Kind, ShouldEqual, HTTPStatus)
				So(fe.StatusCode, ShouldEqual, http.StatusInternalServerError)
				So(err.Error(), ShouldEqual, "failed to fetch items: status 500")
			})
		})

		Convey("When the body is not JSON", func() {
			srv := serve(http.StatusOK, `<html>`, nil)
			defer srv.Close()

			_, err := New(srv.URL, srv.Client()).FetchPage(context.Background(), 10, 0)

			Convey("Then the error is a Decode failure", func() {
				So(KindOf(err), ShouldEqual, Decode)
			})
		})

		Convey("When the body lacks meta.count", func() {
			srv := serve(http.StatusOK, `{"data": []}`, nil)
			defer srv.Close()

			_, err := New(srv.URL, srv.Client()).FetchPage(context.Background(), 10, 0)

			Convey("Then the error is a Decode failure", func() {
				So(KindOf(err), ShouldEqual, Decode)
				So(err.Error(), ShouldContainSubstring, "meta.count")
			})
		})

		Convey("When the body lacks data", func() {
			srv := serve(http.StatusOK, `{"meta": {"count": 3}}`, nil)
			defer srv.Close()

			_, err := New(srv.URL, srv.Client()).FetchPage(context.Background(), 10, 0)

			Convey("Then the error is a Decode failure", func() {
				So(KindOf(err), ShouldEqual, Decode)
			})
		})
	})
}

func TestFetchOne(t *testing.T) {
	Convey("Given a Kitsu server", t, func() {
		Convey("When a known id is requested", func() {
			var requests []string
			srv := serve(http.StatusOK, sampleOne, &requests)
			defer srv.Close()

			record, err := New(srv.URL+"/anime/", srv.Client()).FetchOne(context.Background(), "7442")

			Convey("Then the record is returned", func() {
				So(err, ShouldBeNil)
				So(requests, ShouldResemble, []string{"/anime/7442"})
				So(record.ID, ShouldEqual, "7442")
				So(record.Title(), ShouldEqual, "Attack on Titan")
				So(record.Attributes.Synopsis, ShouldEqual, "Humanity fights titans.")
				So(record.Votes(), ShouldEqual, 15)
			})
		})

		Convey("When the id is unknown", func() {
			srv := serve(http.StatusNotFound, `{"errors": [{"title": "Record not found"}]}`, nil)
			defer srv.Close()

			_, err := New(srv.URL, srv.Client()).FetchOne(context.Background(), "999999999")

			Convey("Then the error is an HTTPStatus failure with code 404", func() {
				var fe *FetchError
				So(errors.As(err, &fe), ShouldBeTrue)
				So(fe.Kind, ShouldEqual, HTTPStatus)
				So(fe.StatusCode, ShouldEqual, http.StatusNotFound)
				So(err.Error(), ShouldEqual, "failed to fetch anime details: status 404")
			})
		})

		Convey("When the server is unreachable", func() {
			srv := serve(http.StatusOK, sampleOne, nil)
			base := srv.URL
			srv.Close()

			_, err := New(base, nil).FetchOne(context.Background(), "1")

			Convey("Then the error is a Network failure", func() {
				So(KindOf(err), ShouldEqual, Network)
			})
		})
	})
}

func TestCancellation(t *testing.T) {
	Convey("Given a slow Kitsu server", t, func() {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
			_, _ = fmt.Fprint(w, samplePage)
		}))
		defer srv.Close()
		defer close(release)

		Convey("When the caller cancels mid-flight", func() {
			ctx, cancel := context.WithCancel(context.Background())
			time.AfterFunc(20*time.Millisecond, cancel)

			page, err := New(srv.URL, srv.Client()).FetchPage(ctx, 10, 0)

			Convey("Then the call resolves to Cancelled", func() {
				So(page, ShouldBeNil)
				So(IsCancelled(err), ShouldBeTrue)
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})

		Convey("When the context is cancelled before the call", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := New(srv.URL, srv.Client()).FetchOne(ctx, "1")

			Convey("Then the call resolves to Cancelled", func() {
				So(KindOf(err), ShouldEqual, Cancelled)
			})
		})

		Convey("When the deadline expires", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()

			_, err := New(srv.URL, srv.Client()).FetchPage(ctx, 10, 0)

			Convey("Then the timeout is reported as a Network failure", func() {
				So(KindOf(err), ShouldEqual, Network)
			})
		})
	})
}
