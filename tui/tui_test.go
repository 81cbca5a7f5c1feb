package tui

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/anisan-cli/animedex/filesystem"
	"github.com/anisan-cli/animedex/key"
	"github.com/anisan-cli/animedex/kitsu"
	"github.com/anisan-cli/animedex/pagination"
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.TUIShowSynopsis, true)
	viper.Set(key.PaginationWindowSize, 5)
}

type fakeSource struct {
	count    int
	failPage bool
	pages    int
}

func (f *fakeSource) FetchPage(ctx context.Context, limit, offset int) (*kitsu.Page, error) {
	f.pages++
	if f.failPage {
		return nil, &kitsu.FetchError{Kind: kitsu.HTTPStatus, Op: "page", StatusCode: http.StatusInternalServerError}
	}

	page := &kitsu.Page{Count: f.count}
	for i := offset; i < min(offset+limit, f.count); i++ {
		page.Records = append(page.Records, kitsu.Record{
			ID:         fmt.Sprint(i + 1),
			Attributes: kitsu.Attributes{CanonicalTitle: fmt.Sprintf("Anime %d", i+1), Status: "finished"},
		})
	}
	return page, nil
}

func (f *fakeSource) FetchOne(ctx context.Context, id string) (*kitsu.Record, error) {
	return &kitsu.Record{ID: id, Attributes: kitsu.Attributes{CanonicalTitle: "Anime " + id, Synopsis: "A story."}}, nil
}

// drive runs cmd and feeds fetch results back into b until nothing is left.
func drive(b *statefulBubble, cmd tea.Cmd) {
	if cmd == nil {
		return
	}

	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			drive(b, c)
		}
	case listSettledMsg, detailSettledMsg:
		_, next := b.Update(msg)
		drive(b, next)
	}
}

func press(b *statefulBubble, keys ...string) tea.Cmd {
	var cmds []tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd := b.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func TestBubble(t *testing.T) {
	Convey("Given a catalog of 25 anime", t, func() {
		src := &fakeSource{count: 25}
		b := newBubble(&Options{Params: pagination.Params{Limit: 10}}, src)
		b.resize(100, 40)

		drive(b, b.Init())

		Convey("Then the first page is listed", func() {
			So(b.state, ShouldEqual, listState)
			So(b.recordsC.Items(), ShouldHaveLength, 10)
			So(b.total, ShouldEqual, 25)
			So(b.totalPages(), ShouldEqual, 3)
			So(b.View(), ShouldContainSubstring, "Anime 1")
		})

		Convey("When moving back from the first page", func() {
			cmd := press(b, "left")
			drive(b, cmd)

			Convey("Then nothing is requested", func() {
				So(src.pages, ShouldEqual, 1)
				So(b.shown.CurrentPage(), ShouldEqual, 1)
			})
		})

		Convey("When moving to the last page", func() {
			drive(b, press(b, "right"))
			drive(b, press(b, "right"))

			Convey("Then it holds the remaining records", func() {
				So(b.shown, ShouldResemble, pagination.Params{Limit: 10, Offset: 20})
				So(b.recordsC.Items(), ShouldHaveLength, 5)
			})

			Convey("Then next does nothing", func() {
				drive(b, press(b, "right"))
				So(src.pages, ShouldEqual, 3)
			})
		})

		Convey("When jumping to a page past the end", func() {
			drive(b, press(b, ":", "9", "enter"))

			Convey("Then the last page is shown", func() {
				So(b.state, ShouldEqual, listState)
				So(b.shown.CurrentPage(), ShouldEqual, 3)
			})
		})

		Convey("When a page load is cancelled", func() {
			pending := press(b, "right")
			So(b.state, ShouldEqual, loadingState)
			press(b, "esc")
			drive(b, pending)

			Convey("Then the late result is ignored", func() {
				So(b.state, ShouldEqual, listState)
				So(b.shown.CurrentPage(), ShouldEqual, 1)
				So(b.list.State().IsIdle(), ShouldBeTrue)
			})
		})

		Convey("When a record is opened", func() {
			b.recordsC.Select(2)
			drive(b, press(b, "enter"))

			Convey("Then its details are shown", func() {
				So(b.state, ShouldEqual, detailState)
				So(b.record.ID, ShouldEqual, "3")
				So(b.View(), ShouldContainSubstring, "A story.")
			})

			Convey("Then back returns to the same page", func() {
				press(b, "esc")
				So(b.state, ShouldEqual, listState)
				So(b.shown.CurrentPage(), ShouldEqual, 1)
			})
		})

		Convey("When the page size grows", func() {
			drive(b, press(b, "+"))

			Convey("Then the page is refetched with the new limit", func() {
				So(b.shown.Limit, ShouldEqual, 11)
				So(b.recordsC.Items(), ShouldHaveLength, 11)
			})
		})
	})

	Convey("Given a catalog that fails", t, func() {
		src := &fakeSource{count: 25, failPage: true}
		b := newBubble(&Options{Params: pagination.Params{Limit: 10}}, src)
		b.resize(100, 40)

		drive(b, b.Init())

		Convey("Then the error is shown", func() {
			So(b.state, ShouldEqual, errorState)
			So(b.View(), ShouldContainSubstring, "Error: failed to fetch items: status 500")
		})

		Convey("When retrying after the catalog recovers", func() {
			src.failPage = false
			drive(b, press(b, "r"))

			Convey("Then the page is listed", func() {
				So(b.state, ShouldEqual, listState)
				So(src.pages, ShouldEqual, 2)
			})
		})
	})

	Convey("pageBar", t, func() {
		b := newBubble(&Options{Params: pagination.Params{Limit: 10}}, &fakeSource{count: 95})
		drive(b, b.Init())
		drive(b, press(b, ":", "7", "enter"))

		So(b.shown.CurrentPage(), ShouldEqual, 7)
		bar := b.pageBar()
		for _, page := range []string{"5", "6", "7", "8", "9"} {
			So(bar, ShouldContainSubstring, page)
		}
		So(bar, ShouldNotContainSubstring, "10")
	})

	Convey("Given a start on a remembered record", t, func() {
		b := newBubble(&Options{Params: pagination.Params{Limit: 10, Offset: 10}, Record: "12"}, &fakeSource{count: 25})
		b.pendingRecord = b.options.Record
		b.resize(100, 40)

		drive(b, b.Init())

		Convey("Then the record opens over its page", func() {
			So(b.state, ShouldEqual, detailState)
			So(b.record.ID, ShouldEqual, "12")
			So(b.statesHistory.Peek(), ShouldEqual, listState)
		})
	})
}
