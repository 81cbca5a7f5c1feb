package tui

import (
	"fmt"

	"github.com/anisan-cli/animedex/fetch"
	"github.com/anisan-cli/animedex/icon"
	"github.com/anisan-cli/animedex/internal/ui"
	"github.com/anisan-cli/animedex/kitsu"
	"github.com/anisan-cli/animedex/log"
	"github.com/anisan-cli/animedex/open"
	"github.com/anisan-cli/animedex/pagination"
	"github.com/anisan-cli/animedex/resume"
	"github.com/anisan-cli/animedex/util"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	listFetch   = "list"
	detailFetch = "detail"
)

type (
	listSettledMsg   fetch.Outcome[pagination.Params, *kitsu.Page]
	detailSettledMsg fetch.Outcome[string, *kitsu.Record]
)

// perform runs req off the update loop and delivers its outcome as a message.
func perform[P comparable, T any](req fetch.Request[P, T], wrap func(fetch.Outcome[P, T]) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return wrap(req.Do())
	}
}

// requestPage asks the list controller for p. A repeated snapshot is not refetched.
func (b *statefulBubble) requestPage(p pagination.Params) tea.Cmd {
	req, ok := b.list.OnParamsChanged(p)
	if !ok {
		return nil
	}

	return b.startLoading(listFetch, fmt.Sprintf("Fetching page %d", p.CurrentPage()),
		perform(req, func(o fetch.Outcome[pagination.Params, *kitsu.Page]) tea.Msg {
			return listSettledMsg(o)
		}))
}

func (b *statefulBubble) reloadPage() tea.Cmd {
	req, ok := b.list.Reload()
	if !ok {
		return b.requestPage(b.shown)
	}

	return b.startLoading(listFetch, fmt.Sprintf("Reloading page %d", req.Params().CurrentPage()),
		perform(req, func(o fetch.Outcome[pagination.Params, *kitsu.Page]) tea.Msg {
			return listSettledMsg(o)
		}))
}

// requestRecord asks the detail controller for id, showing the cached record when it is unchanged.
func (b *statefulBubble) requestRecord(id string) tea.Cmd {
	req, ok := b.detail.OnParamsChanged(id)
	if !ok {
		b.applyDetail()
		return nil
	}

	return b.startLoading(detailFetch, "Fetching details",
		perform(req, func(o fetch.Outcome[string, *kitsu.Record]) tea.Msg {
			return detailSettledMsg(o)
		}))
}

func (b *statefulBubble) reloadRecord() tea.Cmd {
	req, ok := b.detail.Reload()
	if !ok {
		return nil
	}

	return b.startLoading(detailFetch, "Reloading details",
		perform(req, func(o fetch.Outcome[string, *kitsu.Record]) tea.Msg {
			return detailSettledMsg(o)
		}))
}

func (b *statefulBubble) startLoading(what, status string, cmd tea.Cmd) tea.Cmd {
	b.loadingWhat = what
	b.loadingStatus = status
	if b.state != loadingState {
		b.beforeLoading = b.state
	}
	b.setState(loadingState)
	return tea.Batch(b.spinnerC.Tick, cmd)
}

// cancelLoading drops the request in flight and returns to what was on screen.
func (b *statefulBubble) cancelLoading() tea.Cmd {
	switch b.loadingWhat {
	case listFetch:
		b.list.Reset()
	case detailFetch:
		b.detail.Reset()
	}

	if b.beforeLoading == loadingState {
		b.close()
		return tea.Quit
	}

	b.setState(b.beforeLoading)
	return nil
}

// applyList renders the list controller's state.
func (b *statefulBubble) applyList() tea.Cmd {
	state := b.list.State()

	switch {
	case state.IsFailed():
		b.failedFetch = listFetch
		b.raiseError(state.Err())
		return nil
	case !state.IsSuccess():
		return nil
	}

	page := state.Data().MustGet()
	b.shown = b.list.Params().OrEmpty()
	b.total = state.Total()

	items := make([]list.Item, len(page.Records))
	for i := range page.Records {
		items[i] = &listItem{record: &page.Records[i]}
	}

	cmd := b.recordsC.SetItems(items)
	b.recordsC.ResetSelected()
	b.recordsC.Title = b.listTitle()

	if err := resume.SavePage(b.shown); err != nil {
		log.Warn(err)
	}

	// the list is the root of navigation
	b.statesHistory = util.Stack[state]{}
	b.setState(listState)

	if id := b.pendingRecord; id != "" {
		b.pendingRecord = ""
		return tea.Batch(cmd, b.requestRecord(id))
	}

	return cmd
}

// applyDetail renders the detail controller's state.
func (b *statefulBubble) applyDetail() {
	state := b.detail.State()

	switch {
	case state.IsFailed():
		b.failedFetch = detailFetch
		b.raiseError(state.Err())
		return
	case !state.IsSuccess():
		return
	}

	b.record = state.Data().MustGet()
	b.detailC.SetContent(b.renderDetail(b.record))
	b.detailC.GotoTop()

	if err := resume.SaveRecord(b.record.ID); err != nil {
		log.Warn(err)
	}

	if b.state == loadingState {
		b.setState(b.beforeLoading)
	}
	b.newState(detailState)
}

func (b *statefulBubble) listTitle() string {
	if b.total == 0 {
		return "Anime"
	}
	return fmt.Sprintf("Anime (%d)", b.total)
}

// selectedRecord is the record under the cursor, or nil.
func (b *statefulBubble) selectedRecord() *kitsu.Record {
	item, ok := b.recordsC.SelectedItem().(*listItem)
	if !ok {
		return nil
	}
	return item.record
}

func (b *statefulBubble) openRecord(record *kitsu.Record) tea.Cmd {
	if record == nil {
		return nil
	}

	if err := open.Record(record.ID); err != nil {
		log.Error(err)
		return ui.Notify(icon.Get(icon.Fail) + " " + err.Error())
	}

	return ui.Notify(icon.Get(icon.Link) + " Opened " + open.RecordURL(record.ID))
}

// resizeLimit changes the page size, keeping the first visible record on screen.
func (b *statefulBubble) resizeLimit(delta int) tea.Cmd {
	limit := b.shown.Limit + delta
	if limit < 1 || limit > pagination.MaxLimit {
		return nil
	}

	next := pagination.Params{Limit: limit, Offset: b.shown.Offset}
	return b.requestPage(next.Page(next.CurrentPage()))
}
