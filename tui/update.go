package tui

import (
	"strconv"

	"github.com/anisan-cli/animedex/fetch"
	"github.com/anisan-cli/animedex/kitsu"
	"github.com/anisan-cli/animedex/log"
	"github.com/anisan-cli/animedex/pagination"
	"github.com/anisan-cli/animedex/resume"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	notifyCmd := b.notifier.Update(msg)

	model, cmd := b.update(msg)
	return model, tea.Batch(notifyCmd, cmd)
}

func (b *statefulBubble) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case listSettledMsg:
		if b.list.Settle(fetch.Outcome[pagination.Params, *kitsu.Page](msg)) {
			return b, b.applyList()
		}
		return b, nil
	case detailSettledMsg:
		if b.detail.Settle(fetch.Outcome[string, *kitsu.Record](msg)) {
			b.applyDetail()
		}
		return b, nil
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			b.close()
			return b, tea.Quit
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case listState:
		return b.updateList(msg)
	case detailState:
		return b.updateDetail(msg)
	case gotoState:
		return b.updateGoto(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.back) {
			return b, b.cancelLoading()
		}
	case spinner.TickMsg:
		b.spinnerC, cmd = b.spinnerC.Update(msg)
	}

	return b, cmd
}

func (b *statefulBubble) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		current := b.shown.CurrentPage()

		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			b.close()
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if record := b.selectedRecord(); record != nil {
				return b, b.requestRecord(record.ID)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.openURL):
			return b, b.openRecord(b.selectedRecord())
		case bubblesKey.Matches(msg, b.keymap.nextPage):
			if b.shown.HasNext(b.total) {
				return b, b.requestPage(b.shown.Page(current + 1))
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.prevPage):
			if b.shown.HasPrev() {
				return b, b.requestPage(b.shown.Page(current - 1))
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.firstPage):
			return b, b.requestPage(b.shown.Page(1))
		case bubblesKey.Matches(msg, b.keymap.lastPage):
			if last := b.totalPages(); last > 0 {
				return b, b.requestPage(b.shown.Page(last))
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.gotoPage):
			b.gotoC.SetValue("")
			b.gotoC.Focus()
			b.newState(gotoState)
			return b, textinput.Blink
		case bubblesKey.Matches(msg, b.keymap.reload):
			return b, b.reloadPage()
		case bubblesKey.Matches(msg, b.keymap.moreItems):
			return b, b.resizeLimit(1)
		case bubblesKey.Matches(msg, b.keymap.fewerItems):
			return b, b.resizeLimit(-1)
		case bubblesKey.Matches(msg, b.keymap.back):
			return b, nil
		}
	}

	b.recordsC, cmd = b.recordsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			b.close()
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			if !b.previousState() {
				return b, b.requestPage(b.shown)
			}
			if err := resume.SavePage(b.shown); err != nil {
				log.Warn(err)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.openURL):
			return b, b.openRecord(b.record)
		case bubblesKey.Matches(msg, b.keymap.reload):
			return b, b.reloadRecord()
		}
	}

	b.detailC, cmd = b.detailC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateGoto(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.gotoC.Blur()
			b.previousState()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			b.gotoC.Blur()
			b.previousState()

			page, err := strconv.Atoi(b.gotoC.Value())
			if err != nil {
				return b, nil
			}

			return b, b.requestPage(pagination.Derive(b.shown.Goto(page, b.totalPages())))
		}
	}

	b.gotoC, cmd = b.gotoC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			b.close()
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.reload):
			if b.failedFetch == detailFetch {
				return b, b.reloadRecord()
			}
			return b, b.reloadPage()
		case bubblesKey.Matches(msg, b.keymap.back):
			switch b.failedFetch {
			case listFetch:
				b.list.Reset()
			case detailFetch:
				b.detail.Reset()
			}

			if !b.previousState() {
				b.close()
				return b, tea.Quit
			}
		}
	}

	return b, nil
}
