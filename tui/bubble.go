package tui

import (
	"fmt"
	"time"

	"github.com/anisan-cli/animedex/fetch"
	"github.com/anisan-cli/animedex/internal/ui"
	"github.com/anisan-cli/animedex/key"
	"github.com/anisan-cli/animedex/kitsu"
	"github.com/anisan-cli/animedex/pagination"
	"github.com/anisan-cli/animedex/style"
	"github.com/anisan-cli/animedex/util"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// pageBarHeight is the number of lines below the list taken by the page window.
const pageBarHeight = 2

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	// beforeLoading is the state a cancelled request returns to.
	beforeLoading state

	keymap *statefulKeymap

	// components
	spinnerC  spinner.Model
	recordsC  list.Model
	detailC   viewport.Model
	gotoC     textinput.Model
	helpC     help.Model
	notifier  *ui.Model

	list   *fetch.List
	detail *fetch.Detail

	// shown is the snapshot of the page on screen, total the corpus size it reported.
	shown pagination.Params
	total int

	record        *kitsu.Record
	pendingRecord string

	lastError     error
	failedFetch   string
	loadingWhat   string
	loadingStatus string

	windowSize int

	width, height int

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	if b.state == loadingState {
		b.setState(b.beforeLoading)
	}
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering the current state unless it is transient.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, errorState, gotoState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() bool {
	if b.statesHistory.Len() == 0 {
		return false
	}

	b.setState(b.statesHistory.Pop())
	return true
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	styledWidth := width - x
	styledHeight := height - y

	listWidth := width - xx
	listHeight := height - yy

	b.recordsC.SetSize(listWidth, listHeight-pageBarHeight)
	b.recordsC.Help.Width = listWidth

	// title, blank line and help below the viewport
	b.detailC.Width = styledWidth
	b.detailC.Height = max(styledHeight-4, 1)
	if b.record != nil {
		b.detailC.SetContent(b.renderDetail(b.record))
	}

	b.gotoC.Width = listWidth

	b.width = styledWidth
	b.height = styledHeight
	b.helpC.Width = listWidth
}

func newBubble(options *Options, src fetch.Source) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		list:          fetch.NewList(src),
		detail:        fetch.NewDetail(src),
		notifier:      &ui.Model{},
		windowSize:    viper.GetInt(key.PaginationWindowSize),
		options:       options,
	}

	if bubble.windowSize < 1 {
		bubble.windowSize = 5
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	bubble.recordsC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.recordsC.KeyMap = bubble.keymap.forList()
	bubble.recordsC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
	bubble.recordsC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return bubble.keymap.FullHelp()[0]
	}
	bubble.recordsC.Title = "Anime"
	bubble.recordsC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.Lavender).Padding(0, 1)
	bubble.recordsC.Styles.NoItems = paddingStyle
	bubble.recordsC.StatusMessageLifetime = time.Hour * 999
	bubble.recordsC.SetFilteringEnabled(false)
	bubble.recordsC.SetShowPagination(false)
	bubble.recordsC.SetShowStatusBar(false)
	bubble.recordsC.SetStatusBarItemName("anime", "anime")

	bubble.detailC = viewport.New(0, 0)
	bubble.detailC.KeyMap = bubble.keymap.forViewport()

	bubble.gotoC = textinput.New()
	bubble.gotoC.Placeholder = "Page number"
	bubble.gotoC.CharLimit = 9
	bubble.gotoC.Prompt = "Page: "
	bubble.gotoC.Validate = func(s string) error {
		for _, r := range s {
			if r < '0' || r > '9' {
				return fmt.Errorf("not a number: %q", s)
			}
		}
		return nil
	}

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(loadingState)

	return &bubble
}

// close cancels outstanding requests before the program exits.
func (b *statefulBubble) close() {
	b.list.Close()
	b.detail.Close()
}

func (b *statefulBubble) totalPages() int {
	return pagination.TotalPages(b.total, b.shown.Limit)
}
