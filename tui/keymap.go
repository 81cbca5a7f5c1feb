package tui

import (
	"github.com/anisan-cli/animedex/color"
	"github.com/anisan-cli/animedex/style"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
)

type statefulKeymap struct {
	state state

	quit, forceQuit,
	confirm,
	openURL,
	reload,
	back,
	up, down,
	top, bottom,
	prevPage, nextPage,
	firstPage, lastPage,
	gotoPage,
	moreItems, fewerItems,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("details")),
		),
		openURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open on kitsu"),
		),
		reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		prevPage: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←", "prev page"),
		),
		nextPage: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→", "next page"),
		),
		firstPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "first page"),
		),
		lastPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "last page"),
		),
		gotoPage: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "go to page"),
		),
		moreItems: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "bigger pages"),
		),
		fewerItems: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "smaller pages"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit, k.back))
	case listState:
		return h(k.confirm, k.prevPage, k.nextPage, k.openURL),
			h(k.confirm, k.prevPage, k.nextPage, k.firstPage, k.lastPage, k.gotoPage, k.moreItems, k.fewerItems, k.reload, k.openURL)
	case detailState:
		return to2(h(k.up, k.down, k.openURL, k.reload, k.back))
	case gotoState:
		return to2(h(withDescription(k.confirm, "go"), k.back))
	case errorState:
		return to2(h(k.reload, k.back, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:   k.up,
		CursorDown: k.down,
		GoToStart:  k.top,
		GoToEnd:    k.bottom,
		// catalog pages replace the list's own paging
		NextPage:             key.NewBinding(key.WithDisabled()),
		PrevPage:             key.NewBinding(key.WithDisabled()),
		ClearFilter:          k.back,
		CancelWhileFiltering: k.back,
		AcceptWhileFiltering: k.confirm,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}

func (k *statefulKeymap) forViewport() viewport.KeyMap {
	km := viewport.DefaultKeyMap()
	km.Up = k.up
	km.Down = k.down
	return km
}

func withDescription(k key.Binding, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Keys()...),
		key.WithHelp(k.Help().Key, description),
	)
}
