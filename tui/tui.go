// Package tui is the interactive catalog browser.
package tui

import (
	"github.com/anisan-cli/animedex/fetch"
	"github.com/anisan-cli/animedex/kitsu"
	"github.com/anisan-cli/animedex/pagination"
	tea "github.com/charmbracelet/bubbletea"
)

// Options is the starting point of a session.
type Options struct {
	// Params is the first page to show.
	Params pagination.Params
	// Record, when set, is opened once the first page has loaded.
	Record string
}

// Run starts the program against the configured Kitsu endpoint and blocks until it exits.
func Run(options *Options) error {
	return run(options, kitsu.NewFromConfig())
}

func run(options *Options, src fetch.Source) error {
	bubble := newBubble(options, src)
	bubble.pendingRecord = options.Record
	defer bubble.close()

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
