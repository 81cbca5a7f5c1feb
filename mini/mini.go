// Package mini is a line-oriented catalog browser built on prompts.
package mini

import (
	"io"
	"os"

	"github.com/anisan-cli/animedex/fetch"
	"github.com/anisan-cli/animedex/kitsu"
	"github.com/anisan-cli/animedex/pagination"
	"github.com/anisan-cli/animedex/util"
	"github.com/samber/lo"
)

// Options is the starting point of a session.
type Options struct {
	Params pagination.Params
	Record string
}

type mini struct {
	state         state
	statesHistory util.Stack[state]

	list   *fetch.List
	detail *fetch.Detail

	prompt prompter
	out    io.Writer

	// shown is the page to display, loaded the one m.page holds.
	shown  pagination.Params
	loaded pagination.Params
	total  int
	page   *kitsu.Page
	record *kitsu.Record
}

func newMini(src fetch.Source, prompt prompter, out io.Writer) *mini {
	return &mini{
		statesHistory: util.Stack[state]{},
		list:          fetch.NewList(src),
		detail:        fetch.NewDetail(src),
		prompt:        prompt,
		out:           out,
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if !lo.Contains([]state{quitState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

// Run browses the configured Kitsu endpoint until the user quits.
func Run(options *Options) error {
	m := newMini(kitsu.NewFromConfig(), surveyPrompter{}, os.Stdout)
	return m.run(options)
}

func (m *mini) run(options *Options) error {
	defer m.list.Close()
	defer m.detail.Close()

	m.shown = options.Params
	m.state = listState

	if options.Record != "" {
		ok, err := m.loadPage(m.shown)
		if err := m.settle(err); err != nil {
			return err
		}
		if ok {
			if err := m.settle(m.openRecord(options.Record)); err != nil {
				return err
			}
		}
	}

	for m.state != quitState {
		if err := m.handleState(); err != nil {
			return err
		}
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case listState:
		return m.handleListState()
	case detailState:
		return m.handleDetailState()
	}

	return nil
}
