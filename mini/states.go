package mini

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/anisan-cli/animedex/icon"
	"github.com/anisan-cli/animedex/log"
	"github.com/anisan-cli/animedex/open"
	"github.com/anisan-cli/animedex/pagination"
	"github.com/anisan-cli/animedex/resume"
	"github.com/anisan-cli/animedex/style"
	"github.com/anisan-cli/animedex/util"
	"github.com/muesli/reflow/wrap"
)

type state int

const (
	listState state = iota + 1
	detailState
	quitState
)

// errQuit is returned by prompts the user interrupted.
var errQuit = errors.New("quit")

// ask wraps prompt errors so an interrupt quits instead of failing.
func ask[T any](value T, err error) (T, error) {
	if errors.Is(err, terminal.InterruptErr) {
		return value, errQuit
	}
	return value, err
}

// action is a menu entry below the records.
type action struct {
	label string
	run   func() error
}

func (m *mini) handleListState() error {
	if m.page == nil || m.loaded != m.shown {
		ok, err := m.loadPage(m.shown)
		if err != nil || !ok {
			return m.settle(err)
		}
	}

	current := m.shown.CurrentPage()
	m.title(fmt.Sprintf("Anime %s", style.Faint(fmt.Sprintf("page %d of %d", current, pagination.TotalPages(m.total, m.shown.Limit)))))

	var options []string
	for i := range m.page.Records {
		options = append(options, m.recordLine(i))
	}

	actions := m.listActions()
	for _, a := range actions {
		options = append(options, a.label)
	}

	index, err := ask(m.prompt.choose("Select anime", options))
	if err != nil {
		return m.settle(err)
	}

	if index < len(m.page.Records) {
		return m.settle(m.openRecord(m.page.Records[index].ID))
	}

	return m.settle(actions[index-len(m.page.Records)].run())
}

func (m *mini) listActions() []action {
	var (
		actions []action
		current = m.shown.CurrentPage()
		last    = pagination.TotalPages(m.total, m.shown.Limit)
	)

	if m.shown.HasPrev() {
		actions = append(actions, action{icon.Get(icon.Prev) + " Previous page", func() error {
			m.shown = m.shown.Page(current - 1)
			return nil
		}})
	}

	if m.shown.HasNext(m.total) {
		actions = append(actions, action{icon.Get(icon.Next) + " Next page", func() error {
			m.shown = m.shown.Page(current + 1)
			return nil
		}})
	}

	if last > 1 {
		actions = append(actions, action{"Go to page", func() error {
			in, err := ask(m.prompt.input(fmt.Sprintf("Page (1-%d)", last), func(s string) error {
				if _, err := strconv.Atoi(s); err != nil {
					return fmt.Errorf("not a number: %q", s)
				}
				return nil
			}))
			if err != nil {
				return err
			}

			page, _ := strconv.Atoi(in)
			m.shown = pagination.Derive(m.shown.Goto(page, last))
			return nil
		}})
	}

	actions = append(actions, action{"Quit", func() error {
		m.newState(quitState)
		return nil
	}})

	return actions
}

func (m *mini) recordLine(i int) string {
	r := &m.page.Records[i]

	var meta []string
	if r.Attributes.Status != "" {
		meta = append(meta, r.Attributes.Status)
	}
	if year := r.Year(); year > 0 {
		meta = append(meta, strconv.Itoa(year))
	}
	if r.Attributes.EpisodeCount > 0 {
		meta = append(meta, util.Quantify(r.Attributes.EpisodeCount, "ep", "eps"))
	}

	line := fmt.Sprintf("%d. %s", m.shown.Offset+i+1, r.Title())
	if len(meta) > 0 {
		line += " (" + strings.Join(meta, ", ") + ")"
	}
	return line
}

func (m *mini) openRecord(id string) error {
	ok, err := m.loadRecord(id)
	if err != nil || !ok {
		return err
	}

	m.newState(detailState)
	return nil
}

func (m *mini) handleDetailState() error {
	r := m.record

	m.title(r.Title())
	for _, f := range r.Fields() {
		m.line(fmt.Sprintf("%s %s", style.Faint(f.Name+":"), f.Value))
	}
	if r.Attributes.Synopsis != "" {
		m.line("")
		m.line(wrap.String(r.Attributes.Synopsis, 80))
	}
	m.line("")

	options := []string{"Back", icon.Get(icon.Link) + " Open on Kitsu", "Reload", "Quit"}
	index, err := ask(m.prompt.choose("What next?", options))
	if err != nil {
		return m.settle(err)
	}

	switch index {
	case 0:
		m.previousState()
		if err := resume.SavePage(m.shown); err != nil {
			log.Warn(err)
		}
	case 1:
		if err := open.Record(r.ID); err != nil {
			m.fail(err.Error())
		}
	case 2:
		m.detail.Reset()
		_, err = m.loadRecord(r.ID)
	case 3:
		m.newState(quitState)
	}

	return m.settle(err)
}

// settle turns an interrupt into quitting.
func (m *mini) settle(err error) error {
	if errors.Is(err, errQuit) {
		m.newState(quitState)
		return nil
	}
	return err
}

// loadPage fetches p, offering a retry on failure. ok is false when the user gave up.
func (m *mini) loadPage(p pagination.Params) (ok bool, err error) {
	for {
		erase := m.progress(fmt.Sprintf("Fetching page %d..", p.CurrentPage()))
		state := m.list.Load(p)
		erase()

		if state.IsSuccess() {
			m.page = state.Data().MustGet()
			m.total = state.Total()
			m.loaded, m.shown = p, p
			if err := resume.SavePage(p); err != nil {
				log.Warn(err)
			}
			return true, nil
		}

		retry, err := m.retry(state.Err())
		m.list.Reset()
		if err != nil {
			return false, err
		}

		if !retry {
			if m.page == nil {
				m.newState(quitState)
			}
			m.shown = m.loaded
			return false, nil
		}
	}
}

// loadRecord fetches id, offering a retry on failure.
func (m *mini) loadRecord(id string) (ok bool, err error) {
	for {
		erase := m.progress("Fetching details..")
		state := m.detail.Load(id)
		erase()

		if state.IsSuccess() {
			m.record = state.Data().MustGet()
			if err := resume.SaveRecord(id); err != nil {
				log.Warn(err)
			}
			return true, nil
		}

		retry, err := m.retry(state.Err())
		m.detail.Reset()
		if err != nil || !retry {
			return false, err
		}
	}
}

func (m *mini) retry(cause error) (bool, error) {
	if cause == nil {
		return false, nil
	}

	m.fail("Error: " + cause.Error())
	return ask(m.prompt.confirm("Retry?"))
}
