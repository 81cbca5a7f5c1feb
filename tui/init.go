package tui

import tea "github.com/charmbracelet/bubbletea"

// Init requests the starting page.
func (b *statefulBubble) Init() tea.Cmd {
	return b.requestPage(b.options.Params)
}
