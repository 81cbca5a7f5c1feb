// Package ui renders short-lived notifications on the last line of a view.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Notification is a message shown until the next ClearNotificationMsg.
type Notification string

// ClearNotificationMsg resets the notification.
type ClearNotificationMsg struct {
	at time.Time
}

// Notify returns a command that displays text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return Notification(text)
	}
}

var notificationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

// Model holds the current notification.
type Model struct {
	notification string
	notifiedAt   time.Time
	Lifetime     time.Duration
}

func (m *Model) lifetime() time.Duration {
	if m.Lifetime <= 0 {
		return 3 * time.Second
	}
	return m.Lifetime
}

// Update consumes Notification and ClearNotificationMsg.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Notification:
		m.notification = string(msg)
		m.notifiedAt = time.Now()
		at := m.notifiedAt
		return tea.Tick(m.lifetime(), func(time.Time) tea.Msg {
			return ClearNotificationMsg{at: at}
		})
	case ClearNotificationMsg:
		// a newer notification restarted the timer
		if msg.at.Equal(m.notifiedAt) {
			m.notification = ""
		}
	}
	return nil
}

// Current returns the displayed notification, if any.
func (m *Model) Current() string {
	return m.notification
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + notificationStyle.Render(m.notification)
	return strings.Join(lines, "\n")
}
