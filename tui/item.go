package tui

import (
	"fmt"
	"strings"

	"github.com/anisan-cli/animedex/icon"
	"github.com/anisan-cli/animedex/kitsu"
	"github.com/anisan-cli/animedex/style"
	"github.com/anisan-cli/animedex/util"
	"github.com/charmbracelet/lipgloss"
)

// listItem implements list.Item for a catalog record.
type listItem struct {
	record *kitsu.Record
}

func (t *listItem) Title() string {
	return t.record.Title()
}

// Description joins status, rating, year and episode count.
func (t *listItem) Description() string {
	var (
		parts []string
		a     = t.record.Attributes
	)

	if a.Status != "" {
		c := style.Subtext
		if a.Status == "current" {
			c = style.Green
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(c).Render(statusLabel(a.Status)))
	}

	if rating, ok := t.record.Rating(); ok {
		parts = append(parts, lipgloss.NewStyle().Foreground(style.AccentColor).Render(fmt.Sprintf("%s %.0f%%", icon.Get(icon.Star), rating)))
	}

	if year := t.record.Year(); year > 0 {
		parts = append(parts, lipgloss.NewStyle().Foreground(style.FaintColor).Render(fmt.Sprint(year)))
	}

	if a.EpisodeCount > 0 {
		parts = append(parts, lipgloss.NewStyle().Foreground(style.FaintColor).Render(util.Quantify(a.EpisodeCount, "ep", "eps")))
	}

	return strings.Join(parts, " • ")
}

func (t *listItem) FilterValue() string {
	return t.record.Title()
}

func statusLabel(status string) string {
	switch status {
	case "current":
		return "Airing"
	case "tba":
		return "TBA"
	default:
		return util.Capitalize(status)
	}
}
