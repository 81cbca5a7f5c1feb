package tui

import (
	"fmt"
	"strings"

	"github.com/anisan-cli/animedex/icon"
	"github.com/anisan-cli/animedex/key"
	"github.com/anisan-cli/animedex/pagination"
	"github.com/anisan-cli/animedex/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case listState:
		output = b.viewList()
	case detailState:
		output = b.viewDetail()
	case gotoState:
		output = b.viewGoto()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.loadingStatus,
		},
	)
}

func (b *statefulBubble) viewList() string {
	return listExtraPaddingStyle.Render(b.recordsC.View() + "\n\n" + b.pageBar())
}

// pageBar renders prev, the page window and next. Arrows are dimmed where navigation stops.
func (b *statefulBubble) pageBar() string {
	current := b.shown.CurrentPage()
	pages := pagination.Window(current, b.totalPages(), b.windowSize)

	arrow := func(i icon.Icon, enabled bool) string {
		if enabled {
			return style.PageOther(icon.Get(i))
		}
		return style.PageDisabled(icon.Get(i))
	}

	var sb strings.Builder
	sb.WriteString(arrow(icon.Prev, b.shown.HasPrev()))
	for _, page := range pages {
		if page == current {
			sb.WriteString(style.PageCurrent(fmt.Sprint(page)))
		} else {
			sb.WriteString(style.PageOther(fmt.Sprint(page)))
		}
	}
	sb.WriteString(arrow(icon.Next, b.shown.HasNext(b.total)))

	if viper.GetBool(key.TUIShowPageCount) && b.totalPages() > 0 {
		sb.WriteString(style.Faint(fmt.Sprintf("  page %d of %d", current, b.totalPages())))
	}

	return sb.String()
}

func (b *statefulBubble) viewDetail() string {
	title := "Anime"
	if b.record != nil {
		title = b.record.Title()
	}

	return b.renderLines(
		true,
		[]string{
			style.Title(style.Truncate(max(b.width-2, 1))(title)),
			"",
			b.detailC.View(),
		},
	)
}

func (b *statefulBubble) viewGoto() string {
	lines := []string{
		style.Title("Go to page"),
		"",
	}

	if last := b.totalPages(); last > 0 {
		lines = append(lines, style.Faint(fmt.Sprintf("1 to %d", last)), "")
	}

	lines = append(lines, b.gotoC.View())
	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.Red).Bold(true)
	errorMsg := wrap.String(errorStyle.Render("Error: "+b.lastError.Error()), b.width)

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " " + errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	h := lipgloss.Height(l)
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
