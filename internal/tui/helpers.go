package tui

import (
	"context"
	"strings"

	"github.com/Zachkp/folio/pkg/logger"
)

// truncate shortens s to at most n runes, ending with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.failed = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.failed = true
	m.log.Warn(context.Background(), "tui action failed", logger.Error(err))
}

func renderHeader(m *Model) string {
	tabs := make([]string, 0, 3)
	for i, t := range []Tab{TabAbout, TabProjects, TabContact} {
		label := string(rune('1'+i)) + " " + t.String()
		if t == m.tab {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	bar := brandStyle.Render(m.site.Profile.Name) + "  " + strings.Join(tabs, "")
	return headerBarStyle.Width(m.width).Render(bar)
}

func renderFooter(m *Model) string {
	if m.status != "" {
		style := okStyle
		if m.failed {
			style = errorStyle
		}
		return statusStyle.Width(m.width).Render(style.Render(m.status))
	}

	var hints [][2]string
	switch {
	case m.modal != nil:
		hints = [][2]string{{"←/→", "slide"}, {"1-9", "jump"}, {"esc", "close"}}
	case m.tab == TabAbout:
		hints = [][2]string{{"j/k", "scroll"}, {"g/G", "top/bottom"}}
		if m.scroll+m.bodyHeight() < m.doc.height {
			hints = append(hints, [2]string{"⌄", "more below"})
		}
	case m.tab == TabProjects:
		hints = [][2]string{{"h/l", "chip"}, {"space", "toggle"}, {"c", "clear"}, {"j/k", "project"}, {"enter", "open"}}
	}
	hints = append(hints, [2]string{"1/2/3", "tabs"}, [2]string{"q", "quit"})

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, hintKeyStyle.Render(h[0])+" "+hintDescStyle.Render(h[1]))
	}
	return statusStyle.Width(m.width).Render(strings.Join(parts, "  "))
}
