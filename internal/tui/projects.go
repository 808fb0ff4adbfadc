package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/folio/internal/carousel"
	"github.com/Zachkp/folio/internal/content"
)

const (
	tileWidth  = 6
	tileHeight = 2
)

func (m Model) handleProjectsKey(key string) (tea.Model, tea.Cmd) {
	visible := m.selection.Apply(m.site.Projects)

	switch key {
	case "h", "left":
		m.chipCursor = max(m.chipCursor-1, 0)
	case "l", "right":
		m.chipCursor = min(m.chipCursor+1, len(m.techs)-1)
	case " ":
		if len(m.techs) == 0 {
			return m, nil
		}
		tech := m.techs[m.chipCursor]
		if m.selection.Toggle(tech) {
			m.setStatus("filtering by " + tech)
		} else {
			m.setStatus("removed " + tech)
		}
		m.projectCursor = 0
	case "c":
		m.selection.Clear()
		m.projectCursor = 0
		m.setStatus("filter cleared")
	case "j", "down":
		m.projectCursor = min(m.projectCursor+1, max(len(visible)-1, 0))
	case "k", "up":
		m.projectCursor = max(m.projectCursor-1, 0)
	case "enter":
		if m.projectCursor < len(visible) {
			return m.openModal(visible[m.projectCursor])
		}
	}
	return m, nil
}

func (m Model) openModal(p content.Project) (tea.Model, tea.Cmd) {
	ctl, err := carousel.New(p.Slides, m.carouselOpts...)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	m.modal = &modal{project: p, ctl: ctl, started: m.now()}
	m.status = ""
	return m, tileTick(0)
}

// handleModalKey sends arrows and esc to the carousel. Digits jump to a
// slide.
func (m Model) handleModalKey(key string) (tea.Model, tea.Cmd) {
	ctl := m.modal.ctl

	var err error
	if n, convErr := strconv.Atoi(key); convErr == nil {
		_, err = ctl.JumpTo(n - 1)
	} else {
		var action carousel.Action
		action, _, err = ctl.HandleKey(key)
		switch action {
		case carousel.ActionNone:
			return m, nil
		case carousel.ActionClose:
			m.closeModal()
			m.status = ""
			return m, nil
		}
	}

	switch {
	case err == nil:
		m.modal.started = m.now()
		m.modal.elapsed = 0
		m.status = ""
		return m, tileTick(ctl.View().Generation)
	case errors.Is(err, carousel.ErrBusy):
		m.setStatus("transition in progress")
	case errors.Is(err, carousel.ErrSameSlide):
	default:
		m.setError(err)
	}
	return m, nil
}

func renderProjects(m *Model) string {
	if m.modal != nil {
		return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, renderModal(m))
	}

	chips := make([]string, 0, len(m.techs))
	for i, t := range m.techs {
		style := chipStyle
		if m.selection.Has(t) {
			style = selectedChipStyle(m.hues[t])
		}
		if i == m.chipCursor {
			style = style.Underline(true)
		}
		chips = append(chips, style.Render(fmt.Sprintf("%s %d", t, m.counts[t])))
	}

	visible := m.selection.Apply(m.site.Projects)
	lines := []string{
		sectionStyle.Render("Filter by Technology"),
		lipgloss.NewStyle().Width(max(m.width-2, 10)).Render(strings.Join(chips, " ")),
		"",
		dimStyle.Render(fmt.Sprintf("Showing %d of %d", len(visible), len(m.site.Projects))),
		"",
	}
	for i, p := range visible {
		style := projectStyle
		if i == m.projectCursor {
			style = projectSelectedStyle
		}
		lines = append(lines,
			style.Render(p.Title),
			"  "+tagStyle.Render(strings.Join(p.Technologies, " · ")),
			"  "+dimStyle.Render(truncate(p.Description, max(m.width-4, 10))),
			"",
		)
	}
	return strings.Join(lines, "\n")
}

func renderModal(m *Model) string {
	md := m.modal
	view := md.ctl.View()

	var grid []string
	for row := 0; row < carousel.Rows; row++ {
		cells := make([]string, 0, carousel.Cols)
		for col := 0; col < carousel.Cols; col++ {
			tile := view.Tiles[row*carousel.Cols+col]
			if tile.Settled(md.elapsed) {
				cells = append(cells, tileSettledStyle.Render(strings.Repeat("█", tileWidth)))
			} else {
				cells = append(cells, tilePendingStyle.Render(strings.Repeat("░", tileWidth)))
			}
		}
		line := strings.Join(cells, " ")
		for i := 0; i < tileHeight; i++ {
			grid = append(grid, line)
		}
	}

	dots := make([]string, view.Count)
	for i := range dots {
		dots[i] = "○"
		if i == view.Index {
			dots[i] = "●"
		}
	}

	state := dimStyle.Render("idle")
	if view.Transitioning() {
		arrow := "→"
		if view.Direction == carousel.Left {
			arrow = "←"
		}
		state = typingStyle.Render("assembling " + arrow)
	}

	width := carousel.Cols*(tileWidth+1) - 1
	body := []string{
		nameStyle.Render(md.project.Title),
		dimStyle.Render(fmt.Sprintf("slide %d/%d  ", view.Index+1, view.Count)) + state,
		"",
		strings.Join(grid, "\n"),
		"",
		dimStyle.Render(truncate(view.Slide, width)),
		strings.Join(dots, " "),
	}
	return modalStyle.Render(strings.Join(body, "\n"))
}
