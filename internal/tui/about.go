package tui

import (
	"fmt"
	"strings"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/icons"
	"github.com/Zachkp/folio/internal/visibility"
)

// Line heights of the About document.
const (
	heroHeight = 5
	itemHeight = 4
)

var sectionTitles = map[visibility.Section]struct {
	title string
	icon  icons.ID
}{
	visibility.Experience: {"Experience", icons.Briefcase},
	visibility.Education:  {"Education", icons.GraduationCap},
	visibility.Awards:     {"Awards & Achievements", icons.Award},
}

type sectionBlock struct {
	section visibility.Section
	title   string
	icon    icons.ID
	entries []content.TimelineEntry
}

// aboutLayout places every timeline entry on a fixed line so the observer
// can compute visibility from the scroll offset alone.
type aboutLayout struct {
	height   int
	sections []sectionBlock
	targets  []visibility.Target
}

func layoutAbout(p content.Profile) aboutLayout {
	all := map[visibility.Section][]content.TimelineEntry{
		visibility.Experience: p.Experiences,
		visibility.Education:  p.Education,
		visibility.Awards:     p.Awards,
	}

	doc := aboutLayout{}
	y := heroHeight
	for _, sec := range visibility.Sections() {
		entries := all[sec]
		if len(entries) == 0 {
			continue
		}
		meta := sectionTitles[sec]
		doc.sections = append(doc.sections, sectionBlock{section: sec, title: meta.title, icon: meta.icon, entries: entries})
		y += 2 // title and gap
		for i := range entries {
			doc.targets = append(doc.targets, visibility.Target{
				Section: sec,
				Index:   i,
				Box:     visibility.Rect{Top: float64(y), Width: 1, Height: itemHeight},
			})
			y += itemHeight
		}
		y++
	}
	doc.height = y
	return doc
}

func renderAbout(m *Model) string {
	p := m.site.Profile
	width := max(m.width-2, 10)

	lines := make([]string, 0, m.doc.height)

	skills := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		skills = append(skills, icons.Get(s.Icon).Glyph+" "+s.Title)
	}
	lines = append(lines,
		nameStyle.Render(p.Name),
		typingStyle.Render(m.typer.Text()+m.cursor.Glyph()),
		dimStyle.Render(truncate(p.Bio, width)),
		truncate(strings.Join(skills, "  "), width),
		"",
	)

	for _, sec := range m.doc.sections {
		lines = append(lines, sectionStyle.Render(icons.Get(string(sec.icon)).Glyph+" "+sec.title), "")
		for i, e := range sec.entries {
			lines = append(lines, renderEntry(e, m.tracker.IsVisible(sec.section, i), width)...)
		}
		lines = append(lines, "")
	}

	end := min(m.scroll+m.bodyHeight(), len(lines))
	start := min(m.scroll, end)
	return strings.Join(lines[start:end], "\n")
}

// renderEntry always returns itemHeight lines.
func renderEntry(e content.TimelineEntry, visible bool, width int) []string {
	if !visible {
		return []string{hiddenStyle.Render("  ·"), "", "", ""}
	}
	head := fmt.Sprintf("%s %s  %s", icons.Get(e.Icon).Glyph, yearStyle.Render(e.Year), nameStyle.Render(e.Role))
	return []string{
		head,
		"  " + orgStyle.Render(truncate(e.Organization, width-2)),
		"  " + dimStyle.Render(truncate(e.Description, width-2)),
		"",
	}
}
