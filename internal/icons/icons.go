// Package icons maps icon identifiers used in the content files to the
// markup the web views embed and the glyphs the terminal draws. Every
// lookup succeeds: unknown identifiers resolve to Fallback.
package icons

import (
	"fmt"
	"html"
	"html/template"
)

// ID names an icon, e.g. "GraduationCap".
type ID string

const (
	Award         ID = "Award"
	Briefcase     ID = "Briefcase"
	ChevronDown   ID = "ChevronDown"
	ChevronLeft   ID = "ChevronLeft"
	ChevronRight  ID = "ChevronRight"
	Code          ID = "Code"
	Database      ID = "Database"
	ExternalLink  ID = "ExternalLink"
	FileText      ID = "FileText"
	GitBranch     ID = "GitBranch"
	GitHub        ID = "Github"
	GraduationCap ID = "GraduationCap"
	Layout        ID = "Layout"
	LinkedIn      ID = "Linkedin"
	Mail          ID = "Mail"
	MapPin        ID = "MapPin"
	Phone         ID = "Phone"
	Send          ID = "Send"
	Terminal      ID = "Terminal"
	Trophy        ID = "Trophy"
	Close         ID = "X"

	// Fallback is drawn for identifiers missing from the table.
	Fallback ID = "Circle"
)

// Icon is a renderable icon.
type Icon struct {
	ID    ID
	Paths []string // SVG path data on a 24x24 grid
	Glyph string   // single-cell terminal rendition
}

var table = map[ID]Icon{
	Award:         {Paths: []string{"M12 15a7 7 0 1 0 0-14 7 7 0 0 0 0 14z", "M8.2 13.9 7 23l5-3 5 3-1.2-9.1"}, Glyph: "✪"},
	Briefcase:     {Paths: []string{"M2 7h20v14H2z", "M16 21V5a2 2 0 0 0-2-2h-4a2 2 0 0 0-2 2v16"}, Glyph: "▣"},
	ChevronDown:   {Paths: []string{"m6 9 6 6 6-6"}, Glyph: "⌄"},
	ChevronLeft:   {Paths: []string{"m15 18-6-6 6-6"}, Glyph: "‹"},
	ChevronRight:  {Paths: []string{"m9 18 6-6-6-6"}, Glyph: "›"},
	Code:          {Paths: []string{"m16 18 6-6-6-6", "m8 6-6 6 6 6"}, Glyph: "⌨"},
	Database:      {Paths: []string{"M3 5c0-1.7 4-3 9-3s9 1.3 9 3-4 3-9 3-9-1.3-9-3z", "M3 5v14c0 1.7 4 3 9 3s9-1.3 9-3V5"}, Glyph: "≣"},
	ExternalLink:  {Paths: []string{"M15 3h6v6", "M10 14 21 3", "M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6"}, Glyph: "↗"},
	FileText:      {Paths: []string{"M14 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V8z", "M16 13H8", "M16 17H8"}, Glyph: "▤"},
	GitBranch:     {Paths: []string{"M6 3v12", "M18 9a3 3 0 1 0 0-6 3 3 0 0 0 0 6z", "M6 21a3 3 0 1 0 0-6 3 3 0 0 0 0 6z", "M18 9a9 9 0 0 1-9 9"}, Glyph: "⎇"},
	GitHub:        {Paths: []string{"M9 19c-5 1.5-5-2.5-7-3m14 6v-3.9a3.4 3.4 0 0 0-.9-2.6c3.1-.4 6.4-1.5 6.4-7A5.4 5.4 0 0 0 20 4.8 5 5 0 0 0 19.9 1S18.7.7 16 2.5a13.4 13.4 0 0 0-7 0C6.3.7 5.1 1 5.1 1A5 5 0 0 0 5 4.8a5.4 5.4 0 0 0-1.5 3.7c0 5.4 3.3 6.6 6.4 7a3.4 3.4 0 0 0-.9 2.6V22"}, Glyph: "◉"},
	GraduationCap: {Paths: []string{"M22 10 12 5 2 10l10 5z", "M6 12v5c3 3 9 3 12 0v-5"}, Glyph: "🎓"},
	Layout:        {Paths: []string{"M3 3h18v18H3z", "M3 9h18", "M9 21V9"}, Glyph: "▦"},
	LinkedIn:      {Paths: []string{"M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-4 0v7h-4v-7a6 6 0 0 1 6-6z", "M2 9h4v12H2z", "M4 2a2 2 0 1 0 0 4 2 2 0 0 0 0-4z"}, Glyph: "in"},
	Mail:          {Paths: []string{"M2 4h20v16H2z", "m22 7-10 6L2 7"}, Glyph: "✉"},
	MapPin:        {Paths: []string{"M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0z", "M12 13a3 3 0 1 0 0-6 3 3 0 0 0 0 6z"}, Glyph: "⌖"},
	Phone:         {Paths: []string{"M22 16.9v3a2 2 0 0 1-2.2 2 19.8 19.8 0 0 1-8.6-3.1 19.5 19.5 0 0 1-6-6A19.8 19.8 0 0 1 2.1 4.2 2 2 0 0 1 4.1 2h3a2 2 0 0 1 2 1.7c.1 1 .4 1.9.7 2.8a2 2 0 0 1-.5 2.1L8.1 9.9a16 16 0 0 0 6 6l1.3-1.3a2 2 0 0 1 2.1-.4c.9.3 1.8.6 2.8.7a2 2 0 0 1 1.7 2z"}, Glyph: "☎"},
	Send:          {Paths: []string{"m22 2-7 20-4-9-9-4z", "M22 2 11 13"}, Glyph: "➤"},
	Terminal:      {Paths: []string{"m4 17 6-6-6-6", "M12 19h8"}, Glyph: "❯"},
	Trophy:        {Paths: []string{"M6 9H4.5a2.5 2.5 0 0 1 0-5H6", "M18 9h1.5a2.5 2.5 0 0 0 0-5H18", "M4 22h16", "M18 2H6v7a6 6 0 0 0 12 0z", "M12 15v7"}, Glyph: "🏆"},
	Close:         {Paths: []string{"M18 6 6 18", "m6 6 12 12"}, Glyph: "✕"},
	Fallback:      {Paths: []string{"M12 22a10 10 0 1 0 0-20 10 10 0 0 0 0 20z"}, Glyph: "•"},
}

func init() {
	for id, icon := range table {
		icon.ID = id
		table[id] = icon
	}
}

// Lookup returns the icon for id and whether it was found. When it was
// not, the Fallback icon is returned.
func Lookup(id ID) (Icon, bool) {
	if icon, ok := table[id]; ok {
		return icon, true
	}
	return table[Fallback], false
}

// Get is Lookup without the found flag, for template use.
func Get(name string) Icon {
	icon, _ := Lookup(ID(name))
	return icon
}

// SVG renders the icon as an inline lucide-style SVG element.
func (i Icon) SVG(class string) template.HTML {
	out := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" class="%s" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true" data-icon="%s">`,
		html.EscapeString(class), html.EscapeString(string(i.ID)))
	for _, d := range i.Paths {
		out += `<path d="` + html.EscapeString(d) + `"/>`
	}
	out += `</svg>`
	return template.HTML(out) //nolint:gosec // path data is compiled in; class is escaped
}

// Render is the template helper: {{ icon "Trophy" "h-6 w-6" }}.
func Render(name, class string) template.HTML {
	return Get(name).SVG(class)
}
