package tui

import (
	"strings"

	"github.com/Zachkp/folio/internal/icons"
)

func renderContact(m *Model) string {
	c := m.site.Profile.Contact
	rows := []struct {
		icon  icons.ID
		label string
		value string
	}{
		{icons.Mail, "Email", c.Email},
		{icons.Phone, "Phone", c.Phone},
		{icons.MapPin, "Location", c.Location},
		{icons.GitHub, "GitHub", c.GitHub},
		{icons.LinkedIn, "LinkedIn", c.LinkedIn},
		{icons.Code, "LeetCode", c.LeetCode},
		{icons.FileText, "Resume", m.site.Profile.ResumeURL},
	}

	lines := []string{sectionStyle.Render("Get in Touch"), ""}
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		glyph, _ := icons.Lookup(r.icon)
		lines = append(lines, glyph.Glyph+" "+orgStyle.Render(r.label)+"  "+r.value)
	}
	lines = append(lines, "", dimStyle.Render("Messages can be sent from the contact form on the website."))
	return strings.Join(lines, "\n")
}
