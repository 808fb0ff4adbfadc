package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	colorBg        = lipgloss.Color("#111827")
	colorBgSurface = lipgloss.Color("#1f2937")

	colorText      = lipgloss.Color("#e5e7eb")
	colorTextDim   = lipgloss.Color("#9ca3af")
	colorTextMuted = lipgloss.Color("#4b5563")

	colorAccent = lipgloss.Color("#818cf8")
	colorLight  = lipgloss.Color("#a5b4fc")
	colorGreen  = lipgloss.Color("#34d399")
	colorRed    = lipgloss.Color("#f87171")
)

// Header and tabs
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Underline(true).
			Padding(0, 1)
)

// About
var (
	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	typingStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	yearStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	orgStyle = lipgloss.NewStyle().
			Foreground(colorLight)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	hiddenStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// Projects
var (
	chipStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Background(colorBgSurface).
			Padding(0, 1)

	cursorChipStyle = chipStyle.
			Underline(true)

	projectStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	projectSelectedStyle = lipgloss.NewStyle().
				Background(colorAccent).
				Foreground(colorBg).
				Bold(true).
				Padding(0, 1)

	tagStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	tileSettledStyle = lipgloss.NewStyle().
				Foreground(colorAccent)

	tilePendingStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted)
)

// Footer
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	okStyle = lipgloss.NewStyle().
		Foreground(colorGreen)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// selectedChipStyle colours a selected chip by its hue.
func selectedChipStyle(hue int) lipgloss.Style {
	c := colorful.Hsl(float64(hue), 0.7, 0.5)
	return lipgloss.NewStyle().
		Foreground(colorBg).
		Background(lipgloss.Color(c.Hex())).
		Bold(true).
		Padding(0, 1)
}
