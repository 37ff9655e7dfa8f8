package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, calm and low-saturation
var (
	Primary   = lipgloss.Color("#7C6FF0") // Lavender
	Secondary = lipgloss.Color("#2DD4BF") // Mint
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#EAB308") // Yellow
	Danger    = lipgloss.Color("#F97316") // Orange
	Error     = lipgloss.Color("#EF4444") // Red
	Alarm     = lipgloss.Color("#BE123C") // Crimson
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Tag = lipgloss.NewStyle().
		Foreground(Secondary)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent).
		MarginTop(1)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Foreground(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Foreground(Border)
)

// severity runs from the mildest tier to the most severe one.
var severity = []color.Color{Success, Warning, Danger, Error, Alarm}

// Severity returns the color of tier i out of n tiers, spreading n over the
// palette so that the first tier is always green and the last always the
// harshest color.
func Severity(i, n int) color.Color {
	if n <= 1 || i <= 0 {
		return severity[0]
	}
	if i >= n-1 {
		return severity[len(severity)-1]
	}
	return severity[i*(len(severity)-1)/(n-1)]
}

// Level styles a tier banner.
func Level(i, n int) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(Severity(i, n))
}
