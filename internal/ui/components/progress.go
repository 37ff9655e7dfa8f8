package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindload/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for one dimension score.
type ProgressBar struct {
	Label      string
	LabelWidth int // pad labels to this display width; 0 = no padding
	Percent    float64
	Value      string // shown after the bar
	Width      int    // bar cells
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, value string, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Value:   value,
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(theme.Body.Render(p.Label))
		if pad := p.LabelWidth - lipgloss.Width(p.Label); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString("  ")
	}

	barWidth := max(p.Width, 4)
	filled := int(float64(barWidth)*p.Percent + 0.5)
	filled = max(0, min(filled, barWidth))

	b.WriteString(theme.ProgressFilled.Render(strings.Repeat("█", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat("░", barWidth-filled)))

	if p.Value != "" {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %s", p.Value)))
	}
	return b.String()
}
