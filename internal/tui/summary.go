package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tone selects how a summary row's value is colored.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneSuccess
	ToneError
)

type SummaryRow struct {
	Label string
	Value string
	Tone  Tone
}

// RenderSummary draws the post-run counters as a two-column table, the
// value column colored by outcome.
func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
	}

	hline := summaryLineStyle.Render(strings.Repeat("-", labelWidth+valueWidth+3))
	lines := []string{hline}

	for _, row := range rows {
		label := summaryLabelStyle.Width(labelWidth).Render(row.Label)
		value := toneStyle(row.Tone).Width(valueWidth).Render(row.Value)
		lines = append(lines, fmt.Sprintf("%s | %s", label, value))
	}

	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

func toneStyle(tone Tone) lipgloss.Style {
	switch tone {
	case ToneSuccess:
		return successValueStyle
	case ToneError:
		return errorValueStyle
	default:
		return neutralValueStyle
	}
}

var (
	summaryLineStyle  = lipgloss.NewStyle().Foreground(ColorDim)
	summaryLabelStyle = lipgloss.NewStyle().Foreground(ColorInk)
	neutralValueStyle = lipgloss.NewStyle().Foreground(ColorInk).Bold(true)
	successValueStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	errorValueStyle   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
)
