package report

import "github.com/charmbracelet/lipgloss"

// styles groups the lipgloss styles the report uses. With NoColor every
// style is a no-op so output stays byte-stable in pipes and tests.
type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	bar     lipgloss.Style
	high    lipgloss.Style
	medium  lipgloss.Style
	low     lipgloss.Style
	noColor bool
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{title: plain, section: plain, bar: plain, high: plain, medium: plain, low: plain, noColor: true}
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00CAC7")),
		bar:     lipgloss.NewStyle().Foreground(lipgloss.Color("#0DD47B")),
		high:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444")),
		medium:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00")),
		low:     lipgloss.NewStyle().Foreground(lipgloss.Color("#44FF44")),
	}
}

// tier names the risk band for a count against two thresholds.
func (st styles) tier(count, highAt, mediumAt int) string {
	switch {
	case count > highAt:
		return st.high.Render("high")
	case count > mediumAt:
		return st.medium.Render("medium")
	default:
		return st.low.Render("low")
	}
}

// dot is the compact risk marker used in tables. Without color the dot
// carries no information, so plain mode falls back to the tier word.
func (st styles) dot(count, highAt, mediumAt int) string {
	if st.noColor {
		return st.tier(count, highAt, mediumAt)
	}
	switch {
	case count > highAt:
		return st.high.Render("●")
	case count > mediumAt:
		return st.medium.Render("●")
	default:
		return st.low.Render("●")
	}
}
