package analysis

import "github.com/charmbracelet/lipgloss"

// Styles contains the styling definitions for terminal report output.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Subtle   lipgloss.Style

	High   lipgloss.Style
	Low    lipgloss.Style
	Good   lipgloss.Style
	Severe lipgloss.Style
	Warn   lipgloss.Style

	Box lipgloss.Style
}

// NewStyles creates the default style set.
func NewStyles() *Styles {
	var (
		primaryColor = lipgloss.Color("#4ECDC4")
		highColor    = lipgloss.Color("#FF6B6B")
		lowColor     = lipgloss.Color("#6B9BFF")
		goodColor    = lipgloss.Color("#95E1D3")
		warnColor    = lipgloss.Color("#FFE66D")
		subtleColor  = lipgloss.Color("#666666")
	)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(goodColor),
		Normal: lipgloss.NewStyle(),
		Subtle: lipgloss.NewStyle().
			Foreground(subtleColor),
		High: lipgloss.NewStyle().
			Foreground(highColor),
		Low: lipgloss.NewStyle().
			Foreground(lowColor),
		Good: lipgloss.NewStyle().
			Foreground(goodColor),
		Severe: lipgloss.NewStyle().
			Bold(true).
			Foreground(highColor),
		Warn: lipgloss.NewStyle().
			Foreground(warnColor),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtleColor).
			Padding(0, 1),
	}
}
