package viz

import "github.com/charmbracelet/lipgloss"

type styleSet struct {
	header lipgloss.Style
	status lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	help   lipgloss.Style
	canvas lipgloss.Style
	stats  lipgloss.Style
	chart  lipgloss.Style
	box    lipgloss.Style
}

func newStyles(t Theme) styleSet {
	return styleSet{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			Padding(0, 1),
		status: lipgloss.NewStyle().
			Foreground(t.Accent).
			Padding(0, 1),
		label: lipgloss.NewStyle().
			Foreground(t.Muted),
		value: lipgloss.NewStyle().
			Foreground(t.Text).
			Bold(true),
		help: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 1),
		canvas: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
		stats: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		chart: lipgloss.NewStyle().
			Foreground(t.Primary),
		box: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.Accent).
			Padding(1, 2),
	}
}
