// Package themes defines the visual styling for the wizard TUI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Muted         lipgloss.Style
	Selected      lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusPending lipgloss.Style
	StatusError   lipgloss.Style
	Box           lipgloss.Style
	SummaryLabel  lipgloss.Style
	SummaryValue  lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
	Border        lipgloss.Color
	MutedColor    lipgloss.Color
}

// Default is the default theme.
var Default = func() Theme {
	t := Theme{
		Primary:    lipgloss.Color("#2563eb"),
		Secondary:  lipgloss.Color("#60a5fa"),
		Success:    lipgloss.Color("#10b981"),
		Warning:    lipgloss.Color("#f59e0b"),
		Error:      lipgloss.Color("#ef4444"),
		Border:     lipgloss.Color("#404040"),
		MutedColor: lipgloss.Color("#9ca3af"),
	}

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	t.Subtitle = lipgloss.NewStyle().Foreground(t.Secondary)
	t.Normal = lipgloss.NewStyle()
	t.Bold = lipgloss.NewStyle().Bold(true)
	t.Muted = lipgloss.NewStyle().Foreground(t.MutedColor)
	t.Selected = lipgloss.NewStyle().Bold(true).Foreground(t.Primary).SetString("> ")
	t.StatusSuccess = lipgloss.NewStyle().Bold(true).Foreground(t.Success)
	t.StatusPending = lipgloss.NewStyle().Foreground(t.Warning)
	t.StatusError = lipgloss.NewStyle().Foreground(t.Error)
	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
	t.SummaryLabel = lipgloss.NewStyle().Foreground(t.MutedColor).Width(16)
	t.SummaryValue = lipgloss.NewStyle().Bold(true)

	return t
}()
