package output

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dryRunStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Faint(true)
	branchStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// Branch renders a branch name for display
func Branch(name string) string {
	return branchStyle.Render(name)
}

// Faint renders de-emphasized text, used for value provenance annotations
func Faint(text string) string {
	return faintStyle.Render(text)
}
