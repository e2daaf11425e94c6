package output

import "github.com/charmbracelet/lipgloss"

var (
	pidStyle     = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

func render(s lipgloss.Style, text string) string {
	if flagNoColor {
		return text
	}
	return s.Render(text)
}

// PID styles a process identifier.
func PID(text string) string { return render(pidStyle, text) }

// Success styles a status word for a completed action.
func Success(text string) string { return render(successStyle, text) }

// Warn styles a status word for an action that was skipped.
func Warn(text string) string { return render(warnStyle, text) }

// Error styles an error label.
func Error(text string) string { return render(errorStyle, text) }
