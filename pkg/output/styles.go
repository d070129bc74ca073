package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Styles for rendered results
var (
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	PathStyle    = lipgloss.NewStyle().Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // gray
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
)

// ConfigureColor enables or disables colored output. Mode is "auto",
// "always" or "never"; auto follows whether stderr is a terminal.
func ConfigureColor(mode string) {
	enabled := true
	switch mode {
	case "never":
		enabled = false
	case "always":
		enabled = true
	default:
		enabled = isatty.IsTerminal(os.Stderr.Fd())
	}

	if !enabled {
		pterm.DisableColor()
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
