package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorEnabled reports whether output to f should be coloured: f must be a
// terminal, NO_COLOR must be unset and the terminal must support colour.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).Profile != termenv.Ascii
}

// SetColor switches every style between coloured and plain rendering.
func SetColor(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).Profile)
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}
