package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: template keys, project names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for success messages and template names in listings.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings from post-generation steps.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for fatal errors.
	ColorRed = lipgloss.Color("196")

	// ColorMagenta is used for filesystem locations.
	ColorMagenta = lipgloss.Color("13")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (template keys, project names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleSuccess styles success banners.
	StyleSuccess = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)

	// StyleWarning styles step-failure warnings.
	StyleWarning = lipgloss.NewStyle().Bold(true).Foreground(ColorYellow)

	// StyleError styles fatal error messages.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(ColorRed)

	// StyleStep styles progress steps.
	StyleStep = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleLocation styles filesystem locations.
	StyleLocation = lipgloss.NewStyle().Bold(true).Foreground(ColorMagenta)

	// StyleDim styles secondary text (descriptions, command examples).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleHeader styles section headers.
	StyleHeader = lipgloss.NewStyle().Bold(true).Underline(true)
)

// colorEnabled tracks whether styled rendering is active.
var colorEnabled = true

// SetColor enables or disables styled rendering. Disabled when
// development.color is false or stdout is not a terminal.
func SetColor(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled reports whether styled rendering is active.
func ColorEnabled() bool {
	return colorEnabled
}

// render applies a style unless color has been disabled.
func render(s lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return s.Render(text)
}
