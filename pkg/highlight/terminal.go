package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/waveform-computing/sqldoc/pkg/token"
)

// Theme maps style names to terminal styles.
type Theme map[string]lipgloss.Style

// DefaultTheme returns the stock terminal colors, keyed by the names
// DefaultStyles assigns.
func DefaultTheme() Theme {
	return Theme{
		"sql_error":      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		"sql_comment":    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		"sql_keyword":    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		"sql_datatype":   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		"sql_register":   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		"sql_number":     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"sql_string":     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		"sql_operator":   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		"sql_parameter":  lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Underline(true),
		"sql_terminator": lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	}
}

// Terminal renders a token stream as ANSI-styled text. Styling is
// dropped entirely when the environment disables color.
func Terminal(tokens []token.Token, styles StyleMap, theme Theme) string {
	frags := Highlight(tokens, styles)
	if termenv.EnvNoColor() {
		return Text(frags)
	}
	var b strings.Builder
	for _, frag := range frags {
		if style, ok := theme[frag.Style]; ok && frag.Style != "" {
			b.WriteString(style.Render(frag.Text))
		} else {
			b.WriteString(frag.Text)
		}
	}
	return b.String()
}
