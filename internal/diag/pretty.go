package diag

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles used by Pretty. Built once at package init; Pretty disables them
// per call by swapping in lipgloss.NewStyle() (which renders as plain text).
var (
	gutterStyle  = lipgloss.NewStyle().Faint(true)
	messageStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Pretty renders a Diagnostic against the original source with a line
// gutter and a bold, colored message. Lox tokens only carry a line number,
// not a column, so no caret is drawn under a specific character — only the
// offending source line is shown for context.
//
// color controls whether ANSI styling is applied; the CLI passes false for
// --no-color or NO_COLOR. Whether the output is a terminal is not checked.
func Pretty(d Diagnostic, source string, color bool) string {
	gutter, message := gutterStyle, messageStyle
	if !color {
		gutter, message = lipgloss.NewStyle(), lipgloss.NewStyle()
	}

	var sb strings.Builder
	sb.WriteString(message.Render(d.Format()))

	if line := sourceLine(source, d.Line); line != "" {
		sb.WriteString("\n")
		sb.WriteString(gutter.Render(fmt.Sprintf("%4d | ", d.Line)))
		sb.WriteString(line)
	}
	return sb.String()
}

// PrettyAll renders every accumulated diagnostic in r against source,
// separated by blank lines.
func (r *Reporter) PrettyAll(source string, color bool) string {
	var sb strings.Builder
	for i, d := range r.diagnostics {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(Pretty(d, source, color))
	}
	if len(r.diagnostics) > 0 {
		sb.WriteString("\n")
	}
	return sb.String()
}

func sourceLine(source string, line int) string {
	if line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}
