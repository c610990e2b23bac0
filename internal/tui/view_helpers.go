package tui

import (
	"fmt"
	"strings"
)

var uiDivider = strings.Repeat("=", 60)

// renderHeader frames a screen title between two dividers.
func renderHeader(title string) string {
	return fmt.Sprintf("\n%s\n%s\n%s\n", uiDivider, titleStyle.Render(title), uiDivider)
}

// renderNotice formats an error notice: the message, its detail lines and
// the hint, each on its own line.
func renderNotice(n notice) string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ " + n.message))
	b.WriteString("\n")
	if len(n.details) > 0 {
		b.WriteString("  Validation details:\n")
		for _, d := range n.details {
			b.WriteString("   • ")
			b.WriteString(d)
			b.WriteString("\n")
		}
	}
	if n.hint != "" {
		b.WriteString(hintStyle.Render("Hint: " + n.hint))
		b.WriteString("\n")
	}

	return b.String()
}

func renderSuccess(text string) string {
	return successStyle.Render("✓ "+text) + "\n"
}

func renderProgress(text string) string {
	return "\n" + helpStyle.Render(text) + "\n"
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
