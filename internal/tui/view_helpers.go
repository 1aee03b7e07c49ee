package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage lays out a page: title, body between dividers, then the page
// hotkeys and the global quit hint. An empty body renders as "-".
func renderPage(title, data, hotKeys string) string {
	lines := []string{titleStyle.Render(title), "  " + uiDivider, ""}

	if strings.TrimSpace(data) == "" {
		lines = append(lines, "  -")
	} else {
		for line := range strings.SplitSeq(data, "\n") {
			lines = append(lines, "  "+line)
		}
	}

	lines = append(lines, "", "  "+uiDivider)
	if strings.TrimSpace(hotKeys) != "" {
		lines = append(lines, "  "+helpStyle.Render(hotKeys))
	}
	lines = append(lines, "  "+helpStyle.Render("ctrl+c: выход"))

	return strings.Join(lines, "\n")
}

// renderError formats errMsg under a form, or nothing when it is empty.
func renderError(errMsg string) string {
	if errMsg == "" {
		return ""
	}
	return "\n" + errorStyle.Render("Ошибка: "+errMsg) + "\n"
}

// newInput returns a text input in the form style used by every page.
func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return in
}
