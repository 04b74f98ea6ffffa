package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"bswizard/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	menu := renderMenuBar(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)

	chrome := lipgloss.Height(header) + lipgloss.Height(menu) + lipgloss.Height(status) + lipgloss.Height(footer)
	bodyHeight := m.height - chrome
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	var body string
	if bodyHeight > 0 {
		body = m.main.View(max(1, m.width-2), bodyHeight)
		if top := m.screens.Top(); top != nil {
			body = widgets.RenderPopup(body, top.View(max(20, m.width-12), max(8, m.height-8)), m.width, bodyHeight)
		}
		if m.mode == ModeQuitting {
			body = widgets.RenderPopup(body, m.quit.View(max(20, m.width-12), max(4, m.height-8)), m.width, bodyHeight)
		}
	}
	body = fitHeight(body, bodyHeight)

	view := strings.Join([]string{header, menu, status, body, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render("Bank Statement Wizard")
	right := lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle).Render("Press ESC to exit")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderHeaderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

// renderMenuBar paints the F-key menu, one cell per shortcut, like the
// original top menu columns.
func renderMenuBar(m Model) string {
	cells := make([]string, 0, 8)
	for _, sc := range m.shortcuts.Shortcuts() {
		cells = append(cells, menuKeyStyle.Render(strings.ToUpper(sc.Key))+menuLabelStyle.Render(sc.Label))
	}
	return renderHeaderBar(headerBarStyle, max(1, m.width), strings.Join(cells, ""))
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
