package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// QuitDialog is the two-phase exit confirmation. Its key handling lives in
// routeKey, before the modal stack is consulted: enter confirms, esc cancels
// and restores the pre-quit screen, everything else is ignored. Entering and
// leaving confirmation has no side effects.
type QuitDialog struct{}

func (d *QuitDialog) Title() string { return "Quit" }

func (d *QuitDialog) Update(tea.Msg) (Screen, tea.Cmd, bool) {
	return d, nil, false
}

func (d *QuitDialog) View(width, height int) string {
	lines := []string{
		quitTextStyle.Render("Quit Bank Statement Wizard?"),
		"",
		quitHintStyle.Render("ENTER confirm · ESC cancel"),
	}
	return lipgloss.NewStyle().MaxWidth(max(10, width)).Render(strings.Join(lines, "\n"))
}
