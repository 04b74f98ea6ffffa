package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bswizard/core"
)

// MissingCallbackError reports an enabled dialog item wired without an
// action. Detected when the owning flow is constructed, before any dialog
// can be shown.
type MissingCallbackError struct {
	Dialog string
	Item   string
}

func (e *MissingCallbackError) Error() string {
	return fmt.Sprintf("dialog %q: item %q has no action", e.Dialog, e.Item)
}

// MenuItem is one selectable line of a menu dialog. Disabled items are
// reserved entries: visible, never activatable, no action required.
type MenuItem struct {
	Label    string
	Disabled bool
	Action   tea.Cmd
}

// MenuDialog is a small vertical button menu, the shape of the original
// overlay menus. It is built fully populated; construction fails rather
// than allowing a partially wired dialog to be shown.
type MenuDialog struct {
	title  string
	items  []MenuItem
	cursor int
}

func NewMenuDialog(title string, items []MenuItem) (*MenuDialog, error) {
	for _, it := range items {
		if !it.Disabled && it.Action == nil {
			return nil, &MissingCallbackError{Dialog: title, Item: it.Label}
		}
	}
	d := &MenuDialog{title: title, items: items, cursor: -1}
	d.cursor = d.seek(-1, +1)
	return d, nil
}

func (d *MenuDialog) Title() string { return d.title }

func (d *MenuDialog) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}
	switch keyMsg.String() {
	case "up", "k":
		if next := d.seek(d.cursor, -1); next >= 0 {
			d.cursor = next
		}
	case "down", "j":
		if next := d.seek(d.cursor, +1); next >= 0 {
			d.cursor = next
		}
	case "enter":
		if d.cursor >= 0 && d.cursor < len(d.items) {
			return d, d.items[d.cursor].Action, false
		}
	}
	return d, nil, false
}

// seek finds the next enabled item from idx in the given direction, or -1.
func (d *MenuDialog) seek(idx, dir int) int {
	for i := idx + dir; i >= 0 && i < len(d.items); i += dir {
		if !d.items[i].Disabled {
			return i
		}
	}
	return -1
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	menuDividerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	menuDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

func (d *MenuDialog) View(width, height int) string {
	lines := make([]string, 0, len(d.items)+4)
	lines = append(lines,
		menuTitleStyle.Render(d.title),
		menuDividerStyle.Render(strings.Repeat("_", min(len(d.title)+8, max(8, width-4)))),
	)
	for i, it := range d.items {
		switch {
		case it.Disabled:
			lines = append(lines, menuDisabledStyle.Render("  "+it.Label))
		case i == d.cursor:
			lines = append(lines, menuSelectedStyle.Render("> "+it.Label))
		default:
			lines = append(lines, menuItemStyle.Render("  "+it.Label))
		}
	}
	lines = append(lines, "", menuHintStyle.Render("ENTER select · F8 done"))
	return strings.Join(lines, "\n")
}
