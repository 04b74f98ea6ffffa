package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bswizard/core"
)

// FileBrowser wraps the bubbles file picker as a modal screen. onSelected
// fires exactly once, on confirmation; dismissal through F8 pops the screen
// without firing it.
type FileBrowser struct {
	picker     filepicker.Model
	onSelected func(path string) tea.Cmd
}

func NewFileBrowser(startDir string, onSelected func(string) tea.Cmd) *FileBrowser {
	fp := filepicker.New()
	fp.CurrentDirectory = startDir
	fp.AllowedTypes = []string{".csv"}
	fp.ShowHidden = false
	fp.Height = 12
	return &FileBrowser{picker: fp, onSelected: onSelected}
}

func (b *FileBrowser) Title() string { return "Browse" }

func (b *FileBrowser) InitScreen() tea.Cmd {
	return b.picker.Init()
}

func (b *FileBrowser) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	var cmd tea.Cmd
	b.picker, cmd = b.picker.Update(msg)
	if ok, path := b.picker.DidSelectFile(msg); ok {
		if b.onSelected != nil {
			return b, b.onSelected(path), true
		}
		return b, nil, true
	}
	return b, cmd, false
}

var browserTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)

func (b *FileBrowser) View(width, height int) string {
	lines := []string{
		browserTitleStyle.Render("Select a statement file"),
		"",
		b.picker.View(),
		menuHintStyle.Render("ENTER select · F8 cancel"),
	}
	return strings.Join(lines, "\n")
}
