package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is a renderable, key-handling unit shown on top of the main view.
// Update returns the replacement screen, an optional command, and whether
// the screen wants to be popped.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Title() string
}

// ScreenInitializer is implemented by screens that need a command run when
// they are pushed (for example to read a directory).
type ScreenInitializer interface {
	InitScreen() tea.Cmd
}

// Mode is the quit-confirmation gate. While quitting, the rendered screen
// is always the quit dialog, overriding the modal stack.
type Mode int

const (
	ModeNormal Mode = iota
	ModeQuitting
)

// Model owns the current-screen state: main view, modal stack and quit
// confirmation. It is the single place global shortcuts are checked.
type Model struct {
	width  int
	height int

	mode      Mode
	screens   ScreenStack
	shortcuts *ShortcutTable
	main      *MainView
	quit      *QuitDialog

	status    string
	statusErr bool
	quitting  bool

	loadData tea.Cmd
}

// NewModel wires the controller. loadData produces a DataLoadedMsg and is
// re-run after every successful import; nil disables loading.
func NewModel(shortcuts *ShortcutTable, loadData tea.Cmd) Model {
	return Model{
		shortcuts: shortcuts,
		main:      NewMainView(),
		quit:      &QuitDialog{},
		status:    "Ready",
		loadData:  loadData,
		width:     100,
		height:    32,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadData
}

// CurrentScreen resolves which screen the next render presents: the quit
// dialog while confirming, else the top modal, else the main view.
func (m Model) CurrentScreen() Screen {
	if m.mode == ModeQuitting {
		return m.quit
	}
	if top := m.screens.Top(); top != nil {
		return top
	}
	return m.main
}

func (m Model) Mode() Mode {
	return m.mode
}

func (m Model) ScreenDepth() int {
	return m.screens.Len()
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// PushScreen appends a modal and returns its init command, if any.
func (m *Model) PushScreen(s Screen) tea.Cmd {
	m.screens.Push(s)
	if init, ok := s.(ScreenInitializer); ok {
		return init.InitScreen()
	}
	return nil
}

// CloseTopScreen pops the active modal. A no-op on the main view: the
// empty-stack guard lives here so F8 is total.
func (m *Model) CloseTopScreen() {
	if m.screens.IsEmpty() {
		return
	}
	if _, err := m.screens.Pop(); err != nil {
		m.reportStackFault(err)
	}
}

func (m Model) Shortcuts() *ShortcutTable {
	return m.shortcuts
}
