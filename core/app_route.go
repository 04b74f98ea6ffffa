package core

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.main.Resize(msg.Width, msg.Height)
		return m, nil

	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil

	case DataLoadedMsg:
		if msg.Err != nil {
			m.SetError(msg.Err)
			return m, nil
		}
		m.main.SetData(msg.Statements, msg.Monthly)
		m.SetStatus(fmt.Sprintf("%d statements loaded", len(msg.Statements)))
		return m, nil

	case PushScreenMsg:
		return m, m.PushScreen(msg.Screen)

	case PopScreenMsg:
		if _, err := m.screens.Pop(); err != nil {
			m.reportStackFault(err)
		}
		return m, nil

	case ReplaceScreenMsg:
		if err := m.screens.ReplaceTop(msg.Screen); err != nil {
			m.reportStackFault(err)
			return m, nil
		}
		if init, ok := msg.Screen.(ScreenInitializer); ok {
			return m, init.InitScreen()
		}
		return m, nil

	case StatementAddedMsg:
		if msg.Err != nil {
			m.SetError(msg.Err)
			return m, nil
		}
		m.SetStatus("Imported " + filepath.Base(msg.Path))
		return m, m.loadData

	case tea.KeyMsg:
		return m.routeKey(msg)
	}

	return m.forward(msg)
}

// routeKey is the navigation state machine. Order matters: the quit
// confirmation gate comes first, then esc, then global shortcuts, and only
// then does the active screen see the key. Unrecognized keys are no-ops.
func (m Model) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := normalizeKey(msg.String())

	if m.mode == ModeQuitting {
		switch key {
		case "enter":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.mode = ModeNormal
		}
		return m, nil
	}

	if key == "esc" {
		m.mode = ModeQuitting
		return m, nil
	}

	if sc, ok := m.shortcuts.Lookup(key); ok {
		if sc.Action == nil {
			return m, nil
		}
		return m, sc.Action(&m)
	}

	return m.forward(msg)
}

// forward hands a message to the active screen: the top modal when one is
// open, otherwise the main view.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			if _, err := m.screens.Pop(); err != nil {
				m.reportStackFault(err)
			}
			return m, cmd
		}
		m.screens.setTop(next)
		return m, cmd
	}
	next, cmd, _ := m.main.Update(msg)
	if mv, ok := next.(*MainView); ok {
		m.main = mv
	}
	return m, cmd
}

func (m *Model) reportStackFault(err error) {
	log.Error("screen stack invariant violated", "err", err)
	m.SetError(err)
}
