package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatementRow is the main-view projection of an imported statement.
type StatementRow struct {
	ID         string
	Name       string
	ImportedOn time.Time
	TxCount    int
	NetCents   int64
}

// MonthlyPoint is one month of net movement for the dashboard chart.
type MonthlyPoint struct {
	Month    time.Time
	NetCents int64
}

type StatusMsg struct {
	Text  string
	IsErr bool
}

type DataLoadedMsg struct {
	Statements []StatementRow
	Monthly    []MonthlyPoint
	Err        error
}

// PushScreenMsg layers a modal on top of the current screen.
type PushScreenMsg struct {
	Screen Screen
}

// PopScreenMsg dismisses the active modal, returning control to the entry
// below (or the main view).
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the active modal for the next flow step.
type ReplaceScreenMsg struct {
	Screen Screen
}

// StatementAddedMsg reports the outcome of handing a browsed path to the
// statement model.
type StatementAddedMsg struct {
	Path string
	Err  error
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func PushScreenCmd(s Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

func PopScreenCmd() tea.Msg {
	return PopScreenMsg{}
}

func ReplaceScreenCmd(s Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}
