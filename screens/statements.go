package screens

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"bswizard/core"
)

// StatementAdder is the statement model as seen from the wizard: hand it a
// browsed path, get an error back for invalid or duplicate files.
type StatementAdder interface {
	AddStatement(ctx context.Context, path string) error
}

// StatementsFlow is the F2 wizard: statements menu, add-statement prompt,
// file browser. Each step is a fresh dialog; moving between menu steps
// replaces the top of the stack, the browser layers on top and pops back to
// its parent whether it completes or cancels. The model is invoked only on
// completion.
type StatementsFlow struct {
	adder    StatementAdder
	startDir string
}

// NewStatementsFlow validates the whole dialog set eagerly so a missing
// callback aborts at startup, never mid-navigation.
func NewStatementsFlow(adder StatementAdder, startDir string) (*StatementsFlow, error) {
	f := &StatementsFlow{adder: adder, startDir: startDir}
	if _, err := f.rootMenu(); err != nil {
		return nil, err
	}
	if _, err := f.addPrompt(); err != nil {
		return nil, err
	}
	return f, nil
}

// Open is the F2 shortcut action.
func (f *StatementsFlow) Open(m *core.Model) tea.Cmd {
	menu, err := f.rootMenu()
	if err != nil {
		return core.ErrorCmd(err)
	}
	return m.PushScreen(menu)
}

func (f *StatementsFlow) rootMenu() (*MenuDialog, error) {
	return NewMenuDialog("Statements Menu", []MenuItem{
		{Label: "Add Statement", Action: f.toAddPrompt},
		{Label: "Remove Statement", Disabled: true},
		{Label: "Done", Action: core.PopScreenCmd},
	})
}

func (f *StatementsFlow) addPrompt() (*MenuDialog, error) {
	return NewMenuDialog("Add Statement", []MenuItem{
		{Label: "Statement Type", Disabled: true},
		{Label: "Browse", Action: f.toBrowser},
		{Label: "Done", Action: f.toRootMenu},
	})
}

func (f *StatementsFlow) toAddPrompt() tea.Msg {
	menu, err := f.addPrompt()
	if err != nil {
		return core.StatusMsg{Text: err.Error(), IsErr: true}
	}
	return core.ReplaceScreenMsg{Screen: menu}
}

func (f *StatementsFlow) toRootMenu() tea.Msg {
	menu, err := f.rootMenu()
	if err != nil {
		return core.StatusMsg{Text: err.Error(), IsErr: true}
	}
	return core.ReplaceScreenMsg{Screen: menu}
}

func (f *StatementsFlow) toBrowser() tea.Msg {
	return core.PushScreenMsg{Screen: NewFileBrowser(f.startDir, f.addStatement)}
}

func (f *StatementsFlow) addStatement(path string) tea.Cmd {
	return func() tea.Msg {
		err := f.adder.AddStatement(context.Background(), path)
		return core.StatementAddedMsg{Path: path, Err: err}
	}
}
