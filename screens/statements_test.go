package screens

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"bswizard/core"
)

type fakeAdder struct {
	calls []string
	err   error
}

func (f *fakeAdder) AddStatement(_ context.Context, path string) error {
	f.calls = append(f.calls, path)
	return f.err
}

func wizardModel(t *testing.T, flow *StatementsFlow) core.Model {
	t.Helper()
	table, err := core.NewShortcutTable([]core.Shortcut{
		{Key: "f2", Label: "Statements", Action: flow.Open},
		{Key: "f8", Label: "Done", Action: func(m *core.Model) tea.Cmd { m.CloseTopScreen(); return nil }},
	})
	if err != nil {
		t.Fatalf("shortcuts: %v", err)
	}
	return core.NewModel(table, nil)
}

// step feeds one message and applies any message the resulting command
// produces, the way the runtime would.
func step(t *testing.T, m core.Model, msg tea.Msg) core.Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(core.Model)
	for cmd != nil {
		out := cmd()
		if out == nil {
			break
		}
		next, cmd = m.Update(out)
		m = next.(core.Model)
	}
	return m
}

func TestFlowOpensStatementsMenu(t *testing.T) {
	flow, err := NewStatementsFlow(&fakeAdder{}, t.TempDir())
	if err != nil {
		t.Fatalf("flow: %v", err)
	}
	m := wizardModel(t, flow)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyF2})
	menu, ok := m.CurrentScreen().(*MenuDialog)
	if !ok || menu.Title() != "Statements Menu" {
		t.Fatalf("f2 should open the statements menu, got %T", m.CurrentScreen())
	}
	if m.ScreenDepth() != 1 {
		t.Fatalf("depth = %d, want 1", m.ScreenDepth())
	}
}

func TestFlowAddStatementReplacesMenuInPlace(t *testing.T) {
	flow, err := NewStatementsFlow(&fakeAdder{}, t.TempDir())
	if err != nil {
		t.Fatalf("flow: %v", err)
	}
	m := wizardModel(t, flow)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyF2})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // Add Statement
	menu, ok := m.CurrentScreen().(*MenuDialog)
	if !ok || menu.Title() != "Add Statement" {
		t.Fatalf("expected the add-statement prompt, got %T", m.CurrentScreen())
	}
	if m.ScreenDepth() != 1 {
		t.Fatalf("menu steps should replace, not layer; depth = %d", m.ScreenDepth())
	}

	// Done returns to the statements menu, still one level deep.
	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	menu, ok = m.CurrentScreen().(*MenuDialog)
	if !ok || menu.Title() != "Statements Menu" {
		t.Fatalf("done should return to the statements menu")
	}
	if m.ScreenDepth() != 1 {
		t.Fatalf("depth = %d, want 1", m.ScreenDepth())
	}
}

func TestFlowDoneClosesMenu(t *testing.T) {
	flow, err := NewStatementsFlow(&fakeAdder{}, t.TempDir())
	if err != nil {
		t.Fatalf("flow: %v", err)
	}
	m := wizardModel(t, flow)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyF2})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown}) // Done (Remove Statement is reserved)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ScreenDepth() != 0 {
		t.Fatalf("done should pop back to the main view")
	}
}

func TestFlowBrowsePushesFileBrowser(t *testing.T) {
	flow, err := NewStatementsFlow(&fakeAdder{}, t.TempDir())
	if err != nil {
		t.Fatalf("flow: %v", err)
	}
	m := wizardModel(t, flow)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyF2})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // Add Statement
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // Browse (first enabled item)
	if _, ok := m.CurrentScreen().(*FileBrowser); !ok {
		t.Fatalf("browse should push the file browser, got %T", m.CurrentScreen())
	}
	if m.ScreenDepth() != 2 {
		t.Fatalf("browser should layer on the prompt; depth = %d", m.ScreenDepth())
	}
}

func TestBrowseCompletionInvokesModelOnceAndReturnsToParent(t *testing.T) {
	adder := &fakeAdder{}
	flow, err := NewStatementsFlow(adder, t.TempDir())
	if err != nil {
		t.Fatalf("flow: %v", err)
	}
	m := wizardModel(t, flow)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyF2})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	browser := m.CurrentScreen().(*FileBrowser)

	// Selection fires the callback and pops the browser, exactly what
	// Update does when the picker confirms a file.
	next, _ := m.Update(core.PopScreenMsg{})
	m = next.(core.Model)
	m = step(t, m, browser.onSelected("/tmp/stmt.csv")())

	if len(adder.calls) != 1 || adder.calls[0] != "/tmp/stmt.csv" {
		t.Fatalf("model should be invoked exactly once with the path, got %v", adder.calls)
	}
	menu, ok := m.CurrentScreen().(*MenuDialog)
	if !ok || menu.Title() != "Add Statement" {
		t.Fatalf("completion should return to the add-statement prompt")
	}
	if m.ScreenDepth() != 1 {
		t.Fatalf("depth = %d, want pre-browse depth 1", m.ScreenDepth())
	}
}

func TestBrowseCancelNeverInvokesModel(t *testing.T) {
	adder := &fakeAdder{}
	flow, err := NewStatementsFlow(adder, t.TempDir())
	if err != nil {
		t.Fatalf("flow: %v", err)
	}
	m := wizardModel(t, flow)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyF2})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = step(t, m, tea.KeyMsg{Type: tea.KeyF8}) // cancel the browser
	if len(adder.calls) != 0 {
		t.Fatalf("cancel must not invoke the model")
	}
	menu, ok := m.CurrentScreen().(*MenuDialog)
	if !ok || menu.Title() != "Add Statement" {
		t.Fatalf("cancel should return to the add-statement prompt")
	}
	if m.ScreenDepth() != 1 {
		t.Fatalf("depth = %d, want 1", m.ScreenDepth())
	}
}
