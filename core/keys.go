package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Shortcut is a global key binding independent of the current screen.
// Reserved entries keep their key on the menu bar with a nil Action.
type Shortcut struct {
	Key    string
	Label  string
	Action func(m *Model) tea.Cmd
}

// ShortcutTable is the fixed global shortcut set, built once at startup.
type ShortcutTable struct {
	order []Shortcut
	byKey map[string]*Shortcut
}

// NewShortcutTable validates key uniqueness eagerly; a duplicate key is a
// wiring mistake and fails construction.
func NewShortcutTable(shortcuts []Shortcut) (*ShortcutTable, error) {
	t := &ShortcutTable{
		order: make([]Shortcut, len(shortcuts)),
		byKey: make(map[string]*Shortcut, len(shortcuts)),
	}
	copy(t.order, shortcuts)
	for i := range t.order {
		k := normalizeKey(t.order[i].Key)
		if _, exists := t.byKey[k]; exists {
			return nil, &DuplicateShortcutError{Key: t.order[i].Key}
		}
		t.order[i].Key = k
		t.byKey[k] = &t.order[i]
	}
	return t, nil
}

// Lookup returns the shortcut bound to key, if any.
func (t *ShortcutTable) Lookup(key string) (Shortcut, bool) {
	if t == nil {
		return Shortcut{}, false
	}
	sc, ok := t.byKey[normalizeKey(key)]
	if !ok {
		return Shortcut{}, false
	}
	return *sc, true
}

// Shortcuts returns the table in declared order, for the menu bar and footer.
func (t *ShortcutTable) Shortcuts() []Shortcut {
	if t == nil {
		return nil
	}
	out := make([]Shortcut, len(t.order))
	copy(out, t.order)
	return out
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
