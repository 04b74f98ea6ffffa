package core

import (
	"errors"
	"fmt"
)

// ErrEmptyStack reports a pop on an empty screen stack. Callers guard
// against it; seeing it at runtime means a flow bug, so it is logged and
// surfaced on the status bar rather than swallowed.
var ErrEmptyStack = errors.New("screen stack is empty")

// DuplicateShortcutError reports two shortcuts registered for the same key.
type DuplicateShortcutError struct {
	Key string
}

func (e *DuplicateShortcutError) Error() string {
	return fmt.Sprintf("duplicate shortcut key %q", e.Key)
}
