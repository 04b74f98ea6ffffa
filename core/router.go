package core

// ScreenStack holds the active modal overlays, most recent last. All
// mutation goes through the app model's message loop; screens never touch
// the stack directly.
type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

// Pop removes and returns the top screen. An empty stack is an invariant
// violation on the caller's side and is reported, not ignored.
func (s *ScreenStack) Pop() (Screen, error) {
	if len(s.items) == 0 {
		return nil, ErrEmptyStack
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last, nil
}

// ReplaceTop swaps the top screen for another, used when a flow step moves
// forward without layering.
func (s *ScreenStack) ReplaceTop(screen Screen) error {
	if len(s.items) == 0 {
		return ErrEmptyStack
	}
	if screen == nil {
		return nil
	}
	s.items[len(s.items)-1] = screen
	return nil
}

func (s *ScreenStack) setTop(screen Screen) {
	if len(s.items) > 0 && screen != nil {
		s.items[len(s.items)-1] = screen
	}
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}

func (s ScreenStack) IsEmpty() bool {
	return len(s.items) == 0
}
