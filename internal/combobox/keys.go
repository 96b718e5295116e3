package combobox

// Key is a keyboard event relevant to the combobox.
type Key int

const (
	KeyOther Key = iota
	KeyDown
	KeyUp
	KeyEnter
	KeyEscape
)

// Focus tells which part of the widget holds keyboard focus.
type Focus int

const (
	FocusInput Focus = iota
	FocusList
)

// HandleKey maps a key press onto cursor movement and commit actions.
// Arrow keys move the cursor (and focus the list while the popover is open),
// Enter commits, Escape clears the query and closes the popover. Any other
// key sends focus back to the text field and opens the popover. It reports
// whether the key was consumed.
func (s *State) HandleKey(k Key) bool {
	switch k {
	case KeyDown:
		s.focusList()
		s.MoveCursor(Next)
		return true
	case KeyUp:
		s.focusList()
		s.MoveCursor(Previous)
		return true
	case KeyEnter:
		s.CommitCursor()
		return true
	case KeyEscape:
		s.ClearQuery()
		s.popoverOpen = false
		s.focus = FocusInput
		return true
	default:
		s.focus = FocusInput
		s.popoverOpen = true
		return false
	}
}

// PopoverOpen reports whether the candidate list is shown.
func (s *State) PopoverOpen() bool {
	return s.popoverOpen
}

// OpenPopover shows the candidate list.
func (s *State) OpenPopover() {
	s.popoverOpen = true
}

// ClosePopover hides the list and clears the query, like leaving the widget.
func (s *State) ClosePopover() {
	s.popoverOpen = false
	s.focus = FocusInput
	s.ClearQuery()
}

// Focus returns the focused part.
func (s *State) Focus() Focus {
	return s.focus
}

func (s *State) focusList() {
	if s.popoverOpen {
		s.focus = FocusList
	}
}
