package combobox

// Mode selects multi or single selection semantics.
type Mode int

const (
	ModeMulti Mode = iota
	ModeSingle
)

// CursorReset decides where the cursor goes after the query changes.
type CursorReset int

const (
	ResetToNone CursorReset = iota
	ResetToFirst
)

// Direction is a cursor movement.
type Direction int

const (
	Next Direction = iota
	Previous
)

// Callbacks are the events the state emits. All are optional.
type Callbacks struct {
	// OnSelectionChange receives the full selection after it changes.
	OnSelectionChange func(selected []Item)
	// OnItemSelect receives the id of a committed, enabled item.
	OnItemSelect func(id string)
	// OnRemoveAll fires when the remove-all action runs.
	OnRemoveAll func()
}

// Options configures a State.
type Options struct {
	Mode        Mode
	CursorReset CursorReset
	Callbacks   Callbacks
	// DefaultSelected seeds an uncontrolled selection.
	DefaultSelected []Item
	// Controlled, when non-nil, makes the selection caller owned.
	Controlled []Item
}

// State is the filter + selection + cursor model. It never fails: bad input
// such as duplicate ids is caught by ValidateItems, not here.
type State struct {
	mode        Mode
	cursorReset CursorReset
	callbacks   Callbacks

	items   []Item
	query   string
	visible []Item

	selected     []Item
	selectedKeys map[string]struct{}
	disabledKeys map[string]struct{}
	controlled   bool

	cursor    string
	hasCursor bool

	popoverOpen bool
	focus       Focus
}

// New builds a state over items.
func New(items []Item, opts Options) *State {
	s := &State{
		mode:        opts.Mode,
		cursorReset: opts.CursorReset,
		callbacks:   opts.Callbacks,
	}
	s.items = cloneItems(items)
	s.visible = Filter(s.items, "")

	if opts.Controlled != nil {
		s.SetControlled(opts.Controlled)
	} else {
		s.replaceSelection(opts.DefaultSelected)
		s.disabledKeys = keysOf(s.items, true)
	}
	return s
}

// Mode returns the selection mode.
func (s *State) Mode() Mode {
	return s.mode
}

// SetCallbacks replaces the event callbacks.
func (s *State) SetCallbacks(cb Callbacks) {
	s.callbacks = cb
}

// Items returns all candidates in order.
func (s *State) Items() []Item {
	return cloneItems(s.items)
}

// SetItems replaces the candidates and refilters with the current query.
func (s *State) SetItems(items []Item) {
	s.items = cloneItems(items)
	s.visible = Filter(s.items, s.query)
	if !s.controlled {
		s.disabledKeys = keysOf(s.items, true)
	}
	s.dropStaleCursor()
}

// Query returns the current filter text.
func (s *State) Query() string {
	return s.query
}

// SetQuery refilters the candidates and resets the cursor.
func (s *State) SetQuery(text string) {
	s.query = text
	s.visible = Filter(s.items, text)
	s.hasCursor = false
	s.cursor = ""
	if s.cursorReset == ResetToFirst && len(s.visible) > 0 {
		s.setCursor(s.visible[0].ID)
	}
}

// ClearQuery empties the filter so every candidate is visible again.
func (s *State) ClearQuery() {
	s.query = ""
	s.visible = Filter(s.items, "")
	s.dropStaleCursor()
}

// Visible returns the filtered candidates in their original order.
func (s *State) Visible() []Item {
	return cloneItems(s.visible)
}

// Cursor returns the highlighted item id, if any.
func (s *State) Cursor() (string, bool) {
	return s.cursor, s.hasCursor
}

// CursorIndex returns the cursor's position in the visible list, or -1.
func (s *State) CursorIndex() int {
	if !s.hasCursor {
		return -1
	}
	return indexOf(s.visible, s.cursor)
}

// SetCursor highlights id if it is visible. It reports whether it moved.
func (s *State) SetCursor(id string) bool {
	if indexOf(s.visible, id) < 0 {
		return false
	}
	s.setCursor(id)
	return true
}

// MoveCursor moves the highlight with wraparound. Without a cursor, Next
// lands on the first item and Previous on the last.
func (s *State) MoveCursor(dir Direction) {
	n := len(s.visible)
	if n == 0 {
		return
	}
	delta := 1
	if dir == Previous {
		delta = -1
	}

	idx := s.CursorIndex()
	var next int
	switch {
	case idx < 0 && dir == Previous:
		next = n - 1
	case idx < 0:
		next = 0
	default:
		next = (idx + delta + n) % n
	}
	s.setCursor(s.visible[next].ID)
}

// CommitCursor selects the highlighted item. It reports whether anything was
// committed.
func (s *State) CommitCursor() bool {
	if !s.hasCursor {
		return false
	}
	idx := indexOf(s.visible, s.cursor)
	if idx < 0 {
		return false
	}
	return s.Toggle(s.visible[idx])
}

// Toggle applies a selection action to item, the pointer counterpart of
// CommitCursor. Disabled items are ignored. It reports whether the action
// was accepted.
func (s *State) Toggle(item Item) bool {
	if s.IsDisabled(item.ID) || item.Disabled {
		return false
	}
	if s.callbacks.OnItemSelect != nil {
		s.callbacks.OnItemSelect(item.ID)
	}
	if s.controlled {
		return true
	}

	switch s.mode {
	case ModeSingle:
		if _, ok := s.selectedKeys[item.ID]; ok && len(s.selected) == 1 {
			return true
		}
		s.replaceSelection([]Item{item})
	default:
		if _, ok := s.selectedKeys[item.ID]; ok {
			kept := make([]Item, 0, len(s.selected))
			for _, sel := range s.selected {
				if sel.ID != item.ID {
					kept = append(kept, sel)
				}
			}
			s.replaceSelection(kept)
		} else {
			s.replaceSelection(append(cloneItems(s.selected), item))
		}
	}
	s.emitSelection()
	return true
}

// ToggleID looks up id among the candidates and toggles it.
func (s *State) ToggleID(id string) bool {
	if idx := indexOf(s.items, id); idx >= 0 {
		return s.Toggle(s.items[idx])
	}
	if idx := indexOf(s.selected, id); idx >= 0 {
		return s.Toggle(s.selected[idx])
	}
	return false
}

// RemoveAll clears the selection, keeping selected items that are disabled.
// A controlled selection is left to the caller; only events fire.
func (s *State) RemoveAll() {
	if s.callbacks.OnRemoveAll != nil {
		s.callbacks.OnRemoveAll()
	}
	kept := make([]Item, 0)
	for _, item := range s.selected {
		if item.Disabled {
			kept = append(kept, item)
		}
	}
	if !s.controlled {
		s.replaceSelection(kept)
	}
	if s.callbacks.OnSelectionChange != nil {
		s.callbacks.OnSelectionChange(cloneItems(kept))
	}
}

// SetControlled makes the selection mirror items. Disabled state for
// selected entries is taken from items.
func (s *State) SetControlled(items []Item) {
	s.controlled = true
	s.replaceSelection(items)
	s.disabledKeys = keysOf(items, true)
}

// Uncontrol hands selection ownership back to the state.
func (s *State) Uncontrol() {
	s.controlled = false
	s.disabledKeys = keysOf(s.items, true)
}

// IsControlled reports whether the caller owns the selection.
func (s *State) IsControlled() bool {
	return s.controlled
}

// Selected returns the selection in the order items were picked.
func (s *State) Selected() []Item {
	return cloneItems(s.selected)
}

// SelectedIDs returns the ids of the selection.
func (s *State) SelectedIDs() []string {
	ids := make([]string, len(s.selected))
	for i, item := range s.selected {
		ids[i] = item.ID
	}
	return ids
}

// IsSelected reports whether id is part of the selection.
func (s *State) IsSelected(id string) bool {
	_, ok := s.selectedKeys[id]
	return ok
}

// IsDisabled reports whether id cannot be committed.
func (s *State) IsDisabled(id string) bool {
	_, ok := s.disabledKeys[id]
	return ok
}

func (s *State) setCursor(id string) {
	s.cursor = id
	s.hasCursor = true
}

func (s *State) dropStaleCursor() {
	if s.hasCursor && indexOf(s.visible, s.cursor) < 0 {
		s.cursor = ""
		s.hasCursor = false
	}
}

func (s *State) replaceSelection(items []Item) {
	s.selected = cloneItems(items)
	s.selectedKeys = make(map[string]struct{}, len(items))
	for _, item := range items {
		s.selectedKeys[item.ID] = struct{}{}
	}
}

func (s *State) emitSelection() {
	if s.callbacks.OnSelectionChange != nil {
		s.callbacks.OnSelectionChange(cloneItems(s.selected))
	}
}

func keysOf(items []Item, disabledOnly bool) map[string]struct{} {
	keys := make(map[string]struct{})
	for _, item := range items {
		if disabledOnly && !item.Disabled {
			continue
		}
		keys[item.ID] = struct{}{}
	}
	return keys
}

func indexOf(items []Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
