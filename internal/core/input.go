package core

// Action represents a platform-level intent that is not a board key.
type Action int

const (
	ActionNone  Action = iota
	ActionPause        // Esc - stop auto-advance
	ActionBack         // B - return to the menu
	ActionQuit         // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind is the type of a pointer event.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerPress
	PointerRelease
)

// Modifier bits, shift is bit 0.
const (
	ModShift = 1 << iota
	ModCtrl
	ModAlt
)

// KeyEvent is a single key transition delivered to the game.
// Code is the key's character code, for example 'M' or ' '.
type KeyEvent struct {
	Code int
	Down bool
}

// PointerEvent is a mouse event in screen cell coordinates.
type PointerEvent struct {
	X, Y    int
	Kind    PointerKind
	Buttons int
	Mods    int
}

// EventKind tells which half of an InputEvent is set.
type EventKind int

const (
	EventKey EventKind = iota
	EventPointer
)

// InputEvent is one queued key or pointer event.
type InputEvent struct {
	Kind    EventKind
	Key     KeyEvent
	Pointer PointerEvent
}

// InputFrame collects all input received between two simulation ticks.
// Keys and pointers share one queue, so a key pressed between two clicks
// is applied between them.
type InputFrame struct {
	Actions map[Action]bool
	Events  []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddKey appends a key event.
func (f *InputFrame) AddKey(code int, down bool) {
	f.Events = append(f.Events, InputEvent{Kind: EventKey, Key: KeyEvent{Code: code, Down: down}})
}

// AddPointer appends a pointer event.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Events = append(f.Events, InputEvent{Kind: EventPointer, Pointer: ev})
}

// Keys returns the queued key events in order.
func (f InputFrame) Keys() []KeyEvent {
	var out []KeyEvent
	for _, ev := range f.Events {
		if ev.Kind == EventKey {
			out = append(out, ev.Key)
		}
	}
	return out
}

// Pointers returns the queued pointer events in order.
func (f InputFrame) Pointers() []PointerEvent {
	var out []PointerEvent
	for _, ev := range f.Events {
		if ev.Kind == EventPointer {
			out = append(out, ev.Pointer)
		}
	}
	return out
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Events) == 0
}

// Clear resets the frame for the next tick, keeping allocated storage.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Events = f.Events[:0]
}
