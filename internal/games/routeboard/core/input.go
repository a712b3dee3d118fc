package core

// PointerKind is the type of a pointer event.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerPress
	PointerRelease
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether all bits of m are set.
func (mods Modifier) Has(m Modifier) bool {
	return mods&m == m
}

// Resolver maps a surface position to a board cell.
// Layout owns the transform; ok is false when the position is off the board.
type Resolver interface {
	Resolve(px, py int) (c Coord, ok bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(px, py int) (Coord, bool)

// Resolve calls f(px, py).
func (f ResolverFunc) Resolve(px, py int) (Coord, bool) {
	return f(px, py)
}

// Key codes understood by State.Key.
const (
	KeyToggleMode   = 'M'
	KeyToggleRun    = ' '
	KeyStep         = 'S'
	KeyUndo         = 'Z'
	KeyReset        = 'R'
	KeyClearPieces  = 'C'
	KeyClearRoutes  = 'D'
	KeyRandomRoutes = 'X'
)

// dragState tracks the held pointer so a drag edits each cell once.
type dragState struct {
	down bool
	last Coord
	has  bool
}

// SetResolver installs the layout transform used by Pointer.
func (s *State) SetResolver(r Resolver) {
	s.resolver = r
}

// Pointer applies a pointer event. While the pointer is held, each newly
// entered cell is edited according to the current mode: placement toggles
// a piece, routing cycles the direction (backwards with shift).
// Returns true if the board was edited.
func (s *State) Pointer(px, py int, kind PointerKind, buttons int, mods Modifier) bool {
	switch kind {
	case PointerPress:
		s.drag = dragState{down: true}
	case PointerRelease:
		s.drag = dragState{}
	}

	if !s.drag.down || s.resolver == nil {
		return false
	}
	c, ok := s.resolver.Resolve(px, py)
	if !ok || !c.InBounds() {
		return false
	}
	if kind == PointerMove && s.drag.has && s.drag.last == c {
		return false
	}

	if s.mode == ModeRouting {
		s.CycleDirection(c, mods.Has(ModShift))
	} else {
		s.TogglePiece(c)
	}
	s.drag.last = c
	s.drag.has = true
	return true
}

// Key applies a key event. Releases and unknown codes are ignored.
// Digits place that many random pieces, with 0 meaning ten.
// Returns true if the code was recognised.
func (s *State) Key(code int, down bool) bool {
	if !down {
		return false
	}
	if code >= 'a' && code <= 'z' {
		code -= 'a' - 'A'
	}

	switch code {
	case KeyToggleMode:
		s.ToggleMode()
	case KeyToggleRun:
		s.ToggleRun()
	case KeyStep:
		s.Step()
	case KeyUndo:
		s.Undo()
	case KeyReset:
		s.ResetOccupancy()
	case KeyClearPieces:
		s.ClearOccupancy()
	case KeyClearRoutes:
		s.ClearDirections()
	case KeyRandomRoutes:
		s.RandomizeDirections()
	default:
		if code >= '0' && code <= '9' {
			n := code - '0'
			if n == 0 {
				n = 10
			}
			s.PlaceRandom(n)
			return true
		}
		return false
	}
	return true
}
