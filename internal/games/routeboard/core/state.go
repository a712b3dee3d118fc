package core

// Default timing parameters, in seconds.
const (
	DefaultStepPeriod    = 0.35
	DefaultFlashDuration = 0.65
)

// Params tunes the state machine. Zero fields fall back to defaults.
type Params struct {
	StepPeriod      float64 // Seconds between auto-steps while running
	FlashDuration   float64 // Seconds the invalid-move warning stays armed
	HistoryCapacity int     // Maximum undoable steps
}

// DefaultParams returns the standard timing parameters.
func DefaultParams() Params {
	return Params{
		StepPeriod:      DefaultStepPeriod,
		FlashDuration:   DefaultFlashDuration,
		HistoryCapacity: DefaultHistoryCapacity,
	}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.StepPeriod <= 0 {
		p.StepPeriod = d.StepPeriod
	}
	if p.FlashDuration <= 0 {
		p.FlashDuration = d.FlashDuration
	}
	if p.HistoryCapacity <= 0 {
		p.HistoryCapacity = d.HistoryCapacity
	}
	return p
}

// State is the complete simulation context. The host owns one instance and
// drives it through Advance, Pointer and Key from a single goroutine.
type State struct {
	params  Params
	board   Board
	rng     *Rand
	history *History

	turns  int
	eaten  int
	pieces int

	mode    Mode
	running bool
	cleared bool
	layout  uint64
	accum   float64
	flash   float64

	lastFail StepResult

	resolver Resolver
	drag     dragState
}

// NewState creates an empty board with all directions unset.
func NewState(params Params, seed uint32) *State {
	params = params.withDefaults()
	return &State{
		params:  params,
		rng:     NewRand(seed),
		history: NewHistory(params.HistoryCapacity),
	}
}

// Params returns the active timing parameters.
func (s *State) Params() Params { return s.params }

// Board returns a copy of the board for read-only use.
func (s *State) Board() Board { return s.board }

// Turns returns the number of successful steps.
func (s *State) Turns() int { return s.turns }

// Eaten returns the cumulative number of pieces destroyed by merges.
func (s *State) Eaten() int { return s.eaten }

// PiecesRemaining returns the number of occupied cells.
func (s *State) PiecesRemaining() int { return s.pieces }

// Score returns turns + 2*eaten. Lower is better.
func (s *State) Score() int { return s.turns + 2*s.eaten }

// Mode returns the current editing mode.
func (s *State) Mode() Mode { return s.mode }

// Running reports whether steps auto-advance.
func (s *State) Running() bool { return s.running }

// Cleared reports whether the most recent step emptied a board that had
// pieces. Any later edit or step resets it.
func (s *State) Cleared() bool { return s.cleared }

// Layout counts piece layouts. It moves on whenever pieces are placed,
// removed or loaded, and never on a step or an undo.
func (s *State) Layout() uint64 { return s.layout }

// LastFailure returns the most recent failed step result. FailedAt names
// the blocking tile while the warning flash is armed.
func (s *State) LastFailure() StepResult { return s.lastFail }

// HistoryLen returns the number of undoable steps.
func (s *State) HistoryLen() int { return s.history.Len() }

// Flash returns the remaining invalid-move warning time in seconds.
func (s *State) Flash() float64 { return s.flash }

// FlashIntensity returns the warning strength in [0, 1].
func (s *State) FlashIntensity() float64 {
	if s.flash <= 0 {
		return 0
	}
	v := s.flash / s.params.FlashDuration
	if v > 1 {
		return 1
	}
	return v
}

// ToggleMode flips between placement and routing.
func (s *State) ToggleMode() {
	if s.mode == ModeRouting {
		s.mode = ModePlacement
	} else {
		s.mode = ModeRouting
	}
}

// ToggleRun starts or stops auto-advance.
func (s *State) ToggleRun() {
	s.running = !s.running
}

// Pause stops auto-advance.
func (s *State) Pause() {
	s.running = false
}

// Advance moves the clock forward by dt seconds. It decays the warning
// flash and, while running, executes one step per elapsed period.
// Returns the number of steps that advanced the board.
func (s *State) Advance(dt float64) int {
	if dt < 0 {
		dt = 0
	}
	if s.flash > 0 {
		s.flash -= dt
		if s.flash < 0 {
			s.flash = 0
		}
	}
	if !s.running {
		return 0
	}

	steps := 0
	s.accum += dt
	for s.running && s.accum >= s.params.StepPeriod {
		res := s.Step()
		if !res.Advanced {
			s.running = false
			s.accum = 0
			break
		}
		s.accum -= s.params.StepPeriod
		steps++
	}
	return steps
}

// TogglePiece flips occupancy at c.
func (s *State) TogglePiece(c Coord) {
	if !c.InBounds() {
		return
	}
	s.board.setOccupied(c, !s.board.Occupied(c))
	s.recount()
	s.layout++
	s.history.Clear()
}

// CycleDirection advances the routing of c through the direction cycle.
func (s *State) CycleDirection(c Coord, reverse bool) {
	if !c.InBounds() {
		return
	}
	s.board.setDirection(c, s.board.Direction(c).Next(reverse))
	s.history.Clear()
}

// PlaceRandom clears the board and occupies count distinct random cells.
// Counters, run state, warning flash and history are reset.
func (s *State) PlaceRandom(count int) {
	if count < 0 {
		count = 0
	}
	if count > Cells {
		count = Cells
	}

	s.board.clearOccupancy()
	s.board.clearCollided()
	cells := s.rng.Shuffle()
	for i := 0; i < count; i++ {
		s.board.setOccupied(CoordAt(cells[i]), true)
	}
	s.pieces = count
	s.cleared = false
	s.layout++

	s.resetRun()
}

// ResetOccupancy removes all pieces but keeps the routing.
// Counters, run state, warning flash and history are reset.
func (s *State) ResetOccupancy() {
	s.board.clearOccupancy()
	s.board.clearCollided()
	s.pieces = 0
	s.cleared = false
	s.layout++
	s.resetRun()
}

// ClearOccupancy removes all pieces, keeping routing and counters.
func (s *State) ClearOccupancy() {
	s.board.clearOccupancy()
	s.board.clearCollided()
	s.pieces = 0
	s.cleared = false
	s.layout++
	s.running = false
	s.history.Clear()
}

// ClearDirections unsets every tile's routing.
func (s *State) ClearDirections() {
	s.board.clearDirections()
	s.running = false
	s.history.Clear()
}

// RandomizeDirections assigns every tile a random direction other than None.
func (s *State) RandomizeDirections() {
	for i := 0; i < Cells; i++ {
		s.board.setDirection(CoordAt(i), DirUp+Dir(s.rng.Range(4)))
	}
	s.history.Clear()
}

// ApplyDirections replaces the whole routing grid with dirs in row-major
// order. Unknown values become None.
func (s *State) ApplyDirections(dirs [Cells]Dir) {
	for i, d := range dirs {
		if !d.Valid() {
			d = DirNone
		}
		s.board.setDirection(CoordAt(i), d)
	}
	s.history.Clear()
}

// Load replaces the whole board with the given pieces and routing, both in
// row-major order, and starts a fresh run.
func (s *State) Load(occupancy [Cells]bool, dirs [Cells]Dir) {
	s.board.clearOccupancy()
	s.board.clearCollided()
	for i := 0; i < Cells; i++ {
		c := CoordAt(i)
		s.board.setOccupied(c, occupancy[i])
		d := dirs[i]
		if !d.Valid() {
			d = DirNone
		}
		s.board.setDirection(c, d)
	}
	s.recount()
	s.layout++
	s.resetRun()
}

// Undo restores the state before the most recent step.
// Returns false if there is nothing to undo.
func (s *State) Undo() bool {
	e, ok := s.history.Pop()
	if !ok {
		return false
	}
	s.board.occ = e.Occupancy
	s.board.collided = e.Collided
	s.eaten = e.Eaten
	s.recount()
	if s.turns > 0 {
		s.turns--
	}
	s.running = false
	return true
}

func (s *State) resetRun() {
	s.turns = 0
	s.eaten = 0
	s.running = false
	s.flash = 0
	s.history.Clear()
}

func (s *State) recount() {
	s.pieces = s.board.OccupiedCount()
	s.cleared = false
}
