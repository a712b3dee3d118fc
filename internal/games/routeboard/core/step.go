package core

// FailReason explains why a step did not advance.
type FailReason uint8

const (
	FailNone        FailReason = iota
	FailNoDirection            // An occupied tile has no routing
	FailOffBoard               // An occupied tile routes off the board
)

// String returns the string representation of a failure reason.
func (r FailReason) String() string {
	switch r {
	case FailNone:
		return "None"
	case FailNoDirection:
		return "NoDirection"
	case FailOffBoard:
		return "OffBoard"
	default:
		return "Unknown"
	}
}

// StepResult describes the outcome of a single step.
type StepResult struct {
	Advanced bool       // Whether the board moved
	Reason   FailReason // Set when Advanced is false
	FailedAt Coord      // First tile that blocked the step
	Exited   bool       // A piece left through the output tile
	Eaten    int        // Pieces destroyed by merges this step
	Turn     int        // Turn counter after the step
	Cleared  bool       // The step emptied a board that had pieces
}

// Step advances the board by one turn.
//
// The pre-step state is pushed to history first and any piece on the output
// tile is removed, then last step's merge markers are cleared. Those effects
// stay in place when planning fails: a
// tile without routing, or one routing off the board, aborts the step,
// arms the warning flash and leaves the rest of the board untouched.
func (s *State) Step() StepResult {
	s.history.Push(HistoryEntry{
		Occupancy: s.board.occ,
		Collided:  s.board.collided,
		Eaten:     s.eaten,
	})

	result := StepResult{Turn: s.turns}
	hadPieces := s.pieces > 0

	if s.board.Occupied(Output) {
		s.board.setOccupied(Output, false)
		result.Exited = true
	}

	s.board.clearCollided()

	// Plan moves
	var arrivals [H][W]int
	for y := range H {
		for x := range W {
			if !s.board.occ[y][x] {
				continue
			}
			from := C(x, y)
			dir := s.board.dirs[y][x]
			if dir == DirNone {
				return s.fail(result, FailNoDirection, from)
			}
			to := from.Step(dir)
			if !to.InBounds() {
				return s.fail(result, FailOffBoard, from)
			}
			arrivals[to.Y][to.X]++
		}
	}

	// Resolve merges
	remaining := 0
	merged := 0
	for y := range H {
		for x := range W {
			n := arrivals[y][x]
			if n == 0 {
				s.board.occ[y][x] = false
				continue
			}
			if n > 1 {
				merged += n - 1
				s.board.collided[y][x] = true
			}
			s.board.occ[y][x] = true
			remaining++
		}
	}

	s.eaten += merged
	s.turns++
	s.pieces = remaining
	if remaining == 0 {
		s.running = false
	}

	result.Advanced = true
	result.Eaten = merged
	result.Turn = s.turns
	result.Cleared = hadPieces && remaining == 0
	s.cleared = result.Cleared
	return result
}

func (s *State) fail(result StepResult, reason FailReason, at Coord) StepResult {
	s.recount()
	s.flash = s.params.FlashDuration
	result.Reason = reason
	result.FailedAt = at
	s.lastFail = result
	return result
}
