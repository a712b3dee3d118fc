package core

// Snapshot captures the observable simulation state for determinism
// testing and for external advisors.
type Snapshot struct {
	Turns      int
	Eaten      int
	Score      int
	Pieces     int
	Mode       Mode
	Running    bool
	HistoryLen int
	Occupancy  [H][W]bool
	Directions [H][W]Dir
	Collided   [H][W]bool
}

// Snapshot returns the current state snapshot.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Turns:      s.turns,
		Eaten:      s.eaten,
		Score:      s.Score(),
		Pieces:     s.pieces,
		Mode:       s.mode,
		Running:    s.running,
		HistoryLen: s.history.Len(),
		Occupancy:  s.board.occ,
		Directions: s.board.dirs,
		Collided:   s.board.collided,
	}
}

// FlatOccupancy returns occupancy in row-major order as 0/1 bytes.
func (sn Snapshot) FlatOccupancy() []uint8 {
	out := make([]uint8, 0, Cells)
	for y := range H {
		for x := range W {
			if sn.Occupancy[y][x] {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
		}
	}
	return out
}

// FlatDirections returns directions in row-major order.
func (sn Snapshot) FlatDirections() []uint8 {
	out := make([]uint8, 0, Cells)
	for y := range H {
		for x := range W {
			out = append(out, uint8(sn.Directions[y][x]))
		}
	}
	return out
}
