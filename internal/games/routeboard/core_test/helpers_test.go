package core_test

import (
	"testing"

	"github.com/vovakirdan/routeboard/internal/games/routeboard/core"
)

// newState returns an empty state with default params and a fixed seed.
func newState(t *testing.T) *core.State {
	t.Helper()
	return core.NewState(core.DefaultParams(), 42)
}

// route assigns d to every listed coordinate, keeping other routes.
func route(s *core.State, d core.Dir, coords ...core.Coord) {
	grid := s.Board().Directions()
	var flat [core.Cells]core.Dir
	for y := range core.H {
		for x := range core.W {
			flat[core.C(x, y).Index()] = grid[y][x]
		}
	}
	for _, c := range coords {
		flat[c.Index()] = d
	}
	s.ApplyDirections(flat)
}

// place puts a piece on every listed coordinate that is currently empty.
func place(s *core.State, coords ...core.Coord) {
	b := s.Board()
	for _, c := range coords {
		if !b.Occupied(c) {
			s.TogglePiece(c)
		}
	}
}

// checkPieces verifies the cached piece count matches the board.
func checkPieces(t *testing.T, s *core.State) {
	t.Helper()
	b := s.Board()
	if got, want := s.PiecesRemaining(), b.OccupiedCount(); got != want {
		t.Errorf("PiecesRemaining() = %d, board has %d occupied cells", got, want)
	}
}

// identity resolves surface positions one-to-one to board cells.
var identity = core.ResolverFunc(func(px, py int) (core.Coord, bool) {
	c := core.C(px, py)
	return c, c.InBounds()
})
