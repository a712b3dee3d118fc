package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/routeboard/internal/games/routeboard/core"
)

func TestPlaceRandomCount(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"negative", -5, 0},
		{"zero", 0, 0},
		{"seven", 7, 7},
		{"full", 100, 100},
		{"over", 250, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState(t)
			s.PlaceRandom(tt.count)
			b := s.Board()
			if got := b.OccupiedCount(); got != tt.want {
				t.Errorf("OccupiedCount() = %d, want %d", got, tt.want)
			}
			checkPieces(t, s)
			if s.Turns() != 0 || s.Eaten() != 0 || s.Running() || s.HistoryLen() != 0 {
				t.Errorf("PlaceRandom should reset counters, run state and history")
			}
		})
	}
}

func TestPlaceRandomDeterministic(t *testing.T) {
	a := core.NewState(core.DefaultParams(), 777)
	b := core.NewState(core.DefaultParams(), 777)
	a.PlaceRandom(8)
	b.PlaceRandom(8)
	if diff := cmp.Diff(a.Snapshot(), b.Snapshot()); diff != "" {
		t.Errorf("same seed produced different boards (-a +b):\n%s", diff)
	}

	c := core.NewState(core.DefaultParams(), 778)
	c.PlaceRandom(8)
	if cmp.Equal(a.Snapshot().Occupancy, c.Snapshot().Occupancy) {
		t.Log("different seeds produced the same layout; unlikely but possible")
	}
}

func TestPlaceRandomKeepsRoutes(t *testing.T) {
	s := newState(t)
	s.RandomizeDirections()
	routes := s.Snapshot().Directions
	s.PlaceRandom(5)
	if diff := cmp.Diff(routes, s.Snapshot().Directions); diff != "" {
		t.Errorf("PlaceRandom changed routes (-want +got):\n%s", diff)
	}
}

func TestRandomizeDirectionsNeverNone(t *testing.T) {
	s := newState(t)
	s.RandomizeDirections()
	for _, d := range s.Snapshot().FlatDirections() {
		if core.Dir(d) == core.DirNone || !core.Dir(d).Valid() {
			t.Fatalf("RandomizeDirections produced %v", core.Dir(d))
		}
	}
}

func TestResetOccupancy(t *testing.T) {
	s := newState(t)
	route(s, core.DirDown, core.C(0, 0))
	route(s, core.DirUp, core.C(0, 1))
	place(s, core.C(0, 0))
	s.Step()
	s.ToggleRun()

	s.ResetOccupancy()
	if s.PiecesRemaining() != 0 || s.Turns() != 0 || s.Running() || s.HistoryLen() != 0 {
		t.Errorf("ResetOccupancy left state %+v", s.Snapshot())
	}
	b := s.Board()
	if b.Direction(core.C(0, 0)) != core.DirDown {
		t.Error("ResetOccupancy should keep routes")
	}
}

func TestClearOccupancyKeepsCounters(t *testing.T) {
	s := newState(t)
	route(s, core.DirDown, core.C(0, 0))
	route(s, core.DirUp, core.C(0, 1))
	place(s, core.C(0, 0))
	s.Step()
	s.Step()

	s.ClearOccupancy()
	if s.Turns() != 2 {
		t.Errorf("Turns() = %d, want 2", s.Turns())
	}
	if s.PiecesRemaining() != 0 || s.HistoryLen() != 0 {
		t.Errorf("ClearOccupancy should drop pieces and history")
	}
}

func TestClearDirections(t *testing.T) {
	s := newState(t)
	s.RandomizeDirections()
	s.ClearDirections()
	for _, d := range s.Snapshot().FlatDirections() {
		if core.Dir(d) != core.DirNone {
			t.Fatalf("direction %v survived ClearDirections", core.Dir(d))
		}
	}
}

func TestApplyDirectionsSanitizes(t *testing.T) {
	s := newState(t)
	var dirs [core.Cells]core.Dir
	dirs[0] = core.DirLeft
	dirs[1] = core.Dir(9)
	s.ApplyDirections(dirs)
	b := s.Board()
	if b.Direction(core.C(0, 0)) != core.DirLeft {
		t.Errorf("(0,0) = %v, want Left", b.Direction(core.C(0, 0)))
	}
	if b.Direction(core.C(1, 0)) != core.DirNone {
		t.Errorf("(1,0) = %v, want None", b.Direction(core.C(1, 0)))
	}
}

func TestEditsClearHistory(t *testing.T) {
	edits := map[string]func(*core.State){
		"toggle piece":     func(s *core.State) { s.TogglePiece(core.C(9, 9)) },
		"cycle direction":  func(s *core.State) { s.CycleDirection(core.C(9, 9), false) },
		"randomize routes": func(s *core.State) { s.RandomizeDirections() },
		"clear routes":     func(s *core.State) { s.ClearDirections() },
	}
	for name, edit := range edits {
		t.Run(name, func(t *testing.T) {
			s := newState(t)
			s.Step()
			if s.HistoryLen() == 0 {
				t.Fatal("setup step recorded no history")
			}
			edit(s)
			if s.HistoryLen() != 0 {
				t.Errorf("HistoryLen() = %d after edit, want 0", s.HistoryLen())
			}
		})
	}
}

func TestPiecesInvariantUnderOperations(t *testing.T) {
	s := newState(t)
	s.RandomizeDirections()
	s.PlaceRandom(30)
	checkPieces(t, s)

	for i := 0; i < 20; i++ {
		s.Step()
		checkPieces(t, s)
	}
	for s.Undo() {
		checkPieces(t, s)
	}
	s.TogglePiece(core.C(3, 3))
	checkPieces(t, s)
	s.ClearOccupancy()
	checkPieces(t, s)
}

func TestAdvanceStepsPerPeriod(t *testing.T) {
	s := newState(t)
	route(s, core.DirDown, core.C(0, 0))
	route(s, core.DirUp, core.C(0, 1))
	place(s, core.C(0, 0))
	s.ToggleRun()

	if got := s.Advance(1.0); got != 2 {
		t.Errorf("Advance(1.0) = %d steps, want 2", got)
	}
	if got := s.Advance(0.1); got != 1 {
		t.Errorf("Advance(0.1) after remainder = %d steps, want 1", got)
	}
	if s.Turns() != 3 {
		t.Errorf("Turns() = %d, want 3", s.Turns())
	}
}

func TestAdvancePausedDoesNotStep(t *testing.T) {
	s := newState(t)
	if got := s.Advance(5); got != 0 {
		t.Errorf("Advance while paused = %d, want 0", got)
	}
	if s.Turns() != 0 {
		t.Errorf("Turns() = %d, want 0", s.Turns())
	}
}

func TestAdvanceStopsOnFailure(t *testing.T) {
	s := newState(t)
	place(s, core.C(4, 4))
	s.ToggleRun()

	if got := s.Advance(1.0); got != 0 {
		t.Errorf("Advance = %d, want 0", got)
	}
	if s.Running() {
		t.Error("run should stop on failed step")
	}
	if s.FlashIntensity() != 1 {
		t.Errorf("FlashIntensity() = %v, want 1", s.FlashIntensity())
	}

	s.Advance(0.5)
	if f := s.Flash(); f <= 0 || f >= 0.2 {
		t.Errorf("Flash() = %v after 0.5s decay, want about 0.15", f)
	}
	s.Advance(1)
	if s.Flash() != 0 || s.FlashIntensity() != 0 {
		t.Errorf("flash should fully decay, got %v", s.Flash())
	}
}

func TestAdvanceStopsWhenBoardClears(t *testing.T) {
	s := newState(t)
	route(s, core.DirUp, core.C(5, 1))
	place(s, core.C(5, 1))
	s.ToggleRun()

	s.Advance(core.DefaultStepPeriod)
	if !s.Running() {
		t.Fatal("run stopped early")
	}
	s.Advance(core.DefaultStepPeriod)
	if s.Running() {
		t.Error("run should stop once the board is empty")
	}
	if s.Turns() != 2 {
		t.Errorf("Turns() = %d, want 2", s.Turns())
	}
}

func TestToggleMode(t *testing.T) {
	s := newState(t)
	if s.Mode() != core.ModePlacement {
		t.Fatalf("initial mode = %v, want Placement", s.Mode())
	}
	s.ToggleMode()
	if s.Mode() != core.ModeRouting || s.Mode().String() != "Routing" {
		t.Errorf("mode after toggle = %v", s.Mode())
	}
}

func TestParamsDefaults(t *testing.T) {
	s := core.NewState(core.Params{}, 1)
	if diff := cmp.Diff(core.DefaultParams(), s.Params()); diff != "" {
		t.Errorf("zero params did not fall back to defaults (-want +got):\n%s", diff)
	}
}

func TestClearedLatch(t *testing.T) {
	s := newState(t)
	route(s, core.DirUp, core.C(5, 1))
	place(s, core.C(5, 1))

	s.Step()
	if s.Cleared() {
		t.Fatal("Cleared() true while a piece remains")
	}
	s.Step()
	if !s.Cleared() {
		t.Fatal("Cleared() should be set after the last piece exits")
	}
	s.Step()
	if s.Cleared() {
		t.Error("a step on an already empty board should not count as a clear")
	}

	place(s, core.C(5, 1))
	s.Step()
	s.Step()
	s.Undo()
	if s.Cleared() {
		t.Error("Undo() should reset Cleared()")
	}
}

func TestLoad(t *testing.T) {
	s := newState(t)
	s.PlaceRandom(20)
	s.RandomizeDirections()
	s.Step()

	var occ [core.Cells]bool
	var dirs [core.Cells]core.Dir
	occ[core.C(2, 2).Index()] = true
	dirs[core.C(2, 2).Index()] = core.DirUp
	dirs[core.C(3, 3).Index()] = core.Dir(7)
	s.Load(occ, dirs)

	if s.PiecesRemaining() != 1 || s.Turns() != 0 || s.HistoryLen() != 0 || s.Running() {
		t.Errorf("Load did not start a fresh run: %+v", s.Snapshot())
	}
	b := s.Board()
	if !b.Occupied(core.C(2, 2)) || b.Direction(core.C(2, 2)) != core.DirUp {
		t.Error("Load lost the given tile")
	}
	if b.Direction(core.C(3, 3)) != core.DirNone {
		t.Error("Load should sanitize unknown directions")
	}
	checkPieces(t, s)
}

func TestLayoutCounter(t *testing.T) {
	s := newState(t)
	route(s, core.DirUp, core.C(5, 1))

	edits := []struct {
		name    string
		run     func()
		changes bool
	}{
		{"toggle piece", func() { s.TogglePiece(core.C(5, 1)) }, true},
		{"step", func() { s.Step() }, false},
		{"undo", func() { s.Undo() }, false},
		{"routes", func() { s.RandomizeDirections() }, false},
		{"mode", func() { s.ToggleMode() }, false},
		{"place random", func() { s.PlaceRandom(3) }, true},
		{"reset pieces", func() { s.ResetOccupancy() }, true},
		{"clear pieces", func() { s.ClearOccupancy() }, true},
		{"load", func() { s.Load([core.Cells]bool{}, [core.Cells]core.Dir{}) }, true},
	}
	for _, e := range edits {
		before := s.Layout()
		e.run()
		if got := s.Layout() != before; got != e.changes {
			t.Errorf("%s: layout changed = %v, want %v", e.name, got, e.changes)
		}
	}
}
