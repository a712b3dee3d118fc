package routeboard

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	platformcore "github.com/vovakirdan/routeboard/internal/core"
	"github.com/vovakirdan/routeboard/internal/games/routeboard/core"
	"github.com/vovakirdan/routeboard/internal/games/routeboard/levels"
	"github.com/vovakirdan/routeboard/internal/registry"
)

func testConfig(seed int64) platformcore.RuntimeConfig {
	cfg := platformcore.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

// tileCenter returns the screen position of a tile's interior.
func tileCenter(g *Game, c core.Coord) (int, int) {
	ox, oy := g.layout.CellOrigin(c)
	return ox + 2, oy + 1
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDSandbox, IDChallenge} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
		if _, ok := g.(registry.Advisable); !ok {
			t.Errorf("%q should implement registry.Advisable", id)
		}
	}
}

func TestResetSandboxIsEmpty(t *testing.T) {
	g := New(false)
	g.Reset(testConfig(1))
	st := g.State()
	if st.Pieces != 0 || st.Turns != 0 || st.Running || st.Finished {
		t.Errorf("fresh sandbox state = %+v", st)
	}
}

func TestResetChallenge(t *testing.T) {
	g := New(true)
	g.Reset(testConfig(99))

	if got := g.State().Pieces; got != 8 {
		t.Errorf("Pieces = %d, want 8", got)
	}
	_, dirs := g.AdvisorInput()
	for i, d := range dirs {
		if core.Dir(d) == core.DirNone {
			t.Fatalf("tile %d has no route after challenge reset", i)
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	a, b := New(true), New(true)
	a.Reset(testConfig(2024))
	b.Reset(testConfig(2024))

	boardA, dirsA := a.AdvisorInput()
	boardB, dirsB := b.AdvisorInput()
	if diff := cmp.Diff(boardA, boardB); diff != "" {
		t.Errorf("occupancy differs for the same seed (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(dirsA, dirsB); diff != "" {
		t.Errorf("routes differ for the same seed (-a +b):\n%s", diff)
	}
	if a.Seed() != uint32(2024)^core.DefaultSeedSalt {
		t.Errorf("Seed() = %#x", a.Seed())
	}
}

func TestStepAppliesPointerEdits(t *testing.T) {
	g := New(false)
	g.Reset(testConfig(1))

	target := core.C(2, 3)
	px, py := tileCenter(g, target)

	in := platformcore.NewInputFrame()
	in.AddPointer(platformcore.PointerEvent{X: px, Y: py, Kind: platformcore.PointerPress, Buttons: 1})
	in.AddPointer(platformcore.PointerEvent{X: px + 1, Y: py, Kind: platformcore.PointerMove, Buttons: 1})
	in.AddPointer(platformcore.PointerEvent{X: px, Y: py, Kind: platformcore.PointerRelease})
	g.Step(in)

	b := g.Board().Board()
	if !b.Occupied(target) {
		t.Fatal("press should place a piece")
	}
	if g.State().Pieces != 1 {
		t.Errorf("moving within the tile toggled it again, Pieces = %d", g.State().Pieces)
	}
}

func TestStepRoutingModeWithShift(t *testing.T) {
	g := New(false)
	g.Reset(testConfig(1))

	target := core.C(7, 7)
	px, py := tileCenter(g, target)

	in := platformcore.NewInputFrame()
	in.AddKey('m', true)
	in.AddPointer(platformcore.PointerEvent{X: px, Y: py, Kind: platformcore.PointerPress, Buttons: 1, Mods: platformcore.ModShift})
	g.Step(in)

	b := g.Board().Board()
	if got := b.Direction(target); got != core.DirLeft {
		t.Errorf("Direction = %v, want Left", got)
	}
}

func TestStepKeepsInputOrder(t *testing.T) {
	g := New(false)
	g.Reset(testConfig(1))

	first, second := core.C(1, 1), core.C(8, 8)
	fx, fy := tileCenter(g, first)
	sx, sy := tileCenter(g, second)

	// Click, switch to routing, click again, all within one tick.
	in := platformcore.NewInputFrame()
	in.AddPointer(platformcore.PointerEvent{X: fx, Y: fy, Kind: platformcore.PointerPress, Buttons: 1})
	in.AddPointer(platformcore.PointerEvent{X: fx, Y: fy, Kind: platformcore.PointerRelease})
	in.AddKey('m', true)
	in.AddPointer(platformcore.PointerEvent{X: sx, Y: sy, Kind: platformcore.PointerPress, Buttons: 1})
	in.AddPointer(platformcore.PointerEvent{X: sx, Y: sy, Kind: platformcore.PointerRelease})
	g.Step(in)

	b := g.Board().Board()
	if !b.Occupied(first) || b.Direction(first) != core.DirNone {
		t.Errorf("first click should place a piece, got occupied=%v dir=%v", b.Occupied(first), b.Direction(first))
	}
	if b.Occupied(second) || b.Direction(second) != core.DirUp {
		t.Errorf("second click should route Up, got occupied=%v dir=%v", b.Occupied(second), b.Direction(second))
	}
}

func TestStepRunsAtTickRate(t *testing.T) {
	g := New(false)
	g.Reset(testConfig(1))
	s := g.Board()
	s.CycleDirection(core.C(5, 1), false) // Up
	s.TogglePiece(core.C(5, 1))

	in := platformcore.NewInputFrame()
	in.AddKey(' ', true)
	g.Step(in)

	// 0.35s at 60 ticks per second is 21 ticks; run well past both steps.
	steps := 0
	empty := platformcore.NewInputFrame()
	for i := 0; i < 60; i++ {
		steps += g.Step(empty).Steps
	}
	st := g.State()
	if steps != 2 {
		t.Errorf("ran %d steps, want 2", steps)
	}
	if !st.Finished || st.Running {
		t.Errorf("state after clearing = %+v, want finished and stopped", st)
	}
}

func TestStepPauseAction(t *testing.T) {
	g := New(true)
	g.Reset(testConfig(5))

	in := platformcore.NewInputFrame()
	in.AddKey(' ', true)
	g.Step(in)
	if !g.State().Running {
		t.Fatal("space should start the run")
	}

	in = platformcore.NewInputFrame()
	in.Set(platformcore.ActionPause)
	g.Step(in)
	if g.State().Running {
		t.Error("pause action should stop the run")
	}
}

func TestApplyRoutes(t *testing.T) {
	g := New(false)
	g.Reset(testConfig(1))

	if err := g.ApplyRoutes(make([]uint8, 5)); err == nil {
		t.Error("expected error for short grid")
	}
	bad := make([]uint8, core.Cells)
	bad[10] = 7
	if err := g.ApplyRoutes(bad); err == nil {
		t.Error("expected error for out-of-range direction")
	}

	dirs := make([]uint8, core.Cells)
	for i := range dirs {
		dirs[i] = uint8(core.DirDown)
	}
	if err := g.ApplyRoutes(dirs); err != nil {
		t.Fatalf("ApplyRoutes: %v", err)
	}
	_, got := g.AdvisorInput()
	if diff := cmp.Diff(dirs, got); diff != "" {
		t.Errorf("routes not applied (-want +got):\n%s", diff)
	}
}

func TestRender(t *testing.T) {
	g := New(false)
	cfg := testConfig(1)
	g.Reset(cfg)
	g.Board().TogglePiece(core.C(0, 0))

	screen := platformcore.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Routing Board", "Mode: Placement", "T:0  E:0  S:0  P:1", "PAUSE", "▼", "(·)"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	ox, oy := g.layout.CellOrigin(core.Output)
	if c := screen.GetCell(ox, oy); c.Color != platformcore.ColorOutput {
		t.Errorf("output tile border color = %v, want ColorOutput", c.Color)
	}
}

func TestRenderWarning(t *testing.T) {
	g := New(false)
	cfg := testConfig(1)
	g.Reset(cfg)
	g.Board().TogglePiece(core.C(4, 4))
	g.Board().Step()

	screen := platformcore.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Blocked at (4,4): tile has no route") {
		t.Error("render missing failure message")
	}
	x, y := tileCenter(g, core.C(4, 4))
	if c := screen.GetCell(x, y); c.Color != platformcore.ColorWarning {
		t.Errorf("failed tile color = %v, want ColorWarning", c.Color)
	}
	if c := screen.GetCell(g.layout.Board.X, g.layout.Board.Y); c.Color != platformcore.ColorWarning {
		t.Errorf("grid color = %v, want ColorWarning while flash is fresh", c.Color)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(false)
	cfg := testConfig(1)
	cfg.ScreenW, cfg.ScreenH = 30, 10
	g.Reset(cfg)

	screen := platformcore.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestBuiltinLevelsRegistered(t *testing.T) {
	for _, id := range []string{"routeboard_funnel", "routeboard_chimney", "routeboard_lane"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id || !strings.HasPrefix(g.Title(), "Routing Board: ") {
			t.Errorf("%q: ID %q, title %q", id, g.ID(), g.Title())
		}
	}
}

func TestLevelOpensOnReset(t *testing.T) {
	g, err := registry.Create("routeboard_lane")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g.Reset(testConfig(3))
	if got := g.State().Pieces; got != 10 {
		t.Fatalf("Pieces = %d, want 10", got)
	}

	scr := platformcore.NewScreen(80, 30)
	g.Render(scr)
	if !strings.Contains(scr.String(), "shortest path") {
		t.Error("level hint should show before the first step")
	}

	// A fresh reset restores the opening after edits.
	g.(*Game).Board().ClearOccupancy()
	g.Reset(testConfig(3))
	if got := g.State().Pieces; got != 10 {
		t.Errorf("Pieces after reset = %d, want 10", got)
	}
}

func TestSandboxCustomLevel(t *testing.T) {
	lvl, err := levels.Builtin().LoadByID("funnel")
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}
	opts := DefaultOptions()
	opts.Level = &lvl
	SetOptions(opts)
	t.Cleanup(func() { SetOptions(DefaultOptions()) })

	g := New(false)
	g.Reset(testConfig(1))
	if got := g.State().Pieces; got != 6 {
		t.Errorf("Pieces = %d, want 6", got)
	}
	if g.ID() != IDSandbox {
		t.Errorf("ID() = %q, custom levels keep the sandbox id", g.ID())
	}
}
