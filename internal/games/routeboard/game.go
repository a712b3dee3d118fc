// Package routeboard provides the Routing Board puzzle for the platform.
// It adapts the deterministic engine in the core subpackage to the
// registry.Game contract: input frames in, styled screen buffers out.
package routeboard

import (
	"fmt"
	"sync"

	platformcore "github.com/vovakirdan/routeboard/internal/core"
	"github.com/vovakirdan/routeboard/internal/games/routeboard/core"
	"github.com/vovakirdan/routeboard/internal/games/routeboard/levels"
	"github.com/vovakirdan/routeboard/internal/registry"
)

// Game identifiers. Built-in levels register as IDLevelPrefix + level ID.
const (
	IDSandbox     = "routeboard"
	IDChallenge   = "routeboard_challenge"
	IDLevelPrefix = "routeboard_"
)

// Options tune every board created after SetOptions is called.
type Options struct {
	Params          core.Params
	SeedSalt        uint32 // Mixed into the runtime seed
	ChallengePieces int    // Pieces placed by the challenge variant on reset
	RandomRoutes    bool   // Whether the challenge variant randomizes routes on reset

	// Level, when set, is the sandbox opening board.
	Level *levels.Level
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		Params:          core.DefaultParams(),
		SeedSalt:        core.DefaultSeedSalt,
		ChallengePieces: 8,
		RandomRoutes:    true,
	}
}

var (
	optionsMu sync.RWMutex
	options   = DefaultOptions()
)

// SetOptions replaces the options used by subsequent Reset calls.
func SetOptions(o Options) {
	optionsMu.Lock()
	defer optionsMu.Unlock()
	options = o
}

// CurrentOptions returns the options used by Reset.
func CurrentOptions() Options {
	optionsMu.RLock()
	defer optionsMu.RUnlock()
	return options
}

func init() {
	registry.Register(IDSandbox, func() registry.Game {
		return New(false)
	})
	registry.Register(IDChallenge, func() registry.Game {
		return New(true)
	})

	builtin, err := levels.Builtin().LoadAll()
	if err != nil {
		return
	}
	for _, lvl := range builtin {
		registry.Register(IDLevelPrefix+lvl.ID, func() registry.Game {
			return NewLevel(lvl)
		})
	}
}

// Game hosts one board state.
type Game struct {
	challenge bool
	level     *levels.Level
	opts      Options

	state    *core.State
	layout   Layout
	tickRate int
	seed     uint32

	lastSteps int
}

// New creates a board. The challenge variant starts from random routes and
// a fixed number of random pieces.
func New(challenge bool) *Game {
	return &Game{challenge: challenge}
}

// NewLevel creates a board that opens with lvl on every reset.
func NewLevel(lvl levels.Level) *Game {
	return &Game{level: &lvl}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.level != nil {
		return IDLevelPrefix + g.level.ID
	}
	if g.challenge {
		return IDChallenge
	}
	return IDSandbox
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.level != nil {
		return "Routing Board: " + g.level.Name
	}
	if g.challenge {
		return "Routing Board: Challenge"
	}
	return "Routing Board"
}

// Reset creates a fresh board from cfg.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.opts = CurrentOptions()
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.seed = uint32(cfg.Seed) ^ g.opts.SeedSalt
	g.state = core.NewState(g.opts.Params, g.seed)
	g.layout = NewLayout(cfg.ScreenW, cfg.ScreenH)
	g.state.SetResolver(core.ResolverFunc(g.resolve))
	g.lastSteps = 0

	switch {
	case g.level != nil:
		g.level.Apply(g.state)
	case g.challenge:
		if g.opts.RandomRoutes {
			g.state.RandomizeDirections()
		}
		g.state.PlaceRandom(g.opts.ChallengePieces)
	case g.opts.Level != nil:
		g.opts.Level.Apply(g.state)
	}
}

// SetSurfaceSize recomputes the layout without touching the board.
func (g *Game) SetSurfaceSize(screenW, screenH int) {
	g.layout = NewLayout(screenW, screenH)
}

func (g *Game) resolve(px, py int) (core.Coord, bool) {
	return g.layout.Resolve(px, py)
}

// Step applies queued input in arrival order, then advances the clock by
// one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.state == nil {
		g.Reset(platformcore.DefaultConfig())
	}

	for _, ev := range in.Events {
		switch ev.Kind {
		case platformcore.EventKey:
			g.state.Key(ev.Key.Code, ev.Key.Down)
		case platformcore.EventPointer:
			p := ev.Pointer
			g.state.Pointer(p.X, p.Y, pointerKind(p.Kind), p.Buttons, core.Modifier(p.Mods))
		}
	}
	if in.Has(platformcore.ActionPause) {
		g.state.Pause()
	}

	g.lastSteps = g.state.Advance(1.0 / float64(g.tickRate))

	return platformcore.StepResult{
		State: g.State(),
		Steps: g.lastSteps,
	}
}

func pointerKind(k platformcore.PointerKind) core.PointerKind {
	switch k {
	case platformcore.PointerPress:
		return core.PointerPress
	case platformcore.PointerRelease:
		return core.PointerRelease
	default:
		return core.PointerMove
	}
}

// State returns the current status.
func (g *Game) State() platformcore.GameState {
	if g.state == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Score:    g.state.Score(),
		Turns:    g.state.Turns(),
		Eaten:    g.state.Eaten(),
		Pieces:   g.state.PiecesRemaining(),
		Running:  g.state.Running(),
		Finished: g.state.Cleared(),
		Layout:   g.state.Layout(),
	}
}

// Seed returns the engine seed derived at the last Reset.
func (g *Game) Seed() uint32 {
	return g.seed
}

// Board exposes the engine for tests and tooling.
func (g *Game) Board() *core.State {
	return g.state
}

// AdvisorInput returns row-major occupancy and directions.
func (g *Game) AdvisorInput() (board, directions []uint8) {
	sn := g.state.Snapshot()
	return sn.FlatOccupancy(), sn.FlatDirections()
}

// ApplyRoutes replaces every tile's direction from a row-major grid of
// values 0..4.
func (g *Game) ApplyRoutes(directions []uint8) error {
	if len(directions) != core.Cells {
		return fmt.Errorf("routeboard: expected %d directions, got %d", core.Cells, len(directions))
	}
	var dirs [core.Cells]core.Dir
	for i, v := range directions {
		d := core.Dir(v)
		if !d.Valid() {
			return fmt.Errorf("routeboard: direction %d at index %d out of range", v, i)
		}
		dirs[i] = d
	}
	g.state.ApplyDirections(dirs)
	return nil
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "M: Mode | Space: Run | S: Step | Z: Undo | 1-0: Random | X: Shuffle routes | A: Advise | Q: Quit"
}
