package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/routeboard/internal/core"
	"github.com/vovakirdan/routeboard/internal/registry"
	"github.com/vovakirdan/routeboard/internal/router"
	"github.com/vovakirdan/routeboard/internal/storage"
)

// advisorTimeout bounds a single advice round trip from the UI.
const advisorTimeout = 5 * time.Second

// statusTTL is how long a status line stays on screen.
const statusTTL = 3 * time.Second

// Advisor proposes a full routing grid for a board.
// *router.Client satisfies it.
type Advisor interface {
	Enabled() bool
	Advise(ctx context.Context, board, directions []uint8) ([]uint8, error)
}

// RunSaver persists finished runs. *storage.Store satisfies it.
type RunSaver interface {
	SaveRun(run storage.RunRecord) (string, error)
}

// adviceMsg carries the advisor's answer back into the update loop.
type adviceMsg struct {
	directions []uint8
	err        error
}

// surfaceSizer is implemented by games that can relayout without a reset.
type surfaceSizer interface {
	SetSurfaceSize(screenW, screenH int)
}

// seeded is implemented by games that derive their own engine seed.
type seeded interface {
	Seed() uint32
}

// Model is the Bubble Tea model for running a board.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      RunSaver
	advisor    Advisor
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	status      string
	statusColor core.Color
	statusUntil time.Time
	advising    bool

	quitting   bool
	allowBack  bool
	backToMenu bool

	// A layout's clear is recorded once, even when undo replays it.
	saved       bool
	savedLayout uint64
}

// NewModel creates a new Bubble Tea model for the given game.
// store and advisor may be nil.
func NewModel(game registry.Game, store RunSaver, cfg core.RuntimeConfig, advisor Advisor) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
	// Keep typed nils out of the interfaces.
	if s, ok := store.(*storage.Store); !ok || s != nil {
		m.store = store
	}
	if c, ok := advisor.(*router.Client); !ok || c != nil {
		m.advisor = advisor
	}

	// Reset here so the first View has a board to draw.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// WithBackToMenu makes the back action leave the board instead of being
// ignored. Used by session flows that return to a menu.
func (m Model) WithBackToMenu() Model {
	m.allowBack = true
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := m.keyMapper.MapMouse(msg); ok {
			m.inputFrame.AddPointer(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case adviceMsg:
		return m.handleAdvice(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.IsAdvise(msg) {
		return m.requestAdvice()
	}

	if action, _ := m.keyMapper.MapKey(msg); action == core.ActionBack {
		if m.allowBack {
			m.backToMenu = true
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The board survives a resize.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if g, ok := m.game.(surfaceSizer); ok {
		g.SetSurfaceSize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
		m.saved = false
	}
	return m, nil
}

// requestAdvice starts an asynchronous advisor round trip.
func (m Model) requestAdvice() (tea.Model, tea.Cmd) {
	adv, ok := m.game.(registry.Advisable)
	if !ok || m.advisor == nil || !m.advisor.Enabled() {
		m.setStatus("advisor disabled", core.ColorDim)
		return m, nil
	}
	if m.advising {
		return m, nil
	}

	board, dirs := adv.AdvisorInput()
	m.advising = true
	m.setStatus("asking advisor...", core.ColorDim)
	return m, adviseCmd(m.advisor, board, dirs)
}

func adviseCmd(a Advisor, board, directions []uint8) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), advisorTimeout)
		defer cancel()
		dirs, err := a.Advise(ctx, board, directions)
		return adviceMsg{directions: dirs, err: err}
	}
}

// handleAdvice applies a finished advisor round trip. Failures leave the
// board untouched.
func (m Model) handleAdvice(msg adviceMsg) (tea.Model, tea.Cmd) {
	m.advising = false
	if msg.err != nil {
		if errors.Is(msg.err, router.ErrDisabled) {
			m.setStatus("advisor disabled", core.ColorDim)
		} else {
			m.setStatus("advisor failed", core.ColorWarning)
		}
		return m, nil
	}

	adv, ok := m.game.(registry.Advisable)
	if !ok {
		return m, nil
	}
	if err := adv.ApplyRoutes(msg.directions); err != nil {
		log.Warn("could not apply advised routes", "game", m.game.ID(), "err", err)
		m.setStatus("advisor sent bad routes", core.ColorWarning)
		return m, nil
	}
	m.gameState = m.game.State()
	m.setStatus("routes applied", core.ColorOutput)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.Finished && !(m.saved && m.savedLayout == m.gameState.Layout) {
		m.saveRun()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the clear of the current layout.
func (m *Model) saveRun() {
	m.saved = true
	m.savedLayout = m.gameState.Layout
	if m.store == nil {
		return
	}

	seed := uint32(m.config.Seed)
	if g, ok := m.game.(seeded); ok {
		seed = g.Seed()
	}

	st := m.gameState
	_, err := m.store.SaveRun(storage.RunRecord{
		GameID: m.game.ID(),
		Seed:   seed,
		Turns:  st.Turns,
		Eaten:  st.Eaten,
		Score:  st.Score,
	})
	if err != nil {
		log.Warn("could not save run", "game", m.game.ID(), "err", err)
		return
	}
	m.setStatus(fmt.Sprintf("run saved: score %d", st.Score), core.ColorOutput)
}

func (m *Model) setStatus(text string, c core.Color) {
	m.status = text
	m.statusColor = c
	m.statusUntil = time.Now().Add(statusTTL)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".routeboard", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("could not save screenshot", "path", path, "err", err)
		return
	}
	m.setStatus("screenshot saved", core.ColorDim)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" && time.Now().Before(m.statusUntil) {
		w, h := m.screen.Width(), m.screen.Height()
		m.screen.DrawTextColor(core.Max(0, w-len(m.status)-1), h-1, m.status, m.statusColor)
	}
	return RenderScreen(m.screen)
}

// State returns the status observed at the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for game. store and advisor may be nil.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, advisor *router.Client) error {
	model := NewModel(game, store, cfg, advisor)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks and drags edit the board
	)

	_, err := p.Run()
	return err
}
