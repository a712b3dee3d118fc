package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/routeboard/internal/config"
	"github.com/vovakirdan/routeboard/internal/core"
	"github.com/vovakirdan/routeboard/internal/games/routeboard"
	boardcore "github.com/vovakirdan/routeboard/internal/games/routeboard/core"
	"github.com/vovakirdan/routeboard/internal/games/routeboard/levels"
	"github.com/vovakirdan/routeboard/internal/router"
	"github.com/vovakirdan/routeboard/internal/storage"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "routeboard",
})

// useLogFile sends all logging to ~/.routeboard/routeboard.log so the
// alternate screen stays clean. Logging stays on stderr if the file cannot
// be opened.
func useLogFile() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".routeboard")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "routeboard.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger.Warn("could not open log file", "err", err)
		return
	}
	logger.SetOutput(f)
	log.SetDefault(logger)
}

// loadSettings reads the board config, applies the speed preset and pushes
// the result into the board options. It returns the advisor client, which
// is disabled when no endpoint is configured.
func loadSettings() (*router.Client, error) {
	cfg, err := config.LoadRouteBoard(flagConfig)
	if err != nil {
		return nil, err
	}

	preset, err := config.ResolveSpeedPreset(flagSpeed, cfg)
	if err != nil {
		return nil, err
	}
	config.ApplySpeedPreset(&cfg, preset)

	opts := boardOptions(cfg)
	if flagLevel != "" {
		lvl, err := levels.LoadFile(flagLevel)
		if err != nil {
			return nil, err
		}
		opts.Level = &lvl
	}
	routeboard.SetOptions(opts)

	endpoint := cfg.Router.Endpoint
	if flagRouter != "" {
		endpoint = flagRouter
	}
	advisor, err := router.New(router.Config{
		Endpoint: endpoint,
		Timeout:  time.Duration(cfg.Router.TimeoutMS) * time.Millisecond,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("settings loaded", "step_period", cfg.Sim.StepPeriod, "steps_per_sec", cfg.Sim.StepsPerSecond(), "advisor", advisor.Enabled())
	return advisor, nil
}

// boardOptions converts the file config into board options.
func boardOptions(cfg config.RouteBoardConfig) routeboard.Options {
	return routeboard.Options{
		Params: boardcore.Params{
			StepPeriod:      cfg.Sim.StepPeriod,
			FlashDuration:   cfg.Sim.FlashDuration,
			HistoryCapacity: cfg.Sim.HistoryCapacity,
		},
		SeedSalt:        cfg.Sim.SeedSalt,
		ChallengePieces: cfg.Challenge.Pieces,
		RandomRoutes:    cfg.Challenge.RandomRoutes,
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the runs database. Play continues without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database, runs will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
