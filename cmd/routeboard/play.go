package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/routeboard/internal/platform/tui"
	"github.com/vovakirdan/routeboard/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <board>",
	Short: "Play a board",
	Long: `Start playing the specified board.

Controls:
  Mouse      - Place/remove pieces (placement) or cycle routes (routing)
  Shift+Click - Cycle routes backwards
  M          - Toggle placement/routing mode
  Space      - Start/stop auto-run
  S / Z      - Single step / undo
  1-9, 0     - Place 1..10 random pieces
  R / C      - Reset run / clear pieces
  X / D      - Randomize / clear routes
  A          - Ask the routing advisor
  Esc        - Pause
  Q/Ctrl+C   - Quit

Speed presets:
  slow   - one step every 0.6s
  normal - one step every 0.35s
  fast   - one step every 0.15s
  custom - keep step_period from the config file

Examples:
  routeboard play routeboard
  routeboard play routeboard_challenge --seed 42
  routeboard play routeboard --speed fast
  routeboard play routeboard --router http://localhost:8000
  routeboard play routeboard --config ./my-board.yaml
  routeboard play routeboard --level ./my-level.yaml
  routeboard play routeboard_funnel`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if board exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'routeboard list' to see available boards.")
		os.Exit(1)
	}

	useLogFile()
	advisor, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating board: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig(), advisor)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running board: %v\n", runErr)
		os.Exit(1)
	}
}
