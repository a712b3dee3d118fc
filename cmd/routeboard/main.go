// routeboard is a terminal routing puzzle: place pieces, give every tile a
// direction and step the board until every piece has left through the
// output tile.
//
// Usage:
//
//	routeboard list              - List available boards
//	routeboard play <board>      - Play a board
//	routeboard menu              - Pick boards interactively
//	routeboard serve             - Start SSH server for remote play
//	routeboard scores <board>    - Show best runs for a board
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible boards
//	--db <path>       - Set database path (default: ~/.routeboard/runs.db)
//	--config <path>   - Custom board config YAML
//	--speed <preset>  - Auto-run speed: slow, normal, fast, custom
//	--router <url>    - Routing advisor endpoint (overrides the config)
//	--level <path>    - Level YAML file for the sandbox board
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import boards to register them
	_ "github.com/vovakirdan/routeboard/internal/games/routeboard"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagSpeed  string
	flagRouter string
	flagLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "routeboard",
	Short: "Routing Board - a 10x10 routing puzzle in your terminal",
	Long: `Routing Board is a terminal puzzle. Pieces sit on a 10x10 board and
every tile carries a direction. Each step moves every piece one tile along
its route. Pieces that meet merge, and a piece on the marked output tile
leaves the board. Clear the board in as few turns as possible.

Available commands:
  list     - Show all available boards
  play     - Play a specific board directly
  menu     - Interactive board picker menu
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  routeboard list
  routeboard play routeboard
  routeboard play routeboard_challenge --speed fast
  routeboard menu
  routeboard serve --ssh :2222
  routeboard scores routeboard_challenge`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.routeboard/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Auto-run speed preset: slow, normal, fast, custom")
	rootCmd.PersistentFlags().StringVar(&flagRouter, "router", "", "Routing advisor base URL (empty = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level YAML file opened by the routeboard sandbox")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
