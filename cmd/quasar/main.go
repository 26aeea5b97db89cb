// quasar is a space shooter for the terminal, a desktop window or an SSH
// session.
//
// Usage:
//
//	quasar list               - List available modes
//	quasar play [mode]        - Play in the terminal (menu when no mode given)
//	quasar desktop [mode]     - Play in a desktop window
//	quasar serve              - Start SSH server for remote play
//	quasar scores <mode>      - Show high scores for a mode
//	quasar ships              - Manage the hangar
//	quasar sim [mode]         - Run seeded headless simulations
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.quasar/scores.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Registers the story and openworld modes
	_ "github.com/jakobmina/quasar-pro/internal/session"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "quasar",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quasar",
	Short: "Quasar - a space shooter for your terminal",
	Long: `Quasar is a top-down space shooter. Fly a hull through the story
campaign or chart the open world, in the terminal, in a window or over SSH.

Available commands:
  list     - Show all available modes
  play     - Play in the terminal
  desktop  - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  ships    - List, add and delete hangar ships
  sim      - Run seeded headless simulations

Examples:
  quasar list
  quasar play story
  quasar desktop openworld --ship titan
  quasar serve --ssh :2222
  quasar scores story`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.quasar/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shipsCmd)
	rootCmd.AddCommand(simCmd)
}
