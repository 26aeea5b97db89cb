package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/platform/tui"
	"github.com/jakobmina/quasar-pro/internal/registry"
	"github.com/jakobmina/quasar-pro/internal/session"
	"github.com/jakobmina/quasar-pro/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Play a mode in the terminal. Without a mode, a menu lets you pick the
mode and hull and browse the scores and hangar. After a run ends you return
to the menu.

Controls:
  W/Up, S/Down  - Thrust, reverse
  A/D, Left/Right - Turn
  Space         - Fire
  E             - Special
  Tab           - Next weapon
  X             - Ask the advisor
  P/Esc         - Pause
  R/Enter       - Restart (after game over)
  B             - Back to menu (paused or after game over)
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  quasar play
  quasar play story --difficulty hard
  quasar play openworld --ship explorer
  quasar play story --weapon plasma --advisor off
  quasar play story --config ./my-quasar.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd, true)
}

func runPlay(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		if err := checkMode(args[0]); err != nil {
			return err
		}
	}

	store := openStore()
	defer closeStore(store)

	if err := configureSessions(store); err != nil {
		return err
	}
	stopAudio := startAudio()
	defer stopAudio()

	cfg := terminalConfig()
	if len(args) == 1 {
		game, err := registry.Create(args[0])
		if err != nil {
			return err
		}
		_, err = tui.Run(game, store, cfg)
		return err
	}
	return menuLoop(store, cfg)
}

// terminalConfig sizes the run to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func menuLoop(store *storage.Store, cfg core.RuntimeConfig) error {
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		if res.Quit {
			return nil
		}

		if res.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		if res.ModeID == "" {
			return nil
		}
		game, err := registry.Create(res.ModeID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
			continue
		}
		if s, ok := game.(*session.Session); ok && res.Hull.Model != "" {
			s.UseHull(res.Hull)
		}

		// Fresh seed per run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
