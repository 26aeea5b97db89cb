package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/platform/desktop"
	"github.com/jakobmina/quasar-pro/internal/registry"
	"github.com/jakobmina/quasar-pro/internal/session"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop [mode]",
	Short: "Play in a desktop window",
	Long: `Open a window and play a mode (story by default).

Keyboard controls match 'quasar play'. A gamepad's left stick steers and
thrusts, the bottom face button fires. On touch screens the left half of the
window is a virtual stick and the right half fires.

Examples:
  quasar desktop
  quasar desktop openworld --ship explorer
  quasar desktop story --fps 120 --audio=false`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDesktop,
}

func init() {
	addGameFlags(desktopCmd, true)
}

func runDesktop(_ *cobra.Command, args []string) error {
	modeID := "story"
	if len(args) == 1 {
		modeID = args[0]
	}
	if err := checkMode(modeID); err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	if err := configureSessions(store); err != nil {
		return err
	}
	stopAudio := startAudio()
	defer stopAudio()

	game, err := registry.Create(modeID)
	if err != nil {
		return err
	}
	s, ok := game.(*session.Session)
	if !ok {
		return fmt.Errorf("mode %q has no desktop renderer", modeID)
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = desktop.WindowW, desktop.WindowH
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return desktop.Run(s, store, cfg)
}
