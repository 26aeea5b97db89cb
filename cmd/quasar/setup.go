package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakobmina/quasar-pro/internal/advisor"
	"github.com/jakobmina/quasar-pro/internal/audio"
	"github.com/jakobmina/quasar-pro/internal/audio/synth"
	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/config"
	"github.com/jakobmina/quasar-pro/internal/registry"
	"github.com/jakobmina/quasar-pro/internal/session"
	"github.com/jakobmina/quasar-pro/internal/storage"
)

// Flags shared by the commands that start runs.
var (
	flagConfig     string
	flagDifficulty string
	flagShip       string
	flagWeapon     string
	flagAdvisor    string
	flagAudio      bool
)

func addGameFlags(cmd *cobra.Command, withAudio bool) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom simulation config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagShip, "ship", "", "Hull model (e.g. titan) or hangar ship id")
	cmd.Flags().StringVar(&flagWeapon, "weapon", "", "Starting weapon (e.g. plasma)")
	cmd.Flags().StringVar(&flagAdvisor, "advisor", "", "Advisory provider: heuristic, off or an http(s) endpoint (default from config)")
	if withAudio {
		cmd.Flags().BoolVar(&flagAudio, "audio", true, "Play sound effects")
	}
}

// openStore opens the score database. A failure is logged and play continues
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}

// checkMode fails with a hint when id is not a registered mode.
func checkMode(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown mode %q (run 'quasar list' to see available modes)", id)
	}
	return nil
}

// configureSessions applies the game flags to every session created
// afterwards.
func configureSessions(store *storage.Store) error {
	session.SetLogger(logger)
	session.SetConfigPath(flagConfig)
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	session.SetDifficultyPreset(flagDifficulty)

	hull, err := resolveHull(store, flagShip)
	if err != nil {
		return err
	}
	session.SetHull(hull)

	var weapon catalog.Weapon
	if flagWeapon != "" {
		if weapon, err = catalog.ParseWeapon(flagWeapon); err != nil {
			return err
		}
	}
	session.SetWeapon(weapon)

	cfg, err := config.LoadSim(flagConfig)
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
		cfg = config.DefaultSimConfig()
	}
	provider, err := resolveAdvisor(flagAdvisor, cfg.Advisor.Endpoint)
	if err != nil {
		return err
	}
	session.SetAdvisor(provider, time.Duration(cfg.Advisor.TimeoutMs)*time.Millisecond)
	return nil
}

// resolveHull finds a hull by model name or hangar id. Empty means the
// default interceptor.
func resolveHull(store *storage.Store, name string) (catalog.ShipConfig, error) {
	if name == "" {
		return catalog.ShipConfig{}, nil
	}
	if store != nil {
		ship, err := store.Ship(name)
		if err == nil {
			return ship, nil
		}
		if !errors.Is(err, storage.ErrShipNotFound) {
			return catalog.ShipConfig{}, err
		}
	}
	m, err := catalog.ParseModel(name)
	if err != nil {
		return catalog.ShipConfig{}, err
	}
	hull, _ := catalog.Hull(m)
	return hull, nil
}

// resolveAdvisor picks the provider for the --advisor flag. An empty flag
// falls back to the configured endpoint, then to the heuristic.
func resolveAdvisor(flag, endpoint string) (advisor.Provider, error) {
	choice := strings.TrimSpace(flag)
	if choice == "" {
		choice = endpoint
	}
	switch {
	case choice == "" || strings.EqualFold(choice, "heuristic"):
		return advisor.Heuristic{}, nil
	case strings.EqualFold(choice, "off"):
		return nil, nil
	case strings.HasPrefix(choice, "http://"), strings.HasPrefix(choice, "https://"):
		return advisor.HTTPProvider{Endpoint: choice}, nil
	}
	return nil, fmt.Errorf("unknown advisor %q: want heuristic, off or an http(s) URL", flag)
}

// startAudio opens the output device when --audio is set. It returns a stop
// function that is always safe to call.
func startAudio() func() {
	if !flagAudio {
		session.SetCues(audio.Nop{})
		return func() {}
	}
	sm := synth.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing silently", "error", err)
		session.SetCues(audio.Nop{})
		return func() {}
	}
	session.SetCues(sm)
	return sm.Cleanup
}
