// Package registry maps run mode ids ("story", "openworld") to factories.
// Modes register themselves from init functions so front ends can list and
// create them without importing the session package directly.
package registry

import (
	"fmt"
	"sync"

	"github.com/jakobmina/quasar-pro/internal/core"
)

// Game is a playable run: a simulation world plus the frame controller that
// drives it. Implementations never touch the terminal or the window; the
// platform maps input, keeps time and presents the screen.
type Game interface {
	// ID is the mode id used by the CLI and as the score table key.
	ID() string

	// Title is the display name shown in menus.
	Title() string

	// Reset starts a fresh run with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances exactly one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst. dst is cleared beforehand.
	Render(dst *core.Screen)

	// State returns the summary the platform needs (score, paused, over).
	State() core.GameState
}

// ModeInfo describes a registered mode.
type ModeInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a mode.
type Factory func() Game

type entry struct {
	info    ModeInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry
)

// Register adds a mode. Modes are listed in registration order.
// Panics if the id is already taken.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	for _, e := range entries {
		if e.info.ID == id {
			panic(fmt.Sprintf("registry: mode %q already registered", id))
		}
	}

	entries = append(entries, entry{
		info:    ModeInfo{ID: id, Title: f().Title(), Description: description},
		factory: f,
	})
}

// List returns every registered mode in registration order.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]ModeInfo, len(entries))
	for i, e := range entries {
		out[i] = e.info
	}
	return out
}

// Create instantiates a mode by id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	for _, e := range entries {
		if e.info.ID == id {
			return e.factory(), nil
		}
	}
	return nil, fmt.Errorf("registry: unknown mode %q", id)
}

// Exists reports whether a mode id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	for _, e := range entries {
		if e.info.ID == id {
			return true
		}
	}
	return false
}

// unregister removes a mode; tests use it to keep the global table clean.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	for i, e := range entries {
		if e.info.ID == id {
			entries = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}
