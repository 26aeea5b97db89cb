// Package catalog holds the fixed archetype tables of the game: hull models,
// weapons, enemies and structures. Tables are indexed by string kinds so the
// same names appear in YAML config, the database and the HUD.
package catalog

import (
	"fmt"
	"strings"

	"github.com/jakobmina/quasar-pro/internal/core"
)

// Model is a hull model name.
type Model string

const (
	HullInterceptor Model = "INTERCEPTOR"
	HullTitan       Model = "TITAN"
	HullSpecter     Model = "SPECTER"
	HullVortex      Model = "VORTEX"
	HullExplorer    Model = "EXPLORER"
	HullTank        Model = "TANK"
	HullMothership  Model = "MOTHERSHIP"
)

// ShipConfig describes a flyable hull. Default hulls come from DefaultShips;
// custom ones are stored in the ship catalog.
type ShipConfig struct {
	ID          string
	Model       Model
	Name        string
	Color       string // hex, e.g. "#0ea5e9"
	Thrust      float64
	HealthBonus float64
	Defense     float64
	AttackPower float64
	IsCustom    bool
}

// Radius is the collision radius of the hull.
func (c ShipConfig) Radius() float64 {
	switch c.Model {
	case HullTitan:
		return 16
	case HullSpecter:
		return 10
	}
	if c.HealthBonus > 0 {
		return 16
	}
	return 12
}

// DefenseMultiplier is the divisor applied to incoming contact damage.
// Non-positive values are treated as 1.
func (c ShipConfig) DefenseMultiplier() float64 {
	if c.Defense <= 0 {
		return 1
	}
	return c.Defense
}

// TermColor picks the terminal palette slot closest to the hull color.
func (c ShipConfig) TermColor() core.Color {
	if col, ok := hullTerm[c.Model]; ok {
		return col
	}
	return core.ColorBrightCyan
}

var hullTerm = map[Model]core.Color{
	HullInterceptor: core.ColorBrightBlue,
	HullTitan:       core.ColorGreen,
	HullSpecter:     core.ColorViolet,
	HullVortex:      core.ColorOrange,
	HullExplorer:    core.ColorBrightCyan,
	HullTank:        core.ColorBrightRed,
	HullMothership:  core.ColorBrightWhite,
}

var defaultShips = []ShipConfig{
	{Model: HullInterceptor, Color: "#0ea5e9", Thrust: 0.4, HealthBonus: 0, Defense: 1.0, AttackPower: 1.0},
	{Model: HullTitan, Color: "#10b981", Thrust: 0.25, HealthBonus: 50, Defense: 2.0, AttackPower: 1.2},
	{Model: HullSpecter, Color: "#a855f7", Thrust: 0.55, HealthBonus: -20, Defense: 0.5, AttackPower: 1.5},
	{Model: HullVortex, Color: "#f59e0b", Thrust: 0.35, HealthBonus: 0, Defense: 1.2, AttackPower: 1.1},
	{Model: HullExplorer, Color: "#38bdf8", Thrust: 0.65, HealthBonus: -10, Defense: 0.3, AttackPower: 0.8},
	{Model: HullTank, Color: "#f43f5e", Thrust: 0.3, HealthBonus: 40, Defense: 1.8, AttackPower: 1.3},
	{Model: HullMothership, Color: "#ffffff", Thrust: 0.15, HealthBonus: 200, Defense: 5.0, AttackPower: 0.5},
}

// DefaultShips returns the built-in hulls in catalog order, with ids of the
// form default_<MODEL> and capitalized display names.
func DefaultShips() []ShipConfig {
	out := make([]ShipConfig, len(defaultShips))
	for i, s := range defaultShips {
		s.ID = "default_" + string(s.Model)
		s.Name = displayName(s.Model)
		out[i] = s
	}
	return out
}

// Hull returns the built-in config for a model.
func Hull(m Model) (ShipConfig, bool) {
	for _, s := range DefaultShips() {
		if s.Model == m {
			return s, true
		}
	}
	return ShipConfig{}, false
}

// ParseModel resolves a model name case-insensitively.
func ParseModel(name string) (Model, error) {
	m := Model(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := Hull(m); !ok {
		return "", fmt.Errorf("catalog: unknown hull model %q", name)
	}
	return m, nil
}

func displayName(m Model) string {
	s := strings.ToLower(string(m))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
