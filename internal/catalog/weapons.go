package catalog

import (
	"fmt"
	"strings"

	"github.com/jakobmina/quasar-pro/internal/core"
)

// Weapon is a weapon name.
type Weapon string

const (
	WeaponLaser       Weapon = "LASER"
	WeaponShotgun     Weapon = "SHOTGUN"
	WeaponMachineGun  Weapon = "MACHINE_GUN"
	WeaponInfernalRay Weapon = "INFERNAL_RAY"
)

// WeaponSpec is the stat line of a weapon.
type WeaponSpec struct {
	Weapon     Weapon
	Name       string
	Color      string
	Term       core.Color
	FireRateMs float64 // base cooldown; 0 for continuous beams
	Damage     float64
	Shake      float64 // camera shake per trigger
	Pellets    int     // projectiles per trigger
	Spread     float64 // radians between adjacent pellets
	Jitter     float64 // max random deviation per shot
	Beam       bool
}

var weapons = []WeaponSpec{
	{Weapon: WeaponLaser, Name: "Neural Laser", Color: "#0ea5e9", Term: core.ColorBrightBlue,
		FireRateMs: 250, Damage: 2, Shake: 4, Pellets: 1},
	{Weapon: WeaponShotgun, Name: "Synapse Scatter", Color: "#f43f5e", Term: core.ColorBrightRed,
		FireRateMs: 600, Damage: 1.5, Shake: 12, Pellets: 5, Spread: 0.18},
	{Weapon: WeaponMachineGun, Name: "Data Streamer", Color: "#facc15", Term: core.ColorBrightYellow,
		FireRateMs: 80, Damage: 0.6, Shake: 2, Pellets: 1, Jitter: 0.05},
	{Weapon: WeaponInfernalRay, Name: "Infernal Beam", Color: "#ffffff", Term: core.ColorBrightWhite,
		FireRateMs: 0, Damage: 0.1, Beam: true},
}

// Weapons returns every weapon spec in cycling order.
func Weapons() []WeaponSpec {
	out := make([]WeaponSpec, len(weapons))
	copy(out, weapons)
	return out
}

// Spec returns the stat line of w, falling back to the laser.
func Spec(w Weapon) WeaponSpec {
	for _, s := range weapons {
		if s.Weapon == w {
			return s
		}
	}
	return weapons[0]
}

// Next returns the weapon after w in cycling order.
func Next(w Weapon) Weapon {
	for i, s := range weapons {
		if s.Weapon == w {
			return weapons[(i+1)%len(weapons)].Weapon
		}
	}
	return weapons[0].Weapon
}

// Cooldown is the minimum time between triggers at the given weapon level.
func (s WeaponSpec) Cooldown(level int) float64 {
	return s.FireRateMs / (1 + float64(level)*0.15)
}

// ParseWeapon resolves a weapon name case-insensitively.
func ParseWeapon(name string) (Weapon, error) {
	w := Weapon(strings.ToUpper(strings.TrimSpace(name)))
	for _, s := range weapons {
		if s.Weapon == w {
			return w, nil
		}
	}
	return "", fmt.Errorf("catalog: unknown weapon %q", name)
}
