package sim

import (
	"math"

	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/core"
)

// Warp is the wormhole traversal in progress. While Active the ship ignores
// controls and is carried from From to To over Total frames.
type Warp struct {
	Active   bool
	Frame    int
	Total    int
	From     core.Vec2
	To       core.Vec2
	Cooldown int // frames before another event horizon can capture the ship
}

// Ship is the player ship.
type Ship struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Angle    float64
	Radius   float64
	Hull     catalog.ShipConfig
	HitTimer int // frames of damage blink left; visual only

	LastFired float64 // sim clock ms of the last discrete shot
	hasFired  bool

	Warp Warp
}

func newShip(hull catalog.ShipConfig, pos core.Vec2, angle float64) Ship {
	return Ship{
		Pos:    pos,
		Angle:  angle,
		Radius: hull.Radius(),
		Hull:   hull,
	}
}

// Speed returns the length of the velocity vector.
func (s *Ship) Speed() float64 {
	return s.Vel.Len()
}

// Blinking reports whether the ship is hidden this frame by the hit blink.
func (s *Ship) Blinking(tick int) bool {
	return s.HitTimer > 0 && (tick/3)%2 == 0
}

func (s *Ship) ready(now, cooldown float64) bool {
	return !s.hasFired || now-s.LastFired > cooldown
}

func (s *Ship) markFired(now float64) {
	s.LastFired = now
	s.hasFired = true
}

var shipArrows = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// Glyph is the arrow closest to the ship heading.
func (s *Ship) Glyph() rune {
	a := math.Mod(s.Angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	idx := int(math.Round(a/(math.Pi/4))) % len(shipArrows)
	return shipArrows[idx]
}
