package sim

import (
	"math"
	"math/rand"

	"github.com/jakobmina/quasar-pro/internal/core"
)

// Camera follows the ship with exponential smoothing. Shake adds a random
// offset that decays every frame; it never moves Pos itself.
type Camera struct {
	Pos    core.Vec2
	Offset core.Vec2
	Shake  float64
	Zoom   float64
}

// View is the point the screen is centered on.
func (c *Camera) View() core.Vec2 {
	return c.Pos.Add(c.Offset)
}

// kick raises the shake to at least amount.
func (c *Camera) kick(amount float64) {
	c.Shake = math.Max(c.Shake, amount)
}

func (c *Camera) update(rng *rand.Rand, target core.Vec2, gain, decay float64) {
	c.Pos = c.Pos.Add(target.Sub(c.Pos).Scale(gain))
	if c.Shake < 0.05 {
		c.Shake = 0
		c.Offset = core.Vec2{}
		return
	}
	c.Offset = core.V((rng.Float64()-0.5)*c.Shake, (rng.Float64()-0.5)*c.Shake)
	c.Shake *= decay
}
