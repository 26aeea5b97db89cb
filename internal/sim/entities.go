package sim

import (
	"math"
	"math/rand"

	"github.com/jakobmina/quasar-pro/internal/core"
)

// Laser is a discrete projectile. Pooled.
type Laser struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Color  string
	Term   core.Color
	Damage float64
	Life   float64
	Decay  float64
}

// Update moves the laser and reports whether it is still alive.
func (l *Laser) Update() bool {
	l.Pos = l.Pos.Add(l.Vel)
	l.Life -= l.Decay
	return l.Life > 0
}

// Alive reports whether the laser can still hit something.
func (l *Laser) Alive() bool {
	return l.Life > 0
}

// Particle is a short-lived visual fragment. Pooled.
// Data particles render as a binary digit instead of a dot.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Life  float64
	Decay float64
	Color string
	Term  core.Color
	Data  bool
	Glyph rune
}

// Update moves the particle and reports whether it is still alive.
func (p *Particle) Update() bool {
	p.Pos = p.Pos.Add(p.Vel)
	p.Life -= p.Decay
	return p.Life > 0
}

// spawn initializes p as a burst fragment. Atomized fragments fly faster.
func (p *Particle) spawn(rng *rand.Rand, pos core.Vec2, color string, term core.Color, atomize, data bool) {
	ang := rng.Float64() * 2 * math.Pi
	speed := 1 + rng.Float64()*5
	if atomize {
		speed = 2 + rng.Float64()*10
	}
	p.Pos = pos
	p.Vel = core.Heading(ang).Scale(speed)
	p.Life = 1
	p.Decay = 0.02 + rng.Float64()*0.03
	p.Color = color
	p.Term = term
	p.Data = data
	p.Glyph = '.'
	if data {
		p.Glyph = '0'
		if rng.Intn(2) == 1 {
			p.Glyph = '1'
		}
	}
}

// Shard is a resource pickup dropped by destroyed enemies. Pooled.
type Shard struct {
	Pos       core.Vec2
	Vel       core.Vec2
	Friction  float64
	Collected bool
}

// Update drifts the shard and bleeds off its velocity.
func (s *Shard) Update() {
	s.Pos = s.Pos.Add(s.Vel)
	s.Vel = s.Vel.Scale(s.Friction)
}

// Wave is the expanding ring of a quantum purge. Pooled.
type Wave struct {
	Pos    core.Vec2
	Radius float64
	Life   float64
	Growth float64
	Decay  float64
}

// Update grows the ring and reports whether it is still visible.
func (w *Wave) Update() bool {
	w.Radius += w.Growth
	w.Life -= w.Decay
	return w.Life > 0
}

// Beam is the continuous ray weapon. It exists only while fire is held and
// the emitter is not locked out by heat.
type Beam struct {
	Active      bool
	Origin      core.Vec2
	Angle       float64
	Duration    int
	Temperature float64
	Overheated  bool
}
