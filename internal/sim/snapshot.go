package sim

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is a compact summary of the world, for replay checks and the
// headless runner.
type Snapshot struct {
	Tick       int
	ShipX      float64
	ShipY      float64
	ShipAngle  float64
	Enemies    int
	Lasers     int
	Particles  int
	Shards     int
	Hubs       int
	Discovered int
	Companion  CompanionMode
}

// Snapshot returns the current summary.
func (w *World) Snapshot() Snapshot {
	found, _ := w.Discovered()
	return Snapshot{
		Tick:       w.tick,
		ShipX:      w.ship.Pos.X,
		ShipY:      w.ship.Pos.Y,
		ShipAngle:  w.ship.Angle,
		Enemies:    w.liveEnemies(),
		Lasers:     w.lasers.Len(),
		Particles:  w.particles.Len(),
		Shards:     w.shards.Len(),
		Hubs:       len(w.hubs),
		Discovered: found,
		Companion:  w.companion.Mode,
	}
}

// Hash digests every entity position of the world. Two worlds built with the
// same seed and fed the same inputs hash equal.
func (w *World) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	f := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		d.Write(buf[:]) //nolint:errcheck
	}
	vec := func(x, y float64) {
		f(x)
		f(y)
	}

	f(float64(w.tick))
	vec(w.ship.Pos.X, w.ship.Pos.Y)
	vec(w.ship.Vel.X, w.ship.Vel.Y)
	f(w.ship.Angle)
	vec(w.companion.Pos.X, w.companion.Pos.Y)
	for _, e := range w.enemies {
		vec(e.Pos.X, e.Pos.Y)
		f(e.Health)
	}
	for _, st := range w.structures {
		vec(st.Pos.X, st.Pos.Y)
		f(st.Health)
	}
	for _, bh := range w.blackholes {
		vec(bh.Pos.X, bh.Pos.Y)
	}
	for _, l := range w.lasers.Active() {
		vec(l.Pos.X, l.Pos.Y)
	}
	for _, p := range w.particles.Active() {
		vec(p.Pos.X, p.Pos.Y)
	}
	for _, h := range w.hubs {
		vec(h.Pos.X, h.Pos.Y)
	}
	return d.Sum64()
}
