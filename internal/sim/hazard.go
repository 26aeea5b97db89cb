package sim

import (
	"math"

	"github.com/jakobmina/quasar-pro/internal/core"
)

// Blackhole is one end of a wormhole pair. Crossing its event horizon warps
// the ship to Target.
type Blackhole struct {
	Pos        core.Vec2
	Target     core.Vec2
	Radius     float64
	Mass       float64
	Discovered bool
}

// Horizon is the event horizon radius.
func (b *Blackhole) Horizon(factor float64) float64 {
	return b.Radius * factor
}

func (w *World) addBlackholePair(a, b core.Vec2) {
	cfg := w.cfg.Hazards
	w.blackholes = append(w.blackholes,
		&Blackhole{Pos: a, Target: b, Radius: cfg.BlackholeRadius, Mass: cfg.BlackholeMass},
		&Blackhole{Pos: b, Target: a, Radius: cfg.BlackholeRadius, Mass: cfg.BlackholeMass},
	)
}

// pull is the inverse-square acceleration a body of mass exerts on p,
// already scaled for one frame. Bodies closer than minDist exert nothing.
func pull(src core.Vec2, mass float64, p core.Vec2, constant, scale, minDist float64) core.Vec2 {
	d := src.Sub(p)
	distSq := d.LenSq()
	dist := math.Sqrt(distSq)
	if dist < minDist {
		return core.Vec2{}
	}
	force := mass * constant / distSq
	return d.Scale(force / dist * scale)
}

// applyGravity accelerates the ship toward every gravity source and starts a
// warp when the ship crosses an event horizon.
func (w *World) applyGravity() {
	s := &w.ship
	if s.Warp.Active {
		return
	}
	ph := w.cfg.Physics
	hz := w.cfg.Hazards

	if w.mode == ModeOpenWorld {
		for _, st := range w.structures {
			if st.Mass <= 0 {
				continue
			}
			s.Vel = s.Vel.Add(pull(st.Pos, st.Mass, s.Pos, ph.GravityConstant, ph.GravityScale, ph.GravityMinDist))
		}
	}

	for _, bh := range w.blackholes {
		dist := bh.Pos.Dist(s.Pos)
		if dist < bh.Radius*hz.CaptureFactor {
			s.Vel = s.Vel.Add(pull(bh.Pos, bh.Mass, s.Pos, ph.GravityConstant, ph.GravityScale, ph.GravityMinDist))
		}
		if s.Warp.Cooldown == 0 && dist < bh.Horizon(hz.HorizonFactor) {
			w.startWarp(bh)
			return
		}
	}
}

// startWarp captures the ship. The landing point is picked now, just outside
// the paired horizon so the exit does not immediately swallow the ship again.
func (w *World) startWarp(bh *Blackhole) {
	hz := w.cfg.Hazards
	ang := w.rng.Float64() * 2 * math.Pi
	out := bh.Horizon(hz.HorizonFactor)*1.5 + w.rng.Float64()*hz.LandJitter

	w.ship.Warp = Warp{
		Active: true,
		Total:  core.Max(1, hz.WarpFrames),
		From:   w.ship.Pos,
		To:     bh.Target.Add(core.Heading(ang).Scale(out)),
	}
	w.camera.kick(w.cfg.Special.Shake / 2)
}

// advanceWarp carries the ship one frame along the warp and lands it at the end.
func (w *World) advanceWarp() {
	s := &w.ship
	wp := &s.Warp
	wp.Frame++
	t := float64(wp.Frame) / float64(wp.Total)
	// smoothstep
	eased := t * t * (3 - 2*t)
	s.Pos = wp.From.Lerp(wp.To, eased)

	if wp.Frame < wp.Total {
		return
	}
	s.Pos = wp.To
	s.Vel = s.Vel.Scale(w.cfg.Hazards.ExitDamping)
	*wp = Warp{Cooldown: wp.Total * 2}
	w.companion.Pos = s.Pos
	w.companion.Vel = core.Vec2{}
	w.companion.say(w, "WORMHOLE TRAVERSAL COMPLETE")
	w.camera.Pos = s.Pos
}
