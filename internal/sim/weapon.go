package sim

import (
	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
)

func (w *World) cycleWeapon() {
	next := catalog.Next(w.frame.Weapon)
	w.frame.Weapon = next
	w.beam.Active = false
	w.beam.Duration = 0
	w.emit(gamestate.Update{Weapon: gamestate.Ptr(next)})
}

// fire handles the trigger for this frame. Beam heat is updated every frame,
// held or not.
func (w *World) fire(held bool) {
	spec := catalog.Spec(w.frame.Weapon)
	if spec.Beam {
		w.updateBeam(held)
		return
	}
	w.updateBeam(false)
	if !held || w.ship.Warp.Active {
		return
	}

	s := &w.ship
	if !s.ready(w.now, spec.Cooldown(w.frame.WeaponLevel)) {
		return
	}
	s.markFired(w.now)
	w.cues.PlayShoot(spec.Weapon)

	cfg := w.cfg.Combat
	damage := (spec.Damage + float64(w.frame.WeaponLevel)) * s.Hull.AttackPower
	pellets := core.Max(1, spec.Pellets)
	for i := 0; i < pellets; i++ {
		ang := s.Angle + (float64(i)-float64(pellets-1)/2)*spec.Spread
		if spec.Jitter > 0 {
			ang += (w.rng.Float64()*2 - 1) * spec.Jitter
		}
		w.lasers.Acquire(func(l *Laser) {
			l.Pos = s.Pos
			l.Vel = core.Heading(ang).Scale(cfg.LaserSpeed)
			l.Color = spec.Color
			l.Term = spec.Term
			l.Damage = damage
			l.Life = 1
			l.Decay = cfg.LaserDecay
		})
	}
	w.camera.kick(spec.Shake)
}

// updateBeam runs the heat model. Reaching the lockout temperature forces
// the beam off until it cools below the resume temperature.
func (w *World) updateBeam(held bool) {
	cfg := w.cfg.Beam
	b := &w.beam
	firing := held && !b.Overheated && !w.ship.Warp.Active

	if firing {
		if !b.Active {
			w.cues.PlayShoot(catalog.WeaponInfernalRay)
			b.Duration = 0
		}
		b.Active = true
		b.Duration++
		b.Origin = w.ship.Pos
		b.Angle = w.ship.Angle
		b.Temperature += cfg.HeatRate
		if b.Temperature >= cfg.Lockout {
			b.Temperature = cfg.Lockout
			b.Overheated = true
			b.Active = false
		}
		return
	}

	b.Active = false
	b.Duration = 0
	b.Temperature = core.ClampF(b.Temperature-cfg.CoolRate, 0, cfg.Lockout)
	if b.Overheated && b.Temperature <= cfg.Resume {
		b.Overheated = false
	}
}

// BeamDamage is the per-frame damage of a beam held for duration frames.
func BeamDamage(spec catalog.WeaponSpec, growth float64, duration int, attack float64) float64 {
	return (spec.Damage + float64(duration)*growth) * attack
}
