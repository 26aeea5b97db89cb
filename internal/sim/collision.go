package sim

import (
	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
)

// resolveContacts applies ship-vs-enemy collisions. The enemy is removed on
// contact, so each pair produces at most one event.
func (w *World) resolveContacts() {
	s := &w.ship
	if s.Warp.Active {
		return
	}
	cfg := w.cfg.Combat

	for _, e := range w.enemies {
		if e.Dead() || s.Pos.Dist(e.Pos) >= s.Radius+e.Radius {
			continue
		}
		e.Health = 0
		e.removed = true

		w.emit(gamestate.Update{
			Lives:      -cfg.ContactLives,
			Corruption: cfg.ContactCorruption,
			Integrity:  -cfg.ContactIntegrity / s.Hull.DefenseMultiplier(),
		})
		w.burst(e.Pos, e.Spec.Color, e.Spec.Term, cfg.ContactBurst, true, false)
		w.cues.PlayDamage()
		w.camera.kick(cfg.ContactShake)
		s.HitTimer = cfg.ContactHitTimer
		w.flash = cfg.ContactFlash
	}
}

// resolveLasers tests every live projectile against enemies first, then
// structures. A projectile is consumed by its first hit.
func (w *World) resolveLasers() {
	cfg := w.cfg.Combat
	for _, l := range w.lasers.Active() {
		if !l.Alive() {
			continue
		}
		if w.laserHitsEnemy(l) {
			continue
		}
		for _, st := range w.structures {
			if st.Depleted() || l.Pos.Dist(st.Pos) >= st.Radius+cfg.StructureHitPad {
				continue
			}
			st.damage(l.Damage)
			w.burst(l.Pos, "#475569", core.ColorGray, 2, false, false)
			l.Life = 0
			break
		}
	}
}

func (w *World) laserHitsEnemy(l *Laser) bool {
	cfg := w.cfg.Combat
	for _, e := range w.enemies {
		if e.Dead() || l.Pos.Dist(e.Pos) >= e.Radius+cfg.EnemyHitPad {
			continue
		}
		e.HitTimer = cfg.EnemyHitTimer
		w.burst(l.Pos, l.Color, l.Term, 3, false, false)
		l.Life = 0
		if e.damage(l.Damage) {
			w.destroyEnemy(e, cfg.KillCharge, cfg.DeathBurst, e.Spec.Color, e.Spec.Term, true)
		}
		return true
	}
	return false
}

// inCone reports whether p lies within the beam's range and half-angle.
func (w *World) inCone(p core.Vec2) bool {
	b := &w.beam
	d := b.Origin.Dist(p)
	switch {
	case d == 0:
		return true
	case d > w.cfg.Beam.Range:
		return false
	}
	return core.AngleDiff(b.Origin.Bearing(p), b.Angle) < w.cfg.Beam.Cone
}

// resolveBeam damages everything inside the beam cone.
func (w *World) resolveBeam() {
	if !w.beam.Active {
		return
	}
	cfg := w.cfg.Beam
	spec := catalog.Spec(catalog.WeaponInfernalRay)
	dmg := BeamDamage(spec, cfg.DamageGrowth, w.beam.Duration, w.ship.Hull.AttackPower)

	for _, e := range w.enemies {
		if e.Dead() || !w.inCone(e.Pos) {
			continue
		}
		e.HitTimer = w.cfg.Combat.EnemyHitTimer
		if w.rng.Float64() < cfg.SparkChance {
			w.burst(e.Pos, spec.Color, spec.Term, 1, false, false)
		}
		if e.damage(dmg) {
			w.destroyEnemy(e, cfg.KillCharge, cfg.KillBurst, e.Spec.Color, e.Spec.Term, true)
			w.camera.kick(cfg.KillShake)
		}
	}
	for _, st := range w.structures {
		if st.Depleted() || !w.inCone(st.Pos) {
			continue
		}
		if w.rng.Float64() < cfg.SparkChance {
			w.burst(st.Pos, spec.Color, spec.Term, 1, false, false)
		}
		if st.damage(dmg) {
			w.burst(st.Pos, st.Spec.Color, st.Spec.Term, cfg.KillBurst, true, true)
			w.camera.kick(cfg.KillShake)
		}
	}
}
