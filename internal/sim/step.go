package sim

import (
	"math"

	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
)

// Step advances the world by one frame. st is the holder snapshot taken at
// frame start; every state change of the frame is submitted once, at the end.
func (w *World) Step(st gamestate.State, in core.InputFrame) {
	w.frame = st
	w.tick++
	w.now += w.msPerTick

	if w.ship.Warp.Active {
		w.advanceWarp()
		w.setThrust(false, 0)
	} else {
		w.steer(in)
	}

	if in.Has(core.ActionNextWeapon) {
		w.cycleWeapon()
	}
	w.fire(in.Has(core.ActionFire))
	if in.Has(core.ActionSpecial) {
		w.triggerPurge()
	}

	w.applyGravity()
	w.integrateShip()

	w.updateEnemies()
	w.updatePooled()

	w.resolveContacts()
	w.resolveLasers()
	w.resolveBeam()
	w.resolvePickups()

	if w.mode == ModeStory {
		w.directSpawns()
		w.checkMission()
	}

	w.companion.update(w)
	w.discover()
	w.sweep()

	w.camera.update(w.rng, w.ship.Pos, w.cfg.Camera.FollowGain, w.cfg.Camera.ShakeDecay)
	if w.flash > 0 {
		w.flash--
	}
	if w.boostFrames > 0 {
		w.boostFrames--
	}

	if w.beam.Temperature != w.publishedTemp {
		w.publishedTemp = w.beam.Temperature
		w.emit(gamestate.Update{BeamTemperature: gamestate.Ptr(w.beam.Temperature)})
	}
	w.flush()
}

// steer applies stick or keyboard control to the ship.
func (w *World) steer(in core.InputFrame) {
	ph := w.cfg.Physics
	s := &w.ship

	power := s.Hull.Thrust * ph.ThrustSensitivity
	if w.mode == ModeOpenWorld {
		power = ph.OpenWorldThrust
	}
	if w.boostFrames > 0 {
		power *= w.boost
	}

	thrust := 0.0
	if in.Stick.Active && in.Stick.Thrust > ph.StickDeadZone {
		s.Angle = in.Stick.Angle
		thrust = power * in.Stick.Thrust
	} else {
		turn := ph.TurnSpeed * ph.TurnSensitivity
		if in.Has(core.ActionTurnLeft) {
			s.Angle += turn
		}
		if in.Has(core.ActionTurnRight) {
			s.Angle -= turn
		}
		switch {
		case in.Has(core.ActionThrust):
			thrust = power
		case in.Has(core.ActionReverse):
			thrust = -power * ph.ReverseFactor
		}
	}

	if thrust != 0 {
		s.Vel = s.Vel.Add(core.Heading(s.Angle).Scale(thrust))
	}
	intensity := 0.0
	if power > 0 {
		intensity = core.ClampF(math.Abs(thrust)/power, 0, 1)
	}
	w.setThrust(thrust != 0, intensity)
}

// integrateShip moves the ship, bleeds speed and credits exploration.
func (w *World) integrateShip() {
	s := &w.ship
	if s.HitTimer > 0 {
		s.HitTimer--
	}
	if s.Warp.Active {
		return
	}
	if s.Warp.Cooldown > 0 {
		s.Warp.Cooldown--
	}

	friction := w.cfg.Physics.Friction
	if w.mode == ModeOpenWorld {
		friction = w.cfg.Physics.OpenWorldFriction
	}
	s.Pos = s.Pos.Add(s.Vel)
	s.Vel = s.Vel.Scale(friction)

	if w.mode == ModeOpenWorld {
		s.Pos = core.V(core.ClampF(s.Pos.X, 0, w.size), core.ClampF(s.Pos.Y, 0, w.size))
	}

	if d := s.Speed() * w.cfg.Physics.ExplorationScale; d > 0 {
		w.frame.ExplorationDistance += d
		w.emit(gamestate.Update{ExplorationDistance: d})
	}
}

func (w *World) updatePooled() {
	w.lasers.Each(func(l *Laser) { l.Update() })
	w.particles.Each(func(p *Particle) { p.Update() })
	w.shards.Each(func(s *Shard) { s.Update() })
	w.waves.Each(func(wv *Wave) { wv.Update() })
}

// discover marks structures and blackholes near the ship as found.
func (w *World) discover() {
	pos := w.ship.Pos
	for _, st := range w.structures {
		if !st.Discovered && st.Pos.Dist(pos) < st.Radius*w.cfg.World.DiscoverFactor {
			st.Discovered = true
		}
	}
	for _, bh := range w.blackholes {
		if !bh.Discovered && bh.Pos.Dist(pos) < bh.Radius*w.cfg.Hazards.DiscoverFactor {
			bh.Discovered = true
		}
	}
	if w.fog != nil {
		w.fog.Explore(pos)
	}
}

// sweep returns dead pooled entities and drops removed enemies.
func (w *World) sweep() {
	w.lasers.Sweep(func(l *Laser) bool { return l.Alive() })
	w.particles.Sweep(func(p *Particle) bool { return p.Life > 0 })
	w.shards.Sweep(func(s *Shard) bool { return !s.Collected })
	w.waves.Sweep(func(wv *Wave) bool { return wv.Life > 0 })

	live := w.enemies[:0]
	for _, e := range w.enemies {
		if !e.Dead() {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(w.enemies); i++ {
		w.enemies[i] = nil
	}
	w.enemies = live
}
