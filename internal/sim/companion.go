package sim

import (
	"math"

	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/core"
)

// CompanionMode is the wingman behavior.
type CompanionMode string

const (
	CompanionFollow CompanionMode = "FOLLOW"
	CompanionDefend CompanionMode = "DEFEND"
	CompanionScout  CompanionMode = "SCOUT"
	CompanionAttack CompanionMode = "ATTACK"
)

// TargetKind says which collection a TargetRef points into.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetEnemy
	TargetStructure
)

// TargetRef names an enemy or structure by id. It never owns the target and
// is resolved again every frame since combat may remove the enemy.
type TargetRef struct {
	Kind TargetKind
	ID   int
}

// CompanionMessage is a short radio line.
type CompanionMessage struct {
	Text string
	At   float64 // sim clock ms
}

// Companion is the AI wingman.
type Companion struct {
	Pos        core.Vec2
	Vel        core.Vec2
	Mode       CompanionMode
	Target     TargetRef
	OrbitAngle float64
	Alert      float64 // 0..100
	Messages   []CompanionMessage

	lastSaid float64
	spoken   bool
}

// say queues a message unless the previous one is too recent.
// Only the newest few messages are kept.
func (c *Companion) say(w *World, text string) {
	cfg := w.cfg.Companion
	if c.spoken && w.now-c.lastSaid < cfg.MessageGapMs {
		return
	}
	c.spoken = true
	c.lastSaid = w.now
	c.Messages = append(c.Messages, CompanionMessage{Text: text, At: w.now})
	if over := len(c.Messages) - cfg.MaxMessages; over > 0 {
		c.Messages = append([]CompanionMessage(nil), c.Messages[over:]...)
	}
}

// LastMessage returns the newest message, or an empty one.
func (c *Companion) LastMessage() CompanionMessage {
	if len(c.Messages) == 0 {
		return CompanionMessage{}
	}
	return c.Messages[len(c.Messages)-1]
}

// think picks the mode for this frame. The nearest enemy inside the threat
// radius wins over the nearest undiscovered structure inside the scout radius.
func (c *Companion) think(w *World) {
	cfg := w.cfg.Companion
	origin := w.ship.Pos

	var threat *Enemy
	threatDist := math.Inf(1)
	for _, e := range w.enemies {
		if e.Dead() {
			continue
		}
		if d := e.Pos.Dist(origin); d < cfg.ThreatRadius && d < threatDist {
			threat, threatDist = e, d
		}
	}

	var anomaly *Structure
	anomalyDist := math.Inf(1)
	for _, st := range w.structures {
		if st.Discovered || st.Depleted() {
			continue
		}
		if d := st.Pos.Dist(origin); d < cfg.ScoutRadius && d < anomalyDist {
			anomaly, anomalyDist = st, d
		}
	}

	switch {
	case threat != nil:
		c.Mode = CompanionDefend
		if c.Alert >= cfg.AttackAlert && (threat.Kind == catalog.EnemyKamikaze || threat.Kind == catalog.EnemyMothership) {
			c.Mode = CompanionAttack
		}
		c.Target = TargetRef{Kind: TargetEnemy, ID: threat.ID}
		c.Alert = math.Min(100, c.Alert+2)
		c.say(w, "THREAT DETECTED - ENGAGING")
	case anomaly != nil:
		c.Mode = CompanionScout
		c.Target = TargetRef{Kind: TargetStructure, ID: anomaly.ID}
		c.Alert = math.Max(0, c.Alert-1)
		c.say(w, "ANOMALY DETECTED - INVESTIGATING")
	default:
		c.Mode = CompanionFollow
		c.Target = TargetRef{}
		c.Alert = math.Max(0, c.Alert-1)
	}
}

// resolve looks the target up again; a destroyed target resolves to nothing.
func (c *Companion) resolve(w *World) (core.Vec2, *Enemy, bool) {
	switch c.Target.Kind {
	case TargetEnemy:
		if e := w.enemyByID(c.Target.ID); e != nil && !e.Dead() {
			return e.Pos, e, true
		}
	case TargetStructure:
		if st := w.structureByID(c.Target.ID); st != nil {
			return st.Pos, nil, true
		}
	}
	return core.Vec2{}, nil, false
}

// update runs think and moves the companion by damped pursuit of the
// mode's anchor point.
func (c *Companion) update(w *World) {
	cfg := w.cfg.Companion
	c.think(w)

	origin := w.ship.Pos
	anchor := origin
	target, enemy, ok := c.resolve(w)

	switch c.Mode {
	case CompanionFollow:
		c.OrbitAngle += cfg.OrbitSpeed
		anchor = origin.Add(core.V(math.Cos(c.OrbitAngle), math.Sin(c.OrbitAngle)).Scale(cfg.OrbitRadius))
	case CompanionDefend:
		if ok {
			away := origin.Sub(target)
			if l := away.Len(); l > 0 {
				anchor = origin.Add(away.Scale(cfg.DefendOffset / l))
			}
		}
	case CompanionScout:
		if ok {
			toward := target.Sub(origin)
			if l := toward.Len(); l > 0 {
				anchor = origin.Add(toward.Scale(cfg.ScoutOffset / l))
			}
		}
	case CompanionAttack:
		if ok {
			anchor = target
		}
	}

	c.Vel = c.Vel.Add(anchor.Sub(c.Pos).Scale(cfg.Gain)).Scale(cfg.Damping)
	c.Pos = c.Pos.Add(c.Vel)

	if c.Mode == CompanionAttack && enemy != nil && c.Pos.Dist(enemy.Pos) < enemy.Radius+cfg.Radius {
		enemy.HitTimer = w.cfg.Combat.EnemyHitTimer
		if enemy.damage(cfg.RamDamage) {
			w.destroyEnemy(enemy, w.cfg.Combat.KillCharge, w.cfg.Combat.DeathBurst, enemy.Spec.Color, enemy.Spec.Term, true)
		}
	}
}
