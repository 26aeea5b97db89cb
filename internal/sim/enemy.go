package sim

import (
	"math"

	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/core"
)

// Enemy is a hostile ship. Variant behavior comes from the behaviors table,
// keyed by Kind.
type Enemy struct {
	ID        int
	Kind      catalog.EnemyKind
	Spec      catalog.EnemySpec
	Pos       core.Vec2
	Vel       core.Vec2
	Angle     float64
	Radius    float64
	Health    float64
	MaxHealth float64
	HitTimer  int

	lastBrood float64 // sim clock ms
	removed   bool
}

// Dead reports whether the enemy must be ignored by every later check.
func (e *Enemy) Dead() bool {
	return e.removed || e.Health <= 0
}

// damage subtracts amount and reports whether this hit was lethal.
// Health is clamped at zero once the enemy dies.
func (e *Enemy) damage(amount float64) bool {
	if e.Dead() {
		return false
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		return true
	}
	return false
}

// behavior is the per-kind extension of the base pursuit movement.
type behavior struct {
	// steer adjusts the heading toward the ship before moving.
	steer func(w *World, e *Enemy, heading float64) float64
	// extra runs after moving.
	extra func(w *World, e *Enemy)
}

var behaviors = map[catalog.EnemyKind]behavior{
	catalog.EnemyKamikaze:   {steer: kamikazeWobble},
	catalog.EnemyMothership: {extra: mothershipBrood},
}

// kamikazeWobble oversteers on a sine of the sim clock.
func kamikazeWobble(w *World, e *Enemy, heading float64) float64 {
	return heading + math.Sin(w.now*0.01)*0.2
}

// mothershipBrood launches a scout next to the mothership on a fixed interval.
func mothershipBrood(w *World, e *Enemy) {
	cfg := w.cfg.Spawn
	if w.now-e.lastBrood <= cfg.BroodIntervalMs {
		return
	}
	e.lastBrood = w.now
	if w.liveEnemies() >= w.enemyCap() {
		return
	}
	ang := w.rng.Float64() * 2 * math.Pi
	w.spawnEnemy(catalog.EnemyScout, e.Pos.Add(core.Heading(ang).Scale(cfg.BroodOffset)))
}

func (w *World) spawnEnemy(kind catalog.EnemyKind, pos core.Vec2) *Enemy {
	spec := catalog.Enemy(kind)
	w.nextID++
	e := &Enemy{
		ID:        w.nextID,
		Kind:      kind,
		Spec:      spec,
		Pos:       pos,
		Angle:     pos.Bearing(w.ship.Pos),
		Radius:    spec.Radius,
		Health:    spec.Health,
		MaxHealth: spec.Health,
		// Broods on its first update.
		lastBrood: w.now - w.cfg.Spawn.BroodIntervalMs,
	}
	w.enemies = append(w.enemies, e)
	return e
}

// updateEnemies moves every live enemy toward the ship.
func (w *World) updateEnemies() {
	dist := w.frame.ExplorationDistance
	// Broods are appended during the loop; only enemies alive at frame start move.
	n := len(w.enemies)
	for i := 0; i < n; i++ {
		e := w.enemies[i]
		if e.Dead() {
			continue
		}
		b := behaviors[e.Kind]

		heading := e.Pos.Bearing(w.ship.Pos)
		if b.steer != nil {
			heading = b.steer(w, e, heading)
		}
		e.Angle = heading
		speed := w.difficulty.Speed(e.Spec.Speed, dist, w.tick)
		e.Vel = core.Heading(heading).Scale(speed)
		e.Pos = e.Pos.Add(e.Vel)
		if e.HitTimer > 0 {
			e.HitTimer--
		}

		if b.extra != nil {
			b.extra(w, e)
		}
	}
}

// destroyEnemy removes e and pays out its reward.
func (w *World) destroyEnemy(e *Enemy, charge float64, burst int, color string, term core.Color, dropShard bool) {
	e.Health = 0
	e.removed = true

	w.emit(scoreUpdate(e.Spec.Score, charge))
	w.burst(e.Pos, color, term, burst, true, true)

	if dropShard && w.rng.Float64() < w.cfg.Combat.ShardDropChance {
		w.dropShard(e.Pos)
	}
	w.creditHubKill(e.Pos)
}

func (w *World) liveEnemies() int {
	n := 0
	for _, e := range w.enemies {
		if !e.Dead() {
			n++
		}
	}
	return n
}

func (w *World) enemyCap() int {
	return w.difficulty.EnemyCap(w.cfg.Spawn.MaxEnemies, w.frame.ExplorationDistance, w.tick)
}
