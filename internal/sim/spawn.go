package sim

import (
	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
	"github.com/jakobmina/quasar-pro/internal/golden"
)

// SpawnThresholds are the golden-value cut points of ArchetypeFor.
type SpawnThresholds struct {
	Mothership float64
	Kamikaze   float64
	Scout      float64
}

// ArchetypeFor picks the enemy kind of spawn slot k by thresholding the
// golden value of k.
func ArchetypeFor(k int, cfg SpawnThresholds) catalog.EnemyKind {
	v := golden.Value(float64(k))
	switch {
	case v > cfg.Mothership:
		return catalog.EnemyMothership
	case v > cfg.Kamikaze:
		return catalog.EnemyKamikaze
	case v > cfg.Scout:
		return catalog.EnemyScout
	default:
		return catalog.EnemyInterceptor
	}
}

// directSpawns spawns one enemy whenever exploration distance enters a new
// slot and the field is below the cap.
func (w *World) directSpawns() {
	cfg := w.cfg.Spawn
	dist := w.frame.ExplorationDistance
	step := w.difficulty.SpawnStep(cfg.Step, dist, w.tick)
	if step <= 0 {
		return
	}
	slot := int(dist / step)
	if slot <= w.spawnSlot {
		return
	}
	if w.liveEnemies() >= w.enemyCap() {
		return
	}
	w.spawnSlot = slot

	kind := ArchetypeFor(slot, SpawnThresholds{
		Mothership: cfg.MothershipThreshold,
		Kamikaze:   cfg.KamikazeThreshold,
		Scout:      cfg.ScoutThreshold,
	})
	pos := w.ship.Pos.Add(core.Heading(golden.Bearing(slot)).Scale(cfg.Distance))
	w.spawnEnemy(kind, pos)

	if kind == catalog.EnemyMothership {
		w.emit(gamestate.Update{Messages: []string{"WARNING: MotherShip detected!"}})
	}
}
