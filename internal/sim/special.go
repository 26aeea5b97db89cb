package sim

import (
	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
)

// triggerPurge fires the quantum purge when the special charge is full:
// every live enemy in range is destroyed and an expanding wave is left behind.
func (w *World) triggerPurge() {
	cfg := w.cfg.Special
	if w.frame.SpecialCharge < cfg.Cost {
		return
	}
	w.frame.SpecialCharge -= cfg.Cost

	pos := w.ship.Pos
	w.waves.Acquire(func(wv *Wave) {
		wv.Pos = pos
		wv.Life = 1
		wv.Growth = cfg.WaveGrowth
		wv.Decay = cfg.WaveDecay
	})
	w.cues.PlaySpecial()

	for _, e := range w.enemies {
		if e.Dead() || e.Pos.Dist(pos) >= cfg.Radius {
			continue
		}
		w.destroyEnemy(e, 0, 40, "#ffffff", core.ColorBrightWhite, false)
	}

	w.emit(gamestate.Update{
		SpecialCharge: -cfg.Cost,
		Corruption:    -cfg.CorruptionRelief,
	})
	w.camera.kick(cfg.Shake)
}
