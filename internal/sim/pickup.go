package sim

import (
	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
	"github.com/jakobmina/quasar-pro/internal/golden"
)

// TreasureKind tags a hub treasure.
type TreasureKind string

// QuantumCore is the only treasure kind hubs carry.
const QuantumCore TreasureKind = "QUANTUM_CORE"

// Treasure is a stationary power-up owned by a golden hub.
type Treasure struct {
	Kind      TreasureKind
	Pos       core.Vec2
	Radius    float64
	Collected bool
}

// GoldenHub is a reward cluster at the golden coordinates of its index.
type GoldenHub struct {
	Index     int
	Pos       core.Vec2
	Radius    float64
	Treasures []Treasure
}

// RingRadius is the radius of the hub's quasiperiodic ring.
func (h *GoldenHub) RingRadius() float64 {
	return h.Radius * golden.RingScale(h.Index)
}

// Remaining counts treasures not yet collected.
func (h *GoldenHub) Remaining() int {
	n := 0
	for _, t := range h.Treasures {
		if !t.Collected {
			n++
		}
	}
	return n
}

// spawnHub places hub n unless it already exists.
func (w *World) spawnHub(n int) *GoldenHub {
	if h := w.hubByIndex(n); h != nil {
		return h
	}
	cfg := w.cfg.Mission
	x, y := golden.HubPosition(n, w.size)
	hub := &GoldenHub{Index: n, Pos: core.V(x, y), Radius: cfg.HubRadius}
	for i := 0; i < cfg.Treasures; i++ {
		off := core.V((w.rng.Float64()-0.5)*cfg.TreasureSpread, (w.rng.Float64()-0.5)*cfg.TreasureSpread)
		hub.Treasures = append(hub.Treasures, Treasure{Kind: QuantumCore, Pos: hub.Pos.Add(off), Radius: 15})
	}
	w.hubs = append(w.hubs, hub)
	return hub
}

func (w *World) hubByIndex(n int) *GoldenHub {
	for _, h := range w.hubs {
		if h.Index == n {
			return h
		}
	}
	return nil
}

// targetHub is the hub the current STABILIZE_HUB mission points at.
func (w *World) targetHub() *GoldenHub {
	if w.frame.Mission.Kind != gamestate.MissionStabilizeHub {
		return nil
	}
	return w.hubByIndex(w.frame.Mission.TargetIndex)
}

// creditHubKill counts a kill inside the target hub toward the mission.
func (w *World) creditHubKill(pos core.Vec2) {
	if h := w.targetHub(); h != nil && pos.Dist(h.Pos) < h.Radius {
		w.emit(gamestate.Update{MissionProgress: 1})
	}
}

func (w *World) dropShard(pos core.Vec2) {
	friction := w.cfg.Combat.ShardFriction
	w.shards.Acquire(func(s *Shard) {
		s.Pos = pos
		s.Vel = core.V((w.rng.Float64()-0.5)*12, (w.rng.Float64()-0.5)*12)
		s.Friction = friction
	})
}

// resolvePickups collects shards and treasures within reach of the ship.
func (w *World) resolvePickups() {
	cfg := w.cfg.Combat
	ship := &w.ship

	for _, s := range w.shards.Active() {
		if s.Collected || s.Pos.Dist(ship.Pos) >= cfg.PickupRadius {
			continue
		}
		s.Collected = true

		u := gamestate.Update{
			Integrity:  cfg.ShardIntegrity,
			Corruption: -cfg.ShardCorruption,
			Score:      cfg.ShardScore,
		}
		w.burst(ship.Pos, "#22c55e", core.ColorGreen, 10, true, false)
		if w.rng.Float64() < cfg.ShardUpgradeChance {
			w.frame.WeaponLevel++
			u.WeaponLevel = gamestate.Ptr(w.frame.WeaponLevel)
			w.camera.kick(30)
			w.burst(ship.Pos, "#ffffff", core.ColorBrightWhite, 50, true, true)
		}
		w.emit(u)
		w.cues.PlayPickup()
	}

	for _, h := range w.hubs {
		for i := range h.Treasures {
			t := &h.Treasures[i]
			if t.Collected || t.Pos.Dist(ship.Pos) >= cfg.PickupRadius {
				continue
			}
			t.Collected = true

			level := core.Max(w.frame.WeaponLevel, cfg.TreasureWeaponLevel)
			w.frame.WeaponLevel = level
			w.emit(gamestate.Update{
				WeaponLevel:  gamestate.Ptr(level),
				MaxIntegrity: cfg.TreasureMaxIntegrity,
				Score:        cfg.TreasureScore,
				Messages:     []string{"TREASURE_FOUND: Aether Core salvaged."},
			})
			if th := w.targetHub(); th == h {
				w.emit(gamestate.Update{MissionProgress: 1})
			}
			w.burst(ship.Pos, "#a855f7", core.ColorViolet, 40, true, true)
			w.cues.PlayPickup()
		}
	}
}
