package sim

import (
	"github.com/jakobmina/quasar-pro/internal/gamestate"
)

// checkMission advances the mission chain on a sim-clock interval:
// EXPLORE completes into STABILIZE_HUB at a freshly spawned hub, which
// completes into the next EXPLORE.
func (w *World) checkMission() {
	cfg := w.cfg.Mission
	if w.now-w.lastMissionCheck <= cfg.CheckIntervalMs {
		return
	}
	w.lastMissionCheck = w.now

	m := w.frame.Mission
	dist := w.frame.ExplorationDistance
	switch m.Kind {
	case gamestate.MissionExplore:
		if dist < m.Goal {
			return
		}
		idx := int(dist / cfg.HubSpacing)
		w.spawnHub(idx)
		next := gamestate.Mission{
			Kind:        gamestate.MissionStabilizeHub,
			Title:       "Hub Stabilization",
			Description: "Defend against the entropic surge near the Golden Hub.",
			TargetIndex: idx,
			Goal:        float64(cfg.HubGoal),
		}
		w.frame.Mission = next
		w.emit(gamestate.Update{
			Mission: gamestate.Ptr(next),
			Messages: []string{
				"MISSION_COMPLETE: " + m.Title,
				"AETHER: You found a stable pocket.",
			},
		})
	case gamestate.MissionStabilizeHub:
		if m.Progress < m.Goal {
			return
		}
		next := gamestate.Mission{
			Kind:        gamestate.MissionExplore,
			Title:       "Deep Explore",
			Description: "Push further into the neural void.",
			Goal:        dist + cfg.ExploreGoal,
		}
		w.frame.Mission = next
		w.emit(gamestate.Update{
			Mission:  gamestate.Ptr(next),
			Messages: []string{"MISSION_COMPLETE: " + m.Title},
		})
	}
}
