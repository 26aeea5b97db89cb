package sim

import (
	"math"
	"testing"

	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/config"
	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
)

func runningState() gamestate.State {
	st := gamestate.Initial()
	st.Status = gamestate.StatusRunning
	return st
}

func TestWarpLanding(t *testing.T) {
	w, h, _ := newTestWorld(t, nil)
	start := w.Ship().Pos
	exit := start.Add(core.V(8000, 0))
	w.addBlackholePair(start.Add(core.V(50, 0)), exit)

	step(w, h, core.NewInputFrame())
	if !w.Ship().Warp.Active {
		t.Fatal("crossing the event horizon should start a warp")
	}

	// Controls are ignored mid-warp.
	in := core.NewInputFrame()
	in.Set(core.ActionTurnLeft)
	step(w, h, in)
	if w.Ship().Angle != math.Pi/2 {
		t.Errorf("Angle changed during warp: %v", w.Ship().Angle)
	}

	stepN(w, h, 89, core.NewInputFrame())
	s := w.Ship()
	if s.Warp.Active {
		t.Fatalf("warp still active after %d frames", s.Warp.Frame)
	}
	if s.Warp.Cooldown == 0 {
		t.Error("landing should start the re-entry cooldown")
	}
	d := s.Pos.Dist(exit)
	if d < 170 || d > 290 {
		t.Errorf("landing distance from exit = %v, expected 180..280", d)
	}
	if got := w.Companion().LastMessage().Text; got != "WORMHOLE TRAVERSAL COMPLETE" {
		t.Errorf("companion message = %q", got)
	}
}

func TestBoostExpiresDuringWarp(t *testing.T) {
	w, h, _ := newTestWorld(t, nil)
	start := w.Ship().Pos
	w.addBlackholePair(start.Add(core.V(50, 0)), start.Add(core.V(8000, 0)))
	w.Boost(1.5, 600)

	step(w, h, core.NewInputFrame())
	if !w.Ship().Warp.Active {
		t.Fatal("crossing the event horizon should start a warp")
	}

	stepN(w, h, 598, core.NewInputFrame())
	if !w.Boosted() {
		t.Fatal("Boosted() = false after 599 frames, expected true")
	}
	step(w, h, core.NewInputFrame())
	if w.Boosted() {
		t.Errorf("Boosted() = true after 600 frames, expected the warp to count against the boost")
	}
}

func TestPullSkipsNearSource(t *testing.T) {
	tests := []struct {
		name string
		p    core.Vec2
		zero bool
	}{
		{"inside min distance", core.V(5, 0), true},
		{"outside", core.V(100, 0), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pull(core.V(0, 0), 5000, tc.p, 100, 0.01, 10)
			if (got == core.Vec2{}) != tc.zero {
				t.Errorf("pull() = %v, zero expected %v", got, tc.zero)
			}
			if !tc.zero && got.X >= 0 {
				t.Errorf("pull() = %v, expected toward the source", got)
			}
		})
	}
}

func TestOpenWorldClampsShip(t *testing.T) {
	cfg := config.DefaultSimConfig()
	cfg.World.Megastructures = 0
	cfg.Hazards.OpenWorldPairs = 0
	w := NewWorld(Options{Mode: ModeOpenWorld, Config: cfg, Seed: 3})
	w.Ship().Pos = core.V(10, 10)
	w.Ship().Vel = core.V(-50, -50)

	w.Step(runningState(), core.NewInputFrame())

	if p := w.Ship().Pos; p.X != 0 || p.Y != 0 {
		t.Errorf("ship at %v, expected clamped to (0, 0)", p)
	}
}

func TestOpenWorldDiscovery(t *testing.T) {
	cfg := config.DefaultSimConfig()
	cfg.World.Megastructures = 0
	cfg.Hazards.OpenWorldPairs = 0
	w := NewWorld(Options{Mode: ModeOpenWorld, Config: cfg, Seed: 3})
	st := w.addStructure(catalog.StructureCrystal, w.Ship().Pos.Add(core.V(800, 0)))

	w.Step(runningState(), core.NewInputFrame())

	if !st.Discovered {
		t.Error("crystal within radius*3 should be discovered")
	}
	if found, total := w.Discovered(); found != 1 || total != 1 {
		t.Errorf("Discovered() = %d/%d, expected 1/1", found, total)
	}
}

func TestFogExploresNeighbourhood(t *testing.T) {
	f := NewFog(2000)
	f.Explore(core.V(5000, 5000))

	if f.Count() != 9 {
		t.Errorf("Count() = %d, expected 9", f.Count())
	}
	tests := []struct {
		p        core.Vec2
		expected bool
	}{
		{core.V(5000, 5000), true},
		{core.V(2000, 2000), true},
		{core.V(7999, 7999), true},
		{core.V(8000, 5000), false},
		{core.V(-1, 5000), false},
	}
	for _, tc := range tests {
		if got := f.Explored(tc.p); got != tc.expected {
			t.Errorf("Explored(%v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}

	f.Explore(core.V(5100, 5100))
	if f.Count() != 9 {
		t.Errorf("re-exploring the same chunk changed Count() to %d", f.Count())
	}
}
