package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jakobmina/quasar-pro/internal/advisor"
	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
	"github.com/jakobmina/quasar-pro/internal/registry"
)

func newRunning(t *testing.T) *Session {
	t.Helper()
	s := NewStory()
	s.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	t.Cleanup(s.Close)

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	s.Step(in)
	if got := s.Snapshot().Status; got != gamestate.StatusRunning {
		t.Fatalf("Status = %v after confirm, expected RUNNING", got)
	}
	return s
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"story", "openworld"} {
		if !registry.Exists(id) {
			t.Errorf("Exists(%q) = false, expected true", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestStepBeforeReset(t *testing.T) {
	s := NewStory()
	s.Step(press(core.ActionConfirm))
	s.Render(core.NewScreen(80, 24))
}

func TestInitialWaitsForLaunch(t *testing.T) {
	s := NewStory()
	s.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})
	defer s.Close()

	for i := 0; i < 10; i++ {
		s.Step(press(core.ActionThrust))
	}
	if got := s.Snapshot().Status; got != gamestate.StatusInitial {
		t.Errorf("Status = %v, expected INITIAL", got)
	}
	if s.World().Tick() != 0 {
		t.Errorf("world advanced %d ticks before launch", s.World().Tick())
	}

	s.Step(press(core.ActionFire))
	if got := s.Snapshot().Status; got != gamestate.StatusRunning {
		t.Errorf("Status = %v after fire, expected RUNNING", got)
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	s := newRunning(t)
	s.Step(core.NewInputFrame())
	ticks := s.World().Tick()

	s.Step(press(core.ActionPause))
	if !s.State().Paused {
		t.Fatal("State().Paused = false after pause")
	}
	for i := 0; i < 20; i++ {
		s.Step(press(core.ActionThrust))
	}
	if s.World().Tick() != ticks {
		t.Errorf("world advanced while paused: %d -> %d", ticks, s.World().Tick())
	}

	s.Step(press(core.ActionPause))
	s.Step(core.NewInputFrame())
	if s.World().Tick() != ticks+1 {
		t.Errorf("Tick() = %d after resume, expected %d", s.World().Tick(), ticks+1)
	}
}

func TestCorruptionDrift(t *testing.T) {
	s := newRunning(t)
	for i := 0; i < 70; i++ {
		s.Step(core.NewInputFrame())
	}

	st := s.Snapshot()
	if st.Corruption < 0.149 || st.Corruption > 0.151 {
		t.Errorf("Corruption = %v, expected one drift of 0.15", st.Corruption)
	}
	if st.Integrity > 99.91 || st.Integrity < 99.89 {
		t.Errorf("Integrity = %v, expected 99.9", st.Integrity)
	}
}

func TestHullHealthBonus(t *testing.T) {
	titan, _ := catalog.Hull(catalog.HullTitan)
	SetHull(titan)
	t.Cleanup(func() { SetHull(catalog.ShipConfig{}) })

	s := NewStory()
	s.Reset(core.RuntimeConfig{TickRate: 60})
	defer s.Close()

	st := s.Snapshot()
	if st.MaxIntegrity != 150 || st.Integrity != 150 {
		t.Errorf("integrity = %v/%v, expected 150/150", st.Integrity, st.MaxIntegrity)
	}
	if s.Hull().Model != catalog.HullTitan {
		t.Errorf("Hull() = %v, expected TITAN", s.Hull().Model)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	s := newRunning(t)
	s.holder.Apply(gamestate.Update{Score: 900, Lives: -5})

	if !s.State().GameOver {
		t.Fatal("State().GameOver = false with no lives left")
	}
	ticks := s.World().Tick()
	s.Step(core.NewInputFrame())
	if s.World().Tick() != ticks {
		t.Error("world advanced after game over")
	}

	s.Step(press(core.ActionRestart))
	st := s.Snapshot()
	if st.Status != gamestate.StatusInitial || st.Lives != 5 || st.Score != 0 {
		t.Errorf("after restart: status=%v lives=%d score=%d, expected INITIAL/5/0", st.Status, st.Lives, st.Score)
	}
	if st.HighScore != 900 {
		t.Errorf("HighScore = %d, expected 900 kept across restart", st.HighScore)
	}
}

func TestAdviceAppliesBuff(t *testing.T) {
	SetAdvisor(advisor.ProviderFunc(func(context.Context, advisor.Request) (advisor.Directive, error) {
		return advisor.Directive{Directive: "PRIME", Buff: advisor.BuffEnergyRefill, Message: "charged"}, nil
	}), time.Second)
	t.Cleanup(func() { SetAdvisor(nil, 0) })

	s := newRunning(t)
	s.Step(press(core.ActionAdvise))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && s.Snapshot().SpecialCharge < 100 {
		s.Step(core.NewInputFrame())
		time.Sleep(time.Millisecond)
	}
	st := s.Snapshot()
	if st.SpecialCharge != 100 {
		t.Fatalf("SpecialCharge = %v, expected 100 after ENERGY_REFILL", st.SpecialCharge)
	}
	if !strings.HasPrefix(st.LastMessage(), "AI_DIRECTIVE: PRIME") {
		t.Errorf("LastMessage() = %q, expected directive message", st.LastMessage())
	}
}

func TestRenderOverlays(t *testing.T) {
	s := NewStory()
	s.Reset(core.RuntimeConfig{TickRate: 60})
	defer s.Close()

	dst := core.NewScreen(80, 24)
	s.Render(dst)
	if !strings.Contains(dst.String(), "Q U A S A R") {
		t.Error("initial frame should show the title overlay")
	}

	s.Step(press(core.ActionConfirm))
	s.Step(press(core.ActionPause))
	s.Render(dst)
	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("paused frame should show the pause overlay")
	}

	s.Render(nil)
}

func TestSetDifficultyPreset(t *testing.T) {
	t.Cleanup(func() { SetDifficultyPreset("") })

	tests := []struct {
		in       string
		expected string
	}{
		{"hard", "hard"},
		{"fixed", "fixed"},
		{"bogus", ""},
		{"", ""},
	}
	for _, tc := range tests {
		SetDifficultyPreset(tc.in)
		if string(difficultyPreset) != tc.expected {
			t.Errorf("SetDifficultyPreset(%q) -> %q, expected %q", tc.in, difficultyPreset, tc.expected)
		}
	}
}
