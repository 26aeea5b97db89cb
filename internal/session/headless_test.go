package session

import (
	"context"
	"testing"

	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
)

func headlessRun(t *testing.T, seed int64, ticks int) RunResult {
	t.Helper()
	res, err := RunHeadless(context.Background(), NewStory(),
		core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}, ticks, NewAutopilot(seed))
	if err != nil {
		t.Fatalf("RunHeadless() error = %v", err)
	}
	return res
}

func TestRunHeadlessDeterministic(t *testing.T) {
	a := headlessRun(t, 42, 600)
	b := headlessRun(t, 42, 600)
	if a != b {
		t.Errorf("RunHeadless() = %+v then %+v, expected equal results", a, b)
	}
	if a.Ticks == 0 || a.Ticks > 600 {
		t.Errorf("Ticks = %d, expected 1..600", a.Ticks)
	}
	if a.Status == gamestate.StatusInitial {
		t.Error("autopilot should launch the run")
	}
}

func TestRunHeadlessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunHeadless(ctx, NewStory(), core.RuntimeConfig{TickRate: 60, Seed: 1}, 100, NewAutopilot(1))
	if err == nil {
		t.Error("RunHeadless() error = nil, expected context error")
	}
}

func TestAutopilotLaunchesFirst(t *testing.T) {
	p := NewAutopilot(3)
	if f := p.Frame(0, gamestate.Initial()); !f.Has(core.ActionConfirm) || f.Has(core.ActionFire) {
		t.Error("first frame should only confirm")
	}
	f := p.Frame(1, gamestate.Initial())
	if !f.Has(core.ActionThrust) || !f.Has(core.ActionFire) {
		t.Error("later frames should thrust and fire")
	}
	if f.Has(core.ActionTurnLeft) && f.Has(core.ActionTurnRight) {
		t.Error("autopilot turns one way at a time")
	}
}

func TestUseHullIsPerSession(t *testing.T) {
	titan, _ := catalog.Hull(catalog.HullTitan)

	picked := NewStory()
	picked.UseHull(titan)
	picked.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})
	t.Cleanup(picked.Close)

	other := NewStory()
	other.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})
	t.Cleanup(other.Close)

	if got := picked.Hull().Model; got != catalog.HullTitan {
		t.Errorf("Hull().Model = %v, expected %v", got, catalog.HullTitan)
	}
	if got := other.Hull().Model; got == catalog.HullTitan {
		t.Errorf("other session Hull().Model = %v, expected the default", got)
	}
}
