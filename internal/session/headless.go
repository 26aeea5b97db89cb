package session

import (
	"context"
	"math/rand"

	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
)

// Pilot produces the input for one tick of a headless run.
type Pilot interface {
	Frame(tick int, st gamestate.State) core.InputFrame
}

// Autopilot flies a seeded pattern: full thrust and fire, switching turn
// direction at random intervals and firing the special when charged.
type Autopilot struct {
	rng      *rand.Rand
	turn     core.Action
	nextTurn int
}

// NewAutopilot creates an autopilot. Equal seeds fly equal patterns.
func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{rng: rand.New(rand.NewSource(seed)), turn: core.ActionTurnLeft}
}

// Frame implements Pilot.
func (a *Autopilot) Frame(tick int, st gamestate.State) core.InputFrame {
	f := core.NewInputFrame()
	if tick == 0 {
		f.Set(core.ActionConfirm)
		return f
	}
	if tick >= a.nextTurn {
		a.nextTurn = tick + 30 + a.rng.Intn(120)
		switch a.rng.Intn(3) {
		case 0:
			a.turn = core.ActionTurnLeft
		case 1:
			a.turn = core.ActionTurnRight
		default:
			a.turn = core.ActionNone
		}
	}
	if a.turn != core.ActionNone {
		f.Set(a.turn)
	}
	f.Set(core.ActionThrust)
	f.Set(core.ActionFire)
	if st.SpecialCharge >= 100 {
		f.Set(core.ActionSpecial)
	}
	return f
}

// RunResult summarizes a headless run.
type RunResult struct {
	Seed     int64
	Ticks    int
	Score    int
	Distance float64
	Status   gamestate.Status
	Hash     uint64
}

// RunHeadless resets s with cfg and steps it until maxTicks have passed, the
// run ends or ctx is cancelled.
func RunHeadless(ctx context.Context, s *Session, cfg core.RuntimeConfig, maxTicks int, pilot Pilot) (RunResult, error) {
	s.Reset(cfg)
	defer s.Close()

	tick := 0
	for ; tick < maxTicks; tick++ {
		if tick%256 == 0 {
			if err := ctx.Err(); err != nil {
				return RunResult{}, err
			}
		}
		res := s.Step(pilot.Frame(tick, s.Snapshot()))
		if res.State.GameOver {
			tick++
			break
		}
	}

	st := s.Snapshot()
	return RunResult{
		Seed:     cfg.Seed,
		Ticks:    tick,
		Score:    st.Score,
		Distance: st.ExplorationDistance,
		Status:   st.Status,
		Hash:     s.world.Hash(),
	}, nil
}
