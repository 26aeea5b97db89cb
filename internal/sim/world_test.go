package sim

import (
	"math"
	"strings"
	"testing"

	"github.com/jakobmina/quasar-pro/internal/audio"
	"github.com/jakobmina/quasar-pro/internal/config"
	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
)

// newTestWorld builds an empty story world (no structures, no wormholes)
// with a running holder and a cue recorder.
func newTestWorld(t *testing.T, mutate func(*gamestate.State)) (*World, *gamestate.Holder, *audio.Recorder) {
	t.Helper()
	cfg := config.DefaultSimConfig()
	cfg.World.StoryStructures = 0
	cfg.World.Formations = 0
	cfg.World.Debris = 0
	cfg.Hazards.StoryPairs = 0

	st := gamestate.Initial()
	st.Status = gamestate.StatusRunning
	if mutate != nil {
		mutate(&st)
	}
	holder := gamestate.NewHolder()
	holder.Reset(st)

	rec := audio.NewRecorder()
	w := NewWorld(Options{
		Mode:     ModeStory,
		Config:   cfg,
		Seed:     42,
		TickRate: 60,
		Sink:     holder,
		Cues:     rec,
	})
	return w, holder, rec
}

func step(w *World, h *gamestate.Holder, in core.InputFrame) {
	w.Step(h.Snapshot(), in)
}

func stepN(w *World, h *gamestate.Holder, n int, in core.InputFrame) {
	for i := 0; i < n; i++ {
		step(w, h, in)
	}
}

func TestNewWorldStory(t *testing.T) {
	w := NewWorld(Options{Mode: ModeStory, Config: config.DefaultSimConfig(), Seed: 1})

	if w.Size() != 12000 {
		t.Errorf("Size() = %v, expected 12000", w.Size())
	}
	if got := w.Ship().Pos; got != core.V(6000, 6000) {
		t.Errorf("ship start = %v, expected (6000, 6000)", got)
	}
	if got := len(w.Structures()); got != 5+20+50 {
		t.Errorf("structures = %d, expected 75", got)
	}
	if got := len(w.Blackholes()); got != 4 {
		t.Errorf("blackholes = %d, expected 4 (two pairs)", got)
	}
	for _, st := range w.Structures() {
		if st.Pos.X < 0 || st.Pos.X >= 12000 || st.Pos.Y < 0 || st.Pos.Y >= 12000 {
			t.Errorf("structure %d at %v is outside the world", st.ID, st.Pos)
		}
	}
	if w.Fog() != nil {
		t.Error("story mode should have no fog of war")
	}
}

func TestNewWorldOpen(t *testing.T) {
	w := NewWorld(Options{Mode: ModeOpenWorld, Config: config.DefaultSimConfig(), Seed: 1})

	center := core.V(25000, 25000)
	if got := w.Ship().Pos; got != center {
		t.Errorf("ship start = %v, expected %v", got, center)
	}
	if got := len(w.Structures()); got != 30 {
		t.Errorf("structures = %d, expected 30", got)
	}
	for _, st := range w.Structures() {
		d := st.Pos.Dist(center)
		if d < 5000-1e-6 || d > 20000+1e-6 {
			t.Errorf("megastructure %d at distance %.0f, expected 5000..20000", st.ID, d)
		}
		if st.Mass <= 0 {
			t.Errorf("megastructure %d has no mass", st.ID)
		}
	}
	if got := len(w.Blackholes()); got != 10 {
		t.Errorf("blackholes = %d, expected 10", got)
	}
	for _, bh := range w.Blackholes() {
		if bh.Pos.X < 5000 || bh.Pos.X >= 45000 || bh.Pos.Y < 5000 || bh.Pos.Y >= 45000 {
			t.Errorf("blackhole at %v outside the placement margin", bh.Pos)
		}
	}
	if w.Fog() == nil || w.Fog().Count() != 9 {
		t.Errorf("fog should start with the 3x3 around the ship explored")
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeStory, "story"},
		{ModeOpenWorld, "openworld"},
	}
	for _, tc := range tests {
		if got := tc.mode.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestNoInputNoDrift(t *testing.T) {
	w, h, _ := newTestWorld(t, nil)
	start := w.Ship().Pos

	stepN(w, h, 600, core.NewInputFrame())

	if got := w.Ship().Pos; got != start {
		t.Errorf("ship moved without input: %v -> %v", start, got)
	}
	if got := h.Snapshot().ExplorationDistance; got != 0 {
		t.Errorf("ExplorationDistance = %v, expected 0", got)
	}
	if w.Tick() != 600 {
		t.Errorf("Tick() = %d, expected 600", w.Tick())
	}
}

func TestThrustMovesAlongHeading(t *testing.T) {
	w, h, rec := newTestWorld(t, nil)
	start := w.Ship().Pos

	in := core.NewInputFrame()
	in.Set(core.ActionThrust)
	stepN(w, h, 10, in)

	pos := w.Ship().Pos
	if pos.Y >= start.Y {
		t.Errorf("ship at angle Pi/2 should move toward smaller y, got %v -> %v", start, pos)
	}
	if math.Abs(pos.X-start.X) > 1e-9 {
		t.Errorf("ship drifted sideways: x %v -> %v", start.X, pos.X)
	}
	if h.Snapshot().ExplorationDistance <= 0 {
		t.Error("thrusting should credit exploration distance")
	}
	if !rec.Thrusting() {
		t.Error("thrust cue should be active while thrusting")
	}

	stepN(w, h, 1, core.NewInputFrame())
	if rec.Thrusting() {
		t.Error("thrust cue should stop when thrust is released")
	}
}

func TestStickOverridesKeyboard(t *testing.T) {
	w, h, _ := newTestWorld(t, nil)

	in := core.NewInputFrame()
	in.Set(core.ActionTurnLeft)
	in.Stick = core.Joystick{Active: true, Angle: 0, Thrust: 1}
	step(w, h, in)

	if w.Ship().Angle != 0 {
		t.Errorf("Angle = %v, expected stick angle 0", w.Ship().Angle)
	}
	if w.Ship().Vel.X <= 0 {
		t.Errorf("stick thrust at angle 0 should push +x, vel = %v", w.Ship().Vel)
	}

	// Below the dead zone the keyboard wins.
	in.Stick = core.Joystick{Active: true, Angle: 0, Thrust: 0.05}
	step(w, h, in)
	if w.Ship().Angle <= 0 {
		t.Errorf("keyboard turn should apply below dead zone, angle = %v", w.Ship().Angle)
	}
}

func TestParticlesDecay(t *testing.T) {
	w, h, _ := newTestWorld(t, nil)
	w.burst(w.Ship().Pos, "#ffffff", core.ColorWhite, 20, true, false)
	if got := len(w.Particles()); got != 20 {
		t.Fatalf("particles = %d, expected 20", got)
	}

	// Slowest decay is 0.02/frame.
	stepN(w, h, 51, core.NewInputFrame())
	if got := len(w.Particles()); got != 0 {
		t.Errorf("particles alive after 51 frames = %d, expected 0", got)
	}
}

func TestDeterministicHash(t *testing.T) {
	run := func(seed int64) uint64 {
		holder := gamestate.NewHolder()
		st := gamestate.Initial()
		st.Status = gamestate.StatusRunning
		holder.Reset(st)
		w := NewWorld(Options{Mode: ModeStory, Config: config.DefaultSimConfig(), Seed: seed, Sink: holder})

		in := core.NewInputFrame()
		for i := 0; i < 400; i++ {
			in.Clear()
			if i%3 != 0 {
				in.Set(core.ActionThrust)
			}
			if i%50 < 10 {
				in.Set(core.ActionTurnLeft)
			}
			if i%7 == 0 {
				in.Set(core.ActionFire)
			}
			w.Step(holder.Snapshot(), in)
		}
		return w.Hash()
	}

	a, b := run(99), run(99)
	if a != b {
		t.Errorf("same seed hashes differ: %x vs %x", a, b)
	}
	if c := run(100); c == a {
		t.Errorf("different seeds hash equal: %x", c)
	}
}

func TestRenderSkipsMissingSurface(t *testing.T) {
	w, h, _ := newTestWorld(t, nil)
	w.Render(nil, h.Snapshot())
	w.Render(core.NewScreen(0, 0), h.Snapshot())
}

func TestRenderShipAndHUD(t *testing.T) {
	w, h, _ := newTestWorld(t, nil)
	dst := core.NewScreen(80, 24)
	w.Render(dst, h.Snapshot())

	if got := dst.Get(40, 12); got != '↑' {
		t.Errorf("ship glyph at center = %q, expected '↑'", got)
	}
	if !strings.Contains(dst.Row(0), "SCORE 0") {
		t.Errorf("HUD row = %q, expected score", dst.Row(0))
	}
	if !strings.Contains(dst.Row(1), "Neural Laser") {
		t.Errorf("HUD row = %q, expected weapon name", dst.Row(1))
	}
}

func TestRenderTooSmall(t *testing.T) {
	w, h, _ := newTestWorld(t, nil)
	dst := core.NewScreen(20, 6)
	w.Render(dst, h.Snapshot())

	if !strings.Contains(dst.String(), "Window too small") {
		t.Errorf("expected too-small message, got\n%s", dst.String())
	}
}
