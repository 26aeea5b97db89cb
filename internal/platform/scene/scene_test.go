package scene

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"golang.org/x/image/colornames"

	"github.com/jakobmina/quasar-pro/internal/config"
	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
	"github.com/jakobmina/quasar-pro/internal/sim"
)

func TestProjector(t *testing.T) {
	p := Projector{Center: core.V(1000, 1000), Zoom: 0.5, W: 800, H: 600}

	if got := p.ToScreen(core.V(1000, 1000)); got != core.V(400, 300) {
		t.Errorf("ToScreen(center) = %v, expected (400, 300)", got)
	}
	if got := p.ToScreen(core.V(1200, 900)); got != core.V(500, 250) {
		t.Errorf("ToScreen() = %v, expected (500, 250)", got)
	}
	if got := p.Scale(100); got != 50 {
		t.Errorf("Scale(100) = %v, expected 50", got)
	}
	if got := (Projector{}).Scale(10); got != 10 {
		t.Errorf("zero zoom Scale(10) = %v, expected 10", got)
	}

	tests := []struct {
		name     string
		pos      core.Vec2
		radius   float64
		expected bool
	}{
		{"center", core.V(1000, 1000), 0, true},
		{"far left", core.V(0, 1000), 10, false},
		{"edge overlap", core.V(150, 1000), 50, true},
		{"below", core.V(1000, 1700), 20, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Visible(tc.pos, tc.radius); got != tc.expected {
				t.Errorf("Visible() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPaletteHex(t *testing.T) {
	pal := NewPalette()

	r, g, b, a := pal.Hex("#ff8000").RGBA()
	if r>>8 != 0xff || g>>8 != 0x80 || b>>8 != 0 || a>>8 != 0xff {
		t.Errorf("Hex(#ff8000) = (%d, %d, %d, %d)", r>>8, g>>8, b>>8, a>>8)
	}
	if got := pal.Hex("not a color"); got != color.Color(colornames.White) {
		t.Errorf("Hex(invalid) = %v, expected white", got)
	}
	if len(pal.cache) != 2 {
		t.Errorf("cache size = %d, expected 2", len(pal.cache))
	}
}

func TestFade(t *testing.T) {
	tests := []struct {
		alpha    float64
		expected uint8
	}{
		{1, 255},
		{2, 255},
		{0.5, 127},
		{0, 0},
		{-1, 0},
	}
	for _, tc := range tests {
		n := color.NRGBAModel.Convert(Fade(colornames.Red, tc.alpha)).(color.NRGBA)
		if n.A != tc.expected {
			t.Errorf("Fade(red, %v).A = %d, expected %d", tc.alpha, n.A, tc.expected)
		}
	}
}

func TestTermColorFallback(t *testing.T) {
	if TermColor(core.ColorGold) != color.Color(colornames.Gold) {
		t.Error("gold slot should map to gold")
	}
	if TermColor(core.Color(200)) != color.Color(colornames.White) {
		t.Error("unknown slot should map to white")
	}
}

func testWorld(t *testing.T, mode sim.Mode) *sim.World {
	t.Helper()
	return sim.NewWorld(sim.Options{Mode: mode, Config: config.DefaultSimConfig(), Seed: 7, TickRate: 60})
}

func count(sc *Scene, kind Kind) int {
	n := 0
	for _, sh := range sc.Shapes {
		if sh.Kind == kind {
			n++
		}
	}
	return n
}

func TestBuildEmpty(t *testing.T) {
	sc := Build(nil, gamestate.State{}, 800, 600, nil)
	if len(sc.Shapes) != 0 {
		t.Errorf("len(Shapes) = %d, expected 0", len(sc.Shapes))
	}
	if sc.Background != color.Color(colornames.Black) {
		t.Error("background should be black")
	}
}

func TestBuildStoryFrame(t *testing.T) {
	w := testWorld(t, sim.ModeStory)
	st := gamestate.Initial()
	sc := Build(w, st, 1024, 768, NewPalette())

	// Ship and nothing else is a triangle before any enemy spawns.
	if got := count(sc, KindTriangle); got != 1 {
		t.Errorf("triangles = %d, expected 1 (the ship)", got)
	}

	var hud string
	for _, sh := range sc.Shapes {
		if sh.Kind == KindText {
			hud += sh.Text + "\n"
		}
	}
	if !strings.Contains(hud, "SCORE 0") {
		t.Errorf("HUD text = %q, expected score line", hud)
	}

	// The ship is drawn at the window center since the camera starts on it.
	for _, sh := range sc.Shapes {
		if sh.Kind != KindTriangle {
			continue
		}
		c := core.V((sh.A.X+sh.B.X+sh.C.X)/3, (sh.A.Y+sh.B.Y+sh.C.Y)/3)
		if math.Abs(c.X-512) > 10 || math.Abs(c.Y-384) > 10 {
			t.Errorf("ship centroid = %v, expected near (512, 384)", c)
		}
	}
}

func TestBuildHUDDisabled(t *testing.T) {
	cfg := config.DefaultSimConfig()
	cfg.Render.HUD = false
	w := sim.NewWorld(sim.Options{Mode: sim.ModeStory, Config: cfg, Seed: 7, TickRate: 60})

	if got := count(Build(w, gamestate.Initial(), 800, 600, nil), KindText); got != 0 {
		t.Errorf("text shapes = %d, expected 0 without HUD", got)
	}
}

func TestBuildOpenWorldFog(t *testing.T) {
	w := testWorld(t, sim.ModeOpenWorld)
	sc := Build(w, gamestate.Initial(), 800, 600, nil)

	// Megastructures and wormholes keep clear of the start.
	if got := count(sc, KindRing); got != 0 {
		t.Errorf("rings = %d, expected 0 on the first frame", got)
	}
}

func TestAddCentered(t *testing.T) {
	sc := &Scene{Width: 700, Height: 400}
	sc.AddCentered(2, "PAUSED", core.ColorYellow)

	sh := sc.Shapes[0]
	if sh.Kind != KindText || sh.Text != "PAUSED" {
		t.Fatalf("shape = %+v, expected PAUSED text", sh)
	}
	if sh.A.X != 350-21 || sh.A.Y != 200+32 {
		t.Errorf("position = %v, expected (329, 232)", sh.A)
	}
}
