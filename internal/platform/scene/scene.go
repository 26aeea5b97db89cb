// Package scene turns a simulation frame into a flat list of vector shapes in
// window pixels. The desktop front end rasterizes the list; the package itself
// has no graphics dependency so it can be exercised headless.
package scene

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"

	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/config"
	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
	"github.com/jakobmina/quasar-pro/internal/golden"
	"github.com/jakobmina/quasar-pro/internal/sim"
)

// Kind is the primitive a Shape is drawn with.
type Kind int

const (
	KindDisc     Kind = iota // filled circle at A with radius R
	KindRing                 // stroked circle at A with radius R
	KindLine                 // A to B
	KindTriangle             // A, B, C filled
	KindRect                 // filled, top-left A, size B
	KindText                 // Text at A
)

// Shape is one draw call in screen pixels.
type Shape struct {
	Kind    Kind
	A, B, C core.Vec2
	R       float64
	Width   float64
	Color   color.Color
	Text    string
}

// Scene is one frame's draw list, back to front.
type Scene struct {
	Width, Height int
	Background    color.Color
	Shapes        []Shape
}

// StarCell is the world spacing of the background star grid.
const StarCell = 48.0

// Line height of the HUD text in pixels.
const lineHeight = 16

// Projector maps world coordinates onto the window.
type Projector struct {
	Center core.Vec2
	Zoom   float64
	W, H   int
}

// ToScreen converts a world position to window pixels.
func (p Projector) ToScreen(v core.Vec2) core.Vec2 {
	return v.Sub(p.Center).Scale(p.zoom()).Add(core.V(float64(p.W)/2, float64(p.H)/2))
}

// Scale converts a world distance to pixels.
func (p Projector) Scale(d float64) float64 {
	return d * p.zoom()
}

// Visible reports whether a circle of world radius r around v touches the
// window.
func (p Projector) Visible(v core.Vec2, r float64) bool {
	s := p.ToScreen(v)
	m := p.Scale(r)
	return s.X+m >= 0 && s.X-m <= float64(p.W) && s.Y+m >= 0 && s.Y-m <= float64(p.H)
}

func (p Projector) zoom() float64 {
	if p.Zoom <= 0 {
		return 1
	}
	return p.Zoom
}

// Build lays out the world and HUD for one frame.
func Build(w *sim.World, st gamestate.State, width, height int, pal *Palette) *Scene {
	sc := &Scene{Width: width, Height: height, Background: colornames.Black}
	if w == nil || width <= 0 || height <= 0 {
		return sc
	}
	if pal == nil {
		pal = NewPalette()
	}

	cam := w.Camera()
	b := builder{
		scene: sc,
		world: w,
		cfg:   w.Config(),
		pal:   pal,
		proj:  Projector{Center: cam.View(), Zoom: cam.Zoom, W: width, H: height},
	}

	b.stars()
	b.hubs()
	b.blackholes()
	b.structures()
	b.pooled()
	b.enemies()
	b.beam()
	b.ships()
	if f := w.Flash(); f > 0 {
		sc.add(Shape{Kind: KindRect, B: core.V(float64(width), float64(height)),
			Color: Fade(colornames.Crimson, math.Min(0.35, float64(f)*0.05))})
	}
	if b.cfg.Render.HUD {
		b.hud(st)
	}
	return sc
}

// Dim darkens everything drawn so far. Used under status overlays.
func (s *Scene) Dim() {
	s.add(Shape{Kind: KindRect, B: core.V(float64(s.Width), float64(s.Height)),
		Color: Fade(colornames.Black, 0.6)})
}

// AddCentered adds a line of text centered horizontally, offset rows from the
// vertical middle.
func (s *Scene) AddCentered(offset int, text string, c core.Color) {
	x := float64(s.Width)/2 - float64(len(text)*GlyphWidth)/2
	y := float64(s.Height)/2 + float64(offset*lineHeight)
	s.add(Shape{Kind: KindText, A: core.V(x, y), Text: text, Color: TermColor(c)})
}

func (s *Scene) add(sh Shape) {
	s.Shapes = append(s.Shapes, sh)
}

type builder struct {
	scene *Scene
	world *sim.World
	cfg   config.SimConfig
	pal   *Palette
	proj  Projector
}

func (b *builder) disc(p core.Vec2, r float64, c color.Color) {
	b.scene.add(Shape{Kind: KindDisc, A: b.proj.ToScreen(p), R: math.Max(1, b.proj.Scale(r)), Color: c})
}

func (b *builder) ring(p core.Vec2, r, width float64, c color.Color) {
	b.scene.add(Shape{Kind: KindRing, A: b.proj.ToScreen(p), R: b.proj.Scale(r), Width: width, Color: c})
}

// arrow is a triangle of world size r pointing along angle.
func (b *builder) arrow(p core.Vec2, angle, r float64, c color.Color) {
	nose := p.Add(core.Heading(angle).Scale(r))
	left := p.Add(core.Heading(angle + 2.5).Scale(r * 0.8))
	right := p.Add(core.Heading(angle - 2.5).Scale(r * 0.8))
	b.scene.add(Shape{Kind: KindTriangle,
		A: b.proj.ToScreen(nose), B: b.proj.ToScreen(left), C: b.proj.ToScreen(right), Color: c})
}

func (b *builder) explored(p core.Vec2) bool {
	fog := b.world.Fog()
	return fog == nil || fog.Explored(p)
}

func (b *builder) stars() {
	half := core.V(float64(b.proj.W), float64(b.proj.H)).Scale(0.5 / b.proj.zoom())
	lo := b.proj.Center.Sub(half)
	hi := b.proj.Center.Add(half)
	star := Fade(colornames.Slategray, 0.8)
	for cy := int(math.Floor(lo.Y / StarCell)); cy <= int(math.Ceil(hi.Y/StarCell)); cy++ {
		for cx := int(math.Floor(lo.X / StarCell)); cx <= int(math.Ceil(hi.X/StarCell)); cx++ {
			if !golden.StarVisible(cx, cy, b.cfg.Render.StarDensity) {
				continue
			}
			p := core.V(float64(cx)*StarCell, float64(cy)*StarCell)
			if !b.explored(p) {
				continue
			}
			b.scene.add(Shape{Kind: KindDisc, A: b.proj.ToScreen(p), R: 1, Color: star})
		}
	}
}

func (b *builder) hubs() {
	for _, h := range b.world.Hubs() {
		if !b.proj.Visible(h.Pos, h.RingRadius()) {
			continue
		}
		b.ring(h.Pos, h.RingRadius(), 2, Fade(colornames.Gold, 0.6))
		b.disc(h.Pos, 10, colornames.Gold)
		for _, t := range h.Treasures {
			if !t.Collected {
				b.disc(t.Pos, t.Radius, colornames.Violet)
			}
		}
	}
}

func (b *builder) blackholes() {
	for _, bh := range b.world.Blackholes() {
		horizon := bh.Horizon(b.cfg.Hazards.HorizonFactor)
		if !b.explored(bh.Pos) || !b.proj.Visible(bh.Pos, horizon) {
			continue
		}
		b.ring(bh.Pos, horizon, 1.5, Fade(colornames.Darkmagenta, 0.8))
		b.disc(bh.Pos, bh.Radius, colornames.Indigo)
		b.ring(bh.Pos, bh.Radius, 2, colornames.Magenta)
	}
}

func (b *builder) structures() {
	for _, st := range b.world.Structures() {
		if !b.explored(st.Pos) || !b.proj.Visible(st.Pos, st.Radius) {
			continue
		}
		if st.Depleted() {
			b.ring(st.Pos, st.Radius, 1, Fade(colornames.Dimgray, 0.7))
			continue
		}
		c := b.pal.Hex(st.Spec.Color)
		b.disc(st.Pos, st.Radius, Fade(c, 0.15))
		b.ring(st.Pos, st.Radius, 2, c)
	}
}

func (b *builder) pooled() {
	for _, s := range b.world.Shards() {
		b.disc(s.Pos, 4, colornames.Lime)
	}
	for _, l := range b.world.Lasers() {
		b.scene.add(Shape{Kind: KindLine,
			A: b.proj.ToScreen(l.Pos.Sub(l.Vel)), B: b.proj.ToScreen(l.Pos),
			Width: 2, Color: b.pal.Hex(l.Color)})
	}
	for _, p := range b.world.Particles() {
		b.scene.add(Shape{Kind: KindDisc, A: b.proj.ToScreen(p.Pos), R: 1.5,
			Color: Fade(b.pal.Hex(p.Color), p.Life)})
	}
	for _, wv := range b.world.Waves() {
		b.ring(wv.Pos, wv.Radius, 3, Fade(colornames.White, wv.Life))
	}
}

func (b *builder) enemies() {
	for _, e := range b.world.Enemies() {
		if e.Dead() || !b.proj.Visible(e.Pos, e.Radius) {
			continue
		}
		c := b.pal.Hex(e.Spec.Color)
		if e.HitTimer > 0 {
			c = colornames.White
		}
		b.arrow(e.Pos, e.Angle, e.Radius, c)
	}
}

func (b *builder) beam() {
	bm := b.world.Beam()
	if !bm.Active {
		return
	}
	spec := catalog.Spec(catalog.WeaponInfernalRay)
	end := bm.Origin.Add(core.Heading(bm.Angle).Scale(b.cfg.Beam.Range))
	b.scene.add(Shape{Kind: KindLine, A: b.proj.ToScreen(bm.Origin), B: b.proj.ToScreen(end),
		Width: 6, Color: Fade(colornames.Orangered, 0.5)})
	b.scene.add(Shape{Kind: KindLine, A: b.proj.ToScreen(bm.Origin), B: b.proj.ToScreen(end),
		Width: 2, Color: b.pal.Hex(spec.Color)})
}

func (b *builder) ships() {
	comp := b.world.Companion()
	b.disc(comp.Pos, 6, colornames.Cyan)

	ship := b.world.Ship()
	if ship.Warp.Active {
		b.ring(ship.Pos, ship.Radius*1.5, 2, colornames.Magenta)
		return
	}
	if !ship.Blinking(b.world.Tick()) {
		b.arrow(ship.Pos, ship.Angle, ship.Radius, b.pal.Hex(ship.Hull.Color))
	}
}

func (b *builder) hud(st gamestate.State) {
	top, second := b.world.HUDLines(st)
	b.text(8, 6, top, colornames.White)
	b.text(8, 6+lineHeight, second, b.pal.Hex(catalog.Spec(st.Weapon).Color))

	h := float64(b.scene.Height)
	comp := b.world.Companion()
	if msg := comp.LastMessage(); msg.Text != "" {
		b.text(8, h-2*lineHeight-6, "["+string(comp.Mode)+"] "+msg.Text, colornames.Cyan)
	}
	if line := st.LastMessage(); line != "" {
		b.text(8, h-lineHeight-6, line, colornames.Gray)
	}
}

func (b *builder) text(x, y float64, s string, c color.Color) {
	b.scene.add(Shape{Kind: KindText, A: core.V(x, y), Text: s, Color: c})
}
