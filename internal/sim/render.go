package sim

import (
	"fmt"
	"math"

	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
	"github.com/jakobmina/quasar-pro/internal/golden"
)

// Minimum screen size for the playfield.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// hudRows is the number of rows reserved at the top for the HUD.
const hudRows = 2

// viewport maps world space onto the character grid around the camera.
// Rows cover twice the world distance of columns so the picture keeps its
// aspect ratio on terminal cells.
type viewport struct {
	center core.Vec2
	cell   float64
	w, h   int
}

func (v viewport) toScreen(p core.Vec2) (int, int) {
	x := float64(v.w)/2 + (p.X-v.center.X)/v.cell
	y := float64(v.h)/2 + (p.Y-v.center.Y)/(2*v.cell)
	return int(math.Floor(x)), int(math.Floor(y))
}

func (v viewport) visible(x, y int) bool {
	return x >= 0 && x < v.w && y >= hudRows && y < v.h
}

// rows converts a world distance to screen rows.
func (v viewport) rows(d float64) int {
	return int(math.Round(d / (2 * v.cell)))
}

// Render draws the world and the HUD for state st.
func (w *World) Render(dst *core.Screen, st gamestate.State) {
	if !dst.Usable() {
		return
	}
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	cell := w.cfg.Render.CellSize
	if cell <= 0 {
		cell = 40
	}
	vp := viewport{center: w.camera.View(), cell: cell, w: dst.Width(), h: dst.Height()}

	w.renderStars(dst, vp)
	w.renderHubs(dst, vp)
	w.renderBlackholes(dst, vp)
	w.renderStructures(dst, vp)
	w.renderPooled(dst, vp)
	w.renderEnemies(dst, vp)
	w.renderBeam(dst, vp)
	w.renderShips(dst, vp)

	if w.flash > 0 {
		dst.DrawBox(core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows), core.ColorBrightRed)
	}
	if w.cfg.Render.HUD {
		w.renderHUD(dst, st)
	}
}

// plot draws r at world position p when it lands on the playfield.
func plot(dst *core.Screen, vp viewport, p core.Vec2, r rune, c core.Color) {
	x, y := vp.toScreen(p)
	if vp.visible(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

func (w *World) renderStars(dst *core.Screen, vp viewport) {
	ox := int(math.Floor(vp.center.X / vp.cell))
	oy := int(math.Floor(vp.center.Y / (2 * vp.cell)))
	for y := hudRows; y < vp.h; y++ {
		for x := 0; x < vp.w; x++ {
			cx, cy := ox+x-vp.w/2, oy+y-vp.h/2
			if !golden.StarVisible(cx, cy, w.cfg.Render.StarDensity) {
				continue
			}
			if w.fog != nil {
				p := core.V(float64(cx)*vp.cell, float64(cy)*2*vp.cell)
				if !w.fog.Explored(p) {
					continue
				}
			}
			dst.SetColored(x, y, '·', core.ColorDim)
		}
	}
}

func (w *World) renderHubs(dst *core.Screen, vp viewport) {
	for _, h := range w.hubs {
		x, y := vp.toScreen(h.Pos)
		ring := core.Max(1, vp.rows(h.RingRadius()))
		dst.DrawCircle(x, y, ring, '∘', core.ColorGold)
		plot(dst, vp, h.Pos, 'Φ', core.ColorGold)
		for _, t := range h.Treasures {
			if !t.Collected {
				plot(dst, vp, t.Pos, '◇', core.ColorViolet)
			}
		}
	}
}

func (w *World) renderBlackholes(dst *core.Screen, vp viewport) {
	for _, bh := range w.blackholes {
		if w.fog != nil && !w.fog.Explored(bh.Pos) {
			continue
		}
		x, y := vp.toScreen(bh.Pos)
		if r := vp.rows(bh.Horizon(w.cfg.Hazards.HorizonFactor)); r > 0 {
			dst.DrawCircle(x, y, r, '░', core.ColorMagenta)
		}
		plot(dst, vp, bh.Pos, '@', core.ColorBrightMagenta)
	}
}

func (w *World) renderStructures(dst *core.Screen, vp viewport) {
	for _, st := range w.structures {
		if w.fog != nil && !w.fog.Explored(st.Pos) {
			continue
		}
		if st.Depleted() {
			plot(dst, vp, st.Pos, 'x', core.ColorDim)
			continue
		}
		if st.Megastructure() {
			x, y := vp.toScreen(st.Pos)
			if r := vp.rows(st.Radius); r > 0 {
				dst.DrawCircle(x, y, r, '·', st.Spec.Term)
			}
		}
		plot(dst, vp, st.Pos, st.Spec.Glyph, st.Spec.Term)
	}
}

func (w *World) renderPooled(dst *core.Screen, vp viewport) {
	for _, s := range w.shards.Active() {
		plot(dst, vp, s.Pos, '◆', core.ColorBrightGreen)
	}
	for _, l := range w.lasers.Active() {
		plot(dst, vp, l.Pos, '•', l.Term)
	}
	for _, p := range w.particles.Active() {
		plot(dst, vp, p.Pos, p.Glyph, p.Term)
	}
	for _, wv := range w.waves.Active() {
		x, y := vp.toScreen(wv.Pos)
		if r := vp.rows(wv.Radius); r > 0 {
			dst.DrawCircle(x, y, r, '○', core.ColorBrightWhite)
		}
	}
}

func (w *World) renderEnemies(dst *core.Screen, vp viewport) {
	for _, e := range w.enemies {
		if e.Dead() {
			continue
		}
		c := e.Spec.Term
		if e.HitTimer > 0 {
			c = core.ColorBrightWhite
		}
		plot(dst, vp, e.Pos, e.Spec.Glyph, c)
	}
}

func (w *World) renderBeam(dst *core.Screen, vp viewport) {
	if !w.beam.Active {
		return
	}
	spec := catalog.Spec(catalog.WeaponInfernalRay)
	dir := core.Heading(w.beam.Angle)
	for d := vp.cell; d <= w.cfg.Beam.Range; d += vp.cell / 2 {
		plot(dst, vp, w.beam.Origin.Add(dir.Scale(d)), '*', spec.Term)
	}
}

func (w *World) renderShips(dst *core.Screen, vp viewport) {
	plot(dst, vp, w.companion.Pos, '◊', core.ColorBrightCyan)
	if w.ship.Warp.Active {
		plot(dst, vp, w.ship.Pos, '✶', core.ColorBrightMagenta)
		return
	}
	if !w.ship.Blinking(w.tick) {
		plot(dst, vp, w.ship.Pos, w.ship.Glyph(), w.ship.Hull.TermColor())
	}
}

// HUDLines returns the two status lines shown above the playfield.
func (w *World) HUDLines(st gamestate.State) (top, second string) {
	top = fmt.Sprintf("SCORE %d  HI %d  LIVES %d  HULL %.0f/%.0f  CORR %.0f%%  CHARGE %.0f%%",
		st.Score, st.HighScore, st.Lives, st.Integrity, st.MaxIntegrity, st.Corruption, st.SpecialCharge)

	spec := catalog.Spec(st.Weapon)
	second = fmt.Sprintf("%s L%d", spec.Name, st.WeaponLevel)
	if spec.Beam {
		second += fmt.Sprintf("  HEAT %.0f", w.beam.Temperature)
		if w.beam.Overheated {
			second += " LOCKED"
		}
	}
	second += fmt.Sprintf("  DIST %.0f", st.ExplorationDistance)

	if w.mode == ModeOpenWorld {
		found, total := w.Discovered()
		second += fmt.Sprintf("  CHUNKS %d  FOUND %d/%d", w.fog.Count(), found, total)
	} else {
		m := st.Mission
		second += fmt.Sprintf("  %s %.0f/%.0f", m.Title, m.Progress, m.Goal)
		if h := w.targetHub(); h != nil {
			bearing := w.ship.Pos.Bearing(h.Pos)
			second += fmt.Sprintf("  HUB %c %.0f", arrowFor(bearing), w.ship.Pos.Dist(h.Pos))
		}
	}
	if w.Boosted() {
		second += "  SYNC"
	}
	return top, second
}

func (w *World) renderHUD(dst *core.Screen, st gamestate.State) {
	top, second := w.HUDLines(st)
	dst.DrawTextColored(1, 0, top, core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, second, catalog.Spec(st.Weapon).Term)

	h := dst.Height()
	if msg := w.companion.LastMessage(); msg.Text != "" {
		dst.DrawTextColored(1, h-2, fmt.Sprintf("[%s] %s", w.companion.Mode, msg.Text), core.ColorBrightCyan)
	}
	if line := st.LastMessage(); line != "" {
		dst.DrawTextColored(1, h-1, line, core.ColorGray)
	}
}

func arrowFor(angle float64) rune {
	s := Ship{Angle: angle}
	return s.Glyph()
}
