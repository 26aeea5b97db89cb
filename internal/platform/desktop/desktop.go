// Package desktop is the windowed front end. It drives a session at the
// simulation tick rate and rasterizes the scene draw list with Ebitengine.
package desktop

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
	"github.com/jakobmina/quasar-pro/internal/platform/scene"
	"github.com/jakobmina/quasar-pro/internal/session"
	"github.com/jakobmina/quasar-pro/internal/storage"
)

// Default window size in pixels.
const (
	WindowW = 1280
	WindowH = 800
)

// Game adapts a session to ebiten.Game.
type Game struct {
	session *session.Session
	store   *storage.Store
	config  core.RuntimeConfig
	palette *scene.Palette
	input   input

	width, height int
	scoreSaved    bool
}

// NewGame resets s and wraps it for the window loop.
func NewGame(s *session.Session, store *storage.Store, cfg core.RuntimeConfig) *Game {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	g := &Game{
		session: s,
		store:   store,
		config:  cfg,
		palette: scene.NewPalette(),
		width:   WindowW,
		height:  WindowH,
	}
	s.Reset(cfg)
	g.seedHighScore()
	return g
}

// Update advances one simulation tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	frame := g.input.poll(g.width)
	wasOver := g.session.Snapshot().Status == gamestate.StatusGameOver
	res := g.session.Step(frame)

	// Step restarts the run itself on confirm; pick a fresh seed for it.
	if wasOver && !res.State.GameOver {
		g.config.Seed = time.Now().UnixNano()
		g.session.Reset(g.config)
		g.seedHighScore()
		g.scoreSaved = false
		return nil
	}
	if res.State.GameOver && !g.scoreSaved {
		g.saveScore()
		g.scoreSaved = true
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	sc := scene.Build(g.session.World(), g.session.Snapshot(), g.width, g.height, g.palette)
	if lines := g.session.Overlay(); len(lines) > 0 {
		sc.Dim()
		for _, l := range lines {
			sc.AddCentered(l.Offset, l.Text, l.Color)
		}
	}
	paint(screen, sc)
}

// Layout follows the window size one to one.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) saveScore() {
	st := g.session.Snapshot()
	if g.store == nil || st.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	g.store.SaveScore(storage.ScoreEntry{
		Mode:     g.session.ID(),
		Score:    st.Score,
		Distance: st.ExplorationDistance,
		Hull:     g.session.Hull().Name,
	})
}

func (g *Game) seedHighScore() {
	if g.store == nil {
		return
	}
	if best, err := g.store.HighScore(g.session.ID()); err == nil {
		g.session.SeedHighScore(best)
	}
}

// Run opens the window and blocks until it closes.
func Run(s *session.Session, store *storage.Store, cfg core.RuntimeConfig) error {
	g := NewGame(s, store, cfg)
	defer s.Close()

	ebiten.SetWindowSize(WindowW, WindowH)
	ebiten.SetWindowTitle(s.Title())
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(g.config.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
