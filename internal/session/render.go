package session

import (
	"fmt"

	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
)

// OverlayLine is one centered line of the status overlay. Offset counts rows
// from the vertical middle of the screen.
type OverlayLine struct {
	Offset int
	Text   string
	Color  core.Color
}

// Overlay returns the status overlay for the current frame. It is empty
// while the run is advancing.
func (s *Session) Overlay() []OverlayLine {
	st := s.holder.Snapshot()
	switch st.Status {
	case gamestate.StatusInitial:
		return []OverlayLine{
			{-2, "Q U A S A R", core.ColorGold},
			{0, fmt.Sprintf("%s  |  %s", s.Title(), s.hull.Name), core.ColorBrightCyan},
			{2, "Press ENTER or SPACE to launch", core.ColorWhite},
		}
	case gamestate.StatusPaused:
		return []OverlayLine{
			{0, "PAUSED", core.ColorYellow},
			{2, "Press P to resume", core.ColorWhite},
		}
	case gamestate.StatusGameOver:
		return []OverlayLine{
			{-2, "SIGNAL LOST", core.ColorBrightRed},
			{0, fmt.Sprintf("Score: %d   Best: %d", st.Score, st.HighScore), core.ColorWhite},
			{2, "Press R to restart", core.ColorGray},
		}
	}
	return nil
}

// Render draws the world. Frames outside RUNNING are frozen and dimmed with
// the status overlay on top.
func (s *Session) Render(dst *core.Screen) {
	if s.world == nil || !dst.Usable() {
		return
	}
	st := s.holder.Snapshot()
	s.world.Render(dst, st)
	if st.Running() || dst.Width() < 30 || dst.Height() < 8 {
		return
	}

	dst.Dim()
	mid := dst.Height() / 2
	for _, line := range s.Overlay() {
		dst.DrawTextCentered(mid+line.Offset, line.Text, line.Color)
	}
}
