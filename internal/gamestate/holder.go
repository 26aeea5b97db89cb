package gamestate

import (
	"sync"

	"github.com/jakobmina/quasar-pro/internal/core"
)

// DefaultMessageLimit is the number of log lines kept by a Holder.
const DefaultMessageLimit = 12

// Sink receives state updates. Holder is the production implementation.
type Sink interface {
	Apply(u Update) State
}

// Holder owns the run state and merges updates into it.
// It is safe for concurrent use; the SSH server reads scores from other goroutines.
type Holder struct {
	mu           sync.RWMutex
	state        State
	messageLimit int
}

// NewHolder creates a holder with the initial run state.
func NewHolder() *Holder {
	return &Holder{state: Initial(), messageLimit: DefaultMessageLimit}
}

// Reset starts a new run, keeping the high score.
func (h *Holder) Reset(initial State) {
	h.mu.Lock()
	defer h.mu.Unlock()
	high := h.state.HighScore
	h.state = initial.Clone()
	if high > h.state.HighScore {
		h.state.HighScore = high
	}
}

// SetHighScore seeds the high score, e.g. from persistent storage.
func (h *Holder) SetHighScore(score int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if score > h.state.HighScore {
		h.state.HighScore = score
	}
}

// Snapshot returns a copy of the current state.
func (h *Holder) Snapshot() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state.Clone()
}

// Apply merges u into the state and returns the result.
//
// Integrity is clamped to [0, MaxIntegrity], corruption to [0, 100] and
// special charge to [0, 100]. Integrity or lives reaching zero forces
// GAME_OVER, which only Reset leaves.
func (h *Holder) Apply(u Update) State {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := &h.state
	s.Score += u.Score
	s.Lives += u.Lives
	s.MaxIntegrity += u.MaxIntegrity
	if s.MaxIntegrity < 1 {
		s.MaxIntegrity = 1
	}
	s.Integrity = core.ClampF(s.Integrity+u.Integrity, 0, s.MaxIntegrity)
	s.Corruption = core.ClampF(s.Corruption+u.Corruption, 0, 100)
	s.SpecialCharge = core.ClampF(s.SpecialCharge+u.SpecialCharge, 0, 100)
	s.ExplorationDistance += u.ExplorationDistance
	s.Mission.Progress += u.MissionProgress

	if u.WeaponLevel != nil {
		s.WeaponLevel = *u.WeaponLevel
	}
	if u.Weapon != nil {
		s.Weapon = *u.Weapon
	}
	if u.BeamTemperature != nil {
		s.BeamTemperature = *u.BeamTemperature
	}
	if u.Mission != nil {
		s.Mission = *u.Mission
	}
	if len(u.Messages) > 0 {
		s.Messages = append(s.Messages, u.Messages...)
		if over := len(s.Messages) - h.messageLimit; over > 0 {
			s.Messages = append([]string(nil), s.Messages[over:]...)
		}
	}

	switch {
	case s.Status == StatusGameOver:
		// sticky until Reset
	case s.Integrity <= 0 || s.Lives <= 0:
		s.Status = StatusGameOver
	case u.Status != nil:
		s.Status = *u.Status
	}

	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
	return s.Clone()
}
