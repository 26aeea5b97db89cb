package gamestate

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jakobmina/quasar-pro/internal/catalog"
)

func TestInitialState(t *testing.T) {
	s := NewHolder().Snapshot()

	if s.Lives != 5 || s.Integrity != 100 || s.MaxIntegrity != 100 {
		t.Errorf("initial lives/integrity = %d/%v/%v, expected 5/100/100", s.Lives, s.Integrity, s.MaxIntegrity)
	}
	if s.Weapon != catalog.WeaponLaser || s.WeaponLevel != 1 {
		t.Errorf("initial weapon = %s level %d, expected LASER level 1", s.Weapon, s.WeaponLevel)
	}
	if s.Status != StatusInitial {
		t.Errorf("initial status = %v, expected INITIAL", s.Status)
	}
	if len(s.Messages) != 2 {
		t.Errorf("initial messages = %v, expected 2 boot lines", s.Messages)
	}
	if s.Mission.Kind != MissionExplore || s.Mission.Goal != 1000 || s.Mission.Title != "First Contact" {
		t.Errorf("initial mission = %+v", s.Mission)
	}
}

func TestApplyClamps(t *testing.T) {
	tests := []struct {
		name   string
		update Update
		check  func(State) error
	}{
		{
			name:   "integrity above max",
			update: Update{Integrity: 50},
			check: func(s State) error {
				if s.Integrity != 100 {
					return fmt.Errorf("Integrity = %v, expected 100", s.Integrity)
				}
				return nil
			},
		},
		{
			name:   "corruption below zero",
			update: Update{Corruption: -30},
			check: func(s State) error {
				if s.Corruption != 0 {
					return fmt.Errorf("Corruption = %v, expected 0", s.Corruption)
				}
				return nil
			},
		},
		{
			name:   "corruption above hundred",
			update: Update{Corruption: 250},
			check: func(s State) error {
				if s.Corruption != 100 {
					return fmt.Errorf("Corruption = %v, expected 100", s.Corruption)
				}
				return nil
			},
		},
		{
			name:   "charge capped",
			update: Update{SpecialCharge: 140},
			check: func(s State) error {
				if s.SpecialCharge != 100 {
					return fmt.Errorf("SpecialCharge = %v, expected 100", s.SpecialCharge)
				}
				return nil
			},
		},
		{
			name:   "max integrity grows first",
			update: Update{MaxIntegrity: 20, Integrity: 15},
			check: func(s State) error {
				if s.MaxIntegrity != 120 || s.Integrity != 115 {
					return fmt.Errorf("Integrity = %v/%v, expected 115/120", s.Integrity, s.MaxIntegrity)
				}
				return nil
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHolder()
			if err := tc.check(h.Apply(tc.update)); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestApplyGameOver(t *testing.T) {
	running := StatusRunning

	h := NewHolder()
	h.Apply(Update{Status: &running})
	s := h.Apply(Update{Integrity: -100})
	if s.Status != StatusGameOver {
		t.Fatalf("Status = %v after integrity hit zero, expected GAME_OVER", s.Status)
	}

	s = h.Apply(Update{Status: &running})
	if s.Status != StatusGameOver {
		t.Errorf("GAME_OVER should be sticky, got %v", s.Status)
	}

	h.Reset(Initial())
	h.Apply(Update{Status: &running})
	s = h.Apply(Update{Lives: -5})
	if s.Status != StatusGameOver {
		t.Errorf("Status = %v after lives hit zero, expected GAME_OVER", s.Status)
	}
}

func TestApplyAbsoluteFieldsAndMessages(t *testing.T) {
	h := NewHolder()
	mission := Mission{Kind: MissionStabilizeHub, Title: "Hub Stabilization", Goal: 5}

	s := h.Apply(Update{
		WeaponLevel:     Ptr(3),
		Weapon:          Ptr(catalog.WeaponShotgun),
		BeamTemperature: Ptr(42.0),
		Mission:         &mission,
		Messages:        []string{"MISSION_COMPLETE: First Contact"},
	})

	if s.WeaponLevel != 3 || s.Weapon != catalog.WeaponShotgun || s.BeamTemperature != 42 {
		t.Errorf("absolute fields = %d/%s/%v", s.WeaponLevel, s.Weapon, s.BeamTemperature)
	}
	if s.Mission.Kind != MissionStabilizeHub {
		t.Errorf("Mission = %+v, expected STABILIZE_HUB", s.Mission)
	}
	if s.LastMessage() != "MISSION_COMPLETE: First Contact" {
		t.Errorf("LastMessage() = %q", s.LastMessage())
	}

	s = h.Apply(Update{MissionProgress: 2})
	if s.Mission.Progress != 2 {
		t.Errorf("Mission.Progress = %v, expected 2", s.Mission.Progress)
	}
}

func TestMessageLimit(t *testing.T) {
	h := NewHolder()
	for i := 0; i < 40; i++ {
		h.Apply(Update{Messages: []string{fmt.Sprintf("line %d", i)}})
	}
	s := h.Snapshot()
	if len(s.Messages) != DefaultMessageLimit {
		t.Fatalf("len(Messages) = %d, expected %d", len(s.Messages), DefaultMessageLimit)
	}
	if s.LastMessage() != "line 39" {
		t.Errorf("LastMessage() = %q, expected line 39", s.LastMessage())
	}
}

func TestHighScoreSurvivesReset(t *testing.T) {
	h := NewHolder()
	h.SetHighScore(300)
	h.Apply(Update{Score: 500})
	if s := h.Snapshot(); s.HighScore != 500 {
		t.Errorf("HighScore = %d, expected 500", s.HighScore)
	}

	h.Reset(Initial())
	s := h.Snapshot()
	if s.Score != 0 || s.HighScore != 500 {
		t.Errorf("after Reset score/high = %d/%d, expected 0/500", s.Score, s.HighScore)
	}
}

func TestSnapshotIsolated(t *testing.T) {
	h := NewHolder()
	s := h.Snapshot()
	s.Messages[0] = "tampered"
	if h.Snapshot().Messages[0] == "tampered" {
		t.Error("Snapshot() should return a deep copy")
	}
}

func TestUpdateMerge(t *testing.T) {
	var u Update
	u.Merge(Update{Score: 100, Messages: []string{"a"}, WeaponLevel: Ptr(2)})
	u.Merge(Update{Score: 50, Corruption: 12, Messages: []string{"b"}, WeaponLevel: Ptr(3)})

	if u.Score != 150 || u.Corruption != 12 {
		t.Errorf("merged deltas = %d/%v, expected 150/12", u.Score, u.Corruption)
	}
	if *u.WeaponLevel != 3 {
		t.Errorf("WeaponLevel = %d, expected later value 3", *u.WeaponLevel)
	}
	if len(u.Messages) != 2 || u.Messages[1] != "b" {
		t.Errorf("Messages = %v, expected [a b]", u.Messages)
	}
	if u.Empty() {
		t.Error("Empty() = true for a populated update")
	}
	if !(Update{}).Empty() {
		t.Error("Empty() = false for the zero update")
	}
}

func TestConcurrentApply(t *testing.T) {
	h := NewHolder()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.Apply(Update{Score: 1})
				_ = h.Snapshot()
			}
		}()
	}
	wg.Wait()
	if got := h.Snapshot().Score; got != 800 {
		t.Errorf("Score = %d, expected 800", got)
	}
}
