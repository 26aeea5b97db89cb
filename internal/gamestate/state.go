// Package gamestate holds the run-level state that outlives a single frame:
// score, lives, integrity, corruption, weapon, messages and the current
// mission. The simulation never mutates it directly; it submits an Update
// once per frame and the Holder merges it.
package gamestate

import "github.com/jakobmina/quasar-pro/internal/catalog"

// Status is the run status machine.
type Status int

const (
	StatusInitial Status = iota
	StatusRunning
	StatusPaused
	StatusGameOver
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusInitial:
		return "INITIAL"
	case StatusRunning:
		return "RUNNING"
	case StatusPaused:
		return "PAUSED"
	case StatusGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// MissionKind tags a mission.
type MissionKind string

const (
	MissionExplore      MissionKind = "EXPLORE"
	MissionStabilizeHub MissionKind = "STABILIZE_HUB"
)

// Mission is the current objective.
type Mission struct {
	Kind        MissionKind
	Title       string
	Description string
	TargetIndex int
	Progress    float64
	Goal        float64
}

// State is a snapshot of the run.
type State struct {
	Score               int
	HighScore           int
	Lives               int
	Status              Status
	Weapon              catalog.Weapon
	WeaponLevel         int
	Integrity           float64
	MaxIntegrity        float64
	Corruption          float64
	SpecialCharge       float64
	ExplorationDistance float64
	BeamTemperature     float64
	Messages            []string
	Mission             Mission
}

// Initial messages shown when a run starts.
var bootMessages = []string{
	"SYSTEM_INIT: Aether Rescue Protocol Online",
	"AETHER: Help me Pilot... I'm fragmenting.",
}

// FirstMission is the mission every run starts with.
func FirstMission(goal float64) Mission {
	return Mission{
		Kind:        MissionExplore,
		Title:       "First Contact",
		Description: "Explore the neural space and locate a Golden Hub.",
		Goal:        goal,
	}
}

// Initial returns the state of a fresh run.
func Initial() State {
	return State{
		Lives:        5,
		Status:       StatusInitial,
		Weapon:       catalog.WeaponLaser,
		WeaponLevel:  1,
		Integrity:    100,
		MaxIntegrity: 100,
		Messages:     append([]string(nil), bootMessages...),
		Mission:      FirstMission(1000),
	}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	s.Messages = append([]string(nil), s.Messages...)
	return s
}

// Running reports whether the simulation should advance.
func (s State) Running() bool {
	return s.Status == StatusRunning
}

// LastMessage returns the newest message, or "".
func (s State) LastMessage() string {
	if len(s.Messages) == 0 {
		return ""
	}
	return s.Messages[len(s.Messages)-1]
}
