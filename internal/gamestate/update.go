package gamestate

import "github.com/jakobmina/quasar-pro/internal/catalog"

// Update is a partial state change. Numeric fields are deltas; pointer
// fields replace the current value when set; Messages are appended.
type Update struct {
	Score               int
	Lives               int
	Integrity           float64
	MaxIntegrity        float64
	Corruption          float64
	SpecialCharge       float64
	ExplorationDistance float64
	MissionProgress     float64

	WeaponLevel     *int
	Weapon          *catalog.Weapon
	BeamTemperature *float64
	Mission         *Mission
	Status          *Status

	Messages []string
}

// Merge folds o into u so a frame can collect many events and submit once.
// Deltas add up, later absolute values win and messages keep their order.
func (u *Update) Merge(o Update) {
	u.Score += o.Score
	u.Lives += o.Lives
	u.Integrity += o.Integrity
	u.MaxIntegrity += o.MaxIntegrity
	u.Corruption += o.Corruption
	u.SpecialCharge += o.SpecialCharge
	u.ExplorationDistance += o.ExplorationDistance
	u.MissionProgress += o.MissionProgress

	if o.WeaponLevel != nil {
		u.WeaponLevel = o.WeaponLevel
	}
	if o.Weapon != nil {
		u.Weapon = o.Weapon
	}
	if o.BeamTemperature != nil {
		u.BeamTemperature = o.BeamTemperature
	}
	if o.Mission != nil {
		u.Mission = o.Mission
	}
	if o.Status != nil {
		u.Status = o.Status
	}
	u.Messages = append(u.Messages, o.Messages...)
}

// Empty reports whether applying u would change nothing.
func (u Update) Empty() bool {
	return u.Score == 0 && u.Lives == 0 && u.Integrity == 0 && u.MaxIntegrity == 0 &&
		u.Corruption == 0 && u.SpecialCharge == 0 && u.ExplorationDistance == 0 &&
		u.MissionProgress == 0 && u.WeaponLevel == nil && u.Weapon == nil &&
		u.BeamTemperature == nil && u.Mission == nil && u.Status == nil && len(u.Messages) == 0
}

// Ptr returns a pointer to v, for the absolute fields of Update.
func Ptr[T any](v T) *T {
	return &v
}
