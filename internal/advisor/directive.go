// Package advisor asks an advisory service for a tactical buff without ever
// blocking the frame loop. Every failure resolves to a fixed fallback
// directive.
package advisor

import "fmt"

// Buff is the effect a directive grants.
type Buff string

const (
	BuffCoherenceBoost Buff = "COHERENCE_BOOST"
	BuffFieldClear     Buff = "FIELD_CLEAR"
	BuffEnergyRefill   Buff = "ENERGY_REFILL"
	BuffSpeedSync      Buff = "SPEED_SYNC"
)

// Valid reports whether b is one of the known buffs.
func (b Buff) Valid() bool {
	switch b {
	case BuffCoherenceBoost, BuffFieldClear, BuffEnergyRefill, BuffSpeedSync:
		return true
	}
	return false
}

// Directive is the advice returned by a provider.
type Directive struct {
	Directive string `json:"directive"`
	Buff      Buff   `json:"buffType"`
	Message   string `json:"message"`
}

// Validate checks that the directive can be applied.
func (d Directive) Validate() error {
	if d.Directive == "" {
		return fmt.Errorf("advisor: empty directive")
	}
	if !d.Buff.Valid() {
		return fmt.Errorf("advisor: unknown buff %q", d.Buff)
	}
	return nil
}

// Fallback is the directive used whenever the service cannot answer.
func Fallback() Directive {
	return Directive{
		Directive: "EMERGENCY_STABILIZATION",
		Buff:      BuffCoherenceBoost,
		Message:   "Neural bridge unstable. Manual coherence override engaged.",
	}
}

// Request is the combat snapshot sent to the service.
type Request struct {
	Score      int     `json:"score"`
	Integrity  float64 `json:"integrity"`
	Corruption float64 `json:"corruption"`
	Charge     float64 `json:"charge"`
	Weapon     string  `json:"weapon"`
	Enemies    int     `json:"enemies"`
}
