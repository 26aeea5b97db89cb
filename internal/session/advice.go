package session

import (
	"github.com/jakobmina/quasar-pro/internal/advisor"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
)

func (s *Session) requestAdvice(st gamestate.State) {
	req := advisor.Request{
		Score:      st.Score,
		Integrity:  st.Integrity,
		Corruption: st.Corruption,
		Charge:     st.SpecialCharge,
		Weapon:     string(st.Weapon),
		Enemies:    len(s.world.Enemies()),
	}
	if s.advisor.Request(req) {
		s.holder.Apply(gamestate.Update{Messages: []string{"AETHER: Consulting the neural bridge..."}})
	}
}

// pollAdvice turns a finished directive into its buff. Buffs that touch
// entities act on the world directly; the rest come back as an update.
func (s *Session) pollAdvice() gamestate.Update {
	d, ok := s.advisor.Poll()
	if !ok {
		return gamestate.Update{}
	}
	cfg := s.cfg.Advisor
	u := gamestate.Update{Messages: []string{"AI_DIRECTIVE: " + d.Directive + " - " + d.Message}}

	switch d.Buff {
	case advisor.BuffCoherenceBoost:
		u.Integrity = cfg.CoherenceIntegrity
		u.Corruption = -cfg.CoherenceCorruption
	case advisor.BuffFieldClear:
		s.world.ClearField(cfg.FieldClearRadius)
	case advisor.BuffEnergyRefill:
		u.SpecialCharge = 100
	case advisor.BuffSpeedSync:
		s.world.Boost(cfg.SpeedSyncFactor, cfg.SpeedSyncFrames)
	}
	return u
}
