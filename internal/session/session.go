// Package session is the frame controller. A Session owns one simulation
// world and its state holder, runs the run status machine around the
// fixed-step world update and applies the periodic corruption drift and
// advisory buffs. Sessions are registered as the "story" and "openworld"
// modes.
package session

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/jakobmina/quasar-pro/internal/advisor"
	"github.com/jakobmina/quasar-pro/internal/audio"
	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/config"
	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/gamestate"
	"github.com/jakobmina/quasar-pro/internal/registry"
	"github.com/jakobmina/quasar-pro/internal/sim"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var (
	hull           catalog.ShipConfig
	startWeapon    catalog.Weapon
	provider       advisor.Provider
	advisorTimeout time.Duration
)

var cues audio.Cues = audio.Nop{}

var logger = log.Default()

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetHull selects the hull new sessions fly. The zero value means the
// default interceptor.
func SetHull(c catalog.ShipConfig) {
	hull = c
}

// SetWeapon selects the weapon new runs start with.
func SetWeapon(w catalog.Weapon) {
	startWeapon = w
}

// SetCues sets the audio cue sink shared by new sessions. nil silences them.
func SetCues(c audio.Cues) {
	if c == nil {
		c = audio.Nop{}
	}
	cues = c
}

// SetAdvisor sets the advisory provider and its timeout. A nil provider
// makes every request resolve to the fallback directive.
func SetAdvisor(p advisor.Provider, timeout time.Duration) {
	provider = p
	advisorTimeout = timeout
}

// SetLogger sets the logger used for advisory failures.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Session implements registry.Game for one world mode.
type Session struct {
	mode    sim.Mode
	runtime core.RuntimeConfig
	cfg     config.SimConfig
	hull    catalog.ShipConfig
	pick    catalog.ShipConfig // per-session hull, overrides SetHull
	holder  *gamestate.Holder
	world   *sim.World
	advisor *advisor.Advisor

	lastDrift float64 // sim clock ms
}

// New creates a session for mode. Reset must be called before stepping.
func New(mode sim.Mode) *Session {
	return &Session{mode: mode, holder: gamestate.NewHolder()}
}

// NewStory creates a story-mode session.
func NewStory() *Session {
	return New(sim.ModeStory)
}

// NewOpenWorld creates an open-world session.
func NewOpenWorld() *Session {
	return New(sim.ModeOpenWorld)
}

// UseHull selects the hull for this session only. It applies from the
// next Reset.
func (s *Session) UseHull(c catalog.ShipConfig) {
	s.pick = c
}

// ID returns the mode id.
func (s *Session) ID() string {
	return s.mode.String()
}

// Title returns the display name for this mode.
func (s *Session) Title() string {
	if s.mode == sim.ModeOpenWorld {
		return "Quasar: Open World"
	}
	return "Quasar: Story"
}

// Reset starts a fresh run. The high score survives.
func (s *Session) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime

	cfg, err := config.LoadSim(configPath)
	if err != nil {
		cfg = config.DefaultSimConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	s.cfg = cfg

	s.hull = hull
	if s.pick.Model != "" {
		s.hull = s.pick
	}
	if s.hull.Model == "" {
		s.hull, _ = catalog.Hull(catalog.HullInterceptor)
	}

	s.holder.Reset(s.initialState())

	s.world = sim.NewWorld(sim.Options{
		Mode:     s.mode,
		Config:   cfg,
		Hull:     s.hull,
		Seed:     runtime.Seed,
		TickRate: runtime.TickRate,
		Sink:     s.holder,
		Cues:     cues,
	})
	s.lastDrift = 0

	if s.advisor != nil {
		s.advisor.Close()
	}
	s.advisor = advisor.New(provider, advisorTimeout, logger)
}

func (s *Session) initialState() gamestate.State {
	st := gamestate.Initial()
	st.MaxIntegrity = st.MaxIntegrity + s.hull.HealthBonus
	if st.MaxIntegrity < 1 {
		st.MaxIntegrity = 1
	}
	st.Integrity = st.MaxIntegrity
	if startWeapon != "" {
		st.Weapon = startWeapon
	}
	st.Mission = gamestate.FirstMission(s.cfg.Mission.ExploreGoal)
	if s.mode == sim.ModeOpenWorld {
		st.Mission = gamestate.Mission{
			Kind:        gamestate.MissionExplore,
			Title:       "Open Survey",
			Description: "Chart the megastructures of the outer ring.",
		}
		st.Messages = append(st.Messages, "SCANNER: Open sector. No hostiles on record.")
	}
	return st
}

// Step advances one fixed tick through the status machine.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.world == nil {
		return core.StepResult{State: s.State()}
	}

	switch s.holder.Snapshot().Status {
	case gamestate.StatusInitial:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			s.setStatus(gamestate.StatusRunning)
		}
		return core.StepResult{State: s.State()}

	case gamestate.StatusPaused:
		s.world.Silence()
		if in.Has(core.ActionPause) || in.Has(core.ActionConfirm) {
			s.setStatus(gamestate.StatusRunning)
		}
		return core.StepResult{State: s.State()}

	case gamestate.StatusGameOver:
		s.world.Silence()
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			s.Reset(s.runtime)
		}
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionPause) {
		s.world.Silence()
		s.setStatus(gamestate.StatusPaused)
		return core.StepResult{State: s.State()}
	}

	var pre gamestate.Update
	pre.Merge(s.drift())
	pre.Merge(s.pollAdvice())
	if !pre.Empty() {
		s.holder.Apply(pre)
	}

	st := s.holder.Snapshot()
	if in.Has(core.ActionAdvise) {
		s.requestAdvice(st)
	}

	s.world.Step(st, in)

	if !s.holder.Snapshot().Running() {
		s.world.Silence()
	}
	return core.StepResult{State: s.State()}
}

func (s *Session) setStatus(status gamestate.Status) {
	s.holder.Apply(gamestate.Update{Status: gamestate.Ptr(status)})
}

// drift returns the passive corruption drift once per interval of sim time.
func (s *Session) drift() gamestate.Update {
	cfg := s.cfg.Drift
	if cfg.IntervalMs <= 0 || s.world.Now()-s.lastDrift < cfg.IntervalMs {
		return gamestate.Update{}
	}
	s.lastDrift = s.world.Now()
	return gamestate.Update{Corruption: cfg.Corruption, Integrity: -cfg.Integrity}
}

// State returns the platform summary of the run.
func (s *Session) State() core.GameState {
	st := s.holder.Snapshot()
	return core.GameState{
		Score:    st.Score,
		GameOver: st.Status == gamestate.StatusGameOver,
		Paused:   st.Status == gamestate.StatusPaused,
	}
}

// Snapshot returns the full run state.
func (s *Session) Snapshot() gamestate.State {
	return s.holder.Snapshot()
}

// World returns the running world, or nil before Reset.
func (s *Session) World() *sim.World {
	return s.world
}

// Hull returns the hull of the current run.
func (s *Session) Hull() catalog.ShipConfig {
	return s.hull
}

// SeedHighScore raises the high score, e.g. from the score store.
func (s *Session) SeedHighScore(score int) {
	s.holder.SetHighScore(score)
}

// Close stops any advisory call in flight.
func (s *Session) Close() {
	if s.advisor != nil {
		s.advisor.Close()
	}
	if s.world != nil {
		s.world.Silence()
	}
}

var _ registry.Game = (*Session)(nil)
