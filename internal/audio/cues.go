// Package audio is the sound contract of the simulation. Every call is
// fire-and-forget and must be a no-op when no output device is available.
// Device playback lives in audio/synth so that headless builds stay pure Go.
package audio

import (
	"sync"

	"github.com/jakobmina/quasar-pro/internal/catalog"
)

// Cues is the audio contract of the simulation.
type Cues interface {
	PlayShoot(w catalog.Weapon)
	PlayExplosion(large bool)
	PlayPickup()
	PlayDamage()
	PlaySpecial()
	SetThrust(active bool, intensity float64)
}

// Nop discards every cue.
type Nop struct{}

func (Nop) PlayShoot(catalog.Weapon) {}
func (Nop) PlayExplosion(bool)       {}
func (Nop) PlayPickup()              {}
func (Nop) PlayDamage()              {}
func (Nop) PlaySpecial()             {}
func (Nop) SetThrust(bool, float64)  {}

// Cue names used by Recorder.
const (
	CueShoot          = "shoot"
	CueExplosion      = "explosion"
	CueLargeExplosion = "explosion_large"
	CuePickup         = "pickup"
	CueDamage         = "damage"
	CueSpecial        = "special"
)

// Recorder counts cues instead of playing them. Headless runs report the
// counts; tests assert on them.
type Recorder struct {
	mu       sync.Mutex
	counts   map[string]int
	thrust   bool
	lastShot catalog.Weapon
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{counts: make(map[string]int)}
}

func (r *Recorder) add(name string) {
	r.mu.Lock()
	r.counts[name]++
	r.mu.Unlock()
}

func (r *Recorder) PlayShoot(w catalog.Weapon) {
	r.mu.Lock()
	r.counts[CueShoot]++
	r.lastShot = w
	r.mu.Unlock()
}

func (r *Recorder) PlayExplosion(large bool) {
	if large {
		r.add(CueLargeExplosion)
		return
	}
	r.add(CueExplosion)
}

func (r *Recorder) PlayPickup()  { r.add(CuePickup) }
func (r *Recorder) PlayDamage()  { r.add(CueDamage) }
func (r *Recorder) PlaySpecial() { r.add(CueSpecial) }

func (r *Recorder) SetThrust(active bool, _ float64) {
	r.mu.Lock()
	r.thrust = active
	r.mu.Unlock()
}

// Count returns how many times a cue fired.
func (r *Recorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[name]
}

// Counts returns a copy of all cue counts.
func (r *Recorder) Counts() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out
}

// Thrusting reports the last thrust state.
func (r *Recorder) Thrusting() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.thrust
}

// LastShot returns the weapon of the latest shoot cue.
func (r *Recorder) LastShot() catalog.Weapon {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastShot
}
