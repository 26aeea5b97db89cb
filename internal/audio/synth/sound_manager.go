// Package synth plays simulation cues on the default output device. Every
// sound is synthesized procedurally; nothing is loaded from disk.
package synth

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/jakobmina/quasar-pro/internal/catalog"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager synthesizes every cue procedurally and plays it through the
// default output device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	thrustCtrl  *beep.Ctrl
	thrustVol   *effects.Volume
	initialized bool
}

// NewSoundManager creates a sound manager. Call Initialize before use;
// until then every cue is silently dropped.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the output device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.thrustCtrl != nil {
		sm.thrustCtrl.Paused = true
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.thrustCtrl = nil
	sm.thrustVol = nil
	sm.initialized = false
}

// play adds a one-shot streamer to the mixer.
func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayShoot plays the firing voice of w.
func (sm *SoundManager) PlayShoot(w catalog.Weapon) {
	switch w {
	case catalog.WeaponShotgun:
		sm.play(shootSound(sampleRate, 150, WaveSaw))
	case catalog.WeaponMachineGun:
		sm.play(shootSound(sampleRate, 600, WaveSquare))
	case catalog.WeaponInfernalRay:
		sm.play(shootSound(sampleRate, 1200, WaveSine))
	default:
		sm.play(shootSound(sampleRate, 800, WaveTriangle))
	}
}

// PlayExplosion plays filtered noise; large explosions are darker and longer.
func (sm *SoundManager) PlayExplosion(large bool) {
	sm.play(explosionSound(sampleRate, large))
}

// PlayPickup plays a rising chirp.
func (sm *SoundManager) PlayPickup() {
	sm.play(pickupSound(sampleRate))
}

// PlayDamage plays a falling buzz.
func (sm *SoundManager) PlayDamage() {
	sm.play(damageSound(sampleRate))
}

// PlaySpecial plays the purge sweep.
func (sm *SoundManager) PlaySpecial() {
	sm.play(specialSound(sampleRate))
}

// SetThrust starts, retunes or pauses the engine drone.
func (sm *SoundManager) SetThrust(active bool, intensity float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if !active {
		if sm.thrustCtrl != nil {
			sm.thrustCtrl.Paused = true
		}
		return
	}

	gain := 0.05 * math.Max(0, math.Min(1, intensity))
	if sm.thrustCtrl == nil {
		sm.thrustVol = volume(thrustSound(sampleRate), gain)
		sm.thrustCtrl = &beep.Ctrl{Streamer: sm.thrustVol}
		sm.mixer.Add(sm.thrustCtrl)
	}
	if gain <= 0 {
		sm.thrustVol.Silent = true
	} else {
		sm.thrustVol.Silent = false
		sm.thrustVol.Volume = math.Log2(gain)
	}
	sm.thrustCtrl.Paused = false
}
