package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveSaw
	WaveNoise
)

// sweep is an oscillator gliding exponentially from one frequency to another,
// shaped by an exponential gain ramp. A zero duration loops forever at from.
type sweep struct {
	rate     beep.SampleRate
	wave     Wave
	from, to float64
	gain0    float64
	gain1    float64
	total    int
	pos      int
	phase    float64
	rng      *rand.Rand
}

func newSweep(rate beep.SampleRate, wave Wave, from, to float64, d time.Duration, gain float64) *sweep {
	return &sweep{
		rate:  rate,
		wave:  wave,
		from:  from,
		to:    to,
		gain0: gain,
		gain1: 0.01,
		total: rate.N(d),
		rng:   rand.New(rand.NewSource(int64(from*1000 + to))),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.total > 0 && s.pos >= s.total {
			return i, i > 0
		}

		freq, gain := s.from, s.gain0
		if s.total > 0 {
			t := float64(s.pos) / float64(s.total)
			freq = s.from * math.Pow(s.to/s.from, t)
			gain = s.gain0 * math.Pow(s.gain1/s.gain0, t)
		}

		var v float64
		switch s.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			v = 1
			if s.phase >= 0.5 {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(s.phase-0.5) - 1
		case WaveSaw:
			v = 2 * (s.phase - 0.5)
		case WaveNoise:
			v = s.rng.Float64()*2 - 1
		}

		samples[i][0] = v * gain
		samples[i][1] = v * gain

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// lowpass is a one-pole low-pass filter.
type lowpass struct {
	src   beep.Streamer
	alpha float64
	prev  [2]float64
}

func newLowpass(src beep.Streamer, rate beep.SampleRate, cutoff float64) *lowpass {
	rc := 1 / (2 * math.Pi * cutoff)
	dt := 1 / float64(rate)
	return &lowpass{src: src, alpha: dt / (rc + dt)}
}

func (l *lowpass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = l.src.Stream(samples)
	for i := 0; i < n; i++ {
		for c := 0; c < 2; c++ {
			l.prev[c] += l.alpha * (samples[i][c] - l.prev[c])
			samples[i][c] = l.prev[c]
		}
	}
	return n, ok
}

func (l *lowpass) Err() error { return l.src.Err() }

// volume wraps s with a linear gain, silencing it at zero.
func volume(s beep.Streamer, gain float64) *effects.Volume {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// shootSound picks the shot voice of a weapon.
func shootSound(rate beep.SampleRate, weaponFreq float64, wave Wave) beep.Streamer {
	return newSweep(rate, wave, weaponFreq, weaponFreq/4, 100*time.Millisecond, 0.1)
}

func explosionSound(rate beep.SampleRate, large bool) beep.Streamer {
	cutoff, d := 800.0, 500*time.Millisecond
	if large {
		cutoff, d = 400.0, time.Second
	}
	return newLowpass(newSweep(rate, WaveNoise, 1, 1, d, 0.5), rate, cutoff)
}

func pickupSound(rate beep.SampleRate) beep.Streamer {
	return newSweep(rate, WaveSine, 440, 880, 100*time.Millisecond, 0.1)
}

func damageSound(rate beep.SampleRate) beep.Streamer {
	return newSweep(rate, WaveSaw, 150, 50, 300*time.Millisecond, 0.3)
}

func specialSound(rate beep.SampleRate) beep.Streamer {
	return newSweep(rate, WaveSaw, 100, 2000, time.Second, 0.2)
}

func thrustSound(rate beep.SampleRate) beep.Streamer {
	return newLowpass(newSweep(rate, WaveSaw, 40, 40, 0, 1), rate, 150)
}
