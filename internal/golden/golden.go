// Package golden provides the quasiperiodic sequence that drives every
// "pseudorandom but fixed" placement in the world: hub coordinates, enemy
// archetypes and bearings, star-field density and hub ring modulation.
package golden

import "math"

// Phi is the golden ratio.
var Phi = (1 + math.Sqrt(5)) / 2

// Value returns cos(Pi*n) * cos(Pi*Phi*n). It is pure and bounded in [-1, 1].
func Value(n float64) float64 {
	return math.Cos(math.Pi*n) * math.Cos(math.Pi*Phi*n)
}

// Unit maps Value(n) from [-1, 1] onto [0, 1].
func Unit(n float64) float64 {
	return Value(n)*0.5 + 0.5
}

// HubPosition returns the fixed coordinates of golden hub n inside a square
// world of the given size.
func HubPosition(n int, worldSize float64) (x, y float64) {
	f := float64(n)
	x = (math.Sin(f)*0.5 + 0.5) * worldSize
	y = (math.Cos(f*Phi)*0.5 + 0.5) * worldSize
	return x, y
}

// RingScale is the radius multiplier of hub n's drawn ring.
func RingScale(n int) float64 {
	return 0.8 + Value(float64(n))*0.2
}

// Bearing derives a deterministic heading in [0, 2*Pi) for slot k.
func Bearing(k int) float64 {
	return Unit(float64(k)*Phi) * 2 * math.Pi
}

// StarVisible reports whether a background star sits on grid cell (cx, cy).
// Density is the fraction of cells that carry a star, in [0, 1].
func StarVisible(cx, cy int, density float64) bool {
	n := float64(cx)*0.618 + float64(cy)*1.414
	v := math.Abs(Value(n) * Value(n*Phi+float64(cy)))
	return v < density
}
