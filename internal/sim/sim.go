// Package sim renders synthetic fluorescence frames from Gaussian point
// spread functions. It exists for tests and for generating known-truth
// fixtures with the simspots tool.
package sim

import (
	"math"

	"spotfinder/internal/frame"
)

// Spot describes one emitter: a symmetric 2D Gaussian of the given amplitude
// and sigma centered at (X, Y), in pixel coordinates.
type Spot struct {
	X, Y      float64
	Amplitude float64
	Sigma     float64
}

// DefaultCutoff is the per-spot evaluation box half-width in units of sigma.
// Beyond it a Gaussian contributes less than 4e-6 of its amplitude.
const DefaultCutoff = 5.0

// Gauss renders the spots into a new w x h frame. Each Gaussian is only
// evaluated inside a box of cutoff*sigma pixels around its center, which
// keeps rendering fast for frames with many emitters. A cutoff of 0 uses
// DefaultCutoff. Overlapping spots accumulate.
func Gauss(w, h int, spots []Spot, cutoff float64) *frame.Frame {
	if cutoff <= 0 {
		cutoff = DefaultCutoff
	}
	f := frame.New(w, h)
	for _, s := range spots {
		box := s.Sigma * cutoff
		x1 := clamp(int(math.Floor(s.X-box)), 0, w-1)
		x2 := clamp(int(math.Ceil(s.X+box)), 0, w-1)
		y1 := clamp(int(math.Floor(s.Y-box)), 0, h-1)
		y2 := clamp(int(math.Ceil(s.Y+box)), 0, h-1)
		inv := 1 / (2 * s.Sigma * s.Sigma)
		for y := y1; y <= y2; y++ {
			dy := float64(y) - s.Y
			for x := x1; x <= x2; x++ {
				dx := float64(x) - s.X
				f.Set(x, y, f.At(x, y)+s.Amplitude*math.Exp(-(dx*dx+dy*dy)*inv))
			}
		}
	}
	return f
}

// AmplitudeForMass converts a total integrated intensity into the peak
// amplitude of a symmetric Gaussian: mass = 2*pi*sigma^2*amplitude.
func AmplitudeForMass(mass, sigma float64) float64 {
	return mass / (2 * math.Pi * sigma * sigma)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
