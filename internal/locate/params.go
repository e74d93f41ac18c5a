package locate

import "fmt"

// Params holds localization parameters. Values are copied around freely;
// use DefaultParams and the With* helpers to derive variants.
type Params struct {
	// Radius is the feature disk radius in pixels. Candidate windows are
	// squares of side 2*Radius+1. Must be at least 1.
	Radius int

	// SignalThresh is the minimum peak intensity for a local maximum to
	// become a candidate. Applied to the bandpassed frame when Bandpass is
	// on, to the raw frame otherwise.
	SignalThresh float64

	// MassThresh is the minimum integrated, background-subtracted intensity
	// of a refined feature. Must not be negative.
	MassThresh float64

	// Bandpass enables noise suppression and background flattening before
	// the candidate search. Refinement always runs on the raw frame.
	Bandpass bool

	// NoiseRadius is the correlation length of pixel noise in pixels,
	// the scale of the bandpass Gaussian. Must be positive.
	NoiseRadius float64

	// NonNeg clamps negative bandpass output to zero.
	NonNeg bool

	// MaxIterations caps the centroid refinement loop. When the cap is hit
	// without convergence, the last iterate is accepted.
	MaxIterations int

	// Epsilon is the centroid shift, in pixels, below which refinement is
	// considered converged. Part of the reproducibility contract.
	Epsilon float64
}

// DefaultParams returns localization defaults. Signal and mass thresholds
// default to zero and should be set from the data.
func DefaultParams() Params {
	return Params{
		Radius:        3,
		SignalThresh:  0,
		MassThresh:    0,
		Bandpass:      true,
		NoiseRadius:   1.0,
		MaxIterations: 10,
		Epsilon:       0.5,
	}
}

// WithRadius returns a copy of params with the given feature radius.
func (p Params) WithRadius(radius int) Params {
	p.Radius = radius
	return p
}

// WithThresholds returns a copy of params with the given signal and mass
// thresholds.
func (p Params) WithThresholds(signal, mass float64) Params {
	p.SignalThresh = signal
	p.MassThresh = mass
	return p
}

// WithBandpass returns a copy of params with bandpass filtering toggled.
func (p Params) WithBandpass(enabled bool) Params {
	p.Bandpass = enabled
	return p
}

// WithNoiseRadius returns a copy of params with the given noise correlation
// length.
func (p Params) WithNoiseRadius(noiseRadius float64) Params {
	p.NoiseRadius = noiseRadius
	return p
}

// Validate reports the first invalid parameter, if any. Locate calls this
// before doing any per-pixel work.
func (p Params) Validate() error {
	if p.Radius < 1 {
		return fmt.Errorf("radius must be at least 1, got %d", p.Radius)
	}
	if p.MassThresh < 0 {
		return fmt.Errorf("mass threshold must not be negative, got %g", p.MassThresh)
	}
	if p.NoiseRadius <= 0 {
		return fmt.Errorf("noise radius must be positive, got %g", p.NoiseRadius)
	}
	if p.MaxIterations < 1 {
		return fmt.Errorf("max iterations must be at least 1, got %d", p.MaxIterations)
	}
	if p.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive, got %g", p.Epsilon)
	}
	return nil
}
