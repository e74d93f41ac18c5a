package locate

import (
	"fmt"

	"spotfinder/internal/frame"
)

// Locate finds bright features in a single frame and returns their sub-pixel
// positions, masses, sizes and eccentricities. The pipeline is bandpass
// (optional) -> local maxima -> per-candidate moment refinement -> mass
// threshold and duplicate suppression.
//
// The input frame is never modified. Output order follows the raster order
// of the surviving candidates, so repeated calls with identical input and
// parameters return identical results. Per-candidate failures (degenerate
// windows, non-positive mass) silently shrink the result; only invalid
// configuration is reported as an error.
func Locate(f *frame.Frame, p Params) ([]Feature, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid localization parameters: %w", err)
	}
	if f.Empty() {
		return nil, fmt.Errorf("empty frame")
	}

	search := f
	if p.Bandpass {
		search = Bandpass(f, p.Radius, p.NoiseRadius, p.NonNeg)
	}

	candidates := FindLocalMaxima(search, p.Radius, p.SignalThresh)
	if len(candidates) == 0 {
		return nil, nil
	}

	s := newScratch(p.Radius)
	feats := make([]Feature, 0, len(candidates))
	for _, c := range candidates {
		if ft, ok := refineCandidate(f, c, p, s); ok {
			feats = append(feats, ft)
		}
	}

	feats = filterByMass(feats, p.MassThresh)
	feats = dedupFeatures(feats, float64(p.Radius)/2)
	return feats, nil
}
