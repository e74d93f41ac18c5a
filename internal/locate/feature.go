// Package locate implements Crocker & Grier style localization of bright,
// Gaussian-like features in noisy microscopy frames: bandpass filtering,
// local-maximum candidate search, iterative sub-pixel moment refinement and
// duplicate suppression.
//
// The algorithm follows Crocker, J. C. & Grier, D. G.: "Methods of digital
// video microscopy for colloidal studies", J. Colloid Interface Sci. 179,
// 298-310 (1996).
package locate

// Column names of a serialized feature table, in canonical order. Downstream
// consumers index the table positionally, so this order is part of the
// public contract.
var (
	Columns      = []string{"x", "y", "mass", "size", "ecc"}
	ColumnsFrame = []string{"x", "y", "mass", "size", "ecc", "frame"}
)

// Feature is one localized spot. Positions are sub-pixel coordinates in the
// original, unfiltered frame. Records are never mutated after creation.
type Feature struct {
	X    float64 `json:"x"`    // Sub-pixel center, x
	Y    float64 `json:"y"`    // Sub-pixel center, y
	Mass float64 `json:"mass"` // Integrated background-subtracted intensity in the disk
	Size float64 `json:"size"` // Radius of gyration, sqrt of the second radial moment
	Ecc  float64 `json:"ecc"`  // Moment-tensor eccentricity, 0 = circularly symmetric

	// Frame is the index within a frame sequence, set by Batch.
	// -1 for single-frame localization.
	Frame int `json:"frame"`
}

// Row returns the numeric columns in canonical order [x, y, mass, size, ecc].
func (ft Feature) Row() []float64 {
	return []float64{ft.X, ft.Y, ft.Mass, ft.Size, ft.Ecc}
}
