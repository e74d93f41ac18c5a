package locate

import (
	"math"

	"spotfinder/internal/frame"
)

// Bandpass suppresses pixel noise and flattens uneven background before peak
// detection. The frame is convolved with a normalized Gaussian of correlation
// length noiseRadius (kernel half-width radius), and a boxcar average over
// the same 2*radius+1 window is subtracted as the local background estimate.
//
// Border pixels are handled by replicating the edge value (clamp-to-edge) in
// both passes; this policy is fixed so repeated runs match bit for bit.
// Output values may be negative unless nonNeg is set; downstream thresholding
// handles them. The input frame is never modified.
func Bandpass(f *frame.Frame, radius int, noiseRadius float64, nonNeg bool) *frame.Frame {
	gaussKernel := gaussianKernel(radius, noiseRadius)
	boxKernel := boxcarKernel(radius)

	smoothed := convolveSeparable(f, gaussKernel)
	background := convolveSeparable(f, boxKernel)

	out := smoothed
	pix := out.Pix()
	bg := background.Pix()
	for i := range pix {
		v := pix[i] - bg[i]
		if nonNeg && v < 0 {
			v = 0
		}
		pix[i] = v
	}
	return out
}

// gaussianKernel builds a normalized 1D Gaussian of half-width radius with
// weights exp(-i^2 / (4 * noiseRadius^2)).
func gaussianKernel(radius int, noiseRadius float64) []float64 {
	k := make([]float64, 2*radius+1)
	var sum float64
	for i := -radius; i <= radius; i++ {
		v := math.Exp(-float64(i*i) / (4 * noiseRadius * noiseRadius))
		k[i+radius] = v
		sum += v
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// boxcarKernel builds a uniform 1D kernel of half-width radius.
func boxcarKernel(radius int) []float64 {
	n := 2*radius + 1
	k := make([]float64, n)
	w := 1 / float64(n)
	for i := range k {
		k[i] = w
	}
	return k
}

// convolveSeparable applies the same 1D kernel along rows and then columns,
// replicating edge pixels outside the frame. Returns a new frame.
func convolveSeparable(f *frame.Frame, kernel []float64) *frame.Frame {
	w, h := f.W(), f.H()
	radius := len(kernel) / 2

	horizontal := frame.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc float64
			for i := -radius; i <= radius; i++ {
				acc += kernel[i+radius] * f.At(clampIndex(x+i, w), y)
			}
			horizontal.Set(x, y, acc)
		}
	}

	out := frame.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc float64
			for i := -radius; i <= radius; i++ {
				acc += kernel[i+radius] * horizontal.At(x, clampIndex(y+i, h))
			}
			out.Set(x, y, acc)
		}
	}
	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
