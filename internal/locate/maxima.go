package locate

import (
	"spotfinder/internal/frame"
	"spotfinder/pkg/geometry"
)

// FindLocalMaxima scans the frame for pixels that are the strict maximum
// within a disk of the given radius and exceed signalThresh. Candidates are
// returned in raster order (row-major, y then x). Pixels within radius of
// the frame border are excluded since no full disk fits there.
//
// Equal-valued pixels within one disk are resolved first-found-wins: on a
// connected plateau only the first pixel in raster order is reported.
//
// A separable two-pass sliding maximum over the bounding square prunes the
// frame first; the exact disk test only runs on the few surviving pixels,
// keeping the scan fast on realistic frame sizes.
func FindLocalMaxima(f *frame.Frame, radius int, signalThresh float64) []geometry.PointInt {
	w, h := f.W(), f.H()
	if w < 2*radius+1 || h < 2*radius+1 {
		return nil
	}

	squareMax := slidingSquareMax(f, radius)
	offsets := diskOffsets(radius)

	var candidates []geometry.PointInt
	for y := radius; y < h-radius; y++ {
		for x := radius; x < w-radius; x++ {
			v := f.At(x, y)
			if v <= signalThresh {
				continue
			}
			// Cheap necessary condition: maximum of the bounding square.
			if v < squareMax.At(x, y) {
				continue
			}
			if isDiskMaximum(f, x, y, v, offsets) {
				candidates = append(candidates, geometry.PointInt{X: x, Y: y})
			}
		}
	}
	return candidates
}

// isDiskMaximum checks strict dominance over the disk neighborhood. A tie
// with a pixel earlier in raster order disqualifies the center, so each
// plateau yields exactly one candidate.
func isDiskMaximum(f *frame.Frame, x, y int, v float64, offsets []geometry.PointInt) bool {
	for _, o := range offsets {
		nv := f.At(x+o.X, y+o.Y)
		if nv > v {
			return false
		}
		if nv == v && (o.Y < 0 || (o.Y == 0 && o.X < 0)) {
			return false
		}
	}
	return true
}

// slidingSquareMax computes, for every pixel, the maximum over the
// (2*radius+1)^2 square centered on it, as two 1D passes (rows, then
// columns). Borders clamp to the frame edge.
func slidingSquareMax(f *frame.Frame, radius int) *frame.Frame {
	w, h := f.W(), f.H()

	rows := frame.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			lo := clampIndex(x-radius, w)
			hi := clampIndex(x+radius, w)
			m := f.At(lo, y)
			for i := lo + 1; i <= hi; i++ {
				if v := f.At(i, y); v > m {
					m = v
				}
			}
			rows.Set(x, y, m)
		}
	}

	out := frame.New(w, h)
	for y := 0; y < h; y++ {
		lo := clampIndex(y-radius, h)
		hi := clampIndex(y+radius, h)
		for x := 0; x < w; x++ {
			m := rows.At(x, lo)
			for i := lo + 1; i <= hi; i++ {
				if v := rows.At(x, i); v > m {
					m = v
				}
			}
			out.Set(x, y, m)
		}
	}
	return out
}

// diskOffsets lists all (dx, dy) with dx^2+dy^2 <= radius^2, excluding the
// origin, in raster order.
func diskOffsets(radius int) []geometry.PointInt {
	var offsets []geometry.PointInt
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if dx*dx+dy*dy <= r2 {
				offsets = append(offsets, geometry.PointInt{X: dx, Y: dy})
			}
		}
	}
	return offsets
}
