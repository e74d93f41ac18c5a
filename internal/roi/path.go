package roi

import (
	"fmt"

	"spotfinder/internal/frame"
	"spotfinder/internal/locate"
	"spotfinder/pkg/geometry"
)

// PathROI is a closed polygonal region of interest. For localization the
// frame is cropped to the path's bounding box enlarged by a buffer band, so
// the bandpass filter does not see an artificial edge at the path boundary;
// pixels farther than the buffer from the path are replaced by the mean
// intensity inside the path. After localization, features outside the
// unbuffered path are discarded.
type PathROI struct {
	path   geometry.Path
	buffer int
}

// NewPathROI creates a polygonal ROI. buffer is the width of the band, in
// pixels, kept around the path to avoid boundary artefacts; it must not be
// negative.
func NewPathROI(path geometry.Path, buffer int) *PathROI {
	if buffer < 0 {
		buffer = 0
	}
	return &PathROI{path: path, buffer: buffer}
}

// CropFrame extracts the buffered ROI from the frame. It returns the cropped
// frame and the origin of the crop within the original frame, for mapping
// coordinates back.
func (r *PathROI) CropFrame(f *frame.Frame) (*frame.Frame, geometry.PointInt, error) {
	rect := r.path.BoundingRect().Inflate(r.buffer).Intersect(f.Bounds())
	if rect.Empty() {
		return nil, geometry.PointInt{}, fmt.Errorf("path lies outside the frame")
	}
	crop, err := f.Crop(rect)
	if err != nil {
		return nil, geometry.PointInt{}, err
	}

	w, h := crop.W(), crop.H()
	inside := make([]bool, w*h)
	var sum float64
	var n int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.path.Contains(float64(rect.X+x), float64(rect.Y+y)) {
				inside[y*w+x] = true
				sum += crop.At(x, y)
				n++
			}
		}
	}
	if n == 0 {
		return nil, geometry.PointInt{}, fmt.Errorf("path covers no pixels")
	}
	mean := sum / float64(n)

	// Keep real pixel values in a buffer-wide band around the path; fill
	// everything beyond it with the inside mean.
	band := dilateMask(inside, w, h, r.buffer)
	for i, keep := range band {
		if !keep {
			crop.Pix()[i] = mean
		}
	}
	return crop, geometry.PointInt{X: rect.X, Y: rect.Y}, nil
}

// FilterFeatures restricts a feature table to the (unbuffered) path. With
// resetOrigin, coordinates are shifted so the top-left corner of the path's
// bounding box becomes the origin.
func (r *PathROI) FilterFeatures(feats []locate.Feature, resetOrigin bool) []locate.Feature {
	origin := r.path.BoundingRect()
	var kept []locate.Feature
	for _, ft := range feats {
		if !r.path.Contains(ft.X, ft.Y) {
			continue
		}
		if resetOrigin {
			ft.X -= float64(origin.X)
			ft.Y -= float64(origin.Y)
		}
		kept = append(kept, ft)
	}
	return kept
}

// RestrictLocate localizes features within a polygonal ROI of the frame.
// Coordinates of the result are in full-frame pixels, or relative to the
// path's bounding box when resetOrigin is set.
func RestrictLocate(f *frame.Frame, path geometry.Path, buffer int, p locate.Params, resetOrigin bool) ([]locate.Feature, error) {
	r := NewPathROI(path, buffer)
	crop, origin, err := r.CropFrame(f)
	if err != nil {
		return nil, err
	}
	feats, err := locate.Locate(crop, p)
	if err != nil {
		return nil, err
	}
	shifted := make([]locate.Feature, len(feats))
	for i, ft := range feats {
		ft.X += float64(origin.X)
		ft.Y += float64(origin.Y)
		shifted[i] = ft
	}
	return r.FilterFeatures(shifted, resetOrigin), nil
}

// dilateMask grows a binary mask by radius pixels in Chebyshev distance,
// as two 1D sliding-OR passes.
func dilateMask(mask []bool, w, h, radius int) []bool {
	if radius <= 0 {
		out := make([]bool, len(mask))
		copy(out, mask)
		return out
	}

	rows := make([]bool, len(mask))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			lo := max(x-radius, 0)
			hi := min(x+radius, w-1)
			for i := lo; i <= hi; i++ {
				if mask[y*w+i] {
					rows[y*w+x] = true
					break
				}
			}
		}
	}

	out := make([]bool, len(mask))
	for y := 0; y < h; y++ {
		lo := max(y-radius, 0)
		hi := min(y+radius, h-1)
		for x := 0; x < w; x++ {
			for i := lo; i <= hi; i++ {
				if rows[i*w+x] {
					out[y*w+x] = true
					break
				}
			}
		}
	}
	return out
}
