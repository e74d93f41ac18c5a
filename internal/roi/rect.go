// Package roi restricts localization to regions of interest, either
// rectangular crops or closed polygonal paths.
package roi

import (
	"spotfinder/internal/frame"
	"spotfinder/internal/locate"
	"spotfinder/pkg/geometry"
)

// Rect is a rectangular region of interest. TopLeft is inclusive for
// cropping; BottomRight is exclusive, matching image slice bounds.
type Rect struct {
	TopLeft     geometry.PointInt
	BottomRight geometry.PointInt
}

// NewRect creates a rectangular ROI from two corners.
func NewRect(topLeft, bottomRight geometry.PointInt) Rect {
	return Rect{TopLeft: topLeft, BottomRight: bottomRight}
}

// Crop returns the frame restricted to the ROI.
func (r Rect) Crop(f *frame.Frame) (*frame.Frame, error) {
	return f.Crop(geometry.RectInt{
		X:      r.TopLeft.X,
		Y:      r.TopLeft.Y,
		Width:  r.BottomRight.X - r.TopLeft.X,
		Height: r.BottomRight.Y - r.TopLeft.Y,
	})
}

// Filter restricts a feature table to the ROI. Features on the ROI edge are
// excluded (strict inequalities). With resetOrigin, the top-left corner
// becomes the new coordinate origin; with invert, only features outside the
// ROI are kept and the origin is never reset.
func (r Rect) Filter(feats []locate.Feature, resetOrigin, invert bool) []locate.Feature {
	var kept []locate.Feature
	for _, ft := range feats {
		inside := ft.X > float64(r.TopLeft.X) && ft.X < float64(r.BottomRight.X) &&
			ft.Y > float64(r.TopLeft.Y) && ft.Y < float64(r.BottomRight.Y)
		if inside == invert {
			continue
		}
		if resetOrigin && !invert {
			ft.X -= float64(r.TopLeft.X)
			ft.Y -= float64(r.TopLeft.Y)
		}
		kept = append(kept, ft)
	}
	return kept
}
