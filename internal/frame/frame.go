// Package frame provides the float64 image plane that localization operates on.
package frame

import (
	"fmt"
	"image"

	"spotfinder/pkg/geometry"
)

// Frame is a single-channel image with float64 pixel intensities, stored
// row-major. Pixel (x, y) is column x of row y. The localization core never
// mutates its input frames; operations that change pixel data return a new
// Frame.
type Frame struct {
	w, h int
	pix  []float64
}

// New creates a zero-filled frame of the given size.
func New(w, h int) *Frame {
	if w < 0 || h < 0 {
		return &Frame{}
	}
	return &Frame{w: w, h: h, pix: make([]float64, w*h)}
}

// FromSlice wraps an existing row-major pixel slice. The slice is used
// directly, not copied.
func FromSlice(pix []float64, w, h int) (*Frame, error) {
	if w < 0 || h < 0 || len(pix) != w*h {
		return nil, fmt.Errorf("pixel slice length %d does not match %dx%d", len(pix), w, h)
	}
	return &Frame{w: w, h: h, pix: pix}, nil
}

// FromImage converts a decoded image to a float64 frame. Gray and Gray16
// images keep their raw values (0-255 and 0-65535); color images are reduced
// to 16-bit luminance using ITU-R BT.601 weights.
func FromImage(src image.Image) *Frame {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	f := New(w, h)

	switch img := src.(type) {
	case *image.Gray16:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
				f.pix[y*w+x] = float64(uint16(img.Pix[i])<<8 | uint16(img.Pix[i+1]))
			}
		}
	case *image.Gray:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				f.pix[y*w+x] = float64(img.Pix[img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)])
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				f.pix[y*w+x] = float64((19595*r + 38470*g + 7471*b + 1<<15) >> 16)
			}
		}
	}
	return f
}

// W returns the frame width in pixels.
func (f *Frame) W() int { return f.w }

// H returns the frame height in pixels.
func (f *Frame) H() int { return f.h }

// Empty returns true if the frame has no pixels.
func (f *Frame) Empty() bool { return f == nil || f.w == 0 || f.h == 0 }

// At returns the intensity at (x, y). No bounds check; callers iterate
// within [0, W) x [0, H).
func (f *Frame) At(x, y int) float64 { return f.pix[y*f.w+x] }

// Set assigns the intensity at (x, y).
func (f *Frame) Set(x, y int, v float64) { f.pix[y*f.w+x] = v }

// Pix exposes the underlying row-major pixel slice.
func (f *Frame) Pix() []float64 { return f.pix }

// Bounds returns the frame rectangle anchored at the origin.
func (f *Frame) Bounds() geometry.RectInt {
	return geometry.RectInt{Width: f.w, Height: f.h}
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	c := New(f.w, f.h)
	copy(c.pix, f.pix)
	return c
}

// Fill sets every pixel to v.
func (f *Frame) Fill(v float64) {
	for i := range f.pix {
		f.pix[i] = v
	}
}

// Crop returns a copy of the sub-region r. The region must lie entirely
// within the frame.
func (f *Frame) Crop(r geometry.RectInt) (*Frame, error) {
	if r.Empty() {
		return nil, fmt.Errorf("empty crop region")
	}
	if r.X < 0 || r.Y < 0 || r.X+r.Width > f.w || r.Y+r.Height > f.h {
		return nil, fmt.Errorf("crop region %+v exceeds frame bounds %dx%d", r, f.w, f.h)
	}
	c := New(r.Width, r.Height)
	for y := 0; y < r.Height; y++ {
		src := (r.Y+y)*f.w + r.X
		copy(c.pix[y*r.Width:(y+1)*r.Width], f.pix[src:src+r.Width])
	}
	return c, nil
}
