package frame

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotfinder/pkg/geometry"
)

func TestFromSlice(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		f, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, f.W())
		assert.Equal(t, 2, f.H())
		assert.Equal(t, 6.0, f.At(2, 1))
	})

	t.Run("length mismatch", func(t *testing.T) {
		t.Parallel()
		_, err := FromSlice([]float64{1, 2, 3}, 2, 2)
		assert.Error(t, err)
	})
}

func TestFromImage(t *testing.T) {
	t.Parallel()

	t.Run("gray16 keeps raw values", func(t *testing.T) {
		t.Parallel()
		img := image.NewGray16(image.Rect(0, 0, 2, 2))
		img.SetGray16(0, 0, color.Gray16{Y: 0})
		img.SetGray16(1, 0, color.Gray16{Y: 1000})
		img.SetGray16(0, 1, color.Gray16{Y: 40000})
		img.SetGray16(1, 1, color.Gray16{Y: 65535})

		f := FromImage(img)
		assert.Equal(t, 0.0, f.At(0, 0))
		assert.Equal(t, 1000.0, f.At(1, 0))
		assert.Equal(t, 40000.0, f.At(0, 1))
		assert.Equal(t, 65535.0, f.At(1, 1))
	})

	t.Run("gray keeps raw values", func(t *testing.T) {
		t.Parallel()
		img := image.NewGray(image.Rect(0, 0, 2, 1))
		img.SetGray(0, 0, color.Gray{Y: 17})
		img.SetGray(1, 0, color.Gray{Y: 255})

		f := FromImage(img)
		assert.Equal(t, 17.0, f.At(0, 0))
		assert.Equal(t, 255.0, f.At(1, 0))
	})

	t.Run("color reduces to 16-bit luminance", func(t *testing.T) {
		t.Parallel()
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

		f := FromImage(img)
		assert.InDelta(t, 65535.0, f.At(0, 0), 1.0)
	})
}

func TestCrop(t *testing.T) {
	t.Parallel()

	f := New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			f.Set(x, y, float64(y*4+x))
		}
	}

	t.Run("values and offsets", func(t *testing.T) {
		t.Parallel()
		c, err := f.Crop(geometry.RectInt{X: 1, Y: 2, Width: 2, Height: 2})
		require.NoError(t, err)
		assert.Equal(t, 2, c.W())
		assert.Equal(t, 2, c.H())
		assert.Equal(t, 9.0, c.At(0, 0))
		assert.Equal(t, 14.0, c.At(1, 1))
	})

	t.Run("copy is independent", func(t *testing.T) {
		t.Parallel()
		c, err := f.Crop(geometry.RectInt{X: 0, Y: 0, Width: 2, Height: 2})
		require.NoError(t, err)
		c.Set(0, 0, -1)
		assert.Equal(t, 0.0, f.At(0, 0))
	})

	t.Run("out of bounds", func(t *testing.T) {
		t.Parallel()
		_, err := f.Crop(geometry.RectInt{X: 2, Y: 2, Width: 3, Height: 3})
		assert.Error(t, err)
	})

	t.Run("empty region", func(t *testing.T) {
		t.Parallel()
		_, err := f.Crop(geometry.RectInt{X: 1, Y: 1, Width: 0, Height: 2})
		assert.Error(t, err)
	})
}

func TestClone(t *testing.T) {
	t.Parallel()

	f := New(2, 2)
	f.Set(1, 1, 7)
	c := f.Clone()
	c.Set(1, 1, 9)
	assert.Equal(t, 7.0, f.At(1, 1))
	assert.Equal(t, 9.0, c.At(1, 1))
}
