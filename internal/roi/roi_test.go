package roi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotfinder/internal/frame"
	"spotfinder/internal/locate"
	"spotfinder/internal/sim"
	"spotfinder/pkg/geometry"
)

const testSigma = 1.2

func roiTestFrame() *frame.Frame {
	return sim.Gauss(120, 100, []sim.Spot{
		{X: 30.4, Y: 40.7, Amplitude: 1500, Sigma: testSigma}, // inside the ROI
		{X: 55.2, Y: 50.3, Amplitude: 1200, Sigma: testSigma}, // inside the ROI
		{X: 90.0, Y: 80.0, Amplitude: 1800, Sigma: testSigma}, // outside the ROI
		{X: 12.0, Y: 70.0, Amplitude: 1400, Sigma: testSigma}, // outside the ROI
	}, 0)
}

func roiParams() locate.Params {
	return locate.DefaultParams().WithRadius(4).WithThresholds(400, 0).WithBandpass(false)
}

func TestRectFilter(t *testing.T) {
	t.Parallel()

	feats := []locate.Feature{
		{X: 10.5, Y: 10.5, Mass: 100},
		{X: 30.0, Y: 30.0, Mass: 200},
		{X: 20.0, Y: 45.0, Mass: 300},
	}
	r := NewRect(geometry.PointInt{X: 5, Y: 5}, geometry.PointInt{X: 40, Y: 40})

	t.Run("filter without reset", func(t *testing.T) {
		t.Parallel()
		kept := r.Filter(feats, false, false)
		require.Len(t, kept, 2)
		assert.Equal(t, 10.5, kept[0].X)
		assert.Equal(t, 30.0, kept[1].X)
	})

	t.Run("reset origin", func(t *testing.T) {
		t.Parallel()
		kept := r.Filter(feats, true, false)
		require.Len(t, kept, 2)
		assert.Equal(t, 5.5, kept[0].X)
		assert.Equal(t, 5.5, kept[0].Y)
	})

	t.Run("invert", func(t *testing.T) {
		t.Parallel()
		kept := r.Filter(feats, false, true)
		require.Len(t, kept, 1)
		assert.Equal(t, 45.0, kept[0].Y)
	})

	t.Run("edge features excluded", func(t *testing.T) {
		t.Parallel()
		edge := []locate.Feature{{X: 5, Y: 20}, {X: 40, Y: 20}}
		assert.Empty(t, r.Filter(edge, false, false))
	})
}

func TestRectCrop(t *testing.T) {
	t.Parallel()

	f := roiTestFrame()
	r := NewRect(geometry.PointInt{X: 10, Y: 20}, geometry.PointInt{X: 50, Y: 60})
	c, err := r.Crop(f)
	require.NoError(t, err)
	assert.Equal(t, 40, c.W())
	assert.Equal(t, 40, c.H())
	assert.Equal(t, f.At(10, 20), c.At(0, 0))
}

// TestRestrictLocateEquivalence checks that localizing inside a buffered ROI
// matches localizing the full frame and filtering the result to the ROI.
func TestRestrictLocateEquivalence(t *testing.T) {
	t.Parallel()

	f := roiTestFrame()
	params := roiParams()
	path := geometry.RectPath(
		geometry.Point2D{X: 20, Y: 30},
		geometry.Point2D{X: 70, Y: 60},
	)

	full, err := locate.Locate(f, params)
	require.NoError(t, err)
	wantFiltered := NewPathROI(path, 0).FilterFeatures(full, false)
	require.Len(t, wantFiltered, 2)

	restricted, err := RestrictLocate(f, path, params.Radius+1, params, false)
	require.NoError(t, err)
	require.Len(t, restricted, len(wantFiltered))

	for i := range restricted {
		assert.InDelta(t, wantFiltered[i].X, restricted[i].X, 1e-9)
		assert.InDelta(t, wantFiltered[i].Y, restricted[i].Y, 1e-9)
		assert.InDelta(t, wantFiltered[i].Mass, restricted[i].Mass, 1e-6)
		assert.InDelta(t, wantFiltered[i].Size, restricted[i].Size, 1e-9)
	}
}

func TestRestrictLocateResetOrigin(t *testing.T) {
	t.Parallel()

	f := roiTestFrame()
	params := roiParams()
	path := geometry.RectPath(
		geometry.Point2D{X: 20, Y: 30},
		geometry.Point2D{X: 70, Y: 60},
	)

	absolute, err := RestrictLocate(f, path, params.Radius+1, params, false)
	require.NoError(t, err)
	relative, err := RestrictLocate(f, path, params.Radius+1, params, true)
	require.NoError(t, err)
	require.Len(t, relative, len(absolute))

	origin := path.BoundingRect()
	for i := range absolute {
		assert.InDelta(t, absolute[i].X-float64(origin.X), relative[i].X, 1e-9)
		assert.InDelta(t, absolute[i].Y-float64(origin.Y), relative[i].Y, 1e-9)
	}
}

func TestPathROICropFrame(t *testing.T) {
	t.Parallel()

	t.Run("origin and size", func(t *testing.T) {
		t.Parallel()
		f := roiTestFrame()
		path := geometry.RectPath(
			geometry.Point2D{X: 20, Y: 30},
			geometry.Point2D{X: 70, Y: 60},
		)
		crop, origin, err := NewPathROI(path, 5).CropFrame(f)
		require.NoError(t, err)
		assert.Equal(t, geometry.PointInt{X: 15, Y: 25}, origin)
		assert.Equal(t, 61, crop.W())
		assert.Equal(t, 41, crop.H())
	})

	t.Run("path outside frame", func(t *testing.T) {
		t.Parallel()
		f := frame.New(30, 30)
		path := geometry.RectPath(
			geometry.Point2D{X: 100, Y: 100},
			geometry.Point2D{X: 120, Y: 120},
		)
		_, _, err := NewPathROI(path, 2).CropFrame(f)
		assert.Error(t, err)
	})
}
