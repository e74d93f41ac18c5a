package locate

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"spotfinder/internal/frame"
	"spotfinder/pkg/geometry"
)

// scratch is the reusable window buffer for refinement. One instance serves
// all candidates of a Locate call, so frames with thousands of candidates do
// not allocate per candidate.
type scratch struct {
	radius int
	side   int
	buf    []float64 // window pixels, row-major
	inDisk []bool    // disk mask per window index
	nBand  int       // pixels in the window outside the disk (background band)
}

func newScratch(radius int) *scratch {
	side := 2*radius + 1
	s := &scratch{
		radius: radius,
		side:   side,
		buf:    make([]float64, side*side),
		inDisk: make([]bool, side*side),
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			i := (dy+radius)*side + (dx + radius)
			if dx*dx+dy*dy <= r2 {
				s.inDisk[i] = true
			} else {
				s.nBand++
			}
		}
	}
	return s
}

// refineCandidate turns an integer candidate into a sub-pixel feature by
// iterative centroid refinement on the raw, unfiltered frame.
//
// Each iteration extracts the square window around the current center,
// estimates the local background as the mean of the window pixels outside
// the inscribed disk (the corner band), and computes the intensity-weighted
// centroid of the background-subtracted disk pixels. If the centroid is more
// than Epsilon from the window center, the window is re-centered on the
// rounded displacement and the loop repeats, up to MaxIterations; hitting
// the cap accepts the last iterate.
//
// Candidates whose window would leave the frame, whose disk mass is not
// positive, or whose refined center ends up within radius of the frame edge
// are dropped silently; the second return value is false. These are
// expected, frequent outcomes, not errors.
func refineCandidate(raw *frame.Frame, c geometry.PointInt, p Params, s *scratch) (Feature, bool) {
	r := p.Radius
	w, h := raw.W(), raw.H()
	cx, cy := c.X, c.Y

	var bg, mass, mx, my float64
	for iter := 0; ; iter++ {
		if cx < r || cy < r || cx >= w-r || cy >= h-r {
			return Feature{}, false
		}

		// Window copy into the scratch buffer.
		i := 0
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				s.buf[i] = raw.At(cx+dx, cy+dy)
				i++
			}
		}

		// Local background: mean of the corner band.
		var bandSum float64
		for i, v := range s.buf {
			if !s.inDisk[i] {
				bandSum += v
			}
		}
		bg = bandSum / float64(s.nBand)

		// Background-subtracted disk moments.
		mass, mx, my = 0, 0, 0
		i = 0
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if s.inDisk[i] {
					v := s.buf[i] - bg
					mass += v
					mx += v * float64(dx)
					my += v * float64(dy)
				}
				i++
			}
		}
		if mass <= 0 {
			return Feature{}, false
		}
		mx /= mass
		my /= mass

		if (math.Abs(mx) <= p.Epsilon && math.Abs(my) <= p.Epsilon) ||
			iter == p.MaxIterations-1 {
			break
		}
		cx += int(math.Round(mx))
		cy += int(math.Round(my))
	}

	x := float64(cx) + mx
	y := float64(cy) + my
	if x < float64(r) || x > float64(w-1-r) || y < float64(r) || y > float64(h-1-r) {
		return Feature{}, false
	}

	// Second moments about the centroid, from the last window.
	var m20, m02, m11 float64
	i := 0
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if s.inDisk[i] {
				v := s.buf[i] - bg
				ddx := float64(dx) - mx
				ddy := float64(dy) - my
				m20 += v * ddx * ddx
				m02 += v * ddy * ddy
				m11 += v * ddx * ddy
			}
			i++
		}
	}
	m20 /= mass
	m02 /= mass
	m11 /= mass

	size := 0.0
	if s2 := m20 + m02; s2 > 0 {
		size = math.Sqrt(s2)
	}

	return Feature{
		X:     x,
		Y:     y,
		Mass:  mass,
		Size:  size,
		Ecc:   eccentricity(m20, m02, m11),
		Frame: -1,
	}, true
}

// eccentricity computes (lmax - lmin) / (lmax + lmin) from the eigenvalues
// of the 2x2 second-moment tensor. A degenerate tensor reports 0.
func eccentricity(m20, m02, m11 float64) float64 {
	tensor := mat.NewSymDense(2, []float64{m20, m11, m11, m02})
	var eig mat.EigenSym
	if !eig.Factorize(tensor, false) {
		return 0
	}
	vals := eig.Values(nil)
	lmin, lmax := vals[0], vals[1]
	if lmax < lmin {
		lmin, lmax = lmax, lmin
	}
	sum := lmax + lmin
	if sum <= 0 {
		return 0
	}
	return (lmax - lmin) / sum
}
