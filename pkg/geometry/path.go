package geometry

import "math"

// Path is a closed polygon given by its vertices in order. The closing edge
// from the last vertex back to the first is implicit.
type Path []Point2D

// Contains returns true if the point (x, y) is inside the polygon.
// Uses the ray casting algorithm.
func (p Path) Contains(x, y float64) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := p[i].X, p[i].Y
		xj, yj := p[j].X, p[j].Y
		if ((yi > y) != (yj > y)) && (x < (xj-xi)*(y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}
	return inside
}

// BoundingRect returns the smallest integer rectangle covering all vertices.
// Fractional vertices are expanded outward to whole pixels.
func (p Path) BoundingRect() RectInt {
	if len(p) == 0 {
		return RectInt{}
	}
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	x1 := int(math.Floor(minX))
	y1 := int(math.Floor(minY))
	x2 := int(math.Ceil(maxX))
	y2 := int(math.Ceil(maxY))
	return RectInt{X: x1, Y: y1, Width: x2 - x1 + 1, Height: y2 - y1 + 1}
}

// RectPath builds a rectangular path from two opposite corners.
func RectPath(topLeft, bottomRight Point2D) Path {
	return Path{
		{X: topLeft.X, Y: topLeft.Y},
		{X: bottomRight.X, Y: topLeft.Y},
		{X: bottomRight.X, Y: bottomRight.Y},
		{X: topLeft.X, Y: bottomRight.Y},
	}
}
