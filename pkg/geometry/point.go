package geometry

import "math"

// Point is a 2D coordinate in millimeters. The coordinate space is y-down,
// matching SVG: the origin is the top-left of a panel or sheet.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Dist returns the Euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// RotatedBounds returns the axis-aligned bounding box of a w×h rectangle
// after rotation by angle degrees about its center.
func RotatedBounds(w, h, angleDeg float64) (bw, bh float64) {
	rad := math.Abs(angleDeg) * math.Pi / 180
	cos := math.Abs(math.Cos(rad))
	sin := math.Abs(math.Sin(rad))
	return w*cos + h*sin, w*sin + h*cos
}
