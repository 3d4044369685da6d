package radial

import "math"

// Point is a 2D canvas coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// RingRadiusAt returns the radius of ring depth. The root ring has radius 0.
func (c Config) RingRadiusAt(depth int) float64 {
	if depth <= 0 {
		return 0
	}
	return c.RingRadius * float64(depth)
}

// Center returns the center of a node on ring depth at angle.
// The root is always at the origin.
func (c Config) Center(depth int, angle float64) Point {
	if depth <= 0 {
		return Point{}
	}
	r := c.RingRadiusAt(depth)
	return Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
}

// TopLeft converts a node center into the corner of its rectangle.
func (c Config) TopLeft(center Point) Point {
	return Point{X: center.X - c.NodeWidth/2, Y: center.Y - c.NodeHeight/2}
}

// CenterOf converts a stored top-left position back into the node center.
func (c Config) CenterOf(topLeft Point) Point {
	return Point{X: topLeft.X + c.NodeWidth/2, Y: topLeft.Y + c.NodeHeight/2}
}
