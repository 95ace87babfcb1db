// Package geometry provides basic geometric types shared by the board
// detection pipeline.
package geometry

import (
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// PointInt represents a 2D point with integer pixel coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewPointInt creates a new PointInt.
func NewPointInt(x, y int) PointInt {
	return PointInt{X: x, Y: y}
}

// ToFloat converts to Point2D.
func (p PointInt) ToFloat() Point2D {
	return Point2D{X: float64(p.X), Y: float64(p.Y)}
}

// Distance returns the Euclidean distance to another point.
func (p PointInt) Distance(other PointInt) float64 {
	return p.ToFloat().Distance(other.ToFloat())
}

// RectInt is an axis-aligned rectangle held by its corner points, both
// inclusive of the pixels they were grown from.
type RectInt struct {
	TopLeft     PointInt `json:"topLeft"`
	BottomRight PointInt `json:"bottomRight"`
}

// NewRectInt creates a RectInt covering a single point.
func NewRectInt(p PointInt) RectInt {
	return RectInt{TopLeft: p, BottomRight: p}
}

// Width returns the horizontal extent of the rectangle.
func (r RectInt) Width() int {
	return r.BottomRight.X - r.TopLeft.X
}

// Height returns the vertical extent of the rectangle.
func (r RectInt) Height() int {
	return r.BottomRight.Y - r.TopLeft.Y
}

// Center returns the center pixel of the rectangle. Integer division
// skews the result toward the bottom-right corner on odd extents, which
// downstream grid fitting relies on for reproducibility.
func (r RectInt) Center() PointInt {
	return PointInt{
		X: r.BottomRight.X - (r.BottomRight.X-r.TopLeft.X)/2,
		Y: r.BottomRight.Y - (r.BottomRight.Y-r.TopLeft.Y)/2,
	}
}

// Extend grows the rectangle so it covers p.
func (r RectInt) Extend(p PointInt) RectInt {
	if p.X < r.TopLeft.X {
		r.TopLeft.X = p.X
	}
	if p.Y < r.TopLeft.Y {
		r.TopLeft.Y = p.Y
	}
	if p.X > r.BottomRight.X {
		r.BottomRight.X = p.X
	}
	if p.Y > r.BottomRight.Y {
		r.BottomRight.Y = p.Y
	}
	return r
}

// Centroid computes the centroid (average position) of a set of points.
func Centroid(points []PointInt) Point2D {
	if len(points) == 0 {
		return Point2D{}
	}
	var sumX, sumY float64
	for _, p := range points {
		sumX += float64(p.X)
		sumY += float64(p.Y)
	}
	n := float64(len(points))
	return Point2D{X: sumX / n, Y: sumY / n}
}
