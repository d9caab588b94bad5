// Package collider adapts point sets for convex queries.
//
// The GJK and EPA packages only interact with shapes through their support
// mapping, so any convex shape is represented by the Collider interface
// rather than by explicit geometry.
package collider

import "github.com/go-gl/mathgl/mgl64"

// Collider is a convex shape described by its support mapping.
type Collider interface {
	// Support returns the point of the shape furthest in the given
	// direction.
	Support(direction mgl64.Vec3) mgl64.Vec3
	// Center returns an interior point used to seed search directions.
	Center() mgl64.Vec3
}

// ConvexHullVertices treats a point set as its convex hull. The support
// mapping scans all points, which is exact for the hull without ever
// constructing it. The point slice is borrowed, not copied; callers must
// not mutate it during a query.
type ConvexHullVertices struct {
	Points []mgl64.Vec3
}

// NewConvexHullVertices wraps a point set for convex queries.
func NewConvexHullVertices(points []mgl64.Vec3) *ConvexHullVertices {
	return &ConvexHullVertices{Points: points}
}

func (c *ConvexHullVertices) Support(direction mgl64.Vec3) mgl64.Vec3 {
	best := c.Points[0]
	bestDot := best.Dot(direction)
	for _, p := range c.Points[1:] {
		if d := p.Dot(direction); d > bestDot {
			best = p
			bestDot = d
		}
	}
	return best
}

func (c *ConvexHullVertices) Center() mgl64.Vec3 {
	var sum mgl64.Vec3
	for _, p := range c.Points {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(c.Points)))
}
