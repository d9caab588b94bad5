// Package geom provides the primitive types shared by the distance kernel
// and the contact pipeline: points, lines, segments, planes, axis-aligned
// boxes, rigid transforms and tetrahedron helpers.
package geom

import "github.com/go-gl/mathgl/mgl64"

// Point is a bare position in 3D space.
type Point mgl64.Vec3

// Line is an infinite line through Point along Direction.
// Direction is assumed to be of unit length; this is not validated.
type Line struct {
	Point     mgl64.Vec3
	Direction mgl64.Vec3
}

// Segment is the finite line segment between Start and End.
// Start == End is a valid, degenerate segment.
type Segment struct {
	Start mgl64.Vec3
	End   mgl64.Vec3
}

// Plane is an infinite plane through Point with Normal.
// The normal is assumed to be of unit length; this is not validated.
type Plane struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
}

// Primitive is the closed set of shapes understood by the pairwise
// distance dispatch. Only the four types in this package implement it.
type Primitive interface {
	isPrimitive()
}

func (Point) isPrimitive()   {}
func (Line) isPrimitive()    {}
func (Segment) isPrimitive() {}
func (Plane) isPrimitive()   {}

// Vec returns the point as a plain vector.
func (p Point) Vec() mgl64.Vec3 {
	return mgl64.Vec3(p)
}
