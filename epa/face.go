package epa

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Face is one triangle of the expanding polytope, with its outward unit
// normal and the distance from the origin to its plane.
type Face struct {
	Points   [3]mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// newFaceOutward builds a face whose normal points away from the opposite
// point, i.e. outward from the polytope interior. The distance to the
// origin is kept positive and clamped to MinFaceDistance so degenerate
// faces never dominate the closest-face scan.
func newFaceOutward(p0, p1, p2, oppositePoint mgl64.Vec3) Face {
	face := Face{Points: [3]mgl64.Vec3{p0, p1, p2}}

	normal := p1.Sub(p0).Cross(p2.Sub(p0))
	normalLength := math.Sqrt(normal.Dot(normal))
	if normalLength < 1e-8 {
		// Degenerate triangle (zero area)
		face.Normal = mgl64.Vec3{0, 1, 0}
		face.Distance = MinFaceDistance
		return face
	}
	normal = normal.Mul(1.0 / normalLength)

	// Flip the normal if it points toward the opposite point (inward)
	if normal.Dot(oppositePoint.Sub(p0)) > 0 {
		normal = normal.Mul(-1)
	}

	distance := p0.Dot(normal)
	if distance < 0 {
		normal = normal.Mul(-1)
		distance = -distance
	}
	if distance < MinFaceDistance {
		distance = MinFaceDistance
	}

	face.Normal = snapNormalToAxis(normal)
	face.Distance = distance
	return face
}

// snapNormalToAxis clamps nearly-zero normal components to exactly zero and
// renormalizes. This stabilizes axis-aligned contacts against tiny
// floating-point noise in the tangent directions.
func snapNormalToAxis(normal mgl64.Vec3) mgl64.Vec3 {
	for i := 0; i < 3; i++ {
		if math.Abs(normal[i]) < NormalSnapThreshold {
			normal[i] = 0
		}
	}

	length := math.Sqrt(normal.Dot(normal))
	if length <= 1e-8 {
		// Every component was snapped away
		return mgl64.Vec3{0, 1, 0}
	}
	return normal.Mul(1.0 / length)
}
