package geom

import "github.com/go-gl/mathgl/mgl64"

// Tetrahedron is the four corner points of a tetrahedron.
type Tetrahedron [4]mgl64.Vec3

// AABB returns the bounding box of the four corners.
func (t Tetrahedron) AABB() AABB {
	return AABBFromPoints(t[0], t[1], t[2], t[3])
}

// SignedVolume returns the signed volume of the tetrahedron. The sign is
// positive when the corners are ordered so that the fourth corner lies on
// the positive side of the triangle (0, 1, 2).
func (t Tetrahedron) SignedVolume() float64 {
	ab := t[1].Sub(t[0])
	ac := t[2].Sub(t[0])
	ad := t[3].Sub(t[0])
	return ab.Cross(ac).Dot(ad) / 6.0
}

// Barycentric returns the barycentric coordinates of a point with respect
// to the tetrahedron's corners. The four weights sum to 1. Weights outside
// [0, 1] indicate a point outside the tetrahedron and are not an error.
//
// A degenerate (zero-volume) tetrahedron yields weights (1, 0, 0, 0).
func (t Tetrahedron) Barycentric(point mgl64.Vec3) [4]float64 {
	m := mgl64.Mat3FromCols(
		t[1].Sub(t[0]),
		t[2].Sub(t[0]),
		t[3].Sub(t[0]),
	)
	// Inv returns the zero matrix for a singular input, which degrades to
	// the (1, 0, 0, 0) weights.
	w := m.Inv().Mul3x1(point.Sub(t[0]))
	return [4]float64{1.0 - w.X() - w.Y() - w.Z(), w.X(), w.Y(), w.Z()}
}

// TetrahedraAABBs returns one bounding box per tetrahedron, each enclosing
// its four vertices.
func TetrahedraAABBs(vertices []mgl64.Vec3, tetrahedra [][4]int) []AABB {
	aabbs := make([]AABB, len(tetrahedra))
	for i, tet := range tetrahedra {
		aabbs[i] = Tetrahedron{
			vertices[tet[0]], vertices[tet[1]], vertices[tet[2]], vertices[tet[3]],
		}.AABB()
	}
	return aabbs
}
