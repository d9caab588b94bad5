package distance3d

import (
	"github.com/aries-robot/distance3d/collider"
	"github.com/aries-robot/distance3d/distance"
	"github.com/aries-robot/distance3d/geom"
	"github.com/aries-robot/distance3d/gjk"
	"github.com/go-gl/mathgl/mgl64"
)

// straddlesContactPlane reports whether a tetrahedron's corners lie on
// both sides of the plane: at least one strictly negative and one
// non-negative signed distance. This is necessary but not sufficient for a
// true 3D overlap with a tetrahedron of the other mesh.
func straddlesContactPlane(points geom.Tetrahedron, plane geom.Plane) bool {
	var min, max float64
	for i, p := range points {
		d, _ := distance.PointToPlaneSigned(p, plane.Point, plane.Normal)
		if i == 0 || d < min {
			min = d
		}
		if i == 0 || d > max {
			max = d
		}
	}
	return min < 0.0 && max >= 0.0
}

// straddleMemo caches plane-straddle results per tetrahedron index, keyed
// explicitly so the candidate pair stream may repeat indices in any order.
type straddleMemo struct {
	vertices   []mgl64.Vec3
	tetrahedra [][4]int
	plane      geom.Plane
	known      map[int]bool
}

func newStraddleMemo(vertices []mgl64.Vec3, tetrahedra [][4]int, plane geom.Plane) *straddleMemo {
	return &straddleMemo{
		vertices:   vertices,
		tetrahedra: tetrahedra,
		plane:      plane,
		known:      make(map[int]bool),
	}
}

func (m *straddleMemo) straddles(index int) bool {
	if result, ok := m.known[index]; ok {
		return result
	}
	result := straddlesContactPlane(tetrahedronPoints(m.vertices, m.tetrahedra[index]), m.plane)
	m.known[index] = result
	return result
}

// confirmPair reports true overlap of two tetrahedra via the exact
// convex-convex test, treating each as the hull of its four corners.
func confirmPair(a, b geom.Tetrahedron) bool {
	hullA := collider.NewConvexHullVertices(a[:])
	hullB := collider.NewConvexHullVertices(b[:])

	simplex := gjk.SimplexPool.Get().(*gjk.Simplex)
	defer gjk.SimplexPool.Put(simplex)
	simplex.Reset()

	return gjk.GJK(hullA, hullB, simplex)
}
