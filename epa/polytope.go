package epa

import (
	"fmt"

	"github.com/aries-robot/distance3d/gjk"
	"github.com/go-gl/mathgl/mgl64"
)

// polytope is the set of triangular faces EPA expands toward the boundary
// of the Minkowski difference.
type polytope struct {
	faces []Face
}

// newPolytope builds the initial polytope from a GJK tetrahedron simplex:
// four faces, each oriented outward using the opposite corner.
func newPolytope(simplex *gjk.Simplex) (*polytope, error) {
	if simplex.Count != 4 {
		return nil, fmt.Errorf("epa: invalid simplex count %d (expected 4)", simplex.Count)
	}

	p0, p1, p2, p3 := simplex.Points[0], simplex.Points[1], simplex.Points[2], simplex.Points[3]
	candidates := [4]Face{
		newFaceOutward(p0, p1, p2, p3), // Face ABC, opposite point is D
		newFaceOutward(p0, p2, p3, p1), // Face ACD, opposite point is B
		newFaceOutward(p0, p3, p1, p2), // Face ADB, opposite point is C
		newFaceOutward(p1, p3, p2, p0), // Face BDC, opposite point is A
	}

	p := &polytope{faces: make([]Face, 0, 8)}
	for _, face := range candidates {
		if face.Distance > MinFaceDistance {
			p.faces = append(p.faces, face)
		}
	}
	// A valid polytope needs at least its four starting faces worth of
	// structure; keep the degenerate ones rather than start empty.
	if len(p.faces) < 3 {
		p.faces = append(p.faces[:0], candidates[:]...)
	}
	return p, nil
}

// closestFaceIndex returns the index of the face closest to the origin, or
// -1 if the polytope is empty.
func (p *polytope) closestFaceIndex() int {
	if len(p.faces) == 0 {
		return -1
	}
	closest := 0
	for i := 1; i < len(p.faces); i++ {
		if p.faces[i].Distance < p.faces[closest].Distance {
			closest = i
		}
	}
	return closest
}

// removeFace drops a face by swapping it with the last one.
func (p *polytope) removeFace(i int) {
	p.faces[i] = p.faces[len(p.faces)-1]
	p.faces = p.faces[:len(p.faces)-1]
}

type edge struct {
	A, B mgl64.Vec3
}

// normalized orders the edge endpoints lexicographically so the same edge
// hashes identically regardless of winding.
func (e edge) normalized() edge {
	if compareVec3(e.A, e.B) > 0 {
		return edge{e.B, e.A}
	}
	return e
}

// expand adds a support point to the polytope: faces visible from the
// point are removed and the horizon (boundary edges of the visible region)
// is reconnected to the new point.
func (p *polytope) expand(support mgl64.Vec3, closestIndex int) {
	centroid := p.centroid()

	var visible []int
	for i, face := range p.faces {
		if support.Sub(face.Points[0]).Dot(face.Normal) > 0 {
			visible = append(visible, i)
		}
	}

	// Never remove every face; keep the polytope closed
	if len(visible) >= len(p.faces) {
		visible = []int{closestIndex}
	}

	// Boundary edges appear in exactly one visible face; internal edges
	// are shared by two and cancel out
	edgeCount := make(map[edge]int)
	for _, idx := range visible {
		face := p.faces[idx]
		for _, e := range [3]edge{
			{face.Points[0], face.Points[1]},
			{face.Points[1], face.Points[2]},
			{face.Points[2], face.Points[0]},
		} {
			edgeCount[e.normalized()]++
		}
	}

	// Remove visible faces from the back so earlier indices stay valid
	for i := len(visible) - 1; i >= 0; i-- {
		p.removeFace(visible[i])
	}

	for e, count := range edgeCount {
		if count != 1 {
			continue
		}
		p.faces = append(p.faces, newFaceOutward(e.A, e.B, support, centroid))
	}
}

// centroid averages the unique polytope corners, used as the inward
// reference when orienting new faces.
func (p *polytope) centroid() mgl64.Vec3 {
	seen := make(map[mgl64.Vec3]bool)
	var sum mgl64.Vec3
	for _, face := range p.faces {
		for _, point := range face.Points {
			if seen[point] {
				continue
			}
			seen[point] = true
			sum = sum.Add(point)
		}
	}
	if len(seen) == 0 {
		return mgl64.Vec3{}
	}
	return sum.Mul(1.0 / float64(len(seen)))
}

// compareVec3 orders vectors lexicographically (x, then y, then z).
func compareVec3(a, b mgl64.Vec3) int {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
