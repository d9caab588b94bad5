// Package distance3d computes hydroelastic contact forces between rigid
// bodies whose volumes are discretized into tetrahedra carrying a scalar
// pressure potential field.
//
// The pipeline runs per call: a global penetration query (GJK + EPA over
// the whole-mesh convex hulls) establishes a shared contact plane, a
// bounding-box tree per mesh prunes tetrahedron pairs, a plane-straddle
// filter plus pairwise exact overlap confirmation selects the contributing
// tetrahedra, and the pressure potential integrated over each contact-plane
// polygon yields the wrench pair. Nothing is cached across calls.
//
// The contact model follows Elandt et al.: "A pressure field model for
// fast, robust approximation of net contact force and moment between
// nominally rigid objects" (2019).
package distance3d

import (
	"fmt"

	"github.com/aries-robot/distance3d/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is a tetrahedral volume mesh with a scalar pressure potential per
// vertex and a rigid mesh-to-world pose. The caller owns the data and must
// keep it immutable for the duration of a contact computation.
type Mesh struct {
	// Transform is the rigid mesh-to-world pose.
	Transform geom.Transform
	// Vertices in the mesh frame.
	Vertices []mgl64.Vec3
	// Tetrahedra holds four vertex indices per tetrahedron.
	Tetrahedra [][4]int
	// Potentials holds one pressure potential value per vertex.
	Potentials []float64
}

// Validate checks index bounds and array-length agreement.
func (m *Mesh) Validate() error {
	if len(m.Potentials) != len(m.Vertices) {
		return fmt.Errorf("distance3d: %d potentials for %d vertices",
			len(m.Potentials), len(m.Vertices))
	}
	for i, tet := range m.Tetrahedra {
		for _, v := range tet {
			if v < 0 || v >= len(m.Vertices) {
				return fmt.Errorf("distance3d: tetrahedron %d references vertex %d of %d",
					i, v, len(m.Vertices))
			}
		}
	}
	return nil
}

// tetrahedronPoints gathers the corner positions of one tetrahedron.
func tetrahedronPoints(vertices []mgl64.Vec3, tet [4]int) geom.Tetrahedron {
	return geom.Tetrahedron{
		vertices[tet[0]], vertices[tet[1]], vertices[tet[2]], vertices[tet[3]],
	}
}

// Volume returns the total volume of the mesh.
func (m *Mesh) Volume() float64 {
	var volume float64
	for _, tet := range m.Tetrahedra {
		volume += mgl64.Abs(tetrahedronPoints(m.Vertices, tet).SignedVolume())
	}
	return volume
}

// CenterOfMass returns the volume-weighted center of the mesh in the world
// frame, assuming uniform density.
func (m *Mesh) CenterOfMass() mgl64.Vec3 {
	var weighted mgl64.Vec3
	var volume float64
	for _, tet := range m.Tetrahedra {
		points := tetrahedronPoints(m.Vertices, tet)
		v := mgl64.Abs(points.SignedVolume())
		centroid := points[0].Add(points[1]).Add(points[2]).Add(points[3]).Mul(0.25)
		weighted = weighted.Add(centroid.Mul(v))
		volume += v
	}
	if volume == 0 {
		return m.Transform.Position
	}
	return m.Transform.Apply(weighted.Mul(1.0 / volume))
}

// NewBoxMesh builds an axis-aligned box centered on the mesh-frame origin,
// decomposed into the canonical six tetrahedra sharing the main diagonal,
// with a uniform pressure potential at every vertex.
func NewBoxMesh(transform geom.Transform, size mgl64.Vec3, potential float64) *Mesh {
	hx, hy, hz := size.X()/2, size.Y()/2, size.Z()/2

	// Corner i has coordinate bits (x, y, z) = (i&1, i&2, i&4)
	vertices := []mgl64.Vec3{
		{-hx, -hy, -hz},
		{+hx, -hy, -hz},
		{-hx, +hy, -hz},
		{+hx, +hy, -hz},
		{-hx, -hy, +hz},
		{+hx, -hy, +hz},
		{-hx, +hy, +hz},
		{+hx, +hy, +hz},
	}

	// Kuhn decomposition: six tetrahedra around the 0-7 diagonal
	tetrahedra := [][4]int{
		{0, 1, 3, 7},
		{0, 3, 2, 7},
		{0, 2, 6, 7},
		{0, 6, 4, 7},
		{0, 4, 5, 7},
		{0, 5, 1, 7},
	}

	potentials := make([]float64, len(vertices))
	for i := range potentials {
		potentials[i] = potential
	}

	return &Mesh{
		Transform:  transform,
		Vertices:   vertices,
		Tetrahedra: tetrahedra,
		Potentials: potentials,
	}
}
