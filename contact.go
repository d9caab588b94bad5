package distance3d

import (
	"fmt"

	"github.com/aries-robot/distance3d/collider"
	"github.com/aries-robot/distance3d/epa"
	"github.com/aries-robot/distance3d/geom"
	"github.com/aries-robot/distance3d/gjk"
	"github.com/go-gl/mathgl/mgl64"
)

// Wrench combines a linear force and a torque, both in the world frame.
// The pipeline approximates each tetrahedron's contribution as a scalar
// along the single shared contact normal and does not integrate moments,
// so Torque is always zero.
type Wrench struct {
	Force  mgl64.Vec3
	Torque mgl64.Vec3
}

// Options tunes a contact computation.
type Options struct {
	// Details requests per-tetrahedron diagnostics in the result.
	Details bool
}

// TetrahedronContact is the diagnostic record of one contributing
// tetrahedron. Positions are in the world frame.
type TetrahedronContact struct {
	// Contribution is Area times Pressure, the force magnitude this
	// tetrahedron adds along the contact normal.
	Contribution float64
	// Area of the contact-plane polygon.
	Area float64
	// Pressure is the potential interpolated at the polygon centroid.
	Pressure float64
	// Centroid of the polygon.
	Centroid mgl64.Vec3
	// Polygon where the tetrahedron meets the contact plane, 3 or 4
	// points.
	Polygon []mgl64.Vec3
}

// ContactDetails maps tetrahedron indices to their contributions, per
// body.
type ContactDetails struct {
	First  map[int]TetrahedronContact
	Second map[int]TetrahedronContact
}

// ContactResult is the outcome of one contact computation. When
// Intersects is false all other fields are zero.
type ContactResult struct {
	Intersects bool
	// Depth is the penetration depth of the whole-mesh convex hulls.
	Depth float64
	// Normal is the world-frame contact normal, pointing from the first
	// body toward the second.
	Normal mgl64.Vec3
	// Point is a world-frame point on the shared contact plane.
	Point mgl64.Vec3
	// Wrench12 is exerted by the first body on the second, Wrench21 the
	// reverse; they act along Normal in opposite directions.
	Wrench12 Wrench
	Wrench21 Wrench
	// Details is populated only when Options.Details is set.
	Details *ContactDetails
}

// ContactForces computes the hydroelastic contact wrench pair between two
// tetrahedral pressure meshes.
//
// Both meshes are evaluated in the second mesh's frame, so only the first
// vertex set is transformed. A whole-mesh penetration query yields the
// shared contact plane; bounding-box trees prune tetrahedron pairs; pairs
// where both tetrahedra straddle the plane and truly overlap contribute
// area times interpolated pressure along the contact normal.
//
// A non-intersecting pair and an intersecting pair with no confirmed
// tetrahedra are both valid negative results, not errors.
func ContactForces(first, second *Mesh, opts Options) (*ContactResult, error) {
	if err := first.Validate(); err != nil {
		return nil, fmt.Errorf("first mesh: %w", err)
	}
	if err := second.Validate(); err != nil {
		return nil, fmt.Errorf("second mesh: %w", err)
	}

	// Bring the first mesh into the second mesh's frame: one shared frame
	// avoids transforming the second vertex set at all and keeps the
	// whole pipeline out of the world frame until assembly.
	firstToSecond := second.Transform.Inverse().Mul(first.Transform)
	vertices1 := make([]mgl64.Vec3, len(first.Vertices))
	for i, v := range first.Vertices {
		vertices1[i] = firstToSecond.Apply(v)
	}
	vertices2 := second.Vertices

	// Global intersection check over the whole-mesh convex hulls
	hull1 := collider.NewConvexHullVertices(vertices1)
	hull2 := collider.NewConvexHullVertices(vertices2)

	simplex := gjk.SimplexPool.Get().(*gjk.Simplex)
	defer gjk.SimplexPool.Put(simplex)
	simplex.Reset()

	if !gjk.GJK(hull1, hull2, simplex) {
		return &ContactResult{}, nil
	}

	penetration, err := epa.Penetration(hull1, hull2, simplex)
	if err != nil {
		return nil, err
	}
	plane := geom.Plane{Point: penetration.Point, Normal: penetration.Normal}

	// Broad phase: candidate tetrahedron pairs from the two trees
	tree1 := NewAABBTree(geom.TetrahedraAABBs(vertices1, first.Tetrahedra))
	tree2 := NewAABBTree(geom.TetrahedraAABBs(vertices2, second.Tetrahedra))
	candidates := OverlappingPairs(tree1, tree2)

	// Narrow phase and integration. The memo caches are keyed by
	// tetrahedron index, so the candidate order does not matter.
	straddle1 := newStraddleMemo(vertices1, first.Tetrahedra, plane)
	straddle2 := newStraddleMemo(vertices2, second.Tetrahedra, plane)
	contrib1 := newContributionMemo(vertices1, first.Tetrahedra, first.Potentials, plane)
	contrib2 := newContributionMemo(vertices2, second.Tetrahedra, second.Potentials, plane)

	for _, pair := range candidates {
		i, j := pair[0], pair[1]
		if !straddle1.straddles(i) || !straddle2.straddles(j) {
			continue
		}
		tetra1 := tetrahedronPoints(vertices1, first.Tetrahedra[i])
		tetra2 := tetrahedronPoints(vertices2, second.Tetrahedra[j])
		if !confirmPair(tetra1, tetra2) {
			continue
		}
		if err := contrib1.add(i); err != nil {
			return nil, err
		}
		if err := contrib2.add(j); err != nil {
			return nil, err
		}
	}

	// Wrench assembly: equal and opposite forces along the world-frame
	// contact normal, torque not computed
	normalWorld := second.Transform.RotateVector(penetration.Normal)
	result := &ContactResult{
		Intersects: true,
		Depth:      penetration.Depth,
		Normal:     normalWorld,
		Point:      second.Transform.Apply(penetration.Point),
		Wrench12:   Wrench{Force: normalWorld.Mul(contrib1.total())},
		Wrench21:   Wrench{Force: normalWorld.Mul(-contrib2.total())},
	}

	if opts.Details {
		result.Details = &ContactDetails{
			First:  contrib1.worldContacts(second.Transform),
			Second: contrib2.worldContacts(second.Transform),
		}
	}
	return result, nil
}

// contributionMemo computes and caches per-tetrahedron contact
// contributions, keyed explicitly by tetrahedron index so repeated
// pairings with the same index are integrated once.
type contributionMemo struct {
	vertices   []mgl64.Vec3
	tetrahedra [][4]int
	potentials []float64
	plane      geom.Plane
	contacts   map[int]TetrahedronContact
}

func newContributionMemo(vertices []mgl64.Vec3, tetrahedra [][4]int,
	potentials []float64, plane geom.Plane) *contributionMemo {
	return &contributionMemo{
		vertices:   vertices,
		tetrahedra: tetrahedra,
		potentials: potentials,
		plane:      plane,
		contacts:   make(map[int]TetrahedronContact),
	}
}

// add integrates the contribution of one tetrahedron unless already
// cached: contact polygon, area, centroid, and the potential interpolated
// barycentrically at the centroid. Barycentric weights outside [0, 1]
// merely indicate a centroid slightly off the tetrahedron and are kept.
func (m *contributionMemo) add(index int) error {
	if _, ok := m.contacts[index]; ok {
		return nil
	}

	tet := m.tetrahedra[index]
	points := tetrahedronPoints(m.vertices, tet)

	polygon, err := contactPlaneProjection(m.plane, points)
	if err != nil {
		return fmt.Errorf("tetrahedron %d: %w", index, err)
	}

	area := polygonArea(polygon)
	centroid := polygonCentroid(polygon)

	weights := points.Barycentric(centroid)
	var pressure float64
	for k, w := range weights {
		pressure += w * m.potentials[tet[k]]
	}

	m.contacts[index] = TetrahedronContact{
		Contribution: area * pressure,
		Area:         area,
		Pressure:     pressure,
		Centroid:     centroid,
		Polygon:      polygon,
	}
	return nil
}

func (m *contributionMemo) total() float64 {
	var sum float64
	for _, c := range m.contacts {
		sum += c.Contribution
	}
	return sum
}

// worldContacts returns the cached contributions with positions mapped
// from the working frame into the world frame.
func (m *contributionMemo) worldContacts(toWorld geom.Transform) map[int]TetrahedronContact {
	contacts := make(map[int]TetrahedronContact, len(m.contacts))
	for index, c := range m.contacts {
		world := c
		world.Centroid = toWorld.Apply(c.Centroid)
		world.Polygon = make([]mgl64.Vec3, len(c.Polygon))
		for i, p := range c.Polygon {
			world.Polygon[i] = toWorld.Apply(p)
		}
		contacts[index] = world
	}
	return contacts
}
