// Package epa implements the Expanding Polytope Algorithm for computing
// penetration depth between overlapping convex shapes.
//
// EPA runs after GJK has detected an overlap. It expands a polytope,
// seeded with GJK's final simplex, toward the boundary of the Minkowski
// difference; the face closest to the origin yields the penetration depth
// and the contact normal. A witness point on the mid-penetration plane is
// derived from the support mappings along that normal.
//
// References:
//   - Van den Bergen: "Proximity Queries and Penetration Depth Computation
//     on 3D Game Objects" (2001)
package epa

import (
	"fmt"
	"math"

	"github.com/aries-robot/distance3d/collider"
	"github.com/aries-robot/distance3d/gjk"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// MaxIterations limits polytope expansion to prevent infinite loops.
	// Typical convergence takes 5-15 iterations.
	MaxIterations = 32

	// ConvergenceTolerance defines when EPA has converged: a new support
	// point improving the closest-face distance by less than this means
	// the true boundary face was found.
	ConvergenceTolerance = 0.001

	// MinFaceDistance is the smallest face distance considered valid.
	// Faces closer to the origin are likely degenerate and get skipped.
	MinFaceDistance = 0.0001

	// NormalSnapThreshold clamps nearly-zero normal components to exactly
	// zero, which stabilizes axis-aligned contacts.
	NormalSnapThreshold = 1e-8

	// degeneratePenetrationEstimate is the fallback depth when the simplex
	// carries too few points to measure the overlap.
	degeneratePenetrationEstimate = 0.01
)

// Result describes the penetration between two overlapping convex shapes.
type Result struct {
	// Depth is how far the shapes overlap along Normal, always positive.
	Depth float64
	// Normal is the unit separation direction, pointing from the first
	// shape toward the second.
	Normal mgl64.Vec3
	// Point lies on the mid-penetration contact plane between the two
	// deepest support points.
	Point mgl64.Vec3
}

// Penetration computes depth, contact normal and a contact-plane point for
// two overlapping convex shapes. The simplex must come from a successful
// GJK run on the same pair; a simplex with fewer than 4 points (shapes
// barely touching) produces an estimated result instead of an error.
func Penetration(a, b collider.Collider, simplex *gjk.Simplex) (Result, error) {
	if simplex.Count < 4 {
		return degenerateResult(a, b, simplex), nil
	}

	poly, err := newPolytope(simplex)
	if err != nil {
		return Result{}, err
	}

	for i := 0; i < MaxIterations; i++ {
		if len(poly.faces) == 0 {
			// All faces removed; the polytope degenerated
			break
		}

		closestIndex := poly.closestFaceIndex()
		closest := poly.faces[closestIndex]

		// Skip faces too close to or behind the origin
		if closest.Distance < MinFaceDistance {
			poly.removeFace(closestIndex)
			continue
		}

		support := gjk.MinkowskiSupport(a, b, closest.Normal)
		distance := support.Dot(closest.Normal)

		// Converged: the support point no longer improves the distance,
		// so this face lies on the Minkowski difference boundary
		if distance-closest.Distance < ConvergenceTolerance {
			return witnessResult(a, b, closest.Normal, closest.Distance), nil
		}

		poly.expand(support, closestIndex)
	}

	return Result{}, fmt.Errorf("epa: failed to converge after %d iterations", MaxIterations)
}

// witnessResult assembles the final result: the contact-plane point is the
// midpoint of the two deepest support points along the contact normal.
// Downstream only consumes the plane (point, normal), so any point on the
// mid-penetration plane is equivalent.
func witnessResult(a, b collider.Collider, normal mgl64.Vec3, depth float64) Result {
	deepestA := a.Support(normal)
	deepestB := b.Support(normal.Mul(-1))
	return Result{
		Depth:  depth,
		Normal: normal,
		Point:  deepestA.Add(deepestB).Mul(0.5),
	}
}

// degenerateResult estimates the contact when GJK stopped with an
// incomplete simplex, which happens when shapes touch without overlap.
func degenerateResult(a, b collider.Collider, simplex *gjk.Simplex) Result {
	if simplex.Count >= 2 {
		// Use whichever of the first two points is nearest the origin
		p := simplex.Points[0]
		q := simplex.Points[1]
		distP := math.Sqrt(p.Dot(p))
		distQ := math.Sqrt(q.Dot(q))

		depth, normal := distP, p
		if distQ < distP {
			depth, normal = distQ, q
		}
		if depth < NormalSnapThreshold {
			return witnessResult(a, b, fallbackNormal(a, b), 0)
		}
		return witnessResult(a, b, normal.Mul(1.0/depth), depth)
	}

	// Single point simplex, the most degenerate case
	return witnessResult(a, b, fallbackNormal(a, b), degeneratePenetrationEstimate)
}

// fallbackNormal estimates a separation direction from the shape centers.
func fallbackNormal(a, b collider.Collider) mgl64.Vec3 {
	normal := b.Center().Sub(a.Center())
	length := normal.Len()
	if length < NormalSnapThreshold {
		// Coincident centers; any direction works
		return mgl64.Vec3{0, 1, 0}
	}
	return normal.Mul(1.0 / length)
}
