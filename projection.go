package distance3d

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/aries-robot/distance3d/distance"
	"github.com/aries-robot/distance3d/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrInconsistentContact reports a contact polygon that resolved to fewer
// than 3 points. The straddle test guarantees at least one corner on each
// side of the plane, so this only happens when the filter and the
// projector disagree about the classification.
var ErrInconsistentContact = errors.New("distance3d: contact polygon has fewer than 3 points")

// contactPlaneProjection derives the polygon where a straddling
// tetrahedron meets the contact plane. Corners are classified by the sign
// of their distance to the plane; each (negative, non-negative) corner
// pair contributes its segment-plane intersection. A (1,3) or (3,1) split
// yields a triangle, a (2,2) split a quadrilateral whose points are
// ordered by angle around their centroid before use.
func contactPlaneProjection(plane geom.Plane, points geom.Tetrahedron) ([]mgl64.Vec3, error) {
	var negative, nonNegative []int
	for i, p := range points {
		d, _ := distance.PointToPlaneSigned(p, plane.Point, plane.Normal)
		if d < 0 {
			negative = append(negative, i)
		} else {
			nonNegative = append(nonNegative, i)
		}
	}

	polygon := make([]mgl64.Vec3, 0, 4)
	for _, n := range negative {
		for _, p := range nonNegative {
			_, _, intersection := distance.LineSegmentToPlane(
				points[n], points[p], plane.Point, plane.Normal)
			polygon = append(polygon, intersection)
		}
	}

	if len(polygon) < 3 {
		return nil, fmt.Errorf("%w: split %d/%d", ErrInconsistentContact,
			len(negative), len(nonNegative))
	}
	if len(polygon) == 4 {
		orderConvexPolygon(polygon, plane.Normal)
	}
	return polygon, nil
}

// orderConvexPolygon sorts coplanar points by angle around their centroid
// within the plane, producing a convex traversal. The pair enumeration in
// contactPlaneProjection does not guarantee one, and the area computation
// needs it.
func orderConvexPolygon(points []mgl64.Vec3, normal mgl64.Vec3) {
	centroid := polygonCentroid(points)
	u := perpendicular(normal)
	v := normal.Cross(u)

	sort.Slice(points, func(i, j int) bool {
		di := points[i].Sub(centroid)
		dj := points[j].Sub(centroid)
		return math.Atan2(di.Dot(v), di.Dot(u)) < math.Atan2(dj.Dot(v), dj.Dot(u))
	})
}

// perpendicular returns a unit vector orthogonal to n, built by crossing
// with the axis n is least aligned with.
func perpendicular(n mgl64.Vec3) mgl64.Vec3 {
	axis := mgl64.Vec3{1, 0, 0}
	if math.Abs(n.Y()) < math.Abs(n.X()) {
		axis = mgl64.Vec3{0, 1, 0}
	}
	if math.Abs(n.Z()) < math.Abs(n.X()) && math.Abs(n.Z()) < math.Abs(n.Y()) {
		axis = mgl64.Vec3{0, 0, 1}
	}
	return n.Cross(axis).Normalize()
}

// polygonArea computes the area of an ordered convex polygon by fanning
// triangles from its first point: half the cross-product magnitude per
// triangle.
func polygonArea(points []mgl64.Vec3) float64 {
	var area float64
	for i := 1; i < len(points)-1; i++ {
		edge1 := points[i].Sub(points[0])
		edge2 := points[i+1].Sub(points[0])
		area += 0.5 * edge1.Cross(edge2).Len()
	}
	return area
}

// polygonCentroid is the mean of the polygon points.
func polygonCentroid(points []mgl64.Vec3) mgl64.Vec3 {
	var sum mgl64.Vec3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(points)))
}
