// Package distance implements exact shortest-distance and closest-point
// computations between 3D primitives: points, lines, line segments and
// planes.
//
// All functions are deterministic pure functions of their inputs. Unit
// length preconditions on line directions and plane normals are not
// validated. Near-degenerate configurations (zero-length segments, parallel
// lines) take epsilon-guarded fallback branches instead of returning errors;
// the tolerance is always an explicit, overridable parameter.
//
// References:
//   - Ericson: "Real-Time Collision Detection" (2005), chapter 5
package distance

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultEpsilon is the tolerance below which a squared length or a system
// determinant is treated as zero.
const DefaultEpsilon = 1e-6

// PointToLine computes the shortest distance between a point and an
// infinite line, and the closest point on the line. The line direction is
// assumed to be of unit length.
func PointToLine(point, linePoint, lineDirection mgl64.Vec3) (float64, mgl64.Vec3) {
	diff := point.Sub(linePoint)
	t := lineDirection.Dot(diff)
	onLine := linePoint.Add(lineDirection.Mul(t))
	return point.Sub(onLine).Len(), onLine
}

// PointToLineSegment computes the shortest distance between a point and a
// line segment, and the closest point on the segment. A zero-length
// segment degenerates to its start point.
func PointToLineSegment(point, segmentStart, segmentEnd mgl64.Vec3) (float64, mgl64.Vec3) {
	direction := segmentEnd.Sub(segmentStart)
	lengthSquared := direction.Dot(direction)
	if lengthSquared == 0.0 {
		// Degenerate segment
		return point.Sub(segmentStart).Len(), segmentStart
	}

	// Project point onto the segment, computing the parameterized position
	// s(t) = segmentStart + t * (segmentEnd - segmentStart)
	t := point.Sub(segmentStart).Dot(direction) / lengthSquared
	// If outside the segment, clamp t to the closest endpoint
	t = clamp01(t)

	contactPoint := segmentStart.Add(direction.Mul(t))
	return point.Sub(contactPoint).Len(), contactPoint
}

// LineToLine computes the shortest distance between two infinite lines and
// the closest point on each. Both directions are assumed to be of unit
// length. Lines whose direction determinant falls below epsilon are treated
// as parallel: the second contact point is then the second line's anchor.
func LineToLine(linePoint1, lineDirection1, linePoint2, lineDirection2 mgl64.Vec3,
	epsilon float64) (float64, mgl64.Vec3, mgl64.Vec3) {
	diff := linePoint1.Sub(linePoint2)
	a12 := -lineDirection1.Dot(lineDirection2)
	b1 := lineDirection1.Dot(diff)
	c := diff.Dot(diff)
	det := 1.0 - a12*a12

	var t1, t2, distSquared float64
	var contactPoint2 mgl64.Vec3
	if math.Abs(det) >= epsilon {
		b2 := -lineDirection2.Dot(diff)
		t1 = (a12*b2 - b1) / det
		t2 = (a12*b1 - b2) / det
		distSquared = t1*(t1+a12*t2+2.0*b1) + t2*(a12*t1+t2+2.0*b2) + c
		contactPoint2 = linePoint2.Add(lineDirection2.Mul(t2))
	} else {
		// Parallel lines
		t1 = -b1
		distSquared = b1*t1 + c
		contactPoint2 = linePoint2
	}

	contactPoint1 := linePoint1.Add(lineDirection1.Mul(t1))
	return math.Sqrt(math.Abs(distSquared)), contactPoint1, contactPoint2
}

// LineToLineSegment computes the shortest distance between an infinite line
// and a line segment, and the closest point on each. The line direction is
// assumed to be of unit length.
func LineToLineSegment(linePoint, lineDirection, segmentStart, segmentEnd mgl64.Vec3,
	epsilon float64) (float64, mgl64.Vec3, mgl64.Vec3) {
	d := segmentEnd.Sub(segmentStart)

	// Squared lengths, always nonnegative
	a := d.Dot(d)
	e := lineDirection.Dot(lineDirection)

	if a < epsilon && e < epsilon {
		// Both degenerate into points
		return linePoint.Sub(segmentStart).Len(), linePoint, segmentStart
	}

	r := segmentStart.Sub(linePoint)
	f := lineDirection.Dot(r)

	var s, t float64
	if a < epsilon {
		// Segment degenerates into a point
		s = 0.0
		t = f / e
	} else {
		c := d.Dot(r)
		if e <= epsilon {
			// Line direction degenerates into a point
			t = 0.0
			s = clamp01(-c / a)
		} else {
			// General nondegenerate case
			b := d.Dot(lineDirection)
			denom := a*e - b*b // always nonnegative

			if denom != 0.0 {
				// Closest point on the line to the segment, clamped to the
				// segment's parameter range
				s = clamp01((b*f - c*e) / denom)
			} else {
				// Parallel case: any s is equally good
				s = 0.0
			}

			t = (b*s + f) / e
		}
	}

	contactPointLine := linePoint.Add(lineDirection.Mul(t))
	contactPointSegment := segmentStart.Add(d.Mul(s))
	return contactPointSegment.Sub(contactPointLine).Len(), contactPointLine, contactPointSegment
}

// LineSegmentToLineSegment computes the shortest distance between two line
// segments and the closest point on each.
//
// Implementation according to Ericson: Real-Time Collision Detection
// (2005). Four branches cover the degeneracies: both segments collapsed to
// points, either one collapsed, and the general case. In the general case
// the first parameter is clamped to [0, 1], the second is resolved from it,
// and if the second lands outside [0, 1] it is clamped and the first is
// recomputed, so both always end up in range.
func LineSegmentToLineSegment(segmentStart1, segmentEnd1, segmentStart2, segmentEnd2 mgl64.Vec3,
	epsilon float64) (float64, mgl64.Vec3, mgl64.Vec3) {
	d1 := segmentEnd1.Sub(segmentStart1)
	d2 := segmentEnd2.Sub(segmentStart2)

	// Squared segment lengths, always nonnegative
	a := d1.Dot(d1)
	e := d2.Dot(d2)

	if a < epsilon && e < epsilon {
		// Both segments degenerate into points
		return segmentStart2.Sub(segmentStart1).Len(), segmentStart1, segmentStart2
	}

	r := segmentStart1.Sub(segmentStart2)
	f := d2.Dot(r)

	var s, t float64
	if a < epsilon {
		// First segment degenerates into a point
		s = 0.0
		t = clamp01(f / e)
	} else {
		c := d1.Dot(r)
		if e <= epsilon {
			// Second segment degenerates into a point
			t = 0.0
			s = clamp01(-c / a)
		} else {
			// General nondegenerate case
			b := d1.Dot(d2)
			denom := a*e - b*b // always nonnegative

			if denom != 0.0 {
				// Segments not parallel: closest point on segment 1 to
				// line 2, clamped to segment 1
				s = clamp01((b*f - c*e) / denom)
			} else {
				// Parallel case: pick an arbitrary s
				s = 0.0
			}

			t = (b*s + f) / e

			// If t is in [0, 1] we are done, otherwise clamp t and
			// recompute s for the new value
			if t < 0.0 {
				t = 0.0
				s = clamp01(-c / a)
			} else if t > 1.0 {
				t = 1.0
				s = clamp01((b - c) / a)
			}
		}
	}

	contactPoint1 := segmentStart1.Add(d1.Mul(s))
	contactPoint2 := segmentStart2.Add(d2.Mul(t))
	return contactPoint2.Sub(contactPoint1).Len(), contactPoint1, contactPoint2
}

// PointToPlaneSigned computes the signed distance between a point and a
// plane, and the closest point on the plane. The distance is positive on
// the side the normal points to. The normal is assumed to be of unit
// length.
func PointToPlaneSigned(point, planePoint, planeNormal mgl64.Vec3) (float64, mgl64.Vec3) {
	t := planeNormal.Dot(point.Sub(planePoint))
	contactPoint := point.Sub(planeNormal.Mul(t))
	return t, contactPoint
}

// PointToPlane computes the unsigned shortest distance between a point and
// a plane, and the closest point on the plane.
func PointToPlane(point, planePoint, planeNormal mgl64.Vec3) (float64, mgl64.Vec3) {
	t, contactPoint := PointToPlaneSigned(point, planePoint, planeNormal)
	return math.Abs(t), contactPoint
}

// LineSegmentToPlane computes the shortest distance between a line segment
// and a plane, the closest point on the segment and the closest point on
// the plane. A segment whose endpoints lie on opposite sides of the plane
// intersects it: the distance is zero and both contact points are the
// intersection, interpolated linearly between the endpoints from their
// signed distances.
func LineSegmentToPlane(segmentStart, segmentEnd, planePoint, planeNormal mgl64.Vec3) (float64, mgl64.Vec3, mgl64.Vec3) {
	distStart, _ := PointToPlaneSigned(segmentStart, planePoint, planeNormal)
	distEnd, _ := PointToPlaneSigned(segmentEnd, planePoint, planeNormal)

	if (distStart < 0.0) != (distEnd < 0.0) {
		// Segment straddles the plane
		t := distStart / (distStart - distEnd)
		intersection := segmentStart.Add(segmentEnd.Sub(segmentStart).Mul(t))
		return 0.0, intersection, intersection
	}

	closest := segmentStart
	d := distStart
	if math.Abs(distEnd) < math.Abs(distStart) {
		closest = segmentEnd
		d = distEnd
	}
	return math.Abs(d), closest, closest.Sub(planeNormal.Mul(d))
}

func clamp01(t float64) float64 {
	return math.Min(math.Max(t, 0.0), 1.0)
}
