package distance

import (
	"errors"

	"github.com/aries-robot/distance3d/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrUnsupportedPair is returned by Between for primitive combinations the
// kernel defines no distance for.
var ErrUnsupportedPair = errors.New("distance: unsupported primitive pair")

// Between computes the shortest distance between two primitives and the
// closest point on each, dispatching over the closed primitive set in the
// geom package. The pair order does not matter; the returned contact
// points follow the argument order.
//
// Supported pairs are point/point, point/line, point/segment, point/plane,
// line/line, line/segment, segment/segment and segment/plane. All other
// combinations return ErrUnsupportedPair.
func Between(a, b geom.Primitive, epsilon float64) (float64, mgl64.Vec3, mgl64.Vec3, error) {
	switch pa := a.(type) {
	case geom.Point:
		switch pb := b.(type) {
		case geom.Point:
			return pb.Vec().Sub(pa.Vec()).Len(), pa.Vec(), pb.Vec(), nil
		case geom.Line:
			dist, onLine := PointToLine(pa.Vec(), pb.Point, pb.Direction)
			return dist, pa.Vec(), onLine, nil
		case geom.Segment:
			dist, onSegment := PointToLineSegment(pa.Vec(), pb.Start, pb.End)
			return dist, pa.Vec(), onSegment, nil
		case geom.Plane:
			dist, onPlane := PointToPlane(pa.Vec(), pb.Point, pb.Normal)
			return dist, pa.Vec(), onPlane, nil
		}
	case geom.Line:
		switch pb := b.(type) {
		case geom.Point:
			return swapped(b, a, epsilon)
		case geom.Line:
			dist, on1, on2 := LineToLine(pa.Point, pa.Direction, pb.Point, pb.Direction, epsilon)
			return dist, on1, on2, nil
		case geom.Segment:
			dist, onLine, onSegment := LineToLineSegment(pa.Point, pa.Direction, pb.Start, pb.End, epsilon)
			return dist, onLine, onSegment, nil
		}
	case geom.Segment:
		switch pb := b.(type) {
		case geom.Point, geom.Line:
			return swapped(b, a, epsilon)
		case geom.Segment:
			dist, on1, on2 := LineSegmentToLineSegment(pa.Start, pa.End, pb.Start, pb.End, epsilon)
			return dist, on1, on2, nil
		case geom.Plane:
			dist, onSegment, onPlane := LineSegmentToPlane(pa.Start, pa.End, pb.Point, pb.Normal)
			return dist, onSegment, onPlane, nil
		}
	case geom.Plane:
		switch b.(type) {
		case geom.Point, geom.Segment:
			return swapped(b, a, epsilon)
		}
	}
	return 0, mgl64.Vec3{}, mgl64.Vec3{}, ErrUnsupportedPair
}

func swapped(a, b geom.Primitive, epsilon float64) (float64, mgl64.Vec3, mgl64.Vec3, error) {
	dist, onA, onB, err := Between(a, b, epsilon)
	return dist, onB, onA, err
}
