package converter

import (
	"github.com/paulmach/orb"
)

// assemblePolygon closes the accumulated ring buffer and builds a polygon
// with the exterior ring in canonical winding order. The right-hand rule is
// mandatory for all consumers: the exterior ring runs counter-clockwise with
// longitude as x and latitude as y, regardless of the input's physical
// traversal direction.
func assemblePolygon(ring orb.Ring, ctx seqContext) (orb.Polygon, error) {
	if distinctPoints(ring) < 3 {
		return nil, &ErrInvalidBoundary{
			Airspace: ctx.Airspace, Sequence: ctx.Sequence,
			Reason: "fewer than 3 distinct boundary points",
		}
	}

	closed := make(orb.Ring, len(ring), len(ring)+1)
	copy(closed, ring)
	if !closed.Closed() {
		closed = append(closed, closed[0])
	}

	if closed.Orientation() != orb.CCW {
		closed.Reverse()
	}

	return orb.Polygon{closed}, nil
}

// distinctPoints counts unique coordinates in the ring.
func distinctPoints(ring orb.Ring) int {
	seen := make(map[orb.Point]struct{}, len(ring))
	for _, point := range ring {
		seen[point] = struct{}{}
	}
	return len(seen)
}
