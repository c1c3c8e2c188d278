package converter

// repair.go - best-effort topology repair for self-intersecting polygons.
// The strategy trades fidelity for validity: deduplicate near-coincident
// points, collapse there-and-back spurs, split the ring into simple loops at
// its self-intersections and keep the largest, and fall back to the bounding
// envelope when the ring cannot be unkinked. The result must re-pass
// validation or the repair fails.

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

const (
	// defaultDedupeToleranceMeters drops points this close to an already
	// kept point. The legacy behavior used 1 m; both remain reachable
	// through RepairOptions.
	defaultDedupeToleranceMeters = 200
)

// RepairOptions tunes the repair pipeline thresholds.
type RepairOptions struct {
	// DedupeToleranceMeters is the minimum distance between kept points.
	// Zero selects the default of 200 m.
	DedupeToleranceMeters float64

	// CollinearToleranceDegrees is the allowed deviation from exact 180°
	// opposition when collapsing spur points. Zero means exact.
	CollinearToleranceDegrees float64
}

// DefaultRepairOptions returns repair options with defaults.
func DefaultRepairOptions() RepairOptions {
	return RepairOptions{
		DedupeToleranceMeters:     defaultDedupeToleranceMeters,
		CollinearToleranceDegrees: 0,
	}
}

// repairPolygon converts an invalid polygon into a valid one. Every stage is
// pure; the input polygon is never mutated. Returns ErrRepairFailed when the
// repaired geometry still fails validation.
func repairPolygon(p orb.Polygon, opts RepairOptions, ctx seqContext) (orb.Polygon, bool, error) {
	if len(p) == 0 || len(p[0]) == 0 {
		return nil, false, &ErrRepairFailed{Airspace: ctx.Airspace, Sequence: ctx.Sequence, Original: p}
	}

	ring := dedupePoints(p[0], opts.DedupeToleranceMeters)
	ring = collapseSpurs(ring, opts.CollinearToleranceDegrees)

	envelopeUsed := false
	fixed, err := unkinkRing(ring)
	if err != nil {
		// Last resort: the minimum bounding rectangle of the original
		// points. Always closes, may bear little resemblance to the input.
		fixed = orb.Polygon{p[0].Bound().ToRing()}
		envelopeUsed = true
	}

	if check := validateTopology(fixed); !check.Valid {
		return nil, envelopeUsed, &ErrRepairFailed{
			Airspace: ctx.Airspace, Sequence: ctx.Sequence,
			Original: p, Attempted: fixed,
		}
	}

	return fixed, envelopeUsed, nil
}

// dedupePoints drops every point within tolerance of an already kept point,
// always preserving the first and last point of the ring.
func dedupePoints(ring orb.Ring, toleranceMeters float64) orb.Ring {
	if toleranceMeters <= 0 {
		toleranceMeters = defaultDedupeToleranceMeters
	}
	if len(ring) < 3 {
		return ring
	}

	kept := orb.Ring{ring[0]}
	for i := 1; i < len(ring)-1; i++ {
		duplicate := false
		for _, k := range kept {
			if geo.Distance(k, ring[i]) < toleranceMeters {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, ring[i])
		}
	}
	return append(kept, ring[len(ring)-1])
}

// collapseSpurs drops interior points lying on the straight segment between
// their neighbours: the bearing back to the previous kept point opposes the
// bearing on to the next point by 180° within tolerance. This removes the
// there-and-back traversals that are a common source of self-intersection.
func collapseSpurs(ring orb.Ring, toleranceDegrees float64) orb.Ring {
	if len(ring) < 4 {
		return ring
	}

	out := orb.Ring{ring[0]}
	for i := 1; i < len(ring)-1; i++ {
		previous := out[len(out)-1]
		next := ring[i+1]
		back := normalizeBearing(geo.Bearing(ring[i], previous))
		forward := normalizeBearing(geo.Bearing(ring[i], next))
		delta := math.Abs(math.Mod(back-forward+360, 360))
		if math.Abs(delta-180) <= toleranceDegrees {
			continue // redundant point on the prev-next segment
		}
		out = append(out, ring[i])
	}
	return append(out, ring[len(ring)-1])
}

// unkinkRing closes the cleaned points into a ring, splits it into its
// constituent simple loops wherever self-intersections exist, and returns
// the loop with the greatest enclosed area as a counter-clockwise polygon.
func unkinkRing(ring orb.Ring) (orb.Polygon, error) {
	closed := make(orb.Ring, len(ring))
	copy(closed, ring)
	if !closed.Closed() {
		closed = append(closed, closed[0])
	}
	if len(closed) < 4 {
		return nil, fmt.Errorf("ring degenerate: %d points", len(closed))
	}

	loops := splitLoops(insertIntersections(closed))
	if len(loops) == 0 {
		return nil, fmt.Errorf("no simple loops found")
	}

	best := loops[0]
	bestArea := math.Abs(planar.Area(best))
	for _, loop := range loops[1:] {
		if area := math.Abs(planar.Area(loop)); area > bestArea {
			best, bestArea = loop, area
		}
	}

	if best.Orientation() != orb.CCW {
		best.Reverse()
	}
	return orb.Polygon{best}, nil
}

// insertIntersections nodes the ring: every crossing point of two
// non-adjacent edges becomes an explicit vertex on both edges, so that a
// subsequent walk revisits it and can pinch loops off there.
func insertIntersections(ring orb.Ring) orb.Ring {
	n := len(ring) - 1
	extra := make(map[int][]orb.Point, n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			point, ok := segmentIntersection(ring[i], ring[i+1], ring[j], ring[j+1])
			if !ok {
				continue
			}
			if point != ring[i] && point != ring[i+1] {
				extra[i] = append(extra[i], point)
			}
			if point != ring[j] && point != ring[j+1] {
				extra[j] = append(extra[j], point)
			}
		}
	}

	noded := make(orb.Ring, 0, len(ring)+len(extra))
	for i := 0; i < n; i++ {
		noded = append(noded, ring[i])
		points := extra[i]
		// Order inserted points by distance along the edge.
		sort.Slice(points, func(a, b int) bool {
			return squaredPlanarDistance(ring[i], points[a]) < squaredPlanarDistance(ring[i], points[b])
		})
		noded = append(noded, points...)
	}
	return append(noded, ring[n])
}

// splitLoops decomposes a noded, closed ring into simple loops: the walk
// keeps a stack of visited vertices and pinches off a loop every time a
// vertex repeats.
func splitLoops(ring orb.Ring) []orb.Ring {
	var loops []orb.Ring

	stack := make(orb.Ring, 0, len(ring))
	index := make(map[orb.Point]int, len(ring))

	for _, point := range ring {
		at, revisited := index[point]
		if !revisited {
			index[point] = len(stack)
			stack = append(stack, point)
			continue
		}

		loop := make(orb.Ring, 0, len(stack)-at+1)
		loop = append(loop, stack[at:]...)
		loop = append(loop, point)
		if len(loop) >= 4 {
			loops = append(loops, loop)
		}

		for _, popped := range stack[at+1:] {
			delete(index, popped)
		}
		stack = stack[:at+1]
	}

	return loops
}

func squaredPlanarDistance(a, b orb.Point) float64 {
	dx, dy := b[0]-a[0], b[1]-a[1]
	return dx*dx + dy*dy
}
