package converter

// topology.go - planar-graph consistency analysis for candidate polygons.
// A closed ring is treated as an undirected planar graph: every vertex is a
// node with exactly two incident edges. A node where edges cannot be
// consistently labeled interior/exterior - a revisited vertex or an edge
// crossing - marks a self-intersection and makes the ring non-simple.

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ringValidation reports three independent, read-only facts about a
// candidate polygon.
type ringValidation struct {
	// Valid: closed ring of at least 4 points, simple, non-degenerate area
	Valid bool
	// Simple: no node of the underlying linework is inconsistent
	Simple bool
	// Node is the coordinate of one inconsistent node when the ring is not
	// simple; nil otherwise
	Node *orb.Point
}

// validateTopology analyzes the exterior ring of the polygon.
func validateTopology(p orb.Polygon) ringValidation {
	if len(p) == 0 {
		return ringValidation{}
	}
	ring := p[0]
	if len(ring) < 4 || !ring.Closed() {
		return ringValidation{}
	}

	node := inconsistentNode(ring)
	return ringValidation{
		Valid:  node == nil && math.Abs(planar.Area(ring)) > 0,
		Simple: node == nil,
		Node:   node,
	}
}

// inconsistentNode walks the ring's planar graph and returns the location of
// the first node with more than two incident edges: either a vertex visited
// twice by the traversal or the crossing point of two non-adjacent edges.
// Returns nil when every node is consistent.
func inconsistentNode(ring orb.Ring) *orb.Point {
	// The closing point intentionally repeats the first.
	n := len(ring) - 1

	seen := make(map[orb.Point]struct{}, n)
	for i := 0; i < n; i++ {
		if _, ok := seen[ring[i]]; ok {
			point := ring[i]
			return &point
		}
		seen[ring[i]] = struct{}{}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue // adjacent edges share a vertex by construction
			}
			if point, ok := segmentIntersection(ring[i], ring[i+1], ring[j], ring[j+1]); ok {
				return &point
			}
		}
	}

	return nil
}

// segmentIntersection returns the intersection point of segments [p1,p2] and
// [p3,p4] when they cross or overlap, computed in the lon/lat plane.
func segmentIntersection(p1, p2, p3, p4 orb.Point) (orb.Point, bool) {
	d1x, d1y := p2[0]-p1[0], p2[1]-p1[1]
	d2x, d2y := p4[0]-p3[0], p4[1]-p3[1]

	denom := d1x*d2y - d1y*d2x
	if denom == 0 {
		// Parallel. Collinear overlap still breaks node consistency.
		if crossProduct(p1, p2, p3) == 0 && onSegment(p1, p2, p3) {
			return p3, true
		}
		if crossProduct(p1, p2, p4) == 0 && onSegment(p1, p2, p4) {
			return p4, true
		}
		return orb.Point{}, false
	}

	t := ((p3[0]-p1[0])*d2y - (p3[1]-p1[1])*d2x) / denom
	u := ((p3[0]-p1[0])*d1y - (p3[1]-p1[1])*d1x) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return orb.Point{}, false
	}

	return orb.Point{p1[0] + t*d1x, p1[1] + t*d1y}, true
}

// crossProduct is the z component of (b-a) x (c-a).
func crossProduct(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

// onSegment reports whether c lies within the bounding box of segment [a,b].
// Only meaningful when c is already known to be collinear with the segment.
func onSegment(a, b, c orb.Point) bool {
	return math.Min(a[0], b[0]) <= c[0] && c[0] <= math.Max(a[0], b[0]) &&
		math.Min(a[1], b[1]) <= c[1] && c[1] <= math.Max(a[1], b[1])
}
