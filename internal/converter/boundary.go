package converter

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	// nauticalMileKM converts radius values from nautical miles to kilometers
	nauticalMileKM = 1.852

	// defaultGeometryDetail is the arc/circle tessellation step count
	defaultGeometryDetail = 100
)

// Radii are "<number> nm" with a case-insensitive unit.
var radiusPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?) ?(?i:nm)$`)

// resolveBoundary turns an ordered list of boundary segments into an ordered
// ring of coordinates. Coordinates accumulate into a single running buffer;
// arcs continue from the last accumulated point. The ring is returned open,
// closure is the polygon assembler's job.
func resolveBoundary(segments []BoundarySegment, detail int, ctx seqContext) (orb.Ring, error) {
	if detail <= 0 {
		detail = defaultGeometryDetail
	}

	ring := make(orb.Ring, 0, 64)
	for _, segment := range segments {
		switch s := segment.(type) {
		case Line:
			if len(s.Points) == 0 {
				return nil, &ErrInvalidBoundary{
					Airspace: ctx.Airspace, Sequence: ctx.Sequence,
					Reason: "line segment has no points",
				}
			}
			for _, token := range s.Points {
				point, err := parseCoordinate(token, ctx)
				if err != nil {
					return nil, err
				}
				ring = append(ring, point)
			}

		case Arc:
			if len(ring) == 0 {
				return nil, &ErrInvalidBoundary{
					Airspace: ctx.Airspace, Sequence: ctx.Sequence,
					Reason: "arc segment requires a previously resolved point",
				}
			}
			points, err := resolveArc(s, ring[len(ring)-1], detail, ctx)
			if err != nil {
				return nil, err
			}
			ring = append(ring, points...)

		case Circle:
			points, err := resolveCircle(s, detail, ctx)
			if err != nil {
				return nil, err
			}
			ring = append(ring, points...)

		default:
			return nil, &ErrUnsupportedBoundary{
				Airspace: ctx.Airspace, Sequence: ctx.Sequence,
				Segment: fmt.Sprintf("%T", segment),
			}
		}
	}

	return ring, nil
}

// resolveArc tessellates a circular arc from the last accumulated boundary
// point to the arc's target point. The tessellation always walks clockwise
// internally; counter-clockwise arcs swap the start/end roles before the
// bearing computation and reverse the produced points afterwards, preserving
// the true traversal direction.
func resolveArc(a Arc, from orb.Point, detail int, ctx seqContext) ([]orb.Point, error) {
	direction := strings.ToLower(strings.TrimSpace(a.Direction))
	if direction != "cw" && direction != "ccw" {
		return nil, &ErrInvalidBoundary{
			Airspace: ctx.Airspace, Sequence: ctx.Sequence,
			Reason: fmt.Sprintf("invalid arc direction %q", a.Direction),
		}
	}

	radiusKM, err := parseRadiusKM(a.Radius, ctx)
	if err != nil {
		return nil, err
	}
	centre, err := parseCoordinate(a.Centre, ctx)
	if err != nil {
		return nil, err
	}
	to, err := parseCoordinate(a.To, ctx)
	if err != nil {
		return nil, err
	}

	start, end := from, to
	if direction == "ccw" {
		start, end = end, start
	}

	startBearing := normalizeBearing(geo.Bearing(centre, start))
	endBearing := normalizeBearing(geo.Bearing(centre, end))

	points := tessellateArc(centre, radiusKM, startBearing, endBearing, detail)

	// Pin the exact endpoints: the logical start equals a point already in
	// the ring, the logical end must land exactly on its token coordinate.
	points[0] = start
	points[len(points)-1] = end

	if direction == "ccw" {
		reversePoints(points)
	}

	// The first point duplicates the last accumulated ring point.
	return points[1:], nil
}

// resolveCircle tessellates a full circle around the centre. The produced
// ring is left open; the polygon assembler appends the closing point.
func resolveCircle(c Circle, detail int, ctx seqContext) ([]orb.Point, error) {
	radiusKM, err := parseRadiusKM(c.Radius, ctx)
	if err != nil {
		return nil, err
	}
	centre, err := parseCoordinate(c.Centre, ctx)
	if err != nil {
		return nil, err
	}

	step := 360.0 / float64(detail)
	points := make([]orb.Point, 0, detail)
	for i := 0; i < detail; i++ {
		points = append(points, geo.PointAtBearingAndDistance(centre, float64(i)*step, radiusKM*1000))
	}
	return points, nil
}

// tessellateArc projects detail+1 fence-post points at equal angular steps
// from startBearing to endBearing, sweeping clockwise around the centre.
func tessellateArc(centre orb.Point, radiusKM, startBearing, endBearing float64, detail int) []orb.Point {
	if endBearing <= startBearing {
		endBearing += 360
	}
	step := (endBearing - startBearing) / float64(detail)

	points := make([]orb.Point, 0, detail+1)
	for i := 0; i <= detail; i++ {
		bearing := math.Mod(startBearing+float64(i)*step, 360)
		points = append(points, geo.PointAtBearingAndDistance(centre, bearing, radiusKM*1000))
	}
	return points
}

// parseRadiusKM parses "<number> nm" and converts to kilometers.
func parseRadiusKM(raw string, ctx seqContext) (float64, error) {
	m := radiusPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0, &ErrInvalidBoundary{
			Airspace: ctx.Airspace, Sequence: ctx.Sequence,
			Reason: fmt.Sprintf("invalid radius %q, expected \"<number> nm\"", raw),
		}
	}
	nm, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, &ErrInvalidBoundary{
			Airspace: ctx.Airspace, Sequence: ctx.Sequence,
			Reason: fmt.Sprintf("invalid radius value %q", m[1]),
		}
	}
	return nm * nauticalMileKM, nil
}

// normalizeBearing maps a bearing from [-180, 180] to [0, 360).
func normalizeBearing(bearing float64) float64 {
	return math.Mod(bearing+360, 360)
}

func reversePoints(points []orb.Point) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}
