package converter

import (
	"fmt"

	"github.com/paulmach/orb"
)

// ErrInvalidCoordinate indicates a coordinate token that does not match the
// fixed-width sexagesimal pattern, or whose converted value is out of range.
type ErrInvalidCoordinate struct {
	Token    string
	Airspace string
	Sequence int
	Reason   string
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("airspace %q sequence %d: invalid coordinate %q: %s",
		e.Airspace, e.Sequence, e.Token, e.Reason)
}

// ErrInvalidBoundary indicates a boundary that cannot be resolved into a
// ring: an empty line, an arc with no preceding point, a malformed radius
// or direction, or too few distinct points to form a polygon.
type ErrInvalidBoundary struct {
	Airspace string
	Sequence int
	Reason   string
}

func (e *ErrInvalidBoundary) Error() string {
	return fmt.Sprintf("airspace %q sequence %d: invalid boundary: %s",
		e.Airspace, e.Sequence, e.Reason)
}

// ErrUnsupportedBoundary indicates a boundary segment kind outside the
// line/arc/circle union.
type ErrUnsupportedBoundary struct {
	Airspace string
	Sequence int
	Segment  string
}

func (e *ErrUnsupportedBoundary) Error() string {
	return fmt.Sprintf("airspace %q sequence %d: unsupported boundary segment %s",
		e.Airspace, e.Sequence, e.Segment)
}

// ErrUnmappedTaxonomy indicates raw type/local-type/class vocabulary that
// has no entry in the fixed mapping tables.
type ErrUnmappedTaxonomy struct {
	Airspace string
	Field    string
	Value    string
}

func (e *ErrUnmappedTaxonomy) Error() string {
	return fmt.Sprintf("airspace %q: unmapped taxonomy %s=%q",
		e.Airspace, e.Field, e.Value)
}

// ErrInvalidVerticalLimit indicates an altitude string matching none of the
// accepted forms (surface marker, feet, flight level).
type ErrInvalidVerticalLimit struct {
	Airspace string
	Sequence int
	Value    string
}

func (e *ErrInvalidVerticalLimit) Error() string {
	return fmt.Sprintf("airspace %q sequence %d: invalid vertical limit %q",
		e.Airspace, e.Sequence, e.Value)
}

// ErrGeometryInvalid indicates a polygon that failed topology validation
// while geometry fixing is disabled. SelfIntersection, when non-nil, is the
// location of an inconsistent node found by the planar-graph analysis.
type ErrGeometryInvalid struct {
	Airspace         string
	Sequence         int
	SelfIntersection *orb.Point
}

func (e *ErrGeometryInvalid) Error() string {
	if e.SelfIntersection != nil {
		return fmt.Sprintf("airspace %q sequence %d: invalid polygon, self-intersection near (%f, %f)",
			e.Airspace, e.Sequence, e.SelfIntersection.Lon(), e.SelfIntersection.Lat())
	}
	return fmt.Sprintf("airspace %q sequence %d: invalid polygon", e.Airspace, e.Sequence)
}

// ErrRepairFailed indicates that every repair strategy was exhausted without
// producing a valid polygon. Original and Attempted are retained for audit.
type ErrRepairFailed struct {
	Airspace  string
	Sequence  int
	Original  orb.Polygon
	Attempted orb.Polygon
}

func (e *ErrRepairFailed) Error() string {
	return fmt.Sprintf("airspace %q sequence %d: polygon repair failed (%d original points, %d after repair)",
		e.Airspace, e.Sequence, ringLen(e.Original), ringLen(e.Attempted))
}

func ringLen(p orb.Polygon) int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}
