package converter

import "github.com/paulmach/orb"

// AirspaceDefinition is one airspace as authored in the source document.
// The raw vocabulary (Type, LocalType, Class, Rules) is mapped onto the
// output taxonomy during conversion; see taxonomy.go.
type AirspaceDefinition struct {
	// Name is the published airspace name, e.g. "ABERDEEN CTA"
	Name string
	// ID is the optional stable identifier, e.g. "aberdeen-cta".
	// Used for ground-service joins and error messages.
	ID string
	// Type is the raw airspace type code (ATZ, CTA, D, OTHER, ...)
	Type string
	// LocalType is the optional national local type (DZ, GVS, MATZ, ...)
	LocalType string
	// Class is the optional ICAO airspace class (A-G)
	Class string
	// Rules is the optional set of rule flags (NOTAM, TMZ, RMZ, ...)
	Rules []string
	// Remarks is optional free text passed through to the output feature
	Remarks string
	// Geometry holds the ordered volume sequences. Must be non-empty.
	Geometry []GeometrySequence
}

// GeometrySequence is one vertical volume of an airspace. Each sequence
// yields exactly one output feature.
type GeometrySequence struct {
	// Sequence is the optional sequence number. Defaults to 0; only used
	// to suffix feature names and to locate defects in error messages.
	Sequence int
	// Upper and Lower are the raw vertical limit strings ("FL115", "1500 ft", "SFC")
	Upper string
	Lower string
	// Class overrides the definition-level class when set
	Class string
	// Rules overrides the definition-level rules when set
	Rules []string
	// Boundary is the ordered list of boundary segments forming the outline
	Boundary []BoundarySegment
}

// BoundarySegment is one atomic piece of an airspace outline: a straight
// line sequence, a circular arc, or a full circle. The interface is sealed;
// resolveBoundary dispatches over the three concrete variants and rejects
// anything else with ErrUnsupportedBoundary.
type BoundarySegment interface {
	boundarySegment()
}

// Line is a sequence of coordinate tokens joined by straight segments.
type Line struct {
	// Points are coordinate tokens, e.g. "572153N 0015835W"
	Points []string
}

// Arc is a circular arc continuing from the last resolved boundary point.
// It may only appear after at least one coordinate has been resolved
// earlier in the same boundary.
type Arc struct {
	// Direction is "cw" or "ccw" (case-insensitive)
	Direction string
	// Radius is "<number> nm" (case-insensitive unit)
	Radius string
	// Centre is the arc centre coordinate token
	Centre string
	// To is the coordinate token the arc ends at
	To string
}

// Circle is a full circle around a centre point.
type Circle struct {
	Radius string
	Centre string
}

func (Line) boundarySegment()   {}
func (Arc) boundarySegment()    {}
func (Circle) boundarySegment() {}

// Unit is the vertical limit unit.
type Unit string

const (
	UnitFeet        Unit = "FT"
	UnitFlightLevel Unit = "FL"
)

// Datum is the vertical limit reference datum. GND is used in place of
// SFC/"surface" in the output vocabulary.
type Datum string

const (
	DatumGround       Datum = "GND"
	DatumStandard     Datum = "STD"
	DatumMeanSeaLevel Datum = "MSL"
)

// VerticalLimit is a normalized altitude expression.
type VerticalLimit struct {
	Value          int
	Unit           Unit
	ReferenceDatum Datum
}

// ServiceRecord is one ground-service entry joined onto output features
// whose source airspace carries an ID contained in Controls.
type ServiceRecord struct {
	Callsign  string
	Controls  string
	Frequency float64
}

// GroundService is the service metadata attached to an output feature.
type GroundService struct {
	Callsign string
	// Frequency is formatted to three decimal places, e.g. "118.100"
	Frequency string
}

// Feature is one converted output feature. One GeometrySequence produces
// exactly one Feature.
type Feature struct {
	// Name is the airspace name, suffixed with the sequence number when
	// the definition has more than one sequence
	Name  string
	Type  string
	Class string
	// Activity is the optional activity classification (PARACHUTING, GLIDING, ...)
	Activity         string
	UpperCeiling     VerticalLimit
	LowerCeiling     VerticalLimit
	ActivatedByNotam bool
	Remarks          string
	GroundService    *GroundService
	// Geometry is a single-ring polygon, closed, exterior ring counter-clockwise
	Geometry orb.Polygon
}

// seqContext identifies the airspace and sequence being converted. It is
// threaded explicitly through all conversion calls so errors can name the
// defect location; the converter holds no per-call state and is safe for
// concurrent use.
type seqContext struct {
	Airspace string
	Sequence int
}
