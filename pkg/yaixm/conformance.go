package yaixm

import "fmt"

// CheckMode selects how schema conformance findings are handled.
type CheckMode int

const (
	// CheckOff disables conformance checking.
	CheckOff CheckMode = iota

	// CheckWarn logs findings and continues.
	CheckWarn

	// CheckStrict turns findings into a conversion error.
	CheckStrict
)

// ParseCheckMode parses the textual mode used by CLI flags.
func ParseCheckMode(s string) (CheckMode, error) {
	switch s {
	case "off", "":
		return CheckOff, nil
	case "warn":
		return CheckWarn, nil
	case "strict":
		return CheckStrict, nil
	}
	return CheckOff, fmt.Errorf("unknown check mode %q (want off, warn, or strict)", s)
}

// Violation is one conformance finding, locating the offending airspace and
// volume.
type Violation struct {
	Airspace string
	Sequence int
	Message  string
}

func (v Violation) String() string {
	if v.Sequence > 0 {
		return fmt.Sprintf("%s seq %d: %s", v.Airspace, v.Sequence, v.Message)
	}
	return fmt.Sprintf("%s: %s", v.Airspace, v.Message)
}

// SchemaChecker validates a decoded document before conversion. Checkers run
// outside the conversion pipeline; the converter itself never consults them.
type SchemaChecker interface {
	Check(doc *Document) []Violation
}

// RequiredFieldsChecker verifies that every airspace carries the fields the
// converter needs: a name, a type, at least one volume, and per volume both
// vertical limits and a boundary.
type RequiredFieldsChecker struct{}

func (RequiredFieldsChecker) Check(doc *Document) []Violation {
	var violations []Violation

	for _, airspace := range doc.Airspace {
		ident := airspace.ID
		if ident == "" {
			ident = airspace.Name
		}
		if airspace.Name == "" {
			violations = append(violations, Violation{Airspace: ident, Message: "missing name"})
		}
		if airspace.Type == "" {
			violations = append(violations, Violation{Airspace: ident, Message: "missing type"})
		}
		if len(airspace.Geometry) == 0 {
			violations = append(violations, Violation{Airspace: ident, Message: "no geometry volumes"})
			continue
		}
		for _, volume := range airspace.Geometry {
			if volume.Upper == "" {
				violations = append(violations, Violation{Airspace: ident, Sequence: volume.Sequence, Message: "missing upper limit"})
			}
			if volume.Lower == "" {
				violations = append(violations, Violation{Airspace: ident, Sequence: volume.Sequence, Message: "missing lower limit"})
			}
			if len(volume.Boundary) == 0 {
				violations = append(violations, Violation{Airspace: ident, Sequence: volume.Sequence, Message: "empty boundary"})
			}
		}
	}

	return violations
}
