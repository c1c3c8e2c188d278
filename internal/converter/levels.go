package converter

import (
	"regexp"
	"strconv"
	"strings"
)

// Vertical limits accept three mutually exclusive forms:
//   - a literal surface marker: "SFC" or "GND"
//   - feet above a datum: "1500 ft", optionally suffixed " SFC"
//   - a flight level: "FL115"
var (
	surfacePattern     = regexp.MustCompile(`^(?i:SFC|GND)$`)
	feetPattern        = regexp.MustCompile(`^([0-9]+) ?(?i:ft)( (?i:SFC))?$`)
	flightLevelPattern = regexp.MustCompile(`^FL([0-9]+)$`)
)

// parseVerticalLimit normalizes a free-form altitude string into a
// structured vertical limit. The reference datum for feet defaults to mean
// sea level unless the string explicitly names the surface.
func parseVerticalLimit(raw string, ctx seqContext) (VerticalLimit, error) {
	value := strings.TrimSpace(raw)

	if surfacePattern.MatchString(value) {
		return VerticalLimit{Value: 0, Unit: UnitFeet, ReferenceDatum: DatumGround}, nil
	}

	if m := feetPattern.FindStringSubmatch(value); m != nil {
		feet, err := strconv.Atoi(m[1])
		if err == nil {
			datum := DatumMeanSeaLevel
			if m[2] != "" {
				datum = DatumGround
			}
			return VerticalLimit{Value: feet, Unit: UnitFeet, ReferenceDatum: datum}, nil
		}
	}

	if m := flightLevelPattern.FindStringSubmatch(value); m != nil {
		level, err := strconv.Atoi(m[1])
		if err == nil {
			return VerticalLimit{Value: level, Unit: UnitFlightLevel, ReferenceDatum: DatumStandard}, nil
		}
	}

	return VerticalLimit{}, &ErrInvalidVerticalLimit{
		Airspace: ctx.Airspace, Sequence: ctx.Sequence, Value: raw,
	}
}
