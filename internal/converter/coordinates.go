package converter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Coordinate tokens are fixed-width sexagesimal: a 6-digit latitude plus
// hemisphere and a 7-digit longitude plus hemisphere, e.g. "572153N 0015835W".
var coordinatePattern = regexp.MustCompile(`^([0-9]{6})([NS]) ([0-9]{7})([EW])$`)

// parseCoordinate transforms one coordinate token into a WGS84 decimal-degree
// point, [lon, lat] per GeoJSON convention. The token is split into its
// latitude and longitude halves, each reformatted into a colon-delimited
// degree:minute:second:hemisphere string and handed to the sexagesimal
// conversion.
func parseCoordinate(token string, ctx seqContext) (orb.Point, error) {
	m := coordinatePattern.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return orb.Point{}, &ErrInvalidCoordinate{
			Token:    token,
			Airspace: ctx.Airspace,
			Sequence: ctx.Sequence,
			Reason:   "token does not match DDMMSS(N|S) DDDMMSS(E|W)",
		}
	}

	latDMS := fmt.Sprintf("%s:%s:%s:%s", m[1][0:2], m[1][2:4], m[1][4:6], m[2])
	lonDMS := fmt.Sprintf("%s:%s:%s:%s", m[3][0:3], m[3][3:5], m[3][5:7], m[4])

	lat, err := sexagesimalToDecimal(latDMS)
	if err != nil {
		return orb.Point{}, &ErrInvalidCoordinate{
			Token: token, Airspace: ctx.Airspace, Sequence: ctx.Sequence, Reason: err.Error(),
		}
	}
	lon, err := sexagesimalToDecimal(lonDMS)
	if err != nil {
		return orb.Point{}, &ErrInvalidCoordinate{
			Token: token, Airspace: ctx.Airspace, Sequence: ctx.Sequence, Reason: err.Error(),
		}
	}

	if lat < -90 || lat > 90 {
		return orb.Point{}, &ErrInvalidCoordinate{
			Token: token, Airspace: ctx.Airspace, Sequence: ctx.Sequence,
			Reason: fmt.Sprintf("latitude %f out of range", lat),
		}
	}
	if lon < -180 || lon > 180 {
		return orb.Point{}, &ErrInvalidCoordinate{
			Token: token, Airspace: ctx.Airspace, Sequence: ctx.Sequence,
			Reason: fmt.Sprintf("longitude %f out of range", lon),
		}
	}

	return orb.Point{lon, lat}, nil
}

// sexagesimalToDecimal converts a colon-delimited "D:M:S:H" string into
// signed decimal degrees. South and west hemispheres negate the value.
func sexagesimalToDecimal(dms string) (float64, error) {
	parts := strings.Split(dms, ":")
	if len(parts) != 4 {
		return 0, fmt.Errorf("expected D:M:S:H, got %q", dms)
	}

	deg, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("bad degrees %q", parts[0])
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("bad minutes %q", parts[1])
	}
	sec, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, fmt.Errorf("bad seconds %q", parts[2])
	}
	if min >= 60 {
		return 0, fmt.Errorf("minutes %d out of range", min)
	}
	if sec >= 60 {
		return 0, fmt.Errorf("seconds %d out of range", sec)
	}

	value := float64(deg) + float64(min)/60.0 + float64(sec)/3600.0

	switch parts[3] {
	case "N", "E":
		return value, nil
	case "S", "W":
		return -value, nil
	default:
		return 0, fmt.Errorf("bad hemisphere %q", parts[3])
	}
}
