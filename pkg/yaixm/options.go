package yaixm

import "github.com/sirupsen/logrus"

// ConvertOptions configures conversion behavior.
type ConvertOptions struct {
	// ValidateGeometries aborts conversion when a resolved polygon is
	// self-intersecting or degenerate. Default is true.
	ValidateGeometries bool

	// FixGeometries passes invalid polygons through the repair pipeline
	// instead of aborting. Repair can materially distort shape, so it is
	// off by default.
	FixGeometries bool

	// GeometryDetail is the number of points used to tessellate arcs and
	// circles. Default is 100.
	GeometryDetail int

	// DedupeToleranceMeters is the minimum distance between kept boundary
	// points during repair. Default is 200 m.
	DedupeToleranceMeters float64

	// CollinearToleranceDegrees is the allowed deviation from exact 180°
	// opposition when collapsing redundant boundary points during repair.
	// Default is 0 (exact).
	CollinearToleranceDegrees float64

	// Logger receives warnings on recoverable paths. Defaults to the logrus
	// standard logger.
	Logger logrus.FieldLogger
}

// DefaultConvertOptions returns default options.
func DefaultConvertOptions() ConvertOptions {
	return ConvertOptions{
		ValidateGeometries: true,
		FixGeometries:      false,
		GeometryDetail:     100,
	}
}
