package converter

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Converter converts decoded airspace definitions into output features.
//
// The converter holds no per-call state: all working context (current
// airspace, sequence number, ring accumulation) is threaded through calls,
// so a single instance is safe for concurrent use.
type Converter interface {
	// Convert processes every geometry sequence of every definition in
	// input order and returns one output feature per sequence. The first
	// defect aborts the whole conversion: a malformed airspace indicates an
	// upstream data-quality problem the publisher must fix, not a condition
	// to silently drop.
	Convert(definitions []AirspaceDefinition, opts ConvertOptions) ([]Feature, error)
}

// ConvertOptions configures conversion behavior.
type ConvertOptions struct {
	// ValidateGeometries: if true, polygons failing topology validation
	// abort the conversion with ErrGeometryInvalid.
	// Default: true
	ValidateGeometries bool

	// FixGeometries: if true, invalid polygons are passed through the
	// repair pipeline instead of aborting. Repair can materially distort
	// shape, so it is never enabled by default.
	FixGeometries bool

	// GeometryDetail is the arc/circle tessellation step count.
	// Default: 100
	GeometryDetail int

	// Repair tunes the repair pipeline thresholds when FixGeometries is set.
	Repair RepairOptions

	// Services is the optional ground-service list joined onto features
	// whose source airspace carries an ID.
	Services []ServiceRecord

	// Logger receives warnings for the recoverable paths (service lookup
	// misses, envelope fallback). Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// DefaultConvertOptions returns conversion options with defaults.
func DefaultConvertOptions() ConvertOptions {
	return ConvertOptions{
		ValidateGeometries: true,
		FixGeometries:      false,
		GeometryDetail:     defaultGeometryDetail,
		Repair:             DefaultRepairOptions(),
	}
}

// defaultConverter implements the Converter interface.
type defaultConverter struct{}

// NewConverter creates a new airspace converter.
func NewConverter() Converter {
	return &defaultConverter{}
}

func (c *defaultConverter) Convert(definitions []AirspaceDefinition, opts ConvertOptions) ([]Feature, error) {
	if opts.GeometryDetail <= 0 {
		opts.GeometryDetail = defaultGeometryDetail
	}
	if opts.Repair.DedupeToleranceMeters <= 0 {
		opts.Repair.DedupeToleranceMeters = defaultDedupeToleranceMeters
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	features := make([]Feature, 0, len(definitions))
	for _, definition := range definitions {
		if len(definition.Geometry) == 0 {
			return nil, &ErrInvalidBoundary{
				Airspace: airspaceIdent(definition),
				Reason:   "airspace has no geometry sequences",
			}
		}
		for _, sequence := range definition.Geometry {
			feature, err := c.convertSequence(definition, sequence, opts, logger)
			if err != nil {
				return nil, err
			}
			features = append(features, *feature)
		}
	}

	return features, nil
}

// convertSequence converts one geometry sequence into one output feature.
func (c *defaultConverter) convertSequence(definition AirspaceDefinition, sequence GeometrySequence, opts ConvertOptions, logger logrus.FieldLogger) (*Feature, error) {
	ctx := seqContext{Airspace: airspaceIdent(definition), Sequence: sequence.Sequence}

	ring, err := resolveBoundary(sequence.Boundary, opts.GeometryDetail, ctx)
	if err != nil {
		return nil, err
	}

	polygon, err := assemblePolygon(ring, ctx)
	if err != nil {
		return nil, err
	}

	if opts.ValidateGeometries || opts.FixGeometries {
		check := validateTopology(polygon)
		if !check.Valid {
			if !opts.FixGeometries {
				return nil, &ErrGeometryInvalid{
					Airspace: ctx.Airspace, Sequence: ctx.Sequence,
					SelfIntersection: check.Node,
				}
			}
			repaired, envelopeUsed, err := repairPolygon(polygon, opts.Repair, ctx)
			if err != nil {
				return nil, err
			}
			if envelopeUsed {
				logger.WithFields(logrus.Fields{
					"airspace": ctx.Airspace,
					"sequence": ctx.Sequence,
				}).Warn("polygon could not be unkinked, replaced with bounding envelope")
			}
			polygon = repaired
		}
	}

	class := sequence.Class
	if class == "" {
		class = definition.Class
	}
	rules := definition.Rules
	if len(sequence.Rules) > 0 {
		rules = sequence.Rules
	}

	classification, err := mapTaxonomy(definition.Type, definition.LocalType, class, rules, ctx)
	if err != nil {
		return nil, err
	}

	upper, err := parseVerticalLimit(sequence.Upper, ctx)
	if err != nil {
		return nil, err
	}
	lower, err := parseVerticalLimit(sequence.Lower, ctx)
	if err != nil {
		return nil, err
	}

	name := definition.Name
	if len(definition.Geometry) > 1 {
		name = fmt.Sprintf("%s-%d", definition.Name, sequence.Sequence)
	}

	feature := &Feature{
		Name:             name,
		Type:             classification.Type,
		Class:            classification.Class,
		Activity:         classification.Activity,
		UpperCeiling:     upper,
		LowerCeiling:     lower,
		ActivatedByNotam: containsRule(rules, "NOTAM"),
		Remarks:          definition.Remarks,
		Geometry:         polygon,
	}

	if definition.ID != "" && len(opts.Services) > 0 {
		feature.GroundService = lookupService(definition.ID, opts.Services, logger)
	}

	return feature, nil
}

// lookupService finds the first ground service whose controls field contains
// the airspace ID. Malformed matches are logged and skipped; a lookup
// failure is never fatal.
func lookupService(id string, services []ServiceRecord, logger logrus.FieldLogger) *GroundService {
	for _, service := range services {
		if !containsSubstring(service.Controls, id) {
			continue
		}
		if service.Callsign == "" || service.Frequency <= 0 {
			logger.WithFields(logrus.Fields{
				"airspace": id,
				"callsign": service.Callsign,
			}).Warn("matched ground service record is incomplete, skipping")
			continue
		}
		return &GroundService{
			Callsign:  service.Callsign,
			Frequency: fmt.Sprintf("%.3f", service.Frequency),
		}
	}
	return nil
}

// airspaceIdent prefers the stable ID for error messages, falling back to
// the published name.
func airspaceIdent(definition AirspaceDefinition) string {
	if definition.ID != "" {
		return definition.ID
	}
	return definition.Name
}

func containsSubstring(haystack, needle string) bool {
	return needle != "" && strings.Contains(haystack, needle)
}
