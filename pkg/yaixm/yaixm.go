// Package yaixm converts UK yaixm airspace documents into GeoJSON polygon
// features.
//
// The yaixm format (https://github.com/ahsparrow/yaixm) describes airspace
// boundaries as sequences of lines, arcs, and circles over sexagesimal
// coordinate tokens. This package decodes such documents, resolves every
// boundary into a closed counter-clockwise polygon, maps the UK airspace
// vocabulary onto a fixed output taxonomy, and emits one feature per volume.
package yaixm

import (
	"strings"

	"github.com/paulmach/orb"

	"github.com/airspacekit/yaixm/internal/converter"
)

// Converter converts decoded yaixm documents into output features.
//
// Create a converter with NewConverter and use Convert or ConvertWithOptions.
// A single converter is safe for concurrent use.
type Converter interface {
	// Convert converts every airspace volume in the document with default
	// options: geometry validation on, repair off, arc detail 100.
	Convert(doc *Document) ([]Feature, error)

	// ConvertWithOptions converts with custom options.
	//
	// Use ConvertOptions to control validation, repair, tessellation detail,
	// and logging. The document's service list is joined onto features
	// automatically; ConvertOptions cannot override it.
	ConvertWithOptions(doc *Document, opts ConvertOptions) ([]Feature, error)
}

// NewConverter creates a new yaixm converter with default settings.
//
// Example:
//
//	doc, err := yaixm.Decode(data)
//	features, err := yaixm.NewConverter().Convert(doc)
func NewConverter() Converter {
	return &converterWrapper{
		internal: converter.NewConverter(),
	}
}

// converterWrapper wraps the internal converter and converts types.
type converterWrapper struct {
	internal converter.Converter
}

func (c *converterWrapper) Convert(doc *Document) ([]Feature, error) {
	return c.ConvertWithOptions(doc, DefaultConvertOptions())
}

func (c *converterWrapper) ConvertWithOptions(doc *Document, opts ConvertOptions) ([]Feature, error) {
	internalOpts := converter.ConvertOptions{
		ValidateGeometries: opts.ValidateGeometries,
		FixGeometries:      opts.FixGeometries,
		GeometryDetail:     opts.GeometryDetail,
		Repair: converter.RepairOptions{
			DedupeToleranceMeters:     opts.DedupeToleranceMeters,
			CollinearToleranceDegrees: opts.CollinearToleranceDegrees,
		},
		Services: convertServices(doc.Service),
		Logger:   opts.Logger,
	}

	internalFeatures, err := c.internal.Convert(convertDefinitions(doc.Airspace), internalOpts)
	if err != nil {
		return nil, err
	}

	features := make([]Feature, len(internalFeatures))
	for i, f := range internalFeatures {
		features[i] = convertFeature(f)
	}
	return features, nil
}

// Feature is one converted airspace volume.
type Feature struct {
	// Name is the airspace name, suffixed with the sequence number when the
	// source airspace has more than one volume.
	Name string

	// Type and Class are the output taxonomy classification.
	Type  string
	Class string

	// Activity is the optional activity classification, e.g. "PARACHUTING".
	Activity string

	UpperCeiling Ceiling
	LowerCeiling Ceiling

	// ActivatedByNotam reports whether the volume is only active when
	// notified by NOTAM.
	ActivatedByNotam bool

	// Remarks is free text carried over from the source document.
	Remarks string

	// GroundService is the controlling service, when the document's service
	// list names this airspace.
	GroundService *GroundService

	// Geometry is a single-ring polygon: closed, exterior ring
	// counter-clockwise, coordinates in [longitude, latitude] WGS-84 degrees.
	Geometry orb.Polygon
}

// Ceiling is a normalized vertical limit.
type Ceiling struct {
	Value int
	// Unit is "FT" or "FL".
	Unit string
	// ReferenceDatum is "GND", "MSL", or "STD".
	ReferenceDatum string
}

// GroundService is the controlling air traffic service of a feature.
type GroundService struct {
	Callsign string
	// Frequency is formatted to three decimal places, e.g. "119.050".
	Frequency string
}

// convertDefinitions converts decoded document types to the internal model.
func convertDefinitions(airspace []Airspace) []converter.AirspaceDefinition {
	definitions := make([]converter.AirspaceDefinition, len(airspace))
	for i, a := range airspace {
		sequences := make([]converter.GeometrySequence, len(a.Geometry))
		for j, volume := range a.Geometry {
			sequences[j] = converter.GeometrySequence{
				Sequence: volume.Sequence,
				Upper:    volume.Upper,
				Lower:    volume.Lower,
				Class:    volume.Class,
				Rules:    volume.Rules,
				Boundary: convertBoundary(volume.Boundary),
			}
		}
		definitions[i] = converter.AirspaceDefinition{
			Name:      a.Name,
			ID:        a.ID,
			Type:      a.Type,
			LocalType: a.LocalType,
			Class:     a.Class,
			Rules:     a.Rules,
			Remarks:   a.Remarks,
			Geometry:  sequences,
		}
	}
	return definitions
}

func convertBoundary(segments []Segment) []converter.BoundarySegment {
	boundary := make([]converter.BoundarySegment, 0, len(segments))
	for _, segment := range segments {
		switch {
		case segment.Arc != nil:
			boundary = append(boundary, converter.Arc{
				Direction: segment.Arc.Dir,
				Radius:    segment.Arc.Radius,
				Centre:    segment.Arc.Centre,
				To:        segment.Arc.To,
			})
		case segment.Circle != nil:
			boundary = append(boundary, converter.Circle{
				Radius: segment.Circle.Radius,
				Centre: segment.Circle.Centre,
			})
		default:
			boundary = append(boundary, converter.Line{Points: segment.Line})
		}
	}
	return boundary
}

func convertServices(services []Service) []converter.ServiceRecord {
	records := make([]converter.ServiceRecord, len(services))
	for i, s := range services {
		records[i] = converter.ServiceRecord{
			Callsign:  s.Callsign,
			Controls:  strings.Join(s.Controls, " "),
			Frequency: s.Frequency,
		}
	}
	return records
}

func convertFeature(f converter.Feature) Feature {
	feature := Feature{
		Name:             f.Name,
		Type:             f.Type,
		Class:            f.Class,
		Activity:         f.Activity,
		UpperCeiling:     convertCeiling(f.UpperCeiling),
		LowerCeiling:     convertCeiling(f.LowerCeiling),
		ActivatedByNotam: f.ActivatedByNotam,
		Remarks:          f.Remarks,
		Geometry:         f.Geometry,
	}
	if f.GroundService != nil {
		feature.GroundService = &GroundService{
			Callsign:  f.GroundService.Callsign,
			Frequency: f.GroundService.Frequency,
		}
	}
	return feature
}

func convertCeiling(limit converter.VerticalLimit) Ceiling {
	return Ceiling{
		Value:          limit.Value,
		Unit:           string(limit.Unit),
		ReferenceDatum: string(limit.ReferenceDatum),
	}
}
