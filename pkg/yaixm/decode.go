package yaixm

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// Document is a decoded yaixm airspace document. The schema is published at
// https://github.com/ahsparrow/yaixm; this decodes the airspace and service
// sections used for conversion.
type Document struct {
	Airspace []Airspace `yaml:"airspace"`
	Service  []Service  `yaml:"service"`
}

// Airspace is one airspace definition as authored in the document.
type Airspace struct {
	Name      string   `yaml:"name"`
	ID        string   `yaml:"id"`
	Type      string   `yaml:"type"`
	LocalType string   `yaml:"localtype"`
	Class     string   `yaml:"class"`
	Rules     []string `yaml:"rules"`
	Remarks   string   `yaml:"remarks"`
	Geometry  []Volume `yaml:"geometry"`
}

// Volume is one vertical volume of an airspace.
type Volume struct {
	Sequence int      `yaml:"seqno"`
	Upper    string   `yaml:"upper"`
	Lower    string   `yaml:"lower"`
	Class    string   `yaml:"class"`
	Rules    []string `yaml:"rules"`
	Boundary []Segment `yaml:"boundary"`
}

// Segment is one boundary segment. Exactly one of Line, Arc, or Circle is
// populated; the others are zero.
type Segment struct {
	Line   []string    `yaml:"line"`
	Arc    *ArcSpec    `yaml:"arc"`
	Circle *CircleSpec `yaml:"circle"`
}

// ArcSpec describes a circular arc continuing from the previous boundary point.
type ArcSpec struct {
	Dir    string `yaml:"dir"`
	Radius string `yaml:"radius"`
	Centre string `yaml:"centre"`
	To     string `yaml:"to"`
}

// CircleSpec describes a full circle boundary.
type CircleSpec struct {
	Radius string `yaml:"radius"`
	Centre string `yaml:"centre"`
}

// Service is one air traffic ground service. Controls lists the IDs of the
// airspace the service is responsible for.
type Service struct {
	Callsign  string   `yaml:"callsign"`
	Frequency float64  `yaml:"frequency"`
	Controls  []string `yaml:"controls"`
}

// Decode parses a yaixm YAML document.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	return &doc, nil
}
