package converter

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestValidateTopologySimpleRing(t *testing.T) {
	polygon := orb.Polygon{{{0, 0}, {0.02, 0}, {0.02, 0.02}, {0, 0.02}, {0, 0}}}

	check := validateTopology(polygon)
	if !check.Valid {
		t.Error("expected valid polygon")
	}
	if !check.Simple {
		t.Error("expected simple ring")
	}
	if check.Node != nil {
		t.Errorf("expected no inconsistent node, got %v", *check.Node)
	}
}

func TestValidateTopologyBowtie(t *testing.T) {
	// Two edges cross at (0.01, 0.01).
	polygon := orb.Polygon{{{0, 0}, {0.02, 0.02}, {0.02, 0}, {0, 0.02}, {0, 0}}}

	check := validateTopology(polygon)
	if check.Valid {
		t.Error("expected invalid polygon")
	}
	if check.Simple {
		t.Error("expected non-simple ring")
	}
	if check.Node == nil {
		t.Fatal("expected an inconsistent node")
	}
	if math.Abs(check.Node.Lon()-0.01) > 1e-9 || math.Abs(check.Node.Lat()-0.01) > 1e-9 {
		t.Errorf("expected node near (0.01, 0.01), got %v", *check.Node)
	}
}

func TestValidateTopologyRevisitedVertex(t *testing.T) {
	// The ring passes through (0.02, 0) twice.
	polygon := orb.Polygon{{
		{0, 0}, {0.02, 0}, {0.03, 0.01}, {0.02, 0}, {0.02, 0.02}, {0, 0.02}, {0, 0},
	}}

	check := validateTopology(polygon)
	if check.Simple {
		t.Error("expected non-simple ring")
	}
	if check.Node == nil {
		t.Fatal("expected an inconsistent node")
	}
	if *check.Node != (orb.Point{0.02, 0}) {
		t.Errorf("expected node at the revisited vertex, got %v", *check.Node)
	}
}

func TestValidateTopologyDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		polygon orb.Polygon
	}{
		{"empty polygon", orb.Polygon{}},
		{"open ring", orb.Polygon{{{0, 0}, {0.02, 0}, {0.02, 0.02}, {0, 0.02}}}},
		{"too few points", orb.Polygon{{{0, 0}, {0.02, 0}, {0, 0}}}},
		{"zero area", orb.Polygon{{{0, 0}, {0.01, 0.01}, {0.02, 0.02}, {0, 0}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if check := validateTopology(tt.polygon); check.Valid {
				t.Error("expected invalid polygon")
			}
		})
	}
}

func TestSegmentIntersection(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2     orb.Point
		p3, p4     orb.Point
		intersects bool
	}{
		{
			name: "crossing diagonals",
			p1:   orb.Point{0, 0}, p2: orb.Point{2, 2},
			p3: orb.Point{2, 0}, p4: orb.Point{0, 2},
			intersects: true,
		},
		{
			name: "disjoint",
			p1:   orb.Point{0, 0}, p2: orb.Point{1, 0},
			p3: orb.Point{0, 1}, p4: orb.Point{1, 1},
			intersects: false,
		},
		{
			name: "parallel",
			p1:   orb.Point{0, 0}, p2: orb.Point{1, 1},
			p3: orb.Point{0, 1}, p4: orb.Point{1, 2},
			intersects: false,
		},
		{
			name: "collinear overlap",
			p1:   orb.Point{0, 0}, p2: orb.Point{2, 0},
			p3: orb.Point{1, 0}, p4: orb.Point{3, 0},
			intersects: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := segmentIntersection(tt.p1, tt.p2, tt.p3, tt.p4)
			if ok != tt.intersects {
				t.Errorf("expected intersects=%v, got %v", tt.intersects, ok)
			}
		})
	}
}
