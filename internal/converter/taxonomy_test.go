package converter

import (
	"errors"
	"testing"
)

func TestMapTaxonomy(t *testing.T) {
	tests := []struct {
		name      string
		rawType   string
		localType string
		class     string
		rules     []string
		expected  Classification
	}{
		{
			name:     "classed CTA",
			rawType:  "CTA",
			class:    "D",
			expected: Classification{Type: TypeCTA, Class: "D"},
		},
		{
			name:     "classed danger area spells out",
			rawType:  "D",
			class:    "G",
			expected: Classification{Type: TypeDanger, Class: "G"},
		},
		{
			name:      "gas venting station is a warning area",
			rawType:   "D",
			localType: "GVS",
			expected:  Classification{Type: TypeWarning, Class: ClassUnclassified},
		},
		{
			name:      "drop zone carries parachuting activity",
			rawType:   "OTHER",
			localType: "DZ",
			expected:  Classification{Type: TypeDanger, Class: ClassUnclassified, Activity: ActivityParachuting},
		},
		{
			name:      "glider site",
			rawType:   "OTHER",
			localType: "GLIDER",
			expected:  Classification{Type: TypeGlidingSector, Class: ClassUnclassified, Activity: ActivityGliding},
		},
		{
			name:      "non-standard ATZ is an aeroclub warning",
			rawType:   "OTHER",
			localType: "NOATZ",
			expected:  Classification{Type: TypeWarning, Class: ClassUnclassified, Activity: ActivityAeroclub},
		},
		{
			name:      "microlight site",
			rawType:   "OTHER",
			localType: "UL",
			expected:  Classification{Type: TypeWarning, Class: ClassUnclassified, Activity: ActivityMicrolight},
		},
		{
			name:      "military ATZ",
			rawType:   "OTHER",
			localType: "MATZ",
			expected:  Classification{Type: TypeMATZ, Class: ClassUnclassified},
		},
		{
			name:     "bare restricted area",
			rawType:  "R",
			expected: Classification{Type: TypeRestricted, Class: ClassUnclassified},
		},
		{
			name:     "bare prohibited area",
			rawType:  "P",
			expected: Classification{Type: TypeProhibited, Class: ClassUnclassified},
		},
		{
			name:     "bare airway",
			rawType:  "AWY",
			expected: Classification{Type: TypeAirway, Class: ClassUnclassified},
		},
	}

	ctx := seqContext{Airspace: "TEST", Sequence: 1}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := mapTaxonomy(test.rawType, test.localType, test.class, test.rules, ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != test.expected {
				t.Errorf("expected %+v, got %+v", test.expected, got)
			}
		})
	}
}

func TestMapTaxonomyRuleOverride(t *testing.T) {
	ctx := seqContext{Airspace: "TEST", Sequence: 1}

	// A TMZ rule flag wins over the declared type, with or without class.
	got, err := mapTaxonomy("CTA", "", "D", []string{"TMZ"}, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Type != TypeTMZ || got.Class != "D" {
		t.Errorf("expected TMZ class D, got %+v", got)
	}

	got, err = mapTaxonomy("CTA", "", "", []string{"RMZ"}, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Type != TypeRMZ || got.Class != ClassUnclassified {
		t.Errorf("expected unclassified RMZ, got %+v", got)
	}

	// TMZ takes precedence when both flags are present.
	got, err = mapTaxonomy("CTA", "", "", []string{"RMZ", "TMZ"}, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Type != TypeTMZ {
		t.Errorf("expected TMZ to win over RMZ, got %+v", got)
	}

	// Unrelated rules leave the type alone.
	got, err = mapTaxonomy("CTA", "", "", []string{"NOTAM", "SI"}, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Type != TypeCTA {
		t.Errorf("expected CTA, got %+v", got)
	}
}

func TestMapTaxonomyUnmapped(t *testing.T) {
	tests := []struct {
		name      string
		rawType   string
		localType string
		class     string
		field     string
	}{
		{name: "unknown type", rawType: "BOGUS", field: "type"},
		{name: "unknown localtype", rawType: "OTHER", localType: "XYZZY", field: "localtype"},
		{name: "unknown class", rawType: "CTA", class: "Z", field: "class"},
		{name: "unlisted pair", rawType: "D_OTHER", localType: "ILS", field: "type/localtype"},
		{name: "nothing to map", field: "type"},
	}

	ctx := seqContext{Airspace: "TEST", Sequence: 1}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := mapTaxonomy(test.rawType, test.localType, test.class, nil, ctx)
			var unmapped *ErrUnmappedTaxonomy
			if !errors.As(err, &unmapped) {
				t.Fatalf("expected ErrUnmappedTaxonomy, got %v", err)
			}
			if unmapped.Field != test.field {
				t.Errorf("expected field %q, got %q", test.field, unmapped.Field)
			}
			if unmapped.Airspace != "TEST" {
				t.Errorf("error is missing airspace context: %v", unmapped)
			}
		})
	}
}
