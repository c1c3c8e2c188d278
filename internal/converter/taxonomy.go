package converter

// taxonomy.go - fixed mapping from the raw UK source vocabulary onto the
// output type/class/activity enumeration. Pure and state-free: the same
// (type, localType, class, rules) input always yields the same output.

// Output taxonomy types.
const (
	TypeATZ           = "ATZ"
	TypeAirway        = "AIRWAY"
	TypeCTA           = "CTA"
	TypeCTR           = "CTR"
	TypeDanger        = "DANGER"
	TypeGlidingSector = "GLIDING_SECTOR"
	TypeMATZ          = "MATZ"
	TypeProhibited    = "PROHIBITED"
	TypeRestricted    = "RESTRICTED"
	TypeRMZ           = "RMZ"
	TypeTMA           = "TMA"
	TypeTMZ           = "TMZ"
	TypeWarning       = "WARNING"
)

// ClassUnclassified is the output class for airspace without an ICAO class.
const ClassUnclassified = "UNCLASSIFIED"

// Output activity classifications.
const (
	ActivityAeroclub    = "AEROCLUB"
	ActivityGliding     = "GLIDING"
	ActivityHangGliding = "HANG_GLIDING"
	ActivityMicrolight  = "MICROLIGHT"
	ActivityParachuting = "PARACHUTING"
)

// Classification is the output of the taxonomy mapping.
type Classification struct {
	Type  string
	Class string
	// Activity is empty when the mapping carries no activity metadata
	Activity string
}

// Allowed raw vocabulary. Anything outside these sets is a data-quality
// defect and fails the mapping.
var (
	rawTypes = map[string]struct{}{
		"ATZ": {}, "AWY": {}, "CTA": {}, "CTR": {}, "D": {}, "D_OTHER": {},
		"OTHER": {}, "P": {}, "R": {}, "RMZ": {}, "TMA": {}, "TMZ": {},
	}

	rawLocalTypes = map[string]struct{}{
		"AIAA": {}, "DZ": {}, "GLIDER": {}, "GVS": {}, "HIRTA": {}, "ILS": {},
		"LASER": {}, "MATZ": {}, "NOATZ": {}, "RAT": {}, "RMZ": {}, "TMZ": {}, "UL": {},
	}

	rawClasses = map[string]struct{}{
		"A": {}, "B": {}, "C": {}, "D": {}, "E": {}, "F": {}, "G": {},
	}
)

// ruleOverrides substitute for the raw type before the rest of the mapping
// runs: a TMZ/RMZ rule flag wins over the declared type.
var ruleOverrides = []string{"TMZ", "RMZ"}

// typeNames maps a raw type to the output type when an ICAO class is
// present. Direct names pass through; single-letter codes spell out.
var typeNames = map[string]string{
	"ATZ": TypeATZ,
	"AWY": TypeAirway,
	"CTA": TypeCTA,
	"CTR": TypeCTR,
	"D":   TypeDanger,
	"P":   TypeProhibited,
	"R":   TypeRestricted,
	"RMZ": TypeRMZ,
	"TMA": TypeTMA,
	"TMZ": TypeTMZ,
}

type pairKey struct {
	Type      string
	LocalType string
}

// pairTable maps exact (type, localType) combinations. Entries carry the
// activity metadata used by briefing consumers.
var pairTable = map[pairKey]Classification{
	{"OTHER", "AIAA"}:    {TypeWarning, ClassUnclassified, ""},
	{"OTHER", "DZ"}:      {TypeDanger, ClassUnclassified, ActivityParachuting},
	{"D_OTHER", "DZ"}:    {TypeDanger, ClassUnclassified, ActivityParachuting},
	{"OTHER", "GLIDER"}:  {TypeGlidingSector, ClassUnclassified, ActivityGliding},
	{"D_OTHER", "GLIDER"}: {TypeDanger, ClassUnclassified, ActivityGliding},
	{"D", "GVS"}:         {TypeWarning, ClassUnclassified, ""},
	{"D_OTHER", "GVS"}:   {TypeWarning, ClassUnclassified, ""},
	{"OTHER", "HIRTA"}:   {TypeWarning, ClassUnclassified, ""},
	{"D_OTHER", "HIRTA"}: {TypeWarning, ClassUnclassified, ""},
	{"OTHER", "ILS"}:     {TypeWarning, ClassUnclassified, ""},
	{"OTHER", "LASER"}:   {TypeWarning, ClassUnclassified, ""},
	{"D_OTHER", "LASER"}: {TypeWarning, ClassUnclassified, ""},
	{"OTHER", "MATZ"}:    {TypeMATZ, ClassUnclassified, ""},
	{"OTHER", "NOATZ"}:   {TypeWarning, ClassUnclassified, ActivityAeroclub},
	{"OTHER", "RAT"}:     {TypeRestricted, ClassUnclassified, ""},
	{"OTHER", "RMZ"}:     {TypeRMZ, ClassUnclassified, ""},
	{"OTHER", "TMZ"}:     {TypeTMZ, ClassUnclassified, ""},
	{"OTHER", "UL"}:      {TypeWarning, ClassUnclassified, ActivityMicrolight},
}

// singleTable maps a raw type alone, when neither class nor local type is
// available.
var singleTable = map[string]Classification{
	"ATZ": {TypeATZ, ClassUnclassified, ""},
	"AWY": {TypeAirway, ClassUnclassified, ""},
	"CTA": {TypeCTA, ClassUnclassified, ""},
	"CTR": {TypeCTR, ClassUnclassified, ""},
	"D":   {TypeDanger, ClassUnclassified, ""},
	"P":   {TypeProhibited, ClassUnclassified, ""},
	"R":   {TypeRestricted, ClassUnclassified, ""},
	"RMZ": {TypeRMZ, ClassUnclassified, ""},
	"TMA": {TypeTMA, ClassUnclassified, ""},
	"TMZ": {TypeTMZ, ClassUnclassified, ""},
}

// mapTaxonomy maps raw vocabulary onto the output taxonomy.
func mapTaxonomy(rawType, localType, class string, rules []string, ctx seqContext) (Classification, error) {
	if rawType != "" {
		if _, ok := rawTypes[rawType]; !ok {
			return Classification{}, &ErrUnmappedTaxonomy{Airspace: ctx.Airspace, Field: "type", Value: rawType}
		}
	}
	if localType != "" {
		if _, ok := rawLocalTypes[localType]; !ok {
			return Classification{}, &ErrUnmappedTaxonomy{Airspace: ctx.Airspace, Field: "localtype", Value: localType}
		}
	}
	if class != "" {
		if _, ok := rawClasses[class]; !ok {
			return Classification{}, &ErrUnmappedTaxonomy{Airspace: ctx.Airspace, Field: "class", Value: class}
		}
	}

	for _, override := range ruleOverrides {
		if containsRule(rules, override) {
			rawType = override
			break
		}
	}

	switch {
	case rawType != "" && class != "":
		name, ok := typeNames[rawType]
		if !ok {
			return Classification{}, &ErrUnmappedTaxonomy{Airspace: ctx.Airspace, Field: "type", Value: rawType}
		}
		return Classification{Type: name, Class: class}, nil

	case rawType != "" && localType != "":
		classification, ok := pairTable[pairKey{rawType, localType}]
		if !ok {
			return Classification{}, &ErrUnmappedTaxonomy{
				Airspace: ctx.Airspace, Field: "type/localtype", Value: rawType + "/" + localType,
			}
		}
		return classification, nil

	case rawType != "":
		classification, ok := singleTable[rawType]
		if !ok {
			return Classification{}, &ErrUnmappedTaxonomy{Airspace: ctx.Airspace, Field: "type", Value: rawType}
		}
		return classification, nil
	}

	return Classification{}, &ErrUnmappedTaxonomy{Airspace: ctx.Airspace, Field: "type", Value: ""}
}

func containsRule(rules []string, rule string) bool {
	for _, r := range rules {
		if r == rule {
			return true
		}
	}
	return false
}
