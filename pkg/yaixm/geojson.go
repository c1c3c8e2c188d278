package yaixm

import "github.com/paulmach/orb/geojson"

// FeatureCollection builds a GeoJSON feature collection from converted
// features, one GeoJSON feature per airspace volume, in input order.
//
// Properties:
//
//	name             string
//	type             string (output taxonomy)
//	class            string
//	upperCeiling     {value, unit, referenceDatum}
//	lowerCeiling     {value, unit, referenceDatum}
//	activatedByNotam bool
//	activity         string (omitted when empty)
//	remarks          string (omitted when empty)
//	groundService    {callsign, frequency} (omitted when absent)
func FeatureCollection(features []Feature) *geojson.FeatureCollection {
	collection := geojson.NewFeatureCollection()
	for _, feature := range features {
		collection.Append(toGeoJSON(feature))
	}
	return collection
}

func toGeoJSON(feature Feature) *geojson.Feature {
	f := geojson.NewFeature(feature.Geometry)
	f.Properties["name"] = feature.Name
	f.Properties["type"] = feature.Type
	f.Properties["class"] = feature.Class
	f.Properties["upperCeiling"] = ceilingProperties(feature.UpperCeiling)
	f.Properties["lowerCeiling"] = ceilingProperties(feature.LowerCeiling)
	f.Properties["activatedByNotam"] = feature.ActivatedByNotam

	if feature.Activity != "" {
		f.Properties["activity"] = feature.Activity
	}
	if feature.Remarks != "" {
		f.Properties["remarks"] = feature.Remarks
	}
	if feature.GroundService != nil {
		f.Properties["groundService"] = map[string]interface{}{
			"callsign":  feature.GroundService.Callsign,
			"frequency": feature.GroundService.Frequency,
		}
	}
	return f
}

func ceilingProperties(ceiling Ceiling) map[string]interface{} {
	return map[string]interface{}{
		"value":          ceiling.Value,
		"unit":           ceiling.Unit,
		"referenceDatum": ceiling.ReferenceDatum,
	}
}
