package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/airspacekit/yaixm/pkg/yaixm"
)

func main() {
	data, err := os.ReadFile("airspace.yaml")
	if err != nil {
		log.Fatal(err)
	}

	doc, err := yaixm.Decode(data)
	if err != nil {
		log.Fatal(err)
	}

	// Repair any self-intersecting boundaries instead of failing
	opts := yaixm.DefaultConvertOptions()
	opts.FixGeometries = true

	features, err := yaixm.NewConverter().ConvertWithOptions(doc, opts)
	if err != nil {
		log.Fatal(err)
	}

	// Write a GeoJSON FeatureCollection, ready for any mapping library
	collection := yaixm.FeatureCollection(features)
	encoded, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile("airspace.geojson", encoded, 0o644); err != nil {
		log.Fatal(err)
	}
}
