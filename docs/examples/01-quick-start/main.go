package main

import (
	"fmt"
	"log"
	"os"

	"github.com/airspacekit/yaixm/pkg/yaixm"
)

func main() {
	// Download airspace.yaml from https://github.com/ahsparrow/airspace
	data, err := os.ReadFile("airspace.yaml")
	if err != nil {
		log.Fatal(err)
	}

	doc, err := yaixm.Decode(data)
	if err != nil {
		log.Fatal(err)
	}

	// Convert every airspace volume into a polygon feature
	features, err := yaixm.NewConverter().Convert(doc)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Airspace: %d\n", len(doc.Airspace))
	fmt.Printf("Features: %d\n", len(features))

	for _, feature := range features[:5] {
		fmt.Printf("%s (%s/%s): %d boundary points, %d %s to %d %s\n",
			feature.Name, feature.Type, feature.Class,
			len(feature.Geometry[0]),
			feature.LowerCeiling.Value, feature.LowerCeiling.Unit,
			feature.UpperCeiling.Value, feature.UpperCeiling.Unit)
	}
}
