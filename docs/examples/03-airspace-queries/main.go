package main

import (
	"fmt"
	"log"
	"os"

	"github.com/paulmach/orb"

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

	// Convert in parallel with progress reporting
	popts := yaixm.DefaultParallelOptions()
	popts.Progress = func(converted, total int) {
		fmt.Printf("\rConverting: %d/%d", converted, total)
	}
	features, err := yaixm.ConvertParallel(doc, yaixm.DefaultConvertOptions(), popts)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println()

	index := yaixm.NewIndex(features)

	// Which airspace covers a point over Cambridge?
	cambridge := orb.Point{0.175, 52.205}
	for _, feature := range index.FeaturesAt(cambridge) {
		fmt.Printf("Over Cambridge: %s (%s), %d %s to %d %s\n",
			feature.Name, feature.Type,
			feature.LowerCeiling.Value, feature.LowerCeiling.Unit,
			feature.UpperCeiling.Value, feature.UpperCeiling.Unit)
	}

	// Which features intersect a viewport over the Midlands?
	viewport := orb.Bound{
		Min: orb.Point{-2.5, 52.0},
		Max: orb.Point{-1.0, 53.0},
	}
	visible := index.FeaturesInBound(viewport)
	fmt.Printf("Features in viewport: %d\n", len(visible))
}
