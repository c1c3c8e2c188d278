// yaixmconv converts a yaixm airspace document into a GeoJSON feature
// collection.
//
// Usage:
//
//	yaixmconv [flags] airspace.yaml airspace.geojson
//
// With "-" as either filename, yaixmconv reads stdin or writes stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/airspacekit/yaixm/pkg/yaixm"
)

func main() {
	fix := flag.Bool("fix", false, "repair invalid polygons instead of failing")
	detail := flag.Int("detail", 100, "arc and circle tessellation point count")
	noValidate := flag.Bool("no-validate", false, "skip geometry validation")
	check := flag.String("check", "off", "schema conformance mode: off, warn, or strict")
	workers := flag.Int("workers", 0, "parallel conversion workers (0 = number of CPUs)")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <input.yaml> <output.geojson>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if err := run(flag.Arg(0), flag.Arg(1), *fix, *detail, *noValidate, *check, *workers, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(input, output string, fix bool, detail int, noValidate bool, check string, workers int, logger *logrus.Logger) error {
	mode, err := yaixm.ParseCheckMode(check)
	if err != nil {
		return err
	}

	data, err := readInput(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	doc, err := yaixm.Decode(data)
	if err != nil {
		return err
	}

	if mode != yaixm.CheckOff {
		violations := yaixm.RequiredFieldsChecker{}.Check(doc)
		for _, violation := range violations {
			logger.WithField("finding", violation.String()).Warn("schema conformance")
		}
		if mode == yaixm.CheckStrict && len(violations) > 0 {
			return fmt.Errorf("document failed conformance with %d findings", len(violations))
		}
	}

	opts := yaixm.DefaultConvertOptions()
	opts.FixGeometries = fix
	opts.ValidateGeometries = !noValidate
	opts.GeometryDetail = detail
	opts.Logger = logger

	popts := yaixm.DefaultParallelOptions()
	popts.Workers = workers

	features, err := yaixm.ConvertParallel(doc, opts, popts)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(yaixm.FeatureCollection(features))
	if err != nil {
		return err
	}

	if err := writeOutput(output, encoded); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	logger.WithFields(logrus.Fields{
		"airspace": len(doc.Airspace),
		"features": len(features),
	}).Info("conversion complete")
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
