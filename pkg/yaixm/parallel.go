package yaixm

import (
	"runtime"
	"sync"
)

// ParallelOptions controls parallel conversion behavior.
type ParallelOptions struct {
	// Workers specifies the number of converter goroutines.
	// If 0, defaults to runtime.NumCPU().
	Workers int

	// Progress is an optional callback invoked after each airspace is
	// converted, with (converted, total) counts.
	Progress func(converted, total int)
}

// DefaultParallelOptions returns parallel options with sensible defaults.
func DefaultParallelOptions() ParallelOptions {
	return ParallelOptions{
		Workers: runtime.NumCPU(),
	}
}

// ConvertParallel converts a document using a pool of worker goroutines, one
// airspace definition per job.
//
// Conversion of each airspace is independent, so the work parallelizes
// cleanly; the output is identical to Converter.ConvertWithOptions including
// feature order, which always follows document order. The first defect (by
// document order) aborts the conversion, matching the serial behavior.
func ConvertParallel(doc *Document, opts ConvertOptions, popts ParallelOptions) ([]Feature, error) {
	if len(doc.Airspace) == 0 {
		return nil, nil
	}

	workers := popts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(doc.Airspace) {
		workers = len(doc.Airspace)
	}

	converter := NewConverter()
	service := doc.Service

	type result struct {
		index    int
		features []Feature
		err      error
	}

	jobs := make(chan int, len(doc.Airspace))
	results := make(chan result, len(doc.Airspace))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				single := &Document{
					Airspace: doc.Airspace[index : index+1],
					Service:  service,
				}
				features, err := converter.ConvertWithOptions(single, opts)
				results <- result{index: index, features: features, err: err}
			}
		}()
	}

	for i := range doc.Airspace {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	converted := make([][]Feature, len(doc.Airspace))
	errs := make([]error, len(doc.Airspace))
	done := 0
	for r := range results {
		done++
		if popts.Progress != nil {
			popts.Progress(done, len(doc.Airspace))
		}
		converted[r.index] = r.features
		errs[r.index] = r.err
	}

	// Report the first failure by document order so the error is the same
	// one serial conversion would have returned.
	var features []Feature
	for i := range doc.Airspace {
		if errs[i] != nil {
			return nil, errs[i]
		}
		features = append(features, converted[i]...)
	}
	return features, nil
}
