package trip

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Result pairs one batch request with its outcome. Exactly one of Report
// and Err is set.
type Result struct {
	// Index is the request's position in the input file, preserved so
	// output order matches input order.
	Index int

	Request Request
	Report  *Report
	Err     error
}

// batchFile is the on-disk shape of a batch input file.
type batchFile struct {
	Trips []Request `yaml:"trips"`
}

// LoadRequests reads a YAML batch file of the shape:
//
//	trips:
//	  - origin: "Toronto, ON"
//	    destination: "Ottawa, ON"
//	    mode: bus
//	  - distance_km: 120
//	    mode: truck
func LoadRequests(path string) ([]Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var f batchFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse batch file %s: %w", path, err)
	}
	if len(f.Trips) == 0 {
		return nil, fmt.Errorf("batch file %s contains no trips", path)
	}
	return f.Trips, nil
}

// CalculateAll computes a report for every request with bounded
// concurrency. A maxConcurrency of 0 or less defaults to runtime.NumCPU().
//
// Individual failures (a route not found, an unknown mode) are recorded on
// their Result rather than failing the batch; only context cancellation
// aborts the whole run. Results are returned in input order.
func (c *Calculator) CalculateAll(ctx context.Context, reqs []Request, maxConcurrency int) ([]Result, error) {
	if maxConcurrency <= 0 {
		maxConcurrency = runtime.NumCPU()
	}

	results := make([]Result, len(reqs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	for i, req := range reqs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			report, err := c.Calculate(gCtx, req)
			// Each goroutine writes a distinct index, so no lock is needed.
			results[i] = Result{Index: i, Request: req, Report: report, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
