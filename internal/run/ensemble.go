package run

import (
	"context"
	"sync"

	"github.com/tmarkov/physviz/internal/config"
	"github.com/tmarkov/physviz/internal/frame"
	"github.com/tmarkov/physviz/internal/metrics"
)

// Ensemble repeats the same run several times with fresh drivers. The
// jittered simulations are stochastic, so repeated runs give a spread
// rather than a single sample.
type Ensemble struct {
	build   func() (frame.Driver, error)
	numRuns int
}

func NewEnsemble(build func() (frame.Driver, error), numRuns int) *Ensemble {
	return &Ensemble{build: build, numRuns: numRuns}
}

func (e *Ensemble) Run(ctx context.Context, cfg *config.Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			driver, err := e.build()
			if err != nil {
				errs[idx] = err
				return
			}

			r := New(driver)
			for _, m := range metrics.Standard() {
				r.AddMetric(m)
			}
			results[idx], errs[idx] = r.Run(ctx, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// MeanMetrics averages each metric across the ensemble.
func MeanMetrics(results []*Result) map[string]float64 {
	out := make(map[string]float64)
	if len(results) == 0 {
		return out
	}
	for _, res := range results {
		for name, val := range res.Metrics {
			out[name] += val
		}
	}
	for name := range out {
		out[name] /= float64(len(results))
	}
	return out
}
