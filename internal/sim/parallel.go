package sim

import (
	"context"
	"sync"

	"github.com/san-kum/bouncesim/internal/integrators"
	"github.com/san-kum/bouncesim/internal/physics"
)

// Compare runs the same drop once per integrator, concurrently. Results keep
// the order of names; the first error aborts the comparison.
func Compare(ctx context.Context, gravity float64, names []string, cfg Config) ([]*Result, error) {
	sims := make([]*Simulator, len(names))
	for i, name := range names {
		integ, err := integrators.Get(name)
		if err != nil {
			return nil, err
		}
		sims[i] = New(physics.NewBall(gravity), integ, name)
	}

	results := make([]*Result, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i := range sims {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = sims[idx].Run(ctx, cfg)
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
