package optim

import (
	"fmt"
	"math"

	"github.com/born-ml/adjoint/internal/parallel"
)

// Runner minimizes f from guess. GradientDescent.Minimize is a Runner.
type Runner func(f Objective, guess []float64) (Result, error)

// MultiStart runs gd.Minimize from each of starts. See MultiStart.
func (gd *GradientDescent) MultiStart(newObjective func() Objective, starts [][]float64, pc parallel.Config) ([]Result, int, error) {
	return MultiStart(gd.Minimize, newObjective, starts, pc)
}

// MultiStart calls run once per start and returns one Result per start, in
// order, plus the index of the result with the lowest finite value (-1 if
// none is finite).
//
// newObjective is called once per start. Runs may execute concurrently, so
// each returned Objective must own its state; GraphObjective satisfies this
// because it builds a private tape. run itself must be safe for concurrent
// use, which rules out sharing one Stepper between calls.
func MultiStart(run Runner, newObjective func() Objective, starts [][]float64, pc parallel.Config) ([]Result, int, error) {
	results := make([]Result, len(starts))
	err := parallel.For(len(starts), func(i int) error {
		res, err := run(newObjective(), starts[i])
		if err != nil {
			return fmt.Errorf("start %d: %w", i, err)
		}
		results[i] = res
		return nil
	}, pc)
	if err != nil {
		return nil, -1, err
	}

	best := -1
	for i, r := range results {
		if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
			continue
		}
		if best < 0 || r.Value < results[best].Value {
			best = i
		}
	}
	return results, best, nil
}
