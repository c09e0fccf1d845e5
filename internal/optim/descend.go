package optim

import (
	"fmt"
	"math"

	"github.com/born-ml/adjoint/internal/vec"
)

// Stepper is a fixed-schedule update rule such as SGD or Adam. Step moves x
// in place given the gradient of the objective at x.
type Stepper interface {
	Step(x, grad []float64) error
}

// Descend runs s against f from guess for at most cfg.MaxIter evaluations.
// Only MaxIter, Logger and Metrics are read from cfg; the line-search
// fields do not apply.
//
// The run converges only at an exact stationary point (zero gradient) and
// stalls when the gradient is not finite. Reaching MaxIter is not an error.
// Result.Backtracks is always zero.
func Descend(f Objective, s Stepper, guess []float64, cfg Config) (Result, error) {
	cfg = cfg.withDefaults()
	const method = "descent"

	x := make([]float64, len(guess))
	copy(x, guess)

	var res Result
	for {
		y, dy, err := f(x)
		res.Evaluations++
		if err != nil {
			return finishRun(cfg, method, res, outcomeError, fmt.Errorf("optim: iteration %d: %w", res.Iterations+1, err))
		}
		if len(dy) != len(x) {
			return finishRun(cfg, method, res, outcomeError, fmt.Errorf("optim: iteration %d: gradient: %w: %d vs %d",
				res.Iterations+1, vec.ErrLengthMismatch, len(dy), len(x)))
		}

		norm := vec.Norm(dy)
		res.Iterations++
		res.X, res.Value = append([]float64(nil), x...), y

		cfg.Logger.Debug("descent iteration", "iter", res.Iterations, "value", y, "grad_norm", norm)

		if norm == 0 {
			res.Converged = true
			return finishRun(cfg, method, res, outcomeConverged, nil)
		}
		if res.Iterations >= cfg.MaxIter {
			return finishRun(cfg, method, res, outcomeMaxIter, nil)
		}
		if math.IsNaN(norm) || math.IsInf(norm, 0) {
			return finishRun(cfg, method, res, outcomeStalled, nil)
		}

		if err := s.Step(x, dy); err != nil {
			return finishRun(cfg, method, res, outcomeError, fmt.Errorf("optim: iteration %d: %w", res.Iterations, err))
		}
	}
}
