package optim

import (
	"fmt"
	"math"

	"github.com/born-ml/adjoint/internal/vec"
)

// Run outcomes, used as the "outcome" metric label and in logs.
const (
	outcomeConverged = "converged"
	outcomeMaxIter   = "max_iter"
	outcomeStalled   = "stalled"
	outcomeError     = "error"
)

// GradientDescent minimizes an Objective by steepest descent with a
// backtracking line search.
//
// Each outer iteration:
//
//	(y, ∇f) = f(x); d = -∇f; n = ‖d‖
//	stop if step·n <= Tolerance·|y| or the iteration cap is reached
//	repeat: x' = x + (step/n)·d
//	        accept if y - f(x') > SufficientDecrease·step·n, or x' == x
//	        otherwise step *= Shrink
//	step *= Grow; x = x'
//
// Dividing d by n makes step a length in parameter space rather than a
// multiplier on the gradient.
//
// Example:
//
//	gd := optim.NewGradientDescent(optim.Config{MaxIter: 500})
//	res, err := gd.Minimize(f, []float64{1, 1})
type GradientDescent struct {
	config Config
}

// NewGradientDescent creates a minimizer. Zero-valued config fields take
// their defaults.
func NewGradientDescent(config Config) *GradientDescent {
	return &GradientDescent{config: config.withDefaults()}
}

// Config returns the effective configuration.
func (gd *GradientDescent) Config() Config {
	return gd.config
}

// Minimize runs from guess until the tolerance test passes or MaxIter outer
// iterations have run. Non-convergence is not an error. Errors from f, and a
// gradient whose length differs from x, abort the run.
func (gd *GradientDescent) Minimize(f Objective, guess []float64) (Result, error) {
	cfg := gd.config
	log := cfg.Logger

	x := make([]float64, len(guess))
	copy(x, guess)
	step := cfg.InitialStep

	var res Result
	for {
		y, dy, err := f(x)
		res.Evaluations++
		if err != nil {
			return gd.finish(res, outcomeError, fmt.Errorf("optim: iteration %d: %w", res.Iterations+1, err))
		}
		if len(dy) != len(x) {
			return gd.finish(res, outcomeError, fmt.Errorf("optim: iteration %d: gradient: %w: %d vs %d",
				res.Iterations+1, vec.ErrLengthMismatch, len(dy), len(x)))
		}

		direction := vec.Scale(dy, -1)
		norm := vec.Norm(direction)

		res.Iterations++
		res.X, res.Value = x, y

		log.Debug("gradient descent iteration",
			"iter", res.Iterations, "value", y, "grad_norm", norm, "step", step)

		if step*norm <= cfg.Tolerance*math.Abs(y) {
			res.Converged = true
			return gd.finish(res, outcomeConverged, nil)
		}
		if res.Iterations >= cfg.MaxIter {
			return gd.finish(res, outcomeMaxIter, nil)
		}
		if math.IsNaN(norm) || math.IsInf(norm, 0) {
			// No finite trial point exists along a non-finite direction.
			return gd.finish(res, outcomeStalled, nil)
		}

		var next []float64
		for {
			next, err = vec.AddScaled(x, step/norm, direction)
			if err != nil {
				return gd.finish(res, outcomeError, err)
			}
			nextY, _, err := f(next)
			res.Evaluations++
			if err != nil {
				return gd.finish(res, outcomeError, fmt.Errorf("optim: iteration %d: line search: %w", res.Iterations, err))
			}
			if y-nextY > cfg.SufficientDecrease*step*norm || vec.Equal(next, x) {
				break
			}
			log.Debug("line search rejected trial", "iter", res.Iterations, "step", step, "trial_value", nextY)
			step *= cfg.Shrink
			res.Backtracks++
		}

		step *= cfg.Grow
		x = next
	}
}

// finish logs and records the end of a run.
func (gd *GradientDescent) finish(res Result, outcome string, err error) (Result, error) {
	return finishRun(gd.config, "gradient descent", res, outcome, err)
}

func finishRun(cfg Config, method string, res Result, outcome string, err error) (Result, error) {
	if err != nil {
		cfg.Logger.Warn(method+" aborted",
			"iter", res.Iterations, "evaluations", res.Evaluations, "error", err)
	} else {
		cfg.Logger.Debug(method+" finished",
			"outcome", outcome, "iter", res.Iterations, "evaluations", res.Evaluations,
			"backtracks", res.Backtracks, "value", res.Value)
	}
	cfg.Metrics.observe(res, outcome)
	return res, err
}

// Minimize finds a local minimizer of f starting from guess, running at most
// maxIter outer iterations with the default policy constants. It returns the
// final point.
func Minimize(f Objective, guess []float64, maxIter int) ([]float64, error) {
	if maxIter <= 0 {
		return nil, fmt.Errorf("optim: maxIter must be positive, got %d", maxIter)
	}
	res, err := NewGradientDescent(Config{MaxIter: maxIter}).Minimize(f, guess)
	if err != nil {
		return nil, err
	}
	return res.X, nil
}
