// Package optim implements gradient-based minimization of scalar objectives.
//
// This package provides:
//   - Objective: a function returning value and gradient at a point
//   - GradientDescent: steepest descent with backtracking line search
//   - GraphObjective: adapts an autodiff graph builder into an Objective
//   - SGD, Adam: fixed-schedule Steppers driven by Descend
//   - MultiStart: runs from several starting points via internal/parallel
//   - Metrics: Prometheus instrumentation for minimizer runs
//
// Example usage:
//
//	f := optim.GraphObjective(func(tape *autodiff.Tape, x []autodiff.Node) (autodiff.Node, error) {
//	    return tape.Mul(x[0], x[0]), nil
//	})
//
//	x, err := optim.Minimize(f, []float64{10}, 1000)
package optim

import (
	"log/slog"
)

// Objective evaluates a scalar function and its gradient at x.
//
// The gradient must have the same length as x. Errors are fatal to the
// minimization: they are returned to the caller, never retried.
type Objective func(x []float64) (value float64, grad []float64, err error)

// Default policy constants.
const (
	DefaultMaxIter            = 1000
	DefaultTolerance          = 1e-15
	DefaultSufficientDecrease = 0.1
	DefaultGrow               = 1.1
	DefaultShrink             = 0.5
	DefaultInitialStep        = 1.0
)

// Config holds configuration for GradientDescent. Zero fields take the
// defaults above.
type Config struct {
	MaxIter            int     // Outer iteration cap (default: 1000)
	Tolerance          float64 // Stop when step·‖∇f‖ <= Tolerance·|f| (default: 1e-15)
	SufficientDecrease float64 // Armijo fraction (default: 0.1)
	Grow               float64 // Step growth after an accepted step (default: 1.1)
	Shrink             float64 // Step shrink on a rejected trial (default: 0.5)
	InitialStep        float64 // Initial step length in parameter space (default: 1)

	Logger  *slog.Logger // nil uses slog.Default()
	Metrics *Metrics     // nil disables instrumentation
}

// withDefaults returns c with zero fields replaced by defaults.
func (c Config) withDefaults() Config {
	if c.MaxIter <= 0 {
		c.MaxIter = DefaultMaxIter
	}
	if c.Tolerance == 0 {
		c.Tolerance = DefaultTolerance
	}
	if c.SufficientDecrease == 0 {
		c.SufficientDecrease = DefaultSufficientDecrease
	}
	if c.Grow == 0 {
		c.Grow = DefaultGrow
	}
	if c.Shrink == 0 {
		c.Shrink = DefaultShrink
	}
	if c.InitialStep == 0 {
		c.InitialStep = DefaultInitialStep
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// Result reports how a minimization ended.
type Result struct {
	X           []float64 // Final point
	Value       float64   // Objective value at X
	Iterations  int       // Outer iterations performed
	Evaluations int       // Objective calls, including line-search trials
	Backtracks  int       // Rejected line-search trials
	Converged   bool      // Stopped on the tolerance test rather than the cap
}
