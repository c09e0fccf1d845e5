// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/born-ml/adjoint/internal/optim"
	"github.com/born-ml/adjoint/internal/parallel"
)

// Objective evaluates a scalar function and its gradient at a point.
type Objective = optim.Objective

// GraphFunc builds an objective's output node on a tape.
type GraphFunc = optim.GraphFunc

// Config holds GradientDescent settings; zero fields take defaults.
type Config = optim.Config

// Result reports how a minimization ended.
type Result = optim.Result

// Metrics instruments minimizer runs.
type Metrics = optim.Metrics

// GradientDescent is steepest descent with a backtracking line search.
type GradientDescent = optim.GradientDescent

// Runner minimizes an Objective from a starting point.
type Runner = optim.Runner

// Stepper is a fixed-schedule update rule.
type Stepper = optim.Stepper

// SGD is fixed learning-rate descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds SGD settings.
type SGDConfig = optim.SGDConfig

// Adam is the Adam update rule.
type Adam = optim.Adam

// AdamConfig holds Adam settings.
type AdamConfig = optim.AdamConfig

// ParallelConfig bounds concurrency for GradientDescent.MultiStart.
type ParallelConfig = parallel.Config

// Default policy constants.
const (
	DefaultMaxIter            = optim.DefaultMaxIter
	DefaultTolerance          = optim.DefaultTolerance
	DefaultSufficientDecrease = optim.DefaultSufficientDecrease
	DefaultGrow               = optim.DefaultGrow
	DefaultShrink             = optim.DefaultShrink
	DefaultInitialStep        = optim.DefaultInitialStep
)

// Minimize finds a local minimizer of f from guess in at most maxIter outer
// iterations and returns the final point.
//
// Example:
//
//	f := func(x []float64) (float64, []float64, error) {
//	    return x[0] * x[0], []float64{2 * x[0]}, nil
//	}
//	x, err := optim.Minimize(f, []float64{10}, 1000)
func Minimize(f Objective, guess []float64, maxIter int) ([]float64, error) {
	return optim.Minimize(f, guess, maxIter)
}

// NewGradientDescent creates a configured minimizer.
func NewGradientDescent(config Config) *GradientDescent {
	return optim.NewGradientDescent(config)
}

// GraphObjective turns a graph builder into an Objective. Each call runs one
// full autodiff session.
func GraphObjective(build GraphFunc) Objective {
	return optim.GraphObjective(build)
}

// NewMetrics creates minimizer metrics registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return optim.NewMetrics(reg)
}

// DefaultParallelConfig uses one worker per CPU.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// NewSGD creates an SGD stepper.
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// NewAdam creates an Adam stepper.
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}

// Descend runs a Stepper against f from guess for at most cfg.MaxIter
// evaluations.
func Descend(f Objective, s Stepper, guess []float64, cfg Config) (Result, error) {
	return optim.Descend(f, s, guess, cfg)
}

// MultiStart calls run once per start, possibly concurrently, and returns
// all results plus the index of the best.
func MultiStart(run Runner, newObjective func() Objective, starts [][]float64, pc ParallelConfig) ([]Result, int, error) {
	return optim.MultiStart(run, newObjective, starts, pc)
}
