// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based minimization of scalar objectives.
//
// # Overview
//
// This package contains:
//   - Minimize: steepest descent with backtracking line search
//   - GradientDescent: the same minimizer with configurable policy constants
//   - GraphObjective: builds an Objective from an autodiff graph
//   - SGD, Adam and Descend: fixed learning-rate updates without line search
//   - MultiStart: independent runs from several starting points, possibly
//     in parallel
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/adjoint/autodiff"
//	    "github.com/born-ml/adjoint/optim"
//	)
//
//	func main() {
//	    // f(x, y) = (x - 1)² + (y + 2)²
//	    f := optim.GraphObjective(func(tape *autodiff.Tape, x []autodiff.Node) (autodiff.Node, error) {
//	        dx := tape.Sub(x[0], tape.Const(1))
//	        dy := tape.Add(x[1], tape.Const(2))
//	        return tape.Add(tape.Mul(dx, dx), tape.Mul(dy, dy)), nil
//	    })
//
//	    x, err := optim.Minimize(f, []float64{0, 0}, 1000)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(x) // ≈ [1 -2]
//	}
//
// # Line Search
//
// Each outer iteration moves along the negative gradient. The trial step
// length starts at the current step and halves until the objective drops by
// at least 0.1·step·‖∇f‖, or until the trial point no longer differs from the
// current one. The step then grows by 1.1 for the next iteration.
//
// # Termination
//
// The run stops when step·‖∇f‖ <= 1e-15·|f| or after maxIter outer
// iterations. Running out of iterations is not an error. Errors returned by
// the objective abort the run and are returned unchanged apart from wrapping.
//
// # Concurrency
//
// An Objective from GraphObjective owns one tape and must not be called
// concurrently. MultiStart therefore takes a constructor and builds one
// objective per start.
package optim
