// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Operations are recorded on a Tape as they are evaluated. A single backward
// pass from an output node then yields the exact partial derivative of that
// output with respect to every node it depends on, including nodes shared by
// several subexpressions.
//
// Example:
//
//	import "github.com/born-ml/adjoint/autodiff"
//
//	func main() {
//	    tape := autodiff.Begin()
//	    x := tape.Const(3)
//	    y := tape.Add(tape.Mul(x, x), x) // y = x² + x
//
//	    tape.Backward(y)
//	    fmt.Println(y.Value())      // 12
//	    fmt.Println(x.Derivative()) // 7
//	}
//
// Div, Exp, Log and Pow validate their operands and return an error wrapping
// ErrDivisionByZero or ErrNumericDomain instead of recording a node.
package autodiff

import (
	"github.com/born-ml/adjoint/internal/autodiff"
)

// Tape records the nodes of one differentiation session.
type Tape = autodiff.Tape

// Node is a handle to a scalar value on a Tape.
type Node = autodiff.Node

// OpError describes a failed node construction.
type OpError = autodiff.OpError

var (
	// ErrDivisionByZero is returned by Div for a zero divisor.
	ErrDivisionByZero = autodiff.ErrDivisionByZero

	// ErrNumericDomain is returned by Exp, Log and Pow for operands with no
	// representable result.
	ErrNumericDomain = autodiff.ErrNumericDomain
)

// Begin starts a new differentiation session on a fresh tape.
func Begin() *Tape {
	return autodiff.Begin()
}

// NewTape creates an empty tape. Call Begin on it to start each session.
func NewTape() *Tape {
	return autodiff.NewTape()
}
