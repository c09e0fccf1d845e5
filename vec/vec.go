// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vec provides pure helpers over dense float64 vectors.
package vec

import (
	"github.com/born-ml/adjoint/internal/vec"
)

// ErrLengthMismatch is returned for binary operations on vectors of
// different lengths.
var ErrLengthMismatch = vec.ErrLengthMismatch

// Scale returns k*v.
func Scale(v []float64, k float64) []float64 {
	return vec.Scale(v, k)
}

// Add returns v1+v2.
func Add(v1, v2 []float64) ([]float64, error) {
	return vec.Add(v1, v2)
}

// AddScaled returns x + alpha*d.
func AddScaled(x []float64, alpha float64, d []float64) ([]float64, error) {
	return vec.AddScaled(x, alpha, d)
}

// Norm returns the Euclidean norm of v.
func Norm(v []float64) float64 {
	return vec.Norm(v)
}

// Equal reports exact element-wise equality. Vectors of different lengths
// are not equal.
func Equal(v1, v2 []float64) bool {
	return vec.Equal(v1, v2)
}
