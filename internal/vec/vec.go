// Package vec provides the small set of dense vector helpers the minimizer
// needs: scaling, addition, Euclidean norm and exact equality.
//
// All functions are pure. Inputs are never modified; results are freshly
// allocated. There is no broadcasting: binary operations require operands of
// identical length.
package vec

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrLengthMismatch is returned when a binary operation receives vectors of
// different lengths.
var ErrLengthMismatch = errors.New("vec: length mismatch")

// Scale returns k*v as a new slice.
func Scale(v []float64, k float64) []float64 {
	out := clone(v)
	floats.Scale(k, out)
	return out
}

// Add returns v1+v2 element-wise.
func Add(v1, v2 []float64) ([]float64, error) {
	if len(v1) != len(v2) {
		return nil, fmt.Errorf("%w: add %d vs %d", ErrLengthMismatch, len(v1), len(v2))
	}
	out := clone(v1)
	floats.Add(out, v2)
	return out, nil
}

// AddScaled returns x + alpha*d element-wise.
func AddScaled(x []float64, alpha float64, d []float64) ([]float64, error) {
	if len(x) != len(d) {
		return nil, fmt.Errorf("%w: add scaled %d vs %d", ErrLengthMismatch, len(x), len(d))
	}
	out := clone(x)
	floats.AddScaled(out, alpha, d)
	return out, nil
}

// Norm returns the Euclidean norm of v. The norm of an empty vector is 0.
func Norm(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Norm(v, 2)
}

// Equal reports whether v1 and v2 have the same length and identical
// elements. Comparison is exact; NaN is never equal to anything.
func Equal(v1, v2 []float64) bool {
	return floats.Equal(v1, v2)
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
