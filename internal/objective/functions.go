package objective

import (
	"github.com/born-ml/adjoint/internal/autodiff"
)

func init() {
	register(Objective{
		Name:        "sphere",
		Description: "sum of squares, Σ xᵢ²",
		Start:       []float64{3, -2},
		Minimizer:   []float64{0, 0},
		Build:       sphere,
	})
	register(Objective{
		Name:        "rosenbrock",
		Description: "Σ 100(xᵢ₊₁ - xᵢ²)² + (1 - xᵢ)²",
		Dim:         -2,
		Start:       []float64{-1.2, 1},
		Minimizer:   []float64{1, 1},
		Build:       rosenbrock,
	})
	register(Objective{
		Name:        "booth",
		Description: "(x + 2y - 7)² + (2x + y - 5)²",
		Dim:         2,
		Start:       []float64{0, 0},
		Minimizer:   []float64{1, 3},
		Build:       booth,
	})
	register(Objective{
		Name:        "softplus",
		Description: "Σ log(1 + exp(xᵢ)) - xᵢ/2",
		Start:       []float64{2, -3},
		Minimizer:   []float64{0, 0},
		Build:       softplus,
	})
	register(Objective{
		Name:        "hinge",
		Description: "Σ max(1 - xᵢ, 0)² + 0.1·xᵢ²",
		Start:       []float64{-2, 4},
		Minimizer:   []float64{1 / 1.1, 1 / 1.1},
		Build:       hinge,
	})
	register(Objective{
		Name:        "smoothabs",
		Description: "mean of (xᵢ² + 1)^1.5",
		Start:       []float64{1.5, -0.5, 2},
		Minimizer:   []float64{0, 0, 0},
		Build:       smoothAbs,
	})
}

func square(t *autodiff.Tape, x autodiff.Node) autodiff.Node {
	return t.Mul(x, x)
}

func sphere(t *autodiff.Tape, x []autodiff.Node) (autodiff.Node, error) {
	terms := make([]autodiff.Node, len(x))
	for i, xi := range x {
		terms[i] = square(t, xi)
	}
	return t.Sum(terms...), nil
}

func rosenbrock(t *autodiff.Tape, x []autodiff.Node) (autodiff.Node, error) {
	hundred, one := t.Const(100), t.Const(1)
	terms := make([]autodiff.Node, 0, len(x)-1)
	for i := 0; i+1 < len(x); i++ {
		valley := square(t, t.Sub(x[i+1], square(t, x[i])))
		offset := square(t, t.Sub(one, x[i]))
		terms = append(terms, t.Add(t.Mul(hundred, valley), offset))
	}
	return t.Sum(terms...), nil
}

func booth(t *autodiff.Tape, x []autodiff.Node) (autodiff.Node, error) {
	two := t.Const(2)
	a := t.Sub(t.Add(x[0], t.Mul(two, x[1])), t.Const(7))
	b := t.Sub(t.Add(t.Mul(two, x[0]), x[1]), t.Const(5))
	return t.Add(square(t, a), square(t, b)), nil
}

func softplus(t *autodiff.Tape, x []autodiff.Node) (autodiff.Node, error) {
	one, half := t.Const(1), t.Const(0.5)
	terms := make([]autodiff.Node, len(x))
	for i, xi := range x {
		e, err := t.Exp(xi)
		if err != nil {
			return autodiff.Node{}, err
		}
		sp, err := t.Log(t.Add(one, e))
		if err != nil {
			return autodiff.Node{}, err
		}
		terms[i] = t.Sub(sp, t.Mul(half, xi))
	}
	return t.Sum(terms...), nil
}

func hinge(t *autodiff.Tape, x []autodiff.Node) (autodiff.Node, error) {
	zero, one, tenth := t.Const(0), t.Const(1), t.Const(0.1)
	terms := make([]autodiff.Node, len(x))
	for i, xi := range x {
		h := t.Max(t.Sub(one, xi), zero)
		terms[i] = t.Add(square(t, h), t.Mul(tenth, square(t, xi)))
	}
	return t.Sum(terms...), nil
}

func smoothAbs(t *autodiff.Tape, x []autodiff.Node) (autodiff.Node, error) {
	one, exponent := t.Const(1), t.Const(1.5)
	terms := make([]autodiff.Node, len(x))
	for i, xi := range x {
		p, err := t.Pow(t.Add(square(t, xi), one), exponent)
		if err != nil {
			return autodiff.Node{}, err
		}
		terms[i] = p
	}
	return t.Div(t.Sum(terms...), t.Const(float64(len(x))))
}
