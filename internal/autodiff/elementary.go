package autodiff

import "math"

// Exp records e^a.
//
// Local derivative: d(exp(a))/da = exp(a), i.e. the node's own value.
//
// Fails with ErrNumericDomain if the result is NaN or overflows to +Inf; an
// infinite local derivative would poison every gradient downstream.
func (t *Tape) Exp(a Node) (Node, error) {
	t.check(a)
	av := a.Value()
	v := math.Exp(av)
	if math.IsNaN(v) || math.IsInf(v, 1) {
		return Node{}, &OpError{Op: "exp", Operand: av, Err: ErrNumericDomain}
	}
	return t.unary(v, a, v), nil
}

// Log records the natural logarithm of a.
//
// Local derivative: d(ln a)/da = 1/a.
//
// Fails with ErrNumericDomain for a <= 0 (including log(0), whose result
// -Inf has no finite derivative) and for NaN operands.
func (t *Tape) Log(a Node) (Node, error) {
	t.check(a)
	av := a.Value()
	v := math.Log(av)
	if av <= 0 || math.IsNaN(v) {
		return Node{}, &OpError{Op: "log", Operand: av, Err: ErrNumericDomain}
	}
	return t.unary(v, a, 1/av), nil
}

// Pow records a^b through the identity exp(b * log(a)).
//
// A zero base short-circuits to Const(0) with no parents, so nothing flows
// back to a or b; this includes 0^0. The identity only holds for a >= 0: a
// negative base, even with an integral exponent, fails with ErrNumericDomain
// from the inner Log.
func (t *Tape) Pow(a, b Node) (Node, error) {
	t.check(a)
	t.check(b)
	if a.Value() == 0 {
		return t.Const(0), nil
	}
	la, err := t.Log(a)
	if err != nil {
		return Node{}, err
	}
	return t.Exp(t.Mul(b, la))
}

// Max records max(a, b).
//
// Local derivatives: (1, 0) when a >= b, otherwise (0, 1). Ties go to the
// first argument.
func (t *Tape) Max(a, b Node) Node {
	t.check(a)
	t.check(b)
	av, bv := a.Value(), b.Value()
	if av >= bv {
		return t.binary(av, a, 1, b, 0)
	}
	return t.binary(bv, a, 0, b, 1)
}
