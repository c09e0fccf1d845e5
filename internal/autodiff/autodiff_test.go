package autodiff_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/adjoint/internal/autodiff"
)

// TestConst tests leaf construction.
func TestConst(t *testing.T) {
	tape := autodiff.Begin()
	c := tape.Const(4.5)

	assert.Equal(t, 4.5, c.Value())
	assert.True(t, c.IsConstant())
	assert.Empty(t, c.Parents())
	assert.Empty(t, c.LocalDerivatives())
	assert.False(t, c.HasDerivative())
	assert.Equal(t, 0.0, c.Derivative())
}

// TestAdd tests d(a+b)/da = d(a+b)/db = 1.
func TestAdd(t *testing.T) {
	tape := autodiff.Begin()
	a, b := tape.Const(2), tape.Const(5)
	y := tape.Add(a, b)

	assert.Equal(t, 7.0, y.Value())
	assert.Equal(t, []float64{1, 1}, y.LocalDerivatives())

	tape.Backward(y)
	assert.Equal(t, 1.0, y.Derivative())
	assert.Equal(t, 1.0, a.Derivative())
	assert.Equal(t, 1.0, b.Derivative())
}

// TestSub tests d(a-b)/da = 1, d(a-b)/db = -1.
func TestSub(t *testing.T) {
	tape := autodiff.Begin()
	a, b := tape.Const(2), tape.Const(5)
	y := tape.Sub(a, b)

	assert.Equal(t, -3.0, y.Value())
	tape.Backward(y)
	assert.Equal(t, 1.0, a.Derivative())
	assert.Equal(t, -1.0, b.Derivative())
}

// TestMul tests the product rule.
func TestMul(t *testing.T) {
	tape := autodiff.Begin()
	a, b := tape.Const(3), tape.Const(-4)
	y := tape.Mul(a, b)

	assert.Equal(t, -12.0, y.Value())
	tape.Backward(y)
	assert.Equal(t, b.Value(), a.Derivative())
	assert.Equal(t, a.Value(), b.Derivative())
}

// TestDiv tests d(a/b)/da = 1/b, d(a/b)/db = -a/b².
func TestDiv(t *testing.T) {
	tape := autodiff.Begin()
	a, b := tape.Const(3), tape.Const(2)
	y, err := tape.Div(a, b)
	require.NoError(t, err)

	assert.Equal(t, 1.5, y.Value())
	tape.Backward(y)
	assert.Equal(t, 0.5, a.Derivative())
	assert.Equal(t, -0.75, b.Derivative())
}

// TestDiv_ByZero tests that division by zero fails before recording a node.
func TestDiv_ByZero(t *testing.T) {
	tape := autodiff.Begin()
	one, zero := tape.Const(1), tape.Const(0)
	before := tape.Len()

	_, err := tape.Div(one, zero)
	require.Error(t, err)
	assert.True(t, errors.Is(err, autodiff.ErrDivisionByZero))
	assert.Equal(t, before, tape.Len(), "failed op must not record a node")

	var opErr *autodiff.OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "div", opErr.Op)
	assert.Equal(t, 0.0, opErr.Operand)

	_, err = tape.Div(one, tape.Const(math.Copysign(0, -1)))
	assert.ErrorIs(t, err, autodiff.ErrDivisionByZero, "negative zero is zero")
}

// TestExp tests d(exp(a))/da = exp(a).
func TestExp(t *testing.T) {
	tape := autodiff.Begin()
	a := tape.Const(1.5)
	y, err := tape.Exp(a)
	require.NoError(t, err)

	assert.InDelta(t, math.Exp(1.5), y.Value(), 1e-12)
	tape.Backward(y)
	assert.Equal(t, y.Value(), a.Derivative())
}

// TestExp_Domain tests NaN and overflow rejection.
func TestExp_Domain(t *testing.T) {
	tape := autodiff.Begin()

	_, err := tape.Exp(tape.Const(math.NaN()))
	assert.ErrorIs(t, err, autodiff.ErrNumericDomain)

	_, err = tape.Exp(tape.Const(1000))
	assert.ErrorIs(t, err, autodiff.ErrNumericDomain)

	y, err := tape.Exp(tape.Const(-1000))
	require.NoError(t, err, "underflow to zero is representable")
	assert.Equal(t, 0.0, y.Value())
}

// TestLog tests d(ln a)/da = 1/a.
func TestLog(t *testing.T) {
	tape := autodiff.Begin()
	a := tape.Const(4)
	y, err := tape.Log(a)
	require.NoError(t, err)

	assert.InDelta(t, math.Log(4), y.Value(), 1e-15)
	tape.Backward(y)
	assert.Equal(t, 0.25, a.Derivative())
}

// TestLog_Domain tests that non-positive operands fail.
func TestLog_Domain(t *testing.T) {
	for _, v := range []float64{-1, 0, math.NaN()} {
		tape := autodiff.Begin()
		_, err := tape.Log(tape.Const(v))
		require.Error(t, err, "log(%v)", v)
		assert.ErrorIs(t, err, autodiff.ErrNumericDomain)

		var opErr *autodiff.OpError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "log", opErr.Op)
	}
}

// TestPow tests a^b through exp(b*log(a)).
func TestPow(t *testing.T) {
	tape := autodiff.Begin()
	a, b := tape.Const(2), tape.Const(3)
	y, err := tape.Pow(a, b)
	require.NoError(t, err)

	assert.InDelta(t, 8.0, y.Value(), 1e-12)
	tape.Backward(y)
	assert.InDelta(t, 12.0, a.Derivative(), 1e-12)       // b * a^(b-1)
	assert.InDelta(t, 8*math.Ln2, b.Derivative(), 1e-12) // a^b * ln a
}

// TestPow_ZeroBase tests the zero-base short-circuit.
func TestPow_ZeroBase(t *testing.T) {
	tape := autodiff.Begin()
	a, b := tape.Const(0), tape.Const(2)
	y, err := tape.Pow(a, b)
	require.NoError(t, err)

	assert.Equal(t, 0.0, y.Value())
	assert.True(t, y.IsConstant())
	assert.Empty(t, y.Parents())

	tape.Backward(y)
	assert.Equal(t, 0.0, a.Derivative())
	assert.Equal(t, 0.0, b.Derivative())

	z, err := tape.Pow(tape.Const(0), tape.Const(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, z.Value(), "0^0 follows the short-circuit")
}

// TestPow_NegativeBase tests that negative bases surface the log domain error.
func TestPow_NegativeBase(t *testing.T) {
	tape := autodiff.Begin()
	_, err := tape.Pow(tape.Const(-2), tape.Const(2))

	var opErr *autodiff.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "log", opErr.Op)
	assert.Equal(t, -2.0, opErr.Operand)
}

// TestMax tests subgradient selection and the tie-break.
func TestMax(t *testing.T) {
	tests := []struct {
		name  string
		a, b  float64
		want  float64
		local []float64
	}{
		{"first larger", 5, 2, 5, []float64{1, 0}},
		{"second larger", 2, 5, 5, []float64{0, 1}},
		{"tie favors first", 3, 3, 3, []float64{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tape := autodiff.Begin()
			y := tape.Max(tape.Const(tt.a), tape.Const(tt.b))
			assert.Equal(t, tt.want, y.Value())
			assert.Equal(t, tt.local, y.LocalDerivatives())
		})
	}
}

// TestNeg_Sum tests the convenience ops.
func TestNeg_Sum(t *testing.T) {
	tape := autodiff.Begin()
	a, b, c := tape.Const(1), tape.Const(2), tape.Const(3)

	n := tape.Neg(a)
	assert.Equal(t, -1.0, n.Value())

	s := tape.Sum(a, b, c, n)
	assert.Equal(t, 5.0, s.Value())

	tape.Backward(s)
	assert.Equal(t, 0.0, a.Derivative(), "a enters once directly and once negated")
	assert.Equal(t, 1.0, b.Derivative())
	assert.Equal(t, 1.0, c.Derivative())

	empty := tape.Sum()
	assert.Equal(t, 0.0, empty.Value())
	assert.True(t, empty.IsConstant())
}

// TestBackward_SharedSubexpression tests accumulation over multiple paths.
func TestBackward_SharedSubexpression(t *testing.T) {
	tape := autodiff.Begin()
	a := tape.Const(3)
	y := tape.Add(tape.Mul(a, a), a) // y = a² + a

	tape.Backward(y)
	assert.Equal(t, 12.0, y.Value())
	assert.Equal(t, 2*a.Value()+1, a.Derivative())
}

// TestBackward_Diamond tests a node reached through two intermediate nodes.
func TestBackward_Diamond(t *testing.T) {
	tape := autodiff.Begin()
	a := tape.Const(2)
	b := tape.Mul(a, tape.Const(3)) // b = 3a
	c := tape.Add(a, b)             // c = 4a
	y := tape.Mul(b, c)             // y = 12a²

	tape.Backward(y)
	assert.Equal(t, 48.0, y.Value())
	assert.Equal(t, 48.0, a.Derivative()) // 24a

	// dy/db sees c directly and again through c = a + b.
	assert.Equal(t, c.Value()+b.Value(), b.Derivative())
}

// TestBackward_RoundTrip tests log(exp(x)) = x with unit derivative.
func TestBackward_RoundTrip(t *testing.T) {
	for _, x := range []float64{-3, 0, 0.7, 12} {
		tape := autodiff.Begin()
		in := tape.Const(x)
		e, err := tape.Exp(in)
		require.NoError(t, err)
		y, err := tape.Log(e)
		require.NoError(t, err)

		tape.Backward(y)
		assert.InDelta(t, x, y.Value(), 1e-12)
		assert.InDelta(t, 1.0, in.Derivative(), 1e-12)
	}
}

// TestBackward_Reachability tests nodes outside the output's subgraph.
func TestBackward_Reachability(t *testing.T) {
	tape := autodiff.Begin()
	a := tape.Const(2)
	unused := tape.Const(9)
	y := tape.Mul(a, a)
	later := tape.Mul(y, tape.Const(10))

	tape.Backward(y)
	assert.Equal(t, 4.0, a.Derivative())
	assert.False(t, unused.HasDerivative())
	assert.Equal(t, 0.0, unused.Derivative())
	assert.False(t, later.HasDerivative(), "nodes created after the output are ignored")
}

// TestBackward_Repeat tests that a second pass does not double-accumulate.
func TestBackward_Repeat(t *testing.T) {
	tape := autodiff.Begin()
	a := tape.Const(3)
	y := tape.Mul(a, a)
	z := tape.Add(y, a)

	tape.Backward(z)
	first := a.Derivative()
	tape.Backward(z)
	assert.Equal(t, first, a.Derivative())

	tape.Backward(y)
	assert.Equal(t, 6.0, a.Derivative())
	assert.False(t, z.HasDerivative(), "derivatives from the earlier pass are cleared")
}

// TestGradient tests the Backward-and-collect helper.
func TestGradient(t *testing.T) {
	tape := autodiff.Begin()
	x, y := tape.Const(2), tape.Const(5)
	out := tape.Add(tape.Mul(x, y), x) // xy + x

	grad := tape.Gradient(out, x, y)
	assert.Equal(t, []float64{6, 2}, grad)
}

// TestParents tests graph introspection.
func TestParents(t *testing.T) {
	tape := autodiff.Begin()
	a, b := tape.Const(1), tape.Const(2)
	y := tape.Sub(a, b)

	parents := y.Parents()
	require.Len(t, parents, 2)
	assert.Equal(t, a.ID(), parents[0].ID())
	assert.Equal(t, b.ID(), parents[1].ID())
	assert.Greater(t, y.ID(), b.ID())
	assert.Equal(t, 3, tape.Len())
}

// TestTape_Begin tests session reset and stale-handle detection.
func TestTape_Begin(t *testing.T) {
	tape := autodiff.NewTape()
	old := tape.Const(1)
	tape.Add(old, old)
	assert.Equal(t, 2, tape.Len())

	tape.Begin()
	assert.Equal(t, 0, tape.Len())

	fresh := tape.Const(2)
	assert.Panics(t, func() { _ = old.Value() })
	assert.Panics(t, func() { tape.Add(old, fresh) })
	assert.NotPanics(t, func() { tape.Add(fresh, fresh) })
}

// TestTape_MixedTapes tests that handles cannot cross tapes.
func TestTape_MixedTapes(t *testing.T) {
	t1, t2 := autodiff.Begin(), autodiff.Begin()
	a := t1.Const(1)
	b := t2.Const(2)

	assert.Panics(t, func() { t1.Mul(a, b) })
	assert.Panics(t, func() { t2.Backward(a) })
	assert.Panics(t, func() { t1.Neg(autodiff.Node{}) })
}
