package autodiff

// Const records a leaf node with the given value. Leaves have no parents and
// no local derivatives; inputs to a function being differentiated are
// recorded this way.
func (t *Tape) Const(c float64) Node {
	return t.push(record{value: c})
}

// Add records a + b.
//
// Local derivatives: d(a+b)/da = 1, d(a+b)/db = 1.
func (t *Tape) Add(a, b Node) Node {
	t.check(a)
	t.check(b)
	return t.binary(a.Value()+b.Value(), a, 1, b, 1)
}

// Sub records a - b.
//
// Local derivatives: d(a-b)/da = 1, d(a-b)/db = -1.
func (t *Tape) Sub(a, b Node) Node {
	t.check(a)
	t.check(b)
	return t.binary(a.Value()-b.Value(), a, 1, b, -1)
}

// Mul records a * b.
//
// Local derivatives: d(a*b)/da = b, d(a*b)/db = a.
func (t *Tape) Mul(a, b Node) Node {
	t.check(a)
	t.check(b)
	av, bv := a.Value(), b.Value()
	return t.binary(av*bv, a, bv, b, av)
}

// Div records a / b. It fails with ErrDivisionByZero when b is exactly zero,
// before anything is recorded.
//
// Local derivatives: d(a/b)/da = 1/b, d(a/b)/db = -a/b².
func (t *Tape) Div(a, b Node) (Node, error) {
	t.check(a)
	t.check(b)
	av, bv := a.Value(), b.Value()
	if bv == 0 {
		return Node{}, &OpError{Op: "div", Operand: bv, Err: ErrDivisionByZero}
	}
	return t.binary(av/bv, a, 1/bv, b, -av/(bv*bv)), nil
}

// Neg records -a.
func (t *Tape) Neg(a Node) Node {
	t.check(a)
	return t.unary(-a.Value(), a, -1)
}

// Sum records the left fold of Add over nodes. An empty sum is Const(0).
func (t *Tape) Sum(nodes ...Node) Node {
	if len(nodes) == 0 {
		return t.Const(0)
	}
	acc := nodes[0]
	t.check(acc)
	for _, n := range nodes[1:] {
		acc = t.Add(acc, n)
	}
	return acc
}
