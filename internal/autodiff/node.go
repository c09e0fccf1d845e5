package autodiff

// Node is a handle to one scalar value recorded on a Tape.
//
// Nodes are small values: copy them freely. A Node does not own anything;
// the Tape owns the underlying record, and the handle is valid only until the
// next Begin on that tape. Accessors panic on stale handles.
type Node struct {
	tape *Tape
	gen  uint64
	id   int32
}

func (n Node) rec() *record {
	n.tape.check(n)
	return &n.tape.nodes[n.id]
}

// Value returns the node's computed value.
func (n Node) Value() float64 {
	return n.rec().value
}

// Derivative returns ∂out/∂n accumulated by the last Backward(out).
// It is 0 for nodes the pass did not reach.
func (n Node) Derivative() float64 {
	return n.rec().derivative
}

// HasDerivative reports whether the last backward pass reached n.
func (n Node) HasDerivative() bool {
	return n.rec().reached
}

// ID returns the node's position on its tape.
func (n Node) ID() int {
	return int(n.id)
}

// IsConstant reports whether n is a leaf created by Const.
func (n Node) IsConstant() bool {
	return n.rec().arity == 0
}

// Parents returns the direct inputs of n, in argument order.
func (n Node) Parents() []Node {
	r := n.rec()
	parents := make([]Node, r.arity)
	for i := range parents {
		parents[i] = Node{tape: n.tape, gen: n.gen, id: r.parents[i]}
	}
	return parents
}

// LocalDerivatives returns ∂n/∂parent for each parent, in the same order as
// Parents.
func (n Node) LocalDerivatives() []float64 {
	r := n.rec()
	local := make([]float64, r.arity)
	copy(local, r.local[:r.arity])
	return local
}
