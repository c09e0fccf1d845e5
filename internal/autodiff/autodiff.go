// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// A Tape is an append-only arena of scalar nodes. Every operation evaluates
// its result immediately, records the node's parents together with the local
// partial derivative of the result with respect to each parent, and returns a
// Node handle. Backward then walks the tape in reverse creation order and
// accumulates ∂output/∂node into every node reachable from the output.
//
// Architecture:
//   - Tape: owns all nodes of one differentiation session
//   - Node: copyable, non-owning handle (tape, generation, index)
//   - Local derivatives are fixed at construction, so Backward is a single
//     multiply-accumulate sweep with no per-op dispatch
//   - Creation order is a topological order; no sorting is ever needed
//
// Usage:
//
//	tape := autodiff.Begin()
//	x := tape.Const(3)
//	y := tape.Add(tape.Mul(x, x), x) // y = x² + x
//	tape.Backward(y)
//	fmt.Println(y.Value(), x.Derivative()) // 12 7
//
// Sessions are strictly sequential. Begin on an existing tape discards all
// nodes and invalidates their handles; using a handle from an earlier session
// panics.
package autodiff

// Begin starts a new differentiation session on a fresh tape.
func Begin() *Tape {
	return NewTape()
}

// Gradient runs a backward pass from out and returns the derivative of out
// with respect to each of inputs, in order. Inputs not reachable from out
// get 0.
func (t *Tape) Gradient(out Node, inputs ...Node) []float64 {
	t.Backward(out)
	grad := make([]float64, len(inputs))
	for i, in := range inputs {
		grad[i] = in.Derivative()
	}
	return grad
}
