package autodiff

// Backward computes ∂out/∂n for every node n recorded up to and including
// out, walking the tape in reverse creation order.
//
// Algorithm:
//  1. Clear derivatives left by any earlier pass in this session
//  2. Seed out with derivative 1
//  3. Walk records from out back to the first one
//  4. For each reached record, add local[i] * derivative into parents[i]
//
// Contributions are summed, so a node shared by several children (a diamond
// in the graph) receives the total over all paths. Nodes created after out
// are ignored and, like every node out does not depend on, report derivative
// 0.
func (t *Tape) Backward(out Node) {
	t.check(out)

	for i := range t.nodes {
		t.nodes[i].derivative = 0
		t.nodes[i].reached = false
	}

	nodes := t.nodes[:out.id+1]

	nodes[out.id].derivative = 1
	nodes[out.id].reached = true

	for i := len(nodes) - 1; i >= 0; i-- {
		r := &nodes[i]
		if !r.reached {
			continue
		}
		for p := range r.arity {
			parent := &nodes[r.parents[p]]
			parent.derivative += r.local[p] * r.derivative
			parent.reached = true
		}
	}
}
