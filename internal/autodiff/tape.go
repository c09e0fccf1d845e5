package autodiff

import "fmt"

// record is the arena entry behind a Node.
type record struct {
	value      float64
	parents    [2]int32
	local      [2]float64 // ∂value/∂parents[i], fixed at construction
	arity      uint8
	derivative float64
	reached    bool // derivative is meaningful only once a backward pass touched it
}

// Tape records scalar nodes in creation order for one differentiation
// session and computes derivatives with a reverse sweep.
//
// Usage:
//
//	tape := NewTape()
//	for step := range steps {
//	    tape.Begin()
//	    // ... build graph ...
//	    tape.Backward(out)
//	}
//
// A Tape is not safe for concurrent use. Independent evaluations running in
// parallel must each own their Tape.
type Tape struct {
	nodes []record
	gen   uint64 // bumped by Begin; stale handles carry an older value
}

// NewTape creates an empty tape ready for a session.
func NewTape() *Tape {
	return &Tape{
		nodes: make([]record, 0, 64), // Pre-allocate for common case
		gen:   1,
	}
}

// Begin starts a new session, discarding every node of the previous one.
// Capacity is retained, so reusing a tape across many evaluations does not
// reallocate once it has grown.
func (t *Tape) Begin() {
	t.nodes = t.nodes[:0]
	t.gen++
}

// Len returns the number of nodes recorded in the current session.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// push appends a record and returns its handle.
func (t *Tape) push(r record) Node {
	t.nodes = append(t.nodes, r)
	return Node{tape: t, gen: t.gen, id: int32(len(t.nodes) - 1)}
}

// unary records a one-parent node.
func (t *Tape) unary(value float64, a Node, da float64) Node {
	return t.push(record{
		value:   value,
		parents: [2]int32{a.id},
		local:   [2]float64{da},
		arity:   1,
	})
}

// binary records a two-parent node.
func (t *Tape) binary(value float64, a Node, da float64, b Node, db float64) Node {
	return t.push(record{
		value:   value,
		parents: [2]int32{a.id, b.id},
		local:   [2]float64{da, db},
		arity:   2,
	})
}

// check panics unless n belongs to the current session of t.
func (t *Tape) check(n Node) {
	switch {
	case n.tape == nil:
		panic("autodiff: zero Node used")
	case n.tape != t:
		panic("autodiff: node from another tape")
	case n.gen != t.gen:
		panic(fmt.Sprintf("autodiff: node %d from another session (generation %d, current %d)", n.id, n.gen, t.gen))
	}
}
