package optim

import (
	"github.com/born-ml/adjoint/internal/autodiff"
)

// GraphFunc builds a scalar output node from input nodes recorded on tape.
type GraphFunc func(tape *autodiff.Tape, x []autodiff.Node) (autodiff.Node, error)

// GraphObjective turns a graph builder into an Objective.
//
// Each evaluation is one complete session: Begin, record x as constants,
// build, one backward pass, read back the input derivatives. The returned
// Objective owns a single Tape reused across calls, so it must not be called
// concurrently.
func GraphObjective(build GraphFunc) Objective {
	tape := autodiff.NewTape()
	return func(x []float64) (float64, []float64, error) {
		tape.Begin()
		in := make([]autodiff.Node, len(x))
		for i, v := range x {
			in[i] = tape.Const(v)
		}
		out, err := build(tape, in)
		if err != nil {
			return 0, nil, err
		}
		return out.Value(), tape.Gradient(out, in...), nil
	}
}
