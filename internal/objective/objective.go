// Package objective provides named benchmark functions expressed as autodiff
// graphs, for exercising the minimizer from the command line and in tests.
package objective

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/born-ml/adjoint/internal/optim"
)

// ErrUnknown is returned by Lookup for unregistered names.
var ErrUnknown = errors.New("objective: unknown objective")

// ErrDimension is returned when a point has the wrong number of coordinates.
var ErrDimension = errors.New("objective: wrong dimension")

// Objective is a named scalar function with a default starting point.
type Objective struct {
	Name        string
	Description string
	Dim         int       // Required dimension; 0 accepts any, negative means "at least -Dim"
	Start       []float64 // Default starting point
	Minimizer   []float64 // Known minimizer for Start's dimension, if any
	Build       optim.GraphFunc
}

// Check validates the dimension of x.
func (o Objective) Check(x []float64) error {
	switch {
	case o.Dim > 0 && len(x) != o.Dim:
		return fmt.Errorf("%w: %s needs %d coordinates, got %d", ErrDimension, o.Name, o.Dim, len(x))
	case o.Dim < 0 && len(x) < -o.Dim:
		return fmt.Errorf("%w: %s needs at least %d coordinates, got %d", ErrDimension, o.Name, -o.Dim, len(x))
	case len(x) == 0:
		return fmt.Errorf("%w: %s needs at least one coordinate", ErrDimension, o.Name)
	}
	return nil
}

// Func returns the objective as an optim.Objective.
func (o Objective) Func() optim.Objective {
	return optim.GraphObjective(o.Build)
}

// StartPoint returns a copy of the default starting point.
func (o Objective) StartPoint() []float64 {
	return slices.Clone(o.Start)
}

var registry = map[string]Objective{}

func register(o Objective) {
	if _, dup := registry[o.Name]; dup {
		panic("objective: duplicate registration " + o.Name)
	}
	registry[o.Name] = o
}

// Lookup returns the objective registered under name.
func Lookup(name string) (Objective, error) {
	o, ok := registry[name]
	if !ok {
		return Objective{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return o, nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
