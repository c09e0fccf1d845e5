package optim

import (
	"fmt"

	"github.com/born-ml/adjoint/internal/vec"
)

// SGD implements fixed learning-rate gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	x = x - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	x = x - lr * velocity
//
// Unlike GradientDescent there is no line search, so a learning rate that is
// too large diverges.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.01, Momentum: 0.9})
//	res, err := optim.Descend(f, sgd, guess, optim.Config{MaxIter: 500})
type SGD struct {
	lr       float64
	momentum float64
	velocity []float64
}

// SGDConfig holds configuration for SGD.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD stepper.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step applies one update to x in place.
func (s *SGD) Step(x, grad []float64) error {
	if len(grad) != len(x) {
		return fmt.Errorf("sgd: %w: %d vs %d", vec.ErrLengthMismatch, len(grad), len(x))
	}

	if s.momentum == 0 {
		for i, g := range grad {
			x[i] -= s.lr * g
		}
		return nil
	}

	if s.velocity == nil {
		s.velocity = make([]float64, len(x))
	}
	if len(s.velocity) != len(x) {
		return fmt.Errorf("sgd: velocity: %w: %d vs %d", vec.ErrLengthMismatch, len(s.velocity), len(x))
	}
	for i, g := range grad {
		s.velocity[i] = s.momentum*s.velocity[i] + g
		x[i] -= s.lr * s.velocity[i]
	}
	return nil
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// Reset clears the velocity so the stepper can start a new problem.
func (s *SGD) Reset() {
	s.velocity = nil
}
