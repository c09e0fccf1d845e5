package optim

import (
	"fmt"
	"math"

	"github.com/born-ml/adjoint/internal/vec"
)

// Adam implements the Adam (Adaptive Moment Estimation) update rule.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	x = x - lr * m_hat / (sqrt(v_hat) + eps)
//
// Each coordinate moves by roughly lr per step regardless of gradient scale.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
//
// Example:
//
//	adam := optim.NewAdam(optim.AdamConfig{LR: 0.1})
//	res, err := optim.Descend(f, adam, guess, optim.Config{MaxIter: 2000})
type Adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
	t     int       // Timestep for bias correction
	m     []float64 // First moment estimates
	v     []float64 // Second moment estimates
}

// AdamConfig holds configuration for Adam.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam stepper. Zero fields take their defaults.
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
	}
}

// Step applies one update to x in place.
func (a *Adam) Step(x, grad []float64) error {
	if len(grad) != len(x) {
		return fmt.Errorf("adam: %w: %d vs %d", vec.ErrLengthMismatch, len(grad), len(x))
	}
	if a.m == nil {
		a.m = make([]float64, len(x))
		a.v = make([]float64, len(x))
	}
	if len(a.m) != len(x) {
		return fmt.Errorf("adam: moments: %w: %d vs %d", vec.ErrLengthMismatch, len(a.m), len(x))
	}

	a.t++
	biasCorrection1 := 1 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1 - math.Pow(a.beta2, float64(a.t))

	for i, g := range grad {
		a.m[i] = a.beta1*a.m[i] + (1-a.beta1)*g
		a.v[i] = a.beta2*a.v[i] + (1-a.beta2)*g*g
		mHat := a.m[i] / biasCorrection1
		vHat := a.v[i] / biasCorrection2
		x[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
	}
	return nil
}

// LR returns the current learning rate.
func (a *Adam) LR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// Timestep returns the number of steps taken since the last Reset.
func (a *Adam) Timestep() int {
	return a.t
}

// Reset clears the moment estimates and timestep.
func (a *Adam) Reset() {
	a.t = 0
	a.m, a.v = nil, nil
}
