// Package optim implements gradient-descent optimization algorithms.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Parameters are plain float64 vectors with an accumulated gradient buffer.
// Gradient computation is the caller's responsibility: fill Parameter.Grad,
// call Step, then ZeroGrad before the next backward pass.
//
// Example usage:
//
//	w := optim.NewParameter("w", []float64{0})
//	b := optim.NewParameter("b", []float64{0})
//	optimizer, err := optim.NewSGD([]*optim.Parameter{w, b}, optim.SGDConfig{LR: 0.01})
//
//	for step := 0; step < steps; step++ {
//	    computeLossAndGradients(w, b, batch)
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim

import "fmt"

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update parameters in-place based on the gradients accumulated
// in each Parameter's Grad buffer.
type Optimizer interface {
	// Step applies one gradient update to all parameters.
	//
	// Returns an error if a parameter's gradient buffer does not match
	// its data in length.
	Step() error

	// ZeroGrad clears all parameter gradients.
	//
	// This should be called before each backward pass to prevent
	// gradient accumulation from previous iterations.
	ZeroGrad()

	// LR returns the current learning rate.
	//
	// Useful for monitoring and learning rate scheduling.
	LR() float64
}

// Parameter is a named vector of trainable values with an accumulated
// gradient buffer of the same length.
type Parameter struct {
	Name string
	Data []float64
	Grad []float64
}

// NewParameter creates a parameter around data with a zeroed gradient buffer.
//
// The data slice is used directly, not copied: optimizers update it in-place.
func NewParameter(name string, data []float64) *Parameter {
	return &Parameter{
		Name: name,
		Data: data,
		Grad: make([]float64, len(data)),
	}
}

// ZeroGrad resets the gradient buffer to zero.
func (p *Parameter) ZeroGrad() {
	for i := range p.Grad {
		p.Grad[i] = 0
	}
}

// validateParams rejects nil or empty parameter lists and length-mismatched
// gradient buffers at construction time.
func validateParams(params []*Parameter) error {
	if len(params) == 0 {
		return fmt.Errorf("optim: no parameters provided")
	}
	for i, p := range params {
		if p == nil {
			return fmt.Errorf("optim: parameter %d is nil", i)
		}
		if len(p.Grad) != len(p.Data) {
			return fmt.Errorf("optim: parameter %q: gradient length %d does not match data length %d",
				p.Name, len(p.Grad), len(p.Data))
		}
	}
	return nil
}
