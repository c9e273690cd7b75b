package optim

import "fmt"

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum helps accelerate SGD in relevant directions and dampens oscillations.
//
// Example:
//
//	optimizer, err := optim.NewSGD(params, optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params     []*Parameter
	lr         float64
	momentum   float64
	velocities map[*Parameter][]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameters.
//
// A zero LR selects the default of 0.01; a negative LR is rejected.
func NewSGD(params []*Parameter, config SGDConfig) (*SGD, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	if config.LR < 0 {
		return nil, fmt.Errorf("optim: learning rate must be positive, got %f", config.LR)
	}
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Momentum < 0 || config.Momentum >= 1 {
		return nil, fmt.Errorf("optim: momentum must be in [0, 1), got %f", config.Momentum)
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*Parameter][]float64),
	}, nil
}

// Step performs a single optimization step.
//
// Applies the gradient descent update to all parameters:
//   - Without momentum: param -= lr * grad
//   - With momentum: velocity = momentum * velocity + grad, param -= lr * velocity
func (s *SGD) Step() error {
	for _, p := range s.params {
		if len(p.Grad) != len(p.Data) {
			return fmt.Errorf("optim: parameter %q: gradient length %d does not match data length %d",
				p.Name, len(p.Grad), len(p.Data))
		}

		if s.momentum == 0 {
			for i := range p.Data {
				p.Data[i] -= s.lr * p.Grad[i]
			}
			continue
		}

		velocity, ok := s.velocities[p]
		if !ok {
			velocity = make([]float64, len(p.Data))
			s.velocities[p] = velocity
		}
		for i := range p.Data {
			velocity[i] = s.momentum*velocity[i] + p.Grad[i]
			p.Data[i] -= s.lr * velocity[i]
		}
	}
	return nil
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
