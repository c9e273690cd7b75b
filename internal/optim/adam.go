package optim

import (
	"fmt"
	"math"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam combines ideas from RMSprop and momentum:
//   - Maintains exponential moving averages of gradients (first moment)
//   - Maintains exponential moving averages of squared gradients (second moment)
//   - Applies bias correction to compensate for initialization at zero
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)   // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	params []*Parameter
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int // Timestep for bias correction
	m      map[*Parameter][]float64
	v      map[*Parameter][]float64
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR      float64    // Learning rate (default: 0.001)
	Betas   [2]float64 // Moment decay rates (default: 0.9, 0.999)
	Epsilon float64    // Numerical stability term (default: 1e-8)
}

// NewAdam creates a new Adam optimizer with bias correction.
//
// Zero config fields select the defaults above; a negative LR is rejected.
func NewAdam(params []*Parameter, config AdamConfig) (*Adam, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	if config.LR < 0 {
		return nil, fmt.Errorf("optim: learning rate must be positive, got %f", config.LR)
	}
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas == [2]float64{} {
		config.Betas = [2]float64{0.9, 0.999}
	}
	for _, beta := range config.Betas {
		if beta < 0 || beta >= 1 {
			return nil, fmt.Errorf("optim: betas must be in [0, 1), got %v", config.Betas)
		}
	}
	if config.Epsilon == 0 {
		config.Epsilon = 1e-8
	}

	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Epsilon,
		m:      make(map[*Parameter][]float64),
		v:      make(map[*Parameter][]float64),
	}, nil
}

// Step performs a single optimization step with bias-corrected moments.
func (a *Adam) Step() error {
	a.t++
	biasCorrection1 := 1 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1 - math.Pow(a.beta2, float64(a.t))

	for _, p := range a.params {
		if len(p.Grad) != len(p.Data) {
			return fmt.Errorf("optim: parameter %q: gradient length %d does not match data length %d",
				p.Name, len(p.Grad), len(p.Data))
		}

		m, ok := a.m[p]
		if !ok {
			m = make([]float64, len(p.Data))
			a.m[p] = m
		}
		v, ok := a.v[p]
		if !ok {
			v = make([]float64, len(p.Data))
			a.v[p] = v
		}

		for i := range p.Data {
			g := p.Grad[i]
			m[i] = a.beta1*m[i] + (1-a.beta1)*g
			v[i] = a.beta2*v[i] + (1-a.beta2)*g*g

			mHat := m[i] / biasCorrection1
			vHat := v[i] / biasCorrection2

			p.Data[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
		}
	}
	return nil
}

// ZeroGrad clears gradients for all parameters.
func (a *Adam) ZeroGrad() {
	for _, p := range a.params {
		p.ZeroGrad()
	}
}

// LR returns the current learning rate.
func (a *Adam) LR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}
