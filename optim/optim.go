// Copyright 2026 The emotigrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/emotigrad-ml/emotigrad/internal/optim"
)

// Optimizer defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Parameter is a named vector of trainable values with a gradient buffer.
type Parameter = optim.Parameter

// NewParameter creates a parameter around data with a zeroed gradient buffer.
func NewParameter(name string, data []float64) *Parameter {
	return optim.NewParameter(name, data)
}

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer, err := optim.NewSGD(
//	    []*optim.Parameter{w, b},
//	    optim.SGDConfig{
//	        LR:       0.01,
//	        Momentum: 0.9,
//	    },
//	)
func NewSGD(params []*Parameter, config SGDConfig) (*SGD, error) {
	return optim.NewSGD(params, config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer, err := optim.NewAdam(
//	    []*optim.Parameter{w, b},
//	    optim.AdamConfig{
//	        LR:      0.001,
//	        Betas:   [2]float64{0.9, 0.999},
//	        Epsilon: 1e-8,
//	    },
//	)
func NewAdam(params []*Parameter, config AdamConfig) (*Adam, error) {
	return optim.NewAdam(params, config)
}
