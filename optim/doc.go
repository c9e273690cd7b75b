// Copyright 2026 The emotigrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-descent optimization algorithms.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// Parameters are plain float64 vectors; gradient computation is the
// caller's responsibility.
//
// # Basic Usage
//
//	import "github.com/emotigrad-ml/emotigrad/optim"
//
//	func main() {
//	    w := optim.NewParameter("w", []float64{0})
//	    b := optim.NewParameter("b", []float64{0})
//
//	    optimizer, err := optim.NewSGD(
//	        []*optim.Parameter{w, b},
//	        optim.SGDConfig{LR: 0.01, Momentum: 0.9},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    for step := 0; step < steps; step++ {
//	        // 1. Zero gradients
//	        optimizer.ZeroGrad()
//
//	        // 2. Compute loss and fill w.Grad / b.Grad
//	        loss := backward(w, b, batch)
//
//	        // 3. Update parameters
//	        if err := optimizer.Step(); err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//	}
//
// # Optimizers
//
// SGD (Stochastic Gradient Descent):
//
//	optimizer, err := optim.NewSGD(params, optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//
// Adam (Adaptive Moment Estimation):
//
//	optimizer, err := optim.NewAdam(params, optim.AdamConfig{
//	    LR:      0.001,
//	    Betas:   [2]float64{0.9, 0.999},
//	    Epsilon: 1e-8,
//	})
package optim
