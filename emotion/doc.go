// Copyright 2026 The emotigrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package emotion wraps gradient-descent optimizers with emotional support.
//
// # Overview
//
// This package contains:
//   - EmotionalOptimizer: a decorator that forwards Step/ZeroGrad to any
//     optimizer and comments on the loss trend as training progresses
//   - Personality interface plus eleven built-ins (wholesome, sassy, quiet,
//     nervous, chaotic, arrogant, tired, hype, academic, pirate, zen)
//   - Registry: named personality lookup, seeded with the built-ins
//   - ColoredPrinter: per-personality colored console output
//   - Config: YAML-loadable decorator settings
//
// # Basic Usage
//
//	import (
//	    "github.com/emotigrad-ml/emotigrad/emotion"
//	    "github.com/emotigrad-ml/emotigrad/optim"
//	)
//
//	func main() {
//	    base, _ := optim.NewSGD(params, optim.SGDConfig{LR: 0.01})
//
//	    opt, err := emotion.New(base,
//	        emotion.WithPersonality("sassy"),
//	        emotion.WithMessageEvery(10),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    for step := 0; step < steps; step++ {
//	        opt.ZeroGrad()
//	        loss := backward(params, batch)
//	        if err := opt.StepWithLoss(loss); err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//	}
//
// With a message cadence of 10, the personality reacts every tenth step to
// the average of the losses recorded since the last message.
//
// # Custom Personalities
//
// A personality is anything with a React method; plain functions adapt via
// PersonalityFunc:
//
//	blunt := emotion.PersonalityFunc(func(loss float64, prev *float64, step int) string {
//	    if prev != nil && loss > *prev {
//	        return "worse."
//	    }
//	    return ""
//	})
//
//	opt, err := emotion.New(base, emotion.WithCustomPersonality(blunt))
//
// To make a custom personality available by name, register it in a
// caller-owned registry:
//
//	registry := emotion.NewRegistry()
//	if err := registry.Register("blunt", blunt, false); err != nil {
//	    log.Fatal(err)
//	}
//	opt, err := emotion.New(base,
//	    emotion.WithPersonality("blunt"),
//	    emotion.WithRegistry(registry),
//	)
//
// A personality that panics never interrupts training: the decorator drops
// the message and the wrapped optimizer's step proceeds untouched.
package emotion
