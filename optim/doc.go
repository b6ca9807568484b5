// Copyright 2025 MicroTorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training.
//
// # Overview
//
// This package contains:
//   - SGD: stochastic gradient descent with optional momentum
//   - Optimizer: the interface for custom optimizers
//
// Gradients accumulate on the parameter tensors during Backward, so Step
// reads them in place and takes no arguments.
//
// # Training Loop Pattern
//
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.05,
//	    Momentum: 0.9,
//	})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    // 1. Clear accumulated gradients
//	    opt.ZeroGrad()
//
//	    // 2. Forward pass
//	    pred := model.Forward(x)
//	    diff := pred.Sub(y)
//	    loss := diff.Mul(diff)
//
//	    // 3. Backward pass
//	    loss.Backward()
//
//	    // 4. Update parameters
//	    opt.Step()
//	}
package optim
