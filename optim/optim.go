// Copyright 2025 MicroTorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/nakfoor/MicroTorch/internal/optim"
	"github.com/nakfoor/MicroTorch/internal/tensor"
)

// Optimizer is the common interface for parameter-update strategies.
type Optimizer = optim.Optimizer

// SGD implements stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer over the given parameters.
//
// Example:
//
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.05,
//	    Momentum: 0.9,
//	})
func NewSGD(params []*tensor.Tensor, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
