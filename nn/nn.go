// Copyright 2025 MicroTorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/nakfoor/MicroTorch/internal/nn"
	"github.com/nakfoor/MicroTorch/internal/tensor"
)

// Module is the common interface for layers and containers.
type Module = nn.Module

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// Activation selects the nonlinearity applied after a layer's affine map.
type Activation = nn.Activation

// Activations.
const (
	Linear = nn.Linear
	ReLU   = nn.ReLU
)

// Layer is a fully connected layer over column-major activations.
type Layer = nn.Layer

// NewLayer creates a layer with standard-normal weights named "W" and a zero
// bias named "b".
//
// Example:
//
//	g := tensor.NewGraph()
//	hidden := nn.NewLayer(3, 4, nn.ReLU, g)
func NewLayer(nin, nout int, act Activation, g *tensor.Graph) *Layer {
	return nn.NewLayer(nin, nout, act, g)
}

// Sequential chains layers, applying them in order.
type Sequential = nn.Sequential

// NewSequential builds a network from the given layers, rescaling their
// weights and renaming the parameters W1, b1, W2, b2, …
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLayer(2, 8, nn.ReLU, g),
//	    nn.NewLayer(8, 1, nn.Linear, g),
//	)
func NewSequential(layers ...*Layer) *Sequential {
	return nn.NewSequential(layers...)
}
