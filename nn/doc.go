// Copyright 2025 MicroTorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a minimal layer-composition library on top of the
// tensor engine.
//
// # Overview
//
// This package contains:
//   - Layer: a fully connected layer over column-major activations
//   - Sequential: a container chaining layers in order
//   - Module: the interface both satisfy
//
// Activations are column-major: an input batch has shape (features, batch),
// one sample per column, and a layer's bias column broadcasts across the
// batch.
//
// # Basic Usage
//
//	import (
//	    "github.com/nakfoor/MicroTorch/nn"
//	    "github.com/nakfoor/MicroTorch/tensor"
//	)
//
//	func main() {
//	    g := tensor.NewGraph()
//	    model := nn.NewSequential(
//	        nn.NewLayer(2, 8, nn.ReLU, g),
//	        nn.NewLayer(8, 1, nn.Linear, g),
//	    )
//
//	    x := tensor.Randn(2, 16, "x", g)   // batch of 16 samples
//	    pred := model.Forward(x)           // shape (1, 16)
//	    pred.Backward()
//	}
//
// # Initialization
//
// NewLayer draws weights from the standard normal distribution. Placing
// layers in a Sequential rescales them: ReLU layers by √(2/nin), linear
// layers by 0.01, and renames the parameters W1, b1, W2, b2, … in layer
// order.
package nn
