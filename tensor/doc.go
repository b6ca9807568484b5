// Copyright 2025 MicroTorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides reverse-mode automatic differentiation over 2-D
// matrix tensors.
//
// # Overview
//
// Every Tensor is a node in a dynamically built computation graph carrying
// its value, its gradient, a composable name and the edges used by Backward.
// Arithmetic builds the graph; Backward replays it in reverse, accumulating
// gradients into every participating tensor.
//
// # Basic Usage
//
//	import (
//	    "fmt"
//
//	    "github.com/nakfoor/MicroTorch/tensor"
//	)
//
//	func main() {
//	    g := tensor.NewGraph()
//	    a, _ := tensor.FromRows([][]float64{{1, 2}, {3, 4}}, "a", g)
//	    b, _ := tensor.FromRows([][]float64{{5, 6}, {7, 8}}, "b", g)
//
//	    c := a.Add(b)          // name "(a+b)"
//	    d := c.MatMul(a.T())   // name "(a+b)@a.T"
//	    d.Backward()
//
//	    fmt.Println(a.Grad())
//	}
//
// # Raw Operands
//
// Arithmetic accepts raw values alongside tensors. A Scalar lifts to a full
// matrix of the partner's shape; a Matrix lifts to a leaf of its own shape.
// Lifted operands are named "unknown".
//
//	y := x.Mul(tensor.Scalar(2))
//	z := tensor.Sub(tensor.Scalar(1), x)            // raw left-hand side
//	w := x.Add(tensor.Matrix{{1, 0}, {0, 1}})
//
// # Gradient Tracking
//
// The Graph's tracking flag controls whether operations record edges.
// Disable it for evaluation passes that should not build graph:
//
//	defer g.NoGrad()()
//	pred := model.Forward(x)
//
// # Backward Conventions
//
// Backward seeds the called tensor's gradient with ones, so gradients are
// those of the sum of its elements. Two batch-averaging rules are built into
// the engine: addition distributes the column-averaged output gradient to
// both operands, and matrix multiplication divides the right-operand
// gradient by the left operand's row count. With single-column activations
// both reduce to the textbook rules.
package tensor
