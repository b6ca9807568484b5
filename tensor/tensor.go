// Copyright 2025 MicroTorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/nakfoor/MicroTorch/internal/tensor"
)

// Tensor is a node in a reverse-mode automatic-differentiation graph over
// 2-D matrices.
type Tensor = tensor.Tensor

// Graph carries the gradient-tracking state shared by a family of tensors.
type Graph = tensor.Graph

// Operand is anything the arithmetic operations accept: a *Tensor, a Scalar
// or a Matrix.
type Operand = tensor.Operand

// Scalar is a raw number operand; it lifts to a matrix of the partner
// tensor's shape.
type Scalar = tensor.Scalar

// Matrix is a raw [][]float64 operand; it lifts to a leaf of its own shape.
type Matrix = tensor.Matrix

// NewGraph returns a graph with gradient tracking enabled.
//
// Example:
//
//	g := tensor.NewGraph()
//	x := tensor.Randn(3, 1, "x", g)
func NewGraph() *Graph {
	return tensor.NewGraph()
}

// New wraps a copy of data as a leaf tensor on g.
func New(data *mat.Dense, name string, g *Graph) *Tensor {
	return tensor.New(data, name, g)
}

// FromRows builds a leaf tensor from a slice of rows. All rows must have the
// same, non-zero length.
//
// Example:
//
//	a, err := tensor.FromRows([][]float64{{1, 2}, {3, 4}}, "a", g)
func FromRows(rows [][]float64, name string, g *Graph) (*Tensor, error) {
	return tensor.FromRows(rows, name, g)
}

// Zeros creates an r×c leaf tensor filled with zeros.
func Zeros(r, c int, name string, g *Graph) *Tensor {
	return tensor.Zeros(r, c, name, g)
}

// Ones creates an r×c leaf tensor filled with ones.
func Ones(r, c int, name string, g *Graph) *Tensor {
	return tensor.Ones(r, c, name, g)
}

// Full creates an r×c leaf tensor with every element set to v.
func Full(r, c int, v float64, name string, g *Graph) *Tensor {
	return tensor.Full(r, c, v, name, g)
}

// Randn creates an r×c leaf tensor drawn from the standard normal
// distribution.
func Randn(r, c int, name string, g *Graph) *Tensor {
	return tensor.Randn(r, c, name, g)
}

// Add returns a + b. Either side may be a raw Scalar or Matrix; at least one
// must be a *Tensor.
//
// Example:
//
//	c := tensor.Add(tensor.Scalar(1), x)   // 1 + x
func Add(a, b Operand) *Tensor {
	return tensor.Add(a, b)
}

// Sub returns a - b, composed as a + (-b).
func Sub(a, b Operand) *Tensor {
	return tensor.Sub(a, b)
}

// Mul returns the elementwise product a ⊙ b.
func Mul(a, b Operand) *Tensor {
	return tensor.Mul(a, b)
}
