// Package tensor implements a reverse-mode automatic differentiation engine
// over 2-D matrices.
//
// Every Tensor is a node in a dynamically built computation graph: it holds
// its value matrix, the gradient accumulated for it, a composable name, and
// the edges Backward uses to propagate gradients. Values and gradients are
// gonum mat.Dense matrices throughout.
package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Tensor is one node of the computation graph.
//
// Leaves come from the constructors (New, FromRows, Zeros, Ones, Full,
// Randn); interior nodes come from the arithmetic operations, which compose
// names such as "(a+b)" or "W@x" so a result's name records its history.
// The gradient matrix always has the node's own shape and starts at zero.
type Tensor struct {
	data     *mat.Dense
	grad     *mat.Dense
	name     string
	parents  []*Tensor
	backward func()
	graph    *Graph
}

func newLeaf(data *mat.Dense, name string, g *Graph) *Tensor {
	r, c := data.Dims()
	return &Tensor{
		data:  data,
		grad:  mat.NewDense(r, c, nil),
		name:  name,
		graph: g,
	}
}

// Data returns the value matrix. The matrix is live: mutating it changes the
// tensor, which is how optimizers apply parameter updates.
func (t *Tensor) Data() *mat.Dense { return t.data }

// Grad returns the gradient matrix accumulated by Backward. It has the same
// shape as Data and stays zero until a backward pass touches this tensor.
func (t *Tensor) Grad() *mat.Dense { return t.grad }

// Dims returns the number of rows and columns.
func (t *Tensor) Dims() (r, c int) { return t.data.Dims() }

// Name returns the tensor's name.
func (t *Tensor) Name() string { return t.name }

// SetName renames the tensor.
func (t *Tensor) SetName(name string) { t.name = name }

// Graph returns the graph this tensor belongs to.
func (t *Tensor) Graph() *Graph { return t.graph }

// Parents returns the tensors this one was computed from. Empty for leaves
// and for results produced while tracking was disabled.
func (t *Tensor) Parents() []*Tensor { return t.parents }

// ZeroGrad resets the gradient to zero, keeping its shape.
func (t *Tensor) ZeroGrad() { t.grad.Zero() }

// Trace returns the name wrapped in angle brackets. Operation names compose,
// so the trace of a result encodes how it was produced, e.g. "<(a+b)@c>".
func (t *Tensor) Trace() string {
	return "<" + t.name + ">"
}

// String renders the tensor with its trace, shape, value and gradient.
func (t *Tensor) String() string {
	r, c := t.data.Dims()
	return fmt.Sprintf("MicroTensor(name=%s, shape=(%d, %d),\ndata=\n%v,\ngrad=\n%v)",
		t.Trace(), r, c,
		mat.Formatted(t.data, mat.Squeeze()),
		mat.Formatted(t.grad, mat.Squeeze()))
}
