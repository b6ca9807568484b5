package nn

import "github.com/nakfoor/MicroTorch/internal/tensor"

// Activation selects the nonlinearity applied after a layer's affine map.
type Activation int

const (
	// Linear applies no nonlinearity.
	Linear Activation = iota
	// ReLU applies max(0, x) elementwise.
	ReLU
)

// Layer is a fully connected layer over column-major activations.
//
// The weight matrix W has shape (nin, nout) and the bias b has shape
// (nout, 1). Forward computes Wᵀ·x + b for an input of shape (nin, batch),
// the bias column broadcasting across the batch, then applies the
// activation.
type Layer struct {
	w, b       *tensor.Tensor
	nin, nout  int
	activation Activation
}

// NewLayer creates a layer on graph g with standard-normal weights named "W"
// and a zero bias named "b". Sequential rescales and renames them when the
// layer is placed in a network.
func NewLayer(nin, nout int, act Activation, g *tensor.Graph) *Layer {
	return &Layer{
		w:          tensor.Randn(nin, nout, "W", g),
		b:          tensor.Zeros(nout, 1, "b", g),
		nin:        nin,
		nout:       nout,
		activation: act,
	}
}

// Forward computes the layer's activation for a (nin, batch) input,
// returning a (nout, batch) output.
func (l *Layer) Forward(x *tensor.Tensor) *tensor.Tensor {
	act := l.w.T().MatMul(x).Add(l.b)
	if l.activation == ReLU {
		act = act.ReLU()
	}
	return act
}

// Parameters returns the weight and bias tensors.
func (l *Layer) Parameters() []*tensor.Tensor {
	return []*tensor.Tensor{l.w, l.b}
}

// W returns the weight tensor, shape (nin, nout).
func (l *Layer) W() *tensor.Tensor { return l.w }

// B returns the bias tensor, shape (nout, 1).
func (l *Layer) B() *tensor.Tensor { return l.b }

// Nin returns the input feature count.
func (l *Layer) Nin() int { return l.nin }

// Nout returns the output feature count.
func (l *Layer) Nout() int { return l.nout }

// Activation returns the layer's configured activation.
func (l *Layer) Activation() Activation { return l.activation }
