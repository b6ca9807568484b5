package nn

import (
	"math"
	"strconv"

	"github.com/nakfoor/MicroTorch/internal/tensor"
)

// Sequential chains layers, applying them in order.
//
// Construction rescales each layer's freshly initialized weights and renames
// the parameters so gradients stay attributable in traces: layer i's weight
// becomes "Wi" and its bias "bi", 1-indexed. ReLU layers are scaled by
// √(2/nin) (He initialization); linear layers by 0.01.
type Sequential struct {
	layers []*Layer
}

// NewSequential builds a network from the given layers, rescaling and
// renaming their parameters.
//
// Example:
//
//	model := nn.NewSequential(
//		nn.NewLayer(2, 8, nn.ReLU, g),
//		nn.NewLayer(8, 1, nn.Linear, g),
//	)
func NewSequential(layers ...*Layer) *Sequential {
	for i, l := range layers {
		scale := 0.01
		if l.activation == ReLU {
			scale = math.Sqrt(2 / float64(l.nin))
		}
		w := l.w.Data()
		w.Scale(scale, w)
		l.w.SetName("W" + strconv.Itoa(i+1))
		l.b.SetName("b" + strconv.Itoa(i+1))
	}
	return &Sequential{layers: layers}
}

// Forward applies every layer in order.
func (s *Sequential) Forward(x *tensor.Tensor) *tensor.Tensor {
	act := x
	for _, l := range s.layers {
		act = l.Forward(act)
	}
	return act
}

// Parameters returns all layer parameters in layer order: W1, b1, W2, b2, …
func (s *Sequential) Parameters() []*tensor.Tensor {
	params := make([]*tensor.Tensor, 0, 2*len(s.layers))
	for _, l := range s.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// Layers returns the contained layers in order.
func (s *Sequential) Layers() []*Layer { return s.layers }
