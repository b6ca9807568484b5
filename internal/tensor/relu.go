package tensor

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ReLU returns max(0, t) elementwise with the name "ReLU(t)".
//
// Backward passes the output gradient through wherever the output is
// strictly positive and blocks it elsewhere, so elements that were exactly
// zero propagate nothing.
func (t *Tensor) ReLU() *Tensor {
	r, c := t.data.Dims()
	act := mat.NewDense(r, c, nil)
	act.Apply(func(_, _ int, v float64) float64 {
		return math.Max(0, v)
	}, t.data)
	out := newLeaf(act, "ReLU("+t.name+")", t.graph)
	if !t.graph.tracking {
		return out
	}
	out.parents = []*Tensor{t}
	out.backward = func() {
		for i := 0; i < r; i++ {
			dst := t.grad.RawRowView(i)
			val := out.data.RawRowView(i)
			up := out.grad.RawRowView(i)
			for j := range dst {
				if val[j] > 0 {
					dst[j] += up[j]
				}
			}
		}
	}
	return out
}
