package tensor

import "gonum.org/v1/gonum/mat"

// T returns the transpose of t with the name "t.T". The result owns its own
// storage; it does not alias t.
//
// Backward transposes the output gradient back onto t.
func (t *Tensor) T() *Tensor {
	out := newLeaf(mat.DenseCopyOf(t.data.T()), t.name+".T", t.graph)
	if !t.graph.tracking {
		return out
	}
	out.parents = []*Tensor{t}
	out.backward = func() {
		t.grad.Add(t.grad, out.grad.T())
	}
	return out
}
