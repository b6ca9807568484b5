package tensor

import "gonum.org/v1/gonum/mat"

// Mul returns the elementwise product a ⊙ b with the name "a*b". Either side
// may be a raw Scalar or Matrix; shapes must match after lifting (a Scalar
// always fits), or the call panics with mat.ErrShape.
//
// Backward is the product rule: each operand accumulates the other
// operand's data times the output gradient.
func Mul(a, b Operand) *Tensor {
	x, y := liftPair(a, b, "Mul")
	return mulTensors(x, y)
}

// Mul returns t ⊙ v. See the package-level Mul.
func (t *Tensor) Mul(v Operand) *Tensor {
	return Mul(t, v)
}

func mulTensors(a, b *Tensor) *Tensor {
	r, c := a.data.Dims()
	prod := mat.NewDense(r, c, nil)
	prod.MulElem(a.data, b.data)
	out := newLeaf(prod, a.name+"*"+b.name, a.graph)
	if !a.graph.tracking {
		return out
	}
	out.parents = []*Tensor{a, b}
	out.backward = func() {
		var d mat.Dense
		d.MulElem(b.data, out.grad)
		a.grad.Add(a.grad, &d)
		d.MulElem(a.data, out.grad)
		b.grad.Add(b.grad, &d)
	}
	return out
}
