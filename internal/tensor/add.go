package tensor

// Add returns a + b with the name "(a+b)". Either side may be a raw Scalar
// or Matrix; at least one must be a *Tensor.
//
// Equal shapes add elementwise. An r×1 column on either side is added to
// every column of the other operand, which is how a bias column spreads
// across a batch. Other pairings panic with mat.ErrShape.
//
// Backward distributes the column-averaged output gradient to both
// operands: each row of out.Grad is reduced to its mean, and that mean is
// added to every element of the corresponding row of each operand's
// gradient. With a single column this is the textbook rule; with a batch it
// averages the signal across the batch.
func Add(a, b Operand) *Tensor {
	x, y := liftPair(a, b, "Add")
	return addTensors(x, y)
}

// Add returns t + v. See the package-level Add.
func (t *Tensor) Add(v Operand) *Tensor {
	return Add(t, v)
}

func addTensors(a, b *Tensor) *Tensor {
	out := newLeaf(addBroadcast(a.data, b.data), "("+a.name+"+"+b.name+")", a.graph)
	if !a.graph.tracking {
		return out
	}
	out.parents = []*Tensor{a, b}
	out.backward = func() {
		means := rowMeans(out.grad)
		addToRows(a.grad, means)
		addToRows(b.grad, means)
	}
	return out
}
