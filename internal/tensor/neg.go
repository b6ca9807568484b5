package tensor

// Neg returns -t, computed as t * -1 so the mul machinery supplies the
// backward pass. The lifted constant is named "unknown", making the result's
// name "t*unknown".
func (t *Tensor) Neg() *Tensor {
	return Mul(t, Scalar(-1))
}
