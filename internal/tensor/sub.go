package tensor

// Sub returns a - b, composed as a + (-b). Either side may be a raw Scalar
// or Matrix. The name reflects the composition: "(a+b*unknown)".
func Sub(a, b Operand) *Tensor {
	x, y := liftPair(a, b, "Sub")
	return addTensors(x, y.Neg())
}

// Sub returns t - v. See the package-level Sub.
func (t *Tensor) Sub(v Operand) *Tensor {
	return Sub(t, v)
}
