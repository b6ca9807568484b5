package tensor

// Operand is anything the arithmetic operations accept: a *Tensor, a raw
// Scalar, or a raw Matrix literal. Raw operands are lifted to leaf tensors
// named "unknown" on the partner tensor's graph before the operation runs.
//
// The interface is sealed; *Tensor, Scalar and Matrix are the only
// implementations.
type Operand interface {
	// lift converts the operand to a tensor shaped to combine with like.
	lift(like *Tensor) *Tensor
}

// coercedName is the name given to lifted raw operands.
const coercedName = "unknown"

// Scalar is a raw number operand. It lifts to a matrix of the partner
// tensor's shape with every element set to the value, so scalar arithmetic
// never mismatches shapes.
type Scalar float64

func (s Scalar) lift(like *Tensor) *Tensor {
	r, c := like.Dims()
	return Full(r, c, float64(s), coercedName, like.graph)
}

// Matrix is a raw [][]float64 operand. It lifts to a leaf tensor of its own
// shape. Ragged or empty values panic; use FromRows when the data needs
// error handling.
type Matrix [][]float64

func (m Matrix) lift(like *Tensor) *Tensor {
	t, err := FromRows(m, coercedName, like.graph)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tensor) lift(*Tensor) *Tensor { return t }

// liftPair resolves two operands against each other. At least one must be a
// *Tensor, and two tensors must share a graph.
func liftPair(a, b Operand, op string) (*Tensor, *Tensor) {
	at, aOK := a.(*Tensor)
	bt, bOK := b.(*Tensor)
	switch {
	case aOK && bOK:
		if at.graph != bt.graph {
			panic("tensor: " + op + " operands belong to different graphs")
		}
		return at, bt
	case aOK:
		return at, b.lift(at)
	case bOK:
		return a.lift(bt), bt
	default:
		panic("tensor: " + op + " needs at least one *Tensor operand")
	}
}
