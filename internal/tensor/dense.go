package tensor

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Raw matrix arithmetic shared by forward computations and backward
// closures. Backward code must not go through the public operations, which
// would record new graph edges mid-pass.

// fill sets every element of m to v.
func fill(m *mat.Dense, v float64) {
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		row := m.RawRowView(i)
		for j := range row {
			row[j] = v
		}
	}
}

// rowMeans returns the mean of each row of m.
func rowMeans(m *mat.Dense) []float64 {
	r, c := m.Dims()
	means := make([]float64, r)
	for i := 0; i < r; i++ {
		means[i] = floats.Sum(m.RawRowView(i)) / float64(c)
	}
	return means
}

// addToRows adds v[i] to every element of row i of dst.
func addToRows(dst *mat.Dense, v []float64) {
	r, _ := dst.Dims()
	for i := 0; i < r; i++ {
		row := dst.RawRowView(i)
		for j := range row {
			row[j] += v[i]
		}
	}
}

// addBroadcast returns a + b. Equal shapes add elementwise; an r×1 column on
// either side is added to every column of the other operand. Any other
// pairing panics with mat.ErrShape.
func addBroadcast(a, b *mat.Dense) *mat.Dense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	switch {
	case ac == 1 && bc > 1 && ar == br:
		return addColumn(b, a)
	case bc == 1 && ac > 1 && ar == br:
		return addColumn(a, b)
	default:
		out := mat.NewDense(ar, ac, nil)
		out.Add(a, b)
		return out
	}
}

// addColumn returns m with col (an r×1 matrix) added to every column.
func addColumn(m, col *mat.Dense) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		v := col.At(i, 0)
		src := m.RawRowView(i)
		dst := out.RawRowView(i)
		for j := range dst {
			dst[j] = src[j] + v
		}
	}
	return out
}
