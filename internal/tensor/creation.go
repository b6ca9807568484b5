package tensor

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// New wraps a matrix as a leaf tensor on g. The matrix is copied, so later
// changes to data do not affect the tensor.
func New(data *mat.Dense, name string, g *Graph) *Tensor {
	return newLeaf(mat.DenseCopyOf(data), name, g)
}

// FromRows builds a leaf tensor from a slice of rows. All rows must have the
// same, non-zero length.
//
// Example:
//
//	a, err := tensor.FromRows([][]float64{{1, 2}, {3, 4}}, "a", g)
func FromRows(rows [][]float64, name string, g *Graph) (*Tensor, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("tensor: FromRows needs at least one row and one column")
	}
	c := len(rows[0])
	d := mat.NewDense(len(rows), c, nil)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("tensor: FromRows row %d has %d values, want %d", i, len(row), c)
		}
		d.SetRow(i, row)
	}
	return newLeaf(d, name, g), nil
}

// Zeros creates an r×c leaf tensor filled with zeros.
func Zeros(r, c int, name string, g *Graph) *Tensor {
	checkDims(r, c)
	return newLeaf(mat.NewDense(r, c, nil), name, g)
}

// Ones creates an r×c leaf tensor filled with ones.
func Ones(r, c int, name string, g *Graph) *Tensor {
	return Full(r, c, 1, name, g)
}

// Full creates an r×c leaf tensor with every element set to v.
func Full(r, c int, v float64, name string, g *Graph) *Tensor {
	checkDims(r, c)
	d := mat.NewDense(r, c, nil)
	fill(d, v)
	return newLeaf(d, name, g)
}

// Randn creates an r×c leaf tensor drawn from the standard normal
// distribution, the usual starting point for weight matrices.
func Randn(r, c int, name string, g *Graph) *Tensor {
	checkDims(r, c)
	d := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		row := d.RawRowView(i)
		for j := range row {
			row[j] = rand.NormFloat64() //nolint:gosec // math/rand is appropriate for weight initialization
		}
	}
	return newLeaf(d, name, g)
}

func checkDims(r, c int) {
	if r <= 0 || c <= 0 {
		panic(fmt.Sprintf("tensor: invalid dimensions %dx%d", r, c))
	}
}
