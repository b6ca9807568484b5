package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransposeForward(t *testing.T) {
	g := NewGraph()
	x, _ := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}}, "x", g)

	y := x.T()
	assert.Equal(t, "x.T", y.Name())
	assertMatrix(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, y.Data())

	// Round trip restores the values under a composed name.
	z := y.T()
	assert.Equal(t, "x.T.T", z.Name())
	assertMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, z.Data())
}

func TestTransposeDoesNotAliasSource(t *testing.T) {
	g := NewGraph()
	x, _ := FromRows([][]float64{{1, 2}, {3, 4}}, "x", g)
	y := x.T()

	x.Data().Set(0, 1, 99)
	assert.Equal(t, 2.0, y.Data().At(1, 0))
}

func TestTransposeBackward(t *testing.T) {
	g := NewGraph()
	x, _ := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}}, "x", g)
	w, _ := FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}}, "w", g)

	x.T().Mul(w).Backward()

	// The transposed node's gradient is w's data; x receives it transposed
	// back into its own shape.
	assertMatrix(t, [][]float64{{1, 3, 5}, {2, 4, 6}}, x.Grad())
}

func TestTransposeRoundTripBackward(t *testing.T) {
	g := NewGraph()
	x, _ := FromRows([][]float64{{1, 2}, {3, 4}}, "x", g)

	x.T().T().Backward()
	assertMatrix(t, [][]float64{{1, 1}, {1, 1}}, x.Grad())
}
