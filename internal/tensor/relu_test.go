package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReLUForward(t *testing.T) {
	g := NewGraph()
	x, _ := FromRows([][]float64{{-1, 0, 2}, {3, -4, 5}}, "x", g)

	y := x.ReLU()
	assert.Equal(t, "ReLU(x)", y.Name())
	assertMatrix(t, [][]float64{{0, 0, 2}, {3, 0, 5}}, y.Data())
}

func TestReLUBackwardMasks(t *testing.T) {
	g := NewGraph()
	x, _ := FromRows([][]float64{{-1, 0, 2}, {3, -4, 5}}, "x", g)

	y := x.ReLU()
	y.Backward()

	// Gradient passes only where the output is strictly positive; the zero
	// entry blocks it too.
	assertMatrix(t, [][]float64{{0, 0, 1}, {1, 0, 1}}, x.Grad())
}

func TestReLUBackwardScalesUpstream(t *testing.T) {
	g := NewGraph()
	x, _ := FromRows([][]float64{{-1, 2}}, "x", g)
	w, _ := FromRows([][]float64{{5, 7}}, "w", g)

	x.ReLU().Mul(w).Backward()
	assertMatrix(t, [][]float64{{0, 7}}, x.Grad())
}

func TestReLUUntracked(t *testing.T) {
	g := NewGraph()
	x, _ := FromRows([][]float64{{-2, 2}}, "x", g)

	defer g.NoGrad()()
	y := x.ReLU()
	assertMatrix(t, [][]float64{{0, 2}}, y.Data())
	assert.Empty(t, y.Parents())
}
