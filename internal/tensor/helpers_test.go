package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// assertMatrix compares got against want element by element.
func assertMatrix(t *testing.T, want [][]float64, got mat.Matrix) {
	t.Helper()
	r, c := got.Dims()
	if !assert.Equal(t, len(want), r, "rows") || !assert.Equal(t, len(want[0]), c, "cols") {
		return
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.InDelta(t, want[i][j], got.At(i, j), 1e-12, "element (%d,%d)", i, j)
		}
	}
}

// sumAll adds up every element of a tensor's value.
func sumAll(x *Tensor) float64 {
	return floats.Sum(x.Data().RawMatrix().Data)
}
