package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFromRows(t *testing.T) {
	g := NewGraph()
	a, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}}, "a", g)
	require.NoError(t, err)

	r, c := a.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, "a", a.Name())
	assert.Equal(t, 6.0, a.Data().At(1, 2))
	assert.True(t, mat.Equal(a.Grad(), mat.NewDense(2, 3, nil)))
	assert.Empty(t, a.Parents())
	assert.Same(t, g, a.Graph())
}

func TestFromRowsErrors(t *testing.T) {
	g := NewGraph()
	tests := []struct {
		name string
		rows [][]float64
	}{
		{"nil", nil},
		{"empty row", [][]float64{{}}},
		{"ragged", [][]float64{{1, 2}, {3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRows(tt.rows, "a", g)
			assert.Error(t, err)
		})
	}
}

func TestSizedConstructors(t *testing.T) {
	g := NewGraph()
	tests := []struct {
		name string
		make func() *Tensor
		want float64
	}{
		{"zeros", func() *Tensor { return Zeros(2, 3, "z", g) }, 0},
		{"ones", func() *Tensor { return Ones(2, 3, "o", g) }, 1},
		{"full", func() *Tensor { return Full(2, 3, 2.5, "f", g) }, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := tt.make()
			r, c := x.Dims()
			require.Equal(t, 2, r)
			require.Equal(t, 3, c)
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					assert.Equal(t, tt.want, x.Data().At(i, j))
				}
			}
		})
	}
}

func TestRandn(t *testing.T) {
	g := NewGraph()
	x := Randn(4, 5, "w", g)
	r, c := x.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 5, c)

	// Independent standard-normal draws collide with probability zero.
	assert.NotEqual(t, x.Data().At(0, 0), x.Data().At(3, 4))
}

func TestNewCopiesData(t *testing.T) {
	g := NewGraph()
	src := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	a := New(src, "a", g)

	src.Set(0, 0, 99)
	assert.Equal(t, 1.0, a.Data().At(0, 0))
}

func TestInvalidDimsPanic(t *testing.T) {
	g := NewGraph()
	assert.Panics(t, func() { Zeros(0, 3, "z", g) })
	assert.Panics(t, func() { Full(2, -1, 1, "f", g) })
	assert.Panics(t, func() { Randn(-2, 2, "r", g) })
}
