package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGraphTracking(t *testing.T) {
	g := NewGraph()
	assert.True(t, g.Tracking())
}

func TestSetTrackingRestores(t *testing.T) {
	g := NewGraph()

	restore := g.SetTracking(false)
	assert.False(t, g.Tracking())

	inner := g.SetTracking(true)
	assert.True(t, g.Tracking())
	inner()
	assert.False(t, g.Tracking())

	restore()
	assert.True(t, g.Tracking())
}

func TestNoGradDetachesResults(t *testing.T) {
	g := NewGraph()
	a := Ones(2, 2, "a", g)
	b := Ones(2, 2, "b", g)

	restore := g.NoGrad()
	c := a.Add(b)
	restore()

	assert.Empty(t, c.Parents())
	assert.Equal(t, "(a+b)", c.Name())
	assert.Equal(t, 2.0, c.Data().At(0, 0))

	// Backward on a detached result only seeds its own gradient.
	c.Backward()
	assert.Equal(t, 1.0, c.Grad().At(1, 1))
	assert.Equal(t, 0.0, a.Grad().At(0, 0))
}

func TestTrackingRestoredAfterPanic(t *testing.T) {
	g := NewGraph()

	func() {
		defer func() { _ = recover() }()
		defer g.NoGrad()()
		panic("boom")
	}()

	assert.True(t, g.Tracking())
}

func TestMixedGraphsPanic(t *testing.T) {
	g1 := NewGraph()
	g2 := NewGraph()
	a := Ones(2, 2, "a", g1)
	b := Ones(2, 2, "b", g2)

	assert.Panics(t, func() { a.Add(b) })
	assert.Panics(t, func() { a.MatMul(b) })
	assert.Panics(t, func() { Sub(a, b) })
}
