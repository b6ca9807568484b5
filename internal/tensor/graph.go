package tensor

// Graph carries the gradient-tracking state shared by a family of tensors.
//
// Operations consult the graph at call time: while tracking is enabled the
// result of an operation records its parent tensors and a backward closure;
// while disabled the result is a detached leaf. Forward values are computed
// either way.
//
// Tracking is scoped with the returned restore function:
//
//	g := tensor.NewGraph()
//	defer g.NoGrad()()
type Graph struct {
	tracking bool
}

// NewGraph returns a graph with gradient tracking enabled.
func NewGraph() *Graph {
	return &Graph{tracking: true}
}

// Tracking reports whether operations currently record gradients.
func (g *Graph) Tracking() bool {
	return g.tracking
}

// SetTracking enables or disables gradient recording and returns a function
// that restores the previous state, so scopes nest:
//
//	restore := g.SetTracking(false)
//	// untracked forward passes
//	restore()
func (g *Graph) SetTracking(on bool) func() {
	prev := g.tracking
	g.tracking = on
	return func() { g.tracking = prev }
}

// NoGrad disables gradient recording. Shorthand for SetTracking(false).
func (g *Graph) NoGrad() func() {
	return g.SetTracking(false)
}
