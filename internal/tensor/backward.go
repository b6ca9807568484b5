package tensor

// Backward runs reverse-mode differentiation from t.
//
// The subgraph reachable through parent edges is ordered topologically, t's
// own gradient is overwritten with ones (the derivative of the sum of its
// elements with respect to itself), and every recorded closure runs in
// reverse order, accumulating into the gradients of all participating
// tensors. Gradients of other nodes are never reset here: repeated passes
// add up until ZeroGrad.
//
// Calling Backward on a leaf just seeds its gradient with ones.
func (t *Tensor) Backward() {
	order := topoSort(t)
	fill(t.grad, 1)
	for i := len(order) - 1; i >= 0; i-- {
		if fn := order[i].backward; fn != nil {
			fn()
		}
	}
}

// topoSort orders the subgraph reachable from root so that every tensor
// appears after everything it was computed from; root comes last. Nodes are
// deduplicated by identity, so diamonds and repeated parents appear once.
// The traversal is iterative: graph depth is bounded by memory, not by the
// goroutine stack.
func topoSort(root *Tensor) []*Tensor {
	type frame struct {
		node *Tensor
		next int
	}
	seen := map[*Tensor]struct{}{root: {}}
	stack := []frame{{node: root}}
	order := make([]*Tensor, 0, 16)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.parents) {
			p := top.node.parents[top.next]
			top.next++
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				stack = append(stack, frame{node: p})
			}
			continue
		}
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}
	return order
}
