// Package nn provides a minimal layer-composition library on top of the
// tensor engine: fully connected layers over column-major activations and a
// Sequential container that chains them.
package nn

import "github.com/nakfoor/MicroTorch/internal/tensor"

// Module is anything with a forward pass and trainable parameters.
type Module interface {
	// Forward maps a column-major input batch to an output batch.
	Forward(x *tensor.Tensor) *tensor.Tensor
	// Parameters returns the module's trainable tensors.
	Parameters() []*tensor.Tensor
}

// ZeroGrad resets the gradient of every parameter of m. Call it before each
// backward pass; gradients accumulate otherwise.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}
