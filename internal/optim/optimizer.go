// Package optim provides parameter-update strategies for training.
package optim

// Optimizer is the common interface for parameter-update strategies.
//
// Gradients accumulate on the parameter tensors themselves during Backward,
// so Step takes no arguments and reads them in place.
type Optimizer interface {
	// Step applies one update to every parameter from its current gradient.
	Step()
	// ZeroGrad clears every parameter's gradient.
	ZeroGrad()
	// GetLR returns the current learning rate.
	GetLR() float64
	// SetLR updates the learning rate, for schedules.
	SetLR(lr float64)
}
