package optim

import (
	"gonum.org/v1/gonum/mat"

	"github.com/nakfoor/MicroTorch/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * grad
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + grad
//	param = param - lr * velocity
//
// Example:
//
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05, Momentum: 0.9})
//	for epoch := 0; epoch < epochs; epoch++ {
//		opt.ZeroGrad()
//		loss := trainStep(model, batch)
//		loss.Backward()
//		opt.Step()
//	}
type SGD struct {
	params     []*tensor.Tensor
	lr         float64
	momentum   float64
	velocities map[*tensor.Tensor]*mat.Dense
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default 0.01)
	Momentum float64 // momentum factor in [0, 1) (default 0)
}

// NewSGD creates an SGD optimizer over the given parameters. Velocity
// buffers are allocated lazily on the first momentum step.
func NewSGD(params []*tensor.Tensor, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*tensor.Tensor]*mat.Dense),
	}
}

// Step applies one gradient-descent update to every parameter, mutating the
// parameter data in place.
func (s *SGD) Step() {
	for _, p := range s.params {
		if s.momentum == 0 {
			s.update(p)
		} else {
			s.updateWithMomentum(p)
		}
	}
}

func (s *SGD) update(p *tensor.Tensor) {
	var scaled mat.Dense
	scaled.Scale(s.lr, p.Grad())
	data := p.Data()
	data.Sub(data, &scaled)
}

func (s *SGD) updateWithMomentum(p *tensor.Tensor) {
	v, ok := s.velocities[p]
	if !ok {
		r, c := p.Dims()
		v = mat.NewDense(r, c, nil)
		s.velocities[p] = v
	}
	v.Scale(s.momentum, v)
	v.Add(v, p.Grad())

	var scaled mat.Dense
	scaled.Scale(s.lr, v)
	data := p.Data()
	data.Sub(data, &scaled)
}

// ZeroGrad clears the gradients of all parameters.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 { return s.lr }

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) { s.lr = lr }
