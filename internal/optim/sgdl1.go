package optim

import (
	"fmt"

	"github.com/sfw-ml/sfw/internal/nn"
	"github.com/sfw-ml/sfw/internal/tensor"
)

// SGDL1 implements subgradient descent with momentum for an L1-penalized
// (not constrained) objective.
//
// Per parameter, the effective gradient is
//
//	d = grad + lambda * sign(param)
//
// with sign(0) = 0 as the subgradient chosen at the kink of |x|. With
// momentum the descent direction is a running buffer
//
//	buf = momentum * buf + (1 - dampening) * d
//
// and the parameter update is param -= lr * direction.
//
// On the very first use of a parameter the buffer is seeded with the raw
// effective gradient: no momentum multiply and no dampening. This differs
// from the steady-state recurrence and is kept deliberately for
// compatibility with reference implementations of the method.
//
// Example:
//
//	opt, err := optim.NewSGDL1(model.Params(), optim.SGDL1Config{
//	    LR:       0.01,
//	    Lambda:   0.001,
//	    Momentum: 0.9,
//	})
type SGDL1 struct {
	groups  []Group
	offsets []int
	bufs    map[int]*tensor.Tensor // momentum buffers, keyed by flat parameter index
}

// SGDL1Config holds configuration for the SGDL1 optimizer.
type SGDL1Config struct {
	LR        float64 // Learning rate (default: 0.01)
	Lambda    float64 // L1 penalty coefficient (required, > 0)
	Momentum  float64 // Momentum factor (default: 0, range [0, 1))
	Dampening float64 // Dampening for new gradients (default: 0)
}

// NewSGDL1 creates an SGDL1 optimizer with a single parameter group.
//
// Returns a ConfigError if Lambda is not strictly positive.
func NewSGDL1(params []*nn.Param, config SGDL1Config) (*SGDL1, error) {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return NewSGDL1Groups([]Group{{
		Params:    params,
		LR:        config.LR,
		Lambda:    config.Lambda,
		Momentum:  config.Momentum,
		Dampening: config.Dampening,
	}})
}

// NewSGDL1Groups creates an SGDL1 optimizer over explicit parameter
// groups, each carrying its own hyperparameters.
//
// Returns a ConfigError if any group's Lambda is not strictly positive.
func NewSGDL1Groups(groups []Group) (*SGDL1, error) {
	for _, g := range groups {
		if g.Lambda <= 0 {
			return nil, &ConfigError{Field: "lambda", Value: g.Lambda}
		}
	}
	return &SGDL1{
		groups:  groups,
		offsets: paramOffsets(groups),
		bufs:    make(map[int]*tensor.Tensor),
	}, nil
}

// Step performs a single optimization step.
//
// Parameters without a gradient are skipped and left untouched. Momentum
// buffers are created lazily on a parameter's first update.
func (s *SGDL1) Step(closure Closure) (float64, error) {
	var loss float64
	if closure != nil {
		loss = closure()
	}

	for gi, group := range s.groups {
		for pi, p := range group.Params {
			grad := p.Grad()
			if grad == nil {
				continue
			}
			if err := checkGradShape("sgd_l1", p, grad); err != nil {
				return loss, err
			}
			s.update(group, s.offsets[gi]+pi, p, grad)
		}
	}
	return loss, nil
}

// update applies the subgradient step to a single parameter.
func (s *SGDL1) update(group Group, idx int, p *nn.Param, grad *tensor.Tensor) {
	pd := p.Value().Data()
	gd := grad.Data()

	if group.Momentum == 0 {
		for i := range pd {
			d := gd[i] + group.Lambda*sign(pd[i])
			pd[i] -= group.LR * d
		}
		return
	}

	buf, ok := s.bufs[idx]
	if !ok {
		// First use: seed with the raw effective gradient. See the type
		// comment for why this skips the momentum multiply.
		buf = tensor.ZerosLike(p.Value())
		s.bufs[idx] = buf
		bd := buf.Data()
		for i := range pd {
			bd[i] = gd[i] + group.Lambda*sign(pd[i])
			pd[i] -= group.LR * bd[i]
		}
		return
	}

	bd := buf.Data()
	for i := range pd {
		d := gd[i] + group.Lambda*sign(pd[i])
		bd[i] = group.Momentum*bd[i] + (1-group.Dampening)*d
		pd[i] -= group.LR * bd[i]
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGDL1) ZeroGrad() {
	zeroGrad(s.groups)
}

// StateDict returns the optimizer state for serialization.
//
// Momentum buffers are exported under "momentum_buffer.{index}" where
// index is the parameter's position in the flat registration order.
// Parameters that have not been updated yet have no entry.
func (s *SGDL1) StateDict() map[string]*tensor.Tensor {
	state := make(map[string]*tensor.Tensor, len(s.bufs))
	for idx, buf := range s.bufs {
		state[fmt.Sprintf("momentum_buffer.%d", idx)] = buf.Clone()
	}
	return state
}

// LoadStateDict restores momentum buffers exported by StateDict.
//
// Missing entries are allowed (the buffer is re-created lazily); present
// entries must match the registered parameter's shape.
func (s *SGDL1) LoadStateDict(state map[string]*tensor.Tensor) error {
	bufs := make(map[int]*tensor.Tensor)
	for gi, group := range s.groups {
		for pi, p := range group.Params {
			idx := s.offsets[gi] + pi
			buf, ok := state[fmt.Sprintf("momentum_buffer.%d", idx)]
			if !ok {
				continue
			}
			if !buf.Shape().Equal(p.Value().Shape()) {
				return &ShapeError{
					Op: "sgd_l1",
					Details: fmt.Sprintf("momentum buffer %d shape %v does not match parameter shape %v",
						idx, buf.Shape(), p.Value().Shape()),
				}
			}
			bufs[idx] = buf.Clone()
		}
	}
	s.bufs = bufs
	return nil
}
