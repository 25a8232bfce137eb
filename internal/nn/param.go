// Package nn holds the trainable-parameter type the optimizers consume.
//
// A model (external to this module) builds its layers out of Params and
// hands them to an optimizer. The forward/backward machinery that fills in
// gradients is an external collaborator; this package only defines the
// handle the optimizer reads gradients from and writes updates through.
package nn

import (
	"github.com/sfw-ml/sfw/internal/tensor"
)

// Param represents a trainable parameter.
//
// The value tensor is mutated in place by optimizers. The gradient is
// populated externally after each backward pass and is nil for parameters
// that did not participate in the step.
//
// Example:
//
//	w := tensor.Zeros(tensor.Shape{64, 32})
//	weight := nn.NewParam("fc1.weight", w)
type Param struct {
	name  string
	value *tensor.Tensor
	grad  *tensor.Tensor
}

// NewParam creates a trainable parameter wrapping an initialized tensor.
func NewParam(name string, value *tensor.Tensor) *Param {
	return &Param{
		name:  name,
		value: value,
		grad:  nil, // set by the caller once a gradient exists
	}
}

// Name returns the parameter name (e.g. "fc1.weight").
func (p *Param) Name() string {
	return p.name
}

// Value returns the parameter tensor.
func (p *Param) Value() *tensor.Tensor {
	return p.value
}

// Grad returns the gradient tensor, or nil if none has been set since
// the last ZeroGrad.
func (p *Param) Grad() *tensor.Tensor {
	return p.grad
}

// SetGrad installs the gradient tensor for the next optimizer step.
func (p *Param) SetGrad(grad *tensor.Tensor) {
	p.grad = grad
}

// ZeroGrad clears the gradient.
//
// Call before each backward pass so stale gradients from a previous
// iteration are never applied.
func (p *Param) ZeroGrad() {
	p.grad = nil
}
