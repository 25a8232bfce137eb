package optim

import (
	"github.com/sfw-ml/sfw/internal/nn"
	"github.com/sfw-ml/sfw/internal/tensor"
)

// FrankWolfeNuclear implements the stochastic Frank-Wolfe update
// constrained to the nuclear-norm ball, for 2D parameter tensors (weight
// matrices).
//
// The control flow matches FrankWolfeL1 — same 2/(k+2) schedule, same
// shared counter incremented once per Step — but the vertex comes from
// LMONuclear, the rank-1 matrix built from the gradient's top singular
// triplet.
//
// The kappa radius is declared per group but enforced per tensor: each
// weight matrix is independently constrained to its own nuclear ball,
// not pooled with the rest of the group. This is a modeling choice, not
// an accident; a pooled constraint would need a joint oracle over the
// block-diagonal concatenation.
type FrankWolfeNuclear struct {
	groups []Group
	k      int // shared step counter for the 2/(k+2) schedule
}

// NewFrankWolfeNuclear creates a Frank-Wolfe optimizer over a single
// group constrained to the nuclear-norm ball of radius config.Kappa.
//
// Returns a ConfigError if Kappa is not strictly positive.
func NewFrankWolfeNuclear(params []*nn.Param, config FrankWolfeConfig) (*FrankWolfeNuclear, error) {
	return NewFrankWolfeNuclearGroups([]Group{{Params: params, Kappa: config.Kappa}})
}

// NewFrankWolfeNuclearGroups creates a Frank-Wolfe optimizer over
// explicit parameter groups, allowing a different radius per group.
//
// Returns a ConfigError if any group's Kappa is not strictly positive.
func NewFrankWolfeNuclearGroups(groups []Group) (*FrankWolfeNuclear, error) {
	for _, g := range groups {
		if g.Kappa <= 0 {
			return nil, &ConfigError{Field: "kappa", Value: g.Kappa}
		}
	}
	return &FrankWolfeNuclear{groups: groups}, nil
}

// Step performs a single optimization step and advances the shared
// counter once. Parameters without a gradient are skipped; a
// gradient-bearing parameter that is not 2D is a ShapeError.
//
// A non-converging singular-vector computation surfaces as a
// NumericalError from the offending parameter; parameters processed
// before it keep their updates.
func (f *FrankWolfeNuclear) Step(closure Closure) (float64, error) {
	var loss float64
	if closure != nil {
		loss = closure()
	}

	gamma := 2 / float64(f.k+2)
	for _, group := range f.groups {
		for _, p := range group.Params {
			grad := p.Grad()
			if grad == nil {
				continue
			}
			if !p.Value().Shape().IsMatrix() {
				return loss, &ShapeError{
					Op:      "frank_wolfe_nuclear",
					Details: "parameter " + p.Name() + " has shape " + p.Value().Shape().String() + "; nuclear constraint needs a matrix",
				}
			}
			if err := checkGradShape("frank_wolfe_nuclear", p, grad); err != nil {
				return loss, err
			}
			s, err := LMONuclear(grad, group.Kappa)
			if err != nil {
				return loss, err
			}
			convexStep(p.Value(), s, gamma)
		}
	}
	f.k++
	return loss, nil
}

// ZeroGrad clears gradients for all parameters.
func (f *FrankWolfeNuclear) ZeroGrad() {
	zeroGrad(f.groups)
}

// K returns the number of completed steps.
func (f *FrankWolfeNuclear) K() int {
	return f.k
}

// StateDict returns the optimizer state for serialization. The only
// state is the shared step counter, exported under "step".
func (f *FrankWolfeNuclear) StateDict() map[string]*tensor.Tensor {
	return stepState(f.k)
}

// LoadStateDict restores the shared step counter from StateDict output.
func (f *FrankWolfeNuclear) LoadStateDict(state map[string]*tensor.Tensor) error {
	k, err := loadStepState("frank_wolfe_nuclear", state)
	if err != nil {
		return err
	}
	f.k = k
	return nil
}
