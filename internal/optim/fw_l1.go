package optim

import (
	"github.com/sfw-ml/sfw/internal/nn"
	"github.com/sfw-ml/sfw/internal/tensor"
)

// FrankWolfeL1 implements the stochastic Frank-Wolfe (conditional
// gradient) update constrained to an L1 ball.
//
// Per parameter with a gradient, one step computes the L1-ball vertex
//
//	s = LMOL1(grad, kappa)
//
// and moves to the convex combination
//
//	param = (1 - gamma) * param + gamma * s,  gamma = 2 / (k + 2)
//
// where k is a step counter shared across all parameter groups and
// incremented exactly once per Step call, after every parameter has been
// processed. Because each update is a convex combination with a ball
// vertex, a parameter that starts inside its group's kappa-ball stays
// inside it forever. No per-parameter state is kept.
//
// Example:
//
//	opt, err := optim.NewFrankWolfeL1(model.Params(), optim.FrankWolfeConfig{Kappa: 300})
type FrankWolfeL1 struct {
	groups []Group
	k      int // shared step counter for the 2/(k+2) schedule
}

// FrankWolfeConfig holds configuration shared by the Frank-Wolfe
// optimizers.
type FrankWolfeConfig struct {
	Kappa float64 // Constraint-ball radius (required, > 0)
}

// NewFrankWolfeL1 creates a Frank-Wolfe optimizer over a single group
// constrained to the L1 ball of radius config.Kappa.
//
// Returns a ConfigError if Kappa is not strictly positive.
func NewFrankWolfeL1(params []*nn.Param, config FrankWolfeConfig) (*FrankWolfeL1, error) {
	return NewFrankWolfeL1Groups([]Group{{Params: params, Kappa: config.Kappa}})
}

// NewFrankWolfeL1Groups creates a Frank-Wolfe optimizer over explicit
// parameter groups, allowing a different radius per group.
//
// Returns a ConfigError if any group's Kappa is not strictly positive.
func NewFrankWolfeL1Groups(groups []Group) (*FrankWolfeL1, error) {
	for _, g := range groups {
		if g.Kappa <= 0 {
			return nil, &ConfigError{Field: "kappa", Value: g.Kappa}
		}
	}
	return &FrankWolfeL1{groups: groups}, nil
}

// Step performs a single optimization step and advances the shared
// counter once, regardless of how many parameters were processed.
// Parameters without a gradient are skipped.
func (f *FrankWolfeL1) Step(closure Closure) (float64, error) {
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
			if err := checkGradShape("frank_wolfe_l1", p, grad); err != nil {
				return loss, err
			}
			s, err := LMOL1(grad, group.Kappa)
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
func (f *FrankWolfeL1) ZeroGrad() {
	zeroGrad(f.groups)
}

// K returns the number of completed steps.
func (f *FrankWolfeL1) K() int {
	return f.k
}

// StateDict returns the optimizer state for serialization. The only
// state is the shared step counter, exported under "step".
func (f *FrankWolfeL1) StateDict() map[string]*tensor.Tensor {
	return stepState(f.k)
}

// LoadStateDict restores the shared step counter from StateDict output.
func (f *FrankWolfeL1) LoadStateDict(state map[string]*tensor.Tensor) error {
	k, err := loadStepState("frank_wolfe_l1", state)
	if err != nil {
		return err
	}
	f.k = k
	return nil
}

// convexStep moves value toward the vertex s: value += gamma*(s - value).
func convexStep(value, s *tensor.Tensor, gamma float64) {
	vd := value.Data()
	sd := s.Data()
	for i := range vd {
		vd[i] += gamma * (sd[i] - vd[i])
	}
}

// stepState packs a step counter into a StateDict.
func stepState(k int) map[string]*tensor.Tensor {
	t := tensor.Zeros(tensor.Shape{1})
	t.Set(0, float64(k))
	return map[string]*tensor.Tensor{"step": t}
}

// loadStepState unpacks a step counter written by stepState.
func loadStepState(op string, state map[string]*tensor.Tensor) (int, error) {
	t, ok := state["step"]
	if !ok {
		return 0, &ShapeError{Op: op, Details: `state dict has no "step" entry`}
	}
	if t.NumElements() != 1 {
		return 0, &ShapeError{Op: op, Details: `"step" entry is not a scalar`}
	}
	return int(t.At(0)), nil
}
