// Package optim implements constrained stochastic optimization routines
// for training neural networks.
//
// This package provides:
//   - LMOL1, LMONuclear: linear minimization oracles over the L1 ball
//     and the nuclear-norm ball
//   - SGDL1: subgradient descent with momentum for L1-penalized objectives
//   - FrankWolfeL1, FrankWolfeNuclear: stochastic Frank-Wolfe (conditional
//     gradient) updates constrained to the L1 and nuclear-norm balls
//
// Gradients are computed externally and installed on parameters before
// Step is called; the optimizers mutate parameter values in place.
// Optimizers are not safe for concurrent use: the shared step counter and
// momentum buffers are unsynchronized, matching the one-goroutine driver
// loop they are built for.
//
// Example usage:
//
//	opt, err := optim.NewFrankWolfeL1(params, optim.FrankWolfeConfig{Kappa: 300})
//	if err != nil {
//	    return err
//	}
//	for batch := range batches {
//	    setGradients(params, batch)
//	    if _, err := opt.Step(nil); err != nil {
//	        return err
//	    }
//	    opt.ZeroGrad()
//	}
package optim

import (
	"github.com/sfw-ml/sfw/internal/nn"
	"github.com/sfw-ml/sfw/internal/tensor"
)

// Closure recomputes and returns the loss. Optimizers that receive one
// invoke it exactly once at the start of Step and pass its value through
// as the Step result, for driver loops that want the loss measured at
// update time.
type Closure func() float64

// Optimizer is the base interface for the update routines in this package.
type Optimizer interface {
	// Step applies one optimization step to every parameter that has a
	// gradient installed. closure may be nil; when present it is called
	// once, before any parameter is touched, and its value is returned.
	Step(closure Closure) (float64, error)

	// ZeroGrad clears all parameter gradients. Call before each backward
	// pass to prevent stale gradients from a previous iteration being
	// applied again.
	ZeroGrad()
}

// Group is an ordered collection of parameters sharing one set of
// hyperparameters. Grouping allows heterogeneous constraint radii or
// learning rates across layers.
//
// Each optimizer reads only the fields it uses: SGDL1 reads LR, Lambda,
// Momentum and Dampening; the Frank-Wolfe optimizers read Kappa.
type Group struct {
	Params    []*nn.Param
	LR        float64 // Learning rate (SGDL1)
	Lambda    float64 // L1 penalty coefficient (SGDL1, must be > 0)
	Kappa     float64 // Constraint-ball radius (Frank-Wolfe, must be > 0)
	Momentum  float64 // Momentum factor (SGDL1)
	Dampening float64 // Dampening applied to new gradients (SGDL1)
}

// paramOffsets assigns each group a base index into a flat, stable
// numbering of all registered parameters. Per-parameter optimizer state
// is keyed by these indices rather than by pointer identity, so state
// survives serialization round trips.
func paramOffsets(groups []Group) []int {
	offsets := make([]int, len(groups))
	n := 0
	for i, g := range groups {
		offsets[i] = n
		n += len(g.Params)
	}
	return offsets
}

// checkGradShape verifies that a parameter's gradient matches its value
// tensor.
func checkGradShape(op string, p *nn.Param, grad *tensor.Tensor) error {
	if !grad.Shape().Equal(p.Value().Shape()) {
		return &ShapeError{
			Op: op,
			Details: "parameter " + p.Name() + ": gradient shape " + grad.Shape().String() +
				" does not match value shape " + p.Value().Shape().String(),
		}
	}
	return nil
}

// zeroGrad clears gradients across all groups.
func zeroGrad(groups []Group) {
	for _, g := range groups {
		for _, p := range g.Params {
			p.ZeroGrad()
		}
	}
}
