// Copyright 2025 The SFW Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/sfw-ml/sfw/internal/nn"
	"github.com/sfw-ml/sfw/internal/optim"
	"github.com/sfw-ml/sfw/internal/tensor"
)

// Optimizer is the common interface for the update routines.
type Optimizer = optim.Optimizer

// Closure recomputes and returns the loss; see Optimizer.Step.
type Closure = optim.Closure

// Group is an ordered collection of parameters sharing one set of
// hyperparameters.
type Group = optim.Group

// Error taxonomy. ConfigError is returned by constructors, ShapeError
// and NumericalError by oracles and Step.
type (
	ConfigError    = optim.ConfigError
	ShapeError     = optim.ShapeError
	NumericalError = optim.NumericalError
)

// Linear minimization oracles

// LMOL1 returns the point on the L1 ball of radius kappa minimizing the
// inner product with grad.
func LMOL1(grad *tensor.Tensor, kappa float64) (*tensor.Tensor, error) {
	return optim.LMOL1(grad, kappa)
}

// LMONuclear returns the matrix on the nuclear-norm ball of radius kappa
// minimizing the Frobenius inner product with grad.
func LMONuclear(grad *tensor.Tensor, kappa float64) (*tensor.Tensor, error) {
	return optim.LMONuclear(grad, kappa)
}

// SGDL1 (subgradient descent with momentum, L1-penalized objective)

// SGDL1 is the subgradient-with-momentum optimizer for L1-penalized
// objectives.
type SGDL1 = optim.SGDL1

// SGDL1Config contains configuration for the SGDL1 optimizer.
type SGDL1Config = optim.SGDL1Config

// NewSGDL1 creates an SGDL1 optimizer with a single parameter group.
//
// Example:
//
//	opt, err := optim.NewSGDL1(model.Params(), optim.SGDL1Config{
//	    LR:       0.01,
//	    Lambda:   0.001,
//	    Momentum: 0.9,
//	})
func NewSGDL1(params []*nn.Param, config SGDL1Config) (*SGDL1, error) {
	return optim.NewSGDL1(params, config)
}

// NewSGDL1Groups creates an SGDL1 optimizer over explicit parameter
// groups.
func NewSGDL1Groups(groups []Group) (*SGDL1, error) {
	return optim.NewSGDL1Groups(groups)
}

// Frank-Wolfe (conditional gradient) optimizers

// FrankWolfeConfig contains configuration shared by the Frank-Wolfe
// optimizers.
type FrankWolfeConfig = optim.FrankWolfeConfig

// FrankWolfeL1 is the Frank-Wolfe optimizer constrained to an L1 ball.
type FrankWolfeL1 = optim.FrankWolfeL1

// NewFrankWolfeL1 creates a Frank-Wolfe optimizer over a single group
// constrained to the L1 ball of radius config.Kappa.
//
// Example:
//
//	opt, err := optim.NewFrankWolfeL1(model.Params(), optim.FrankWolfeConfig{
//	    Kappa: 300,
//	})
func NewFrankWolfeL1(params []*nn.Param, config FrankWolfeConfig) (*FrankWolfeL1, error) {
	return optim.NewFrankWolfeL1(params, config)
}

// NewFrankWolfeL1Groups creates a Frank-Wolfe L1 optimizer over explicit
// parameter groups, allowing heterogeneous radii across layers.
func NewFrankWolfeL1Groups(groups []Group) (*FrankWolfeL1, error) {
	return optim.NewFrankWolfeL1Groups(groups)
}

// FrankWolfeNuclear is the Frank-Wolfe optimizer constrained to the
// nuclear-norm ball, for 2D parameters.
type FrankWolfeNuclear = optim.FrankWolfeNuclear

// NewFrankWolfeNuclear creates a Frank-Wolfe optimizer over a single
// group constrained to the nuclear-norm ball of radius config.Kappa.
func NewFrankWolfeNuclear(params []*nn.Param, config FrankWolfeConfig) (*FrankWolfeNuclear, error) {
	return optim.NewFrankWolfeNuclear(params, config)
}

// NewFrankWolfeNuclearGroups creates a Frank-Wolfe nuclear optimizer
// over explicit parameter groups.
func NewFrankWolfeNuclearGroups(groups []Group) (*FrankWolfeNuclear, error) {
	return optim.NewFrankWolfeNuclearGroups(groups)
}
