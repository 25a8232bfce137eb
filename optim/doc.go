// Copyright 2025 The SFW Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides constrained stochastic optimization routines
// for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGDL1: subgradient descent with momentum for an L1-penalized
//     objective
//   - FrankWolfeL1: stochastic Frank-Wolfe updates constrained to an
//     L1 ball
//   - FrankWolfeNuclear: stochastic Frank-Wolfe updates constrained to
//     the nuclear-norm ball (per weight matrix)
//   - LMOL1, LMONuclear: the underlying linear minimization oracles
//
// # Basic Usage
//
//	import (
//	    "github.com/sfw-ml/sfw/nn"
//	    "github.com/sfw-ml/sfw/optim"
//	    "github.com/sfw-ml/sfw/tensor"
//	)
//
//	func train(params []*nn.Param, batches []Batch) error {
//	    opt, err := optim.NewFrankWolfeL1(params, optim.FrankWolfeConfig{Kappa: 300})
//	    if err != nil {
//	        return err
//	    }
//	    for _, batch := range batches {
//	        setGradients(params, batch) // external forward/backward
//	        if _, err := opt.Step(nil); err != nil {
//	            return err
//	        }
//	        opt.ZeroGrad()
//	    }
//	    return nil
//	}
//
// # Parameter Groups
//
// Each optimizer has a Groups constructor taking []optim.Group, so
// different layers can carry different constraint radii or learning
// rates. The Frank-Wolfe step-size schedule gamma = 2/(k+2) uses one
// counter per optimizer instance, shared across groups and advanced
// once per Step call.
//
// # Errors
//
// Constructors fail fast with a *ConfigError when a constraint radius
// or penalty coefficient is not strictly positive. Step surfaces
// *ShapeError for mismatched or non-matrix tensors and *NumericalError
// when the nuclear oracle's power iteration does not converge; the
// latter carries the iteration count and final residual so callers can
// decide on a retry policy.
//
// Optimizers are not safe for concurrent use.
package optim
