// Copyright 2025 The SFW Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn exposes the trainable-parameter handle the optimizers
// consume. Models are built externally; they wrap each weight tensor in
// a Param and hand the collection to an optimizer.
package nn

import (
	"github.com/sfw-ml/sfw/internal/nn"
	"github.com/sfw-ml/sfw/internal/tensor"
)

// Param represents a trainable parameter: a named value tensor plus an
// externally-populated gradient.
type Param = nn.Param

// NewParam creates a trainable parameter wrapping an initialized tensor.
//
// Example:
//
//	w := tensor.Zeros(tensor.Shape{64, 32})
//	weight := nn.NewParam("fc1.weight", w)
func NewParam(name string, value *tensor.Tensor) *Param {
	return nn.NewParam(name, value)
}
