// Copyright 2025 The SFW Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense numeric arrays consumed by the
// optimizers: a shape plus a flat float64 buffer in row-major order,
// with a zero-copy bridge to gonum for linear-algebra work.
package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sfw-ml/sfw/internal/tensor"
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Tensor is a dense float64 tensor in row-major layout.
type Tensor = tensor.Tensor

// New creates a zero-filled tensor with the given shape.
func New(shape Shape) (*Tensor, error) {
	return tensor.New(shape)
}

// Zeros creates a zero-filled tensor, panicking on an invalid shape.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// ZerosLike creates a zero-filled tensor with the same shape as t.
func ZerosLike(t *Tensor) *Tensor {
	return tensor.ZerosLike(t)
}

// FromSlice creates a tensor that adopts the given data slice.
//
// Example:
//
//	w, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// FromDense creates a tensor that adopts the backing data of a gonum
// matrix.
func FromDense(m *mat.Dense) (*Tensor, error) {
	return tensor.FromDense(m)
}
