// Package tensor provides the dense numeric arrays the optimizers work on.
//
// A Tensor is a shape plus a flat float64 buffer in row-major order. The
// optimizers only need shape introspection, direct element access and a
// bridge to gonum for the linear-algebra heavy paths, so that is all this
// package exposes.
package tensor

import "fmt"

// Tensor is a dense float64 tensor in row-major layout.
//
// The backing slice is owned by the tensor; Data returns it directly so
// callers can read and mutate elements in place without copies.
type Tensor struct {
	shape Shape
	data  []float64
}

// New creates a zero-filled tensor with the given shape.
func New(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Tensor{
		shape: shape.Clone(),
		data:  make([]float64, shape.NumElements()),
	}, nil
}

// Zeros creates a zero-filled tensor, panicking on an invalid shape.
//
// Intended for shapes that are known-good at the call site (e.g. cloning
// an existing parameter's shape).
func Zeros(shape Shape) *Tensor {
	t, err := New(shape)
	if err != nil {
		panic(err)
	}
	return t
}

// FromSlice creates a tensor that adopts the given data slice.
//
// The slice is used directly (not copied); its length must match the
// number of elements implied by the shape.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	return &Tensor{shape: shape.Clone(), data: data}, nil
}

// ZerosLike creates a zero-filled tensor with the same shape as t.
func ZerosLike(t *Tensor) *Tensor {
	return Zeros(t.shape)
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the backing slice. Mutations are visible to all holders
// of the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// At returns the element at the flat (row-major) index i.
func (t *Tensor) At(i int) float64 {
	return t.data[i]
}

// Set stores v at the flat (row-major) index i.
func (t *Tensor) Set(i int, v float64) {
	t.data[i] = v
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Tensor{shape: t.shape.Clone(), data: data}
}

// CopyFrom overwrites t's elements with src's. Shapes must match.
func (t *Tensor) CopyFrom(src *Tensor) error {
	if !t.shape.Equal(src.shape) {
		return fmt.Errorf("shape mismatch: %v vs %v", t.shape, src.shape)
	}
	copy(t.data, src.data)
	return nil
}
