package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dense returns a gonum matrix view over a 2D tensor.
//
// The view shares the tensor's backing slice, so writes through the
// returned matrix are visible in the tensor and vice versa.
func (t *Tensor) Dense() (*mat.Dense, error) {
	if !t.shape.IsMatrix() {
		return nil, fmt.Errorf("tensor shape %v is not a matrix", t.shape)
	}
	return mat.NewDense(t.shape[0], t.shape[1], t.data), nil
}

// FromDense creates a tensor that adopts the backing data of m.
//
// m must not be a view with padding (RawMatrix().Stride must equal the
// column count); mat.NewDense-constructed matrices always satisfy this.
func FromDense(m *mat.Dense) (*Tensor, error) {
	raw := m.RawMatrix()
	if raw.Stride != raw.Cols {
		return nil, fmt.Errorf("matrix stride %d != cols %d: non-contiguous view", raw.Stride, raw.Cols)
	}
	return FromSlice(raw.Data, Shape{raw.Rows, raw.Cols})
}
