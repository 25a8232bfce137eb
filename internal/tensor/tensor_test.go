package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestShape_NumElements(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"scalar", Shape{}, 1},
		{"vector", Shape{5}, 5},
		{"matrix", Shape{3, 4}, 12},
		{"3d", Shape{2, 3, 4}, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.NumElements())
		})
	}
}

func TestShape_Validate(t *testing.T) {
	assert.NoError(t, Shape{2, 3}.Validate())
	assert.Error(t, Shape{2, 0}.Validate())
	assert.Error(t, Shape{-1}.Validate())
}

func TestShape_EqualAndClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	assert.True(t, s.Equal(c))
	c[0] = 7
	assert.False(t, s.Equal(c), "clone must not alias the original")
	assert.False(t, s.Equal(Shape{2}))
}

func TestShape_IsMatrix(t *testing.T) {
	assert.True(t, Shape{2, 3}.IsMatrix())
	assert.False(t, Shape{6}.IsMatrix())
	assert.False(t, Shape{1, 2, 3}.IsMatrix())
}

func TestNew_RejectsInvalidShape(t *testing.T) {
	_, err := New(Shape{2, -1})
	require.Error(t, err)
}

func TestFromSlice_AdoptsData(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	ten, err := FromSlice(data, Shape{2, 2})
	require.NoError(t, err)

	// The slice is shared, not copied.
	data[0] = 9
	assert.Equal(t, 9.0, ten.At(0))
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	_, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2})
	require.Error(t, err)
}

func TestClone_IsDeep(t *testing.T) {
	ten, err := FromSlice([]float64{1, 2}, Shape{2})
	require.NoError(t, err)

	c := ten.Clone()
	c.Set(0, 5)
	assert.Equal(t, 1.0, ten.At(0))
}

func TestCopyFrom(t *testing.T) {
	dst := Zeros(Shape{3})
	src, err := FromSlice([]float64{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	require.NoError(t, dst.CopyFrom(src))
	assert.Equal(t, []float64{1, 2, 3}, dst.Data())

	bad := Zeros(Shape{2})
	assert.Error(t, dst.CopyFrom(bad))
}

func TestDense_SharesBacking(t *testing.T) {
	ten, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	d, err := ten.Dense()
	require.NoError(t, err)
	assert.Equal(t, 6.0, d.At(1, 2))

	d.Set(0, 0, 10)
	assert.Equal(t, 10.0, ten.At(0), "matrix view writes through to the tensor")
}

func TestDense_RejectsNonMatrix(t *testing.T) {
	_, err := Zeros(Shape{4}).Dense()
	require.Error(t, err)
}

func TestFromDense(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	ten, err := FromDense(m)
	require.NoError(t, err)
	assert.True(t, ten.Shape().Equal(Shape{2, 2}))
	assert.Equal(t, []float64{1, 2, 3, 4}, ten.Data())
}
