package tensor

import (
	"fmt"
	"math/rand"
)

// Matrix is a dense 2D float64 matrix in row-major order.
//
// Weights are stored as [classes, features] and batches as
// [features, samples], matching the layout the classifier
// objectives operate on.
type Matrix struct {
	shape Shape
	data  []float64
}

// NewMatrix creates a zero-initialized matrix with the given dimensions.
func NewMatrix(rows, cols int) (*Matrix, error) {
	shape := Shape{rows, cols}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Matrix{
		shape: shape,
		data:  make([]float64, shape.NumElements()),
	}, nil
}

// FromSlice creates a matrix from a row-major slice.
// The slice is copied; the matrix does not alias the caller's data.
func FromSlice(data []float64, rows, cols int) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != m.shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape [%d, %d]", len(data), rows, cols)
	}
	copy(m.data, data)
	return m, nil
}

// Zeros creates a zero matrix.
// Panics on invalid dimensions (programmer error).
func Zeros(rows, cols int) *Matrix {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return m
}

// Randn creates a matrix filled with draws from N(0, 1).
// Uses math/rand (not crypto/rand) - appropriate for ML/statistical purposes.
func Randn(rows, cols int, rng *rand.Rand) *Matrix {
	m := Zeros(rows, cols)
	for i := range m.data {
		m.data[i] = rng.NormFloat64()
	}
	return m
}

// Shape returns the matrix dimensions.
func (m *Matrix) Shape() Shape {
	return m.shape
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.shape[0]
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.shape[1]
}

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) float64 {
	return m.data[row*m.shape[1]+col]
}

// Set stores v at (row, col).
func (m *Matrix) Set(row, col int, v float64) {
	m.data[row*m.shape[1]+col] = v
}

// Data returns the underlying row-major slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (m *Matrix) Data() []float64 {
	return m.data
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	c := Zeros(m.shape[0], m.shape[1])
	copy(c.data, m.data)
	return c
}
