// Copyright 2026 Image-Classification-in-ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package classifier is the public API for linear classification loss
// kernels: multinomial softmax (cross-entropy) and multiclass SVM (hinge)
// objectives over dense float64 matrices.
//
// Every objective shares the same contract:
//
//	loss, grad, err := classifier.SoftmaxLossVectorized(W, X, y, reg)
//
//   - W: [classes, features] weight matrix, one decision boundary per row
//   - X: [features, samples] batch, one sample per column
//   - y: one class index per sample, each in [0, classes)
//   - reg: non-negative weight-decay strength
//
// The returned gradient has the shape of W. Inputs are read-only; results
// are freshly allocated on every call. An outer training loop owns the
// weight update.
package classifier

import (
	"math/rand"

	internal "github.com/mehtadeepen/Image-Classification-in-ML/internal/classifier"
	"github.com/mehtadeepen/Image-Classification-in-ML/internal/tensor"
)

// Matrix is a dense 2D float64 matrix in row-major order.
type Matrix = tensor.Matrix

// Shape represents matrix dimensions.
type Shape = tensor.Shape

// Precondition errors. Match with errors.Is.
var (
	ErrShapeMismatch = internal.ErrShapeMismatch
	ErrInvalidLabel  = internal.ErrInvalidLabel
	ErrNegativeReg   = internal.ErrNegativeReg
)

// NewMatrix creates a zero-initialized matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	return tensor.NewMatrix(rows, cols)
}

// FromSlice creates a matrix from a row-major slice (copied).
func FromSlice(data []float64, rows, cols int) (*Matrix, error) {
	return tensor.FromSlice(data, rows, cols)
}

// Randn creates a matrix of N(0, 1) draws.
func Randn(rows, cols int, rng *rand.Rand) *Matrix {
	return tensor.Randn(rows, cols, rng)
}

// SoftmaxLossNaive computes cross-entropy loss and gradient with explicit
// per-sample loops. It is the correctness oracle for the vectorized form;
// prefer SoftmaxLossVectorized.
func SoftmaxLossNaive(w, x *Matrix, y []int, reg float64) (float64, *Matrix, error) {
	return internal.SoftmaxLossNaive(w, x, y, reg)
}

// SoftmaxLossVectorized computes cross-entropy loss and gradient with
// batched matrix operations.
func SoftmaxLossVectorized(w, x *Matrix, y []int, reg float64) (float64, *Matrix, error) {
	return internal.SoftmaxLossVectorized(w, x, y, reg)
}

// SVMLossVectorized computes multiclass hinge loss (margin 1.0) and
// gradient with batched matrix operations.
func SVMLossVectorized(w, x *Matrix, y []int, reg float64) (float64, *Matrix, error) {
	return internal.SVMLossVectorized(w, x, y, reg)
}
