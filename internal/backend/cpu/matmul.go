// Package cpu implements dense matrix compute on CPU, backed by gonum.
package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/mehtadeepen/Image-Classification-in-ML/internal/tensor"
)

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
// Delegates to gonum's BLAS-backed Dense.Mul.
func MatMul(a, b *tensor.Matrix) *tensor.Matrix {
	m, k := a.Rows(), a.Cols()
	kAlt, n := b.Rows(), b.Cols()

	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	result := tensor.Zeros(m, n)

	// gonum Dense shares the row-major backing slices, so Mul writes
	// straight into the result matrix without an extra copy.
	ga := mat.NewDense(m, k, a.Data())
	gb := mat.NewDense(kAlt, n, b.Data())
	gc := mat.NewDense(m, n, result.Data())
	gc.Mul(ga, gb)

	return result
}

// MatMulTransB performs a @ bᵀ: (M, K) @ (N, K)ᵀ -> (M, N).
// gonum handles the transposed view without materializing bᵀ.
func MatMulTransB(a, b *tensor.Matrix) *tensor.Matrix {
	m, k := a.Rows(), a.Cols()
	n, kAlt := b.Rows(), b.Cols()

	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]ᵀ", m, k, n, kAlt))
	}

	result := tensor.Zeros(m, n)

	ga := mat.NewDense(m, k, a.Data())
	gb := mat.NewDense(n, kAlt, b.Data())
	gc := mat.NewDense(m, n, result.Data())
	gc.Mul(ga, gb.T())

	return result
}

// Transpose returns aᵀ as a new matrix.
func Transpose(a *tensor.Matrix) *tensor.Matrix {
	rows, cols := a.Rows(), a.Cols()
	result := tensor.Zeros(cols, rows)

	src := a.Data()
	dst := result.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = src[i*cols+j]
		}
	}
	return result
}
