// Package classifier computes loss values and weight gradients for linear
// classification objectives: multinomial softmax (cross-entropy) and
// multiclass SVM (hinge).
//
// All objectives share one contract:
//
//	loss, grad, err := classifier.SoftmaxLossVectorized(W, X, y, reg)
//
// where W is [classes, features], X is [features, samples] (one sample per
// column), y holds one class index per sample, and reg is the weight-decay
// strength. The returned gradient has the shape of W. Inputs are never
// mutated; every call allocates fresh results.
package classifier

import (
	"github.com/mehtadeepen/Image-Classification-in-ML/internal/backend/cpu"
	"github.com/mehtadeepen/Image-Classification-in-ML/internal/tensor"
)

// scores computes the raw class scores S = W·X with shape
// [classes, samples]. S[k][n] is the unnormalized score of class k for
// sample n. Callers own the result and may scribble over it as scratch.
func scores(w, x *tensor.Matrix) *tensor.Matrix {
	return cpu.MatMul(w, x)
}
