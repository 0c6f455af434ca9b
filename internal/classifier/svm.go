package classifier

import (
	"github.com/mehtadeepen/Image-Classification-in-ML/internal/backend/cpu"
	"github.com/mehtadeepen/Image-Classification-in-ML/internal/tensor"
)

// svmDelta is the fixed hinge margin.
const svmDelta = 1.0

// SVMLossVectorized computes multiclass SVM (hinge) loss and gradient
// with batched matrix operations.
//
// A sample is penalized by every incorrect class whose score comes within
// svmDelta of the correct-class score. The gradient indicator carries 1 on
// each active incorrect-class row and -numActive on the true-class row:
// raising the correct score by ε lowers every active margin by ε.
func SVMLossVectorized(w, x *tensor.Matrix, y []int, reg float64) (float64, *tensor.Matrix, error) {
	k, _, n, err := validateInputs(w, x, y, reg)
	if err != nil {
		return 0, nil, err
	}

	s := scores(w, x) // [classes, samples], owned scratch
	sd := s.Data()

	// Gather correct-class scores.
	correct := make([]float64, n)
	for i, label := range y {
		correct[i] = sd[label*n+i]
	}

	// Hinge margins, reusing the score matrix as scratch. True-class
	// entries never contribute; they are zeroed by the numPos pass below.
	loss := 0.0
	numPos := make([]int, n)
	for c := 0; c < k; c++ {
		row := sd[c*n : (c+1)*n]
		for i := range row {
			if c == y[i] {
				row[i] = 0
				continue
			}
			m := row[i] - correct[i] + svmDelta
			if m > 0 {
				loss += m
				row[i] = 1 // indicator for the gradient multiply
				numPos[i]++
			} else {
				row[i] = 0
			}
		}
	}
	loss /= float64(n)
	loss += 0.5 * reg * cpu.SumSquares(w)

	// True-class rows accumulate the negative count of active margins.
	for i, label := range y {
		sd[label*n+i] = -float64(numPos[i])
	}

	grad := cpu.MatMulTransB(s, x) // I · Xᵀ -> [classes, features]
	cpu.Scale(grad, 1/float64(n))
	cpu.AddScaled(grad, reg, w)

	return loss, grad, nil
}
