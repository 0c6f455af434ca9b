package classifier

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mehtadeepen/Image-Classification-in-ML/internal/backend/cpu"
	"github.com/mehtadeepen/Image-Classification-in-ML/internal/tensor"
)

// SoftmaxLossNaive computes cross-entropy loss and gradient with explicit
// per-sample loops.
//
// It exists as a correctness oracle for SoftmaxLossVectorized: both must
// agree to floating-point rounding. Use the vectorized form everywhere
// else; this one iterates classes × samples explicitly.
//
// Per sample, scores are shifted by their maximum before exponentiation
// (log-sum-exp trick) so the exponential never overflows. The gradient of
// the per-sample loss w.r.t. row j of W is p[j]·x, minus an extra x on the
// true-class row.
func SoftmaxLossNaive(w, x *tensor.Matrix, y []int, reg float64) (float64, *tensor.Matrix, error) {
	k, d, n, err := validateInputs(w, x, y, reg)
	if err != nil {
		return 0, nil, err
	}

	grad := tensor.Zeros(k, d)
	gradData := grad.Data()
	loss := 0.0

	s := make([]float64, k)
	for i := 0; i < n; i++ {
		// Score vector for sample i: s[c] = W[c,:] · X[:,i].
		for c := 0; c < k; c++ {
			sum := 0.0
			for j := 0; j < d; j++ {
				sum += w.At(c, j) * x.At(j, i)
			}
			s[c] = sum
		}

		// Shift so the highest score is 0; softmax is shift-invariant.
		maxScore := floats.Max(s)
		sumExp := 0.0
		for c := range s {
			s[c] = math.Exp(s[c] - maxScore)
			sumExp += s[c]
		}

		loss += -math.Log(s[y[i]] / sumExp)

		for c := 0; c < k; c++ {
			p := s[c] / sumExp
			for j := 0; j < d; j++ {
				gradData[c*d+j] += p * x.At(j, i)
			}
		}
		// True-class correction: the cross-entropy derivative w.r.t. the
		// correct logit carries an extra -1.
		for j := 0; j < d; j++ {
			gradData[y[i]*d+j] -= x.At(j, i)
		}
	}

	loss /= float64(n)
	loss += 0.5 * reg * cpu.SumSquares(w)

	cpu.Scale(grad, 1/float64(n))
	cpu.AddScaled(grad, reg, w)

	return loss, grad, nil
}

// SoftmaxLossVectorized computes cross-entropy loss and gradient with
// batched matrix operations. Numerically equivalent to SoftmaxLossNaive.
//
// The dominant cost is two dense multiplies: S = W·X and grad = P·Xᵀ,
// where P is the probability matrix with 1 subtracted at every
// (true class, sample) entry.
func SoftmaxLossVectorized(w, x *tensor.Matrix, y []int, reg float64) (float64, *tensor.Matrix, error) {
	k, _, n, err := validateInputs(w, x, y, reg)
	if err != nil {
		return 0, nil, err
	}

	s := scores(w, x) // [classes, samples], owned scratch
	sd := s.Data()

	// Per-column max shift. Each sample's scores are stabilized
	// independently so a batch with wildly different score scales still
	// keeps every exponent at or below zero.
	colMax := make([]float64, n)
	copy(colMax, sd[:n]) // row 0
	for c := 1; c < k; c++ {
		row := sd[c*n : (c+1)*n]
		for i, v := range row {
			if v > colMax[i] {
				colMax[i] = v
			}
		}
	}

	// Exponentiate in place and accumulate per-column partition sums.
	z := make([]float64, n)
	for c := 0; c < k; c++ {
		row := sd[c*n : (c+1)*n]
		for i := range row {
			e := math.Exp(row[i] - colMax[i])
			row[i] = e
			z[i] += e
		}
	}

	// Gather the true-class exponentials: loss_n = -log(E[y[n],n] / Z[n]).
	loss := 0.0
	for i, label := range y {
		loss += -math.Log(sd[label*n+i] / z[i])
	}
	loss /= float64(n)
	loss += 0.5 * reg * cpu.SumSquares(w)

	// Normalize to probabilities, then scatter the -1 true-class
	// correction before the gradient multiply.
	for c := 0; c < k; c++ {
		row := sd[c*n : (c+1)*n]
		for i := range row {
			row[i] /= z[i]
		}
	}
	for i, label := range y {
		sd[label*n+i] -= 1
	}

	grad := cpu.MatMulTransB(s, x) // P · Xᵀ -> [classes, features]
	cpu.Scale(grad, 1/float64(n))
	cpu.AddScaled(grad, reg, w)

	return loss, grad, nil
}
