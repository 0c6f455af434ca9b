// Package main provides the linearclf CLI: verification runs for the
// linear classifier loss kernels.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/mehtadeepen/Image-Classification-in-ML/classifier"
	"github.com/mehtadeepen/Image-Classification-in-ML/internal/config"
	"github.com/mehtadeepen/Image-Classification-in-ML/internal/gradcheck"
	"github.com/mehtadeepen/Image-Classification-in-ML/internal/tensor"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("linearclf %s\n", version)
	case "check":
		fs := flag.NewFlagSet("check", flag.ExitOnError)
		cfgPath := fs.String("config", "", "path to YAML config (optional)")
		if err := fs.Parse(os.Args[2:]); err != nil {
			os.Exit(2)
		}

		cfg := config.Default()
		if *cfgPath != "" {
			loaded, err := config.Load(*cfgPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "linearclf: %v\n", err)
				os.Exit(1)
			}
			cfg = loaded
		}

		if !runChecks(cfg) {
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("linearclf - linear classifier loss kernel checks")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  version              Show version")
	fmt.Println("  check [-config f]    Verify kernels on random data")
}

// runChecks exercises every objective on random data and reports whether
// the naive/vectorized softmax forms agree and both analytic gradients
// match central-difference estimates.
func runChecks(cfg *config.Config) bool {
	rng := rand.New(rand.NewSource(cfg.Seed))

	w := tensor.Randn(cfg.Classes, cfg.Features, rng)
	x := tensor.Randn(cfg.Features, cfg.Samples, rng)
	y := make([]int, cfg.Samples)
	for i := range y {
		y[i] = rng.Intn(cfg.Classes)
	}

	fmt.Printf("check: classes=%d features=%d samples=%d reg=%g seed=%d\n",
		cfg.Classes, cfg.Features, cfg.Samples, cfg.Reg, cfg.Seed)

	ok := true

	naiveLoss, naiveGrad, err := classifier.SoftmaxLossNaive(w, x, y, cfg.Reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "linearclf: %v\n", err)
		return false
	}
	vecLoss, vecGrad, err := classifier.SoftmaxLossVectorized(w, x, y, cfg.Reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "linearclf: %v\n", err)
		return false
	}

	lossDiff := relDiff(naiveLoss, vecLoss)
	gradDiff := maxAbsDiff(naiveGrad, vecGrad)
	ok = report("softmax naive vs vectorized loss", lossDiff, 1e-7) && ok
	ok = report("softmax naive vs vectorized grad", gradDiff, 1e-6) && ok

	softmax := func(m *tensor.Matrix) float64 {
		loss, _, ferr := classifier.SoftmaxLossVectorized(m, x, y, cfg.Reg)
		if ferr != nil {
			panic(ferr)
		}
		return loss
	}
	hinge := func(m *tensor.Matrix) float64 {
		loss, _, ferr := classifier.SVMLossVectorized(m, x, y, cfg.Reg)
		if ferr != nil {
			panic(ferr)
		}
		return loss
	}

	d := gradcheck.RandomDirection(w, rng)
	numeric := gradcheck.Directional(softmax, w, d, 1e-6)
	analytic := gradcheck.Dot(vecGrad, d)
	ok = report("softmax gradient check", relDiff(numeric, analytic), cfg.Tolerance) && ok

	hingeLoss, hingeGrad, err := classifier.SVMLossVectorized(w, x, y, cfg.Reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "linearclf: %v\n", err)
		return false
	}
	fmt.Printf("  softmax loss %.6f, hinge loss %.6f\n", vecLoss, hingeLoss)

	numeric = gradcheck.Directional(hinge, w, d, 1e-6)
	analytic = gradcheck.Dot(hingeGrad, d)
	ok = report("hinge gradient check", relDiff(numeric, analytic), cfg.Tolerance) && ok

	if ok {
		fmt.Println("check: PASS")
	} else {
		fmt.Println("check: FAIL")
	}
	return ok
}

func report(name string, diff, tol float64) bool {
	status := "ok"
	if diff >= tol {
		status = "FAIL"
	}
	fmt.Printf("  %-36s diff=%.3e tol=%.0e %s\n", name, diff, tol, status)
	return diff < tol
}

func relDiff(a, b float64) float64 {
	denom := math.Max(math.Abs(a), math.Abs(b))
	if denom == 0 {
		return 0
	}
	return math.Abs(a-b) / denom
}

func maxAbsDiff(a, b *tensor.Matrix) float64 {
	ad, bd := a.Data(), b.Data()
	maxDiff := 0.0
	for i := range ad {
		if d := math.Abs(ad[i] - bd[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}
