package levmarq

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// computeStep linearizes the model around params with a finite-difference
// Jacobian and solves the damped normal equations
//
//	(JᵗJ + damping·I)·Δ = Jᵗr
//
// for a candidate update, returning params + Δ (not yet bound-clipped).
// The left-hand side is symmetric positive (semi-)definite, so a Cholesky
// factorization is tried first; a dense pivoted solve is the fallback. An
// unsolvable system or a non-finite Δ is ErrNumericalFailure.
func computeStep(data Dataset, params []float64, damping float64, o *Options, model Model) ([]float64, error) {
	n := len(data.X)
	p := len(params)

	base := model(params)
	baseOut := make([]float64, n)
	for i, x := range data.X {
		baseOut[i] = base(x)
	}

	residuals := mat.NewVecDense(n, nil)
	for i := range data.X {
		residuals.SetVec(i, data.Y[i]-baseOut[i])
	}

	jac := jacobian(data, params, baseOut, o, model)

	jt := mat.DenseCopyOf(jac.T())
	var lhs mat.SymDense
	lhs.SymOuterK(1, jt)
	for k := 0; k < p; k++ {
		lhs.SetSym(k, k, lhs.At(k, k)+damping)
	}
	rhs := mat.NewVecDense(p, nil)
	rhs.MulVec(jt, residuals)

	step := mat.NewVecDense(p, nil)
	var chol mat.Cholesky
	solved := false
	if chol.Factorize(&lhs) {
		solved = chol.SolveVecTo(step, rhs) == nil
	}
	if !solved {
		if err := step.SolveVec(&lhs, rhs); err != nil {
			// A finite-condition warning still carries a usable solution;
			// the accept/reject loop will discard a bad step on its own.
			if c, ok := err.(mat.Condition); !ok || math.IsInf(float64(c), 0) {
				return nil, fmt.Errorf("%w: singular normal equations at parameters %v: %v", ErrNumericalFailure, params, err)
			}
		}
	}

	candidate := make([]float64, p)
	for k := 0; k < p; k++ {
		d := step.AtVec(k)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("%w: non-finite step component %d at parameters %v", ErrNumericalFailure, k, params)
		}
		candidate[k] = params[k] + d
	}

	return candidate, nil
}

// jacobian estimates ∂f(xᵢ)/∂θₖ for every point/parameter pair. Columns
// are independent: each probe perturbs a single parameter, so they may be
// filled in parallel with identical numerical results.
func jacobian(data Dataset, params, baseOut []float64, o *Options, model Model) *mat.Dense {
	n := len(data.X)
	p := len(params)
	jac := mat.NewDense(n, p, nil)

	fill := func(k int) {
		delta := o.GradientDifference
		forward := model(perturb(params, k, delta))
		if o.CentralDifference {
			backward := model(perturb(params, k, -delta))
			for i, x := range data.X {
				jac.Set(i, k, (forward(x)-backward(x))/(2*delta))
			}

			return
		}
		for i, x := range data.X {
			jac.Set(i, k, (forward(x)-baseOut[i])/delta)
		}
	}

	if o.Concurrency > 1 {
		var g errgroup.Group
		g.SetLimit(o.Concurrency)
		for k := 0; k < p; k++ {
			k := k
			g.Go(func() error {
				fill(k)

				return nil
			})
		}
		// fill never fails; Wait only synchronizes the column writers.
		_ = g.Wait()
	} else {
		for k := 0; k < p; k++ {
			fill(k)
		}
	}

	return jac
}

// perturb returns a copy of params with component k shifted by delta.
func perturb(params []float64, k int, delta float64) []float64 {
	bumped := make([]float64, len(params))
	copy(bumped, params)
	bumped[k] += delta

	return bumped
}
