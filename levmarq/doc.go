// Package levmarq fits parameterized models to observed data by damped
// Gauss-Newton iteration (Levenberg-Marquardt), minimizing the sum of
// squared residuals between model predictions and observations.
//
// 🚀 What is Levenberg-Marquardt?
//
//	A trust-region blend of Gauss-Newton and gradient descent. Each
//	iteration linearizes the model around the current parameters via a
//	finite-difference Jacobian J, then solves the damped normal equations
//
//	    (JᵗJ + λI)·Δ = Jᵗr
//
//	for a candidate update Δ. Small λ behaves like Gauss-Newton (fast,
//	less stable); large λ behaves like small-step gradient descent
//	(slow, robust). λ shrinks after every accepted step and grows after
//	every rejected one.
//
// Algorithm outline (Fit):
//  1. Validate options and data; build the start vector (InitialValues,
//     or all ones of length ParamCount).
//  2. Per iteration: compute a candidate via the step solver, clip it
//     into [MinValues, MaxValues], score it, accept on strict
//     improvement, adapt and clamp λ.
//  3. Record |objective delta| in a ten-slot sliding window; converge
//     once every slot is ≤ ResidualEpsilon — a single stagnant step
//     inside an improving trajectory does not stop the fit. A zero
//     threshold demands actual progress: no-change candidates never
//     count toward it, so a stalled fit spends its full budget.
//  4. Stop at convergence or MaxIterations; recompute the raw and the
//     uncertainty-weighted sums of squares at the final parameters.
//
// Uncertainty weighting:
//
//	When the dataset carries XError/YError, each squared residual is
//	divided by an effective per-point variance: the sample variance of
//	the model output over ErrorPropagation Gaussian perturbations of xᵢ
//	(scale XErrorᵢ), plus YErrorᵢ². Result.ParameterError reports the
//	weighted sum; Result.Residuals always reports the raw sum.
//
// Complexity (per iteration):
//
//	Time   = O(n·p) model evaluations + O(n·p² + p³) for the solve,
//	         where n = points, p = parameters
//	Memory = O(n·p)
//
// Errors (sentinel):
//
//	– ErrInvalidOption    malformed configuration (non-positive damping, …)
//	– ErrInvalidData      malformed dataset (length mismatch, < 2 points, …)
//	– ErrNumericalFailure non-finite model output or unsolvable system;
//	                      fatal, never retried
//
// Slow convergence is NOT an error: hitting MaxIterations returns the best
// parameters found, with Iterations == MaxIterations.
//
// ⚙️ Usage:
//
//	import "github.com/curvelab/curvefit/levmarq"
//
//	data := levmarq.Dataset{X: xs, Y: ys}
//	model := func(p []float64) func(x float64) float64 {
//	    return func(x float64) float64 { return p[0] * math.Sin(p[1]*x) }
//	}
//
//	opts := levmarq.DefaultOptions()
//	opts.InitialValues = []float64{1, 1}
//
//	res, err := levmarq.Fit(data, model, &opts)
//	if err != nil {
//	    // handle ErrInvalidOption / ErrInvalidData / ErrNumericalFailure
//	}
//	fmt.Println(res.ParameterValues, res.Residuals)
//
// See examples in example_test.go for bounded and weighted fits.
package levmarq
