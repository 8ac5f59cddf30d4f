// Package levmarq defines the data types, configuration options and
// sentinel errors for Levenberg-Marquardt curve fitting.
package levmarq

import (
	"errors"
	"math"
	"math/rand"
)

// Model maps a parameter vector to a univariate function f(x).
//
// A Model is treated as an opaque capability: the optimizer only ever
// evaluates it, never inspects it. The outer call may be arbitrarily
// expensive (it is invoked once per objective evaluation and once per
// Jacobian probe); the returned closure is then called once per data point.
//
// Models must be pure: the same parameters and x must always produce the
// same output, and evaluation must not mutate the parameter slice.
type Model func(params []float64) func(x float64) float64

// Dataset holds the observed points to fit against.
//
// Fields:
//   - X, Y           — observed abscissae and ordinates; equal length ≥ 2.
//   - XError, YError — optional per-point uncertainties; when present they
//     must match len(X) and be non-negative. Supplying either switches the
//     optimizer's objective to uncertainty-weighted squared residuals.
type Dataset struct {
	X      []float64
	Y      []float64
	XError []float64
	YError []float64
}

// Sentinel errors returned by Fit and its collaborators.
var (
	// ErrInvalidOption indicates malformed configuration: non-positive
	// damping, an out-of-range damping factor, mismatched bound lengths,
	// or a missing parameter count. Detected before any numeric work.
	ErrInvalidOption = errors.New("levmarq: invalid option")

	// ErrInvalidData indicates a malformed dataset: missing or unequal
	// x/y arrays, fewer than two points, or ill-shaped error arrays.
	// Detected before any numeric work.
	ErrInvalidData = errors.New("levmarq: invalid data")

	// ErrNumericalFailure indicates the model evaluated to a non-finite
	// value, or the damped normal equations could not be solved. Fatal:
	// the fit is aborted, not retried at different damping.
	ErrNumericalFailure = errors.New("levmarq: numerical failure")
)

// Result is the immutable outcome of one fit.
//
// Fields:
//   - ParameterValues — the final parameter vector.
//   - Residuals       — raw sum of squared residuals at ParameterValues,
//     recomputed once at exit so it is always consistent with the vector.
//   - Iterations      — iterations actually performed (≤ MaxIterations).
//   - ParameterError  — uncertainty-weighted sum of squared residuals at
//     ParameterValues; equal to Residuals when the dataset carries no
//     XError/YError information.
type Result struct {
	ParameterValues []float64
	Residuals       float64
	Iterations      int
	ParameterError  float64
}

// Options configures one call to Fit. Resolve a baseline with
// DefaultOptions and override individual fields; options are read once at
// call entry and never mutated.
//
// Fields:
//   - Damping            — initial trust-region damping λ; must be > 0.
//   - DampingDrop        — multiplicative shrink on accepted steps; (0,1).
//   - DampingBoost       — multiplicative growth on rejected steps; > 1.
//   - MinDamping         — lower clamp on λ.
//   - MaxDamping         — upper clamp on λ.
//   - GradientDifference — finite-difference perturbation size; > 0.
//   - CentralDifference  — probe both sides of each parameter (one extra
//     model evaluation per parameter, better conditioning on stiff models).
//   - MinValues          — componentwise lower parameter bounds; defaults
//     to the most negative representable value per component.
//   - MaxValues          — componentwise upper parameter bounds; defaults
//     to the largest representable value per component.
//   - InitialValues      — starting parameter vector; copied, never mutated.
//   - ParamCount         — parameter count used to build the default
//     all-ones start vector when InitialValues is empty. One of the two
//     must be supplied.
//   - MaxIterations      — hard iteration cap; > 0. Hitting the cap is not
//     an error.
//   - ResidualEpsilon    — convergence threshold: the fit stops once the
//     last ten objective deltas are all ≤ this value.
//   - ErrorPropagation   — samples per point used to estimate output
//     uncertainty from XError; ≥ 2 whenever XError is supplied.
//   - Concurrency        — Jacobian columns evaluated in parallel; values
//     ≤ 1 mean sequential. Results are identical either way.
//   - Rand               — random source for error-propagation sampling.
//     Nil gets a deterministic per-call source, so concurrent fits never
//     share hidden state.
type Options struct {
	Damping            float64
	DampingDrop        float64
	DampingBoost       float64
	MinDamping         float64
	MaxDamping         float64
	GradientDifference float64
	CentralDifference  bool
	MinValues          []float64
	MaxValues          []float64
	InitialValues      []float64
	ParamCount         int
	MaxIterations      int
	ResidualEpsilon    float64
	ErrorPropagation   int
	Concurrency        int
	Rand               *rand.Rand
}

// maxSafeDamping is the largest integer magnitude exactly representable
// in a float64, used as the default upper damping clamp.
const maxSafeDamping = float64(1<<53 - 1)

// DefaultOptions returns the canonical baseline configuration.
func DefaultOptions() Options {
	return Options{
		Damping:            0.1,
		DampingDrop:        0.1,
		DampingBoost:       1.5,
		MinDamping:         math.SmallestNonzeroFloat64,
		MaxDamping:         maxSafeDamping,
		GradientDifference: 1e-6,
		MaxIterations:      100,
		ResidualEpsilon:    1e-6,
		ErrorPropagation:   50,
		Concurrency:        1,
	}
}
