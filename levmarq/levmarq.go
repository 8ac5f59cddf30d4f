package levmarq

import (
	"fmt"
	"math"
	"math/rand"
)

// convergenceWindow is the number of recent objective deltas that must all
// fall below ResidualEpsilon before the fit is declared converged.
const convergenceWindow = 10

// defaultSeed seeds the per-call random source when Options.Rand is nil.
const defaultSeed = 1

// Fit finds parameter values minimizing the sum of squared residuals of
// model against data, starting from opts.InitialValues (or an all-ones
// vector of length opts.ParamCount).
//
// Callers build opts from DefaultOptions() and override fields; at minimum
// InitialValues or ParamCount must be set, since parameter arity cannot be
// inferred from a Go closure.
//
// Returns ErrInvalidOption or ErrInvalidData before any numeric work when
// preconditions fail, and ErrNumericalFailure when the model evaluates to
// a non-finite value or the damped normal equations cannot be solved.
// Reaching MaxIterations without convergence is not an error.
func Fit(data Dataset, model Model, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateOptions(&o); err != nil {
		return Result{}, err
	}
	if err := validateData(data); err != nil {
		return Result{}, err
	}
	if model == nil {
		return Result{}, fmt.Errorf("%w: model function is nil", ErrInvalidOption)
	}
	if len(data.XError) > 0 && o.ErrorPropagation < 2 {
		return Result{}, fmt.Errorf("%w: ErrorPropagation must be at least 2 when XError is supplied, got %d", ErrInvalidOption, o.ErrorPropagation)
	}

	params := startVector(&o)
	lower, upper, err := resolveBounds(&o, len(params))
	if err != nil {
		return Result{}, err
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(defaultSeed))
	}
	if o.Concurrency < 1 {
		o.Concurrency = 1
	}

	ev := newEvaluator(data, model, &o)

	_, objective, err := ev.evaluate(params)
	if err != nil {
		return Result{}, err
	}

	// Recent |objective delta| history; +Inf marks not-yet-filled slots so
	// the fit can never converge before the window holds real deltas.
	var window [convergenceWindow]float64
	for i := range window {
		window[i] = math.Inf(1)
	}

	damping := o.Damping
	converged := false
	iter := 0
	for ; iter < o.MaxIterations && !converged; iter++ {
		candidate, err := computeStep(data, params, damping, &o, model)
		if err != nil {
			return Result{}, err
		}
		clip(candidate, lower, upper)

		_, next, err := ev.evaluate(candidate)
		if err != nil {
			return Result{}, err
		}

		if next < objective {
			params = candidate
			damping *= o.DampingDrop
		} else {
			damping *= o.DampingBoost
		}
		damping = math.Min(math.Max(damping, o.MinDamping), o.MaxDamping)

		// The delta of the candidate is recorded whether or not it was
		// accepted: a rejected step with a large delta keeps the window
		// open and prevents premature convergence.
		delta := math.Abs(objective - next)
		// A stalled fit would otherwise satisfy a zero threshold: once the
		// solved update underflows to a no-op, the rejected candidate scores
		// exactly the current objective and pushes a zero delta. A zero
		// threshold demands actual progress, so no-change candidates are
		// recorded as non-convergent.
		if delta == 0 && o.ResidualEpsilon == 0 {
			delta = math.Inf(1)
		}
		window[iter%convergenceWindow] = delta
		if next < objective {
			objective = next
		}
		converged = windowMax(window) <= o.ResidualEpsilon
	}

	// Recompute both sums at the final accepted parameters so the reported
	// values are consistent with ParameterValues rather than cached.
	raw, weighted, err := ev.evaluate(params)
	if err != nil {
		return Result{}, err
	}

	return Result{
		ParameterValues: params,
		Residuals:       raw,
		Iterations:      iter,
		ParameterError:  weighted,
	}, nil
}

// validateOptions rejects malformed configuration before any numeric work.
func validateOptions(o *Options) error {
	switch {
	case o.Damping <= 0:
		return fmt.Errorf("%w: Damping must be positive, got %v", ErrInvalidOption, o.Damping)
	case o.DampingDrop <= 0 || o.DampingDrop >= 1:
		return fmt.Errorf("%w: DampingDrop must be in (0,1), got %v", ErrInvalidOption, o.DampingDrop)
	case o.DampingBoost <= 1:
		return fmt.Errorf("%w: DampingBoost must be greater than 1, got %v", ErrInvalidOption, o.DampingBoost)
	case o.GradientDifference <= 0:
		return fmt.Errorf("%w: GradientDifference must be positive, got %v", ErrInvalidOption, o.GradientDifference)
	case o.MaxIterations <= 0:
		return fmt.Errorf("%w: MaxIterations must be positive, got %d", ErrInvalidOption, o.MaxIterations)
	case o.ResidualEpsilon < 0:
		return fmt.Errorf("%w: ResidualEpsilon must be non-negative, got %v", ErrInvalidOption, o.ResidualEpsilon)
	case len(o.InitialValues) == 0 && o.ParamCount <= 0:
		return fmt.Errorf("%w: either InitialValues or a positive ParamCount is required", ErrInvalidOption)
	case len(o.MinValues) > 0 && len(o.MaxValues) > 0 && len(o.MinValues) != len(o.MaxValues):
		return fmt.Errorf("%w: MinValues and MaxValues lengths differ (%d vs %d)", ErrInvalidOption, len(o.MinValues), len(o.MaxValues))
	}

	return nil
}

// validateData rejects malformed datasets before any numeric work.
func validateData(data Dataset) error {
	switch {
	case len(data.X) == 0 || len(data.Y) == 0:
		return fmt.Errorf("%w: x and y must be non-empty", ErrInvalidData)
	case len(data.X) != len(data.Y):
		return fmt.Errorf("%w: x and y lengths differ (%d vs %d)", ErrInvalidData, len(data.X), len(data.Y))
	case len(data.X) < 2:
		return fmt.Errorf("%w: at least two points are required, got %d", ErrInvalidData, len(data.X))
	}
	if err := validateErrorSlice("XError", data.XError, len(data.X)); err != nil {
		return err
	}

	return validateErrorSlice("YError", data.YError, len(data.X))
}

// validateErrorSlice checks an optional uncertainty slice for shape and sign.
func validateErrorSlice(name string, errs []float64, n int) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) != n {
		return fmt.Errorf("%w: %s length %d does not match data length %d", ErrInvalidData, name, len(errs), n)
	}
	for i, e := range errs {
		if e < 0 {
			return fmt.Errorf("%w: %s[%d] is negative (%v)", ErrInvalidData, name, i, e)
		}
	}

	return nil
}

// startVector builds the initial parameter vector: a copy of InitialValues
// when supplied, otherwise all ones of length ParamCount.
func startVector(o *Options) []float64 {
	if len(o.InitialValues) > 0 {
		params := make([]float64, len(o.InitialValues))
		copy(params, o.InitialValues)

		return params
	}

	params := make([]float64, o.ParamCount)
	for i := range params {
		params[i] = 1
	}

	return params
}

// resolveBounds expands MinValues/MaxValues to full per-component bound
// vectors, defaulting to the representable float64 range.
func resolveBounds(o *Options, parLen int) (lower, upper []float64, err error) {
	if len(o.MinValues) > 0 && len(o.MinValues) != parLen {
		return nil, nil, fmt.Errorf("%w: MinValues length %d does not match parameter count %d", ErrInvalidOption, len(o.MinValues), parLen)
	}
	if len(o.MaxValues) > 0 && len(o.MaxValues) != parLen {
		return nil, nil, fmt.Errorf("%w: MaxValues length %d does not match parameter count %d", ErrInvalidOption, len(o.MaxValues), parLen)
	}

	lower = make([]float64, parLen)
	upper = make([]float64, parLen)
	for k := 0; k < parLen; k++ {
		lower[k] = -math.MaxFloat64
		upper[k] = math.MaxFloat64
		if len(o.MinValues) > 0 {
			lower[k] = o.MinValues[k]
		}
		if len(o.MaxValues) > 0 {
			upper[k] = o.MaxValues[k]
		}
	}

	return lower, upper, nil
}

// clip forces every component of v into [lower[k], upper[k]] in place.
func clip(v, lower, upper []float64) {
	for k := range v {
		v[k] = math.Min(math.Max(v[k], lower[k]), upper[k])
	}
}

// windowMax returns the largest delta in the convergence window.
func windowMax(w [convergenceWindow]float64) float64 {
	m := w[0]
	for _, d := range w[1:] {
		if d > m {
			m = d
		}
	}

	return m
}
