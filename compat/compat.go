package compat

import (
	"github.com/curvelab/curvefit/levmarq"
)

// Options is the historical option shape. Zero-valued fields mean "not
// supplied" and resolve to the canonical defaults; this matches the older
// API where every option was optional and there was no way to pass an
// explicit zero.
type Options struct {
	Damping            float64
	DampingStepDown    float64
	DampingStepUp      float64
	GradientDifference float64
	MinValues          []float64
	MaxValues          []float64
	InitialValues      []float64
	ParamCount         int
	MaxIterations      int
	ErrorTolerance     float64
	ErrorPropagation   int
}

// Result is the historical result shape: ParameterError doubled as the
// objective value and there was no separate residuals field.
type Result struct {
	ParameterValues []float64
	ParameterError  float64
	Iterations      int
}

// Translate maps a legacy option set onto the canonical levmarq.Options.
// It is a pure function: the input is never mutated and slices are shared,
// not copied, since levmarq treats them as read-only.
func Translate(legacy Options) levmarq.Options {
	o := levmarq.DefaultOptions()
	if legacy.Damping != 0 {
		o.Damping = legacy.Damping
	}
	if legacy.DampingStepDown != 0 {
		o.DampingDrop = legacy.DampingStepDown
	}
	if legacy.DampingStepUp != 0 {
		o.DampingBoost = legacy.DampingStepUp
	}
	if legacy.GradientDifference != 0 {
		o.GradientDifference = legacy.GradientDifference
	}
	if legacy.MaxIterations != 0 {
		o.MaxIterations = legacy.MaxIterations
	}
	if legacy.ErrorTolerance != 0 {
		o.ResidualEpsilon = legacy.ErrorTolerance
	}
	if legacy.ErrorPropagation != 0 {
		o.ErrorPropagation = legacy.ErrorPropagation
	}
	o.MinValues = legacy.MinValues
	o.MaxValues = legacy.MaxValues
	o.InitialValues = legacy.InitialValues
	o.ParamCount = legacy.ParamCount

	return o
}

// TranslateResult maps a canonical result back onto the legacy shape.
func TranslateResult(res levmarq.Result) Result {
	return Result{
		ParameterValues: res.ParameterValues,
		ParameterError:  res.ParameterError,
		Iterations:      res.Iterations,
	}
}

// Fit runs levmarq.Fit through the legacy option and result shapes. It adds
// no behavior of its own: Translate in, TranslateResult out.
func Fit(data levmarq.Dataset, model levmarq.Model, legacy Options) (Result, error) {
	o := Translate(legacy)
	res, err := levmarq.Fit(data, model, &o)
	if err != nil {
		return Result{}, err
	}

	return TranslateResult(res), nil
}
