package compat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curvelab/curvefit/compat"
	"github.com/curvelab/curvefit/levmarq"
)

// TestTranslate_ZeroValuesAreDefaults verifies that an empty legacy option
// set resolves to the canonical defaults.
func TestTranslate_ZeroValuesAreDefaults(t *testing.T) {
	got := compat.Translate(compat.Options{})
	assert.Equal(t, levmarq.DefaultOptions(), got)
}

// TestTranslate_FieldMapping verifies each renamed field lands on its
// canonical counterpart.
func TestTranslate_FieldMapping(t *testing.T) {
	legacy := compat.Options{
		Damping:            0.01,
		DampingStepDown:    0.2,
		DampingStepUp:      3,
		GradientDifference: 1e-4,
		MinValues:          []float64{0, 0},
		MaxValues:          []float64{5, 5},
		InitialValues:      []float64{1, 2},
		MaxIterations:      42,
		ErrorTolerance:     1e-3,
		ErrorPropagation:   10,
	}

	got := compat.Translate(legacy)
	assert.Equal(t, 0.01, got.Damping)
	assert.Equal(t, 0.2, got.DampingDrop)
	assert.Equal(t, 3.0, got.DampingBoost)
	assert.Equal(t, 1e-4, got.GradientDifference)
	assert.Equal(t, legacy.MinValues, got.MinValues)
	assert.Equal(t, legacy.MaxValues, got.MaxValues)
	assert.Equal(t, legacy.InitialValues, got.InitialValues)
	assert.Equal(t, 42, got.MaxIterations)
	assert.Equal(t, 1e-3, got.ResidualEpsilon)
	assert.Equal(t, 10, got.ErrorPropagation)
}

// TestTranslateResult verifies the result field renaming.
func TestTranslateResult(t *testing.T) {
	res := levmarq.Result{
		ParameterValues: []float64{1, 2},
		Residuals:       0.5,
		Iterations:      7,
		ParameterError:  0.25,
	}

	got := compat.TranslateResult(res)
	assert.Equal(t, res.ParameterValues, got.ParameterValues)
	assert.Equal(t, res.ParameterError, got.ParameterError)
	assert.Equal(t, res.Iterations, got.Iterations)
}

// TestFit_LegacyShape runs a whole fit through the boundary adapter.
func TestFit_LegacyShape(t *testing.T) {
	data := levmarq.Dataset{
		X: []float64{0, 1, 2, 3, 4, 5},
		Y: []float64{1, 3, 5, 7, 9, 11}, // y = 1 + 2x
	}
	line := func(p []float64) func(float64) float64 {
		return func(x float64) float64 { return p[0] + p[1]*x }
	}

	res, err := compat.Fit(data, line, compat.Options{InitialValues: []float64{0, 0}})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.ParameterValues[0], 1e-3)
	assert.InDelta(t, 2.0, res.ParameterValues[1], 1e-3)
	assert.Greater(t, res.Iterations, 0)
	assert.Less(t, res.ParameterError, 1e-6)
}

// TestFit_LegacyErrorsPassThrough verifies that canonical sentinel errors
// survive the boundary unchanged.
func TestFit_LegacyErrorsPassThrough(t *testing.T) {
	line := func(p []float64) func(float64) float64 {
		return func(x float64) float64 { return p[0] + p[1]*x }
	}

	_, err := compat.Fit(levmarq.Dataset{}, line, compat.Options{InitialValues: []float64{0, 0}})
	assert.ErrorIs(t, err, levmarq.ErrInvalidData)

	_, err = compat.Fit(levmarq.Dataset{X: []float64{1, 2}, Y: []float64{1, 2}}, line, compat.Options{})
	assert.ErrorIs(t, err, levmarq.ErrInvalidOption, "missing arity must surface as an option error")
}
