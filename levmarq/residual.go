package levmarq

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// evaluator scores parameter vectors against a dataset. It owns the
// error-propagation configuration (sample count and random source) so that
// nothing about weighting leaks into package-level state.
type evaluator struct {
	data     Dataset
	model    Model
	samples  int
	rng      *rand.Rand
	weighted bool
}

func newEvaluator(data Dataset, model Model, o *Options) *evaluator {
	return &evaluator{
		data:     data,
		model:    model,
		samples:  o.ErrorPropagation,
		rng:      o.Rand,
		weighted: len(data.XError) > 0 || len(data.YError) > 0,
	}
}

// evaluate returns the raw and the uncertainty-weighted sums of squared
// residuals of the model at params. Without XError/YError the two are
// equal. A non-finite sum is fatal and reported as ErrNumericalFailure.
func (e *evaluator) evaluate(params []float64) (raw, weighted float64, err error) {
	f := e.model(params)

	var variances []float64
	if e.weighted {
		variances = propagateUncertainty(e.data, f, e.samples, e.rng)
	}

	var badX, badOut float64
	badIdx := -1
	for i, x := range e.data.X {
		out := f(x)
		r := e.data.Y[i] - out
		sq := r * r
		raw += sq
		// A zero variance means no usable uncertainty for this point; it
		// contributes its raw squared residual.
		if variances != nil && variances[i] > 0 {
			weighted += sq / variances[i]
		} else {
			weighted += sq
		}
		if badIdx < 0 && math.IsNaN(sq) {
			badIdx, badX, badOut = i, x, out
		}
	}

	if math.IsNaN(raw) || math.IsNaN(weighted) {
		if badIdx >= 0 {
			return 0, 0, fmt.Errorf("%w: non-finite function evaluation at parameters %v: f(%v) = %v at point %d", ErrNumericalFailure, params, badX, badOut, badIdx)
		}
		// The raw sum is finite, so the non-finite value came from the
		// propagated variances rather than a direct evaluation.
		return 0, 0, fmt.Errorf("%w: non-finite function evaluation at parameters %v during uncertainty sampling", ErrNumericalFailure, params)
	}

	return raw, weighted, nil
}

// propagateUncertainty estimates an effective output variance per point:
// the sample variance of f over `samples` Gaussian perturbations of xᵢ
// (standard deviation XErrorᵢ), plus YErrorᵢ². Points without any error
// information get variance 0, which callers treat as unweighted.
func propagateUncertainty(data Dataset, f func(float64) float64, samples int, rng *rand.Rand) []float64 {
	variances := make([]float64, len(data.X))
	outputs := make([]float64, samples)
	for i := range data.X {
		var v float64
		if len(data.XError) > 0 && data.XError[i] > 0 {
			for s := range outputs {
				outputs[s] = f(data.X[i] + rng.NormFloat64()*data.XError[i])
			}
			v = stat.Variance(outputs, nil)
		}
		if len(data.YError) > 0 {
			v += data.YError[i] * data.YError[i]
		}
		variances[i] = v
	}

	return variances
}
