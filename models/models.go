package models

import (
	"math"

	"github.com/curvelab/curvefit/levmarq"
)

// Sine returns the two-parameter model a·sin(b·t) with params = [a, b].
func Sine() levmarq.Model {
	return func(p []float64) func(float64) float64 {
		return func(t float64) float64 {
			return p[0] * math.Sin(p[1]*t)
		}
	}
}

// Polynomial returns the model c₀ + c₁·x + … + c_d·x^d for the given
// degree, with params = [c₀, …, c_d] (degree+1 parameters).
func Polynomial(degree int) levmarq.Model {
	return func(p []float64) func(float64) float64 {
		return func(x float64) float64 {
			// Horner evaluation from the highest coefficient down.
			y := p[degree]
			for k := degree - 1; k >= 0; k-- {
				y = y*x + p[k]
			}

			return y
		}
	}
}

// ExpDecay returns the three-parameter model a·e^(−b·t) + c with
// params = [a, b, c].
func ExpDecay() levmarq.Model {
	return func(p []float64) func(float64) float64 {
		return func(t float64) float64 {
			return p[0]*math.Exp(-p[1]*t) + p[2]
		}
	}
}

// FourParamLogistic returns the sigmoidal dose-response model
//
//	f(x) = d + (a − d) / (1 + (x/c)^b)
//
// with params = [a, b, c, d]: a the lower asymptote, b the slope, c the
// inflection point and d the upper asymptote. For negative c and
// non-integer b the power term is undefined and the model evaluates to
// NaN, which levmarq.Fit reports as a numerical failure.
func FourParamLogistic() levmarq.Model {
	return func(p []float64) func(float64) float64 {
		return func(x float64) float64 {
			return p[3] + (p[0]-p[3])/(1+math.Pow(x/p[2], p[1]))
		}
	}
}

// Bennet5 returns the NIST Bennet5 model b₁·(t + b₂)^(−1/b₃) with
// params = [b₁, b₂, b₃].
func Bennet5() levmarq.Model {
	return func(p []float64) func(float64) float64 {
		return func(t float64) float64 {
			return p[0] * math.Pow(t+p[1], -1/p[2])
		}
	}
}
