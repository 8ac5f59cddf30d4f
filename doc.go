// Package curvefit is your in-process toolbox for fitting parameterized
// models to observed data — nonlinear least squares by damped Gauss-Newton
// (Levenberg-Marquardt), with optional per-point uncertainty weighting.
//
// 🚀 What is curvefit?
//
//	A small, focused library that brings together:
//		• levmarq: the Levenberg-Marquardt engine — damping control loop,
//		  finite-difference Jacobian, damped normal-equations step
//		• models: ready-made model constructors (sine, polynomial,
//		  exponential decay, four-parameter logistic, Bennet5)
//		• compat: translation of legacy option/result shapes to the
//		  canonical API
//
// ✨ Why choose curvefit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – explicit random sources, reproducible fits
//   - Safe to share – datasets and models are read-only; every call
//     owns its own optimizer state
//   - Extensible – any closure of shape params → (x → y) is a model
//
// Under the hood, everything is organized under three subpackages:
//
//	levmarq/ — the optimization loop, step solver and residual evaluation
//	models/  — common model functions ready to plug into levmarq.Fit
//	compat/  — boundary adapters for historical call shapes
//
// Quick example:
//
//	opts := levmarq.DefaultOptions()
//	opts.InitialValues = []float64{1, 1}
//	res, err := levmarq.Fit(data, models.Sine(), &opts)
//
// Dive into each package's doc.go for algorithm outlines, option tables
// and worked examples.
//
//	go get github.com/curvelab/curvefit/levmarq
package curvefit
