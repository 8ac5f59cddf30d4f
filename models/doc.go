// Package models provides ready-made levmarq.Model constructors for common
// curve shapes: sine, polynomial, exponential decay, four-parameter
// logistic and the NIST Bennet5 benchmark.
//
// Every constructor returns a pure closure of shape params → (x → y); the
// parameter layout is documented per constructor. Models here are plain
// conveniences — any function of the same shape plugs into levmarq.Fit the
// same way.
//
// ⚙️ Usage:
//
//	opts := levmarq.DefaultOptions()
//	opts.InitialValues = []float64{1, 1}
//	res, err := levmarq.Fit(data, models.Sine(), &opts)
package models
