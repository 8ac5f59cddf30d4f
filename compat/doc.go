// Package compat preserves the historical curve-fitting call shape as a
// pass-through boundary around levmarq.
//
// Older callers configured the fit with DampingStepDown/DampingStepUp and
// ErrorTolerance, and read the objective value from ParameterError. This
// package translates those shapes to and from the canonical levmarq API
// with two pure functions, Translate and TranslateResult, plus a Fit
// wrapper composing them. No numeric logic lives here.
package compat
