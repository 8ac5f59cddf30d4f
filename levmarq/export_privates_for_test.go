package levmarq

// Hooks exposing internals to the white-box tests in levmarq_test.
var (
	PropagateUncertainty = propagateUncertainty
	ComputeStep          = computeStep
)
