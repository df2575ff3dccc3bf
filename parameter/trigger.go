package parameter

// Axis Crossing Detection
const (
	// AxisEpsilon is the |x| band treated as lying exactly on the reference axis
	AxisEpsilon = 1e-4

	// OverlapThreshold is the world-space distance below which two triggers
	// firing in the same frame are treated as one audible event
	OverlapThreshold = 0.5
)

// Quantization
const (
	// QuantizeToleranceCeiling caps the fire-now window in seconds
	QuantizeToleranceCeiling = 0.015

	// QuantizeToleranceRatio scales the fire-now window to the grid interval;
	// the effective tolerance is the lesser of ceiling and ratio*interval
	QuantizeToleranceRatio = 0.1

	// PendingFlushTolerance is how far ahead of its execute time a pending
	// trigger may fire, in seconds
	PendingFlushTolerance = 0.005
)
