package parameter

// Tempo
const (
	MinBPM     = 20
	MaxBPM     = 300
	DefaultBPM = 120
)

// Musical Time
const (
	// TicksPerBeat is the pulse resolution of one quarter note
	TicksPerBeat = 480
)

// Default Note Shape
const (
	// DefaultNoteDuration in seconds when the resolver supplies none
	DefaultNoteDuration = 0.25

	// DefaultVelocity for triggers without a velocity rule
	DefaultVelocity = 0.8
)
