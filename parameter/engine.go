package parameter

// Sequencer Defaults
const (
	// DefaultRotationSpeed in degrees per second for newly created layers
	DefaultRotationSpeed = 45.0

	// DefaultTickRate is the host frame rate the demo drives the engine at
	DefaultTickRate = 30
)
