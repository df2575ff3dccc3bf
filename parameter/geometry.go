package parameter

// Shape Specification Limits
const (
	// MinRadius is the smallest usable circumradius; non-positive radii clamp here
	MinRadius = 0.001

	// MinSegments is the smallest polygon vertex count
	MinSegments = 2

	// MinStarSkip below this degrades a star to a regular polygon
	MinStarSkip = 1
)

// Intersection Solver Tolerances
const (
	// ParallelEpsilon is the smallest determinant magnitude treated as non-parallel
	ParallelEpsilon = 1e-10

	// SegmentParamSlack widens the [0,1] parametric range for endpoint-grazing hits
	SegmentParamSlack = 1e-5

	// MergeThreshold is the distance below which two intersection candidates collapse
	MergeThreshold = 1e-3

	// DedupPrecision is the grid size of the fixed-precision point equality key
	DedupPrecision = 1e-6
)

// Assembly Tolerances
const (
	// OnSegmentTolerance is the max perpendicular distance for point-on-segment tests
	OnSegmentTolerance = 1e-5

	// EndpointSlack keeps routed intersection vertices away from segment endpoints,
	// preventing zero-length edges in the rewritten topology
	EndpointSlack = 1e-4
)

// Spec Change Detection
// Per-field absolute thresholds for the previous-spec snapshot comparison,
// tuned so UI jitter does not force geometry rebuilds
const (
	SpecIntEpsilon   = 0.01
	SpecFloatEpsilon = 0.5
	SpecAngleEpsilon = 0.01
	SpecScaleEpsilon = 0.001
)
