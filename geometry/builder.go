package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// Segment is one drawable edge, an ordered pair of indices into a shared
// vertex list
type Segment struct {
	A, B int
}

// Build constructs the base vertex list and segment topology for a spec.
// The spec is normalized first, so Build is total over any input.
func Build(spec ShapeSpec) ([]geom.Coord, []Segment) {
	spec = spec.Normalized()

	switch spec.Family {
	case FamilyStar:
		return buildStar(spec.Radius, spec.Segments, spec.StarSkip)
	case FamilyEuclidean:
		return buildEuclidean(spec.Radius, spec.Segments, spec.EuclidPulses)
	case FamilyFractal:
		// Fractal subdivision composes on top of the star or regular path
		var pts []geom.Coord
		var segs []Segment
		if spec.StarSkip > 1 {
			pts, segs = buildStar(spec.Radius, spec.Segments, spec.StarSkip)
		} else {
			pts, segs = buildRegular(spec.Radius, spec.Segments)
		}
		return Subdivide(pts, segs, spec.FractalDivisions)
	default:
		return buildRegular(spec.Radius, spec.Segments)
	}
}

// ringPoints places n points evenly on the circle of the given radius,
// starting at angle 0 on the positive X axis, counter-clockwise
func ringPoints(radius float64, n int) []geom.Coord {
	pts := make([]geom.Coord, n)
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = geom.Coord{X: radius * cos, Y: radius * sin}
	}
	return pts
}

func buildRegular(radius float64, n int) ([]geom.Coord, []Segment) {
	pts := ringPoints(radius, n)
	segs := make([]Segment, n)
	for i := 0; i < n; i++ {
		segs[i] = Segment{A: i, B: (i + 1) % n}
	}
	return pts, segs
}

// buildStar connects vertex i to vertex (i+k) mod n. When gcd(n,k) = g > 1
// the star splits into g disjoint sub-paths; each is walked separately so
// no edge is omitted.
func buildStar(radius float64, n, k int) ([]geom.Coord, []Segment) {
	if k <= 1 {
		return buildRegular(radius, n)
	}
	pts := ringPoints(radius, n)

	g := gcd(n, k)
	segs := make([]Segment, 0, n)
	for start := 0; start < g; start++ {
		cur := start
		for step := 0; step < n/g; step++ {
			next := (cur + k) % n
			segs = append(segs, Segment{A: cur, B: next})
			cur = next
		}
	}
	return pts, segs
}

// buildEuclidean keeps only the circle points whose step index carries an
// onset of the Euclidean rhythm, connected cyclically in angular order
func buildEuclidean(radius float64, n, pulses int) ([]geom.Coord, []Segment) {
	pattern := EuclideanPattern(n, pulses)
	ring := ringPoints(radius, n)

	pts := make([]geom.Coord, 0, pulses)
	for i, on := range pattern {
		if on {
			pts = append(pts, ring[i])
		}
	}

	var segs []Segment
	switch {
	case len(pts) == 2:
		segs = []Segment{{A: 0, B: 1}}
	case len(pts) > 2:
		segs = make([]Segment, len(pts))
		for i := range pts {
			segs[i] = Segment{A: i, B: (i + 1) % len(pts)}
		}
	}
	return pts, segs
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
