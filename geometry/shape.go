// Package geometry builds parametric polygon outlines and their derived
// topology: regular polygons, star polygons, Euclidean-rhythm subsets,
// fractal edge subdivision, copy transforms, and segment intersections.
package geometry

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/lixenwraith/polyrhythm/parameter"
)

// Family selects the generative algorithm for a base polygon
type Family int

const (
	FamilyRegular Family = iota
	FamilyStar
	FamilyEuclidean
	FamilyFractal
)

// String returns the family name for logs and buffer metadata
func (f Family) String() string {
	switch f {
	case FamilyRegular:
		return "regular"
	case FamilyStar:
		return "star"
	case FamilyEuclidean:
		return "euclidean"
	case FamilyFractal:
		return "fractal"
	default:
		return "unknown"
	}
}

// ScaleFunc supplies an external per-copy scale factor (modulus scaling)
type ScaleFunc func(copyIndex int) float64

// ShapeSpec is the immutable-per-frame shape configuration.
// Invalid values are clamped by Normalized rather than rejected;
// generation is total over the clamped domain.
type ShapeSpec struct {
	Radius   float64
	Segments int
	Family   Family

	// StarSkip is the vertex step k of a star polygon {n/k}; k<=1 degrades
	// to a regular polygon
	StarSkip int

	// UseCuts enables intersection solving and vertex routing
	UseCuts bool

	// EuclidPulses is the onset count k distributed over Segments steps
	EuclidPulses int

	// FractalDivisions splits every edge into this many sub-segments; <=1 is
	// a no-op
	FractalDivisions int

	// Copy materialization
	Copies        int
	StepScale     float64
	AngleDeg      float64
	StartAngleDeg float64

	// AltScale multiplies every AltStepN-th copy; ignored while Modulus is set
	AltScale float64
	AltStepN int

	// Modulus, when non-nil, overrides alt-scale with an external per-index
	// scale factor
	Modulus ScaleFunc
}

// Normalized returns a copy with every field clamped to its valid range
func (s ShapeSpec) Normalized() ShapeSpec {
	if s.Radius <= 0 {
		s.Radius = parameter.MinRadius
	}
	if s.Segments < parameter.MinSegments {
		s.Segments = parameter.MinSegments
	}
	if s.StarSkip < parameter.MinStarSkip {
		s.StarSkip = parameter.MinStarSkip
	}
	if s.EuclidPulses < 0 {
		s.EuclidPulses = 0
	}
	if s.EuclidPulses > s.Segments {
		s.EuclidPulses = s.Segments
	}
	if s.FractalDivisions < 1 {
		s.FractalDivisions = 1
	}
	if s.Copies < 0 {
		s.Copies = 0
	}
	if s.StepScale == 0 {
		s.StepScale = 1
	}
	return s
}

// Snapshot is the epsilon-compared record of the geometry-affecting spec
// fields, used to detect whether a rebuild is needed
type Snapshot struct {
	radius    float64
	segments  float64
	family    float64
	starSkip  float64
	useCuts   float64
	pulses    float64
	divisions float64
	copies    float64
	stepScale float64
	angle     float64
	start     float64
	altScale  float64
	altStepN  float64
}

// Snap captures the geometry-affecting fields of a spec
func Snap(s ShapeSpec) Snapshot {
	cuts := 0.0
	if s.UseCuts {
		cuts = 1.0
	}
	return Snapshot{
		radius:    s.Radius,
		segments:  float64(s.Segments),
		family:    float64(s.Family),
		starSkip:  float64(s.StarSkip),
		useCuts:   cuts,
		pulses:    float64(s.EuclidPulses),
		divisions: float64(s.FractalDivisions),
		copies:    float64(s.Copies),
		stepScale: s.StepScale,
		angle:     s.AngleDeg,
		start:     s.StartAngleDeg,
		altScale:  s.AltScale,
		altStepN:  float64(s.AltStepN),
	}
}

// Changed reports whether any geometry-affecting field moved past its
// per-field threshold since the previous snapshot
func (a Snapshot) Changed(b Snapshot) bool {
	return differs(a.radius, b.radius, parameter.SpecFloatEpsilon) ||
		differs(a.segments, b.segments, parameter.SpecIntEpsilon) ||
		differs(a.family, b.family, parameter.SpecIntEpsilon) ||
		differs(a.starSkip, b.starSkip, parameter.SpecIntEpsilon) ||
		differs(a.useCuts, b.useCuts, parameter.SpecIntEpsilon) ||
		differs(a.pulses, b.pulses, parameter.SpecIntEpsilon) ||
		differs(a.divisions, b.divisions, parameter.SpecIntEpsilon) ||
		differs(a.copies, b.copies, parameter.SpecIntEpsilon) ||
		differs(a.stepScale, b.stepScale, parameter.SpecScaleEpsilon) ||
		differs(a.angle, b.angle, parameter.SpecAngleEpsilon) ||
		differs(a.start, b.start, parameter.SpecAngleEpsilon) ||
		differs(a.altScale, b.altScale, parameter.SpecScaleEpsilon) ||
		differs(a.altStepN, b.altStepN, parameter.SpecIntEpsilon)
}

func differs(a, b, eps float64) bool {
	return math.Abs(a-b) > eps
}

// Rotate returns p rotated by rad around the origin
func Rotate(p geom.Coord, rad float64) geom.Coord {
	sin, cos := math.Sincos(rad)
	return geom.Coord{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}
