package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// CopyTransform is the derived (scale, rotation) pair of one concentric
// copy. Rotation is stored in degrees and converted at the point of use so
// many copies do not accumulate radian drift.
type CopyTransform struct {
	Index       int
	Scale       float64
	RotationDeg float64
}

// RotationRadians converts the stored rotation for trig use
func (c CopyTransform) RotationRadians() float64 {
	return c.RotationDeg * math.Pi / 180
}

// Transforms derives the per-copy transforms for a spec. Scale and rotation
// are pure functions of the copy index, so repeated calls with the same
// spec reproduce the same list. Copies <= 0 yields nil and the caller must
// treat the shape as not materialized.
func Transforms(spec ShapeSpec) []CopyTransform {
	spec = spec.Normalized()
	if spec.Copies <= 0 {
		return nil
	}

	out := make([]CopyTransform, spec.Copies)
	for i := 0; i < spec.Copies; i++ {
		scale := math.Pow(spec.StepScale, float64(i))
		switch {
		case spec.Modulus != nil:
			scale *= spec.Modulus(i)
		case spec.AltStepN > 0 && (i+1)%spec.AltStepN == 0:
			scale *= spec.AltScale
		}

		out[i] = CopyTransform{
			Index:       i,
			Scale:       scale,
			RotationDeg: spec.StartAngleDeg + float64(i)*spec.AngleDeg,
		}
	}
	return out
}

// Apply maps a base-local point into the copy's layer-local frame
func (c CopyTransform) Apply(p geom.Coord) geom.Coord {
	return Rotate(p.Times(c.Scale), c.RotationRadians())
}
