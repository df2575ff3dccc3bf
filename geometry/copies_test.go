package geometry

import (
	"math"
	"testing"
)

// TestTransformsStepScale verifies the documented three-copy scenario:
// stepScale=2, angle=90 yields (1,0) (2,90) (4,180)
func TestTransformsStepScale(t *testing.T) {
	spec := ShapeSpec{Radius: 10, Segments: 4, Copies: 3, StepScale: 2, AngleDeg: 90}
	trs := Transforms(spec)

	if len(trs) != 3 {
		t.Fatalf("expected 3 transforms, got %d", len(trs))
	}
	want := []CopyTransform{
		{Index: 0, Scale: 1, RotationDeg: 0},
		{Index: 1, Scale: 2, RotationDeg: 90},
		{Index: 2, Scale: 4, RotationDeg: 180},
	}
	for i, w := range want {
		if trs[i] != w {
			t.Errorf("copy %d: expected %+v, got %+v", i, w, trs[i])
		}
	}
}

// TestTransformsEmpty verifies copies<=0 yields an unmaterialized shape
func TestTransformsEmpty(t *testing.T) {
	if trs := Transforms(ShapeSpec{Radius: 10, Segments: 4, Copies: 0}); trs != nil {
		t.Errorf("expected nil transforms, got %d", len(trs))
	}
	if trs := Transforms(ShapeSpec{Radius: 10, Segments: 4, Copies: -3}); trs != nil {
		t.Errorf("negative copies: expected nil transforms, got %d", len(trs))
	}
}

// TestTransformsAltScale verifies every AltStepN-th copy is multiplied by
// AltScale
func TestTransformsAltScale(t *testing.T) {
	spec := ShapeSpec{Radius: 10, Segments: 4, Copies: 4, StepScale: 1, AltScale: 0.5, AltStepN: 2}
	trs := Transforms(spec)

	want := []float64{1, 0.5, 1, 0.5}
	for i, w := range want {
		if math.Abs(trs[i].Scale-w) > 1e-12 {
			t.Errorf("copy %d: expected scale %v, got %v", i, w, trs[i].Scale)
		}
	}
}

// TestTransformsModulusPrecedence verifies the external modulus function
// overrides alt-scale when both are configured
func TestTransformsModulusPrecedence(t *testing.T) {
	spec := ShapeSpec{
		Radius: 10, Segments: 4, Copies: 3, StepScale: 1,
		AltScale: 0.5, AltStepN: 1,
		Modulus: func(i int) float64 { return float64(i + 1) },
	}
	trs := Transforms(spec)

	want := []float64{1, 2, 3}
	for i, w := range want {
		if math.Abs(trs[i].Scale-w) > 1e-12 {
			t.Errorf("copy %d: expected modulus scale %v, got %v", i, w, trs[i].Scale)
		}
	}
}

// TestTransformsDeterministic verifies repeated derivation reproduces the
// same list
func TestTransformsDeterministic(t *testing.T) {
	spec := ShapeSpec{Radius: 10, Segments: 4, Copies: 5, StepScale: 0.8, AngleDeg: 22.5, StartAngleDeg: 10}
	a := Transforms(spec)
	b := Transforms(spec)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("copy %d differs between derivations: %+v vs %+v", i, a[i], b[i])
		}
	}
}

// TestTransformsStartAngle verifies rotation starts at the configured
// offset and stays in degrees
func TestTransformsStartAngle(t *testing.T) {
	spec := ShapeSpec{Radius: 10, Segments: 4, Copies: 2, StepScale: 1, AngleDeg: 30, StartAngleDeg: 45}
	trs := Transforms(spec)

	if trs[0].RotationDeg != 45 || trs[1].RotationDeg != 75 {
		t.Errorf("expected rotations 45,75 got %v,%v", trs[0].RotationDeg, trs[1].RotationDeg)
	}
	if math.Abs(trs[0].RotationRadians()-math.Pi/4) > 1e-12 {
		t.Errorf("expected pi/4 radians, got %v", trs[0].RotationRadians())
	}
}
