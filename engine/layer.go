package engine

import (
	"fmt"

	"github.com/jbeda/geom"

	"github.com/lixenwraith/polyrhythm/geometry"
)

// Layer owns one shape: its spec, its built geometry buffer, its copy
// transforms, and its rotation state. The buffer is replaced wholesale on
// rebuild; a failed rebuild keeps the previous buffer serving.
type Layer struct {
	ID int

	// RotationDeg is the current group rotation; hosts may set it directly
	// for deterministic driving instead of relying on SpeedDegPerSec
	RotationDeg    float64
	SpeedDegPerSec float64

	spec       geometry.ShapeSpec
	snap       geometry.Snapshot
	buffer     *geometry.Buffer
	transforms []geometry.CopyTransform
	dirty      bool
	built      bool
}

// NewLayer creates a layer with the given spec, marked for rebuild
func NewLayer(id int, spec geometry.ShapeSpec) *Layer {
	return &Layer{
		ID:    id,
		spec:  spec.Normalized(),
		dirty: true,
	}
}

// SetSpec replaces the layer's spec. The buffer is only marked dirty when a
// geometry-affecting field actually moved past its epsilon; jitter below
// the thresholds reuses the existing buffer.
func (l *Layer) SetSpec(spec geometry.ShapeSpec) {
	spec = spec.Normalized()
	if l.built && !geometry.Snap(spec).Changed(l.snap) {
		l.spec = spec
		return
	}
	l.spec = spec
	l.dirty = true
}

// Spec returns the current normalized spec
func (l *Layer) Spec() geometry.ShapeSpec { return l.spec }

// Buffer returns the most recently built geometry, nil before first build
func (l *Layer) Buffer() *geometry.Buffer { return l.buffer }

// Transforms returns the copy transforms of the current buffer
func (l *Layer) Transforms() []geometry.CopyTransform { return l.transforms }

// Dirty reports whether the next tick will rebuild
func (l *Layer) Dirty() bool { return l.dirty }

// Rebuild constructs a fresh buffer from the spec. Any panic during
// construction is recovered: the half-built buffer is discarded, the
// previous one stays published, and the failure returns as a recoverable
// error.
func (l *Layer) Rebuild() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("layer %d rebuild: %v", l.ID, r)
		}
	}()

	spec := l.spec
	pts, segs := geometry.Build(spec)
	transforms := geometry.Transforms(spec)

	var intersections []geom.Coord
	if spec.UseCuts {
		if len(transforms) > 1 {
			copies := make([][]geom.Coord, len(transforms))
			for i, tr := range transforms {
				world := make([]geom.Coord, len(pts))
				for j, p := range pts {
					world[j] = tr.Apply(p)
				}
				copies[i] = world
			}
			intersections = geometry.CrossCopyIntersections(copies, segs)
		} else {
			intersections = geometry.FindSelfIntersections(pts, segs)
		}
	}

	buf := geometry.Assemble(pts, segs, intersections, spec)

	// Commit only after the whole build succeeded
	l.buffer = buf
	l.transforms = transforms
	l.snap = geometry.Snap(spec)
	l.dirty = false
	l.built = true
	return nil
}
