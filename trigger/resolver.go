package trigger

import (
	"math"

	"github.com/lixenwraith/polyrhythm/geometry"
	"github.com/lixenwraith/polyrhythm/music"
	"github.com/lixenwraith/polyrhythm/parameter"
)

// Resolver maps a crossing to its musical parameters. Implementations must
// be pure: no mutation of the spec or any engine state.
type Resolver interface {
	Resolve(ev Event, spec geometry.ShapeSpec) music.Note
}

// ResolverFunc adapts a function to the Resolver interface
type ResolverFunc func(ev Event, spec geometry.ShapeSpec) music.Note

func (f ResolverFunc) Resolve(ev Event, spec geometry.ShapeSpec) music.Note {
	return f(ev, spec)
}

// ScaleResolver picks pitches from a musical scale by the vertex's angular
// position: the full circle maps onto the interval set, octave-shifted by
// copy index. Velocity decays with copy index so outer copies play softer.
type ScaleResolver struct {
	RootMIDI  int
	Intervals []int // semitone offsets within one octave
	Duration  float64
}

// MinorPentatonic is the default interval set of the demo resolver
var MinorPentatonic = []int{0, 3, 5, 7, 10}

// NewScaleResolver creates a resolver rooted at the given MIDI note; a nil
// interval set falls back to minor pentatonic
func NewScaleResolver(rootMIDI int, intervals []int) *ScaleResolver {
	if len(intervals) == 0 {
		intervals = MinorPentatonic
	}
	return &ScaleResolver{
		RootMIDI:  rootMIDI,
		Intervals: intervals,
		Duration:  parameter.DefaultNoteDuration,
	}
}

// Resolve maps the event position and copy index to a note
func (r *ScaleResolver) Resolve(ev Event, spec geometry.ShapeSpec) music.Note {
	angle := math.Atan2(ev.Position.Y, ev.Position.X)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	degree := int(angle / (2 * math.Pi) * float64(len(r.Intervals)))
	if degree >= len(r.Intervals) {
		degree = len(r.Intervals) - 1
	}

	octave := 0
	velocity := parameter.DefaultVelocity
	if ev.Copy > 0 {
		octave = ev.Copy % 3
		velocity *= math.Pow(0.85, float64(ev.Copy))
	}

	midi := r.RootMIDI + r.Intervals[degree] + 12*octave
	if midi > 127 {
		midi = 127
	}

	return music.Note{
		Frequency: music.NoteFreq(midi),
		Duration:  r.Duration,
		Velocity:  velocity,
		Name:      music.NoteName(midi),
	}
}
