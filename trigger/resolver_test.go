package trigger

import (
	"math"
	"testing"

	"github.com/jbeda/geom"

	"github.com/lixenwraith/polyrhythm/geometry"
	"github.com/lixenwraith/polyrhythm/music"
	"github.com/lixenwraith/polyrhythm/parameter"
)

// TestScaleResolverAngleToDegree verifies the angular position selects the
// scale degree: pentatonic over A3 splits the circle into five sectors
func TestScaleResolverAngleToDegree(t *testing.T) {
	r := NewScaleResolver(57, nil)
	spec := geometry.ShapeSpec{Radius: 10, Segments: 4}

	cases := []struct {
		angleDeg float64
		wantMIDI int
	}{
		{10, 57},   // first sector: root
		{80, 60},   // second sector: +3
		{150, 62},  // third sector: +5
		{225, 64},  // fourth sector: +7
		{300, 67},  // fifth sector: +10
	}
	for _, c := range cases {
		rad := c.angleDeg * math.Pi / 180
		ev := Event{Position: geom.Coord{X: 10 * math.Cos(rad), Y: 10 * math.Sin(rad)}}
		note := r.Resolve(ev, spec)
		want := music.NoteFreq(c.wantMIDI)
		if math.Abs(note.Frequency-want) > 1e-9 {
			t.Errorf("angle %v: expected %v (%s), got %v (%s)",
				c.angleDeg, want, music.NoteName(c.wantMIDI), note.Frequency, note.Name)
		}
	}
}

// TestScaleResolverCopyShiftsOctave verifies copy index raises the octave
// modulo three and decays velocity
func TestScaleResolverCopyShiftsOctave(t *testing.T) {
	r := NewScaleResolver(57, nil)
	spec := geometry.ShapeSpec{Radius: 10, Segments: 4}
	ev := Event{Position: geom.Coord{X: 10, Y: 0.1}}

	base := r.Resolve(ev, spec)
	ev.Copy = 1
	up := r.Resolve(ev, spec)

	if math.Abs(up.Frequency-2*base.Frequency) > 1e-9 {
		t.Errorf("copy 1 should play one octave up: %v vs %v", up.Frequency, base.Frequency)
	}
	if up.Velocity >= base.Velocity {
		t.Errorf("copy 1 should play softer: %v vs %v", up.Velocity, base.Velocity)
	}

	// Copy 3 wraps back to the base octave
	ev.Copy = 3
	wrapped := r.Resolve(ev, spec)
	if math.Abs(wrapped.Frequency-base.Frequency) > 1e-9 {
		t.Errorf("copy 3 should wrap to the base octave: %v vs %v", wrapped.Frequency, base.Frequency)
	}
}

// TestScaleResolverDefaults verifies nil intervals fall back to minor
// pentatonic with the default duration
func TestScaleResolverDefaults(t *testing.T) {
	r := NewScaleResolver(60, nil)
	if len(r.Intervals) != len(MinorPentatonic) {
		t.Errorf("expected %d default intervals, got %d", len(MinorPentatonic), len(r.Intervals))
	}
	if r.Duration != parameter.DefaultNoteDuration {
		t.Errorf("expected default duration %v, got %v", parameter.DefaultNoteDuration, r.Duration)
	}
}

// TestScaleResolverClampsMIDI verifies extreme copies never leave the MIDI
// range
func TestScaleResolverClampsMIDI(t *testing.T) {
	r := NewScaleResolver(120, nil)
	spec := geometry.ShapeSpec{Radius: 10, Segments: 4}
	note := r.Resolve(Event{Position: geom.Coord{X: -10, Y: -1}, Copy: 2}, spec)

	if note.Frequency > music.NoteFreq(127) {
		t.Errorf("frequency above MIDI 127: %v", note.Frequency)
	}
	if note.Frequency == 0 {
		t.Error("clamped note must still resolve to a playable frequency")
	}
}

// TestSequenceNextAndReset verifies the counter is monotone and rewinds
func TestSequenceNextAndReset(t *testing.T) {
	s := NewSequence()
	for i := uint64(0); i < 5; i++ {
		if got := s.Next(); got != i {
			t.Fatalf("expected index %d, got %d", i, got)
		}
	}
	s.Reset()
	if got := s.Next(); got != 0 {
		t.Errorf("expected reset to rewind to 0, got %d", got)
	}
}
