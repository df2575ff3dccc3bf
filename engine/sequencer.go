// Package engine drives the polygon sequencer: layers of parametric
// shapes, rebuilt when their spec changes, rotated each tick, and scanned
// for axis crossings that fire musical triggers.
//
// The engine is frame-driven and single-threaded: the host invokes Tick
// once per frame, which runs rebuild-if-dirty, crossing detection, and the
// pending-queue flush in that fixed order.
package engine

import (
	"github.com/lixenwraith/polyrhythm/geometry"
	"github.com/lixenwraith/polyrhythm/music"
	"github.com/lixenwraith/polyrhythm/parameter"
	"github.com/lixenwraith/polyrhythm/trigger"
)

// Config assembles a Sequencer; zero-value fields get working defaults
type Config struct {
	BPM      float64
	Grid     music.Grid
	Quantize bool

	Clock      music.Clock
	Resolver   trigger.Resolver
	Dispatcher trigger.Dispatcher
	Observer   trigger.Observer
	Sequence   *trigger.Sequence
}

// Sequencer owns the layers and the trigger engine
type Sequencer struct {
	clock    music.Clock
	trig     *trigger.Engine
	observer trigger.Observer
	layers   []*Layer
	nextID   int
}

// NewSequencer creates a sequencer from config
func NewSequencer(cfg Config) *Sequencer {
	if cfg.Clock == nil {
		cfg.Clock = music.NewSystemClock()
	}
	if cfg.Observer == nil {
		cfg.Observer = trigger.NopObserver{}
	}
	return &Sequencer{
		clock:    cfg.Clock,
		observer: cfg.Observer,
		trig: trigger.NewEngine(trigger.Config{
			BPM:        cfg.BPM,
			Grid:       cfg.Grid,
			Quantize:   cfg.Quantize,
			Resolver:   cfg.Resolver,
			Dispatcher: cfg.Dispatcher,
			Observer:   cfg.Observer,
			Sequence:   cfg.Sequence,
		}),
	}
}

// AddLayer creates and registers a layer for the given spec
func (s *Sequencer) AddLayer(spec geometry.ShapeSpec) *Layer {
	l := NewLayer(s.nextID, spec)
	l.SpeedDegPerSec = parameter.DefaultRotationSpeed
	s.nextID++
	s.layers = append(s.layers, l)
	return l
}

// Layers returns the registered layers in creation order
func (s *Sequencer) Layers() []*Layer { return s.layers }

// Trigger exposes the trigger engine for tempo/grid/quantize control
func (s *Sequencer) Trigger() *trigger.Engine { return s.trig }

// Now returns the current clock time in seconds
func (s *Sequencer) Now() float64 { return s.clock.Now() }

// Tick advances the whole system by dt seconds of rotation. Per layer:
// rebuild if the spec changed (a successful rebuild rearms that layer's
// trigger keys; a failed one keeps the old buffer serving), then advance
// rotation and scan for crossings. Pending quantized triggers flush last.
func (s *Sequencer) Tick(dt float64) {
	now := s.clock.Now()
	s.trig.BeginFrame()

	for _, l := range s.layers {
		if l.Dirty() {
			if err := l.Rebuild(); err != nil {
				s.observer.Failed(l.ID, err)
			} else {
				s.trig.ResetLayer(l.ID)
			}
		}

		prev := l.RotationDeg
		l.RotationDeg += l.SpeedDegPerSec * dt
		s.trig.Scan(l.ID, l.Buffer(), l.Transforms(), l.Spec(), prev, l.RotationDeg, now)
	}

	s.trig.FlushPending(now)
}

// Reset rearms every trigger key and drops all pending triggers
func (s *Sequencer) Reset() {
	s.trig.Reset()
}
