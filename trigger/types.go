// Package trigger detects the instant rotating vertices cross the fixed
// reference axis and turns each crossing into exactly one timed musical
// event, with overlap suppression and optional grid quantization.
package trigger

import (
	"github.com/jbeda/geom"

	"github.com/lixenwraith/polyrhythm/music"
)

// IntersectionCopy marks a key or event that belongs to an intersection
// vertex rather than a (copy, vertex) pair
const IntersectionCopy = -1

// Key is the unit of fired-this-epoch bookkeeping. A key fires at most
// once between resets. Layer scoping is mandatory so one layer's rotation
// cannot suppress another's identical vertex index.
type Key struct {
	Layer  int
	Copy   int // IntersectionCopy for intersection vertices
	Vertex int // base vertex index, or intersection vertex index
}

// Event carries the identity and resolved world position of one crossing
type Event struct {
	Position geom.Coord
	Layer    int
	Copy     int // IntersectionCopy for intersection vertices
	Vertex   int
	Sequence uint64
}

// Intersection reports whether the event belongs to an intersection vertex
func (e Event) Intersection() bool {
	return e.Copy == IntersectionCopy
}

// Key returns the seen-set identity of the event
func (e Event) Key() Key {
	return Key{Layer: e.Layer, Copy: e.Copy, Vertex: e.Vertex}
}

// Firing is the complete payload of one fired trigger
type Firing struct {
	Event     Event
	Note      music.Note
	Time      float64 // execution time in clock seconds
	Quantized bool
}

// Dispatcher receives each fired trigger exactly once. Implementations
// must treat the firing as an independent snapshot and must not mutate
// shape or buffer state.
type Dispatcher interface {
	Dispatch(f Firing)
}

// Observer is the injectable sink for engine instrumentation; all methods
// are called synchronously from the scan
type Observer interface {
	Fired(f Firing)
	Suppressed(ev Event)
	Failed(layer int, err error)
}

// NopObserver discards all engine instrumentation
type NopObserver struct{}

func (NopObserver) Fired(Firing) {}

func (NopObserver) Suppressed(Event) {}

func (NopObserver) Failed(int, error) {}
