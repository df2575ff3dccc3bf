package trigger

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"

	"github.com/lixenwraith/polyrhythm/geometry"
	"github.com/lixenwraith/polyrhythm/music"
	"github.com/lixenwraith/polyrhythm/parameter"
)

// Config assembles an Engine. Zero-value fields get working defaults.
type Config struct {
	BPM      float64
	Grid     music.Grid
	Quantize bool

	Resolver   Resolver
	Dispatcher Dispatcher
	Observer   Observer
	Sequence   *Sequence
}

// Engine performs per-frame axis-crossing detection and exactly-once
// firing. It is single-threaded by contract: the host drives BeginFrame,
// Scan, and FlushPending from one goroutine in that order.
type Engine struct {
	bpm      float64
	grid     music.Grid
	quantize bool

	resolver   Resolver
	dispatcher Dispatcher
	observer   Observer
	seq        *Sequence

	seen       map[Key]struct{}
	pending    pendingQueue
	frameFired []geom.Coord
}

// NewEngine creates a trigger engine; nil collaborators default to no-ops
func NewEngine(cfg Config) *Engine {
	if cfg.BPM == 0 {
		cfg.BPM = parameter.DefaultBPM
	}
	if cfg.Grid == 0 {
		cfg.Grid = music.GridEighth
	}
	if cfg.Observer == nil {
		cfg.Observer = NopObserver{}
	}
	if cfg.Sequence == nil {
		cfg.Sequence = NewSequence()
	}
	return &Engine{
		bpm:        music.ClampBPM(cfg.BPM),
		grid:       cfg.Grid,
		quantize:   cfg.Quantize,
		resolver:   cfg.Resolver,
		dispatcher: cfg.Dispatcher,
		observer:   cfg.Observer,
		seq:        cfg.Sequence,
		seen:       make(map[Key]struct{}),
	}
}

// SetBPM updates the quantization tempo
func (e *Engine) SetBPM(bpm float64) { e.bpm = music.ClampBPM(bpm) }

// SetGrid updates the quantization grid
func (e *Engine) SetGrid(g music.Grid) { e.grid = g }

// SetQuantize toggles grid-aligned delivery
func (e *Engine) SetQuantize(on bool) { e.quantize = on }

// PendingCount reports the number of queued quantized triggers
func (e *Engine) PendingCount() int { return len(e.pending) }

// BeginFrame starts a new frame: spatial overlap suppression only applies
// among triggers fired within one frame
func (e *Engine) BeginFrame() {
	e.frameFired = e.frameFired[:0]
}

// Scan evaluates every (copy, vertex) pair and every intersection vertex of
// the layer against the reference axis, given the group rotation at the
// previous and current frame, in degrees. now is the current clock time in
// seconds.
func (e *Engine) Scan(layer int, buf *geometry.Buffer, transforms []geometry.CopyTransform,
	spec geometry.ShapeSpec, prevDeg, currDeg, now float64) {

	if buf == nil || len(transforms) == 0 {
		// Copies <= 0 leaves the shape unmaterialized: no triggers at all
		return
	}

	prevRad := prevDeg * math.Pi / 180
	currRad := currDeg * math.Pi / 180

	for _, tr := range transforms {
		for vi := 0; vi < buf.BaseVertexCount; vi++ {
			local := buf.Points[vi].Times(tr.Scale)
			prev := geometry.Rotate(local, prevRad)
			curr := geometry.Rotate(local, currRad)
			e.consider(Key{Layer: layer, Copy: tr.Index, Vertex: vi}, prev, curr, spec, now)
		}
	}

	// Intersection vertices belong to no single copy; they rotate with the
	// layer group directly
	for ii := buf.BaseVertexCount; ii < len(buf.Points); ii++ {
		local := buf.Points[ii]
		prev := geometry.Rotate(local, prevRad)
		curr := geometry.Rotate(local, currRad)
		e.consider(Key{Layer: layer, Copy: IntersectionCopy, Vertex: ii}, prev, curr, spec, now)
	}
}

// consider runs the full crossing pipeline for one vertex position pair
func (e *Engine) consider(key Key, prev, curr geom.Coord, spec geometry.ShapeSpec, now float64) {
	if _, fired := e.seen[key]; fired {
		return
	}
	if !crossedAxis(prev, curr) {
		return
	}

	// Seen regardless of suppression or quantization outcome: the vertex
	// must not re-enter the crossing test while still rotating past the
	// axis within the same epoch
	e.seen[key] = struct{}{}

	for _, p := range e.frameFired {
		if curr.Minus(p).Magnitude() < parameter.OverlapThreshold {
			e.observer.Suppressed(Event{Position: curr, Layer: key.Layer, Copy: key.Copy, Vertex: key.Vertex})
			return
		}
	}

	ev := Event{
		Position: curr,
		Layer:    key.Layer,
		Copy:     key.Copy,
		Vertex:   key.Vertex,
		Sequence: e.seq.Next(),
	}
	e.frameFired = append(e.frameFired, curr)

	note, ok := e.resolve(ev, spec)
	if !ok {
		return
	}

	if !e.quantize {
		e.fire(Firing{Event: ev, Note: note, Time: now})
		return
	}

	executeAt, immediate := e.grid.Quantize(now, e.bpm)
	if immediate {
		e.fire(Firing{Event: ev, Note: note, Time: executeAt, Quantized: true})
		return
	}
	e.pending.push(pendingTrigger{event: ev, note: note, executeAt: executeAt})
}

// resolve calls the external resolver with a panic guard; one failing
// trigger must not abort the remaining vertex scan
func (e *Engine) resolve(ev Event, spec geometry.ShapeSpec) (note music.Note, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.observer.Failed(ev.Layer, fmt.Errorf("note resolver panicked: %v", r))
			ok = false
		}
	}()
	if e.resolver == nil {
		return music.Note{}, false
	}
	return e.resolver.Resolve(ev, spec), true
}

// fire delivers one trigger through the dispatch callback, guarded so a
// failing collaborator cannot take down the scan
func (e *Engine) fire(f Firing) {
	defer func() {
		if r := recover(); r != nil {
			e.observer.Failed(f.Event.Layer, fmt.Errorf("dispatch panicked: %v", r))
		}
	}()
	if e.dispatcher != nil {
		e.dispatcher.Dispatch(f)
	}
	e.observer.Fired(f)
}

// FlushPending fires every queued trigger whose execution time has been
// reached, in time order
func (e *Engine) FlushPending(now float64) {
	for len(e.pending) > 0 && e.pending[0].executeAt <= now+parameter.PendingFlushTolerance {
		p := e.pending.pop()
		e.fire(Firing{Event: p.event, Note: p.note, Time: p.executeAt, Quantized: true})
	}
}

// Reset starts a new epoch: all keys rearm and all pending triggers are
// dropped
func (e *Engine) Reset() {
	e.seen = make(map[Key]struct{})
	e.pending = e.pending[:0]
	e.frameFired = e.frameFired[:0]
}

// ResetLayer rearms one layer's keys and drops its pending triggers,
// leaving other layers untouched; called on per-layer geometry rebuild
func (e *Engine) ResetLayer(layer int) {
	for k := range e.seen {
		if k.Layer == layer {
			delete(e.seen, k)
		}
	}
	kept := e.pending[:0]
	for _, p := range e.pending {
		if p.event.Layer != layer {
			kept = append(kept, p)
		}
	}
	e.pending = kept
}

// crossedAxis detects a crossing of the vertical reference axis (x = 0,
// upper half-plane) between two frames. The three cases are deliberately
// kept separate; their overlap at boundary angles is pinned by tests.
func crossedAxis(prev, curr geom.Coord) bool {
	// Basic: sign change of x while above the origin
	if prev.X > 0 && curr.X <= 0 && curr.Y > 0 {
		return true
	}
	// Large-step fallback: a fast rotation can skip over x = 0 entirely
	// between frames; compare angular position relative to the axis
	if curr.Y > 0 {
		a1 := math.Atan2(prev.X, prev.Y)
		a2 := math.Atan2(curr.X, curr.Y)
		if (a1 > 0) != (a2 > 0) && math.Abs(a1-a2) < math.Pi {
			return true
		}
	}
	// Boundary: the current position lies on the axis itself
	if math.Abs(curr.X) <= parameter.AxisEpsilon && curr.Y > 0 && prev.X > 0 {
		return true
	}
	return false
}
