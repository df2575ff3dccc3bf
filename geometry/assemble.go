package geometry

import (
	"math"
	"sort"

	"github.com/jbeda/geom"

	"github.com/lixenwraith/polyrhythm/parameter"
)

// Buffer is the indexed, renderable result of one geometry build. It is
// replaced wholesale on rebuild, never mutated in place.
type Buffer struct {
	Points   []geom.Coord
	Segments []Segment

	// Base vertices occupy indices [0, BaseVertexCount); intersection
	// vertices follow, so downstream consumers can tell them apart
	BaseVertexCount         int
	IntersectionVertexCount int

	Family       Family
	StarSkip     int
	FractalLevel int
}

// Assemble merges base vertices and intersection vertices into one indexed
// buffer. Base vertices keep their original indices; intersections are
// appended after them, and every segment that an intersection lies on is
// replaced by a chain of edges routed through the ordered intersection
// points.
func Assemble(pts []geom.Coord, segs []Segment, intersections []geom.Coord, spec ShapeSpec) *Buffer {
	spec = spec.Normalized()

	buf := &Buffer{
		Points:                  make([]geom.Coord, 0, len(pts)+len(intersections)),
		BaseVertexCount:         len(pts),
		IntersectionVertexCount: len(intersections),
		Family:                  spec.Family,
		StarSkip:                spec.StarSkip,
		FractalLevel:            spec.FractalDivisions,
	}
	buf.Points = append(buf.Points, pts...)
	buf.Points = append(buf.Points, intersections...)

	if len(intersections) == 0 {
		buf.Segments = append([]Segment(nil), segs...)
		return buf
	}

	buf.Segments = make([]Segment, 0, len(segs)+len(intersections))
	for _, s := range segs {
		buf.Segments = append(buf.Segments, routeSegment(pts, s, intersections, len(pts))...)
	}
	return buf
}

// routeSegment replaces one edge with a chain through the intersection
// points lying on it, ordered by distance from the segment start
func routeSegment(pts []geom.Coord, s Segment, intersections []geom.Coord, base int) []Segment {
	type stop struct {
		index int
		t     float64
	}

	a, b := pts[s.A], pts[s.B]
	var stops []stop
	for i, p := range intersections {
		t, on := paramOnSegment(a, b, p)
		if !on {
			continue
		}
		// Points at the endpoints would produce zero-length edges
		if t < parameter.EndpointSlack || t > 1-parameter.EndpointSlack {
			continue
		}
		stops = append(stops, stop{index: base + i, t: t})
	}
	if len(stops) == 0 {
		return []Segment{s}
	}

	sort.Slice(stops, func(i, j int) bool { return stops[i].t < stops[j].t })

	chain := make([]Segment, 0, len(stops)+1)
	prev := s.A
	for _, st := range stops {
		chain = append(chain, Segment{A: prev, B: st.index})
		prev = st.index
	}
	return append(chain, Segment{A: prev, B: s.B})
}

// paramOnSegment reports the parametric position of p along a-b when p lies
// on the segment within tolerance
func paramOnSegment(a, b, p geom.Coord) (float64, bool) {
	d := b.Minus(a)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return 0, false
	}

	// Perpendicular distance via the cross product
	ap := p.Minus(a)
	cross := d.X*ap.Y - d.Y*ap.X
	if math.Abs(cross)/math.Sqrt(lenSq) > parameter.OnSegmentTolerance {
		return 0, false
	}

	t := (ap.X*d.X + ap.Y*d.Y) / lenSq
	if t < -parameter.SegmentParamSlack || t > 1+parameter.SegmentParamSlack {
		return 0, false
	}
	return t, true
}
