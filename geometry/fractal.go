package geometry

import "github.com/jbeda/geom"

// Subdivide splits every segment into divisions equal sub-segments,
// inserting divisions-1 colinear points per edge. Original vertices keep
// their indices; inserted points are appended after them. divisions <= 1
// returns the input unchanged.
func Subdivide(pts []geom.Coord, segs []Segment, divisions int) ([]geom.Coord, []Segment) {
	if divisions <= 1 {
		return pts, segs
	}

	outPts := make([]geom.Coord, len(pts), len(pts)+len(segs)*(divisions-1))
	copy(outPts, pts)
	outSegs := make([]Segment, 0, len(segs)*divisions)

	for _, s := range segs {
		a, b := pts[s.A], pts[s.B]
		step := b.Minus(a).Times(1 / float64(divisions))

		prev := s.A
		for d := 1; d < divisions; d++ {
			outPts = append(outPts, a.Plus(step.Times(float64(d))))
			idx := len(outPts) - 1
			outSegs = append(outSegs, Segment{A: prev, B: idx})
			prev = idx
		}
		outSegs = append(outSegs, Segment{A: prev, B: s.B})
	}
	return outPts, outSegs
}
