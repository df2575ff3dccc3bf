package geometry

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/lixenwraith/polyrhythm/parameter"
)

// SegmentIntersection solves the parametric line intersection of segments
// p1-p2 and p3-p4. It reports false for parallel, degenerate, or
// out-of-range pairs; the parametric range carries a small slack so
// endpoint-grazing hits are kept.
func SegmentIntersection(p1, p2, p3, p4 geom.Coord) (geom.Coord, bool) {
	denom := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)
	if math.Abs(denom) < parameter.ParallelEpsilon {
		return geom.Coord{}, false
	}

	ua := ((p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)) / denom
	ub := ((p2.X-p1.X)*(p1.Y-p3.Y) - (p2.Y-p1.Y)*(p1.X-p3.X)) / denom

	lo, hi := -parameter.SegmentParamSlack, 1+parameter.SegmentParamSlack
	if ua < lo || ua > hi || ub < lo || ub > hi {
		return geom.Coord{}, false
	}

	return geom.Coord{
		X: p1.X + ua*(p2.X-p1.X),
		Y: p1.Y + ua*(p2.Y-p1.Y),
	}, true
}

// FindIntersections returns the deduplicated crossing points between every
// segment of A and every segment of B
func FindIntersections(ptsA []geom.Coord, segsA []Segment, ptsB []geom.Coord, segsB []Segment) []geom.Coord {
	set := newPointSet()
	crossInto(set, ptsA, segsA, ptsB, segsB)
	return set.Points()
}

// FindSelfIntersections returns the deduplicated crossing points within one
// path. Segment pairs sharing an endpoint index are skipped; they meet at a
// vertex, not a crossing.
func FindSelfIntersections(pts []geom.Coord, segs []Segment) []geom.Coord {
	set := newPointSet()
	selfInto(set, pts, segs)
	return set.Points()
}

// CrossCopyIntersections computes all intersections among transformed
// copies of one path: self-intersections within each copy plus every
// segment of copy i against every segment of copy j for i < j. All
// candidates share one dedup set. Fewer than two copies skips the scan
// entirely.
func CrossCopyIntersections(copies [][]geom.Coord, segs []Segment) []geom.Coord {
	if len(copies) <= 1 {
		return nil
	}
	set := newPointSet()
	for _, pts := range copies {
		selfInto(set, pts, segs)
	}
	for i := 0; i < len(copies); i++ {
		for j := i + 1; j < len(copies); j++ {
			crossInto(set, copies[i], segs, copies[j], segs)
		}
	}
	return set.Points()
}

func crossInto(set *pointSet, ptsA []geom.Coord, segsA []Segment, ptsB []geom.Coord, segsB []Segment) {
	for _, sa := range segsA {
		for _, sb := range segsB {
			if p, ok := SegmentIntersection(ptsA[sa.A], ptsA[sa.B], ptsB[sb.A], ptsB[sb.B]); ok {
				set.Add(p)
			}
		}
	}
}

func selfInto(set *pointSet, pts []geom.Coord, segs []Segment) {
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			if sharesEndpoint(segs[i], segs[j]) {
				continue
			}
			if p, ok := SegmentIntersection(pts[segs[i].A], pts[segs[i].B], pts[segs[j].A], pts[segs[j].B]); ok {
				set.Add(p)
			}
		}
	}
}

// sharesEndpoint covers adjacency and wrap-adjacency by index identity
func sharesEndpoint(a, b Segment) bool {
	return a.A == b.A || a.A == b.B || a.B == b.A || a.B == b.B
}
