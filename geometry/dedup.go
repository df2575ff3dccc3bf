package geometry

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/lixenwraith/polyrhythm/parameter"
)

// pointKey is the fixed-precision identity of a coordinate; two points that
// round to the same key are the same point regardless of float noise
type pointKey struct {
	x, y int64
}

func keyOf(p geom.Coord) pointKey {
	return pointKey{
		x: int64(math.Round(p.X / parameter.DedupPrecision)),
		y: int64(math.Round(p.Y / parameter.DedupPrecision)),
	}
}

// pointSet accumulates points with both exact-key and distance-threshold
// deduplication; the first occurrence in scan order wins
type pointSet struct {
	keys     map[pointKey]struct{}
	accepted []geom.Coord
}

func newPointSet() *pointSet {
	return &pointSet{keys: make(map[pointKey]struct{})}
}

// Add keeps p unless it duplicates an accepted point, and reports whether
// it was kept
func (ps *pointSet) Add(p geom.Coord) bool {
	k := keyOf(p)
	if _, dup := ps.keys[k]; dup {
		return false
	}
	for _, q := range ps.accepted {
		if p.Minus(q).Magnitude() < parameter.MergeThreshold {
			return false
		}
	}
	ps.keys[k] = struct{}{}
	ps.accepted = append(ps.accepted, p)
	return true
}

// Points returns the accepted points in insertion order
func (ps *pointSet) Points() []geom.Coord {
	return ps.accepted
}
