package music

import (
	"math"

	"github.com/lixenwraith/polyrhythm/parameter"
)

// Grid is a musical subdivision expressed in ticks per grid step
type Grid float64

const (
	GridQuarter       Grid = parameter.TicksPerBeat
	GridEighth        Grid = parameter.TicksPerBeat / 2
	GridEighthTriplet Grid = parameter.TicksPerBeat / 3
	GridSixteenth     Grid = parameter.TicksPerBeat / 4
)

// Interval returns the grid step length in seconds at the given tempo
func (g Grid) Interval(bpm float64) float64 {
	return TicksToSeconds(float64(g), bpm)
}

// Tolerance is the fire-now window around a grid point: the lesser of a
// fixed ceiling and a fraction of one grid interval
func (g Grid) Tolerance(bpm float64) float64 {
	return math.Min(parameter.QuantizeToleranceCeiling, parameter.QuantizeToleranceRatio*g.Interval(bpm))
}

// Quantize aligns a trigger requested at time t to the grid. It returns the
// execution time and whether the trigger should fire immediately (the
// requested time already sits within tolerance of a grid point). A rounded
// time that fell in the past defers to the next grid step instead.
func (g Grid) Quantize(t, bpm float64) (executeAt float64, immediate bool) {
	interval := float64(g)
	ticks := SecondsToTicks(t, bpm)
	candidate := TicksToSeconds(math.Round(ticks/interval)*interval, bpm)

	if math.Abs(t-candidate) <= g.Tolerance(bpm) {
		return t, true
	}
	if candidate > t {
		return candidate, false
	}
	return candidate + g.Interval(bpm), false
}
