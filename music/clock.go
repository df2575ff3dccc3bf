// Package music provides the timing side of the sequencer: clocks, BPM
// tick conversion, quantization grids, and note frequency tables.
package music

import (
	"sync"
	"time"

	"github.com/lixenwraith/polyrhythm/parameter"
)

// Clock is the time source consumed by the trigger engine, in seconds
type Clock interface {
	Now() float64
}

// SystemClock reads the monotonic system clock, zeroed at creation
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero seconds
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns seconds elapsed since creation
func (c *SystemClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock is a controllable time source for tests and offline rendering
type ManualClock struct {
	mu sync.RWMutex
	t  float64
}

// NewManualClock creates a manual clock at the given start time
func NewManualClock(start float64) *ManualClock {
	return &ManualClock{t: start}
}

// Now returns the current manual time
func (c *ManualClock) Now() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.t
}

// Set moves the clock to an absolute time
func (c *ManualClock) Set(t float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

// Advance moves the clock forward by dt seconds
func (c *ManualClock) Advance(dt float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t += dt
}

// ClampBPM bounds a tempo to the supported range
func ClampBPM(bpm float64) float64 {
	if bpm < parameter.MinBPM {
		return parameter.MinBPM
	}
	if bpm > parameter.MaxBPM {
		return parameter.MaxBPM
	}
	return bpm
}

// SecondsToTicks converts wall seconds to musical ticks at the given tempo
func SecondsToTicks(t, bpm float64) float64 {
	return t * ClampBPM(bpm) / 60 * parameter.TicksPerBeat
}

// TicksToSeconds converts musical ticks back to wall seconds
func TicksToSeconds(ticks, bpm float64) float64 {
	return ticks / parameter.TicksPerBeat * 60 / ClampBPM(bpm)
}
