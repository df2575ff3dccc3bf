package music

import (
	"fmt"
	"math"
)

// Note is a fully resolved trigger payload handed to the dispatcher.
// Every fired note is an independent value; nothing is shared across calls.
type Note struct {
	Frequency float64 // Hz
	Duration  float64 // seconds
	Velocity  float64 // 0..1
	Name      string  // e.g. "A4", informational
}

// noteFrequencies holds equal-temperament frequencies for MIDI notes
// 0-127, A4 (note 69) = 440Hz
var noteFrequencies [128]float64

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func init() {
	for i := range noteFrequencies {
		noteFrequencies[i] = 440.0 * math.Pow(2, (float64(i)-69.0)/12.0)
	}
}

// NoteFreq returns the frequency in Hz for a MIDI note number
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= 128 {
		return 0
	}
	return noteFrequencies[midi]
}

// NoteName returns the scientific pitch name for a MIDI note number
func NoteName(midi int) string {
	if midi < 0 || midi >= 128 {
		return ""
	}
	return fmt.Sprintf("%s%d", noteNames[midi%12], midi/12-1)
}
