package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/polyrhythm/trigger"
)

const (
	sampleRate = beep.SampleRate(44100)

	noteAttack  = 5 * time.Millisecond
	noteRelease = 60 * time.Millisecond
)

// Player turns fired triggers into synthesized notes. It satisfies
// trigger.Dispatcher; each firing becomes one independent voice on the
// shared mixer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player at the given master volume (0..1)
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences the player; beep owns the device, so closing just clears
// the mixer
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// Dispatch synthesizes one fired trigger
func (p *Player) Dispatch(f trigger.Firing) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || f.Note.Frequency <= 0 {
		return
	}

	duration := time.Duration(f.Note.Duration * float64(time.Second))
	if duration <= 0 {
		return
	}

	osc := newSine(f.Note.Frequency, duration, sampleRate)
	shaped := newEnvelope(osc, duration, noteAttack, noteRelease, sampleRate)
	voice := withVolume(shaped, f.Note.Velocity*p.volume)

	speaker.Lock()
	p.mixer.Add(voice)
	speaker.Unlock()
}
