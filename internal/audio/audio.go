// Package audio plays the game's sound cues through the system speaker.
// All sounds are synthesized, so there are no assets to load.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

const sampleRate = beep.SampleRate(44100)

// Cue lengths
const (
	flapLength  = 90 * time.Millisecond
	coinLength  = 180 * time.Millisecond
	crashLength = 350 * time.Millisecond
)

// Player mixes cues onto the speaker. It implements flappy.AudioSink.
// Play is a no-op until Init succeeds, so a machine without an audio
// device still runs the game silently.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Init before cues are audible.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts a cue without waiting for it to finish.
func (p *Player) Play(c flappy.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Streamer(c)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Streamer returns a finite streamer for the cue, or nil for unknown cues.
func Streamer(c flappy.Cue) beep.Streamer {
	switch c {
	case flappy.CueJump:
		return beep.Take(sampleRate.N(flapLength), NewSweepGenerator(sampleRate, 420, 780, flapLength))
	case flappy.CueCoin:
		return beep.Take(sampleRate.N(coinLength), NewArpeggioGenerator(sampleRate, []float64{988, 1319}, coinLength/2))
	case flappy.CueCrash:
		return beep.Take(sampleRate.N(crashLength), NewNoiseGenerator(sampleRate, crashLength))
	default:
		return nil
	}
}
