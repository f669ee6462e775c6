package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator plays a sine whose pitch glides from one frequency to another.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, samples: max(sr.N(d), 1)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.25 * math.Sin(g.phase) * (1 - progress)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ArpeggioGenerator plays a sequence of square-ish notes, each lasting step.
type ArpeggioGenerator struct {
	sr    beep.SampleRate
	notes []float64
	step  int
	pos   int
}

// NewArpeggioGenerator creates an arpeggio over notes.
func NewArpeggioGenerator(sr beep.SampleRate, notes []float64, step time.Duration) *ArpeggioGenerator {
	return &ArpeggioGenerator{sr: sr, notes: notes, step: max(sr.N(step), 1)}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := min(g.pos/g.step, len(g.notes)-1)
		t := float64(g.pos) / float64(g.sr)
		freq := g.notes[idx]

		// Fundamental plus odd harmonics
		sample := math.Sin(2*math.Pi*freq*t) + math.Sin(6*math.Pi*freq*t)/3
		envelope := 1 - float64(g.pos%g.step)/float64(g.step)
		sample *= 0.15 * envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}

// NoiseGenerator plays decaying low-passed noise over a falling thump.
type NoiseGenerator struct {
	sr      beep.SampleRate
	samples int
	pos     int
	state   uint32
	last    float64
}

// NewNoiseGenerator creates a noise burst fading out over d.
func NewNoiseGenerator(sr beep.SampleRate, d time.Duration) *NoiseGenerator {
	return &NoiseGenerator{sr: sr, samples: max(sr.N(d), 1), state: 0x9e3779b9}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		// xorshift32
		g.state ^= g.state << 13
		g.state ^= g.state >> 17
		g.state ^= g.state << 5
		white := float64(g.state)/math.MaxUint32*2 - 1
		g.last += 0.2 * (white - g.last)

		t := float64(g.pos) / float64(g.sr)
		decay := math.Max(1-float64(g.pos)/float64(g.samples), 0)
		thump := math.Sin(2 * math.Pi * (90 - 60*decay) * t)

		sample := (0.3*g.last + 0.2*thump) * decay * decay
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}
