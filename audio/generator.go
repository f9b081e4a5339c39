package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// envelope returns a linear attack/release gain for sample pos of total
func envelope(pos, total, attack, release int) float64 {
	switch {
	case attack > 0 && pos < attack:
		return float64(pos) / float64(attack)
	case release > 0 && pos >= total-release:
		return math.Max(float64(total-pos)/float64(release), 0)
	default:
		return 1
	}
}

// SweepGenerator glides a sine from one frequency to another over its duration
// Used for the catch chirp
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
	gain     float64
}

// NewSweepGenerator creates a sweep lasting d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration, gain float64) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, total: sr.N(d), gain: gain}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	attack, release := g.sr.N(5*time.Millisecond), g.total/3
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		s := g.gain * envelope(g.pos, g.total, attack, release) * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// BlipGenerator is a short square tone with harmonics softened by an envelope
// Used for behavior switches; freq varies per behavior
type BlipGenerator struct {
	sr    beep.SampleRate
	freq  float64
	total int
	pos   int
	gain  float64
}

// NewBlipGenerator creates a blip lasting d
func NewBlipGenerator(sr beep.SampleRate, freq float64, d time.Duration, gain float64) *BlipGenerator {
	return &BlipGenerator{sr: sr, freq: freq, total: sr.N(d), gain: gain}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	attack := g.sr.N(2 * time.Millisecond)
	release := g.total / 2
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		s := 0.6*math.Sin(2*math.Pi*g.freq*t) +
			0.2*math.Sin(2*math.Pi*g.freq*3*t) +
			0.1*math.Sin(2*math.Pi*g.freq*5*t)
		s *= g.gain * envelope(g.pos, g.total, attack, release)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz, used for steering warnings
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates an unbounded buzz; wrap with beep.Take
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)

		// Fade in over 20ms
		fade := math.Min(t/0.02, 1.0)
		sample *= fade * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
