package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/steer/steering"
)

// TestSoundManagerGracefulDegradation verifies cues are safe without a device
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()
	assert.NotPanics(t, func() {
		sm.PlayCatch()
		sm.PlaySwitch(steering.BehaviorWander)
		sm.PlayWarn(time.Now())
		sm.Cleanup()
	})
	assert.False(t, sm.Initialized())
}

// TestSoundManagerInitialization tolerates environments without audio
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	assert.NoError(t, sm.Initialize(), "second initialize is a no-op")
	sm.PlayCatch()
	sm.Cleanup()
	assert.False(t, sm.Initialized())
}

// drain streams s to completion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestSweepGenerator_FiniteAndBounded(t *testing.T) {
	g := NewSweepGenerator(sampleRate, 440, 1320, catchDuration, 0.3)
	n, peak := drain(g)
	assert.Equal(t, sampleRate.N(catchDuration), n)
	assert.LessOrEqual(t, peak, 0.3+1e-9)
	assert.Greater(t, peak, 0.0)
	assert.NoError(t, g.Err())
}

func TestBlipGenerator_FiniteAndBounded(t *testing.T) {
	g := NewBlipGenerator(sampleRate, 523.25, switchDuration, 0.2)
	n, peak := drain(g)
	assert.Equal(t, sampleRate.N(switchDuration), n)
	assert.LessOrEqual(t, peak, 0.2*0.9+1e-9)
}

func TestBuzzGenerator_TakeBoundsLength(t *testing.T) {
	n, _ := drain(beep.Take(sampleRate.N(warnDuration), NewBuzzGenerator(sampleRate, 120)))
	assert.Equal(t, sampleRate.N(warnDuration), n)
}

func TestSwitchFrequency(t *testing.T) {
	assert.InDelta(t, 440, switchFrequency(steering.BehaviorSeek), 1e-9)
	assert.InDelta(t, 880, switchFrequency(steering.BehaviorEvade), 1e-9)
	seen := make(map[float64]bool)
	for _, b := range steering.All() {
		seen[switchFrequency(b)] = true
	}
	assert.Len(t, seen, len(steering.All()))
}

func TestEnvelope(t *testing.T) {
	assert.Equal(t, 0.0, envelope(0, 100, 10, 10))
	assert.Equal(t, 0.5, envelope(5, 100, 10, 10))
	assert.Equal(t, 1.0, envelope(50, 100, 10, 10))
	assert.InDelta(t, 0.1, envelope(99, 100, 10, 10), 1e-9)
}
