package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/steer/steering"
)

const (
	sampleRate = beep.SampleRate(48000)

	catchDuration  = 250 * time.Millisecond
	switchDuration = 60 * time.Millisecond
	warnDuration   = 150 * time.Millisecond

	// warnCooldown rate-limits the missing-entity buzz, which can fire every tick
	warnCooldown = time.Second
)

// SoundManager plays the simulation's audio cues
// Every method is a no-op until Initialize succeeds, so the simulation runs without a device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	lastWarn    time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	sm.initialized = false
}

// Initialized reports whether cues reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayCatch plays a rising chirp when the pursuit target is caught
func (sm *SoundManager) PlayCatch() {
	sm.play(NewSweepGenerator(sampleRate, 440, 1320, catchDuration, 0.3))
}

// PlaySwitch plays a blip pitched by behavior
func (sm *SoundManager) PlaySwitch(b steering.Behavior) {
	sm.play(NewBlipGenerator(sampleRate, switchFrequency(b), switchDuration, 0.2))
}

// PlayWarn plays a short buzz, at most once per cooldown
func (sm *SoundManager) PlayWarn(now time.Time) {
	sm.mu.Lock()
	if !sm.initialized || now.Sub(sm.lastWarn) < warnCooldown {
		sm.mu.Unlock()
		return
	}
	sm.lastWarn = now
	sm.mu.Unlock()

	sm.play(beep.Take(sampleRate.N(warnDuration), NewBuzzGenerator(sampleRate, 120)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// switchFrequency walks a pentatonic scale from A4 by behavior index
func switchFrequency(b steering.Behavior) float64 {
	steps := [...]float64{0, 2, 4, 7, 9, 12, 14}
	semis := steps[int(b)%len(steps)]
	return 440 * math.Pow(2, semis/12)
}
