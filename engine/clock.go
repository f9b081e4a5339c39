package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/steer/parameter"
)

// TimeSource supplies wall time to the frame clock
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the monotonic system clock
type SystemTime struct{}

// Now returns the current time with monotonic clock reading
func (SystemTime) Now() time.Time {
	return time.Now()
}

// ManualTime is a controllable time source for tests and headless replays
type ManualTime struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewManualTime creates a manual time source starting at startTime
func NewManualTime(startTime time.Time) *ManualTime {
	return &ManualTime{currentTime: startTime}
}

// Now returns the current mocked time
func (m *ManualTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the current time forward by d
func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// FrameClock turns successive wall readings into per-tick elapsed seconds
// Paused time is swallowed and dt is capped at parameter.MaxTickSeconds
type FrameClock struct {
	source TimeSource
	last   time.Time
	paused bool
	maxDt  float32
}

// NewFrameClock creates a clock reading from source, nil selects SystemTime
func NewFrameClock(source TimeSource) *FrameClock {
	if source == nil {
		source = SystemTime{}
	}
	return &FrameClock{
		source: source,
		last:   source.Now(),
		maxDt:  parameter.MaxTickSeconds,
	}
}

// Tick returns seconds elapsed since the previous Tick, zero while paused
func (c *FrameClock) Tick() float32 {
	now := c.source.Now()
	elapsed := now.Sub(c.last)
	c.last = now
	if c.paused || elapsed <= 0 {
		return 0
	}
	return min(float32(elapsed.Seconds()), c.maxDt)
}

// SetPaused freezes or resumes simulation time
func (c *FrameClock) SetPaused(paused bool) {
	if c.paused == paused {
		return
	}
	c.paused = paused
	// Resume measures from now so the pause interval is not replayed
	c.last = c.source.Now()
}

// Paused reports whether simulation time is frozen
func (c *FrameClock) Paused() bool {
	return c.paused
}
