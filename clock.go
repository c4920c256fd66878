package strum

import "github.com/hajimehoshi/ebiten/v2"

// Clock exposes the current track time in milliseconds. The positioning pass
// reads it once per frame; implementations must be cheap and side-effect free.
type Clock interface {
	CurrentTime() float64
}

// --- ManualClock ---

// ManualClock is a Clock whose time is set explicitly. Used by tests and by
// hosts that slave track time to an external source (audio playback).
type ManualClock struct {
	Time float64
}

// CurrentTime returns the manually set time.
func (c *ManualClock) CurrentTime() float64 {
	return c.Time
}

// --- FrameClock ---

// FrameClock advances track time by one tick's worth of milliseconds per
// Update call, using ebiten's tick rate. Create one stopped, Seek to the
// desired start time, then Start.
type FrameClock struct {
	time    float64
	running bool
}

// NewFrameClock creates a stopped frame clock at time zero.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// CurrentTime returns the accumulated track time in milliseconds.
func (c *FrameClock) CurrentTime() float64 {
	return c.time
}

// Update advances the clock by one tick. Call once per ebiten Update.
// No-op while stopped.
func (c *FrameClock) Update() {
	if !c.running {
		return
	}
	c.time += 1000.0 / float64(ebiten.TPS())
}

// Start resumes time advancement.
func (c *FrameClock) Start() {
	c.running = true
}

// Stop pauses time advancement. CurrentTime holds its last value.
func (c *FrameClock) Stop() {
	c.running = false
}

// IsRunning reports whether the clock advances on Update.
func (c *FrameClock) IsRunning() bool {
	return c.running
}

// Seek jumps to the given track time without changing the running state.
func (c *FrameClock) Seek(timeMS float64) {
	c.time = timeMS
}
