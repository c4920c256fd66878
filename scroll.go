package strum

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ScrollOffset maps a scheduled time to a screen offset along one axis.
//
//	offset = ((currentTime - startTime) / timeRange) * extent
//
// The result is negative while the object is in the future (it approaches the
// origin as currentTime advances) and grows past extent once the object is
// behind the current time. There is no clamping: visibility culling is the
// caller's concern, not the positioning math's.
//
// timeRange must be > 0; a non-positive range panics. The TimeRange type
// rejects such values at set time, so a ScrollContainer never trips this.
func ScrollOffset(currentTime, startTime, timeRange, extent float64) float64 {
	if timeRange <= 0 {
		panic("strum: scroll offset requires a time range > 0")
	}
	return (currentTime - startTime) / timeRange * extent
}

// ScrollContainer positions tracked hit objects along one screen axis from
// the current clock time and a shared time range. The axis is fixed at
// construction; the orthogonal coordinate is never written, leaving it to
// the host's layout.
//
// Every Update recomputes every tracked object — O(tracked) per frame, no
// caching, since the clock changes every frame anyway.
type ScrollContainer struct {
	axis      Axis
	extent    float64
	clock     Clock
	timeRange *TimeRange

	objects []*HitObject

	// Visual range smoothing. The bound TimeRange stays exact; only the
	// range used for drawing eases toward it.
	visualRange    float64
	rangeTween     *gween.Tween
	smoothDuration float32
	smoothEase     ease.TweenFunc
	rangeHandle    BindingHandle
}

// NewScrollContainer creates a scroll container driving the given axis over
// extent screen units. Panics if extent is not > 0 or clock or timeRange is
// nil — a container with no clock or range has nothing to position against.
func NewScrollContainer(axis Axis, extent float64, clock Clock, timeRange *TimeRange) *ScrollContainer {
	if extent <= 0 {
		panic("strum: scroll container extent must be > 0")
	}
	if clock == nil {
		panic("strum: scroll container requires a clock")
	}
	if timeRange == nil {
		panic("strum: scroll container requires a time range")
	}
	c := &ScrollContainer{
		axis:        axis,
		extent:      extent,
		clock:       clock,
		timeRange:   timeRange,
		visualRange: timeRange.Value(),
	}
	c.rangeHandle = timeRange.OnChange(func(_, v float64) {
		if c.smoothDuration > 0 {
			c.rangeTween = gween.New(float32(c.visualRange), float32(v), c.smoothDuration, c.smoothEase)
			return
		}
		c.visualRange = v
	})
	return c
}

// Axis returns the axis fixed at construction.
func (c *ScrollContainer) Axis() Axis {
	return c.axis
}

// Extent returns the screen extent in container units.
func (c *ScrollContainer) Extent() float64 {
	return c.extent
}

// TimeRange returns the bound time range.
func (c *ScrollContainer) TimeRange() *TimeRange {
	return c.timeRange
}

// VisualRange returns the range currently used for positioning. Equal to the
// bound TimeRange's value unless a smoothing transition is in flight.
func (c *ScrollContainer) VisualRange() float64 {
	return c.visualRange
}

// SetRangeSmoothing eases the visual range toward the bound range's value
// over the given duration (seconds) whenever the range changes. A duration
// of 0 disables smoothing and snaps any in-flight transition to the target.
func (c *ScrollContainer) SetRangeSmoothing(duration float32, fn ease.TweenFunc) {
	if duration <= 0 {
		c.smoothDuration = 0
		c.smoothEase = nil
		c.rangeTween = nil
		c.visualRange = c.timeRange.Value()
		return
	}
	if fn == nil {
		fn = ease.Linear
	}
	c.smoothDuration = duration
	c.smoothEase = fn
}

// Track adds obj to the positioned set. Panics if obj is nil.
// Tracking the same object twice is a no-op.
func (c *ScrollContainer) Track(obj *HitObject) {
	if obj == nil {
		panic("strum: cannot track nil hit object")
	}
	for _, o := range c.objects {
		if o == obj {
			return
		}
	}
	c.objects = append(c.objects, obj)
}

// Untrack removes obj from the positioned set. No-op if not tracked.
// The object's coordinates keep their last written values.
func (c *ScrollContainer) Untrack(obj *HitObject) {
	for i, o := range c.objects {
		if o == obj {
			copy(c.objects[i:], c.objects[i+1:])
			c.objects[len(c.objects)-1] = nil
			c.objects = c.objects[:len(c.objects)-1]
			return
		}
	}
}

// Tracked returns the positioned set. The returned slice MUST NOT be mutated.
func (c *ScrollContainer) Tracked() []*HitObject {
	return c.objects
}

// Update advances range smoothing by dt seconds and writes each tracked
// object's offset to its X (horizontal) or Y (vertical) coordinate. The
// orthogonal coordinate is left untouched. Call once per frame.
func (c *ScrollContainer) Update(dt float32) {
	if c.rangeTween != nil {
		v, done := c.rangeTween.Update(dt)
		c.visualRange = float64(v)
		if done {
			c.rangeTween = nil
			c.visualRange = c.timeRange.Value()
		}
	}

	t := c.clock.CurrentTime()
	for _, obj := range c.objects {
		offset := ScrollOffset(t, obj.StartTime, c.visualRange, c.extent)
		if c.axis == AxisHorizontal {
			obj.X = offset
		} else {
			obj.Y = offset
		}
	}
}

// TimeAt inverts the positioning math: it returns the start time an object
// would need to sit at the given offset along the scroll axis right now.
// The editor uses this to turn a pointer position into a placement time.
func (c *ScrollContainer) TimeAt(offset float64) float64 {
	return c.clock.CurrentTime() - offset/c.extent*c.visualRange
}

// Dispose unsubscribes from the time range. The container must not be used
// afterwards.
func (c *ScrollContainer) Dispose() {
	c.rangeHandle.Remove()
	c.objects = nil
	c.rangeTween = nil
}
