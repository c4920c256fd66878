package strum

import "math"

// --- Change subscription ---

type changeHandler[T comparable] struct {
	id uint32
	fn func(old, new T)
}

// BindingHandle allows removing a registered change callback.
type BindingHandle struct {
	remove func()
}

// Remove unregisters this callback so it no longer fires.
// Safe to call more than once.
func (h BindingHandle) Remove() {
	if h.remove != nil {
		h.remove()
		h.remove = nil
	}
}

// --- Bindable ---

// Bindable is a value holder with synchronous change notification.
// All callbacks run on the caller's goroutine before Set returns —
// strum is single-threaded and frame-driven, so no locking is needed.
//
// A Bindable can mirror another via BindTo: the child follows every change
// of its source and rejects local writes. Binding is one-directional.
type Bindable[T comparable] struct {
	value    T
	handlers []changeHandler[T]
	nextID   uint32

	source       *Bindable[T]
	sourceHandle BindingHandle
}

// NewBindable creates a bindable holding the given initial value.
func NewBindable[T comparable](initial T) *Bindable[T] {
	return &Bindable[T]{value: initial}
}

// Value returns the current value.
func (b *Bindable[T]) Value() T {
	return b.value
}

// Set updates the value and fires all change callbacks in registration order.
// Setting the current value again is a no-op. Panics if this bindable is
// bound to a source; bound bindables only change through their source.
func (b *Bindable[T]) Set(v T) {
	if b.source != nil {
		panic("strum: cannot set a bound bindable; set its source instead")
	}
	b.set(v)
}

func (b *Bindable[T]) set(v T) {
	if b.value == v {
		return
	}
	old := b.value
	b.value = v
	// Iterate a snapshot so handlers may unsubscribe themselves mid-fire.
	for _, h := range append([]changeHandler[T](nil), b.handlers...) {
		h.fn(old, v)
	}
}

// OnChange registers fn to run whenever the value changes.
// Callbacks run synchronously, after the value is updated.
func (b *Bindable[T]) OnChange(fn func(old, new T)) BindingHandle {
	b.nextID++
	id := b.nextID
	b.handlers = append(b.handlers, changeHandler[T]{id: id, fn: fn})
	return BindingHandle{remove: func() {
		for i := range b.handlers {
			if b.handlers[i].id == id {
				copy(b.handlers[i:], b.handlers[i+1:])
				b.handlers[len(b.handlers)-1] = changeHandler[T]{}
				b.handlers = b.handlers[:len(b.handlers)-1]
				return
			}
		}
	}}
}

// BindTo makes this bindable a one-directional mirror of source: it
// immediately adopts source's value and follows every subsequent change.
// While bound, local Set panics. Panics if source is nil, source is this
// bindable, or this bindable is already bound.
func (b *Bindable[T]) BindTo(source *Bindable[T]) {
	if source == nil {
		panic("strum: cannot bind to nil source")
	}
	if source == b {
		panic("strum: cannot bind a bindable to itself")
	}
	if b.source != nil {
		panic("strum: bindable is already bound; call Unbind first")
	}
	b.source = source
	b.set(source.value)
	b.sourceHandle = source.OnChange(func(_, v T) {
		b.set(v)
	})
}

// Unbind severs the link to the source. The current value is retained and
// local Set becomes legal again. No-op if not bound.
func (b *Bindable[T]) Unbind() {
	if b.source == nil {
		return
	}
	b.sourceHandle.Remove()
	b.source = nil
}

// IsBound reports whether this bindable mirrors a source.
func (b *Bindable[T]) IsBound() bool {
	return b.source != nil
}

// --- TimeRange ---

// TimeRange is a bounded scalar controlling how many milliseconds of track
// time map to the full visible extent of a playfield. The value is always in
// (0, Max]; a zero or negative range would divide positioning by zero and is
// rejected at the point it is set, not tolerated at compute time.
type TimeRange struct {
	Bindable[float64]
	max float64
}

// NewTimeRange creates a time range with the given initial value and upper
// bound. Panics if initial or max is invalid (must satisfy 0 < initial <= max).
func NewTimeRange(initial, max float64) *TimeRange {
	if max <= 0 {
		panic("strum: time range max must be > 0")
	}
	validateRange(initial, max)
	r := &TimeRange{max: max}
	r.value = initial
	return r
}

// Max returns the upper bound.
func (r *TimeRange) Max() float64 {
	return r.max
}

// Set updates the range. Panics if v is outside (0, Max].
func (r *TimeRange) Set(v float64) {
	validateRange(v, r.max)
	r.Bindable.Set(v)
}

// BindTo mirrors a parent time range. The parent's bound must not exceed
// this range's bound, otherwise mirrored values could violate it.
func (r *TimeRange) BindTo(parent *TimeRange) {
	if parent == nil {
		panic("strum: cannot bind to nil source")
	}
	if parent.max > r.max {
		panic("strum: parent time range max exceeds this range's max")
	}
	r.Bindable.BindTo(&parent.Bindable)
}

func validateRange(v, max float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		panic("strum: time range must be a finite value > 0")
	}
	if v > max {
		panic("strum: time range exceeds max")
	}
}
