package strum

import "sort"

// --- Timing ---

// TimingPoint anchors a tempo change at a point in the track.
type TimingPoint struct {
	Time float64 // milliseconds into the track
	BPM  float64
}

// TimingInfo is the track's ordered tempo map. Rulesets consult it when
// applying defaults (snapping, per-beat derived values).
type TimingInfo struct {
	points []TimingPoint
}

// NewTimingInfo creates a tempo map from the given points, sorted by time.
// Panics if points is empty or any BPM is not > 0.
func NewTimingInfo(points []TimingPoint) *TimingInfo {
	if len(points) == 0 {
		panic("strum: timing info requires at least one timing point")
	}
	sorted := append([]TimingPoint(nil), points...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	for _, p := range sorted {
		if p.BPM <= 0 {
			panic("strum: timing point BPM must be > 0")
		}
	}
	return &TimingInfo{points: sorted}
}

// PointAt returns the timing point in effect at the given time. Times before
// the first point fall under the first point.
func (t *TimingInfo) PointAt(timeMS float64) TimingPoint {
	active := t.points[0]
	for _, p := range t.points[1:] {
		if p.Time > timeMS {
			break
		}
		active = p
	}
	return active
}

// BPMAt returns the tempo in effect at the given time.
func (t *TimingInfo) BPMAt(timeMS float64) float64 {
	return t.PointAt(timeMS).BPM
}

// BeatLengthAt returns the duration of one beat, in milliseconds, at the
// given time.
func (t *TimingInfo) BeatLengthAt(timeMS float64) float64 {
	return 60000.0 / t.BPMAt(timeMS)
}

// Difficulty carries the authored difficulty settings rulesets read when
// applying defaults.
type Difficulty struct {
	OverallDifficulty float64
	ApproachRate      float64
	SliderMultiplier  float64
}

// --- Beatmap ---

type objectHandler struct {
	id uint32
	fn func(*HitObject)
}

// Beatmap is the editable, time-ordered collection of hit objects plus the
// timing and difficulty context defaults are applied against.
//
// The beatmap itself is a dumb container: it keeps order and fires add/remove
// notifications synchronously. Keeping derived object state consistent across
// mutations is the placement pipeline's job.
type Beatmap struct {
	Timing     *TimingInfo
	Difficulty Difficulty

	objects []*HitObject

	added   []objectHandler
	removed []objectHandler
	nextID  uint32
}

// NewBeatmap creates an empty beatmap with the given timing and difficulty
// context. Panics if timing is nil.
func NewBeatmap(timing *TimingInfo, difficulty Difficulty) *Beatmap {
	if timing == nil {
		panic("strum: beatmap requires timing info")
	}
	return &Beatmap{Timing: timing, Difficulty: difficulty}
}

// Objects returns the objects in start-time order.
// The returned slice MUST NOT be mutated by the caller.
func (b *Beatmap) Objects() []*HitObject {
	return b.objects
}

// Len returns the number of objects.
func (b *Beatmap) Len() int {
	return len(b.objects)
}

// Contains reports whether obj is in the beatmap.
func (b *Beatmap) Contains(obj *HitObject) bool {
	return b.indexOf(obj) >= 0
}

// Add inserts obj keeping start-time order. Objects sharing a start time keep
// insertion order. Fires add notifications after the insert. Panics if obj is
// nil or already present.
func (b *Beatmap) Add(obj *HitObject) {
	if obj == nil {
		panic("strum: cannot add nil hit object")
	}
	if b.indexOf(obj) >= 0 {
		panic("strum: hit object is already in the beatmap")
	}
	at := sort.Search(len(b.objects), func(i int) bool {
		return b.objects[i].StartTime > obj.StartTime
	})
	b.objects = append(b.objects, nil)
	copy(b.objects[at+1:], b.objects[at:])
	b.objects[at] = obj
	for _, h := range append([]objectHandler(nil), b.added...) {
		h.fn(obj)
	}
}

// Remove deletes obj and reports whether it was present. Fires remove
// notifications only on an actual removal.
func (b *Beatmap) Remove(obj *HitObject) bool {
	i := b.indexOf(obj)
	if i < 0 {
		return false
	}
	copy(b.objects[i:], b.objects[i+1:])
	b.objects[len(b.objects)-1] = nil
	b.objects = b.objects[:len(b.objects)-1]
	for _, h := range append([]objectHandler(nil), b.removed...) {
		h.fn(obj)
	}
	return true
}

// OnObjectAdded registers fn to run synchronously after each insert.
func (b *Beatmap) OnObjectAdded(fn func(*HitObject)) BindingHandle {
	b.nextID++
	id := b.nextID
	b.added = append(b.added, objectHandler{id: id, fn: fn})
	return BindingHandle{remove: func() {
		b.added = removeObjectHandler(b.added, id)
	}}
}

// OnObjectRemoved registers fn to run synchronously after each removal.
func (b *Beatmap) OnObjectRemoved(fn func(*HitObject)) BindingHandle {
	b.nextID++
	id := b.nextID
	b.removed = append(b.removed, objectHandler{id: id, fn: fn})
	return BindingHandle{remove: func() {
		b.removed = removeObjectHandler(b.removed, id)
	}}
}

func (b *Beatmap) indexOf(obj *HitObject) int {
	for i, o := range b.objects {
		if o == obj {
			return i
		}
	}
	return -1
}

func removeObjectHandler(s []objectHandler, id uint32) []objectHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = objectHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}
