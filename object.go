package strum

// objectIDCounter is a plain counter (no atomic — strum is single-threaded).
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// HitObject is one scheduled gameplay event. A single flat struct is used for
// all object kinds to avoid interface dispatch on the per-frame path.
//
// StartTime and Lane are authored state. The combo fields are derived: they
// are recomputed by the ruleset's processor whenever the owning beatmap
// mutates and must not be written by hand. X and Y are transient screen
// coordinates written by the scroll container each frame.
type HitObject struct {
	// Identity
	ID uint32

	// Authored state
	StartTime float64 // milliseconds into the track
	Duration  float64 // 0 for instantaneous objects; > 0 for holds
	Lane      int
	NewCombo  bool // authored combo break request

	// Derived state (recomputed on every beatmap mutation)
	ComboIndex   int // which combo this object belongs to, 0-based
	IndexInCombo int // position within its combo, 0-based

	// Transient screen position (written by ScrollContainer.Update)
	X, Y float64

	defaultsApplied bool
}

// NewHitObject creates a hit object scheduled at the given time and lane.
// Derived fields are zero until the object is committed through a placement
// pipeline, which applies ruleset defaults and reprocesses the beatmap.
func NewHitObject(startTime float64, lane int) *HitObject {
	if lane < 0 {
		panic("strum: hit object lane must be >= 0")
	}
	return &HitObject{
		ID:        nextObjectID(),
		StartTime: startTime,
		Lane:      lane,
	}
}

// EndTime returns StartTime + Duration.
func (o *HitObject) EndTime() float64 {
	return o.StartTime + o.Duration
}

// DefaultsApplied reports whether ruleset defaults have been applied since
// the object was created. Objects mid-placement have not been finalized yet.
func (o *HitObject) DefaultsApplied() bool {
	return o.defaultsApplied
}

// markDefaultsApplied is called by the placement pipeline after the ruleset's
// ApplyDefaults runs.
func (o *HitObject) markDefaultsApplied() {
	o.defaultsApplied = true
}
