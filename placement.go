package strum

// PlacementState identifies where a placement gesture currently stands.
type PlacementState uint8

const (
	PlacementIdle    PlacementState = iota // no gesture in progress
	PlacementActive                        // between BeginPlacement and EndPlacement
)

// PlacementPipeline turns placement gestures into validated beatmap
// mutations, re-running the ruleset's processor around every structural
// change so derived object state always reflects the full current set.
//
// All methods are synchronous and must be called from the update thread.
type PlacementPipeline struct {
	beatmap   *Beatmap
	ruleset   *Ruleset
	processor Processor // nil when the ruleset provides none

	current *HitObject // object of the in-flight gesture, nil when idle
	events  EventStore
}

// newPlacementPipeline wires a pipeline over the beatmap. The composer
// validates the ruleset before calling this; nil beatmap or a ruleset
// without ApplyDefaults is a programmer error here.
func newPlacementPipeline(beatmap *Beatmap, ruleset *Ruleset) *PlacementPipeline {
	if beatmap == nil {
		panic("strum: placement pipeline requires a beatmap")
	}
	if ruleset == nil || ruleset.ApplyDefaults == nil {
		panic("strum: placement pipeline requires a ruleset with ApplyDefaults")
	}
	p := &PlacementPipeline{beatmap: beatmap, ruleset: ruleset}
	if ruleset.CreateProcessor != nil {
		p.processor = ruleset.CreateProcessor(beatmap)
	}
	return p
}

// State returns PlacementActive while a gesture is in flight.
func (p *PlacementPipeline) State() PlacementState {
	if p.current != nil {
		return PlacementActive
	}
	return PlacementIdle
}

// CurrentPlacement returns the in-flight gesture's scratch object, or nil.
func (p *PlacementPipeline) CurrentPlacement() *HitObject {
	return p.current
}

// BeginPlacement starts a gesture with the given scratch object. The object
// is mutable caller state at this point: nothing is added to the beatmap and
// no processor runs. Panics if obj is nil or a gesture is already in flight.
func (p *PlacementPipeline) BeginPlacement(obj *HitObject) {
	if obj == nil {
		panic("strum: cannot begin placement with nil hit object")
	}
	if p.current != nil {
		panic("strum: placement already in progress")
	}
	p.current = obj
	p.emit(EditorEvent{Type: EventPlacementBegan, Object: obj})
}

// CancelPlacement abandons the in-flight gesture. The beatmap is untouched
// and the processor does not run. No-op when no gesture is in flight.
func (p *PlacementPipeline) CancelPlacement() {
	if p.current == nil {
		return
	}
	obj := p.current
	p.current = nil
	p.emit(EditorEvent{Type: EventPlacementCancelled, Object: obj})
}

// EndPlacement commits the in-flight gesture's object:
//
//	PreProcess -> ApplyDefaults -> insert (add notification) -> PostProcess
//
// Defaults are applied before the insert so the add notification never
// observes an unfinalized object. The processor passes cover the whole set,
// so every object's derived state reflects the commit on return. Panics if
// no gesture is in flight.
func (p *PlacementPipeline) EndPlacement() *HitObject {
	if p.current == nil {
		panic("strum: no placement in progress")
	}
	obj := p.current
	p.current = nil
	p.commit(obj)
	return obj
}

// Place commits an object without a surrounding gesture. Used for
// programmatic edits (paste, import) that have no interactive phase.
// Panics if obj is nil or a gesture is in flight.
func (p *PlacementPipeline) Place(obj *HitObject) {
	if obj == nil {
		panic("strum: cannot place nil hit object")
	}
	if p.current != nil {
		panic("strum: placement already in progress")
	}
	p.commit(obj)
}

// Delete removes obj from the beatmap and reports whether it was present.
// The processor pair re-runs only on an actual removal: deleting an object
// that is not in the collection leaves all derived state untouched.
func (p *PlacementPipeline) Delete(obj *HitObject) bool {
	if obj == nil {
		return false
	}
	if p.processor != nil {
		// PreProcess must observe the set before the removal, so the
		// membership check decides up front whether the pair runs at all.
		if !p.beatmap.Contains(obj) {
			return false
		}
		p.processor.PreProcess()
		p.beatmap.Remove(obj)
		p.processor.PostProcess()
	} else if !p.beatmap.Remove(obj) {
		return false
	}
	p.emit(EditorEvent{Type: EventObjectRemoved, Object: obj})
	return true
}

func (p *PlacementPipeline) commit(obj *HitObject) {
	if p.processor != nil {
		p.processor.PreProcess()
	}
	p.ruleset.ApplyDefaults(obj, p.beatmap.Timing, p.beatmap.Difficulty)
	obj.markDefaultsApplied()
	p.beatmap.Add(obj)
	if p.processor != nil {
		p.processor.PostProcess()
	}
	p.emit(EditorEvent{Type: EventObjectAdded, Object: obj})
}

func (p *PlacementPipeline) emit(e EditorEvent) {
	if p.events != nil {
		p.events.EmitEvent(e)
	}
}
