package strum

// Processor is a ruleset-specific pass recomputing derived properties of the
// full object set around a structural mutation. PreProcess runs before the
// mutation's defaults are applied, PostProcess after. Both see the whole
// beatmap, not just the mutated object — authoring-time editing favors
// correctness over incremental updates.
type Processor interface {
	PreProcess()
	PostProcess()
}

// Ruleset is the per-game-mode capability surface, composed into the generic
// composer rather than subclassed.
//
// ApplyDefaults is mandatory. CreateProcessor may be nil, or may return nil
// for beatmaps the mode has no derived state for; the pipeline then skips
// Pre/PostProcess but still applies defaults. CompositionTools may be nil or
// return an empty list (a select-only composer). CreateBlueprint may be nil;
// placed objects then have no selection overlay.
type Ruleset struct {
	Name string

	// CreateProcessor builds the mode's derived-state processor for a beatmap.
	CreateProcessor func(*Beatmap) Processor

	// ApplyDefaults populates an object's derived fields from the current
	// timing and difficulty context.
	ApplyDefaults func(*HitObject, *TimingInfo, Difficulty)

	// CompositionTools lists the mode's placement tools, in display order.
	// The composer prepends the select tool; do not include it here.
	CompositionTools func() []*PlacementTool

	// CreateBlueprint builds the selection overlay for a placed object.
	CreateBlueprint func(*HitObject) *Blueprint
}

// --- ComboProcessor ---

// ComboProcessor is a stock Processor that recomputes combo numbering across
// the whole object set in PostProcess: objects flagged NewCombo start a new
// combo, and objects within a combo are numbered from zero in time order.
// PreProcess is a no-op; the pass only depends on post-mutation state.
type ComboProcessor struct {
	beatmap *Beatmap
}

// NewComboProcessor creates a combo processor over the given beatmap.
func NewComboProcessor(b *Beatmap) *ComboProcessor {
	return &ComboProcessor{beatmap: b}
}

// PreProcess implements Processor. Nothing to capture before the mutation.
func (p *ComboProcessor) PreProcess() {}

// PostProcess renumbers ComboIndex and IndexInCombo over the full set.
func (p *ComboProcessor) PostProcess() {
	combo := 0
	inCombo := 0
	for i, obj := range p.beatmap.Objects() {
		if i > 0 && obj.NewCombo {
			combo++
			inCombo = 0
		}
		obj.ComboIndex = combo
		obj.IndexInCombo = inCombo
		inCombo++
	}
}
