package strum

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Composer construction failures. These mean the editing surface cannot be
// shown — fatal to the feature, not to the process.
var (
	ErrNoBeatmap      = errors.New("strum: no beatmap loaded")
	ErrNoPlayfield    = errors.New("strum: no playfield")
	ErrRulesetMissing = errors.New("strum: ruleset does not support composition")
)

// Composer is the editing surface: it owns the tool list, the placement
// pipeline, and the blueprint overlays, and routes pointer gestures over the
// playfield into placements, selections, and deletions.
//
// Everything runs on the single update thread, one pass per frame.
type Composer struct {
	beatmap   *Beatmap
	ruleset   *Ruleset
	playfield *Playfield
	pipeline  *PlacementPipeline

	tools      []*PlacementTool
	activeTool *PlacementTool

	blueprints []*Blueprint
	selected   *Blueprint

	events      EventStore
	injectQueue []syntheticPointerEvent
	pressed     bool
	testRunner  *TestRunner
	debug       bool

	addedHandle   BindingHandle
	removedHandle BindingHandle
}

// NewComposer wires a composer over the beatmap, ruleset, and playfield. A
// nil beatmap or playfield, or a ruleset that cannot compose (nil, or no
// ApplyDefaults), fails construction: the error is logged to stderr and the
// caller shows no composer. A ruleset without a processor or without tools
// composes fine — Pre/PostProcess is skipped, the tool list is select-only.
//
// The composer prepends the select tool to the ruleset's composition tools
// and activates it; hit objects already in the beatmap are tracked and get
// blueprints immediately.
func NewComposer(beatmap *Beatmap, ruleset *Ruleset, playfield *Playfield) (*Composer, error) {
	if err := validateComposer(beatmap, ruleset, playfield); err != nil {
		logf("composer unavailable: %v", err)
		return nil, err
	}

	c := &Composer{
		beatmap:   beatmap,
		ruleset:   ruleset,
		playfield: playfield,
		pipeline:  newPlacementPipeline(beatmap, ruleset),
	}

	c.tools = []*PlacementTool{SelectTool}
	if ruleset.CompositionTools != nil {
		c.tools = append(c.tools, ruleset.CompositionTools()...)
	}
	c.activeTool = c.tools[0]

	c.addedHandle = beatmap.OnObjectAdded(c.objectAdded)
	c.removedHandle = beatmap.OnObjectRemoved(c.objectRemoved)
	for _, obj := range beatmap.Objects() {
		c.objectAdded(obj)
	}
	return c, nil
}

func validateComposer(beatmap *Beatmap, ruleset *Ruleset, playfield *Playfield) error {
	if beatmap == nil {
		return ErrNoBeatmap
	}
	if playfield == nil {
		return ErrNoPlayfield
	}
	if ruleset == nil || ruleset.ApplyDefaults == nil {
		return ErrRulesetMissing
	}
	return nil
}

// Beatmap returns the beatmap under edit.
func (c *Composer) Beatmap() *Beatmap {
	return c.beatmap
}

// Playfield returns the hosted playfield.
func (c *Composer) Playfield() *Playfield {
	return c.playfield
}

// Pipeline returns the placement pipeline.
func (c *Composer) Pipeline() *PlacementPipeline {
	return c.pipeline
}

// SetEventStore sets the optional ECS bridge. Editor events from the
// composer and its pipeline are forwarded to it.
func (c *Composer) SetEventStore(store EventStore) {
	c.events = store
	c.pipeline.events = store
}

// SetDebugMode enables per-frame pipeline stats on stderr.
func (c *Composer) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// --- Tools ---

// Tools returns the tool list. Index 0 is always the select tool.
// The returned slice MUST NOT be mutated.
func (c *Composer) Tools() []*PlacementTool {
	return c.tools
}

// ActiveTool returns the currently selected tool.
func (c *Composer) ActiveTool() *PlacementTool {
	return c.activeTool
}

// SetTool activates a tool from the tool list, cancelling any in-flight
// placement gesture. Panics if tool is not in the list.
func (c *Composer) SetTool(tool *PlacementTool) {
	if tool == c.activeTool {
		return
	}
	found := false
	for _, t := range c.tools {
		if t == tool {
			found = true
			break
		}
	}
	if !found {
		panic("strum: tool is not in the composer's tool list")
	}
	c.cancelGesture()
	c.activeTool = tool
	c.emit(EditorEvent{Type: EventToolChanged, Tool: tool.Name})
}

// SetToolAt activates the tool at the given list index.
func (c *Composer) SetToolAt(index int) {
	if index < 0 || index >= len(c.tools) {
		panic("strum: tool index out of range")
	}
	c.SetTool(c.tools[index])
}

// CursorInPlacementArea reports whether the screen point sits over the
// playfield's input-receiving region. Pure query, no caching.
func (c *Composer) CursorInPlacementArea(screenX, screenY float64) bool {
	return c.playfield.Contains(screenX, screenY)
}

// --- Blueprints & selection ---

// Blueprints returns the live overlays, in placement order.
// The returned slice MUST NOT be mutated.
func (c *Composer) Blueprints() []*Blueprint {
	return c.blueprints
}

// SelectedObject returns the selected blueprint's object, or nil.
func (c *Composer) SelectedObject() *HitObject {
	if c.selected == nil {
		return nil
	}
	return c.selected.Object
}

// Select marks bp as the selection, deselecting any previous one.
func (c *Composer) Select(bp *Blueprint) {
	if bp == c.selected {
		return
	}
	if c.selected != nil {
		c.selected.Deselect()
	}
	c.selected = bp
	if bp != nil {
		bp.Select()
	}
}

// DeleteSelected deletes the selected object through the pipeline.
// No-op with nothing selected.
func (c *Composer) DeleteSelected() {
	if c.selected == nil {
		return
	}
	c.pipeline.Delete(c.selected.Object)
}

func (c *Composer) objectAdded(obj *HitObject) {
	c.playfield.Track(obj)
	if c.ruleset.CreateBlueprint == nil {
		return
	}
	c.blueprints = append(c.blueprints, c.ruleset.CreateBlueprint(obj))
}

func (c *Composer) objectRemoved(obj *HitObject) {
	c.playfield.Untrack(obj)
	for i, bp := range c.blueprints {
		if bp.Object == obj {
			if c.selected == bp {
				c.selected = nil
			}
			copy(c.blueprints[i:], c.blueprints[i+1:])
			c.blueprints[len(c.blueprints)-1] = nil
			c.blueprints = c.blueprints[:len(c.blueprints)-1]
			return
		}
	}
}

// --- Gestures ---

// pointerDown starts a gesture at a screen point: with the select tool it
// picks (or clears) the selection, with a placement tool it begins a
// placement. Points outside the placement area are ignored.
func (c *Composer) pointerDown(screenX, screenY float64) {
	if !c.CursorInPlacementArea(screenX, screenY) {
		return
	}
	if c.activeTool.IsSelect() {
		c.Select(c.playfield.BlueprintAt(c.blueprints, screenX, screenY))
		return
	}
	timeMS, lane, ok := c.playfield.PlacementAt(screenX, screenY)
	if !ok {
		return
	}
	obj := c.createObject(timeMS, lane)
	c.pipeline.BeginPlacement(obj)
	// Show the scratch object while the gesture is held.
	c.playfield.Track(obj)
}

// pointerMove drags the in-flight placement to follow the pointer.
func (c *Composer) pointerMove(screenX, screenY float64) {
	obj := c.pipeline.CurrentPlacement()
	if obj == nil {
		return
	}
	timeMS, lane, ok := c.playfield.PlacementAt(screenX, screenY)
	if !ok {
		return
	}
	obj.StartTime = timeMS
	obj.Lane = lane
	c.playfield.Track(obj) // re-lays out the lane coordinate
}

// pointerUp finishes a gesture: commit inside the placement area, cancel
// outside. The tool stays active for repeated placement.
func (c *Composer) pointerUp(screenX, screenY float64) {
	obj := c.pipeline.CurrentPlacement()
	if obj == nil {
		return
	}
	if !c.CursorInPlacementArea(screenX, screenY) {
		c.cancelGesture()
		return
	}
	c.pointerMove(screenX, screenY) // commit at the release point
	c.pipeline.EndPlacement()
}

// deleteAt deletes the object under the screen point, regardless of the
// active tool. No-op over empty space.
func (c *Composer) deleteAt(screenX, screenY float64) {
	bp := c.playfield.BlueprintAt(c.blueprints, screenX, screenY)
	if bp == nil {
		return
	}
	c.pipeline.Delete(bp.Object)
}

// cancelGesture abandons an in-flight placement and removes its scratch
// object from the playfield.
func (c *Composer) cancelGesture() {
	obj := c.pipeline.CurrentPlacement()
	if obj == nil {
		return
	}
	c.pipeline.CancelPlacement()
	c.playfield.Untrack(obj)
}

func (c *Composer) createObject(timeMS float64, lane int) *HitObject {
	if c.activeTool.CreateObject != nil {
		return c.activeTool.CreateObject(timeMS, lane)
	}
	return NewHitObject(timeMS, lane)
}

func (c *Composer) emit(e EditorEvent) {
	if c.events != nil {
		c.events.EmitEvent(e)
	}
}

// --- Frame pass ---

// Update runs one editor frame: consume at most one injected pointer event,
// advance the positioning pass, and advance blueprint fades. TimeRange
// changes and beatmap mutations from this frame are reflected in positions
// no later than this pass.
func (c *Composer) Update(dt float32) {
	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	c.processInjectedInput()
	c.playfield.Update(dt)
	for _, bp := range c.blueprints {
		bp.Update(dt)
	}
	if c.debug {
		c.debugLog()
	}
}

// Draw renders the playfield and the blueprint overlays.
func (c *Composer) Draw(screen *ebiten.Image) {
	c.playfield.Draw(screen)
	for _, bp := range c.blueprints {
		c.playfield.DrawOverlay(screen, bp)
	}
}

// Dispose unsubscribes the composer from its beatmap. The composer must not
// be used afterwards.
func (c *Composer) Dispose() {
	c.cancelGesture()
	c.addedHandle.Remove()
	c.removedHandle.Remove()
	c.blueprints = nil
	c.selected = nil
}

// debugLog prints a one-line pipeline summary to stderr.
func (c *Composer) debugLog() {
	debugCheckTrackedCount(c.playfield.scroll)
	logf("objects: %d | blueprints: %d | tool: %s | state: %d",
		c.beatmap.Len(), len(c.blueprints), c.activeTool.Name, c.pipeline.State())
}
