package strum

import "testing"

// recordingStore captures emitted editor events.
type recordingStore struct {
	events []EditorEvent
}

func (s *recordingStore) EmitEvent(e EditorEvent) {
	s.events = append(s.events, e)
}

// editorRuleset builds a two-tool ruleset with blueprints and a combo
// processor, the shape a real game mode supplies.
func editorRuleset() *Ruleset {
	return &Ruleset{
		Name: "test",
		CreateProcessor: func(b *Beatmap) Processor {
			return NewComboProcessor(b)
		},
		ApplyDefaults: func(*HitObject, *TimingInfo, Difficulty) {},
		CompositionTools: func() []*PlacementTool {
			return []*PlacementTool{
				{Name: "Note", CreateObject: NewHitObject},
				{Name: "Hold", CreateObject: func(timeMS float64, lane int) *HitObject {
					obj := NewHitObject(timeMS, lane)
					obj.Duration = 500
					return obj
				}},
			}
		},
		CreateBlueprint: func(obj *HitObject) *Blueprint {
			return NewBlueprint(obj, Vec2{X: 40, Y: 40})
		},
	}
}

func testComposer(t *testing.T) (*Composer, *Beatmap, *Playfield) {
	t.Helper()
	b := testBeatmap(t)
	field, _, _ := testPlayfield(t)
	c, err := NewComposer(b, editorRuleset(), field)
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}
	return c, b, field
}

// --- Construction ---

func TestNewComposerFailures(t *testing.T) {
	field, _, _ := testPlayfield(t)
	b := testBeatmap(t)

	cases := []struct {
		name      string
		beatmap   *Beatmap
		ruleset   *Ruleset
		playfield *Playfield
		want      error
	}{
		{"nil beatmap", nil, editorRuleset(), field, ErrNoBeatmap},
		{"nil playfield", b, editorRuleset(), nil, ErrNoPlayfield},
		{"nil ruleset", b, nil, field, ErrRulesetMissing},
		{"ruleset without defaults", b, &Ruleset{Name: "broken"}, field, ErrRulesetMissing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewComposer(tc.beatmap, tc.ruleset, tc.playfield)
			if err != tc.want {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
			if c != nil {
				t.Error("failed construction should return a nil composer")
			}
		})
	}
}

func TestNewComposerMinimalRuleset(t *testing.T) {
	// No processor, no tools, no blueprints: still composes (select-only).
	b := testBeatmap(t)
	field, _, _ := testPlayfield(t)
	rs := &Ruleset{
		Name:          "bare",
		ApplyDefaults: func(*HitObject, *TimingInfo, Difficulty) {},
	}
	c, err := NewComposer(b, rs, field)
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}
	if len(c.Tools()) != 1 || c.Tools()[0] != SelectTool {
		t.Error("a toolless ruleset should yield a select-only tool list")
	}
}

func TestNewComposerAdoptsExistingObjects(t *testing.T) {
	b := testBeatmap(t)
	obj := NewHitObject(1000, 1)
	b.Add(obj)
	field, _, _ := testPlayfield(t)

	c, err := NewComposer(b, editorRuleset(), field)
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}
	if len(c.Blueprints()) != 1 {
		t.Errorf("blueprints = %d, want 1 for the pre-existing object", len(c.Blueprints()))
	}
	if len(field.Scroll().Tracked()) != 1 {
		t.Error("pre-existing objects should be tracked")
	}
}

// --- Tool list ---

func TestToolListSelectFirst(t *testing.T) {
	c, _, _ := testComposer(t)

	tools := c.Tools()
	if len(tools) != 3 {
		t.Fatalf("tools = %d, want 3 (select + 2)", len(tools))
	}
	if tools[0] != SelectTool {
		t.Error("index 0 must be the select tool")
	}
	if c.ActiveTool() != SelectTool {
		t.Error("the select tool should be active at startup")
	}
}

func TestSetTool(t *testing.T) {
	c, _, _ := testComposer(t)
	note := c.Tools()[1]

	c.SetTool(note)

	if c.ActiveTool() != note {
		t.Error("ActiveTool should be the note tool")
	}
}

func TestSetToolNotInListPanics(t *testing.T) {
	c, _, _ := testComposer(t)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for a foreign tool, got none")
		}
	}()
	c.SetTool(&PlacementTool{Name: "foreign"})
}

func TestSetToolAtOutOfRangePanics(t *testing.T) {
	c, _, _ := testComposer(t)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for index out of range, got none")
		}
	}()
	c.SetToolAt(9)
}

func TestSetToolCancelsGesture(t *testing.T) {
	c, b, _ := testComposer(t)
	c.SetToolAt(1)
	c.InjectPress(300, 200)
	c.Update(0)

	if c.Pipeline().State() != PlacementActive {
		t.Fatal("press should begin a placement")
	}

	c.SetToolAt(0)

	if c.Pipeline().State() != PlacementIdle {
		t.Error("switching tools should cancel the gesture")
	}
	if b.Len() != 0 {
		t.Error("a cancelled gesture must not commit")
	}
}

// --- Cursor validity ---

func TestCursorInPlacementArea(t *testing.T) {
	c, _, _ := testComposer(t)
	if !c.CursorInPlacementArea(300, 200) {
		t.Error("point inside the playfield should be valid")
	}
	if c.CursorInPlacementArea(50, 200) {
		t.Error("point outside the playfield should be invalid")
	}
}

// --- Placement gestures ---

func TestClickPlacesObject(t *testing.T) {
	c, b, _ := testComposer(t)
	c.SetToolAt(1)

	c.InjectClick(300, 200)
	c.Update(0) // press
	c.Update(0) // release

	if b.Len() != 1 {
		t.Fatalf("Len = %d, want 1", b.Len())
	}
	obj := b.Objects()[0]
	if !obj.DefaultsApplied() {
		t.Error("committed object should have defaults applied")
	}
	if obj.Lane != 2 {
		t.Errorf("Lane = %d, want 2", obj.Lane)
	}
	if len(c.Blueprints()) != 1 {
		t.Errorf("blueprints = %d, want 1", len(c.Blueprints()))
	}
	if c.Pipeline().State() != PlacementIdle {
		t.Error("pipeline should be idle after the commit")
	}
	if c.ActiveTool() != c.Tools()[1] {
		t.Error("the tool stays active for repeated placement")
	}
}

func TestClickOutsideDoesNothing(t *testing.T) {
	c, b, _ := testComposer(t)
	c.SetToolAt(1)

	c.InjectClick(50, 200)
	c.Update(0)
	c.Update(0)

	if b.Len() != 0 {
		t.Errorf("Len = %d, want 0", b.Len())
	}
}

func TestDragOutsideCancelsPlacement(t *testing.T) {
	c, b, field := testComposer(t)
	c.SetToolAt(1)

	c.InjectPress(300, 200)
	c.InjectRelease(50, 200) // released outside the placement area
	c.Update(0)
	c.Update(0)

	if b.Len() != 0 {
		t.Errorf("Len = %d, want 0 (release outside cancels)", b.Len())
	}
	if len(field.Scroll().Tracked()) != 0 {
		t.Error("the scratch object should be untracked on cancel")
	}
	if c.Pipeline().State() != PlacementIdle {
		t.Error("pipeline should be idle after the cancel")
	}
}

func TestDragMovesPlacement(t *testing.T) {
	c, b, _ := testComposer(t)
	c.SetToolAt(1)

	c.InjectPress(150, 200) // lane 0
	c.InjectMove(450, 200)  // lane 3
	c.InjectRelease(450, 200)
	for i := 0; i < 3; i++ {
		c.Update(0)
	}

	if b.Len() != 1 {
		t.Fatalf("Len = %d, want 1", b.Len())
	}
	if b.Objects()[0].Lane != 3 {
		t.Errorf("Lane = %d, want 3 (followed the drag)", b.Objects()[0].Lane)
	}
}

func TestPlacedObjectSnapsToPointerTime(t *testing.T) {
	c, b, field := testComposer(t)
	clock := field.Scroll().clock.(*ManualClock)
	clock.Time = 10000
	c.SetToolAt(1)

	// Local along-axis 240 of 480 at range 5000: 10000 - 2500 = 7500.
	c.InjectClick(300, 290)
	c.Update(0)
	c.Update(0)

	if b.Len() != 1 || b.Objects()[0].StartTime != 7500 {
		t.Errorf("StartTime = %v, want 7500", b.Objects()[0].StartTime)
	}
}

// --- Selection ---

func TestSelectToolPicksBlueprint(t *testing.T) {
	c, _, field := testComposer(t)
	c.SetToolAt(1)
	c.InjectClick(300, 200)
	c.Update(0)
	c.Update(0)

	// Objects scroll every frame; click where the object currently sits.
	obj := c.Blueprints()[0].Object
	c.SetToolAt(0)
	b := field.Bounds()
	c.InjectClick(b.X+obj.X+5, b.Y+obj.Y+5)
	c.Update(0)
	c.Update(0)

	if c.SelectedObject() != obj {
		t.Error("clicking a blueprint with the select tool should select it")
	}

	// Clicking empty space clears the selection.
	c.InjectClick(b.X+obj.X+5, b.Y+obj.Y+200)
	c.Update(0)
	c.Update(0)
	if c.SelectedObject() != nil {
		t.Error("clicking empty space should clear the selection")
	}
}

func TestDeleteSelected(t *testing.T) {
	c, b, _ := testComposer(t)
	c.SetToolAt(1)
	c.InjectClick(300, 200)
	c.Update(0)
	c.Update(0)

	bp := c.Blueprints()[0]
	c.Select(bp)
	c.DeleteSelected()

	if b.Len() != 0 {
		t.Errorf("Len = %d, want 0", b.Len())
	}
	if len(c.Blueprints()) != 0 {
		t.Error("the deleted object's blueprint should be gone")
	}
	if c.SelectedObject() != nil {
		t.Error("the selection should clear with the deleted object")
	}
}

func TestDeleteSelectedNothingSelected(t *testing.T) {
	c, _, _ := testComposer(t)
	c.DeleteSelected() // should not panic
}

// --- Right-click deletion ---

func TestRightClickDeletes(t *testing.T) {
	c, b, field := testComposer(t)
	c.SetToolAt(1)
	c.InjectClick(300, 200)
	c.Update(0)
	c.Update(0)

	obj := b.Objects()[0]
	fb := field.Bounds()
	c.InjectRightClick(fb.X+obj.X+5, fb.Y+obj.Y+5)
	c.Update(0)

	if b.Len() != 0 {
		t.Errorf("Len = %d, want 0 (right-click deletes)", b.Len())
	}
}

func TestRightClickEmptySpaceNoOp(t *testing.T) {
	c, b, _ := testComposer(t)
	c.InjectRightClick(300, 200)
	c.Update(0)
	if b.Len() != 0 {
		t.Errorf("Len = %d, want 0", b.Len())
	}
}

// --- Events ---

func TestComposerEmitsEvents(t *testing.T) {
	c, _, _ := testComposer(t)
	store := &recordingStore{}
	c.SetEventStore(store)

	c.SetToolAt(1)
	c.InjectClick(300, 200)
	c.Update(0)
	c.Update(0)

	types := make([]EditorEventType, len(store.events))
	for i, e := range store.events {
		types[i] = e.Type
	}
	want := []EditorEventType{EventToolChanged, EventPlacementBegan, EventObjectAdded}
	if len(types) != len(want) {
		t.Fatalf("event types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("event types = %v, want %v", types, want)
		}
	}
}

// --- Dispose ---

func TestComposerDispose(t *testing.T) {
	c, b, _ := testComposer(t)
	c.Dispose()

	// Mutations no longer reach the composer.
	b.Add(NewHitObject(0, 0))
	if len(c.Blueprints()) != 0 {
		t.Error("a disposed composer should not react to beatmap changes")
	}
}
