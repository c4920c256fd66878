package strum

import "testing"

func TestNewBlueprintDefaults(t *testing.T) {
	obj := NewHitObject(1000, 0)
	bp := NewBlueprint(obj, Vec2{X: 40, Y: 40})

	if bp.Object != obj {
		t.Error("Object should be the wrapped hit object")
	}
	if bp.Selected() {
		t.Error("a new blueprint should not be selected")
	}
	if bp.Alpha() != blueprintIdleAlpha {
		t.Errorf("Alpha = %v, want %v", bp.Alpha(), blueprintIdleAlpha)
	}
}

func TestNewBlueprintNilObjectPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil object, got none")
		}
	}()
	NewBlueprint(nil, Vec2{X: 10, Y: 10})
}

func TestNewBlueprintBadSizePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for non-positive size, got none")
		}
	}()
	NewBlueprint(NewHitObject(0, 0), Vec2{X: 0, Y: 10})
}

func TestBlueprintBoundsFollowObject(t *testing.T) {
	obj := NewHitObject(1000, 0)
	bp := NewBlueprint(obj, Vec2{X: 40, Y: 40})

	obj.X, obj.Y = 100, 200
	r := bp.Bounds()
	if r.X != 100 || r.Y != 200 {
		t.Errorf("Bounds origin = (%v, %v), want (100, 200)", r.X, r.Y)
	}

	// The object moves every frame; bounds recompute on demand.
	obj.Y = 260
	if !bp.Contains(120, 280) {
		t.Error("Contains should track the object's new position")
	}
	if bp.Contains(120, 200) {
		t.Error("Contains should no longer match the old position")
	}
}

func TestBlueprintSelectFades(t *testing.T) {
	bp := NewBlueprint(NewHitObject(0, 0), Vec2{X: 40, Y: 40})

	bp.Select()
	if !bp.Selected() {
		t.Fatal("Selected should be true")
	}
	if bp.Alpha() != blueprintIdleAlpha {
		t.Errorf("Alpha = %v, want %v before any Update", bp.Alpha(), blueprintIdleAlpha)
	}

	bp.Update(blueprintFadeDuration / 2)
	mid := bp.Alpha()
	if mid <= blueprintIdleAlpha || mid >= blueprintSelectedAlpha {
		t.Errorf("Alpha = %v, want strictly between idle and selected mid-fade", mid)
	}

	bp.Update(blueprintFadeDuration)
	if bp.Alpha() != blueprintSelectedAlpha {
		t.Errorf("Alpha = %v, want %v after the fade", bp.Alpha(), blueprintSelectedAlpha)
	}
}

func TestBlueprintDeselectFadesBack(t *testing.T) {
	bp := NewBlueprint(NewHitObject(0, 0), Vec2{X: 40, Y: 40})
	bp.Select()
	bp.Update(blueprintFadeDuration * 2)

	bp.Deselect()
	bp.Update(blueprintFadeDuration * 2)

	if bp.Selected() {
		t.Error("Selected should be false")
	}
	if bp.Alpha() != blueprintIdleAlpha {
		t.Errorf("Alpha = %v, want %v", bp.Alpha(), blueprintIdleAlpha)
	}
}

func TestBlueprintSelectTwiceNoOp(t *testing.T) {
	bp := NewBlueprint(NewHitObject(0, 0), Vec2{X: 40, Y: 40})
	bp.Select()
	bp.Update(blueprintFadeDuration * 2)

	bp.Select() // no new fade
	if bp.Alpha() != blueprintSelectedAlpha {
		t.Errorf("Alpha = %v, want %v (re-select is a no-op)", bp.Alpha(), blueprintSelectedAlpha)
	}
}
