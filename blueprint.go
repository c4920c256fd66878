package strum

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	blueprintIdleAlpha     = 0.4
	blueprintSelectedAlpha = 1.0
	blueprintFadeDuration  = 0.12 // seconds
)

// Blueprint is the editor-only overlay wrapping one placed hit object. It
// tracks the object's drawn position for picking and carries the selection
// state, fading between idle and selected alpha.
//
// Blueprints never alter the object they wrap; selection handlers mutate
// objects through the placement pipeline.
type Blueprint struct {
	Object *HitObject
	Size   Vec2

	selected bool
	alpha    float64
	fade     *gween.Tween
}

// NewBlueprint creates an unselected blueprint over obj with the given
// picking size. Panics if obj is nil or size is not positive.
func NewBlueprint(obj *HitObject, size Vec2) *Blueprint {
	if obj == nil {
		panic("strum: blueprint requires a hit object")
	}
	if size.X <= 0 || size.Y <= 0 {
		panic("strum: blueprint size must be positive")
	}
	return &Blueprint{Object: obj, Size: size, alpha: blueprintIdleAlpha}
}

// Bounds returns the picking rectangle at the object's current drawn
// position. Recomputed on demand; the object moves every frame.
func (bp *Blueprint) Bounds() Rect {
	return Rect{X: bp.Object.X, Y: bp.Object.Y, Width: bp.Size.X, Height: bp.Size.Y}
}

// Contains reports whether the point lies inside the blueprint's bounds.
func (bp *Blueprint) Contains(x, y float64) bool {
	return bp.Bounds().Contains(x, y)
}

// Selected reports whether this blueprint is selected.
func (bp *Blueprint) Selected() bool {
	return bp.selected
}

// Select marks the blueprint selected and starts the alpha fade-in.
// No-op if already selected.
func (bp *Blueprint) Select() {
	if bp.selected {
		return
	}
	bp.selected = true
	bp.fade = gween.New(float32(bp.alpha), blueprintSelectedAlpha, blueprintFadeDuration, ease.OutQuad)
}

// Deselect clears the selection and starts the alpha fade-out.
// No-op if not selected.
func (bp *Blueprint) Deselect() {
	if !bp.selected {
		return
	}
	bp.selected = false
	bp.fade = gween.New(float32(bp.alpha), blueprintIdleAlpha, blueprintFadeDuration, ease.OutQuad)
}

// Alpha returns the overlay's current draw alpha.
func (bp *Blueprint) Alpha() float64 {
	return bp.alpha
}

// Update advances the selection fade by dt seconds. Call once per frame.
func (bp *Blueprint) Update(dt float32) {
	if bp.fade == nil {
		return
	}
	v, done := bp.fade.Update(dt)
	bp.alpha = float64(v)
	if done {
		bp.fade = nil
		// Land exactly on the target; float32 tween output drifts.
		if bp.selected {
			bp.alpha = blueprintSelectedAlpha
		} else {
			bp.alpha = blueprintIdleAlpha
		}
	}
}
