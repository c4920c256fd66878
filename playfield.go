package strum

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image used to draw solid quads.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(ColorWhite.toRGBA())
}

// PlayfieldConfig configures a playfield's screen region and look.
type PlayfieldConfig struct {
	// Bounds is the playfield's screen-space region. Also the
	// placement-valid area for cursor hit tests.
	Bounds Rect

	// Axis is the scroll direction. Lanes are laid out along the
	// orthogonal axis.
	Axis Axis

	// Lanes is the number of lanes. Must be > 0.
	Lanes int

	// NoteSize is the drawn quad size per object. Zero means a square
	// sized to 60% of the lane width.
	NoteSize Vec2

	// BackgroundColor fills the bounds. Zero alpha skips the fill.
	BackgroundColor Color

	// ComboColors cycles by each object's ComboIndex. Empty means white.
	ComboColors []Color
}

// Playfield hosts a scroll container inside a screen region: it lays lanes
// out across the orthogonal axis, renders tracked objects as quads, and
// answers the editor's placement queries (hit test, pointer to time/lane).
//
// Object coordinates are playfield-local: the scroll container writes the
// along-axis coordinate each frame, the playfield writes the lane (cross)
// coordinate once when the object is tracked. Rendering translates by the
// bounds origin. Offscreen quads are culled here at draw time — the
// positioning math itself never clamps.
type Playfield struct {
	cfg    PlayfieldConfig
	scroll *ScrollContainer
}

// NewPlayfield creates a playfield over the given clock and time range.
// Panics on a non-positive bounds size or lane count (NewScrollContainer
// covers the nil clock/range cases).
func NewPlayfield(cfg PlayfieldConfig, clock Clock, timeRange *TimeRange) *Playfield {
	if cfg.Bounds.Width <= 0 || cfg.Bounds.Height <= 0 {
		panic("strum: playfield bounds must have positive size")
	}
	if cfg.Lanes <= 0 {
		panic("strum: playfield requires at least one lane")
	}
	p := &Playfield{cfg: cfg}
	if cfg.NoteSize.X <= 0 || cfg.NoteSize.Y <= 0 {
		side := p.laneSize() * 0.6
		p.cfg.NoteSize = Vec2{X: side, Y: side}
	}
	p.scroll = NewScrollContainer(cfg.Axis, p.alongExtent(), clock, timeRange)
	return p
}

// Scroll returns the playfield's scroll container.
func (p *Playfield) Scroll() *ScrollContainer {
	return p.scroll
}

// Bounds returns the playfield's screen region.
func (p *Playfield) Bounds() Rect {
	return p.cfg.Bounds
}

// alongExtent is the screen extent along the scroll axis.
func (p *Playfield) alongExtent() float64 {
	if p.cfg.Axis == AxisHorizontal {
		return p.cfg.Bounds.Width
	}
	return p.cfg.Bounds.Height
}

// crossExtent is the screen extent across the lanes.
func (p *Playfield) crossExtent() float64 {
	if p.cfg.Axis == AxisHorizontal {
		return p.cfg.Bounds.Height
	}
	return p.cfg.Bounds.Width
}

// laneSize returns the cross-axis width of one lane.
func (p *Playfield) laneSize() float64 {
	return p.crossExtent() / float64(p.cfg.Lanes)
}

// laneCoord returns the cross-axis local coordinate for a lane's note quad,
// centering the quad within the lane.
func (p *Playfield) laneCoord(lane int) float64 {
	cross := p.cfg.NoteSize.Y
	if p.cfg.Axis == AxisVertical {
		cross = p.cfg.NoteSize.X
	}
	return float64(lane)*p.laneSize() + (p.laneSize()-cross)/2
}

// Track adds obj to the positioned set and lays out its lane coordinate.
// The scroll container takes over the along-axis coordinate from the next
// Update on.
func (p *Playfield) Track(obj *HitObject) {
	p.scroll.Track(obj)
	if p.cfg.Axis == AxisHorizontal {
		obj.Y = p.laneCoord(obj.Lane)
	} else {
		obj.X = p.laneCoord(obj.Lane)
	}
}

// Untrack removes obj from the positioned set.
func (p *Playfield) Untrack(obj *HitObject) {
	p.scroll.Untrack(obj)
}

// Update advances the positioning pass. Call once per frame.
func (p *Playfield) Update(dt float32) {
	p.scroll.Update(dt)
}

// Contains reports whether the screen point lies inside the playfield — the
// editor's "cursor in placement area" query. Pure, recomputed on demand.
func (p *Playfield) Contains(screenX, screenY float64) bool {
	return p.cfg.Bounds.Contains(screenX, screenY)
}

// ToLocal converts a screen point to playfield-local coordinates.
func (p *Playfield) ToLocal(screenX, screenY float64) (float64, float64) {
	return screenX - p.cfg.Bounds.X, screenY - p.cfg.Bounds.Y
}

// PlacementAt maps a screen point to the track time and lane a placement
// there would produce. ok is false when the point is outside the bounds.
func (p *Playfield) PlacementAt(screenX, screenY float64) (timeMS float64, lane int, ok bool) {
	if !p.Contains(screenX, screenY) {
		return 0, 0, false
	}
	lx, ly := p.ToLocal(screenX, screenY)
	along, cross := ly, lx
	if p.cfg.Axis == AxisHorizontal {
		along, cross = lx, ly
	}
	lane = int(cross / p.laneSize())
	if lane >= p.cfg.Lanes {
		lane = p.cfg.Lanes - 1
	}
	return p.scroll.TimeAt(along), lane, true
}

// BlueprintAt returns the topmost blueprint under the screen point, or nil.
// Later entries win, matching draw order.
func (p *Playfield) BlueprintAt(blueprints []*Blueprint, screenX, screenY float64) *Blueprint {
	lx, ly := p.ToLocal(screenX, screenY)
	for i := len(blueprints) - 1; i >= 0; i-- {
		if blueprints[i].Contains(lx, ly) {
			return blueprints[i]
		}
	}
	return nil
}

// --- Rendering ---

// Draw renders the background and all tracked objects onto screen.
// Quads fully outside the bounds are skipped.
func (p *Playfield) Draw(screen *ebiten.Image) {
	b := p.cfg.Bounds
	if p.cfg.BackgroundColor.A > 0 {
		fillQuad(screen, b.X, b.Y, b.Width, b.Height, p.cfg.BackgroundColor, 1)
	}
	for _, obj := range p.scroll.Tracked() {
		quad := Rect{
			X:      b.X + obj.X,
			Y:      b.Y + obj.Y,
			Width:  p.cfg.NoteSize.X,
			Height: p.cfg.NoteSize.Y,
		}
		if !quad.Intersects(b) {
			continue
		}
		fillQuad(screen, quad.X, quad.Y, quad.Width, quad.Height, p.noteColor(obj), 1)
	}
}

// DrawOverlay renders one blueprint's selection quad over its object.
func (p *Playfield) DrawOverlay(screen *ebiten.Image, bp *Blueprint) {
	r := bp.Bounds()
	fillQuad(screen, p.cfg.Bounds.X+r.X, p.cfg.Bounds.Y+r.Y, r.Width, r.Height,
		ColorWhite, bp.Alpha())
}

func (p *Playfield) noteColor(obj *HitObject) Color {
	if len(p.cfg.ComboColors) == 0 {
		return ColorWhite
	}
	return p.cfg.ComboColors[obj.ComboIndex%len(p.cfg.ComboColors)]
}

// fillQuad draws a solid rectangle by scaling the shared white pixel.
// Color is premultiplied at submission.
func fillQuad(dst *ebiten.Image, x, y, w, h float64, c Color, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	a := float32(c.A * alpha)
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	dst.DrawImage(whitePixel, op)
}
