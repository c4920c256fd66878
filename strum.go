package strum

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts a strum Color to an RGBA value (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Axis selects which screen axis a scroll container drives.
// The orthogonal axis is never written by the positioning pass.
type Axis uint8

const (
	AxisHorizontal Axis = iota // offset applied to X; objects travel left/right
	AxisVertical               // offset applied to Y; objects travel up/down
)

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft  MouseButton = iota // primary button: place / select
	MouseButtonRight                    // secondary button: delete
)

// EditorEventType identifies a kind of editor event.
type EditorEventType uint8

const (
	EventObjectAdded      EditorEventType = iota // an object was committed to the beatmap
	EventObjectRemoved                           // an object was deleted from the beatmap
	EventToolChanged                             // the active composition tool changed
	EventPlacementBegan                          // a placement gesture started
	EventPlacementCancelled                      // a placement gesture was abandoned
)

// EditorEvent carries editor state changes for the ECS bridge.
// Object is nil for EventToolChanged.
type EditorEvent struct {
	Type   EditorEventType
	Object *HitObject
	Tool   string
}

// EventStore is the interface for optional ECS integration.
// When set on a Composer, editor events are forwarded to the ECS.
type EventStore interface {
	EmitEvent(event EditorEvent)
}
