package strum

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates, matching what real mouse input would deliver.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	button           MouseButton
}

// InjectPress queues a pointer press event at the given screen coordinates
// (left button). The event is consumed on the next Update.
func (c *Composer) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectMove queues a pointer move event at the given screen coordinates
// with the button held down. Use this between InjectPress and InjectRelease
// to simulate dragging a placement.
func (c *Composer) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release event at the given screen coordinates.
func (c *Composer) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: false,
		button:  MouseButtonLeft,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (c *Composer) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectRightClick queues a right-button press at the given screen
// coordinates, deleting the object under the pointer.
func (c *Composer) InjectRightClick(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  MouseButtonRight,
	})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (c *Composer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		c.InjectMove(x, y)
	}
	c.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the inject queue and routes it
// through the gesture handlers. One event per frame keeps injected sessions
// deterministic against the frame-driven pipeline.
func (c *Composer) processInjectedInput() {
	if len(c.injectQueue) == 0 {
		return
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	if evt.button == MouseButtonRight {
		if evt.pressed {
			c.deleteAt(evt.screenX, evt.screenY)
		}
		return
	}

	switch {
	case evt.pressed && !c.pressed:
		c.pressed = true
		c.pointerDown(evt.screenX, evt.screenY)
	case evt.pressed && c.pressed:
		c.pointerMove(evt.screenX, evt.screenY)
	case !evt.pressed && c.pressed:
		c.pressed = false
		c.pointerUp(evt.screenX, evt.screenY)
	}
}
