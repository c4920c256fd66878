// Package strum is a scrolling-playfield and chart-editing toolkit for
// rhythm games built on [Ebitengine].
//
// Strum provides the time-to-screen positioning model that moves hit objects
// across a playfield, and the composition pipeline a chart editor needs:
// tool selection, placement gestures, blueprint overlays, and consistent
// reprocessing of derived object state on every mutation.
//
// # Positioning
//
// A [ScrollContainer] maps each tracked object's start time to an offset
// along one axis, every frame, from a shared [Clock] and [TimeRange]:
//
//	offset = ((currentTime - startTime) / timeRange) * extent
//
// A [Playfield] hosts the container inside a screen region, lays lanes out
// across the orthogonal axis, and draws tracked objects as quads:
//
//	clock := strum.NewFrameClock()
//	rng := strum.NewTimeRange(5000, 10000)
//	field := strum.NewPlayfield(strum.PlayfieldConfig{
//		Bounds: strum.Rect{X: 120, Y: 0, Width: 400, Height: 480},
//		Axis:   strum.AxisVertical,
//		Lanes:  4,
//	}, clock, rng)
//
// # Editing
//
// A [Composer] wires a [Beatmap], a [Ruleset], and a playfield into an
// editing surface. Placement gestures commit through a [PlacementPipeline]
// that re-runs the ruleset's [Processor] around every structural change:
//
//	composer, err := strum.NewComposer(beatmap, ruleset, field)
//	if err != nil {
//		// ruleset or beatmap cannot be edited; show no composer
//	}
//	composer.InjectClick(200, 300) // or route real mouse input
//
// Call [Composer.Update] once per ebiten Update and [Composer.Draw] from
// Draw. Everything is single-threaded and frame-driven; change notification
// (via [Bindable]) is synchronous on the update thread.
//
// ECS integration is available via the Donburi adapter in strum/ecs.
//
// [Ebitengine]: https://ebitengine.org
package strum
