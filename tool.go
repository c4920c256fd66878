package strum

// PlacementTool describes one composition tool. CreateObject builds the
// scratch object a placement gesture starts with; the object is not
// finalized (no defaults, not in the beatmap) until the gesture commits.
type PlacementTool struct {
	Name         string
	CreateObject func(timeMS float64, lane int) *HitObject
}

// SelectTool is the null tool: no placement, gestures select blueprints
// instead. It is always the first entry in a composer's tool list.
var SelectTool = &PlacementTool{Name: "Select"}

// IsSelect reports whether t is the select (null) tool.
func (t *PlacementTool) IsSelect() bool {
	return t == SelectTool
}
