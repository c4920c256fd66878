package strum

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in an editor test script.
type testStep struct {
	Action string  `json:"action"`
	Tool   int     `json:"tool,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for an editor test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner replays a scripted editing session against a composer, one step
// per frame, through the same inject queue real synthetic input uses.
// Attach to a Composer via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON editor script and returns a TestRunner ready
// to be attached to a Composer via SetTestRunner.
//
// Supported actions: "tool" (activate tool by list index), "click",
// "rightclick", "drag" (fromX/fromY/toX/toY over frames), and "wait".
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the composer. The runner's step
// method is called from Composer.Update before injected input each frame.
func (c *Composer) SetTestRunner(runner *TestRunner) {
	c.testRunner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Composer.Update.
func (r *TestRunner) step(c *Composer) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(c.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "tool":
		c.SetToolAt(st.Tool)
	case "click":
		c.InjectClick(st.X, st.Y)
	case "rightclick":
		c.InjectRightClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
