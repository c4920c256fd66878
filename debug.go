package strum

import (
	"fmt"
	"os"
)

// logf prints a [strum]-prefixed diagnostic line to stderr.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[strum] "+format+"\n", args...)
}

// debugMaxTrackedObjects is the tracked-object count above which the
// per-frame positioning pass starts to dominate an editor frame.
const debugMaxTrackedObjects = 10000

// debugCheckTrackedCount warns on stderr when a scroll container tracks an
// implausible number of objects. Called from debug-mode composers only.
func debugCheckTrackedCount(c *ScrollContainer) {
	if len(c.objects) > debugMaxTrackedObjects {
		logf("warning: scroll container tracks %d objects (threshold %d)",
			len(c.objects), debugMaxTrackedObjects)
	}
}
