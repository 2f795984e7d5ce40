package input

import (
	"github.com/lunarhue/chargebeat/internal/game"
)

// EdgeDetector turns per-tick pressed snapshots into just-pressed edges.
// A lane held across ticks fires once; terminal key repeat must not
// re-trigger a judgment.
type EdgeDetector struct {
	prev [game.LaneCount]bool
}

func (e *EdgeDetector) Update(pressed [game.LaneCount]bool) [game.LaneCount]bool {
	var edges [game.LaneCount]bool
	for i, p := range pressed {
		edges[i] = p && !e.prev[i]
		e.prev[i] = p
	}
	return edges
}

func (e *EdgeDetector) Reset() {
	e.prev = [game.LaneCount]bool{}
}
