package game

import (
	"time"
)

// Section is a labelled, non-overlapping time range, display only.
type Section struct {
	Start time.Duration
	End   time.Duration
	Label string
}

// Cue is a timed lyric line, display only.
type Cue struct {
	Time time.Duration
	Text string
}
