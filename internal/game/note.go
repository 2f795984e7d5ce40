package game

import (
	"time"
)

// LaneCount is fixed for every chart.
const LaneCount = 4

type NoteKind uint8

const (
	Tap NoteKind = iota
	Hold
)

// Note is immutable chart data. Per-session judgment state is kept
// separately, keyed by ID, so one chart can back any number of plays.
type Note struct {
	ID   int64
	Time time.Duration // Offset from track start at which the note is hit
	Lane int
	Kind NoteKind

	// Hold length. Zero for taps. Only the head is ever judged, the
	// tail exists for rendering.
	HoldDuration time.Duration
}
