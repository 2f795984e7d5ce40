package game

import (
	"fmt"
	"time"
)

// Tier is the quality classification of a timing deviation. The set is
// closed, adding a tier is a compile-time change to the tables below.
type Tier uint8

const (
	Approved Tier = iota
	Pending
	Declined
	Chargeback
)

const TierCount = 4

func (t Tier) String() string {
	switch t {
	case Approved:
		return "APPROVED"
	case Pending:
		return "PENDING"
	case Declined:
		return "DECLINED"
	}
	return "CHARGEBACK"
}

// Points is the base value before the combo multiplier is applied.
func (t Tier) Points() int64 {
	switch t {
	case Approved:
		return 100
	case Pending:
		return 50
	case Declined:
		return 20
	}
	return 0
}

// Windows holds the four absolute-deviation thresholds, best to worst.
// Miss is the outer bound: an unjudged note past it becomes a timeout
// rather than a candidate for input matching.
type Windows struct {
	Approved time.Duration
	Pending  time.Duration
	Declined time.Duration
	Miss     time.Duration
}

func DefaultWindows() Windows {
	return Windows{
		Approved: 45 * time.Millisecond,
		Pending:  100 * time.Millisecond,
		Declined: 150 * time.Millisecond,
		Miss:     200 * time.Millisecond,
	}
}

func (w Windows) Validate() error {
	if w.Approved <= 0 ||
		w.Pending <= w.Approved ||
		w.Declined <= w.Pending ||
		w.Miss <= w.Declined {
		return fmt.Errorf("timing windows must be positive and ascending: %v", w)
	}
	return nil
}

// Classify grades a signed timing delta. Boundaries are inclusive on the
// better side. Callers only pass deltas already inside the Miss window,
// so Chargeback here means a deviation past Declined.
func (w Windows) Classify(delta time.Duration) Tier {
	if delta < 0 {
		delta = -delta
	}
	switch {
	case delta <= w.Approved:
		return Approved
	case delta <= w.Pending:
		return Pending
	case delta <= w.Declined:
		return Declined
	}
	return Chargeback
}
