package judge

import (
	"time"

	"github.com/lunarhue/chargebeat/internal/beatmap"
	"github.com/lunarhue/chargebeat/internal/game"
	"github.com/lunarhue/chargebeat/internal/score"
)

// Result is one judgment, for the HUD and splash rendering.
type Result struct {
	Note       game.Note
	Tier       game.Tier
	Delta      time.Duration // note time minus press time, signed
	Points     int64
	Combo      int
	Multiplier int
}

type Engine interface {
	// ResolvePress judges the best candidate for a lane press, or
	// returns nil for a ghost press.
	ResolvePress(lane int, now time.Duration) *Result
	// Sweep scores every newly timed-out note as a chargeback.
	Sweep(now time.Duration) []Result
}

type DefaultEngine struct {
	Session *beatmap.Session
	Scorer  score.Scorer
	Windows game.Windows
}

func abs(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// ResolvePress picks the unjudged candidate nearest in time, greedily.
// Ties on absolute deviation go to the earlier note, independent of
// candidate order. Greedy assignment can starve a second same-lane note
// inside one press's window; that note is hit by a later press or times
// out, which is the intended behavior for these charts.
func (e *DefaultEngine) ResolvePress(lane int, now time.Duration) *Result {
	candidates := e.Session.Judgable(now, lane, e.Windows.Miss)
	if len(candidates) == 0 {
		return nil
	}

	closest := candidates[0]
	distance := abs(closest.Time - now)
	for _, n := range candidates[1:] {
		d := abs(n.Time - now)
		if d < distance || (d == distance && n.Time < closest.Time) {
			closest = n
			distance = d
		}
	}

	delta := closest.Time - now
	tier := e.Windows.Classify(delta)
	e.Session.MarkJudged(closest.ID, tier != game.Chargeback)
	applied := e.Scorer.Apply(tier)

	return &Result{
		Note:       closest,
		Tier:       tier,
		Delta:      delta,
		Points:     applied.Points,
		Combo:      applied.Combo,
		Multiplier: applied.Multiplier,
	}
}

// A timeout scores exactly like a press that missed outside the outer
// window.
func (e *DefaultEngine) Sweep(now time.Duration) []Result {
	var out []Result
	for _, n := range e.Session.SweepTimeouts(now, e.Windows.Miss) {
		applied := e.Scorer.Apply(game.Chargeback)
		out = append(out, Result{
			Note:       n,
			Tier:       game.Chargeback,
			Delta:      n.Time - now,
			Points:     applied.Points,
			Combo:      applied.Combo,
			Multiplier: applied.Multiplier,
		})
	}
	return out
}
