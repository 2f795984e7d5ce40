package judge

import (
	"testing"
	"time"

	"github.com/lunarhue/chargebeat/internal/beatmap"
	"github.com/lunarhue/chargebeat/internal/game"
	"github.com/lunarhue/chargebeat/internal/score"
)

func testWindows() game.Windows {
	return game.Windows{
		Approved: 45 * time.Millisecond,
		Pending:  100 * time.Millisecond,
		Declined: 150 * time.Millisecond,
		Miss:     200 * time.Millisecond,
	}
}

func testEngine(notes ...game.Note) *DefaultEngine {
	b := beatmap.New(120, 0, "test", notes)
	return &DefaultEngine{
		Session: beatmap.NewSession(b),
		Scorer:  &score.DefaultScorer{},
		Windows: testWindows(),
	}
}

func TestGhostPressIsNoOp(t *testing.T) {
	e := testEngine(game.Note{ID: 0, Time: 5 * time.Second})
	if res := e.ResolvePress(0, 1*time.Second); nil != res {
		t.Fatal("ghost press judged something", res)
	}
	if e.Scorer.TotalJudged() != 0 {
		t.Fatal("ghost press reached the scorer")
	}
}

func TestPressPicksNearestNote(t *testing.T) {
	// Notes at 1.0 and 1.05 on the same lane; a press at exactly 1.0
	// must take the first (delta 0) over the second (delta 50ms).
	e := testEngine(
		game.Note{ID: 0, Time: 1 * time.Second},
		game.Note{ID: 1, Time: 1050 * time.Millisecond},
		game.Note{ID: 2, Time: 5 * time.Second},
	)
	res := e.ResolvePress(0, 1*time.Second)
	if nil == res || res.Note.ID != 0 || res.Delta != 0 {
		t.Fatal(res)
	}
	if res.Tier != game.Approved {
		t.Fatal("tier", res.Tier)
	}

	// The starved neighbour is still there for the next press.
	res = e.ResolvePress(0, 1060*time.Millisecond)
	if nil == res || res.Note.ID != 1 {
		t.Fatal(res)
	}
}

func TestEqualDistanceTieBreaksEarlier(t *testing.T) {
	// 50ms early against one note, 50ms late against the other. The
	// earlier note wins the tie.
	e := testEngine(
		game.Note{ID: 0, Time: 950 * time.Millisecond},
		game.Note{ID: 1, Time: 1050 * time.Millisecond},
	)
	res := e.ResolvePress(0, 1*time.Second)
	if nil == res || res.Note.ID != 0 {
		t.Fatal(res)
	}
	if res.Delta != -50*time.Millisecond {
		t.Fatal("delta", res.Delta)
	}
}

func TestPressTierBoundary(t *testing.T) {
	// 46ms off with a 45ms approved window grades pending.
	e := testEngine(game.Note{ID: 0, Time: 1 * time.Second})
	res := e.ResolvePress(0, 1*time.Second+46*time.Millisecond)
	if nil == res || res.Tier != game.Pending {
		t.Fatal(res)
	}
}

func TestLatePressInsideMissWindowIsChargeback(t *testing.T) {
	// Between declined and miss the note is still claimed by the
	// press, but scores the worst tier and is not a hit.
	e := testEngine(game.Note{ID: 0, Time: 1 * time.Second})
	res := e.ResolvePress(0, 1180*time.Millisecond)
	if nil == res || res.Tier != game.Chargeback {
		t.Fatal(res)
	}
	if !e.Session.Judged(0) || e.Session.Hit(0) {
		t.Fatal("note state after chargeback press")
	}
	if res.Combo != 0 {
		t.Fatal("combo", res.Combo)
	}
}

func TestPressMarksHit(t *testing.T) {
	e := testEngine(game.Note{ID: 0, Time: 1 * time.Second})
	if res := e.ResolvePress(0, 1010*time.Millisecond); nil == res {
		t.Fatal("press not resolved")
	}
	if !e.Session.Judged(0) || !e.Session.Hit(0) {
		t.Fatal("hit not recorded")
	}
	// The note is spent; pressing again is a ghost press.
	if res := e.ResolvePress(0, 1020*time.Millisecond); nil != res {
		t.Fatal("note judged twice", res)
	}
}

func TestPressIgnoresOtherLanes(t *testing.T) {
	e := testEngine(game.Note{ID: 0, Time: 1 * time.Second, Lane: 2})
	if res := e.ResolvePress(0, 1*time.Second); nil != res {
		t.Fatal("press matched across lanes", res)
	}
}

func TestSweepScoresTimeouts(t *testing.T) {
	e := testEngine(
		game.Note{ID: 0, Time: 1 * time.Second},
		game.Note{ID: 1, Time: 1100 * time.Millisecond, Lane: 1},
	)

	if out := e.Sweep(1100 * time.Millisecond); len(out) != 0 {
		t.Fatal("premature sweep", out)
	}

	out := e.Sweep(1400 * time.Millisecond)
	if len(out) != 2 {
		t.Fatal("sweep", out)
	}
	for _, res := range out {
		if res.Tier != game.Chargeback || res.Points != 0 {
			t.Fatal(res)
		}
	}
	counts := e.Scorer.Counts()
	if counts[game.Chargeback] != 2 || e.Scorer.TotalJudged() != 2 {
		t.Fatal(counts)
	}

	// A swept note never comes back.
	if out := e.Sweep(1400 * time.Millisecond); len(out) != 0 {
		t.Fatal("note swept twice", out)
	}
}

func TestComboFlowsThroughJudgments(t *testing.T) {
	notes := make([]game.Note, 4)
	for i := range notes {
		notes[i] = game.Note{ID: int64(i), Time: time.Duration(i+1) * time.Second}
	}
	e := testEngine(notes...)

	for i := range notes {
		res := e.ResolvePress(0, time.Duration(i+1)*time.Second)
		if nil == res || res.Combo != i+1 || res.Multiplier != 1 {
			t.Fatal(res)
		}
	}
	if e.Scorer.Score() != 4*game.Approved.Points() {
		t.Fatal("score", e.Scorer.Score())
	}
}
