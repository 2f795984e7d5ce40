package beatmap

import (
	"testing"
	"time"

	"github.com/lunarhue/chargebeat/internal/game"
)

func testSession(times ...time.Duration) *Session {
	notes := make([]game.Note, len(times))
	for i, at := range times {
		notes[i] = game.Note{ID: int64(i), Time: at}
	}
	return NewSession(New(120, 0, "test", notes))
}

func TestResetClearsJudgments(t *testing.T) {
	s := testSession(1*time.Second, 2*time.Second, 3*time.Second)
	s.MarkJudged(0, true)
	s.SweepTimeouts(10*time.Second, 200*time.Millisecond)

	s.Reset()
	for _, n := range s.Beatmap().Active() {
		if s.Judged(n.ID) || s.Hit(n.ID) || s.Missed(n.ID) {
			t.Fatal("note", n.ID, "kept state across reset")
		}
	}
	// Idempotent.
	s.Reset()
}

func TestMarkJudgedTwicePanics(t *testing.T) {
	defer func() {
		if nil == recover() {
			t.Fatal("second judgment of a note must fail loud")
		}
	}()
	s := testSession(1 * time.Second)
	s.MarkJudged(0, true)
	s.MarkJudged(0, false)
}

func TestJudgableWindow(t *testing.T) {
	s := testSession(1 * time.Second)
	window := 200 * time.Millisecond

	// |time - now| <= window, inclusive at both edges.
	for _, now := range []time.Duration{800 * time.Millisecond, 1200 * time.Millisecond, 1 * time.Second} {
		if len(s.Judgable(now, 0, window)) != 1 {
			t.Fatal("note not judgable at", now)
		}
	}
	for _, now := range []time.Duration{800*time.Millisecond - 1, 1200*time.Millisecond + 1} {
		if len(s.Judgable(now, 0, window)) != 0 {
			t.Fatal("note judgable outside window at", now)
		}
	}

	if len(s.Judgable(1*time.Second, 1, window)) != 0 {
		t.Fatal("note judgable on the wrong lane")
	}

	s.MarkJudged(0, true)
	if len(s.Judgable(1*time.Second, 0, window)) != 0 {
		t.Fatal("judged note still judgable")
	}
}

func TestSweepTimeoutsExactlyOnce(t *testing.T) {
	s := testSession(1*time.Second, 2*time.Second)
	miss := 200 * time.Millisecond

	// 1200ms past the first note is not yet beyond the window.
	if out := s.SweepTimeouts(1200*time.Millisecond, miss); len(out) != 0 {
		t.Fatal("swept a note still inside the window", out)
	}

	out := s.SweepTimeouts(1200*time.Millisecond+1, miss)
	if len(out) != 1 || out[0].ID != 0 {
		t.Fatal("sweep", out)
	}
	if !s.Missed(0) || !s.Judged(0) || s.Hit(0) {
		t.Fatal("swept note flags wrong")
	}

	// Same tick, same now: nothing new.
	if out := s.SweepTimeouts(1200*time.Millisecond+1, miss); len(out) != 0 {
		t.Fatal("note swept twice", out)
	}

	if out := s.SweepTimeouts(10*time.Second, miss); len(out) != 1 || out[0].ID != 1 {
		t.Fatal("second note not swept", out)
	}
}

func TestSweepSkipsJudgedNotes(t *testing.T) {
	s := testSession(1 * time.Second)
	s.MarkJudged(0, true)
	if out := s.SweepTimeouts(10*time.Second, 200*time.Millisecond); len(out) != 0 {
		t.Fatal("judged note swept", out)
	}
}

func TestVisible(t *testing.T) {
	s := testSession(1*time.Second, 2*time.Second, 10*time.Second)
	approach := 2 * time.Second

	visible := s.Visible(1500*time.Millisecond, approach)
	if len(visible) != 2 {
		t.Fatal("visible", visible)
	}

	// Hit notes disappear, missed ones keep scrolling.
	s.MarkJudged(0, true)
	visible = s.Visible(1500*time.Millisecond, approach)
	if len(visible) != 1 || visible[0].ID != 1 {
		t.Fatal("visible after hit", visible)
	}

	if len(s.Visible(5*time.Second, approach)) != 0 {
		t.Fatal("stale note visible")
	}
}
