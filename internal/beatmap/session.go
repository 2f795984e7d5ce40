package beatmap

import (
	"fmt"
	"time"

	"github.com/lunarhue/chargebeat/internal/game"
)

// How far past its time a note stays visible, so misses scroll off
// instead of vanishing on the bar.
const visibleBehind = 500 * time.Millisecond

type noteState struct {
	judged bool
	hit    bool
	missed bool
}

// Session holds the mutable judgment state for one play of a beatmap,
// keyed by note id. The beatmap itself is never written during play.
type Session struct {
	beatmap *Beatmap
	state   map[int64]*noteState
}

func NewSession(b *Beatmap) *Session {
	return &Session{
		beatmap: b,
		state:   map[int64]*noteState{},
	}
}

func (s *Session) Beatmap() *Beatmap { return s.beatmap }

// Reset clears all judgment state. Idempotent, and the only coupling
// between one play and the next.
func (s *Session) Reset() {
	s.state = map[int64]*noteState{}
}

func (s *Session) lookup(id int64) noteState {
	st := s.state[id]
	if nil == st {
		return noteState{}
	}
	return *st
}

func (s *Session) Judged(id int64) bool { return s.lookup(id).judged }
func (s *Session) Hit(id int64) bool    { return s.lookup(id).hit }
func (s *Session) Missed(id int64) bool { return s.lookup(id).missed }

// MarkJudged records the one judgment a note ever receives. A second
// judgment of the same note is a broken invariant, not a game state.
func (s *Session) MarkJudged(id int64, hit bool) {
	if st := s.state[id]; nil != st && st.judged {
		panic(fmt.Sprintf("note %d judged twice", id))
	}
	s.state[id] = &noteState{judged: true, hit: hit}
}

// Visible returns unhit notes inside the render window, in time order.
func (s *Session) Visible(now, approach time.Duration) []game.Note {
	var out []game.Note
	for _, n := range s.beatmap.Active() {
		d := n.Time - now
		if d <= -visibleBehind {
			continue
		}
		if d >= approach {
			break
		}
		if s.Hit(n.ID) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Judgable returns unjudged notes on the lane within the window, in time
// order. Tie-breaking between candidates is the caller's rule.
func (s *Session) Judgable(now time.Duration, lane int, window time.Duration) []game.Note {
	var out []game.Note
	for _, n := range s.beatmap.Active() {
		if n.Time-now > window {
			break
		}
		if n.Lane != lane || s.Judged(n.ID) {
			continue
		}
		if d := n.Time - now; d >= -window && d <= window {
			out = append(out, n)
		}
	}
	return out
}

// SweepTimeouts marks every unjudged note older than the miss window as
// missed and returns it. The judged flag guarantees a note is reported
// exactly once; the note list itself is never shrunk.
func (s *Session) SweepTimeouts(now, miss time.Duration) []game.Note {
	var out []game.Note
	for _, n := range s.beatmap.Active() {
		if now-n.Time <= miss {
			break
		}
		if s.Judged(n.ID) {
			continue
		}
		s.state[n.ID] = &noteState{judged: true, missed: true}
		out = append(out, n)
	}
	return out
}
