package beatmap

import (
	"math"
	"sort"
	"time"

	"github.com/lunarhue/chargebeat/internal/game"
)

// Synthetic notes inserted by the hard transform get ids in a space
// disjoint from canonical ids.
const syntheticIDBase = 1 << 20

// Sessions keep running this long after the last active note.
const trailingMargin = 2 * time.Second

// Beatmap owns the canonical note list and the difficulty-derived active
// list. Canonical notes are immutable after load; the active list is
// recomputed from scratch on every ApplyDifficulty call.
type Beatmap struct {
	Tempo  float64 // Beats per minute
	Offset time.Duration
	Track  string

	Sections []game.Section
	Lyrics   []game.Cue

	canonical []game.Note
	active    []game.Note
	duration  time.Duration
}

// New sorts notes by time; chart files do not guarantee order.
func New(tempo float64, offset time.Duration, track string, notes []game.Note) *Beatmap {
	canonical := make([]game.Note, len(notes))
	copy(canonical, notes)
	sort.SliceStable(canonical, func(i, j int) bool {
		return canonical[i].Time < canonical[j].Time
	})
	b := &Beatmap{
		Tempo:     tempo,
		Offset:    offset,
		Track:     track,
		canonical: canonical,
	}
	b.ApplyDifficulty(game.Normal)
	return b
}

func (b *Beatmap) Canonical() []game.Note  { return b.canonical }
func (b *Beatmap) Active() []game.Note     { return b.active }
func (b *Beatmap) Duration() time.Duration { return b.duration }

func (b *Beatmap) BeatDuration() time.Duration {
	return time.Duration(math.Round(float64(time.Minute) / b.Tempo))
}

// ApplyDifficulty derives the active note list from the canonical list.
// The global offset is added to each derived note here, and only here, so
// re-applying a difficulty can never accumulate it.
func (b *Beatmap) ApplyDifficulty(level game.Difficulty) {
	var notes []game.Note
	switch level {
	case game.Easy:
		notes = make([]game.Note, 0, (len(b.canonical)+1)/2)
		for i, n := range b.canonical {
			if i%2 == 0 {
				notes = append(notes, n)
			}
		}
	case game.Hard:
		notes = make([]game.Note, len(b.canonical), len(b.canonical)*2)
		copy(notes, b.canonical)
		beat := b.BeatDuration()
		lo, hi := beat+beat/2, 4*beat
		for i := 0; i+1 < len(b.canonical); i++ {
			first, second := b.canonical[i], b.canonical[i+1]
			gap := second.Time - first.Time
			if gap <= lo || gap >= hi {
				continue
			}
			notes = append(notes, game.Note{
				ID:   syntheticIDBase + first.ID,
				Time: first.Time + gap/2,
				Lane: (first.Lane + 2) % game.LaneCount,
				Kind: game.Tap,
			})
		}
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].Time < notes[j].Time
		})
	default:
		notes = make([]game.Note, len(b.canonical))
		copy(notes, b.canonical)
	}

	for i := range notes {
		notes[i].Time += b.Offset
	}

	b.active = notes
	b.duration = trailingMargin
	if len(notes) > 0 {
		b.duration = notes[len(notes)-1].Time + trailingMargin
	}
}

// CurrentSection returns the last section whose [start, end) range
// contains now.
func (b *Beatmap) CurrentSection(now time.Duration) (game.Section, bool) {
	var cur game.Section
	found := false
	for _, s := range b.Sections {
		if now >= s.Start && now < s.End {
			cur = s
			found = true
		}
	}
	return cur, found
}

// CurrentCue returns the latest lyric at or before now.
func (b *Beatmap) CurrentCue(now time.Duration) (game.Cue, bool) {
	var cur game.Cue
	found := false
	for _, c := range b.Lyrics {
		if c.Time > now {
			break
		}
		cur = c
		found = true
	}
	return cur, found
}
