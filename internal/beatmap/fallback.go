package beatmap

import (
	"time"

	"github.com/lunarhue/chargebeat/internal/game"
)

const (
	fallbackTempo = 128.0
	fallbackNotes = 64
	fallbackLead  = 500 * time.Millisecond
)

// Fallback is the deterministic built-in chart used whenever a chart
// file is missing or malformed. Same notes every time, so records for
// the fallback track stay comparable.
func Fallback() *Beatmap {
	beat := time.Duration(float64(time.Minute) / fallbackTempo)

	notes := make([]game.Note, 0, fallbackNotes)
	for i := 0; i < fallbackNotes; i++ {
		n := game.Note{
			ID:   int64(i),
			Time: fallbackLead + time.Duration(i)*beat,
			Lane: (i + i/8) % game.LaneCount,
		}
		if i%8 == 7 {
			n.Kind = game.Hold
			n.HoldDuration = beat
		}
		notes = append(notes, n)
	}

	b := New(fallbackTempo, 0, "fallback", notes)
	quarter := time.Duration(fallbackNotes/4) * beat
	for i, label := range []string{"intro", "build", "drop", "outro"} {
		b.Sections = append(b.Sections, game.Section{
			Start: fallbackLead + time.Duration(i)*quarter,
			End:   fallbackLead + time.Duration(i+1)*quarter,
			Label: label,
		})
	}
	return b
}
