package beatmap

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math"
	"time"

	"github.com/lunarhue/chargebeat/internal/game"
)

type DefaultParser struct{}

type rawNote struct {
	Time     float64 `json:"time"`
	Lane     int     `json:"lane"`
	Type     string  `json:"type"`
	Duration float64 `json:"duration"`
}

type rawSection struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Label string  `json:"label"`
}

type rawCue struct {
	Time float64 `json:"time"`
	Text string  `json:"text"`
}

type rawChart struct {
	BPM      float64      `json:"bpm"`
	Offset   float64      `json:"offset"`
	Track    string       `json:"track"`
	Notes    []rawNote    `json:"notes"`
	Sections []rawSection `json:"sections"`
	Lyrics   []rawCue     `json:"lyrics"`
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

func (p *DefaultParser) Parse(file string) (*Beatmap, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read chart: %w", err)
	}
	return p.parse(data)
}

func (p *DefaultParser) parse(data []byte) (*Beatmap, error) {
	var raw rawChart
	if err := json.Unmarshal(data, &raw); nil != err {
		return nil, fmt.Errorf("unable to parse chart: %w", err)
	}
	if raw.BPM <= 0 {
		return nil, fmt.Errorf("chart bpm %v is not positive", raw.BPM)
	}
	if len(raw.Notes) == 0 {
		return nil, fmt.Errorf("chart has no notes")
	}

	notes := make([]game.Note, 0, len(raw.Notes))
	for i, rn := range raw.Notes {
		if rn.Lane < 0 || rn.Lane >= game.LaneCount {
			return nil, fmt.Errorf("note %d lane %d out of range", i, rn.Lane)
		}
		kind := game.Tap
		hold := time.Duration(0)
		switch rn.Type {
		case "", "tap":
		case "hold":
			kind = game.Hold
			hold = seconds(rn.Duration)
		default:
			return nil, fmt.Errorf("note %d has unknown type %q", i, rn.Type)
		}
		notes = append(notes, game.Note{
			ID:           int64(i),
			Time:         seconds(rn.Time),
			Lane:         rn.Lane,
			Kind:         kind,
			HoldDuration: hold,
		})
	}

	b := New(raw.BPM, seconds(raw.Offset), raw.Track, notes)
	for _, s := range raw.Sections {
		b.Sections = append(b.Sections, game.Section{
			Start: seconds(s.Start),
			End:   seconds(s.End),
			Label: s.Label,
		})
	}
	for _, c := range raw.Lyrics {
		b.Lyrics = append(b.Lyrics, game.Cue{Time: seconds(c.Time), Text: c.Text})
	}
	return b, nil
}
