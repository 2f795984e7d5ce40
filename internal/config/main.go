package config

import (
	"github.com/lunarhue/chargebeat/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Directory     = kingpin.Arg("directory", "Song/chart directory").Required().ExistingDir()
	Difficulty    = kingpin.Flag("difficulty", "Chart difficulty").Default("normal").Short('d').Enum("easy", "normal", "hard")
	Offset        = kingpin.Flag("offset", "Extra calibration offset").Default("0ms").Short('o').Duration()
	Delay         = kingpin.Flag("delay", "Start delay").Default("1.5s").Duration()
	FramePeriod   = kingpin.Flag("frame-period", "Render frame period").Default("4ms").Short('p').Duration()
	ColumnSpacing = kingpin.Flag("spacing", "Columns between lanes").Default("6").Short('S').Uint()
	BarRow        = kingpin.Flag("bar-row", "Console row of the hit bar, from the bottom").Default("8").Uint()
	keys          = kingpin.Flag("keys", "Lane keys").Default("dfjk").Short('k').String()

	approved = kingpin.Flag("approved", "Approved window").Default("45ms").Duration()
	pending  = kingpin.Flag("pending", "Pending window").Default("100ms").Duration()
	declined = kingpin.Flag("declined", "Declined window").Default("150ms").Duration()
	miss     = kingpin.Flag("miss", "Outer miss window").Default("200ms").Duration()
)

func Keys() []rune {
	return []rune(*keys)
}

// KeyLane maps a pressed rune to its lane, -1 for anything unbound.
func KeyLane(r rune) int {
	for i, c := range Keys() {
		if i >= game.LaneCount {
			break
		}
		if r == c {
			return i
		}
	}
	return -1
}

func Windows() game.Windows {
	return game.Windows{
		Approved: *approved,
		Pending:  *pending,
		Declined: *declined,
		Miss:     *miss,
	}
}

func Level() game.Difficulty {
	level, err := game.ParseDifficulty(*Difficulty)
	if nil != err {
		return game.Normal
	}
	return level
}

func init() {
	kingpin.Version("0.1.0")
	kingpin.Parse()
}
