package beatmap

import (
	"log"
)

type Parser interface {
	Parse(file string) (*Beatmap, error)
}

// Load never fails in normal operation: any read or parse error is
// recovered by the built-in fallback chart so a session can always run.
func Load(p Parser, file string) *Beatmap {
	b, err := p.Parse(file)
	if nil != err {
		log.Println("unable to load beatmap, using fallback:", err)
		return Fallback()
	}
	return b
}
