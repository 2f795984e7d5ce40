package game

import (
	"fmt"
	"time"
)

type Difficulty uint8

const (
	Easy Difficulty = iota
	Normal
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	}
	return "normal"
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "normal":
		return Normal, nil
	case "hard":
		return Hard, nil
	}
	return Normal, fmt.Errorf("unknown difficulty %q", s)
}

// Approach is how far ahead of the hit bar a note becomes visible.
func (d Difficulty) Approach() time.Duration {
	switch d {
	case Easy:
		return 2500 * time.Millisecond
	case Hard:
		return 1500 * time.Millisecond
	}
	return 2 * time.Second
}
