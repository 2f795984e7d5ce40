package score

import (
	"github.com/lunarhue/chargebeat/internal/game"
)

// Displayed transaction volume per score point, in dollars.
const volumePerPoint = 0.25

type DefaultScorer struct {
	score    int64
	combo    int
	maxCombo int
	counts   [game.TierCount]int
	total    int
}

func multiplierFor(combo int) int {
	switch {
	case combo >= 100:
		return 8
	case combo >= 50:
		return 4
	case combo >= 25:
		return 3
	case combo >= 10:
		return 2
	}
	return 1
}

// Apply feeds one judgment through the accumulator. It cannot fail; a
// chargeback zeroes the combo, anything better extends it.
func (s *DefaultScorer) Apply(tier game.Tier) Applied {
	s.counts[tier]++
	s.total++

	if tier == game.Chargeback {
		s.combo = 0
	} else {
		s.combo++
		if s.combo > s.maxCombo {
			s.maxCombo = s.combo
		}
	}

	multiplier := multiplierFor(s.combo)
	points := tier.Points() * int64(multiplier)
	s.score += points

	return Applied{
		Tier:       tier,
		Points:     points,
		Combo:      s.combo,
		Multiplier: multiplier,
	}
}

func (s *DefaultScorer) Reset() {
	*s = DefaultScorer{}
}

func (s *DefaultScorer) Score() int64                { return s.score }
func (s *DefaultScorer) Combo() int                  { return s.combo }
func (s *DefaultScorer) MaxCombo() int               { return s.maxCombo }
func (s *DefaultScorer) Multiplier() int             { return multiplierFor(s.combo) }
func (s *DefaultScorer) Counts() [game.TierCount]int { return s.counts }
func (s *DefaultScorer) TotalJudged() int            { return s.total }

func (s *DefaultScorer) hitRate() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.total-s.counts[game.Chargeback]) / float64(s.total)
}

func (s *DefaultScorer) approvedRate() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.counts[game.Approved]) / float64(s.total)
}

func (s *DefaultScorer) Grade() Grade {
	if s.total == 0 {
		return GradeD
	}
	ar, hr := s.approvedRate(), s.hitRate()
	switch {
	case ar >= 0.95 && hr >= 0.99:
		return GradeS
	case ar >= 0.85 && hr >= 0.95:
		return GradeA
	case ar >= 0.70 && hr >= 0.85:
		return GradeB
	case hr >= 0.70:
		return GradeC
	}
	return GradeD
}

func (s *DefaultScorer) ApprovalRate() float64 {
	return s.hitRate() * 100
}

func (s *DefaultScorer) RiskLevel() Risk {
	if s.total == 0 {
		return RiskLow
	}
	rate := float64(s.counts[game.Chargeback]) / float64(s.total)
	switch {
	case rate > 0.30:
		return RiskCritical
	case rate > 0.15:
		return RiskHigh
	case rate > 0.05:
		return RiskMedium
	}
	return RiskLow
}

func (s *DefaultScorer) Volume() float64 {
	return float64(s.score) * volumePerPoint
}

func (s *DefaultScorer) Snapshot() Snapshot {
	return Snapshot{
		Score:        s.score,
		MaxCombo:     s.maxCombo,
		Grade:        s.Grade(),
		ApprovalRate: s.ApprovalRate(),
		Volume:       s.Volume(),
		Risk:         s.RiskLevel(),
		Counts:       s.counts,
		TotalJudged:  s.total,
	}
}
