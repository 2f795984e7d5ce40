package score

import (
	"github.com/lunarhue/chargebeat/internal/game"
)

type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

type Risk string

const (
	RiskLow      Risk = "LOW"
	RiskMedium   Risk = "MEDIUM"
	RiskHigh     Risk = "HIGH"
	RiskCritical Risk = "CRITICAL"
)

// Applied is what one judgment did to the running state, for the HUD.
type Applied struct {
	Tier       game.Tier
	Points     int64
	Combo      int
	Multiplier int
}

// Snapshot is the finalized end-of-session state.
type Snapshot struct {
	Score        int64
	MaxCombo     int
	Grade        Grade
	ApprovalRate float64
	Volume       float64
	Risk         Risk
	Counts       [game.TierCount]int
	TotalJudged  int
}

type Scorer interface {
	Apply(tier game.Tier) Applied
	Reset()

	Score() int64
	Combo() int
	MaxCombo() int
	Multiplier() int
	Counts() [game.TierCount]int
	TotalJudged() int

	Grade() Grade
	ApprovalRate() float64
	RiskLevel() Risk
	Volume() float64
	Snapshot() Snapshot
}
