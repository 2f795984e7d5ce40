package theme

import (
	"fmt"
	"image/color"

	"github.com/lunarhue/chargebeat/internal/game"
)

type DefaultTheme struct{}

const (
	tapSym  = "⬤"
	holdSym = "◉"
	bodySym = "┃"
	barSym  = "-"
)

var laneColors = [game.LaneCount]color.RGBA{
	{R: 236, G: 30, B: 0},
	{R: 0, G: 118, B: 236},
	{R: 236, G: 195, B: 0},
	{R: 106, G: 0, B: 236},
}

var tierColors = [game.TierCount]color.RGBA{
	game.Approved:   {R: 0, G: 236, B: 128},
	game.Pending:    {R: 236, G: 195, B: 0},
	game.Declined:   {R: 236, G: 128, B: 0},
	game.Chargeback: {R: 236, G: 30, B: 0},
}

func paint(c color.RGBA, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

func (t *DefaultTheme) RenderNote(lane int, kind game.NoteKind) string {
	sym := tapSym
	if kind == game.Hold {
		sym = holdSym
	}
	return paint(laneColors[lane], sym)
}

func (t *DefaultTheme) RenderHoldBody(lane int) string {
	return paint(laneColors[lane], bodySym)
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return barSym
}

func (t *DefaultTheme) TierName(tier game.Tier) string {
	return paint(tierColors[tier], fmt.Sprintf("%10v", tier))
}

func (t *DefaultTheme) TierColor(tier game.Tier) color.RGBA {
	return tierColors[tier]
}
