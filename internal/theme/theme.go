package theme

import (
	"image/color"

	"github.com/lunarhue/chargebeat/internal/game"
)

type Theme interface {
	RenderNote(lane int, kind game.NoteKind) string
	RenderHoldBody(lane int) string
	RenderHitField(lane int) string
	TierName(tier game.Tier) string
	TierColor(tier game.Tier) color.RGBA
}
