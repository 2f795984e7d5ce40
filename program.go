package main

import (
	"fmt"
	"math"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/lunarhue/chargebeat/internal/beatmap"
	"github.com/lunarhue/chargebeat/internal/config"
	"github.com/lunarhue/chargebeat/internal/game"
	"github.com/lunarhue/chargebeat/internal/input"
	"github.com/lunarhue/chargebeat/internal/judge"
	"github.com/lunarhue/chargebeat/internal/render"
	"github.com/lunarhue/chargebeat/internal/score"
	"github.com/lunarhue/chargebeat/internal/theme"
)

const splashFrames = 90

type phase uint8

const (
	playing phase = iota
	results
)

type cell struct {
	row, col int
}

// Program is the session controller. It owns the per-tick contract: one
// clock sample per tick, presses before the timeout sweep, judgments
// forwarded to the scorer and the renderer.
type Program struct {
	Renderer render.Renderer
	Theme    theme.Theme
	Scorer   score.Scorer
	Records  score.Records

	beatmap *beatmap.Beatmap
	session *beatmap.Session
	engine  judge.Engine
	edges   input.EdgeDetector
	level   game.Difficulty

	keyChannel <-chan keyboard.KeyEvent

	rows, cols int
	laneCols   [game.LaneCount]int
	hitRow     int
	sideCol    int

	phase     phase
	drawn     []cell
	bestScore int64
	hasBest   bool
	newBest   bool
}

func (p *Program) Init(b *beatmap.Beatmap, rows, cols int, keys <-chan keyboard.KeyEvent) error {
	windows := config.Windows()
	if err := windows.Validate(); nil != err {
		return err
	}

	p.beatmap = b
	p.level = config.Level()

	// The persisted calibration and the -o flag shift every derived
	// note exactly once, inside the difficulty derivation.
	p.beatmap.Offset += p.Records.Calibration() + *config.Offset
	p.beatmap.ApplyDifficulty(p.level)

	p.session = beatmap.NewSession(p.beatmap)
	p.engine = &judge.DefaultEngine{
		Session: p.session,
		Scorer:  p.Scorer,
		Windows: windows,
	}

	p.keyChannel = keys
	p.rows, p.cols = rows, cols

	spacing := int(*config.ColumnSpacing)
	mc := cols >> 1
	p.laneCols = [game.LaneCount]int{
		mc - spacing*3,
		mc - spacing,
		mc + spacing,
		mc + spacing*3,
	}
	p.hitRow = rows - int(*config.BarRow)
	p.sideCol = p.laneCols[0] - 34
	if p.sideCol < 2 {
		p.sideCol = 2
	}

	p.bestScore, p.hasBest = p.Records.Best(p.beatmap.Track)
	return nil
}

// Tick runs one frame. The duration argument is the only clock sample
// this frame; every judgment below shares it.
func (p *Program) Tick(now time.Duration) bool {
	var pressed [game.LaneCount]bool
	for i := 0; i < len(p.keyChannel); i++ {
		key := <-p.keyChannel
		if key.Key == keyboard.KeyEsc {
			return false
		}
		if p.phase == results {
			return false
		}
		if lane := config.KeyLane(key.Rune); lane >= 0 {
			pressed[lane] = true
		}
	}

	if p.phase == results {
		return true
	}

	if now > p.beatmap.Duration() {
		p.finish()
		return true
	}

	// Presses resolve before the sweep so a press landing on the same
	// tick a note would time out still counts.
	for lane, edge := range p.edges.Update(pressed) {
		if !edge {
			continue
		}
		res := p.engine.ResolvePress(lane, now)
		if nil == res {
			continue
		}
		p.splash(res)
	}
	for _, res := range p.engine.Sweep(now) {
		res := res
		p.splash(&res)
	}

	p.renderNotes(now)
	p.renderHUD(now)
	return true
}

func (p *Program) splash(res *judge.Result) {
	p.Renderer.AddDecoration(p.hitRow-2, p.cols>>1-5, p.Theme.TierName(res.Tier), splashFrames)
	if res.Tier != game.Chargeback {
		p.Renderer.AddDecoration(p.hitRow-3, p.cols>>1-5,
			fmt.Sprintf("%10v", fmt.Sprintf("+%v", res.Points)), splashFrames)
	}
}

func (p *Program) clearDrawn() {
	for _, c := range p.drawn {
		p.Renderer.Fill(c.row, c.col, " ")
	}
	p.drawn = p.drawn[:0]
}

func (p *Program) draw(row, col int, content string) {
	if row < 1 || row > p.rows {
		return
	}
	p.Renderer.Fill(row, col, content)
	p.drawn = append(p.drawn, cell{row: row, col: col})
}

// noteRow maps time-to-hit onto the lane between the top of the screen
// and the hit bar.
func (p *Program) noteRow(delta, approach time.Duration) int {
	span := float64(p.hitRow - 1)
	return p.hitRow - int(math.Round(float64(delta)/float64(approach)*span))
}

func (p *Program) renderNotes(now time.Duration) {
	p.clearDrawn()

	approach := p.level.Approach()
	for _, note := range p.session.Visible(now, approach) {
		col := p.laneCols[note.Lane]
		row := p.noteRow(note.Time-now, approach)
		if note.Kind == game.Hold {
			tail := p.noteRow(note.Time+note.HoldDuration-now, approach)
			for r := row - 1; r > tail; r-- {
				p.draw(r, col, p.Theme.RenderHoldBody(note.Lane))
			}
		}
		p.draw(row, col, p.Theme.RenderNote(note.Lane, note.Kind))
	}

	for lane := 0; lane < game.LaneCount; lane++ {
		p.Renderer.Fill(p.hitRow, p.laneCols[lane], p.Theme.RenderHitField(lane))
	}
}

func (p *Program) renderHUD(now time.Duration) {
	s := p.Scorer
	p.Renderer.Fill(2, p.sideCol, fmt.Sprintf("      Track:  %v", p.beatmap.Track))
	if section, ok := p.beatmap.CurrentSection(now); ok {
		p.draw(3, p.sideCol, fmt.Sprintf("    Section:  %v", section.Label))
	}
	if cue, ok := p.beatmap.CurrentCue(now); ok {
		p.draw(4, p.sideCol, fmt.Sprintf("      Lyric:  %v", cue.Text))
	}
	p.draw(6, p.sideCol, fmt.Sprintf("      Score:  %8v", s.Score()))
	p.draw(7, p.sideCol, fmt.Sprintf("      Combo:  %5v x%v", s.Combo(), s.Multiplier()))
	p.draw(8, p.sideCol, fmt.Sprintf("   Approval:  %7.2f%%", s.ApprovalRate()))
	p.draw(9, p.sideCol, fmt.Sprintf("       Risk:  %8v", s.RiskLevel()))
	p.draw(10, p.sideCol, fmt.Sprintf("     Volume:  $%7.2f", s.Volume()))
	if p.hasBest {
		p.draw(11, p.sideCol, fmt.Sprintf("       Best:  %8v", p.bestScore))
	}
	counts := s.Counts()
	for tier := game.Tier(0); tier < game.TierCount; tier++ {
		p.draw(13+int(tier), p.sideCol,
			fmt.Sprintf("%v:  %6v", p.Theme.TierName(tier), counts[tier]))
	}
}

func (p *Program) finish() {
	p.phase = results
	snap := p.Scorer.Snapshot()
	p.newBest = p.Records.SaveBest(p.beatmap.Track, snap)
	p.clearDrawn()
	p.renderResults(snap)
}

func (p *Program) renderResults(snap score.Snapshot) {
	row := p.rows>>1 - 8
	col := p.cols>>1 - 16
	line := func(format string, args ...interface{}) {
		p.Renderer.Fill(row, col, fmt.Sprintf(format, args...))
		row++
	}

	line("  ──── settlement report ────")
	line("")
	line("      Grade:  %v", snap.Grade)
	line("      Score:  %v", snap.Score)
	line("  Max Combo:  %v", snap.MaxCombo)
	line("   Approval:  %.2f%%", snap.ApprovalRate)
	line("     Volume:  $%.2f", snap.Volume)
	line("       Risk:  %v", snap.Risk)
	line("")
	for tier := game.Tier(0); tier < game.TierCount; tier++ {
		line("%v:  %v", p.Theme.TierName(tier), snap.Counts[tier])
	}
	line("      Total:  %v", snap.TotalJudged)
	if p.newBest {
		line("")
		line("   ★ new record ★")
	}
}
