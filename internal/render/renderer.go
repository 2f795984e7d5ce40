package render

import (
	"image/color"
	"time"
)

type Renderer interface {
	Init() error
	Deinit() error
	AddDecoration(row, column int, content string, frames int)
	RenderLoop(delay time.Duration, render func(now time.Duration) bool)
	Fill(row, column int, message string)
	FillColor(row, column int, c color.RGBA, message string)
}
