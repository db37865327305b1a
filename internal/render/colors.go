package render

import (
	"image/color"

	"autocell/internal/core"
)

var (
	outline     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pendingFill = color.RGBA{R: 97, G: 175, B: 239, A: 188}
	activeFill  = color.RGBA{R: 97, G: 175, B: 239, A: 255}
)

// FillColor maps a draw state to its fill color. The second return is
// false for the plain-outline state, which has no fill at all.
func FillColor(s core.DrawState) (color.RGBA, bool) {
	switch s {
	case core.DrawActive:
		return activeFill, true
	case core.DrawPending:
		return pendingFill, true
	default:
		return color.RGBA{}, false
	}
}

// OutlineColor is the border color shared by every cell.
func OutlineColor() color.RGBA { return outline }
