//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the title and a mode/population status line across the top
// of the frame.
type HUD struct {
	title string
}

// NewHUD constructs a HUD with the given title.
func NewHUD(title string) *HUD {
	return &HUD{title: title}
}

// Draw paints the title centered at the top of the screen with the
// current engine status beneath it.
func (h *HUD) Draw(screen *ebiten.Image, running bool, population int) {
	face := basicfont.Face7x13
	w := screen.Bounds().Dx()

	bounds := text.BoundString(face, h.title)
	text.Draw(screen, h.title, face, (w-bounds.Dx())/2, 16, color.White)

	mode := "editing"
	if running {
		mode = "running"
	}
	status := fmt.Sprintf("%s | cells: %d", mode, population)
	sb := text.BoundString(face, status)
	text.Draw(screen, status, face, (w-sb.Dx())/2, 32, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}
