//go:build ebiten

package render

import (
	"image/color"

	"autocell/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// CellPainter draws grid cells by stretching a 1x1 white pixel, tinted
// per rectangle.
type CellPainter struct {
	pixel *ebiten.Image
}

// NewCellPainter constructs a painter with its pixel source.
func NewCellPainter() *CellPainter {
	p := &CellPainter{pixel: ebiten.NewImage(1, 1)}
	p.pixel.Fill(color.White)
	return p
}

// Draw paints every cell of the grid onto screen: the state-dependent
// fill first, then the outline. Jitter displaces the whole cell, as the
// fill and border move together. sx and sy convert the grid's logical
// coordinates into screen pixels.
func (p *CellPainter) Draw(screen *ebiten.Image, grid *core.Grid, sx, sy float64) {
	cells := grid.Cells()
	for i := range cells {
		c := &cells[i]
		r := c.Bounds()
		j := c.Jitter()

		x := float64(r.X+j.X) * sx
		y := float64(r.Y+j.Y) * sy
		w := float64(r.Side) * sx
		h := float64(r.Side) * sy

		if fill, ok := FillColor(c.DrawState()); ok {
			p.fillRect(screen, x, y, w, h, fill)
		}
		p.strokeRect(screen, x, y, w, h, OutlineColor())
	}
}

func (p *CellPainter) fillRect(dst *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	dst.DrawImage(p.pixel, op)
}

func (p *CellPainter) strokeRect(dst *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	p.fillRect(dst, x, y, w, 1, col)
	p.fillRect(dst, x, y+h-1, w, 1, col)
	p.fillRect(dst, x, y, 1, h, col)
	p.fillRect(dst, x+w-1, y, 1, h, col)
}
