package core

// Rect is an axis-aligned square region in logical pixels.
type Rect struct {
	X, Y, Side int
}

// Contains reports whether the logical-pixel point (x, y) lies within r.
func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.X) && x <= float64(r.X+r.Side) &&
		y >= float64(r.Y) && y <= float64(r.Y+r.Side)
}

// Offset is a small 2D pixel displacement.
type Offset struct {
	X, Y int
}

// DrawState identifies which of the three visual treatments applies to a
// cell: a plain outline, a translucent pending-selection fill, or an
// opaque active fill displaced by the cell's jitter.
type DrawState int

const (
	DrawOutline DrawState = iota
	DrawPending
	DrawActive
)

// Cell holds the state of a single grid square. It carries no behavior
// beyond storage; the grid engine owns all mutation. Setters return the
// cell so layout initialization can chain them.
type Cell struct {
	bounds  Rect
	active  bool
	hovered bool
	pending bool
	jitter  Offset
}

// Bounds returns the cell's square region in logical pixels.
func (c *Cell) Bounds() Rect { return c.bounds }

// SetBounds records the cell's region.
func (c *Cell) SetBounds(r Rect) *Cell {
	c.bounds = r
	return c
}

// Active reports the cell's current simulation state.
func (c *Cell) Active() bool { return c.active }

// SetActive records the cell's simulation state.
func (c *Cell) SetActive(v bool) *Cell {
	c.active = v
	return c
}

// Hovered reports whether the pointer is currently over the cell.
func (c *Cell) Hovered() bool { return c.hovered }

// SetHovered records the hover flag.
func (c *Cell) SetHovered(v bool) *Cell {
	c.hovered = v
	return c
}

// PendingChange reports whether the cell is marked to flip at the end of
// the current generation.
func (c *Cell) PendingChange() bool { return c.pending }

// SetPendingChange records the scratch flip marker.
func (c *Cell) SetPendingChange(v bool) *Cell {
	c.pending = v
	return c
}

// Jitter returns the cell's cosmetic displacement.
func (c *Cell) Jitter() Offset { return c.jitter }

// SetJitter records the cosmetic displacement.
func (c *Cell) SetJitter(o Offset) *Cell {
	c.jitter = o
	return c
}

// DrawState derives the visual treatment for the cell. Active wins over
// hovered so a cell under the pointer still reads as alive.
func (c *Cell) DrawState() DrawState {
	switch {
	case c.active:
		return DrawActive
	case c.hovered:
		return DrawPending
	default:
		return DrawOutline
	}
}
