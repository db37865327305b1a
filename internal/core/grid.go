package core

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

const (
	// MaxCells bounds how many cells a layout pass may produce.
	MaxCells = 16384
	// MinSide is the smallest usable cell edge length in logical pixels.
	MinSide = 3

	// gap is the logical-pixel spacing between adjacent cells.
	gap = 2

	scaleEpsilon = 1e-9
)

var (
	// ErrSideTooSmall reports a cell edge length below MinSide.
	ErrSideTooSmall = errors.New("cell side below minimum")
	// ErrTooManyCells reports a derived column*row count above MaxCells.
	ErrTooManyCells = errors.New("cell count exceeds capacity")
)

// Surface reports the current display geometry. Width and height are in
// physical pixels; the scale factors convert logical to physical
// coordinates and may differ per axis.
type Surface interface {
	Size() (w, h int)
	Scale() (sx, sy float64)
}

// Pointer reports the current pointer position in physical pixels.
type Pointer interface {
	Position() (x, y float64)
}

// EventKind discriminates the input events the engine understands.
type EventKind int

const (
	// EventPointerMoved refreshes hover tracking; the engine queries the
	// pointer position itself, so the event carries no payload.
	EventPointerMoved EventKind = iota
	// EventButtonDown is a pointer button press.
	EventButtonDown
	// EventKeyDown is a key press.
	EventKeyDown
)

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Key identifies a key binding the engine reacts to.
type Key int

// KeyCommit starts a run, or pauses and resumes one in progress.
const KeyCommit Key = iota

// Event is one discrete input delivered to HandleInput.
type Event struct {
	Kind   EventKind
	Button Button
	Key    Key
}

// Grid owns the cell array and drives the sandbox: it derives the cell
// layout from the display geometry, toggles cells while editing, and
// evolves them with the B3/S23 rule while running. It never draws;
// hosts read Cells after Advance and paint from each cell's DrawState.
type Grid struct {
	side    int
	columns int
	rows    int
	cells   []Cell

	ready   int
	running bool

	scaleX float64
	scaleY float64

	surface Surface
	pointer Pointer
	rng     *RNG
	log     *slog.Logger
}

// New constructs a grid with the given cell edge length and a requested
// column/row count, then runs the initial layout pass against the
// surface. The requested counts are sizing hints only; layout may shrink
// them to fit. A side below MinSide or a derived cell count above
// MaxCells is a configuration error.
func New(side, columns, rows int, seed int64, surface Surface, pointer Pointer) (*Grid, error) {
	if side < MinSide {
		return nil, fmt.Errorf("grid: side %d: %w (minimum %d)", side, ErrSideTooSmall, MinSide)
	}
	g := &Grid{
		side:    side,
		columns: columns,
		rows:    rows,
		surface: surface,
		pointer: pointer,
		rng:     NewRNG(seed),
		log:     slog.Default(),
	}
	g.scaleX, g.scaleY = surface.Scale()
	if err := g.layout(); err != nil {
		return nil, err
	}
	return g, nil
}

// SetLogger replaces the logger used for generation reporting.
func (g *Grid) SetLogger(l *slog.Logger) {
	if l != nil {
		g.log = l
	}
}

// Side returns the cell edge length in logical pixels.
func (g *Grid) Side() int { return g.side }

// Columns returns the derived column count.
func (g *Grid) Columns() int { return g.columns }

// Rows returns the derived row count.
func (g *Grid) Rows() int { return g.rows }

// Cells exposes the backing cell slice in row-major order.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for grid coordinates (col, row).
func (g *Grid) Index(col, row int) int { return row*g.columns + col }

// Ready returns the live-cell count: toggled cells while editing, the
// running population otherwise.
func (g *Grid) Ready() int { return g.ready }

// Running reports whether the grid is evolving rather than being edited.
func (g *Grid) Running() bool { return g.running }

// HandleInput processes one discrete input event. Hover tracking is
// refreshed on every call from the current pointer position; while
// editing, a left button press toggles the hovered cell; the commit key
// flips between editing and running whenever any cell is live.
func (g *Grid) HandleInput(ev Event) {
	px, py := g.pointer.Position()
	px /= g.scaleX
	py /= g.scaleY

	toggle := !g.running && ev.Kind == EventButtonDown && ev.Button == ButtonLeft
	for i := range g.cells {
		c := &g.cells[i]
		c.SetHovered(c.Bounds().Contains(px, py))
		if toggle && c.Hovered() {
			if c.Active() {
				c.SetActive(false).SetJitter(Offset{})
				g.ready--
			} else {
				c.SetActive(true)
				g.ready++
			}
		}
	}

	if ev.Kind == EventKeyDown && ev.Key == KeyCommit && g.ready > 0 {
		g.running = !g.running
		if g.running {
			g.clearJitter()
		}
	}
}

// Advance runs one frame of engine work: re-layout if the display scale
// drifted, then either one generation (running) or the cosmetic jitter
// pass (editing). Draw flags are settled when it returns.
func (g *Grid) Advance() error {
	if err := g.syncScale(); err != nil {
		return err
	}
	if g.running {
		g.step()
	} else {
		g.shake()
	}
	return nil
}

func (g *Grid) syncScale() error {
	sx, sy := g.surface.Scale()
	if math.Abs(sx-g.scaleX) < scaleEpsilon && math.Abs(sy-g.scaleY) < scaleEpsilon {
		return nil
	}
	g.scaleX, g.scaleY = sx, sy
	return g.layout()
}

// layout derives the actual column/row counts and cell positions from
// the display area. Each axis is sized independently: if the requested
// grid fits inside the display minus a margin of four gaps and two cell
// sides it is centered, otherwise it is shrunk to the largest count
// that fits and anchored near the top-left corner. A layout pass resets
// every cell; reshaping the grid starts the sandbox over.
func (g *Grid) layout() error {
	winW, winH := g.surface.Size()
	w := int(float64(winW) / g.scaleX)
	h := int(float64(winH) / g.scaleY)

	var originX, originY int

	width := g.side*g.columns + gap*(g.columns-1)
	if width > w-(4*gap+2*g.side) {
		originX = 2 * gap
		g.columns = (w - gap) / (g.side + gap)
	} else {
		originX = (w - width) / 2
		g.columns = (width + gap) / (g.side + gap)
	}
	if g.columns < 0 {
		g.columns = 0
	}

	height := g.side*g.rows + gap*(g.rows-1)
	if height > h-(4*gap+2*g.side) {
		originY = 2 * gap
		g.rows = (h - gap) / (g.side + gap)
	} else {
		originY = (h - height) / 2
		g.rows = (height + gap) / (g.side + gap)
	}
	if g.rows < 0 {
		g.rows = 0
	}

	count := g.columns * g.rows
	if count > MaxCells {
		return fmt.Errorf("grid: %dx%d = %d cells: %w (maximum %d)",
			g.columns, g.rows, count, ErrTooManyCells, MaxCells)
	}

	g.cells = make([]Cell, count)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.columns; col++ {
			g.cells[g.Index(col, row)].SetBounds(Rect{
				X:    originX + col*(g.side+gap),
				Y:    originY + row*(g.side+gap),
				Side: g.side,
			})
		}
	}

	g.ready = 0
	g.running = false
	return nil
}

// step evolves the grid by one generation. Neighbor counts read the
// pre-step active flags; flips are recorded on the cells and applied in
// a second pass so late cells see the same snapshot as early ones.
func (g *Grid) step() {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.columns; col++ {
			c := &g.cells[g.Index(col, row)]
			c.SetJitter(Offset{})
			n := g.liveNeighbors(col, row)
			if c.Active() {
				if n < 2 || n > 3 {
					c.SetPendingChange(true)
					g.ready--
				}
			} else if n == 3 {
				c.SetPendingChange(true)
				g.ready++
			}
		}
	}

	for i := range g.cells {
		c := &g.cells[i]
		if c.PendingChange() {
			c.SetActive(!c.Active()).SetPendingChange(false)
		}
	}

	g.log.Debug("generation advanced", "population", g.ready)

	if g.ready <= 0 {
		g.running = false
		g.ready = 0
		g.log.Debug("population died out, back to editing")
	}
}

// liveNeighbors counts active cells in the Moore neighborhood of
// (col, row). Positions outside the grid are skipped; there is no
// wraparound, so edge and corner cells see fewer candidates.
func (g *Grid) liveNeighbors(col, row int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nc, nr := col+dx, row+dy
			if nc < 0 || nr < 0 || nc >= g.columns || nr >= g.rows {
				continue
			}
			if g.cells[g.Index(nc, nr)].Active() {
				n++
			}
		}
	}
	return n
}

// shake assigns a fresh random jitter to every active cell and zeroes
// the rest. Purely cosmetic; runs only while editing.
func (g *Grid) shake() {
	for i := range g.cells {
		c := &g.cells[i]
		if c.Active() {
			c.SetJitter(Offset{X: g.rng.Jitter(), Y: g.rng.Jitter()})
		} else {
			c.SetJitter(Offset{})
		}
	}
}

func (g *Grid) clearJitter() {
	for i := range g.cells {
		g.cells[i].SetJitter(Offset{})
	}
}
