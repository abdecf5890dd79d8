// Package termhost runs a field in a terminal with Bubble Tea.
//
// Display lists are rasterized onto a character grid: every cell stands for
// a CellWidth x CellHeight block of field pixels.
package termhost

import (
	"fmt"
	"math"
	"strings"

	"github.com/agiangrant/pinfield/draw"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	lowerBar    = "▁"
	verticalBar = "│"
)

// Cell is one terminal cell. A wide glyph occupies its cell and marks the
// next one as a continuation.
type Cell struct {
	Text string
	FG   uint32
	BG   uint32
	cont bool
}

// Grid is a draw.Surface backed by terminal cells.
type Grid struct {
	CellWidth  float32
	CellHeight float32

	cols, rows int
	cells      []Cell
	styles     map[[2]uint32]lipgloss.Style
}

var _ draw.Surface = (*Grid)(nil)

// NewGrid creates an empty grid. Terminal cells are about twice as tall as
// wide, so 5x10 keeps slots roughly square.
func NewGrid(cellWidth, cellHeight float32) *Grid {
	if cellWidth <= 0 {
		cellWidth = 5
	}
	if cellHeight <= 0 {
		cellHeight = 10
	}
	return &Grid{
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		styles:     make(map[[2]uint32]lipgloss.Style),
	}
}

// Resize fits the grid to a field of the given pixel size and clears it.
func (g *Grid) Resize(width, height float32) {
	cols := int(math.Ceil(float64(width / g.CellWidth)))
	rows := int(math.Ceil(float64(height / g.CellHeight)))
	if cols == g.cols && rows == g.rows {
		clear(g.cells)
		return
	}
	g.cols, g.rows = cols, rows
	g.cells = make([]Cell, cols*rows)
}

func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// Cell returns the cell at col, row, or a blank cell outside the grid.
func (g *Grid) Cell(col, row int) Cell {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return Cell{}
	}
	return g.cells[row*g.cols+col]
}

func (g *Grid) at(col, row int) *Cell {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

// span maps the pixel range [from, to) to cells. Never empty.
func span(from, to, size float32) (int, int) {
	a := int(math.Round(float64(from / size)))
	b := int(math.Round(float64(to / size)))
	if b <= a {
		b = a + 1
	}
	return a, b
}

// rowAt is the cell row whose bottom edge is at or below y.
func (g *Grid) rowAt(y float32) int {
	return int(math.Ceil(float64(y/g.CellHeight))) - 1
}

// DrawRoundRect fills the covered cells. Corners are square at this
// resolution.
func (g *Grid) DrawRoundRect(x, y, width, height, radius float32, c uint32) {
	if draw.Alpha(c) == 0 {
		return
	}
	c0, c1 := span(x, x+width, g.CellWidth)
	r0, r1 := span(y, y+height, g.CellHeight)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if cell := g.at(col, row); cell != nil {
				cell.BG = blend(cell.BG, c)
			}
		}
	}
}

// DrawLine draws horizontal lines with lower bars and anything else as a
// vertical bar at x0.
func (g *Grid) DrawLine(x0, y0, x1, y1, strokeWidth float32, c uint32) {
	if y0 == y1 {
		row := g.rowAt(y0)
		c0, c1 := span(min(x0, x1), max(x0, x1), g.CellWidth)
		for col := c0; col < c1; col++ {
			g.put(col, row, lowerBar, c)
		}
		return
	}

	col := int(x0 / g.CellWidth)
	r0 := int(math.Floor(float64(min(y0, y1) / g.CellHeight)))
	r1 := g.rowAt(max(y0, y1)) + 1
	if r1 <= r0 {
		r1 = r0 + 1
	}
	for row := r0; row < r1; row++ {
		g.put(col, row, verticalBar, c)
	}
}

// DrawText places str on the row holding its baseline.
func (g *Grid) DrawText(str string, x, baseline, size float32, c uint32, align draw.TextAlign) {
	w := runewidth.StringWidth(str)
	if w == 0 {
		return
	}

	cx := float64(x / g.CellWidth)
	var col int
	switch align {
	case draw.TextAlignCenter:
		col = int(math.Round(cx - float64(w)/2))
	case draw.TextAlignRight:
		col = int(math.Round(cx)) - w
	default:
		col = int(math.Round(cx))
	}
	row := g.rowAt(baseline)

	g.put(col, row, str, c)
	for i := 1; i < w; i++ {
		if cell := g.at(col+i, row); cell != nil {
			cell.Text = ""
			cell.cont = true
		}
	}
}

func (g *Grid) put(col, row int, str string, fg uint32) {
	cell := g.at(col, row)
	if cell == nil {
		return
	}
	cell.Text = str
	cell.FG = fg
	cell.cont = false
}

// Render returns the grid as styled terminal lines.
func (g *Grid) Render() string {
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		g.renderRow(&b, row)
	}
	return b.String()
}

func (g *Grid) renderRow(b *strings.Builder, row int) {
	var run strings.Builder
	var key [2]uint32
	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString(g.style(key).Render(run.String()))
		run.Reset()
	}

	for col := 0; col < g.cols; col++ {
		cell := g.cells[row*g.cols+col]
		if cell.cont {
			continue
		}
		k := [2]uint32{cell.FG, cell.BG}
		if k != key {
			flush()
			key = k
		}
		if cell.Text == "" {
			run.WriteByte(' ')
		} else {
			run.WriteString(cell.Text)
		}
	}
	flush()
}

func (g *Grid) style(key [2]uint32) lipgloss.Style {
	if s, ok := g.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if draw.Alpha(key[0]) != 0 {
		s = s.Foreground(lipgloss.Color(rgbHex(key[0])))
	}
	if draw.Alpha(key[1]) != 0 {
		s = s.Background(lipgloss.Color(rgbHex(key[1])))
	}
	g.styles[key] = s
	return s
}

// String returns the grid text without colors.
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.cols; col++ {
			cell := g.cells[row*g.cols+col]
			switch {
			case cell.cont:
			case cell.Text == "":
				b.WriteByte(' ')
			default:
				b.WriteString(cell.Text)
			}
		}
	}
	return b.String()
}

func rgbHex(c uint32) string {
	return fmt.Sprintf("#%06x", c>>8)
}

// blend composites src over dst.
func blend(dst, src uint32) uint32 {
	sr, sg, sb, sa := draw.Components(src)
	if sa == 0xFF || draw.Alpha(dst) == 0 {
		return src
	}
	dr, dg, db, da := draw.Components(dst)

	a := float64(sa) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	outA := uint8(math.Round(float64(sa) + float64(da)*(1-a)))
	return draw.RGBA(mix(sr, dr), mix(sg, dg), mix(sb, db), outA)
}
