package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Braille dot bits indexed by [row][col] within a cell.
// Dots are numbered:
// 1 4
// 2 5
// 3 6
// 7 8
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Dot resolution of one terminal cell.
const (
	DotsPerCellX = 2
	DotsPerCellY = 4
)

// Cell is one terminal cell. A cell shows either a rune or braille dots.
type Cell struct {
	Rune rune
	Dots uint8
	Fg   string
	Bg   string
	// cont marks the right half of a wide rune
	cont bool
}

// Grid is a fixed-size cell buffer with a braille dot layer on top.
type Grid struct {
	width  int
	height int
	cells  []Cell
	ascii  bool
}

// NewGrid creates an empty grid.
func NewGrid(width, height int, ascii bool) *Grid {
	width, height = max(width, 0), max(height, 0)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		ascii:  ascii,
	}
}

// Size returns the grid size in cells.
func (g *Grid) Size() (int, int) {
	return g.width, g.height
}

// ASCII reports whether braille and box glyphs are replaced.
func (g *Grid) ASCII() bool {
	return g.ascii
}

func (g *Grid) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the cell at (x, y), or a zero cell outside the grid.
func (g *Grid) At(x, y int) Cell {
	if !g.in(x, y) {
		return Cell{}
	}
	return g.cells[y*g.width+x]
}

// Set writes a rune, clearing any dots under it.
func (g *Grid) Set(x, y int, r rune, fg string) {
	if !g.in(x, y) {
		return
	}
	c := &g.cells[y*g.width+x]
	c.Rune, c.Dots, c.Fg, c.cont = r, 0, fg, false
}

// Fill sets the background of a cell rectangle.
func (g *Grid) Fill(x, y, w, h int, bg string) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if g.in(col, row) {
				g.cells[row*g.width+col].Bg = bg
			}
		}
	}
}

// Clear blanks a cell rectangle, keeping backgrounds.
func (g *Grid) Clear(x, y, w, h int) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if g.in(col, row) {
				c := &g.cells[row*g.width+col]
				c.Rune, c.Dots, c.cont = 0, 0, false
			}
		}
	}
}

// Text writes s from (x, y), truncated to maxWidth columns. Wide runes
// take two cells. It returns the columns used.
func (g *Grid) Text(x, y int, s string, maxWidth int, fg string) int {
	s = runewidth.Truncate(s, maxWidth, "…")
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		g.Set(col, y, r, fg)
		if w == 2 && g.in(col+1, y) {
			c := &g.cells[y*g.width+col+1]
			c.Rune, c.Dots, c.Fg, c.cont = 0, 0, fg, true
		}
		col += w
	}
	return col - x
}

// Dot sets one braille dot in dot coordinates. Cells holding a rune are
// left alone.
func (g *Grid) Dot(dx, dy int, fg string) {
	if dx < 0 || dy < 0 {
		return
	}
	x, y := dx/DotsPerCellX, dy/DotsPerCellY
	if !g.in(x, y) {
		return
	}
	c := &g.cells[y*g.width+x]
	if c.Rune != 0 || c.cont {
		return
	}
	c.Dots |= brailleBits[dy%DotsPerCellY][dx%DotsPerCellX]
	if fg != "" {
		c.Fg = fg
	}
}

// Line draws a braille line between two dots (Bresenham).
func (g *Grid) Line(x0, y0, x1, y1 int, fg string) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		g.Dot(x0, y0, fg)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DotRect fills a rectangle of dots, [x0, x1) by [y0, y1).
func (g *Grid) DotRect(x0, y0, x1, y1 int, fg string) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.Dot(x, y, fg)
		}
	}
}

// DotOutline draws the border of a dot rectangle, [x0, x1) by [y0, y1).
func (g *Grid) DotOutline(x0, y0, x1, y1 int, fg string) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	g.Line(x0, y0, x1-1, y0, fg)
	g.Line(x0, y1-1, x1-1, y1-1, fg)
	g.Line(x0, y0, x0, y1-1, fg)
	g.Line(x1-1, y0, x1-1, y1-1, fg)
}

// boxChars are the frame glyphs: corners tl, tr, bl, br, then
// horizontal and vertical.
type boxChars [6]rune

var (
	roundedBox = boxChars{'╭', '╮', '╰', '╯', '─', '│'}
	asciiBox   = boxChars{'+', '+', '+', '+', '-', '|'}
)

// Box draws a cell frame. The interior is untouched.
func (g *Grid) Box(x, y, w, h int, fg string) {
	if w < 2 || h < 2 {
		return
	}
	b := roundedBox
	if g.ascii {
		b = asciiBox
	}
	right, bottom := x+w-1, y+h-1
	for col := x + 1; col < right; col++ {
		g.Set(col, y, b[4], fg)
		g.Set(col, bottom, b[4], fg)
	}
	for row := y + 1; row < bottom; row++ {
		g.Set(x, row, b[5], fg)
		g.Set(right, row, b[5], fg)
	}
	g.Set(x, y, b[0], fg)
	g.Set(right, y, b[1], fg)
	g.Set(x, bottom, b[2], fg)
	g.Set(right, bottom, b[3], fg)
}

// glyph is what a cell prints.
func (g *Grid) glyph(c Cell) string {
	switch {
	case c.cont:
		return ""
	case c.Rune != 0:
		return string(c.Rune)
	case c.Dots == 0:
		return " "
	case g.ascii:
		if popcount(c.Dots) >= 4 {
			return "#"
		}
		return "."
	default:
		return string(rune(0x2800) + rune(c.Dots))
	}
}

// Lines renders each row with ANSI colors. Color codes are only emitted
// when they change.
func (g *Grid) Lines() []string {
	lines := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		var sb strings.Builder
		fg, bg := "", ""
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			if c.Fg != fg || c.Bg != bg {
				if fg != "" || bg != "" {
					sb.WriteString("\033[0m")
				}
				if c.Bg != "" {
					sb.WriteString(ColorToANSIBg(c.Bg))
				}
				if c.Fg != "" {
					sb.WriteString(ColorToANSIFg(c.Fg))
				}
				fg, bg = c.Fg, c.Bg
			}
			sb.WriteString(g.glyph(c))
		}
		if fg != "" || bg != "" {
			sb.WriteString("\033[0m")
		}
		lines[y] = sb.String()
	}
	return lines
}

// String renders the grid as newline-separated rows.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Plain renders the grid without colors.
func (g *Grid) Plain() string {
	lines := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		var sb strings.Builder
		for x := 0; x < g.width; x++ {
			sb.WriteString(g.glyph(g.cells[y*g.width+x]))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func popcount(b uint8) int {
	n := 0
	for ; b != 0; b &= b - 1 {
		n++
	}
	return n
}
