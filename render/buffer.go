package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Buffer is an off-screen grid composed per frame and flushed to the screen
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates a buffer of the given size
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize reallocates when the size changed
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == b.width && height == b.height {
		return
	}
	b.width, b.height = width, height
	b.cells = make([]Cell, width*height)
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear fills every cell with a blank on bg
func (b *Buffer) Clear(bg RGB) {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Fg: RgbText, Bg: bg}
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Get returns the cell at x,y
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Set writes a full cell; out-of-bounds writes are dropped
func (b *Buffer) Set(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// SetRune writes a glyph keeping the background
func (b *Buffer) SetRune(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
}

// Tint blends color into the background at alpha
func (b *Buffer) Tint(x, y int, color RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Bg = Blend(c.Bg, color, alpha)
}

// Text writes s starting at x,y and returns the column after the last rune
func (b *Buffer) Text(x, y int, s string, fg, bg RGB) int {
	for _, r := range s {
		b.Set(x, y, r, fg, bg)
		x++
	}
	return x
}

// Flush copies the buffer to screen; the caller calls Show
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(c.Bg.Tcell())
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}
