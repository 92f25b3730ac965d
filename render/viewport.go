package render

import (
	"math"

	"github.com/lixenwraith/haliteviz/parameter"
)

// Viewport maps board coordinates onto a rectangle of terminal cells
// Cells are CellAspect times taller than wide, so vertical scale is divided by it
type Viewport struct {
	Left, Top  int
	Cols, Rows int
	scale      float64 // cells per board unit, horizontal
	offX, offY float64
}

// Fit centers a boardW x boardH board in the rectangle, preserving aspect
func Fit(boardW, boardH float64, left, top, cols, rows int) Viewport {
	v := Viewport{Left: left, Top: top, Cols: cols, Rows: rows}
	if boardW <= 0 || boardH <= 0 || cols <= 0 || rows <= 0 {
		return v
	}

	v.scale = math.Min(float64(cols)/boardW, float64(rows)*parameter.CellAspect/boardH)
	v.offX = (float64(cols) - boardW*v.scale) / 2
	v.offY = (float64(rows) - boardH*v.scale/parameter.CellAspect) / 2
	return v
}

// Scale returns horizontal cells per board unit
func (v Viewport) Scale() float64 {
	return v.scale
}

// ToCell returns the cell containing board point x,y
func (v Viewport) ToCell(x, y float64) (col, row int, ok bool) {
	if v.scale == 0 {
		return 0, 0, false
	}
	col = v.Left + int(math.Floor(v.offX+x*v.scale))
	row = v.Top + int(math.Floor(v.offY+y*v.scale/parameter.CellAspect))
	return col, row, v.Contains(col, row)
}

// ToBoard returns the board point at the center of a cell
func (v Viewport) ToBoard(col, row int) (x, y float64) {
	if v.scale == 0 {
		return 0, 0
	}
	x = (float64(col-v.Left) + 0.5 - v.offX) / v.scale
	y = (float64(row-v.Top) + 0.5 - v.offY) * parameter.CellAspect / v.scale
	return x, y
}

// Contains reports whether the cell lies inside the viewport rectangle
func (v Viewport) Contains(col, row int) bool {
	return col >= v.Left && row >= v.Top && col < v.Left+v.Cols && row < v.Top+v.Rows
}

// disc calls fn for every cell whose center lies within r of x,y
// The center cell is always visited so small discs stay visible
func (v Viewport) disc(x, y, r float64, fn func(col, row int)) {
	ccol, crow, ok := v.ToCell(x, y)
	if ok {
		fn(ccol, crow)
	}
	if v.scale == 0 || r <= 0 {
		return
	}

	minCol, minRow, _ := v.ToCell(x-r, y-r)
	maxCol, maxRow, _ := v.ToCell(x+r, y+r)
	for row := max(minRow, v.Top); row <= min(maxRow, v.Top+v.Rows-1); row++ {
		for col := max(minCol, v.Left); col <= min(maxCol, v.Left+v.Cols-1); col++ {
			if col == ccol && row == crow {
				continue
			}
			bx, by := v.ToBoard(col, row)
			if math.Hypot(bx-x, by-y) <= r {
				fn(col, row)
			}
		}
	}
}

// ring calls fn for cells on the circle of radius r around x,y
func (v Viewport) ring(x, y, r float64, fn func(col, row int)) {
	if v.scale == 0 {
		return
	}
	if r*v.scale < 1 {
		if col, row, ok := v.ToCell(x, y); ok {
			fn(col, row)
		}
		return
	}

	steps := max(int(2*math.Pi*r*v.scale), 8)
	seen := make(map[[2]int]struct{}, steps)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		col, row, ok := v.ToCell(x+r*math.Cos(a), y+r*math.Sin(a))
		if !ok {
			continue
		}
		key := [2]int{col, row}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		fn(col, row)
	}
}

// line calls fn for cells along the segment from x0,y0 to x1,y1
func (v Viewport) line(x0, y0, x1, y1 float64, fn func(col, row int)) {
	c0, r0, _ := v.ToCell(x0, y0)
	c1, r1, _ := v.ToCell(x1, y1)
	steps := max(abs(c1-c0), abs(r1-r0), 1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col := c0 + int(math.Round(float64(c1-c0)*t))
		row := r0 + int(math.Round(float64(r1-r0)*t))
		if v.Contains(col, row) {
			fn(col, row)
		}
	}
}

// ellipse calls fn for cells on the axis-aligned ellipse around x,y
func (v Viewport) ellipse(x, y, ax, ay float64, fn func(col, row int)) {
	if v.scale == 0 {
		return
	}
	steps := max(int(2*math.Pi*math.Max(ax, ay)*v.scale), 16)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		if col, row, ok := v.ToCell(x+ax*math.Cos(a), y+ay*math.Sin(a)); ok {
			fn(col, row)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
