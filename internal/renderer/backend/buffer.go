package backend

import (
	"strings"

	"github.com/jstene/edit/internal/renderer/core"
)

// ScreenBuffer is an in-memory cell grid.
// It backs the null backend and is the back buffer of the raw backend.
type ScreenBuffer struct {
	width, height int
	cells         [][]core.Cell
}

// NewScreenBuffer creates a screen buffer with the given dimensions.
func NewScreenBuffer(width, height int) *ScreenBuffer {
	sb := &ScreenBuffer{
		width:  max(width, 0),
		height: max(height, 0),
	}
	sb.allocate()
	return sb
}

// allocate creates the cell grid filled with empty cells.
func (sb *ScreenBuffer) allocate() {
	sb.cells = make([][]core.Cell, sb.height)
	for y := range sb.cells {
		sb.cells[y] = make([]core.Cell, sb.width)
		for x := range sb.cells[y] {
			sb.cells[y][x] = core.EmptyCell()
		}
	}
}

// Resize resizes the buffer, preserving content where possible.
func (sb *ScreenBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == sb.width && height == sb.height {
		return
	}

	old := sb.cells
	copyHeight := min(sb.height, height)
	copyWidth := min(sb.width, width)

	sb.width = width
	sb.height = height
	sb.allocate()

	for y := 0; y < copyHeight; y++ {
		copy(sb.cells[y][:copyWidth], old[y][:copyWidth])
	}
}

// Size returns the buffer dimensions.
func (sb *ScreenBuffer) Size() (width, height int) {
	return sb.width, sb.height
}

// SetCell sets a cell.
func (sb *ScreenBuffer) SetCell(x, y int, cell core.Cell) {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return
	}
	sb.cells[y][x] = cell
}

// GetCell returns a cell, or an empty cell outside the grid.
func (sb *ScreenBuffer) GetCell(x, y int) core.Cell {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return core.EmptyCell()
	}
	return sb.cells[y][x]
}

// Fill fills a rectangle with the given cell.
func (sb *ScreenBuffer) Fill(rect core.ScreenRect, cell core.Cell) {
	for y := max(rect.Top, 0); y < rect.Bottom && y < sb.height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < sb.width; x++ {
			sb.cells[y][x] = cell
		}
	}
}

// Clear resets every cell to an empty cell.
func (sb *ScreenBuffer) Clear() {
	sb.Fill(core.NewScreenRect(0, 0, sb.height, sb.width), core.EmptyCell())
}

// Row returns the runes of row y as a string.
func (sb *ScreenBuffer) Row(y int) string {
	if y < 0 || y >= sb.height {
		return ""
	}
	var b strings.Builder
	for _, c := range sb.cells[y] {
		b.WriteRune(c.Rune)
	}
	return b.String()
}
