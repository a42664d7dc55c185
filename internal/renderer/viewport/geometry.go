package viewport

import "github.com/jstene/edit/internal/renderer/core"

// Frame layout rows and the text origin.
const (
	// MenuRow is the row holding the menu bar.
	MenuRow = 0
	// BorderTop is the row of the top border.
	BorderTop = 1
	// OriginRow and OriginCol locate the first text cell.
	OriginRow = 2
	OriginCol = 2
)

// Geometry is the frame layout derived from the terminal size.
type Geometry struct {
	Cols, Rows int

	// Border encloses the text region; its corners hold '+'.
	Border core.ScreenRect

	// Text is the drawable text region.
	Text core.ScreenRect
}

// FrameGeometry derives the layout for a cols x rows terminal: a menu row,
// then a border spanning the full width and the remaining rows, with one
// blank column between each side of the border and the text.
func FrameGeometry(cols, rows int) Geometry {
	cols, rows = max(cols, 0), max(rows, 0)

	border := core.NewScreenRect(BorderTop, 0, max(rows, BorderTop), cols)
	text := border.Inset(OriginRow-BorderTop, OriginCol, 1, OriginCol)

	return Geometry{Cols: cols, Rows: rows, Border: border, Text: text}
}

// TextWidth returns the drawable text width (cols-4).
func (g Geometry) TextWidth() int {
	return g.Text.Width()
}

// TextHeight returns the drawable text height (rows-3).
func (g Geometry) TextHeight() int {
	return g.Text.Height()
}

// HasBorder reports whether the terminal is large enough to draw the border.
func (g Geometry) HasBorder() bool {
	return g.Border.Width() >= 2 && g.Border.Height() >= 2
}

// ToScreen converts a text-region position to absolute screen coordinates.
func (g Geometry) ToScreen(row, col int) core.ScreenPos {
	return core.NewScreenPos(row, col).Add(g.Text.Top, g.Text.Left)
}
