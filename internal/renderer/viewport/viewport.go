// Package viewport provides viewport management for the renderer.
package viewport

// Viewport represents the visible band of text lines.
// Lines are zero-based logical lines; the viewport holds no text itself.
type Viewport struct {
	// First visible line (the scroll anchor)
	topLine int

	// Size in screen cells
	width  int
	height int

	// Keep the cursor line visible after each command
	follow bool
}

// NewViewport creates a viewport with the given size.
// Negative dimensions are clamped to zero.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:  max(width, 0),
		height: max(height, 0),
		follow: true,
	}
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	return v.height
}

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int {
	return v.topLine
}

// Resize updates the viewport size.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 0)
	v.height = max(height, 0)
}

// SetFollow enables or disables scroll-follow.
func (v *Viewport) SetFollow(enabled bool) {
	v.follow = enabled
}

// Follow reports whether scroll-follow is enabled.
func (v *Viewport) Follow() bool {
	return v.follow
}

// IsLineVisible returns true if the line is within the viewport.
func (v *Viewport) IsLineVisible(line int) bool {
	return line >= v.topLine && line < v.topLine+v.height
}

// LineToScreenRow converts a line to a row relative to the text origin.
// Returns -1 if the line is not visible.
func (v *Viewport) LineToScreenRow(line int) int {
	if !v.IsLineVisible(line) {
		return -1
	}
	return line - v.topLine
}

// ScrollTo makes line the first visible line.
func (v *Viewport) ScrollTo(line int) {
	v.topLine = max(line, 0)
}

// ScrollToReveal scrolls minimally so line is visible.
// Returns true if scrolling occurred. It does nothing when scroll-follow
// is disabled or the viewport has no rows.
func (v *Viewport) ScrollToReveal(line int) bool {
	if !v.follow || v.height <= 0 || line < 0 || v.IsLineVisible(line) {
		return false
	}

	if line < v.topLine {
		v.topLine = line
	} else {
		v.topLine = line - v.height + 1
	}
	return true
}
