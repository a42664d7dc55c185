package renderer

import (
	"strings"

	"github.com/jstene/edit/internal/renderer/core"
	"github.com/jstene/edit/internal/renderer/style"
	"github.com/jstene/edit/internal/renderer/viewport"
)

// MenuItem is one command on the menu bar.
type MenuItem struct {
	Label string

	// Mnemonic is highlighted at its first occurrence in Label.
	Mnemonic rune
}

// DefaultMenu returns the Escape-prefixed commands.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{Label: "Save", Mnemonic: 'S'},
		{Label: "Exit", Mnemonic: 'E'},
		{Label: "Exit without saving", Mnemonic: 'x'},
	}
}

// menuHint precedes the items in the plain theme, where the highlight
// alone may not show which key to press.
const menuHint = "Esc-"

// menuGap separates menu items.
const menuGap = 2

// drawMenu draws the menu bar on row 0: items from column 1, then the
// status message and file name right-aligned.
func (r *Renderer) drawMenu(g viewport.Geometry, f Frame) {
	if g.Rows <= viewport.MenuRow {
		return
	}

	y := viewport.MenuRow
	menu := r.theme.Style(style.RoleMenu)
	mnemonic := r.theme.Style(style.RoleMnemonic)
	r.backend.Fill(core.NewScreenRect(y, 0, y+1, g.Cols), core.NewStyledCell(' ', menu))

	x := 1
	if r.theme.IsPlain() {
		x = r.drawString(x, y, g.Cols, menuHint, menu)
	}
	for i, item := range r.opts.Menu {
		if i > 0 {
			x += menuGap
		}
		x = r.drawLabel(x, y, g.Cols, item, menu, mnemonic)
	}

	right := f.FileName
	rightStyle := menu
	if f.Status != "" {
		right = f.Status
		if f.FileName != "" {
			right = f.Status + "  " + f.FileName
		}
		if f.StatusIsError {
			rightStyle = r.theme.Style(style.RoleError)
		}
	}
	if right == "" {
		return
	}

	// Keep one blank cell on each side of the right-aligned text.
	avail := g.Cols - 1 - (x + menuGap)
	if avail <= 0 {
		return
	}
	right = core.TruncateString(right, avail)
	r.drawString(g.Cols-1-core.StringWidth(right), y, g.Cols, right, rightStyle)
}

// drawLabel draws a menu label with its mnemonic highlighted and returns
// the column after it.
func (r *Renderer) drawLabel(x, y, limit int, item MenuItem, normal, highlight core.Style) int {
	idx := strings.IndexRune(item.Label, item.Mnemonic)
	for i, ch := range item.Label {
		st := normal
		if i == idx {
			st = highlight
		}
		x = r.drawRune(x, y, limit, ch, st)
	}
	return x
}

// drawString draws s from column x, clipped at limit, and returns the
// column after it.
func (r *Renderer) drawString(x, y, limit int, s string, st core.Style) int {
	for _, ch := range s {
		x = r.drawRune(x, y, limit, ch, st)
	}
	return x
}

func (r *Renderer) drawRune(x, y, limit int, ch rune, st core.Style) int {
	w := max(core.RuneWidth(ch), 1)
	if x+w <= limit {
		r.backend.SetCell(x, y, core.NewStyledCell(ch, st))
	}
	return x + w
}
