package viewport

import (
	"testing"

	"github.com/jstene/edit/internal/renderer/core"
)

func TestNewViewport(t *testing.T) {
	v := NewViewport(80, 24)

	if v.Width() != 80 {
		t.Errorf("expected width 80, got %d", v.Width())
	}
	if v.Height() != 24 {
		t.Errorf("expected height 24, got %d", v.Height())
	}
	if v.TopLine() != 0 {
		t.Errorf("expected top line 0, got %d", v.TopLine())
	}
	if !v.Follow() {
		t.Error("scroll-follow should default to enabled")
	}
}

func TestViewportResize(t *testing.T) {
	v := NewViewport(80, 24)
	v.Resize(120, 40)

	if v.Width() != 120 || v.Height() != 40 {
		t.Errorf("expected 120x40, got %dx%d", v.Width(), v.Height())
	}

	v.Resize(-1, -5)
	if v.Width() != 0 || v.Height() != 0 {
		t.Errorf("negative size should clamp to 0, got %dx%d", v.Width(), v.Height())
	}
}

func TestViewportIsLineVisible(t *testing.T) {
	v := NewViewport(80, 24)

	if !v.IsLineVisible(0) || !v.IsLineVisible(23) {
		t.Error("lines 0 and 23 should be visible")
	}
	if v.IsLineVisible(24) {
		t.Error("line 24 should not be visible")
	}

	v.ScrollTo(10)
	if v.IsLineVisible(9) {
		t.Error("line 9 should not be visible after scroll")
	}
	if got := v.LineToScreenRow(12); got != 2 {
		t.Errorf("expected row 2, got %d", got)
	}
	if got := v.LineToScreenRow(5); got != -1 {
		t.Errorf("expected -1 for hidden line, got %d", got)
	}
}

func TestViewportScrollToReveal(t *testing.T) {
	tests := []struct {
		name     string
		top      int
		line     int
		scrolled bool
		wantTop  int
	}{
		{"visible", 0, 3, false, 0},
		{"last row", 0, 4, false, 0},
		{"below", 0, 5, true, 1},
		{"far below", 0, 12, true, 8},
		{"above", 10, 7, true, 7},
		{"negative", 3, -1, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(20, 5)
			v.ScrollTo(tt.top)

			if got := v.ScrollToReveal(tt.line); got != tt.scrolled {
				t.Errorf("expected scrolled=%v, got %v", tt.scrolled, got)
			}
			if v.TopLine() != tt.wantTop {
				t.Errorf("expected top %d, got %d", tt.wantTop, v.TopLine())
			}
		})
	}
}

func TestViewportScrollToRevealDisabled(t *testing.T) {
	v := NewViewport(20, 5)
	v.SetFollow(false)

	if v.ScrollToReveal(50) {
		t.Error("scroll-follow disabled should never scroll")
	}
	if v.TopLine() != 0 {
		t.Errorf("expected top 0, got %d", v.TopLine())
	}
}

func TestFrameGeometry(t *testing.T) {
	g := FrameGeometry(80, 24)

	if g.TextWidth() != 76 || g.TextHeight() != 21 {
		t.Errorf("expected 76x21 text region, got %dx%d", g.TextWidth(), g.TextHeight())
	}
	if g.Border != core.NewScreenRect(1, 0, 24, 80) {
		t.Errorf("unexpected border %+v", g.Border)
	}
	if g.Border.Inset(1, 2, 1, 2) != g.Text {
		t.Errorf("text region should sit inside the border with one blank column per side: %+v vs %+v", g.Text, g.Border)
	}
	if !g.HasBorder() {
		t.Error("80x24 should have a border")
	}

	pos := g.ToScreen(0, 0)
	if pos.Row != 2 || pos.Col != 2 {
		t.Errorf("expected origin (2,2), got (%d,%d)", pos.Row, pos.Col)
	}
}

func TestFrameGeometryTiny(t *testing.T) {
	tests := []struct {
		cols, rows int
	}{
		{0, 0},
		{3, 2},
		{4, 3},
	}

	for _, tt := range tests {
		g := FrameGeometry(tt.cols, tt.rows)
		if g.TextWidth() != 0 || g.TextHeight() != 0 {
			t.Errorf("%dx%d: expected empty text region, got %dx%d", tt.cols, tt.rows, g.TextWidth(), g.TextHeight())
		}
	}

	if FrameGeometry(1, 5).HasBorder() {
		t.Error("a one-column terminal cannot hold a border")
	}
	if FrameGeometry(10, 2).HasBorder() {
		t.Error("a two-row terminal cannot hold a border")
	}
}
