package core

import "testing"

func TestColorDefault(t *testing.T) {
	if !ColorDefault.IsDefault() {
		t.Error("ColorDefault should be default")
	}
	if ColorBlue.IsDefault() {
		t.Error("ColorBlue should not be default")
	}
	if ColorDefault.String() != "default" {
		t.Errorf("expected 'default', got %q", ColorDefault.String())
	}
	if ColorRed.String() != "idx(1)" {
		t.Errorf("expected 'idx(1)', got %q", ColorRed.String())
	}
}

func TestAttributeHas(t *testing.T) {
	a := AttrBold | AttrUnderline

	if !a.Has(AttrBold) || !a.Has(AttrUnderline) {
		t.Error("expected bold and underline")
	}
	if a.Has(AttrReverse) {
		t.Error("unexpected reverse")
	}
}

func TestStyleBuilders(t *testing.T) {
	s := DefaultStyle().WithForeground(ColorWhite).WithBackground(ColorBlue).Bold().Underline().Reverse()

	if s.Foreground != ColorWhite || s.Background != ColorBlue {
		t.Errorf("unexpected colors: %v on %v", s.Foreground, s.Background)
	}
	for _, attr := range []Attribute{AttrBold, AttrUnderline, AttrReverse} {
		if !s.Attributes.Has(attr) {
			t.Errorf("expected attribute %d", attr)
		}
	}
}

func TestEmptyCell(t *testing.T) {
	c := EmptyCell()
	if c.Rune != ' ' || c.Width != 1 {
		t.Errorf("unexpected empty cell: %+v", c)
	}
	if c.Style != DefaultStyle() {
		t.Error("empty cell should have default style")
	}
}

func TestCellEquals(t *testing.T) {
	a := NewStyledCell('x', DefaultStyle().Bold())
	b := NewStyledCell('x', DefaultStyle().Bold())
	c := NewCell('x')

	if !a.Equals(b) {
		t.Error("identical cells should be equal")
	}
	if a.Equals(c) {
		t.Error("cells with different styles should differ")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r        rune
		expected int
	}{
		{'a', 1},
		{'\t', 0},
		{0x7f, 0},
		{'世', 2},
	}

	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.expected {
			t.Errorf("RuneWidth(%q) = %d, expected %d", tt.r, got, tt.expected)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("hello", 3); got != "hel" {
		t.Errorf("expected 'hel', got %q", got)
	}
	if got := TruncateString("hello", 0); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	if got := StringWidth("hello"); got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
}

func TestScreenRect(t *testing.T) {
	r := NewScreenRect(1, 0, 12, 20)

	if r.Width() != 20 || r.Height() != 11 {
		t.Errorf("unexpected size %dx%d", r.Width(), r.Height())
	}

	in := r.Inset(1, 2, 1, 2)
	if in != NewScreenRect(2, 2, 11, 18) {
		t.Errorf("unexpected inset %+v", in)
	}

	if !NewScreenRect(5, 5, 5, 10).IsEmpty() {
		t.Error("zero-height rect should be empty")
	}
	if got := NewScreenRect(2, 2, 1, 0); !got.IsEmpty() || got.Width() != 0 || got.Height() != 0 {
		t.Errorf("inverted rect should be empty with zero size, got %dx%d", got.Width(), got.Height())
	}
}

func TestScreenPosAdd(t *testing.T) {
	p := NewScreenPos(0, 0).Add(2, 2)
	if p.Row != 2 || p.Col != 2 {
		t.Errorf("expected (2,2), got (%d,%d)", p.Row, p.Col)
	}
}
