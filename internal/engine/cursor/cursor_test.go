package cursor

import (
	"testing"

	"github.com/jstene/edit/internal/engine/buffer"
)

func newText(s string) *buffer.Buffer {
	return buffer.NewFromBytes([]byte(s), buffer.WithCapacity(64))
}

func TestNewCursor(t *testing.T) {
	c := NewCursor(10)
	if c.Offset() != 10 {
		t.Errorf("expected offset 10, got %d", c.Offset())
	}
}

func TestNewCursorNegative(t *testing.T) {
	c := NewCursor(-5)
	if c.Offset() != 0 {
		t.Errorf("negative offset should clamp to 0, got %d", c.Offset())
	}
}

func TestCursorMoveBy(t *testing.T) {
	c := NewCursor(10)

	if c2 := c.MoveBy(5); c2.Offset() != 15 {
		t.Errorf("expected offset 15, got %d", c2.Offset())
	}
	if c3 := c.MoveBy(-20); c3.Offset() != 0 {
		t.Errorf("expected offset 0 (clamped), got %d", c3.Offset())
	}
	if c.Offset() != 10 {
		t.Error("original cursor should be unchanged")
	}
}

func TestCursorClamp(t *testing.T) {
	if c := NewCursor(50).Clamp(10); c.Offset() != 10 {
		t.Errorf("expected offset 10, got %d", c.Offset())
	}
	if c := NewCursor(5).Clamp(10); c.Offset() != 5 {
		t.Errorf("expected offset 5, got %d", c.Offset())
	}
}

func TestLeftAtZero(t *testing.T) {
	c := NewCursor(0).Left()
	if c.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", c.Offset())
	}
}

func TestLeft(t *testing.T) {
	c := NewCursor(3).Left()
	if c.Offset() != 2 {
		t.Errorf("expected offset 2, got %d", c.Offset())
	}
}

func TestRight(t *testing.T) {
	text := newText("abc")

	c := NewCursor(0)
	for i := 1; i <= 3; i++ {
		c = c.Right(text)
		if c.Offset() != i {
			t.Fatalf("step %d: expected offset %d, got %d", i, i, c.Offset())
		}
	}

	c = c.Right(text)
	if c.Offset() != 3 {
		t.Errorf("right at end should stay at 3, got %d", c.Offset())
	}
}

func TestRightEmpty(t *testing.T) {
	c := NewCursor(0).Right(newText(""))
	if c.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", c.Offset())
	}
}

func TestUpColumnReset(t *testing.T) {
	text := newText("abc\ndef\nghi")

	tests := []struct {
		name     string
		from     int
		expected int
	}{
		{"inside last line goes to its start", 9, 8},
		{"at line start goes to previous line start", 8, 4},
		{"inside middle line goes to its start", 6, 4},
		{"middle line start goes to first line", 4, 0},
		{"first line goes to zero", 2, 0},
		{"zero stays", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.from).Up(text, ColumnReset)
			if c.Offset() != tt.expected {
				t.Errorf("expected offset %d, got %d", tt.expected, c.Offset())
			}
		})
	}
}

func TestUpColumnPreserve(t *testing.T) {
	text := newText("abcdef\nxy\nlonger line")

	tests := []struct {
		name     string
		from     int
		expected int
	}{
		{"same column", 11, 8},
		{"clamped to short line", 15, 9},
		{"long to long", 8, 1},
		{"first line", 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.from).Up(text, ColumnPreserve)
			if c.Offset() != tt.expected {
				t.Errorf("expected offset %d, got %d", tt.expected, c.Offset())
			}
		})
	}
}

func TestUpAcrossEmptyLine(t *testing.T) {
	text := newText("ab\n\ncd")

	tests := []struct {
		name     string
		from     int
		mode     ColumnMode
		expected int
	}{
		{"preserve lands on empty line", 5, ColumnPreserve, 3},
		{"preserve leaves empty line", 3, ColumnPreserve, 0},
		{"reset from line start", 4, ColumnReset, 3},
		{"reset from empty line", 3, ColumnReset, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.from).Up(text, tt.mode)
			if c.Offset() != tt.expected {
				t.Errorf("expected offset %d, got %d", tt.expected, c.Offset())
			}
		})
	}
}

func TestDownColumnReset(t *testing.T) {
	text := newText("abc\ndef\nghi")

	tests := []struct {
		from     int
		expected int
	}{
		{0, 4},
		{2, 4},
		{3, 4},
		{5, 8},
		{9, 11},
		{11, 11},
	}

	for _, tt := range tests {
		c := NewCursor(tt.from).Down(text, ColumnReset)
		if c.Offset() != tt.expected {
			t.Errorf("Down(%d) = %d, expected %d", tt.from, c.Offset(), tt.expected)
		}
	}
}

func TestDownColumnPreserve(t *testing.T) {
	text := newText("abcdef\nxy\nlonger line")

	tests := []struct {
		from     int
		expected int
	}{
		{1, 8},
		{5, 9},
		{8, 11},
		{12, 21},
	}

	for _, tt := range tests {
		c := NewCursor(tt.from).Down(text, ColumnPreserve)
		if c.Offset() != tt.expected {
			t.Errorf("Down(%d) = %d, expected %d", tt.from, c.Offset(), tt.expected)
		}
	}
}

func TestDownStopsAtEndOfContent(t *testing.T) {
	text := newText("a\nb")

	c := NewCursor(0).Down(text, ColumnReset).Down(text, ColumnReset)
	if c.Offset() != 3 {
		t.Errorf("expected offset 3 (end of content), got %d", c.Offset())
	}
}

func TestHomeEnd(t *testing.T) {
	text := newText("abc\ndef")

	if c := NewCursor(5).Home(text); c.Offset() != 4 {
		t.Errorf("Home: expected 4, got %d", c.Offset())
	}
	if c := NewCursor(1).End(text); c.Offset() != 3 {
		t.Errorf("End: expected 3, got %d", c.Offset())
	}
	if c := NewCursor(5).End(text); c.Offset() != 7 {
		t.Errorf("End: expected 7, got %d", c.Offset())
	}
}

func TestColumnModeString(t *testing.T) {
	if ColumnPreserve.String() != "preserve" {
		t.Errorf("unexpected %q", ColumnPreserve.String())
	}
	if ColumnReset.String() != "reset" {
		t.Errorf("unexpected %q", ColumnReset.String())
	}
}
