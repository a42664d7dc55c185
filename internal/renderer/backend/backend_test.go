package backend

import (
	"testing"

	"github.com/jstene/edit/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := core.NewStyledCell('X', core.DefaultStyle().WithForeground(core.ColorRed))
	b.SetCell(10, 5, cell)

	got := b.GetCell(10, 5)
	if !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	empty := b.GetCell(-1, 0)
	if !empty.Equals(core.EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendFill(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := core.NewCell('.')
	rect := core.NewScreenRect(5, 10, 10, 20)
	b.Fill(rect, cell)

	if !b.GetCell(15, 7).Equals(cell) {
		t.Error("cell inside rect should be filled")
	}
	if b.GetCell(0, 0).Equals(cell) {
		t.Error("cell outside rect should not be filled")
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.SetCell(10, 10, core.NewCell('X'))
	b.SetCell(20, 20, core.NewCell('Y'))

	b.Clear()

	if !b.GetCell(10, 10).Equals(core.EmptyCell()) {
		t.Error("clear should reset all cells")
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)

	b.ShowCursor(4, 3)
	x, y, visible := b.CursorPosition()
	if x != 4 || y != 3 || !visible {
		t.Errorf("expected visible cursor at (4,3), got (%d,%d) visible=%v", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(80, 24)

	b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'a'})
	b.PostEvent(Event{Type: EventInterrupt})

	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Rune != 'a' {
		t.Errorf("expected key 'a', got %+v", ev)
	}
	ev = b.PollEvent()
	if ev.Type != EventInterrupt {
		t.Errorf("expected interrupt, got %+v", ev)
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.SetCell(1, 1, core.NewCell('k'))

	b.Resize(40, 10)

	w, h := b.Size()
	if w != 40 || h != 10 {
		t.Errorf("expected (40, 10), got (%d, %d)", w, h)
	}
	if b.GetCell(1, 1).Rune != 'k' {
		t.Error("resize should preserve content")
	}

	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 40 || ev.Height != 10 {
		t.Errorf("expected resize event, got %+v", ev)
	}
}

func TestNullBackendCounters(t *testing.T) {
	b := NewNullBackend(10, 5)
	b.Show()
	b.Show()
	b.Beep()

	if b.ShowCount() != 2 {
		t.Errorf("expected 2 shows, got %d", b.ShowCount())
	}
	if b.BeepCount() != 1 {
		t.Errorf("expected 1 beep, got %d", b.BeepCount())
	}

	b.SetColors(0)
	if b.Colors() != 0 {
		t.Errorf("expected 0 colors, got %d", b.Colors())
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{KeyEscape, "Escape"},
		{KeyUp, "Up"},
		{KeyCtrlC, "Ctrl+C"},
		{KeyNone, "None"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.expected {
			t.Errorf("Key(%d).String() = %q, expected %q", tt.key, got, tt.expected)
		}
	}
}

func TestModMaskHas(t *testing.T) {
	m := ModAlt | ModCtrl
	if !m.Has(ModAlt) || !m.Has(ModCtrl) {
		t.Error("expected alt and ctrl")
	}
	if m.Has(ModShift) {
		t.Error("unexpected shift")
	}
}
