package backend

import (
	"testing"
	"time"
)

func TestByteEvent(t *testing.T) {
	tests := []struct {
		b   byte
		key Key
		mod ModMask
	}{
		{0x1b, KeyEscape, ModNone},
		{0x7f, KeyBackspace, ModNone},
		{0x08, KeyBackspace, ModNone},
		{'\r', KeyEnter, ModNone},
		{'\n', KeyEnter, ModNone},
		{'\t', KeyTab, ModNone},
		{0x03, KeyCtrlC, ModNone},
		{0x01, KeyNone, ModCtrl},
		{'a', KeyRune, ModNone},
		{'[', KeyRune, ModNone},
		{0xc3, KeyRune, ModNone},
	}

	when := time.Unix(100, 0)
	for _, tt := range tests {
		ev := byteEvent(tt.b, when)
		if ev.Type != EventKey || !ev.Raw {
			t.Errorf("byte 0x%02x: expected raw key event, got %+v", tt.b, ev)
		}
		if ev.Key != tt.key || ev.Mod != tt.mod {
			t.Errorf("byte 0x%02x: expected %v/%d, got %v/%d", tt.b, tt.key, tt.mod, ev.Key, ev.Mod)
		}
		if ev.Rune != rune(tt.b) {
			t.Errorf("byte 0x%02x: rune should carry the byte, got %d", tt.b, ev.Rune)
		}
		if !ev.When.Equal(when) {
			t.Errorf("byte 0x%02x: unexpected timestamp %v", tt.b, ev.When)
		}
	}
}
