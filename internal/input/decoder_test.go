package input

import (
	"bytes"
	"testing"
	"time"

	"github.com/jstene/edit/internal/renderer/backend"
)

var (
	t0         = time.Unix(1000, 0)
	testConfig = Config{EscapeTimeout: time.Second}
)

// rawKeys builds raw byte events a millisecond apart.
func rawKeys(s string) []backend.Event {
	events := make([]backend.Event, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		ev := backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: rune(b), Raw: true, When: t0.Add(time.Duration(i) * time.Millisecond)}
		switch b {
		case 0x1b:
			ev.Key = backend.KeyEscape
		case 0x7f:
			ev.Key = backend.KeyBackspace
		case '\r':
			ev.Key = backend.KeyEnter
		case '\t':
			ev.Key = backend.KeyTab
		case 0x03:
			ev.Key = backend.KeyCtrlC
		}
		events = append(events, ev)
	}
	return events
}

func keyEvent(k backend.Key) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: k, When: t0}
}

func runeEvent(r rune, mod backend.ModMask) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r, Mod: mod, When: t0}
}

// decodeAll feeds events and returns the non-empty commands.
func decodeAll(d *Decoder, events []backend.Event) []Command {
	var out []Command
	for _, ev := range events {
		if cmd := d.Decode(ev); !cmd.IsNone() {
			out = append(out, cmd)
		}
	}
	return out
}

func TestDecoderEscapeSequences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"save", "\x1bs", []string{"editor.save"}},
		{"save and exit", "\x1be", []string{"editor.saveExit"}},
		{"exit", "\x1bx", []string{"editor.exit"}},
		{"up", "\x1b[A", []string{"cursor.up"}},
		{"down", "\x1b[B", []string{"cursor.down"}},
		{"right", "\x1b[C", []string{"cursor.right"}},
		{"left", "\x1b[D", []string{"cursor.left"}},
		{"home", "\x1b[H", []string{"cursor.lineStart"}},
		{"end", "\x1b[F", []string{"cursor.lineEnd"}},
		{"unknown after escape", "\x1bq", nil},
		{"unknown arrow", "\x1b[Z", nil},
		{"uppercase is not a command", "\x1bS", nil},
		{"escape escape", "\x1b\x1bs", []string{"editor.insert"}},
		{"text after ignored alt code", "\x1bqa", []string{"editor.insert"}},
		{"ctrl-c mid sequence", "\x1b[\x03", []string{"editor.interrupt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(testConfig)
			cmds := decodeAll(d, rawKeys(tt.input))

			if len(cmds) != len(tt.expected) {
				t.Fatalf("expected %v, got %d commands", tt.expected, len(cmds))
			}
			for i, cmd := range cmds {
				if cmd.Name() != tt.expected[i] {
					t.Errorf("command %d: expected %q, got %q", i, tt.expected[i], cmd.Name())
				}
			}
			if d.State() != StateIdle {
				t.Errorf("expected idle after sequence, got %v", d.State())
			}
		})
	}
}

func TestDecoderStates(t *testing.T) {
	d := NewDecoder(testConfig)
	events := rawKeys("\x1b[A")

	d.Decode(events[0])
	if d.State() != StateSawEscape {
		t.Errorf("expected sawEscape, got %v", d.State())
	}
	d.Decode(events[1])
	if d.State() != StateArrowPrefix {
		t.Errorf("expected arrowPrefix, got %v", d.State())
	}
	d.Decode(events[2])
	if d.State() != StateIdle {
		t.Errorf("expected idle, got %v", d.State())
	}
}

func TestDecoderPlainInput(t *testing.T) {
	d := NewDecoder(testConfig)

	cmds := decodeAll(d, rawKeys("hi\r\t\x7f\x01"))
	expected := []Kind{KindInsert, KindInsert, KindNewline, KindInsert, KindBackspace}

	if len(cmds) != len(expected) {
		t.Fatalf("expected %d commands, got %d", len(expected), len(cmds))
	}
	for i, cmd := range cmds {
		if cmd.Kind != expected[i] {
			t.Errorf("command %d: expected kind %d, got %d", i, expected[i], cmd.Kind)
		}
	}
	if !bytes.Equal(cmds[0].Bytes, []byte("h")) || !bytes.Equal(cmds[3].Bytes, []byte("\t")) {
		t.Errorf("unexpected insert bytes %q / %q", cmds[0].Bytes, cmds[3].Bytes)
	}
}

func TestDecoderRawHighBytes(t *testing.T) {
	d := NewDecoder(testConfig)

	cmds := decodeAll(d, rawKeys("\xc3\xa9"))
	if len(cmds) != 2 {
		t.Fatalf("expected 2 byte inserts, got %d", len(cmds))
	}
	if cmds[0].Bytes[0] != 0xc3 || cmds[1].Bytes[0] != 0xa9 {
		t.Errorf("raw bytes should pass through, got %x %x", cmds[0].Bytes, cmds[1].Bytes)
	}
}

func TestDecoderDecodedKeys(t *testing.T) {
	tests := []struct {
		name     string
		event    backend.Event
		expected string
	}{
		{"up", keyEvent(backend.KeyUp), "cursor.up"},
		{"down", keyEvent(backend.KeyDown), "cursor.down"},
		{"left", keyEvent(backend.KeyLeft), "cursor.left"},
		{"right", keyEvent(backend.KeyRight), "cursor.right"},
		{"home", keyEvent(backend.KeyHome), "cursor.lineStart"},
		{"end", keyEvent(backend.KeyEnd), "cursor.lineEnd"},
		{"delete", keyEvent(backend.KeyDelete), "editor.backspace"},
		{"backspace", keyEvent(backend.KeyBackspace), "editor.backspace"},
		{"enter", keyEvent(backend.KeyEnter), "editor.newline"},
		{"ctrl-c", keyEvent(backend.KeyCtrlC), "editor.interrupt"},
		{"alt-s", runeEvent('s', backend.ModAlt), "editor.save"},
		{"alt-e", runeEvent('e', backend.ModAlt), "editor.saveExit"},
		{"alt-x", runeEvent('x', backend.ModAlt), "editor.exit"},
		{"alt-q", runeEvent('q', backend.ModAlt), "none"},
		{"rune", runeEvent('z', backend.ModNone), "editor.insert"},
		{"none key", keyEvent(backend.KeyNone), "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(testConfig)
			if got := d.Decode(tt.event).Name(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDecoderUnicodeRune(t *testing.T) {
	d := NewDecoder(testConfig)

	cmd := d.Decode(runeEvent('é', backend.ModNone))
	if cmd.Kind != KindInsert || string(cmd.Bytes) != "é" {
		t.Errorf("expected UTF-8 insert of é, got %+v", cmd)
	}
}

func TestDecoderEscapeTimeout(t *testing.T) {
	d := NewDecoder(Config{EscapeTimeout: 100 * time.Millisecond})

	d.Decode(backend.Event{Type: backend.EventKey, Key: backend.KeyEscape, Raw: true, Rune: 0x1b, When: t0})

	late := backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Raw: true, Rune: 's', When: t0.Add(time.Second)}
	cmd := d.Decode(late)
	if cmd.Kind != KindInsert || string(cmd.Bytes) != "s" {
		t.Errorf("late key should be plain input, got %q", cmd.Name())
	}
}

func TestDecoderNoTimeout(t *testing.T) {
	d := NewDecoder(Config{})

	d.Decode(backend.Event{Type: backend.EventKey, Key: backend.KeyEscape, Raw: true, Rune: 0x1b, When: t0})

	late := backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Raw: true, Rune: 's', When: t0.Add(time.Hour)}
	if got := d.Decode(late).Name(); got != "editor.save" {
		t.Errorf("zero timeout should wait indefinitely, got %q", got)
	}
}

func TestDecoderIgnoresNonKeyEvents(t *testing.T) {
	d := NewDecoder(testConfig)
	d.Decode(keyEvent(backend.KeyEscape))

	if cmd := d.Decode(backend.Event{Type: backend.EventResize, Width: 10, Height: 5}); !cmd.IsNone() {
		t.Errorf("resize should not produce a command, got %q", cmd.Name())
	}
	if d.State() != StateSawEscape {
		t.Error("resize should not disturb a pending escape")
	}
}

func TestDecoderReset(t *testing.T) {
	d := NewDecoder(testConfig)
	d.Decode(keyEvent(backend.KeyEscape))
	d.Reset()

	if d.State() != StateIdle {
		t.Errorf("expected idle after reset, got %v", d.State())
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateIdle, "idle"},
		{StateSawEscape, "sawEscape"},
		{StateArrowPrefix, "arrowPrefix"},
		{State(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, expected %q", tt.state, got, tt.expected)
		}
	}
}
