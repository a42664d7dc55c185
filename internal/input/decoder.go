package input

import (
	"time"
	"unicode/utf8"

	"github.com/jstene/edit/internal/renderer/backend"
)

// State is the decoder state.
type State uint8

const (
	// StateIdle waits for a key.
	StateIdle State = iota
	// StateSawEscape has read Escape and waits for a command key or '['.
	StateSawEscape
	// StateArrowPrefix has read Escape '[' and waits for a direction byte.
	StateArrowPrefix
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSawEscape:
		return "sawEscape"
	case StateArrowPrefix:
		return "arrowPrefix"
	default:
		return "unknown"
	}
}

// Config configures the decoder.
type Config struct {
	// EscapeTimeout is how long an Escape prefix stays pending.
	// A key arriving later is decoded as if Escape had not been pressed.
	// Zero waits indefinitely.
	EscapeTimeout time.Duration
}

// Decoder turns key events into commands.
//
// Escape-prefixed input is a three-state machine:
//
//	Idle --Esc--> SawEscape --'['--> ArrowPrefix --A/B/C/D--> move
//	              SawEscape --s/e/x--> save / save+exit / exit
//
// Any other key after Escape or Escape '[' is ignored and returns the
// decoder to Idle. Ctrl-C is honored in every state.
type Decoder struct {
	config Config
	state  State
	escAt  time.Time
}

// NewDecoder creates a decoder.
func NewDecoder(config Config) *Decoder {
	return &Decoder{config: config}
}

// State returns the current state.
func (d *Decoder) State() State {
	return d.state
}

// Reset drops any pending Escape prefix.
func (d *Decoder) Reset() {
	d.state = StateIdle
	d.escAt = time.Time{}
}

// Decode consumes one event and returns the command it completes, or a
// KindNone command when the event is pending or ignored.
func (d *Decoder) Decode(ev backend.Event) Command {
	if ev.Type != backend.EventKey {
		return none()
	}
	if ev.Key == backend.KeyCtrlC {
		d.Reset()
		return Command{Kind: KindInterrupt}
	}

	if d.state != StateIdle && d.expired(ev.When) {
		d.Reset()
	}

	switch d.state {
	case StateSawEscape:
		d.state = StateIdle
		if ev.Key != backend.KeyRune {
			return none()
		}
		if ev.Rune == '[' {
			d.state = StateArrowPrefix
			return none()
		}
		return escapeCommand(ev.Rune)

	case StateArrowPrefix:
		d.Reset()
		if ev.Key != backend.KeyRune {
			return none()
		}
		return arrowCommand(ev.Rune)
	}

	return d.decodeIdle(ev)
}

// expired reports whether a pending Escape has outlived the timeout.
func (d *Decoder) expired(when time.Time) bool {
	if d.config.EscapeTimeout <= 0 || when.IsZero() || d.escAt.IsZero() {
		return false
	}
	return when.Sub(d.escAt) > d.config.EscapeTimeout
}

func (d *Decoder) decodeIdle(ev backend.Event) Command {
	switch ev.Key {
	case backend.KeyEscape:
		d.state = StateSawEscape
		d.escAt = ev.When
		return none()
	case backend.KeyEnter:
		return Command{Kind: KindNewline}
	case backend.KeyBackspace, backend.KeyDelete:
		return Command{Kind: KindBackspace}
	case backend.KeyTab:
		return insert('\t')
	case backend.KeyUp:
		return move(DirUp)
	case backend.KeyDown:
		return move(DirDown)
	case backend.KeyLeft:
		return move(DirLeft)
	case backend.KeyRight:
		return move(DirRight)
	case backend.KeyHome:
		return move(DirLineStart)
	case backend.KeyEnd:
		return move(DirLineEnd)
	case backend.KeyRune:
		// Terminals that fold Escape+key into a single Alt key.
		if ev.Mod.Has(backend.ModAlt) {
			return escapeCommand(ev.Rune)
		}
		return insertRune(ev)
	}
	return none()
}

// escapeCommand maps the key after Escape to a command.
func escapeCommand(r rune) Command {
	switch r {
	case 's':
		return Command{Kind: KindSave}
	case 'e':
		return Command{Kind: KindSaveExit}
	case 'x':
		return Command{Kind: KindExit}
	}
	return none()
}

// arrowCommand maps the byte after Escape '[' to a move.
func arrowCommand(r rune) Command {
	switch r {
	case 'A':
		return move(DirUp)
	case 'B':
		return move(DirDown)
	case 'C':
		return move(DirRight)
	case 'D':
		return move(DirLeft)
	case 'H':
		return move(DirLineStart)
	case 'F':
		return move(DirLineEnd)
	}
	return none()
}

// insertRune returns the bytes to insert for a printable key. Raw events
// carry one input byte; decoded runes are inserted as UTF-8.
func insertRune(ev backend.Event) Command {
	r := ev.Rune
	if ev.Raw {
		if r < 0x20 || r == 0x7f || r > 0xff {
			return none()
		}
		return insert(byte(r))
	}
	if r < 0x20 || r == 0x7f || !utf8.ValidRune(r) {
		return none()
	}
	return insert(utf8.AppendRune(nil, r)...)
}
