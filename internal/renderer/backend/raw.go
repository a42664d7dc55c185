package backend

import "time"

// byteEvent maps a single raw input byte to an event.
func byteEvent(b byte, when time.Time) Event {
	ev := Event{Type: EventKey, Rune: rune(b), Raw: true, When: when}

	switch b {
	case 0x1b:
		ev.Key = KeyEscape
	case 0x7f, 0x08:
		ev.Key = KeyBackspace
	case '\r', '\n':
		ev.Key = KeyEnter
	case '\t':
		ev.Key = KeyTab
	case 0x03:
		ev.Key = KeyCtrlC
	default:
		if b < 0x20 {
			ev.Key = KeyNone
			ev.Mod = ModCtrl
		} else {
			ev.Key = KeyRune
		}
	}
	return ev
}
