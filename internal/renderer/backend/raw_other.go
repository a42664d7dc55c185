//go:build !unix

package backend

import (
	"errors"
	"time"

	"github.com/jstene/edit/internal/renderer/core"
)

// ErrNotTerminal is returned by Raw.Init on platforms without raw mode support.
var ErrNotTerminal = errors.New("raw terminal backend is not supported on this platform")

// Raw is unavailable outside unix; Init always fails.
type Raw struct{}

// NewRaw creates a raw backend.
func NewRaw() *Raw { return &Raw{} }

func (r *Raw) Init() error {
	return ErrNotTerminal
}

func (r *Raw) Shutdown() {}

func (r *Raw) Size() (int, int) {
	return 80, 24
}

func (r *Raw) SetCell(x, y int, cell core.Cell) {}

func (r *Raw) Fill(rect core.ScreenRect, c core.Cell) {}

func (r *Raw) Clear() {}

func (r *Raw) Show() {}

func (r *Raw) ShowCursor(x, y int) {}

func (r *Raw) HideCursor() {}

func (r *Raw) PollEvent() Event {
	return Event{Type: EventInterrupt, When: time.Now()}
}

func (r *Raw) PostEvent(event Event) {}

func (r *Raw) Colors() int {
	return 0
}

func (r *Raw) Beep() {}
