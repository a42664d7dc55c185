// Package backend provides terminal backend abstraction for the renderer.
package backend

import (
	"time"

	"github.com/jstene/edit/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventInterrupt wakes the event loop without carrying input.
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask
	// Raw reports that Rune holds a single undecoded input byte.
	Raw bool

	// Resize event fields
	Width, Height int

	// When is the time the event was read from the terminal.
	When time.Time
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the editor distinguishes.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "Rune"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyCtrlC:
		return "Ctrl+C"
	default:
		return "None"
	}
}

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Backend defines the interface for terminal/display backends.
// Implementations handle actual drawing to the terminal or other display surfaces.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	// It is re-queried every frame, so it must reflect live resizes.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// Fill fills a rectangular region with the given cell.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show presents the frame drawn since the last Show.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	// It is safe to call from another goroutine.
	PostEvent(event Event)

	// Colors returns the number of colors the terminal supports.
	// Zero means monochrome.
	Colors() int

	// Beep produces an audible or visual bell.
	Beep()
}

// NullBackend is an in-memory backend for testing.
type NullBackend struct {
	screen        *ScreenBuffer
	cursorX       int
	cursorY       int
	cursorVisible bool
	colors        int
	shows         int
	beeps         int
	shutdowns     int
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		screen: NewScreenBuffer(width, height),
		colors: 8,
		events: make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() { b.shutdowns++ }

func (b *NullBackend) Size() (int, int) {
	return b.screen.Size()
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	b.screen.SetCell(x, y, cell)
}

// GetCell returns the cell at the given position.
func (b *NullBackend) GetCell(x, y int) core.Cell {
	return b.screen.GetCell(x, y)
}

func (b *NullBackend) Fill(rect core.ScreenRect, cell core.Cell) {
	b.screen.Fill(rect, cell)
}

func (b *NullBackend) Clear() {
	b.screen.Clear()
}

func (b *NullBackend) Show() {
	b.shows++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

func (b *NullBackend) Colors() int { return b.colors }

func (b *NullBackend) Beep() { b.beeps++ }

// SetColors sets the color count reported by Colors.
func (b *NullBackend) SetColors(n int) {
	b.colors = n
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Row returns the runes of row y as a string for testing.
func (b *NullBackend) Row(y int) string {
	return b.screen.Row(y)
}

// ShowCount returns how many frames were presented.
func (b *NullBackend) ShowCount() int {
	return b.shows
}

// BeepCount returns how many times Beep was called.
func (b *NullBackend) BeepCount() int {
	return b.beeps
}

// ShutdownCount returns how many times Shutdown was called.
func (b *NullBackend) ShutdownCount() int {
	return b.shutdowns
}

// Resize simulates a terminal resize for testing.
func (b *NullBackend) Resize(width, height int) {
	b.screen.Resize(width, height)
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height, When: time.Now()})
}
