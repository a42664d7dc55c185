//go:build unix

package backend

import (
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/jstene/edit/internal/renderer/core"
)

// ErrNotTerminal is returned by Raw.Init when stdin is not a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// pollInterval bounds how long PollEvent waits on stdin before checking
// for posted events.
const pollInterval = 100 // milliseconds

// Raw implements Backend directly on the terminal device using raw mode
// and ANSI output. Every input byte becomes one event with Raw set, so
// escape sequences reach the caller unparsed.
type Raw struct {
	in, out     *os.File
	inFd, outFd int
	oldState    *term.State

	mu            sync.Mutex
	back          *ScreenBuffer
	frame         *frameWriter
	cursorX       int
	cursorY       int
	cursorVisible bool
	colors        int

	events  chan Event
	pending []byte
	readBuf []byte

	resizeStop chan struct{}
	resizeDone chan struct{}
}

// NewRaw creates a raw backend on stdin/stdout.
func NewRaw() *Raw {
	return &Raw{
		in:      os.Stdin,
		out:     os.Stdout,
		inFd:    int(os.Stdin.Fd()),
		outFd:   int(os.Stdout.Fd()),
		colors:  DetectColors(os.Getenv),
		events:  make(chan Event, 64),
		readBuf: make([]byte, 256),
	}
}

func (r *Raw) Init() error {
	if !term.IsTerminal(r.inFd) {
		return ErrNotTerminal
	}

	old, err := term.MakeRaw(r.inFd)
	if err != nil {
		return err
	}
	r.oldState = old

	w, h := r.Size()
	r.back = NewScreenBuffer(w, h)
	r.frame = newFrameWriter(r.out)

	if err := r.frame.write(append(append([]byte{}, csiAltScreenEnter...), csiAutoWrapOff...)); err != nil {
		_ = term.Restore(r.inFd, r.oldState)
		r.oldState = nil
		return err
	}

	r.watchResize()
	return nil
}

// watchResize posts a resize event for every SIGWINCH.
func (r *Raw) watchResize() {
	r.resizeStop = make(chan struct{})
	r.resizeDone = make(chan struct{})

	go func() {
		defer close(r.resizeDone)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGWINCH)
		defer signal.Stop(sigCh)

		for {
			select {
			case <-r.resizeStop:
				return
			case <-sigCh:
				w, h := r.Size()
				r.PostEvent(Event{Type: EventResize, Width: w, Height: h, When: time.Now()})
			}
		}
	}()
}

func (r *Raw) Shutdown() {
	if r.resizeStop != nil {
		close(r.resizeStop)
		<-r.resizeDone
		r.resizeStop = nil
	}
	if r.frame != nil {
		seq := append(append(append(append([]byte{}, csiSGR0...), csiCursorShow...), csiAutoWrapOn...), csiAltScreenExit...)
		_ = r.frame.write(seq) // best-effort; the terminal may be gone
	}
	if r.oldState != nil {
		_ = term.Restore(r.inFd, r.oldState)
		r.oldState = nil
	}
}

// Size returns the terminal size, falling back to 80x24.
func (r *Raw) Size() (int, int) {
	w, h, err := term.GetSize(r.outFd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// sync resizes the back buffer to the live terminal size.
func (r *Raw) sync() {
	w, h := r.Size()
	if bw, bh := r.back.Size(); bw != w || bh != h {
		r.back.Resize(w, h)
		r.frame.invalidate()
	}
}

func (r *Raw) SetCell(x, y int, cell core.Cell) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.back.SetCell(x, y, cell)
}

func (r *Raw) Fill(rect core.ScreenRect, cell core.Cell) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.back.Fill(rect, cell)
}

func (r *Raw) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sync()
	r.back.Clear()
}

func (r *Raw) Show() {
	r.mu.Lock()
	defer r.mu.Unlock()

	_ = r.frame.flush(r.back, r.cursorX, r.cursorY, r.cursorVisible) // best-effort; next frame repaints
}

func (r *Raw) ShowCursor(x, y int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cursorX, r.cursorY = x, y
	r.cursorVisible = true
}

func (r *Raw) HideCursor() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cursorVisible = false
}

// PollEvent returns posted events first, then one event per input byte.
func (r *Raw) PollEvent() Event {
	for {
		select {
		case ev := <-r.events:
			return ev
		default:
		}

		if len(r.pending) > 0 {
			b := r.pending[0]
			r.pending = r.pending[1:]
			return byteEvent(b, time.Now())
		}

		fds := []unix.PollFd{{Fd: int32(r.inFd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, pollInterval)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return Event{Type: EventInterrupt, When: time.Now()}
		}
		if n == 0 {
			continue
		}

		rn, err := unix.Read(r.inFd, r.readBuf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return Event{Type: EventInterrupt, When: time.Now()}
		}
		if rn == 0 {
			// EOF on the terminal.
			return Event{Type: EventInterrupt, When: time.Now()}
		}
		r.pending = append(r.pending, r.readBuf[:rn]...)
	}
}

func (r *Raw) PostEvent(event Event) {
	select {
	case r.events <- event:
	default:
	}
}

func (r *Raw) Colors() int { return r.colors }

func (r *Raw) Beep() {
	_ = r.frame.write([]byte{0x07})
}
