package app

import (
	"errors"
	"runtime/debug"
	"time"

	"github.com/jstene/edit/internal/engine"
	"github.com/jstene/edit/internal/input"
	"github.com/jstene/edit/internal/renderer"
	"github.com/jstene/edit/internal/renderer/backend"
)

// quitReason says why the loop ended.
type quitReason uint8

const (
	reasonNone quitReason = iota
	reasonSaveExit
	reasonExit
	reasonInterrupt
)

// String returns a string representation of the reason.
func (r quitReason) String() string {
	switch r {
	case reasonSaveExit:
		return "saveExit"
	case reasonExit:
		return "exit"
	case reasonInterrupt:
		return "interrupt"
	default:
		return "none"
	}
}

// Run initializes b, edits until the user leaves, and restores the
// terminal. It returns nil on a normal exit, an *InitError when the
// terminal cannot be set up, and a *FileError when the save of an
// interrupt shutdown fails.
func (s *Session) Run(b backend.Backend) (err error) {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer s.running.Store(false)

	if err := b.Init(); err != nil {
		s.logger.WithComponent("backend").Error("init: %v", err)
		return &InitError{Component: "backend", Err: err}
	}
	s.attach(b)

	defer func() {
		if r := recover(); r != nil {
			s.restore()
			err = &RecoveredPanicError{Value: r, Stack: string(debug.Stack())}
			s.logger.Error("%v", err)
		}
	}()

	return s.shutdown(s.loop())
}

// attach binds an initialized backend and builds the renderer for it.
func (s *Session) attach(b backend.Backend) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.backend = b
	s.renderer = renderer.New(b, renderer.Options{
		Colors: s.cfg.UI.Colors,
		Menu:   renderer.DefaultMenu(),
	})
}

// Interrupt requests a shutdown that saves the buffer. It is safe to call
// from any goroutine, before or during Run.
func (s *Session) Interrupt() {
	s.interrupted.Store(true)

	s.mu.Lock()
	b := s.backend
	s.mu.Unlock()

	if b != nil {
		b.PostEvent(backend.Event{Type: backend.EventInterrupt, When: time.Now()})
	}
}

func (s *Session) loop() quitReason {
	s.render()
	for {
		if s.interrupted.Load() {
			return reasonInterrupt
		}
		ev := s.backend.PollEvent()
		if reason := s.handleEvent(ev); reason != reasonNone {
			return reason
		}
	}
}

// handleEvent applies one backend event and redraws when it changed
// anything visible.
func (s *Session) handleEvent(ev backend.Event) quitReason {
	switch ev.Type {
	case backend.EventInterrupt:
		return reasonInterrupt
	case backend.EventResize:
		s.render()
	case backend.EventKey:
		s.stats.RecordKey()
		s.clearStatus()
		if reason := s.execute(s.decoder.Decode(ev)); reason != reasonNone {
			return reason
		}
		s.render()
	}
	return reasonNone
}

// execute runs one command against the session.
func (s *Session) execute(cmd input.Command) quitReason {
	if cmd.IsNone() {
		return reasonNone
	}
	s.stats.RecordCommand()
	s.logger.Debug("%s", cmd.Name())

	switch cmd.Kind {
	case input.KindInsert:
		s.insert(cmd.Bytes)
	case input.KindNewline:
		s.insert([]byte{'\n'})
	case input.KindBackspace:
		if err := s.engine.Backspace(); err != nil {
			s.logger.Error("backspace: %v", err)
		}
	case input.KindMove:
		s.move(cmd.Dir)
	case input.KindSave:
		s.saveWithStatus()
	case input.KindSaveExit:
		if s.saveWithStatus() {
			return reasonSaveExit
		}
	case input.KindExit:
		return reasonExit
	case input.KindInterrupt:
		return reasonInterrupt
	}
	return reasonNone
}

// insert writes p at the cursor. The whole sequence is refused when it
// does not fit, so a multi-byte character is never split.
func (s *Session) insert(p []byte) {
	if s.engine.Capacity()-s.engine.Len() < len(p) {
		s.reject(engine.ErrCapacityExceeded)
		return
	}
	for _, ch := range p {
		if err := s.engine.Insert(ch); err != nil {
			s.reject(err)
			return
		}
	}
}

func (s *Session) reject(err error) {
	s.stats.RecordRejected()
	s.backend.Beep()

	if errors.Is(err, engine.ErrCapacityExceeded) {
		s.logger.WithField("capacity", s.engine.Capacity()).Warn("insert rejected: %v", err)
		s.setStatus("buffer full", true)
		return
	}
	s.logger.Warn("insert rejected: %v", err)
	s.setStatus(err.Error(), true)
}

func (s *Session) move(d input.Direction) {
	switch d {
	case input.DirLeft:
		s.engine.MoveLeft()
	case input.DirRight:
		s.engine.MoveRight()
	case input.DirUp:
		s.engine.MoveUp()
	case input.DirDown:
		s.engine.MoveDown()
	case input.DirLineStart:
		s.engine.MoveHome()
	case input.DirLineEnd:
		s.engine.MoveEnd()
	}
}

// render recomputes the frame. The viewport is resized to the current
// terminal and scrolled to the cursor line first.
func (s *Session) render() {
	start := time.Now()

	g := s.renderer.Geometry()
	s.view.Resize(g.TextWidth(), g.TextHeight())
	s.view.ScrollToReveal(s.engine.CursorPoint().Line)

	s.renderer.Render(renderer.Frame{
		Content:       s.engine.Buffer().Bytes(),
		Cursor:        s.engine.Cursor(),
		TopLine:       s.view.TopLine(),
		FileName:      s.path,
		Status:        s.status,
		StatusIsError: s.statusIsErr,
	})
	s.stats.RecordFrame(time.Since(start))
}

// shutdown is the single exit path: restore the terminal, then save when
// the session was interrupted.
func (s *Session) shutdown(reason quitReason) error {
	s.restore()

	log := s.logger.WithFields(s.stats.Snapshot().Fields()).WithField("reason", reason)
	if reason == reasonInterrupt {
		if _, err := s.Save(); err != nil {
			log.Error("shutdown save failed: %v", err)
			return err
		}
	}
	log.Info("session closed")
	return nil
}

// restore returns the terminal to its original mode exactly once.
func (s *Session) restore() {
	s.restoreOnce.Do(func() {
		s.mu.Lock()
		b := s.backend
		s.mu.Unlock()
		if b != nil {
			b.Shutdown()
		}
	})
}
