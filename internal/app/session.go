package app

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/jstene/edit/internal/config"
	"github.com/jstene/edit/internal/engine"
	"github.com/jstene/edit/internal/input"
	"github.com/jstene/edit/internal/renderer"
	"github.com/jstene/edit/internal/renderer/backend"
	"github.com/jstene/edit/internal/renderer/viewport"
)

// Options configures a session.
type Options struct {
	// Config supplies the settings. Nil uses config.Default().
	Config *config.Config

	// Logger receives session logs. Nil discards them.
	Logger *Logger
}

// Session is the state of one editor run on one file.
type Session struct {
	path   string
	cfg    *config.Config
	logger *Logger
	stats  *Stats

	engine  *engine.Engine
	view    *viewport.Viewport
	decoder *input.Decoder

	// backend is read by Interrupt from other goroutines.
	mu       sync.Mutex
	backend  backend.Backend
	renderer *renderer.Renderer

	status      string
	statusIsErr bool

	interrupted atomic.Bool
	running     atomic.Bool
	restoreOnce sync.Once
}

// OpenSession reads path into a new session. It fails with a *FileError
// when the file cannot be read; no terminal state is touched.
func OpenSession(path string, opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	mode := engine.ColumnPreserve
	if !cfg.Editor.PreserveColumn {
		mode = engine.ColumnReset
	}
	eng, err := engine.NewFromReader(f,
		engine.WithDefaultCapacity(cfg.Buffer.DefaultCapacity),
		engine.WithColumnMode(mode),
	)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}

	view := viewport.NewViewport(0, 0)
	view.SetFollow(cfg.Editor.ScrollFollow)

	s := &Session{
		path:    path,
		cfg:     cfg,
		logger:  logger.WithComponent("session"),
		stats:   NewStats(),
		engine:  eng,
		view:    view,
		decoder: input.NewDecoder(input.Config{EscapeTimeout: cfg.Editor.EscapeTimeout.Std()}),
	}

	s.logger.WithFields(map[string]any{
		"size":     eng.Len(),
		"lines":    eng.Buffer().LineCount(),
		"capacity": eng.Capacity(),
		"columns":  mode,
	}).Info("opened %s", path)
	return s, nil
}

// Path returns the target file path.
func (s *Session) Path() string {
	return s.path
}

// Engine returns the buffer and cursor.
func (s *Session) Engine() *engine.Engine {
	return s.engine
}

// Viewport returns the scroll state.
func (s *Session) Viewport() *viewport.Viewport {
	return s.view
}

// Stats returns the session counters.
func (s *Session) Stats() *Stats {
	return s.stats
}

// Status returns the menu bar message and whether it reports an error.
func (s *Session) Status() (string, bool) {
	return s.status, s.statusIsErr
}

func (s *Session) setStatus(msg string, isErr bool) {
	s.status = msg
	s.statusIsErr = isErr
}

func (s *Session) clearStatus() {
	s.setStatus("", false)
}

// Save truncates the target file and writes the buffer to it, adding a
// trailing newline when the content lacks one.
func (s *Session) Save() (int, error) {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		s.logger.Error("save %s: %v", s.path, err)
		return 0, &FileError{Op: "save", Path: s.path, Err: err}
	}

	n, err := s.engine.Save(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		s.logger.WithField("written", n).Error("save %s: %v", s.path, err)
		return n, &FileError{Op: "save", Path: s.path, Err: err}
	}

	s.stats.RecordSave()
	s.logger.WithField("bytes", n).Info("saved %s", s.path)
	return n, nil
}

// saveWithStatus saves and reports the outcome on the menu bar.
func (s *Session) saveWithStatus() bool {
	n, err := s.Save()
	if err != nil {
		cause := err
		var fe *FileError
		if errors.As(err, &fe) && fe.Err != nil {
			cause = fe.Err
		}
		s.setStatus("write failed: "+cause.Error(), true)
		return false
	}
	s.setStatus(fmt.Sprintf("saved %d bytes", n), false)
	return true
}
