package engine

import (
	"github.com/jstene/edit/internal/engine/buffer"
	"github.com/jstene/edit/internal/engine/cursor"
)

// Option configures an Engine during creation.
type Option func(*config)

type config struct {
	content    []byte
	bufOpts    []buffer.Option
	columnMode cursor.ColumnMode
}

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(c *config) {
		c.content = []byte(content)
	}
}

// WithCapacity fixes the buffer capacity.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.bufOpts = append(c.bufOpts, buffer.WithCapacity(n))
	}
}

// WithDefaultCapacity sets the default capacity used to size the buffer.
func WithDefaultCapacity(n int) Option {
	return func(c *config) {
		c.bufOpts = append(c.bufOpts, buffer.WithDefaultCapacity(n))
	}
}

// WithColumnMode sets how vertical movement treats the cursor column.
func WithColumnMode(mode cursor.ColumnMode) Option {
	return func(c *config) {
		c.columnMode = mode
	}
}
