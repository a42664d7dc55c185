package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrCapacityExceeded = errors.New("buffer capacity exceeded")
	ErrSentinelByte     = errors.New("cannot insert sentinel byte")
)

// Sentinel marks the end of logical content inside the arena.
const Sentinel byte = 0

// Buffer is a fixed-capacity byte arena with an explicit logical size.
type Buffer struct {
	data []byte // len(data) is the capacity
	size int
}

// New creates an empty buffer with the given capacity.
func New(capacity int) *Buffer {
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	return &Buffer{data: make([]byte, capacity)}
}

// NewFromBytes creates a buffer holding content.
// The capacity is derived from len(content) unless WithCapacity is given.
func NewFromBytes(content []byte, opts ...Option) *Buffer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	capacity := o.capacity
	if capacity == 0 {
		capacity = CapacityFor(len(content), o.defaultCapacity)
	}

	b := New(capacity)
	n := copy(b.data, content)
	b.size = logicalPrefix(b.data[:n])
	return b
}

// Load reads all of r into a new buffer.
func Load(r io.Reader, opts ...Option) (*Buffer, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	return NewFromBytes(content, opts...), nil
}

// logicalPrefix returns the length of p up to its first sentinel byte.
func logicalPrefix(p []byte) int {
	if i := bytes.IndexByte(p, Sentinel); i >= 0 {
		return i
	}
	return len(p)
}

// Read Operations

// Capacity returns the arena size.
func (b *Buffer) Capacity() int {
	return len(b.data)
}

// LogicalSize returns the offset of the first sentinel byte, or the capacity
// when the arena is full.
func (b *Buffer) LogicalSize() int {
	return b.size
}

// IsEmpty returns true if the buffer has no logical content.
func (b *Buffer) IsEmpty() bool {
	return b.size == 0
}

// IsFull returns true if no further byte can be inserted.
func (b *Buffer) IsFull() bool {
	return b.size == len(b.data)
}

// Bytes returns the logical content.
// The slice aliases the arena and is only valid until the next mutation.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.size:b.size]
}

// String returns a copy of the logical content.
func (b *Buffer) String() string {
	return string(b.data[:b.size])
}

// Write Operations

// Insert writes ch at offset, shifting the bytes from offset to the end of
// content one position to the right.
func (b *Buffer) Insert(offset int, ch byte) error {
	if ch == Sentinel {
		return ErrSentinelByte
	}
	if offset < 0 || offset > b.size {
		return fmt.Errorf("insert at %d: %w", offset, ErrOffsetOutOfRange)
	}
	if b.IsFull() {
		return ErrCapacityExceeded
	}

	copy(b.data[offset+1:b.size+1], b.data[offset:b.size])
	b.data[offset] = ch
	b.size++
	b.terminate()
	return nil
}

// DeleteBefore removes the byte immediately before offset.
// It is a no-op when offset is 0.
func (b *Buffer) DeleteBefore(offset int) error {
	if offset < 0 || offset > b.size {
		return fmt.Errorf("delete before %d: %w", offset, ErrOffsetOutOfRange)
	}
	if offset == 0 {
		return nil
	}

	copy(b.data[offset-1:b.size-1], b.data[offset:b.size])
	b.size--
	b.terminate()
	return nil
}

// AppendTrailingNewline writes '\n' at the sentinel position unless the
// content already ends with one. A full arena is left untouched.
// Reports whether a newline was written.
func (b *Buffer) AppendTrailingNewline() bool {
	if b.IsFull() {
		return false
	}
	if b.size > 0 && b.data[b.size-1] == '\n' {
		return false
	}
	b.data[b.size] = '\n'
	b.size++
	b.terminate()
	return true
}

// Save normalizes the trailing newline and writes exactly LogicalSize bytes
// to w. Callers are responsible for truncating the destination first.
func (b *Buffer) Save(w io.Writer) (int, error) {
	b.AppendTrailingNewline()

	n, err := w.Write(b.data[:b.size])
	if err != nil {
		return n, err
	}
	if n != b.size {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// terminate keeps the sentinel in place after the logical content.
func (b *Buffer) terminate() {
	if b.size < len(b.data) {
		b.data[b.size] = Sentinel
	}
}
