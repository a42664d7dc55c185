package engine

import "github.com/jstene/edit/internal/engine/buffer"

// Errors returned by engine operations.
var (
	// ErrCapacityExceeded indicates the buffer has no room for another byte.
	ErrCapacityExceeded = buffer.ErrCapacityExceeded

	// ErrOffsetOutOfRange indicates an offset is outside the logical content.
	ErrOffsetOutOfRange = buffer.ErrOffsetOutOfRange

	// ErrSentinelByte indicates an attempt to insert the zero byte.
	ErrSentinelByte = buffer.ErrSentinelByte
)
