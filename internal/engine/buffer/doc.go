// Package buffer provides the fixed-capacity byte arena that backs an editing
// session.
//
// A Buffer owns a pre-allocated arena whose length is its capacity. The
// logical content is the prefix of the arena up to the logical size; the byte
// at the logical size (when the arena is not full) is the zero sentinel and
// everything after it is filler that is never rendered or saved.
//
// Capacity is fixed when the buffer is created:
//
//	buf, err := buffer.Load(f, buffer.WithDefaultCapacity(65536))
//
// picks max(default, 2*size) when the file is larger than half the default,
// and the default otherwise. Inserting into a full arena fails with
// ErrCapacityExceeded instead of growing it.
//
// Editing is byte oriented and cursor relative:
//
//	buf.Insert(3, 'x')       // "abc" -> "abcx"
//	buf.DeleteBefore(4)      // "abcx" -> "abc"
//	buf.Save(w)              // appends a trailing '\n' if absent, writes "abc\n"
//
// A Buffer is not safe for concurrent use. The editor drives it from a
// single goroutine.
package buffer
