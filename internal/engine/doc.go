// Package engine provides the editing engine for edit.
//
// The engine package serves as the facade that binds one fixed-capacity
// buffer to one cursor, so that every mutation keeps the cursor consistent
// with the content it edits.
//
// # Architecture
//
// The engine is built on two sub-packages:
//
//   - buffer: fixed-capacity byte arena with sentinel-terminated content
//   - cursor: offset cursor and line-boundary-aware movement
//
// # Basic Usage
//
//	e, err := engine.NewFromReader(f, engine.WithDefaultCapacity(65536))
//
//	e.Insert('x')   // writes at the cursor and advances it
//	e.Backspace()   // removes the byte before the cursor
//	e.MoveDown()    // next line, column per the configured ColumnMode
//
//	n, err := e.Save(w) // trailing newline normalization + exact-size write
//
// # Thread Safety
//
// The engine is not safe for concurrent use. The editor drives it from a
// single event loop.
package engine
