// Package app runs one editing session.
//
// A Session owns everything the editor mutates: the engine (buffer and
// cursor), the viewport scroll anchor, the escape decoder and the path of
// the target file. Run drives it from a terminal backend:
//
//	PollEvent -> Decode -> execute -> scroll to cursor -> Render
//
// Every frame is recomputed from the session state; nothing on screen is
// patched incrementally.
//
// # Shutdown
//
// There are three ways out, all through one shutdown routine that restores
// the terminal exactly once:
//
//   - Esc e saves and exits. A failed write keeps the session open.
//   - Esc x exits without saving.
//   - Ctrl-C or SIGINT, SIGTERM and SIGHUP save and exit. Signal handlers
//     only call Interrupt, which sets a flag and wakes the loop; the save
//     itself runs on the loop's goroutine.
//
// # Logging
//
// The terminal is not available for diagnostics while a session runs, so
// the Logger writes to a rotating file (lumberjack) or discards.
package app
