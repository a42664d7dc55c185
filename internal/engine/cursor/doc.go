// Package cursor provides offset-based cursor navigation over a text buffer.
//
// A Cursor is an immutable value holding a byte offset into the logical
// content, always within [0, size]. Movement methods return a new Cursor and
// never step past the end of content or below zero.
//
// Vertical movement walks the content to find line boundaries:
//
//	c = c.Down(buf, cursor.ColumnPreserve) // same column on the next line
//	c = c.Up(buf, cursor.ColumnReset)      // line start, then previous line start
//
// ColumnPreserve keeps the byte column, clamped to the target line length.
// ColumnReset lands on column 0 of the target line.
package cursor
