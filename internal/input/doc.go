// Package input turns terminal key events into editor commands.
//
// Printable keys insert text, Enter inserts a line break and Backspace or
// Delete removes the byte before the cursor. Commands are reached through
// an Escape prefix:
//
//	Esc s      save
//	Esc e      save and exit
//	Esc x      exit without saving
//	Esc [ A-D  move up, down, right, left
//
// Ctrl-C requests the interrupt shutdown from any state.
//
// # Usage
//
//	dec := input.NewDecoder(input.Config{EscapeTimeout: time.Second})
//	for {
//	    cmd := dec.Decode(b.PollEvent())
//	    if !cmd.IsNone() {
//	        session.Execute(cmd)
//	    }
//	}
package input
