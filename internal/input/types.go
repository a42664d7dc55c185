package input

// Direction represents a directional command.
type Direction uint8

const (
	// DirNone indicates no direction.
	DirNone Direction = iota
	// DirUp indicates upward direction.
	DirUp
	// DirDown indicates downward direction.
	DirDown
	// DirLeft indicates leftward direction.
	DirLeft
	// DirRight indicates rightward direction.
	DirRight
	// DirLineStart moves to the start of the line.
	DirLineStart
	// DirLineEnd moves to the end of the line.
	DirLineEnd
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirLineStart:
		return "lineStart"
	case DirLineEnd:
		return "lineEnd"
	default:
		return "none"
	}
}

// Kind identifies what a command does.
type Kind uint8

const (
	// KindNone means the input produced nothing to execute.
	KindNone Kind = iota
	// KindInsert inserts Command.Bytes at the cursor.
	KindInsert
	// KindNewline inserts a line break.
	KindNewline
	// KindBackspace deletes the byte before the cursor.
	KindBackspace
	// KindMove moves the cursor in Command.Dir.
	KindMove
	// KindSave saves without exiting.
	KindSave
	// KindSaveExit saves and exits.
	KindSaveExit
	// KindExit exits without saving.
	KindExit
	// KindInterrupt requests the interrupt shutdown (save and exit).
	KindInterrupt
)

// Command is one decoded editor command.
type Command struct {
	Kind Kind

	// Bytes holds the text for KindInsert.
	Bytes []byte

	// Dir holds the direction for KindMove.
	Dir Direction
}

// Name returns the command identifier (e.g., "editor.save", "cursor.up").
func (c Command) Name() string {
	switch c.Kind {
	case KindInsert:
		return "editor.insert"
	case KindNewline:
		return "editor.newline"
	case KindBackspace:
		return "editor.backspace"
	case KindMove:
		return "cursor." + c.Dir.String()
	case KindSave:
		return "editor.save"
	case KindSaveExit:
		return "editor.saveExit"
	case KindExit:
		return "editor.exit"
	case KindInterrupt:
		return "editor.interrupt"
	default:
		return "none"
	}
}

// IsNone reports whether the command does nothing.
func (c Command) IsNone() bool {
	return c.Kind == KindNone
}

func none() Command { return Command{} }

func move(d Direction) Command { return Command{Kind: KindMove, Dir: d} }

func insert(b ...byte) Command { return Command{Kind: KindInsert, Bytes: b} }
