package backend

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jstene/edit/internal/renderer/core"
)

// Terminal implements Backend on a tcell screen. The screen does its own
// locking, so PostEvent may be called from any goroutine while the event
// loop draws.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal backend for the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// newTerminalWithScreen wraps an existing screen, used with tcell's simulation screen.
func newTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error { return t.screen.Init() }

func (t *Terminal) Shutdown() { t.screen.Fini() }

func (t *Terminal) Size() (int, int) { return t.screen.Size() }

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

// GetCell returns the cell at the given position.
func (t *Terminal) GetCell(x, y int) core.Cell {
	mainc, _, style, _ := t.screen.GetContent(x, y)
	return core.Cell{
		Rune:  mainc,
		Width: core.RuneWidth(mainc),
		Style: convertTcellStyle(style),
	}
}

func (t *Terminal) Fill(rect core.ScreenRect, cell core.Cell) {
	style := convertStyle(cell.Style)
	width, height := t.screen.Size()

	for y := max(rect.Top, 0); y < min(rect.Bottom, height); y++ {
		for x := max(rect.Left, 0); x < min(rect.Right, width); x++ {
			t.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
}

func (t *Terminal) Clear() { t.screen.Clear() }

func (t *Terminal) Show() { t.screen.Show() }

func (t *Terminal) ShowCursor(x, y int) { t.screen.ShowCursor(x, y) }

func (t *Terminal) HideCursor() { t.screen.HideCursor() }

// PollEvent skips tcell events the editor has no use for. A finalized
// screen reads as an interrupt so the loop shuts down.
func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventInterrupt, When: time.Now()}
		}
		if out := convertEvent(ev); out.Type != EventNone {
			return out
		}
	}
}

// PostEvent queues key and interrupt events; other types are dropped.
func (t *Terminal) PostEvent(event Event) {
	var tev tcell.Event
	switch event.Type {
	case EventKey:
		tev = tcell.NewEventKey(convertToTcellKey(event.Key), event.Rune, convertToTcellMod(event.Mod))
	case EventInterrupt:
		tev = tcell.NewEventInterrupt(nil)
	default:
		return
	}
	_ = t.screen.PostEvent(tev) // a full queue already holds a wake-up
}

func (t *Terminal) Colors() int { return t.screen.Colors() }

func (t *Terminal) Beep() { _ = t.screen.Beep() }

// tcellKeys maps every tcell key the editor reacts to. Enter and Ctrl-J,
// and both backspace codes, fold into one Key each.
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyRune:       KeyRune,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyCtrlJ:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyCtrlC:      KeyCtrlC,
}

// keysToTcell is the inverse of tcellKeys, choosing the code a terminal
// sends for each folded key.
var keysToTcell = map[Key]tcell.Key{
	KeyRune:      tcell.KeyRune,
	KeyEscape:    tcell.KeyEscape,
	KeyEnter:     tcell.KeyEnter,
	KeyTab:       tcell.KeyTab,
	KeyBackspace: tcell.KeyBackspace2,
	KeyDelete:    tcell.KeyDelete,
	KeyHome:      tcell.KeyHome,
	KeyEnd:       tcell.KeyEnd,
	KeyUp:        tcell.KeyUp,
	KeyDown:      tcell.KeyDown,
	KeyLeft:      tcell.KeyLeft,
	KeyRight:     tcell.KeyRight,
	KeyCtrlC:     tcell.KeyCtrlC,
}

func convertKey(k tcell.Key) Key {
	if key, ok := tcellKeys[k]; ok {
		return key
	}
	return KeyNone
}

func convertToTcellKey(k Key) tcell.Key {
	if key, ok := keysToTcell[k]; ok {
		return key
	}
	return tcell.KeyNUL
}

var modifiers = [...]struct {
	ours  ModMask
	tcell tcell.ModMask
}{
	{ModShift, tcell.ModShift},
	{ModCtrl, tcell.ModCtrl},
	{ModAlt, tcell.ModAlt},
	{ModMeta, tcell.ModMeta},
}

func convertMod(m tcell.ModMask) ModMask {
	var mod ModMask
	for _, p := range modifiers {
		if m&p.tcell != 0 {
			mod |= p.ours
		}
	}
	return mod
}

func convertToTcellMod(m ModMask) tcell.ModMask {
	var mod tcell.ModMask
	for _, p := range modifiers {
		if m.Has(p.ours) {
			mod |= p.tcell
		}
	}
	return mod
}

// convertEvent turns key, resize and interrupt events into Events and
// everything else into EventNone. Ctrl+c delivered as a rune counts as
// KeyCtrlC.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		out := Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
			Mod:  convertMod(e.Modifiers()),
			When: e.When(),
		}
		if out.Key == KeyRune && out.Mod.Has(ModCtrl) && (out.Rune == 'c' || out.Rune == 'C') {
			out.Key = KeyCtrlC
		}
		return out

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h, When: e.When()}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, When: e.When()}
	}
	return Event{Type: EventNone}
}

// convertStyle maps palette colors and attributes onto a tcell style.
func convertStyle(s core.Style) tcell.Style {
	st := tcell.StyleDefault.
		Bold(s.Attributes.Has(core.AttrBold)).
		Dim(s.Attributes.Has(core.AttrDim)).
		Underline(s.Attributes.Has(core.AttrUnderline)).
		Reverse(s.Attributes.Has(core.AttrReverse))

	if !s.Foreground.IsDefault() {
		st = st.Foreground(tcell.PaletteColor(int(s.Foreground.Index)))
	}
	if !s.Background.IsDefault() {
		st = st.Background(tcell.PaletteColor(int(s.Background.Index)))
	}
	return st
}

func convertTcellStyle(ts tcell.Style) core.Style {
	fg, bg, attrs := ts.Decompose()

	s := core.Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
	}
	for _, p := range [...]struct {
		tcell tcell.AttrMask
		ours  core.Attribute
	}{
		{tcell.AttrBold, core.AttrBold},
		{tcell.AttrDim, core.AttrDim},
		{tcell.AttrUnderline, core.AttrUnderline},
		{tcell.AttrReverse, core.AttrReverse},
	} {
		if attrs&p.tcell != 0 {
			s.Attributes |= p.ours
		}
	}
	return s
}

// convertTcellColor reads palette colors back; RGB and default colors
// read as the default.
func convertTcellColor(tc tcell.Color) core.Color {
	if tc >= tcell.ColorValid && tc < tcell.ColorValid+256 {
		return core.ColorFromIndex(uint8(tc - tcell.ColorValid))
	}
	return core.ColorDefault
}
