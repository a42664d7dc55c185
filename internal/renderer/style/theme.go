// Package style provides the editor color theme and its plain fallback.
package style

import (
	"github.com/jstene/edit/internal/renderer/core"
)

// Role identifies what a styled cell belongs to.
type Role uint8

const (
	// RoleNormal is text and background inside the frame.
	RoleNormal Role = iota

	// RoleMenu is the menu bar.
	RoleMenu

	// RoleMnemonic is the highlighted command key in a menu label.
	RoleMnemonic

	// RoleError is a status message reporting a failure.
	RoleError

	// RoleBorder is the frame around the text region.
	RoleBorder

	// RoleCount is the number of roles.
	RoleCount
)

// String returns the string representation of the role.
func (r Role) String() string {
	switch r {
	case RoleNormal:
		return "normal"
	case RoleMenu:
		return "menu"
	case RoleMnemonic:
		return "mnemonic"
	case RoleError:
		return "error"
	case RoleBorder:
		return "border"
	default:
		return "unknown"
	}
}

// Theme maps each role to a style.
type Theme struct {
	name   string
	styles [RoleCount]core.Style
}

// ColorTheme returns the color theme: white on blue text, a blue on white
// menu bar, underlined white on cyan mnemonics and white on red errors.
func ColorTheme() Theme {
	normal := core.DefaultStyle().WithForeground(core.ColorWhite).WithBackground(core.ColorBlue)

	var t Theme
	t.name = "color"
	t.styles[RoleNormal] = normal
	t.styles[RoleMenu] = core.DefaultStyle().WithForeground(core.ColorBlue).WithBackground(core.ColorWhite)
	t.styles[RoleMnemonic] = core.DefaultStyle().WithForeground(core.ColorWhite).WithBackground(core.ColorCyan).Underline()
	t.styles[RoleError] = core.DefaultStyle().WithForeground(core.ColorWhite).WithBackground(core.ColorRed).Bold()
	t.styles[RoleBorder] = normal
	return t
}

// PlainTheme returns the fallback for terminals without color: default
// colors, a reversed menu bar, underlined mnemonics, bold reversed errors.
func PlainTheme() Theme {
	var t Theme
	t.name = "plain"
	t.styles[RoleNormal] = core.DefaultStyle()
	t.styles[RoleMenu] = core.DefaultStyle().Reverse()
	t.styles[RoleMnemonic] = core.DefaultStyle().Reverse().Underline()
	t.styles[RoleError] = core.DefaultStyle().Bold().Reverse()
	t.styles[RoleBorder] = core.DefaultStyle()
	return t
}

// ForTerminal picks the color theme when colors are enabled and the
// terminal reports at least the eight ANSI colors, else the plain theme.
func ForTerminal(colors int, enabled bool) Theme {
	if enabled && colors >= 8 {
		return ColorTheme()
	}
	return PlainTheme()
}

// Name returns "color" or "plain".
func (t Theme) Name() string {
	return t.name
}

// Style returns the style for a role. Unknown roles get the normal style.
func (t Theme) Style(r Role) core.Style {
	if r >= RoleCount {
		return t.styles[RoleNormal]
	}
	return t.styles[r]
}

// IsPlain reports whether this is the colorless fallback.
func (t Theme) IsPlain() bool {
	return t.name == "plain"
}
