package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a colour token as written in themes and attribute sets.
// Hex values ("#000", "#1e293b") are rendered as-is; Inherit and Transparent
// both leave the terminal's own colour in place.
type Color string

const (
	// Inherit means no value was supplied; the terminal default applies.
	Inherit Color = ""
	// Transparent is an explicit "no fill".
	Transparent Color = "transparent"
)

// IsSet reports whether the colour carries a value, including Transparent.
func (c Color) IsSet() bool {
	return strings.TrimSpace(string(c)) != ""
}

// IsPaint reports whether the colour actually paints something.
func (c Color) IsPaint() bool {
	return c.IsSet() && c != Transparent
}

// Terminal converts the token into a lipgloss colour.
func (c Color) Terminal() lipgloss.TerminalColor {
	if !c.IsPaint() {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(string(c))
}

// Mix blends c toward other by ratio in Lab space and returns the hex result.
// Colours that do not paint, or fail to parse, are returned unchanged.
func (c Color) Mix(other Color, ratio float64) Color {
	if !c.IsPaint() || !other.IsPaint() {
		return c
	}
	from, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	to, err := colorful.Hex(string(other))
	if err != nil {
		return c
	}
	return Color(from.BlendLab(to, ratio).Clamped().Hex())
}
