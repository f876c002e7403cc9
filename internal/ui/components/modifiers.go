package components

import "github.com/charmbracelet/lipgloss"

// PaletteSlot selects a colour from a palette.
type PaletteSlot func(Palette) Color

// Predefined slots for use with Foreground.
var (
	PalettePrimary PaletteSlot = func(p Palette) Color { return p.Primary }
	PaletteText    PaletteSlot = func(p Palette) Color { return p.Text }
)

// Foreground sets the text colour from the ambient palette.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return base.Foreground(slot(ctx.Palette()).Terminal())
	}
}

// PaddingX pads both sides of the content.
func PaddingX(size int) StyleFunc {
	return func(base lipgloss.Style, _ RenderContext) lipgloss.Style {
		return base.PaddingLeft(size).PaddingRight(size)
	}
}

// Faint dims the content.
func Faint() StyleFunc {
	return func(base lipgloss.Style, _ RenderContext) lipgloss.Style {
		return base.Faint(true)
	}
}
