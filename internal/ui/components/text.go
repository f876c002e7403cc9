package components

import (
	"github.com/muesli/reflow/wordwrap"
)

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(UnscopedContext())
}

// ViewWithContext renders the text, wrapping it to the maximum width of the context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	content := t.content
	if width := ctx.Constraints.MaxWidth; width > 0 {
		content = wordwrap.String(content, width)
	}
	return t.ComputeStyle(ctx).Render(content)
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// CaptionText creates faint text in the ambient palette.
func CaptionText(content string) *Text {
	return NewText(content).WithAppliers(Foreground(PaletteText), Faint())
}
