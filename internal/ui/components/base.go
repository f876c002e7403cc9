package components

import (
	"github.com/alexisbeaulieu97/themekit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, ctx RenderContext) lipgloss.Style
}

// StyleFunc applies a styling transformation using data from the render context.
type StyleFunc func(lipgloss.Style, RenderContext) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, ctx)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the computed style for this component in the given context.
func (b *BaseComponent) ComputeStyle(ctx RenderContext) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, ctx)
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// Constraints defines sizing constraints for layout calculations.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{
		MinWidth:  0,
		MaxWidth:  -1, // -1 means unlimited
		MinHeight: 0,
		MaxHeight: -1,
	}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{
		MinWidth:  0,
		MaxWidth:  maxWidth,
		MinHeight: 0,
		MaxHeight: -1,
	}
}

// RenderContext carries everything a component may read while rendering:
// the scope's theme, the ambient mode, the global rules registered for the
// scope and layout constraints. It is passed explicitly; there is no
// package-level theme.
type RenderContext struct {
	Theme       Theme
	Mode        Mode
	Rules       Rules
	Constraints Constraints
}

// UnscopedContext is the context outside any scope: the zero theme, no
// global rules and no constraints. Every colour resolves to the terminal
// default.
func UnscopedContext() RenderContext {
	var s *Scope
	return s.Context()
}

// WithMode returns a new context with the specified ambient mode.
func (r RenderContext) WithMode(mode Mode) RenderContext {
	r.Mode = mode
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// Palette returns the ambient palette.
func (r RenderContext) Palette() Palette {
	return r.Theme.Palette(r.Mode)
}

// ContextualRenderable is a component that can receive the render context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// renderChild renders a child with the context when it accepts one.
func renderChild(child ui.Renderable, ctx RenderContext) string {
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}
