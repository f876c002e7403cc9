package components

import (
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// CrossAxisAlignment specifies how children are aligned along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

// Stack is a layout component that arranges children in a single direction.
type Stack struct {
	BaseComponent
	children   []ui.Renderable
	direction  Direction
	gap        int
	crossAlign CrossAxisAlignment
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		crossAlign:    CrossStart,
	}
}

// VStack creates a vertical stack (convenience constructor).
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack (convenience constructor).
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(UnscopedContext())
}

// ViewWithContext renders the stack, passing the context on to every child.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx.WithConstraints(s.deriveChildConstraints(ctx.Constraints))

	childViews := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}

		view := renderChild(child, childCtx)
		// Spacers are kept even when they render no visible characters.
		if _, spacer := child.(*Spacer); view != "" || spacer {
			childViews = append(childViews, view)
		}
	}

	style := s.ComputeStyle(ctx)
	if len(childViews) == 0 {
		return style.Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.joinHorizontal(childViews)
	} else {
		content = s.joinVertical(childViews)
	}

	if width := ctx.Constraints.MaxWidth; width > 0 {
		style = style.MaxWidth(width)
	}
	return style.Render(content)
}

// deriveChildConstraints divides the available width among the children of
// a horizontal stack. Vertical stacks pass constraints through unchanged.
func (s *Stack) deriveChildConstraints(parent Constraints) Constraints {
	child := parent
	if s.direction == DirectionHorizontal && parent.MaxWidth > 0 && len(s.children) > 0 {
		totalGap := s.gap * (len(s.children) - 1)
		available := parent.MaxWidth - totalGap
		if available > 0 {
			child.MaxWidth = available / len(s.children)
		}
	}
	return child
}

func (s *Stack) joinVertical(views []string) string {
	pos := s.crossAlign.toLipglossPosition()
	if s.gap == 0 {
		return lipgloss.JoinVertical(pos, views...)
	}

	spacer := strings.Repeat("\n", s.gap-1)
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return lipgloss.JoinVertical(pos, result...)
}

func (s *Stack) joinHorizontal(views []string) string {
	pos := s.crossAlign.toLipglossPosition()
	if s.gap == 0 {
		return lipgloss.JoinHorizontal(pos, views...)
	}

	spacer := strings.Repeat(" ", s.gap)
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return lipgloss.JoinHorizontal(pos, result...)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

func (c CrossAxisAlignment) toLipglossPosition() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
