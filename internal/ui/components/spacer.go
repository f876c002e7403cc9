package components

import (
	"strings"
)

// Spacer renders empty space. A one-row spacer is the blank line placed
// between stacked buttons.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer with the given dimensions.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: width, height: height}
}

// VerticalSpacer creates a spacer of the given height.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// View renders the spacer as empty space.
func (s *Spacer) View() string {
	w := max(s.width, 0)
	h := max(s.height, 0)
	if h == 0 {
		return ""
	}

	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
