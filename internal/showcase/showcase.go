// Package showcase assembles the themed button page: the animated logo
// followed by one button per layout entry, all inside a single scope.
package showcase

import (
	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/ui"
	"github.com/alexisbeaulieu97/themekit/internal/ui/components"
)

// Layout lists what the page shows.
type Layout struct {
	Logo    components.Asset
	Buttons []config.ResolvedButton
}

// DefaultLayout is the stock page with the embedded logo.
func DefaultLayout() Layout {
	buttons, _ := config.DefaultDocument().ResolveButtons()
	return Layout{Logo: components.DefaultLogo(), Buttons: buttons}
}

// NoFocus means no button has focus.
const NoFocus = -1

// pagePadding keeps focus borders clear of the window edge.
const pagePadding = 2

// Showcase is a mounted page. Mounting is the only setup step; afterwards
// only the animation frame and the focused button change.
type Showcase struct {
	scope   *components.Scope
	logo    *components.AnimatedLogo
	buttons []*components.Button
	focus   int
}

// Mount builds the component tree under scope. A nil scope renders with
// no theme.
func Mount(scope *components.Scope, layout Layout) *Showcase {
	s := &Showcase{
		scope:   scope,
		logo:    components.NewAnimatedLogo(layout.Logo),
		buttons: make([]*components.Button, 0, len(layout.Buttons)),
		focus:   NoFocus,
	}
	for _, b := range layout.Buttons {
		s.buttons = append(s.buttons, components.NewButton(b.Label).WithVariant(b.Variant).WithAs(b.As))
	}
	return s
}

// Scope returns the scope the page was mounted in.
func (s *Showcase) Scope() *components.Scope {
	return s.scope
}

// Logo returns the page logo.
func (s *Showcase) Logo() *components.AnimatedLogo {
	return s.logo
}

// Buttons returns the mounted buttons in page order.
func (s *Showcase) Buttons() []*components.Button {
	return s.buttons
}

// SetFrame sets the logo animation frame.
func (s *Showcase) SetFrame(frame int) {
	s.logo.WithFrame(frame)
}

// Focus moves focus to button i. Out of range values clear focus.
func (s *Showcase) Focus(i int) {
	if i < 0 || i >= len(s.buttons) {
		i = NoFocus
	}
	s.focus = i
	for idx, b := range s.buttons {
		b.WithFocus(idx == i)
	}
}

// Focused returns the index of the focused button or NoFocus.
func (s *Showcase) Focused() int {
	return s.focus
}

// SetHover toggles the hover hook of button i.
func (s *Showcase) SetHover(i int, hovered bool) {
	if i < 0 || i >= len(s.buttons) {
		return
	}
	s.buttons[i].WithHover(hovered)
}

// View renders the page: logo first, then the buttons separated by a
// blank row.
func (s *Showcase) View() string {
	children := make([]ui.Renderable, 0, 2*len(s.buttons)+1)
	children = append(children, s.logo)
	for i, b := range s.buttons {
		if i > 0 {
			children = append(children, components.VerticalSpacer(1))
		}
		children = append(children, b)
	}
	return components.VStack(children...).
		WithCrossAlign(components.CrossCenter).
		WithAppliers(components.PaddingX(pagePadding)).
		ViewWithContext(s.scope.Context())
}
