package components

import "github.com/alexisbeaulieu97/themekit/internal/ui"

// Scope is a subtree over which a theme, and the global rules derived from
// it, are active. Components never look a scope up; they receive its
// RenderContext as a parameter.
type Scope struct {
	theme       Theme
	mode        Mode
	sheet       *StyleSheet
	rules       Rules
	constraints Constraints
	applied     bool
	err         error
}

// ScopeOption configures a Scope at creation time.
type ScopeOption func(*Scope)

// WithMode sets the ambient palette of the scope.
func WithMode(mode Mode) ScopeOption {
	return func(s *Scope) {
		s.mode = mode
	}
}

// WithStyleSheet makes the scope register its global rules in sheet.
// Sharing a sheet between scopes with the same theme registers each rule once.
func WithStyleSheet(sheet *StyleSheet) ScopeOption {
	return func(s *Scope) {
		s.sheet = sheet
	}
}

// WithLayout sets the constraints handed to the root of the subtree.
func WithLayout(c Constraints) ScopeOption {
	return func(s *Scope) {
		s.constraints = c
	}
}

// Provide creates a scope for theme and registers the global style rule
// for it. The theme should be complete; missing values are not an error and
// simply resolve to the terminal defaults.
func Provide(theme Theme, opts ...ScopeOption) *Scope {
	s := &Scope{
		theme:       theme,
		mode:        ModeLight,
		constraints: Unconstrained(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sheet == nil {
		s.sheet = NewStyleSheet()
	}

	rule, applied, err := s.sheet.Register(ButtonFontRule, theme)
	s.applied, s.err = applied, err
	if err == nil {
		s.rules = Rules{rule}
	}
	return s
}

// Theme returns the theme of the scope. Outside a scope (nil receiver) it
// returns the zero Theme.
func (s *Scope) Theme() Theme {
	if s == nil {
		return Theme{}
	}
	return s.theme
}

// Mode returns the ambient mode of the scope.
func (s *Scope) Mode() Mode {
	if s == nil {
		return ModeLight
	}
	return s.mode
}

// StyleSheet returns the sheet the scope registered its rules in.
func (s *Scope) StyleSheet() *StyleSheet {
	if s == nil {
		return nil
	}
	return s.sheet
}

// Applied reports whether Provide changed the style sheet. It is false when
// an equal theme had already registered the rule.
func (s *Scope) Applied() bool {
	return s != nil && s.applied
}

// Err returns the error, if any, raised while registering global rules.
func (s *Scope) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

// Rules returns the global rules evaluated for this scope's theme.
func (s *Scope) Rules() Rules {
	if s == nil || len(s.rules) == 0 {
		return nil
	}
	out := make(Rules, len(s.rules))
	copy(out, s.rules)
	return out
}

// Context returns the render context for components inside the scope.
func (s *Scope) Context() RenderContext {
	if s == nil {
		return RenderContext{Constraints: Unconstrained()}
	}
	return RenderContext{
		Theme:       s.theme,
		Mode:        s.mode,
		Rules:       s.Rules(),
		Constraints: s.constraints,
	}
}

// Render renders children top to bottom with the scope's context.
func (s *Scope) Render(children ...ui.Renderable) string {
	return VStack(children...).ViewWithContext(s.Context())
}
