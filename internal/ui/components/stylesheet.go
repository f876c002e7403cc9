package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mitchellh/hashstructure/v2"
)

// Declarations are the properties a global rule sets on matching elements.
type Declarations struct {
	FontFamily string `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
}

// GlobalStyle describes a rule that is computed from the theme of a scope
// and applied to every element matching its selector.
type GlobalStyle struct {
	Name     string
	Selector Element
	Compute  func(Theme) Declarations
}

// ButtonFontRule sets the font family of every button element to the
// theme's typography.
var ButtonFontRule = GlobalStyle{
	Name:     "button-font",
	Selector: ElementButton,
	Compute: func(t Theme) Declarations {
		return Declarations{FontFamily: t.FontFamily}
	},
}

// Rule is a global style evaluated against one theme.
type Rule struct {
	Name         string       `json:"name" yaml:"name"`
	Selector     Element      `json:"selector" yaml:"selector"`
	Declarations Declarations `json:"declarations" yaml:"declarations"`
	ThemeHash    uint64       `json:"themeHash" yaml:"themeHash"`
}

// CSS renders the rule as a declarative style block.
func (r Rule) CSS() string {
	var b strings.Builder
	b.WriteString(r.Selector.Tag())
	b.WriteString(" {")
	if r.Declarations.FontFamily != "" {
		fmt.Fprintf(&b, " font-family: %s;", r.Declarations.FontFamily)
	}
	b.WriteString(" }")
	return b.String()
}

// Rules is an ordered set of evaluated global rules.
type Rules []Rule

// Lookup returns the rule registered under name.
func (rs Rules) Lookup(name string) (Rule, bool) {
	for _, r := range rs {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// Cascade fills declarations the attribute set leaves unset from the rules
// matching its element. Later rules override earlier ones; values already
// present on attrs always win.
func (rs Rules) Cascade(attrs StyleAttrs) StyleAttrs {
	var font string
	for _, r := range rs {
		if r.Selector != attrs.Element {
			continue
		}
		if r.Declarations.FontFamily != "" {
			font = r.Declarations.FontFamily
		}
	}
	if attrs.FontFamily == "" {
		attrs.FontFamily = font
	}
	return attrs
}

// StyleSheet holds the global rules of one or more scopes. Each rule is
// stored once per name; applying it again with a structurally equal theme
// is a no-op and a different theme replaces it. Scopes keep the rules they
// registered, so a replacement never reaches a scope that is already
// provided. The zero value is ready to use.
type StyleSheet struct {
	mu    sync.Mutex
	rules map[string]Rule
	order []string
}

// NewStyleSheet returns an empty sheet.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{rules: make(map[string]Rule)}
}

// Apply evaluates style against theme and registers the result. It reports
// whether the sheet changed.
func (s *StyleSheet) Apply(style GlobalStyle, theme Theme) (bool, error) {
	_, changed, err := s.Register(style, theme)
	return changed, err
}

// Register is Apply that also returns the rule as evaluated for theme. The
// returned rule stays valid after another theme replaces it in the sheet.
func (s *StyleSheet) Register(style GlobalStyle, theme Theme) (Rule, bool, error) {
	hash, err := ThemeHash(theme)
	if err != nil {
		return Rule{}, false, fmt.Errorf("apply %s: %w", style.Name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rules == nil {
		s.rules = make(map[string]Rule)
	}

	existing, ok := s.rules[style.Name]
	if ok && existing.ThemeHash == hash {
		return existing, false, nil
	}

	var decl Declarations
	if style.Compute != nil {
		decl = style.Compute(theme)
	}

	if !ok {
		s.order = append(s.order, style.Name)
	}
	rule := Rule{
		Name:         style.Name,
		Selector:     style.Selector,
		Declarations: decl,
		ThemeHash:    hash,
	}
	s.rules[style.Name] = rule
	return rule, true, nil
}

// Rules returns a snapshot of the registered rules in registration order.
func (s *StyleSheet) Rules() Rules {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(Rules, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.rules[name])
	}
	return out
}

// Len returns the number of registered rules.
func (s *StyleSheet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// ThemeHash returns the structural identity of a theme.
func ThemeHash(theme Theme) (uint64, error) {
	return hashstructure.Hash(theme, hashstructure.FormatV2, nil)
}
