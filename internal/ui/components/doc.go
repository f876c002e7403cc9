// Package components provides themed button components for terminal output,
// built on lipgloss.
//
// # Theme and scope
//
// A Theme is an immutable value with a dark and a light Palette and a font
// family. Provide creates a Scope for a theme; the scope registers the global
// button font rule in its StyleSheet and hands out a RenderContext that is
// passed explicitly to every component:
//
//	scope := components.Provide(components.DefaultTheme(), components.WithMode(components.ModeDark))
//	out := scope.Render(
//		components.NewAnimatedLogo(components.DefaultLogo()),
//		components.StyledButton("Styled Button"),
//	)
//
// A nil *Scope behaves like "no provider": its Theme is the zero value and
// every colour resolves to the terminal default.
//
// # Variants
//
// ResolveStyle maps (theme, mode, variant, props) to a StyleAttrs value and
// nothing else. default follows the ambient palette; outline is transparent
// with a border in the light primary colour; fancy and submit use fixed brand
// colours; dark always uses the dark palette. Unknown variants resolve like
// default.
//
// # Global rules
//
// StyleSheet.Apply registers a GlobalStyle evaluated against a theme, keyed
// by the rule name and the theme's structural hash, so applying the same
// theme twice changes nothing. Rules.Cascade merges the registered rules into
// attribute sets of matching elements.
package components
