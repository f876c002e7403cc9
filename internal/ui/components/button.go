package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Variant selects the visual treatment of a button.
type Variant int

const (
	VariantDefault Variant = iota
	VariantOutline
	VariantFancy
	VariantSubmit
	VariantDark
)

// ErrUnknownVariant is returned by ParseVariant for names it does not know.
var ErrUnknownVariant = errors.New("unknown variant")

var variantNames = map[Variant]string{
	VariantDefault: "default",
	VariantOutline: "outline",
	VariantFancy:   "fancy",
	VariantSubmit:  "submit",
	VariantDark:    "dark",
}

// Variants lists the recognised variants in declaration order.
func Variants() []Variant {
	return []Variant{VariantDefault, VariantOutline, VariantFancy, VariantSubmit, VariantDark}
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return variantNames[VariantDefault]
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// ParseVariant converts a variant name. Unknown names yield VariantDefault
// together with an error wrapping ErrUnknownVariant, so callers can report
// the problem and still render.
func ParseVariant(name string) (Variant, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return VariantDefault, nil
	}
	for v, n := range variantNames {
		if n == normalized {
			return v, nil
		}
	}
	return VariantDefault, fmt.Errorf("%w %q", ErrUnknownVariant, name)
}

// StyleProps are per-instance overrides merged with the variant and theme.
type StyleProps struct {
	As Element
}

// Fixed brand colours for variants that do not follow the theme.
const (
	fancyBackground  Color = "#7c3aed"
	fancyText        Color = "#ffffff"
	fancyBorder      Color = "#f472b6"
	submitBackground Color = "#16a34a"
	submitText       Color = "#ffffff"
	submitBorder     Color = "#15803d"
)

// hoverMix is how far the hover background moves toward the text colour.
const hoverMix = 0.2

type variantResolver func(theme Theme, mode Mode) StyleAttrs

var buttonVariants = map[Variant]variantResolver{
	VariantDefault: func(theme Theme, mode Mode) StyleAttrs {
		p := theme.Palette(mode)
		return StyleAttrs{
			Background:  p.Primary,
			Foreground:  p.Text,
			Border:      BorderSolid,
			BorderColor: p.Text,
		}
	},
	VariantOutline: func(theme Theme, mode Mode) StyleAttrs {
		return StyleAttrs{
			Background:  Transparent,
			Foreground:  theme.Palette(mode).Text,
			Border:      BorderSolid,
			BorderColor: theme.Light.Primary,
		}
	},
	VariantFancy: func(Theme, Mode) StyleAttrs {
		return StyleAttrs{
			Background:  fancyBackground,
			Foreground:  fancyText,
			Border:      BorderDouble,
			BorderColor: fancyBorder,
		}
	},
	VariantSubmit: func(Theme, Mode) StyleAttrs {
		return StyleAttrs{
			Type:        "submit",
			Background:  submitBackground,
			Foreground:  submitText,
			Border:      BorderRounded,
			BorderColor: submitBorder,
		}
	},
	VariantDark: func(theme Theme, _ Mode) StyleAttrs {
		return StyleAttrs{
			Background:  theme.Dark.Primary,
			Foreground:  theme.Dark.Text,
			Border:      BorderSolid,
			BorderColor: theme.Dark.Text,
		}
	},
}

// ResolveStyle maps a variant, the instance props and the theme to an
// attribute set. It is pure: equal inputs give equal outputs. Unknown
// variants get the default treatment. Global rules are not applied here;
// see Rules.Cascade.
func ResolveStyle(theme Theme, mode Mode, variant Variant, props StyleProps) StyleAttrs {
	resolve, ok := buttonVariants[variant]
	if !ok {
		resolve = buttonVariants[VariantDefault]
	}

	attrs := resolve(theme, mode)
	attrs.Element = props.As
	switch {
	case props.As == ElementAnchor:
		attrs.Type = ""
	case attrs.Type == "":
		attrs.Type = "button"
	}

	attrs.Hover = Interaction{Background: attrs.Background.Mix(attrs.Foreground, hoverMix)}
	attrs.Focus = Interaction{BorderColor: attrs.Foreground}
	return attrs
}

// elementRenderer draws a label for one render target.
type elementRenderer interface {
	render(label string, attrs StyleAttrs, base lipgloss.Style) string
}

func rendererFor(e Element) elementRenderer {
	if e == ElementAnchor {
		return anchorRenderer{}
	}
	return boxRenderer{}
}

// boxRenderer draws a padded, bordered box.
type boxRenderer struct{}

func (boxRenderer) render(label string, attrs StyleAttrs, base lipgloss.Style) string {
	style := attrs.ApplyTo(base)
	if style.GetPaddingLeft() == 0 && style.GetPaddingRight() == 0 {
		style = style.Padding(0, 2)
	}
	return style.Render(label)
}

// anchorRenderer draws an underlined link-style label inside the variant's border.
type anchorRenderer struct{}

func (anchorRenderer) render(label string, attrs StyleAttrs, base lipgloss.Style) string {
	style := attrs.ApplyTo(base).Underline(true)
	if style.GetPaddingLeft() == 0 && style.GetPaddingRight() == 0 {
		style = style.Padding(0, 1)
	}
	return style.Render(label)
}

// Button is a themed button. It holds no render state: every view is
// recomputed from its configuration and the render context.
type Button struct {
	BaseComponent
	label    string
	variant  Variant
	props    StyleProps
	renderer elementRenderer
	focused  bool
	hovered  bool
}

// NewButton creates a default-variant button rendered as a button element.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       VariantDefault,
		renderer:      rendererFor(ElementButton),
	}
}

// View renders the button outside any scope.
func (b *Button) View() string {
	return b.ViewWithContext(UnscopedContext())
}

// ViewWithContext renders the button with the given render context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	attrs := b.Attributes(ctx)
	if b.hovered {
		attrs = attrs.Hovered()
	}

	base := b.ComputeStyle(ctx)
	if b.focused {
		attrs = attrs.Focused()
		base = base.Bold(true)
	}
	return b.renderer.render(b.label, attrs, base)
}

// Attributes returns the resolved attribute set with the context's global
// rules cascaded in.
func (b *Button) Attributes(ctx RenderContext) StyleAttrs {
	return ctx.Rules.Cascade(ResolveStyle(ctx.Theme, ctx.Mode, b.variant, b.props))
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant Variant) *Button {
	b.variant = variant
	return b
}

// WithAs sets the render target and picks the matching renderer.
func (b *Button) WithAs(element Element) *Button {
	b.props.As = element
	b.renderer = rendererFor(element)
	return b
}

// WithFocus sets the focus state.
func (b *Button) WithFocus(focused bool) *Button {
	b.focused = focused
	return b
}

// WithHover sets the hover state.
func (b *Button) WithHover(hovered bool) *Button {
	b.hovered = hovered
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Variant returns the button variant.
func (b *Button) Variant() Variant {
	return b.variant
}

// Element returns the render target.
func (b *Button) Element() Element {
	return b.props.As
}

// IsFocused returns true if the button has focus.
func (b *Button) IsFocused() bool {
	return b.focused
}

// IsHovered returns true if the button is hovered.
func (b *Button) IsHovered() bool {
	return b.hovered
}

// Convenience constructors for the variants

// StyledButton creates a default button.
func StyledButton(label string) *Button {
	return NewButton(label)
}

// OutlineButton creates an outline button.
func OutlineButton(label string) *Button {
	return NewButton(label).WithVariant(VariantOutline)
}

// FancyButton creates a fancy button with the fixed brand palette.
func FancyButton(label string) *Button {
	return NewButton(label).WithVariant(VariantFancy)
}

// SubmitButton creates a submit button with the fixed brand palette.
func SubmitButton(label string) *Button {
	return NewButton(label).WithVariant(VariantSubmit)
}

// DarkButton creates a button that always uses the dark palette.
func DarkButton(label string) *Button {
	return NewButton(label).WithVariant(VariantDark)
}
