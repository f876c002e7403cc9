package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Element is the render target of a component, the terminal counterpart
// of an HTML tag.
type Element int

const (
	ElementButton Element = iota
	ElementAnchor
)

// Tag returns the tag name used in rule selectors and serialised output.
func (e Element) Tag() string {
	if e == ElementAnchor {
		return "a"
	}
	return "button"
}

// String implements fmt.Stringer.
func (e Element) String() string {
	return e.Tag()
}

// ParseElement converts a tag name into an Element. The empty string is a button.
func ParseElement(value string) (Element, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "button":
		return ElementButton, nil
	case "a", "anchor":
		return ElementAnchor, nil
	default:
		return ElementButton, fmt.Errorf("unknown element %q", value)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Element) MarshalText() ([]byte, error) {
	return []byte(e.Tag()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Element) UnmarshalText(text []byte) error {
	parsed, err := ParseElement(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// BorderKind is the outline drawn around a component.
type BorderKind int

const (
	BorderNone BorderKind = iota
	BorderSolid
	BorderRounded
	BorderDouble
)

var borderNames = [...]string{
	BorderNone:    "none",
	BorderSolid:   "solid",
	BorderRounded: "rounded",
	BorderDouble:  "double",
}

func (b BorderKind) String() string {
	if b < 0 || int(b) >= len(borderNames) {
		return borderNames[BorderNone]
	}
	return borderNames[b]
}

// MarshalText implements encoding.TextMarshaler.
func (b BorderKind) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Lipgloss returns the lipgloss border for the kind.
func (b BorderKind) Lipgloss() lipgloss.Border {
	switch b {
	case BorderSolid:
		return lipgloss.NormalBorder()
	case BorderRounded:
		return lipgloss.RoundedBorder()
	case BorderDouble:
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.HiddenBorder()
	}
}

// Interaction holds the colours a component switches to in an interaction
// state. Unset fields keep the resting value.
type Interaction struct {
	Background  Color `json:"background,omitempty" yaml:"background,omitempty"`
	Foreground  Color `json:"foreground,omitempty" yaml:"foreground,omitempty"`
	BorderColor Color `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
}

// StyleAttrs is the resolved set of visual attributes for one component.
type StyleAttrs struct {
	Element     Element     `json:"element" yaml:"element"`
	Type        string      `json:"type,omitempty" yaml:"type,omitempty"`
	Background  Color       `json:"background" yaml:"background"`
	Foreground  Color       `json:"foreground" yaml:"foreground"`
	Border      BorderKind  `json:"border" yaml:"border"`
	BorderColor Color       `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
	FontFamily  string      `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	Hover       Interaction `json:"hover" yaml:"hover"`
	Focus       Interaction `json:"focus" yaml:"focus"`
}

// Missing lists required attributes that carry no value.
// The border colour is only required when a border is drawn.
func (a StyleAttrs) Missing() []string {
	var missing []string
	if !a.Background.IsSet() {
		missing = append(missing, "background")
	}
	if !a.Foreground.IsSet() {
		missing = append(missing, "foreground")
	}
	if a.Border != BorderNone && !a.BorderColor.IsSet() {
		missing = append(missing, "borderColor")
	}
	return missing
}

// Complete reports whether no required attribute is missing.
func (a StyleAttrs) Complete() bool {
	return len(a.Missing()) == 0
}

// Hovered returns the attribute set with the hover hook applied.
func (a StyleAttrs) Hovered() StyleAttrs {
	return a.overlay(a.Hover)
}

// Focused returns the attribute set with the focus hook applied.
func (a StyleAttrs) Focused() StyleAttrs {
	return a.overlay(a.Focus)
}

func (a StyleAttrs) overlay(in Interaction) StyleAttrs {
	if in.Background.IsSet() {
		a.Background = in.Background
	}
	if in.Foreground.IsSet() {
		a.Foreground = in.Foreground
	}
	if in.BorderColor.IsSet() {
		a.BorderColor = in.BorderColor
	}
	return a
}

// Style converts the attribute set into a lipgloss style.
func (a StyleAttrs) Style() lipgloss.Style {
	return a.ApplyTo(lipgloss.NewStyle())
}

// ApplyTo sets the attribute colours and border on base. Spacing and text
// decoration already present on base are kept.
func (a StyleAttrs) ApplyTo(base lipgloss.Style) lipgloss.Style {
	style := base.
		Background(a.Background.Terminal()).
		Foreground(a.Foreground.Terminal())

	if a.Border != BorderNone {
		style = style.
			Border(a.Border.Lipgloss()).
			BorderForeground(a.BorderColor.Terminal())
	}
	return style
}
