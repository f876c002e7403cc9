package components

import (
	"fmt"
	"strings"
)

// Mode selects which palette of a theme is ambient for a scope.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// ParseMode converts "light" or "dark" into a Mode. The empty string is light.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return ModeLight, fmt.Errorf("unknown mode %q (want light or dark)", value)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Palette is a primary/text colour pair for one mode.
type Palette struct {
	Primary Color `json:"primary" yaml:"primary"`
	Text    Color `json:"text" yaml:"text"`
}

// IsComplete reports whether both slots carry a colour.
func (p Palette) IsComplete() bool {
	return p.Primary.IsSet() && p.Text.IsSet()
}

// Theme is an immutable styling theme. It is a plain value: copies are cheap
// and nothing in this package writes to a Theme after it is built.
type Theme struct {
	Dark       Palette `json:"dark" yaml:"dark"`
	Light      Palette `json:"light" yaml:"light"`
	FontFamily string  `json:"fontFamily" yaml:"fontFamily"`
}

// DefaultTheme returns the stock black/white theme with Segoe UI typography.
func DefaultTheme() Theme {
	return Theme{
		Dark: Palette{
			Primary: "#000",
			Text:    "#fff",
		},
		Light: Palette{
			Primary: "#fff",
			Text:    "#000",
		},
		FontFamily: "Segoe UI",
	}
}

// Palette returns the palette for the given mode.
func (t Theme) Palette(mode Mode) Palette {
	if mode == ModeDark {
		return t.Dark
	}
	return t.Light
}

// IsZero reports whether the theme carries no values at all.
func (t Theme) IsZero() bool {
	return t == Theme{}
}

// IsComplete reports whether every field of the theme has been supplied.
func (t Theme) IsComplete() bool {
	return t.Dark.IsComplete() && t.Light.IsComplete() && strings.TrimSpace(t.FontFamily) != ""
}

// WithFontFamily returns a copy of the theme using the given font family.
func (t Theme) WithFontFamily(family string) Theme {
	t.FontFamily = family
	return t
}
