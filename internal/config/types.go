package config

import (
	"github.com/alexisbeaulieu97/themekit/internal/ui/components"
)

// Document is the YAML description of a showcase: the theme to provide, an
// optional logo asset and the buttons to stack under it.
type Document struct {
	Theme   ThemeSpec    `yaml:"theme"`
	Logo    string       `yaml:"logo,omitempty"`
	Buttons []ButtonSpec `yaml:"buttons" validate:"required,min=1,dive"`
}

// ThemeSpec mirrors components.Theme with validation rules attached.
type ThemeSpec struct {
	Dark       PaletteSpec `yaml:"dark"`
	Light      PaletteSpec `yaml:"light"`
	FontFamily string      `yaml:"fontFamily,omitempty" validate:"omitempty,max=128,font_family"`
}

// PaletteSpec is one primary/text colour pair.
type PaletteSpec struct {
	Primary string `yaml:"primary" validate:"required,hexcolor"`
	Text    string `yaml:"text" validate:"required,hexcolor"`
}

// ButtonSpec describes one button of the showcase. Variant is free text on
// purpose: unknown names are reported and rendered with the default look.
type ButtonSpec struct {
	Label   string `yaml:"label" validate:"required,max=64"`
	Variant string `yaml:"variant,omitempty"`
	As      string `yaml:"as,omitempty" validate:"omitempty,oneof=button a anchor"`
}

// ToTheme converts the theme section into an immutable components.Theme.
func (t ThemeSpec) ToTheme() components.Theme {
	return components.Theme{
		Dark:       t.Dark.toPalette(),
		Light:      t.Light.toPalette(),
		FontFamily: t.FontFamily,
	}
}

func (p PaletteSpec) toPalette() components.Palette {
	return components.Palette{
		Primary: components.Color(p.Primary),
		Text:    components.Color(p.Text),
	}
}

// DefaultDocument describes the stock page: the logo followed by the five
// button treatments.
func DefaultDocument() *Document {
	theme := components.DefaultTheme()
	return &Document{
		Theme: ThemeSpec{
			Dark:       PaletteSpec{Primary: string(theme.Dark.Primary), Text: string(theme.Dark.Text)},
			Light:      PaletteSpec{Primary: string(theme.Light.Primary), Text: string(theme.Light.Text)},
			FontFamily: theme.FontFamily,
		},
		Buttons: []ButtonSpec{
			{Label: "Styled Button"},
			{Label: "Styled Button", Variant: "outline"},
			{Label: "Fancy Button", Variant: "fancy", As: "a"},
			{Label: "Submit Button", Variant: "submit"},
			{Label: "Dark Button", Variant: "dark"},
		},
	}
}
