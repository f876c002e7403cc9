package config

import (
	"github.com/alexisbeaulieu97/themekit/internal/ui/components"
)

// ResolvedButton is a ButtonSpec with its names turned into typed values.
type ResolvedButton struct {
	Label   string
	Variant components.Variant
	As      components.Element
}

// Issue is a non-fatal problem found while resolving a document.
type Issue struct {
	Field string
	Err   error
}

// ResolveButtons converts the button specs. Unknown variant or element
// names never fail the document: the button falls back to the default
// treatment and an Issue records what happened.
func (d *Document) ResolveButtons() ([]ResolvedButton, []Issue) {
	if d == nil {
		return nil, nil
	}

	buttons := make([]ResolvedButton, 0, len(d.Buttons))
	var issues []Issue
	for i, spec := range d.Buttons {
		variant, err := components.ParseVariant(spec.Variant)
		if err != nil {
			issues = append(issues, Issue{Field: fieldForButton(i, "variant"), Err: err})
		}

		as, err := components.ParseElement(spec.As)
		if err != nil {
			issues = append(issues, Issue{Field: fieldForButton(i, "as"), Err: err})
		}

		buttons = append(buttons, ResolvedButton{Label: spec.Label, Variant: variant, As: as})
	}
	return buttons, issues
}
