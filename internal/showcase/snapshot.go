package showcase

import (
	"github.com/alexisbeaulieu97/themekit/internal/ui/components"
)

// RuleView is a global rule as reported to users.
type RuleView struct {
	components.Rule `yaml:",inline"`
	CSS             string `json:"css" yaml:"css"`
}

// Entry is the resolved attribute set of one mounted button.
type Entry struct {
	Label   string                `json:"label" yaml:"label"`
	Variant components.Variant    `json:"variant" yaml:"variant"`
	Attrs   components.StyleAttrs `json:"attrs" yaml:"attrs"`
}

// Snapshot is everything the page computed from its theme, without the
// terminal rendering. Two mounts of the same layout under equal themes
// produce equal snapshots.
type Snapshot struct {
	Theme   components.Theme `json:"theme" yaml:"theme"`
	Mode    components.Mode  `json:"mode" yaml:"mode"`
	Rules   []RuleView       `json:"rules" yaml:"rules"`
	Buttons []Entry          `json:"buttons" yaml:"buttons"`
}

// Snapshot resolves every button against the scope's context.
func (s *Showcase) Snapshot() Snapshot {
	ctx := s.scope.Context()

	rules := make([]RuleView, 0, len(ctx.Rules))
	for _, r := range ctx.Rules {
		rules = append(rules, RuleView{Rule: r, CSS: r.CSS()})
	}

	entries := make([]Entry, 0, len(s.buttons))
	for _, b := range s.buttons {
		entries = append(entries, Entry{
			Label:   b.Label(),
			Variant: b.Variant(),
			Attrs:   b.Attributes(ctx),
		})
	}

	return Snapshot{
		Theme:   ctx.Theme,
		Mode:    ctx.Mode,
		Rules:   rules,
		Buttons: entries,
	}
}
