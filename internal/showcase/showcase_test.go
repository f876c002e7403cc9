package showcase

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/ui/components"
)

func TestMountTwiceProducesIdenticalSnapshots(t *testing.T) {
	t.Parallel()

	first := Mount(components.Provide(components.DefaultTheme()), DefaultLayout()).Snapshot()
	second := Mount(components.Provide(components.DefaultTheme()), DefaultLayout()).Snapshot()

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestSnapshotDefaultPage(t *testing.T) {
	t.Parallel()

	theme := components.DefaultTheme()
	snap := Mount(components.Provide(theme), DefaultLayout()).Snapshot()

	require.Len(t, snap.Rules, 1)
	assert.Equal(t, "button { font-family: Segoe UI; }", snap.Rules[0].CSS)

	labels := make([]string, 0, len(snap.Buttons))
	for _, e := range snap.Buttons {
		labels = append(labels, e.Label)
		assert.True(t, e.Attrs.Complete(), e.Label)
	}
	assert.Equal(t, []string{"Styled Button", "Styled Button", "Fancy Button", "Submit Button", "Dark Button"}, labels)

	outline := snap.Buttons[1]
	assert.Equal(t, components.VariantOutline, outline.Variant)
	assert.Equal(t, components.Transparent, outline.Attrs.Background)
	assert.Equal(t, theme.Light.Primary, outline.Attrs.BorderColor)

	fancy := snap.Buttons[2]
	assert.Equal(t, components.ElementAnchor, fancy.Attrs.Element)

	submit := snap.Buttons[3]
	assert.Equal(t, "submit", submit.Attrs.Type)
	assert.Equal(t, "Segoe UI", submit.Attrs.FontFamily)
}

func TestSnapshotEncodesNames(t *testing.T) {
	t.Parallel()

	snap := Mount(components.Provide(components.DefaultTheme(), components.WithMode(components.ModeDark)), DefaultLayout()).Snapshot()

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"mode":"dark"`)
	assert.Contains(t, out, `"variant":"fancy"`)
	assert.Contains(t, out, `"element":"a"`)
	assert.Contains(t, out, `"name":"button-font"`)

	var decoded map[string]any
	yml, err := yaml.Marshal(snap)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(yml, &decoded))
	assert.Equal(t, "dark", decoded["mode"])
}

func TestSnapshotFollowsTheme(t *testing.T) {
	t.Parallel()

	other := components.DefaultTheme().WithFontFamily("Fira Sans")
	snap := Mount(components.Provide(other), DefaultLayout()).Snapshot()
	assert.Equal(t, "Fira Sans", snap.Rules[0].Declarations.FontFamily)
	assert.Equal(t, "Fira Sans", snap.Buttons[0].Attrs.FontFamily)
}

func TestFocusMovesBetweenButtons(t *testing.T) {
	t.Parallel()

	page := Mount(components.Provide(components.DefaultTheme()), DefaultLayout())
	assert.Equal(t, NoFocus, page.Focused())

	page.Focus(2)
	assert.Equal(t, 2, page.Focused())
	for i, b := range page.Buttons() {
		assert.Equal(t, i == 2, b.IsFocused())
	}

	page.Focus(99)
	assert.Equal(t, NoFocus, page.Focused())
	for _, b := range page.Buttons() {
		assert.False(t, b.IsFocused())
	}
}

func TestViewRendersLogoAndButtons(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)

	page := Mount(components.Provide(components.DefaultTheme()), DefaultLayout())
	out := page.View()

	assert.Contains(t, out, "Fancy Button")
	assert.Contains(t, out, "Dark Button")
	assert.Less(t, strings.Index(out, "Styled Button"), strings.Index(out, "Dark Button"))
	assert.Equal(t, out, page.View(), "views are stable between frames")

	page.SetFrame(1)
	assert.NotEqual(t, out, page.View(), "the logo glyph advances")

	page.SetFrame(0)
	page.SetHover(0, true)
	assert.NotEqual(t, out, page.View())
}

func TestViewIsPadded(t *testing.T) {
	t.Parallel()

	out := Mount(components.Provide(components.DefaultTheme()), DefaultLayout()).View()
	for _, line := range strings.Split(out, "\n") {
		assert.True(t, strings.HasPrefix(line, "  "), "%q", line)
		assert.True(t, strings.HasSuffix(line, "  "), "%q", line)
	}
}

func TestMountWithoutScope(t *testing.T) {
	t.Parallel()

	page := Mount(nil, DefaultLayout())
	snap := page.Snapshot()
	assert.Empty(t, snap.Rules)
	assert.True(t, snap.Theme.IsZero())
	assert.NotPanics(t, func() { _ = page.View() })
}
