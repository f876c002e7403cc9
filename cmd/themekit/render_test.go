package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// isolate keeps user settings and THEMEKIT_* variables out of the run.
func isolate(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, key := range []string{"CONFIG", "MODE", "COLOR", "LOG_LEVEL", "FORMAT", "VERBOSE"} {
		t.Setenv("THEMEKIT_"+key, "")
		require.NoError(t, os.Unsetenv("THEMEKIT_"+key))
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeDocument(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const customDocument = `theme:
  dark: {primary: "#111827", text: "#f9fafb"}
  light: {primary: "#f9fafb", text: "#111827"}
  fontFamily: "Fira Sans"
buttons:
  - label: Go
  - label: Ghost
    variant: ghost
`

func TestRenderTextShowsDefaultPage(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "render", "--color", "ascii")
	require.NoError(t, err)
	for _, label := range []string{"Styled Button", "Fancy Button", "Submit Button", "Dark Button"} {
		assert.Contains(t, out, label)
	}
}

func TestRootRendersWithoutSubcommand(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "--color", "ascii")
	require.NoError(t, err)
	assert.Contains(t, out, "Submit Button")
}

func TestRenderJSONIsStable(t *testing.T) {
	isolate(t)

	first, _, err := execute(t, "render", "--format", "json", "--mode", "dark")
	require.NoError(t, err)
	second, _, err := execute(t, "render", "--format", "json", "--mode", "dark")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var snap struct {
		Mode  string `json:"mode"`
		Rules []struct {
			CSS string `json:"css"`
		} `json:"rules"`
		Buttons []struct {
			Label   string `json:"label"`
			Variant string `json:"variant"`
		} `json:"buttons"`
	}
	require.NoError(t, json.Unmarshal([]byte(first), &snap))
	assert.Equal(t, "dark", snap.Mode)
	require.Len(t, snap.Rules, 1)
	assert.Equal(t, "button { font-family: Segoe UI; }", snap.Rules[0].CSS)
	require.Len(t, snap.Buttons, 5)
	assert.Equal(t, "outline", snap.Buttons[1].Variant)
}

func TestRenderYAMLFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("THEMEKIT_FORMAT", "yaml")

	out, _, err := execute(t, "render")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "light", decoded["mode"])
}

func TestRenderCustomDocumentWarnsOnUnknownVariant(t *testing.T) {
	isolate(t)
	path := writeDocument(t, customDocument)

	out, errOut, err := execute(t, "render", "--config", path, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "Fira Sans")
	assert.Contains(t, errOut, "buttons[1].variant")
}

func TestRenderRejectsInvalidDocument(t *testing.T) {
	isolate(t)
	path := writeDocument(t, "theme:\n  dark: {primary: nope, text: \"#fff\"}\n  light: {primary: \"#fff\", text: \"#000\"}\nbuttons:\n  - label: x\n")

	_, _, err := execute(t, "render", "--config", path)
	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "theme.dark.primary", valErr.Field)
}

func TestRenderMissingLogoIsAnAssetError(t *testing.T) {
	isolate(t)
	path := writeDocument(t, customDocument+"logo: missing.txt\n")

	_, _, err := execute(t, "render", "--config", path)
	var assetErr *apperrors.AssetError
	require.ErrorAs(t, err, &assetErr)
}

func TestRenderRejectsUnknownMode(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "render", "--mode", "sepia")
	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "mode", valErr.Field)
}

func TestPreviewFallsBackWithoutTerminal(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "preview", "--color", "ascii")
	require.NoError(t, err)
	assert.Contains(t, out, "Dark Button")
}

func TestThemeCommandPrintsRules(t *testing.T) {
	isolate(t)
	path := writeDocument(t, customDocument)

	out, _, err := execute(t, "theme", "--config", path, "--mode", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "mode: dark")
	assert.Contains(t, out, "fontFamily: Fira Sans")
	assert.Contains(t, out, "button { font-family: Fira Sans; }")
}
