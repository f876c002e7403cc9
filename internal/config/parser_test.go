package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/ui/components"
	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func TestParseDocument(t *testing.T) {
	t.Parallel()

	validYAML := `theme:
  dark:
    primary: "#000"
    text: "#fff"
  light:
    primary: "#fff"
    text: "#000"
  fontFamily: "Segoe UI"
logo: art/logo.txt
buttons:
  - label: Styled Button
  - label: Fancy Button
    variant: fancy
    as: a
`

	invalidYAML := `theme: [1, 2]
buttons:
  - label: x
`

	badColour := `theme:
  dark: {primary: "black", text: "#fff"}
  light: {primary: "#fff", text: "#000"}
buttons:
  - label: x
`

	noButtons := `theme:
  dark: {primary: "#000", text: "#fff"}
  light: {primary: "#fff", text: "#000"}
`

	incompletePalette := `theme:
  dark: {primary: "#000", text: "#fff"}
  light: {primary: "#fff"}
buttons:
  - label: x
`

	badElement := `theme:
  dark: {primary: "#000", text: "#fff"}
  light: {primary: "#fff", text: "#000"}
buttons:
  - label: x
    as: div
`

	badFont := `theme:
  dark: {primary: "#000", text: "#fff"}
  light: {primary: "#fff", text: "#000"}
  fontFamily: "Arial; color: red"
buttons:
  - label: x
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *Document, path string, err error)
	}{
		{
			name:     "valid document is parsed",
			contents: validYAML,
			assert: func(t *testing.T, doc *Document, path string, err error) {
				require.NoError(t, err)
				require.NotNil(t, doc)
				require.Equal(t, components.DefaultTheme(), doc.Theme.ToTheme())
				require.Len(t, doc.Buttons, 2)
				require.Equal(t, "a", doc.Buttons[1].As)
				require.Equal(t, filepath.Join(filepath.Dir(path), "art", "logo.txt"), doc.Logo)
			},
		},
		{
			name:     "yaml syntax errors surface as parse errors",
			contents: invalidYAML,
			assert: func(t *testing.T, doc *Document, path string, err error) {
				require.Nil(t, doc)
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, path, parseErr.Path)
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "colours must be hex",
			contents: badColour,
			assert: func(t *testing.T, doc *Document, path string, err error) {
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "theme.dark.primary", valErr.Field)
			},
		},
		{
			name:     "document palettes must be complete",
			contents: incompletePalette,
			assert: func(t *testing.T, doc *Document, path string, err error) {
				require.Nil(t, doc)
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "theme.light.text", valErr.Field)
			},
		},
		{
			name:     "at least one button is required",
			contents: noButtons,
			assert: func(t *testing.T, doc *Document, path string, err error) {
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "buttons", valErr.Field)
			},
		},
		{
			name:     "element must be known",
			contents: badElement,
			assert: func(t *testing.T, doc *Document, path string, err error) {
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "buttons[0].as", valErr.Field)
			},
		},
		{
			name:     "font family may not carry declarations",
			contents: badFont,
			assert: func(t *testing.T, doc *Document, path string, err error) {
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "theme.fontFamily", valErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "showcase.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o644))

			doc, err := ParseDocument(path)
			tc.assert(t, doc, path, err)
		})
	}
}

func TestParseDocumentMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultDocumentIsValid(t *testing.T) {
	t.Parallel()

	doc := DefaultDocument()
	require.NoError(t, ValidateDocument(doc))
	require.Equal(t, components.DefaultTheme(), doc.Theme.ToTheme())
	require.Len(t, doc.Buttons, 5)
}

func TestValidateNilDocument(t *testing.T) {
	t.Parallel()

	var valErr *apperrors.ValidationError
	require.ErrorAs(t, ValidateDocument(nil), &valErr)
}
