package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseDocument loads a document from disk, validates it, and returns the
// result. A relative logo path is resolved against the document's directory.
func ParseDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	doc, err := DecodeDocument(data, path)
	if err != nil {
		return nil, err
	}

	if doc.Logo != "" && !filepath.IsAbs(doc.Logo) {
		doc.Logo = filepath.Join(filepath.Dir(path), doc.Logo)
	}
	return doc, nil
}

// DecodeDocument parses and validates YAML bytes. name is only used in errors.
func DecodeDocument(data []byte, name string) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.NewParseError(name, extractLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
