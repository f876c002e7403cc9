package config

import (
	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// ValidateDocument performs structural validation on a whole document.
// Variant names are deliberately not checked here; see Document.ResolveButtons.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return apperrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	return nil
}
