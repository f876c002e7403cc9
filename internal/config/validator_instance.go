package config

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		// Font families are emitted verbatim into style rules, so control
		// characters and declaration delimiters are rejected.
		_ = v.RegisterValidation("font_family", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if strings.TrimSpace(value) != value {
				return false
			}
			for _, r := range value {
				if unicode.IsControl(r) || r == ';' || r == '{' || r == '}' {
					return false
				}
			}
			return true
		})

		validateInst = v
	})

	return validateInst
}
