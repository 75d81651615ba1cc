package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	slideerrors "github.com/alexisbeaulieu97/slidepreview/pkg/errors"
)

// Validate checks field formats and ranges.
func Validate(cfg Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError normalizes validator errors into slidepreview validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return slideerrors.NewValidationError(field, msg, err)
	}

	return slideerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name and lowercases the rest:
// Config.ThemeRepo.URL becomes themerepo.url.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
