package style

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/slidepreview/internal/contrast"
	slideerrors "github.com/alexisbeaulieu97/slidepreview/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,31}$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			return contrast.Valid(fl.Field().String())
		})

		_ = v.RegisterValidation("font_face", func(fl validator.FieldLevel) bool {
			return IsFontFace(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			return themeNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validator returns the shared validator with the style tags registered.
func Validator() *validator.Validate {
	return validatorInstance()
}

// IsFontFace reports whether face is one of FontFaces.
func IsFontFace(face string) bool {
	for _, known := range FontFaces {
		if strings.EqualFold(face, known) {
			return true
		}
	}
	return false
}

// Validate checks a configuration before it is accepted as an edit.
func (c Configuration) Validate() error {
	return convertValidationError(validatorInstance().Struct(c))
}

// Validate checks a theme definition, including its configuration.
func (t Theme) Validate() error {
	return convertValidationError(validatorInstance().Struct(t))
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return slideerrors.NewValidationError(field, msg, err)
	}

	return slideerrors.NewValidationError("style", err.Error(), err)
}

func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
