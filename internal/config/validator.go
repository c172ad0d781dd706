package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/ansikit/pkg/box"
	ansierrors "github.com/alexisbeaulieu97/ansikit/pkg/errors"
	"github.com/alexisbeaulieu97/ansikit/pkg/style"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	enumTags = map[string]bool{"foreground": true, "background": true, "format": true, "border": true}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("foreground", func(fl validator.FieldLevel) bool {
			_, err := style.ParseColor(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("background", func(fl validator.FieldLevel) bool {
			_, err := style.ParseBackground(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("format", func(fl validator.FieldLevel) bool {
			_, err := style.ParseFormat(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("border", func(fl validator.FieldLevel) bool {
			_, err := box.BorderByName(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return ansierrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// ValidateStruct validates any struct carrying validate tags with the
// config validator, including the color and border tags.
func ValidateStruct(v any) error {
	if err := validatorInstance().Struct(v); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if value, ok := ve.Value().(string); ok && enumTags[ve.Tag()] {
			msg = fmt.Sprintf("%s: %q is not a valid %s value", field, value, ve.Tag())
		}
		return ansierrors.NewValidationError(field, msg, err)
	}

	return ansierrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, which is
// already built from yaml tag names.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return strings.ToLower(ns)
}
