package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator validates structs against their `validate` tags.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a Validator backed by go-playground/validator.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &StructValidator{validate: v}
}

// Validate checks obj, which must be a struct or a pointer to one. When
// fields are given only those struct fields (Go names) are checked.
//
// Rule violations are returned joined with ErrValidationFailed; the
// underlying validator.ValidationErrors stays reachable via errors.As.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if !isStruct(obj) {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) {
		return fmt.Errorf("%w: %s: %w", ErrValidationFailed, describe(violations), violations)
	}

	return fmt.Errorf("%w: %w", ErrValidationFailed, err)
}

func isStruct(obj any) bool {
	t := reflect.TypeOf(obj)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		if reflect.ValueOf(obj).IsNil() {
			return false
		}
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// describe renders violations as "field: rule" pairs.
func describe(violations validator.ValidationErrors) string {
	parts := make([]string, 0, len(violations))
	for _, fe := range violations {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
