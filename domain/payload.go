package domain

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Payload is a decoded request body before it is validated into an entity.
type Payload map[string]any

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so errors match the payload keys
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// requireStrings reads every key as a non-empty string. All keys are checked
// for presence before any of them is checked for type.
func requireStrings(entity string, p Payload, keys ...string) (map[string]string, error) {
	for _, key := range keys {
		v, ok := p[key]
		if !ok || v == nil {
			return nil, &ValidationError{Entity: entity, Property: key, Kind: MissingProperty}
		}
		if s, isString := v.(string); isString && s == "" {
			return nil, &ValidationError{Entity: entity, Property: key, Kind: MissingProperty}
		}
	}

	res := make(map[string]string, len(keys))
	for _, key := range keys {
		s, ok := p[key].(string)
		if !ok {
			return nil, &ValidationError{Entity: entity, Property: key, Kind: TypeMismatch}
		}
		res[key] = s
	}
	return res, nil
}

// validateStruct runs the struct tags of what storage returned and reports
// the first failing field. Payloads go through requireStrings instead.
func validateStruct(entity string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		kind := TypeMismatch
		if fe.Tag() == "required" {
			kind = MissingProperty
		}
		return &ValidationError{Entity: entity, Property: fe.Field(), Kind: kind}
	}
	return err
}
