// Package validate holds the validator engine shared by the record packages.
// Record packages register their field rules and cross-field rules at init
// time; Struct and DecodeJSON then turn every violation into a single *Error.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	engine   = newEngine()
	messages = map[string]func(validator.FieldError) string{}
)

func newEngine() *validator.Validate {
	v := validator.New()

	// Report JSON names so errors match the wire format.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	return v
}

// RegisterRule adds a field-level rule under tag. msg renders the message
// reported when the rule fails. It must be called before any validation,
// typically from an init function.
func RegisterRule(tag string, fn validator.Func, msg func(validator.FieldError) string) {
	if err := engine.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validate: cannot register rule %q: %v", tag, err))
	}
	if msg != nil {
		messages[tag] = msg
	}
}

// RegisterStructRule adds a cross-field rule run for each of the given types.
func RegisterStructRule(fn validator.StructLevelFunc, types ...any) {
	engine.RegisterStructValidation(fn, types...)
}

// RegisterMessage overrides the message rendered for tag. Struct-level rules
// report under their own tags and use this to describe the failure.
func RegisterMessage(tag string, msg func(validator.FieldError) string) {
	messages[tag] = msg
}

// Struct validates v and returns an *Error listing every violation.
func Struct(model string, v any) error {
	err := engine.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %s: %w", model, err)
	}

	out := &Error{Model: model}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath strips the top-level type name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	if fn, ok := messages[fe.Tag()]; ok {
		return fn(fe)
	}

	switch fe.Tag() {
	case "required":
		return "field required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("ensure this value has at most %s characters", fe.Param())
		}
		return fmt.Sprintf("ensure this value has at most %s items", fe.Param())
	case "gte":
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
	case "email":
		return "value is not a valid email address"
	case "url":
		return "invalid or missing URL scheme"
	case "http_url":
		return "invalid or missing http(s) URL"
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
