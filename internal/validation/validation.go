// Package validation runs declarative request rules and collects
// field-keyed message keys the HTTP layer localizes.
package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/guttosm/order-service/internal/domain/dto"
	"github.com/guttosm/order-service/internal/domain/model"
	"github.com/guttosm/order-service/internal/i18n"
)

// RuleSet names the message key for each field/rule pair of one request type.
type RuleSet struct {
	// Messages maps "field.rule" to a message key. Array indexes are written as "*",
	// e.g. "detalle.*.precio.numeric".
	Messages map[string]string
	// TypeRules names the rule reported when a JSON field has the wrong type.
	TypeRules map[string]string
}

// messageKey resolves the key for a concrete field path such as "detalle.3.precio".
func (r RuleSet) messageKey(field, rule string) string {
	if key, ok := r.Messages[wildcard(field)+"."+rule]; ok {
		return key
	}
	return i18n.ValKeyInvalid
}

// Validator wraps a configured go-playground validator.
type Validator struct {
	validate *validator.Validate
}

var (
	defaultValidator *Validator
	validatorOnce    sync.Once
)

// Default returns the shared Validator.
func Default() *Validator {
	validatorOnce.Do(func() {
		defaultValidator = New()
	})
	return defaultValidator
}

// New builds a Validator that reports json/form field names and understands
// dto.Amount, dto.ID and the "date" rule.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		switch val := field.Interface().(type) {
		case dto.Amount:
			return val.ValidationValue()
		case dto.ID:
			return val.ValidationValue()
		}
		return nil
	}, dto.Amount{}, dto.ID{})

	// Only fails on registration programming errors.
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := model.ParseDate(fl.Field().String())
		return err == nil
	})

	return &Validator{validate: v}
}

// Struct validates s against its `validate` tags. The result is empty when s is valid.
func (v *Validator) Struct(s interface{}, rules RuleSet) Errors {
	errs := Errors{}

	err := v.validate.Struct(s)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.Add("", i18n.ValKeyInvalid)
		return errs
	}

	for _, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		errs.Add(field, rules.messageKey(field, fe.Tag()))
	}
	return errs
}

// DecodeError converts a JSON type mismatch into field errors.
// ok is false for errors that are not type mismatches, such as malformed JSON.
func (v *Validator) DecodeError(err error, rules RuleSet) (Errors, bool) {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return nil, false
	}

	errs := Errors{}
	field := typeErr.Field
	rule, ok := rules.TypeRules[wildcard(field)]
	if !ok {
		errs.Add(field, i18n.ValKeyInvalid)
		return errs, true
	}
	errs.Add(field, rules.messageKey(field, rule))
	return errs, true
}

// DecodeFailure reports every failing field of a body that decoded only in
// part: the type mismatch in err plus the rule violations of s, which holds
// whatever did decode. Fields under a mistyped field are not reported twice.
// ok is false when err is not a type mismatch.
func (v *Validator) DecodeFailure(err error, s interface{}, rules RuleSet) (Errors, bool) {
	errs, ok := v.DecodeError(err, rules)
	if !ok {
		return nil, false
	}

	rest := v.Struct(s, rules)
	for field := range rest {
		if errs.covers(field) {
			delete(rest, field)
		}
	}
	errs.Merge(rest)
	return errs, true
}

// fieldPath turns "CreateOrderRequest.detalle[0].precio" into "detalle.0.precio".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		namespace = namespace[i+1:]
	}
	namespace = strings.ReplaceAll(namespace, "[", ".")
	return strings.ReplaceAll(namespace, "]", "")
}

// wildcard replaces numeric path segments with "*".
func wildcard(field string) string {
	parts := strings.Split(field, ".")
	for i, p := range parts {
		if p != "" && strings.Trim(p, "0123456789") == "" {
			parts[i] = "*"
		}
	}
	return strings.Join(parts, ".")
}
