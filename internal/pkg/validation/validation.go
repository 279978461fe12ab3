package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid matches every *Error via errors.Is.
var ErrInvalid = errors.New("validation failed")

// FieldError describes one failed constraint. Field is the JSON name.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Message is a human readable description of the failure.
func (f FieldError) Message() string {
	switch f.Rule {
	case "required":
		return "this field is required"
	case "max":
		return fmt.Sprintf("ensure this value has at most %s characters", f.Param)
	case "email":
		return "enter a valid email address"
	case "url":
		return "enter a valid URL"
	default:
		return fmt.Sprintf("failed on the %q rule", f.Rule)
	}
}

// Error is returned when a record violates one or more declared constraints.
type Error struct {
	Fields []FieldError `json:"fields"`
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message())
	}
	return ErrInvalid.Error() + ": " + strings.Join(parts, "; ")
}

func (e *Error) Is(target error) bool { return target == ErrInvalid }

// Has reports whether field failed any rule.
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Validator checks structs against their `validate` tags.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Struct validates s. Constraint failures come back as *Error; anything
// else (for example a nil argument) is returned as is.
func (v *Validator) Struct(s interface{}) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// AsError extracts a *Error from err.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
