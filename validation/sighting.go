// Package validation declares the accepted shape of a sighting-report
// submission, independently of the storage schema. It is the only place the
// API's input contract is defined.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"monumentwatch/utils"
)

// InsertSighting is the well-typed creation payload produced by the gate.
// It deliberately has no id or timestamp fields; those keys are ignored when
// present in the request body because the store assigns them.
type InsertSighting struct {
	WitnessName  string  `json:"witnessName" validate:"required"`
	Location     string  `json:"location" validate:"required"`
	MonumentSeen string  `json:"monumentSeen" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Coordinates  *string `json:"coordinates"`
}

// FieldError describes a single rejected field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error is a structured validation failure listing every field that failed.
type Error struct {
	Fields []FieldError `json:"fields"`
}

// Error renders the failure as one descriptive message.
func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseInsertSighting decodes and validates a raw request body. It is a pure
// function: no storage or network side effects. On success the returned
// payload is normalized (trimmed, HTML stripped) and every required field is
// non-empty; otherwise the Error enumerates each failed field.
func ParseInsertSighting(raw []byte) (InsertSighting, *Error) {
	var payload InsertSighting
	if err := json.Unmarshal(raw, &payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return InsertSighting{}, &Error{Fields: []FieldError{
				{Field: typeErr.Field, Reason: fmt.Sprintf("must be a %s", expectedType(typeErr.Field))},
			}}
		}
		return InsertSighting{}, &Error{Fields: []FieldError{
			{Field: "body", Reason: "is not valid JSON"},
		}}
	}

	normalize(&payload)

	if err := validate.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]FieldError, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, FieldError{Field: fe.Field(), Reason: reason(fe)})
			}
			return InsertSighting{}, &Error{Fields: fields}
		}
		return InsertSighting{}, &Error{Fields: []FieldError{{Field: "body", Reason: "is invalid"}}}
	}

	return payload, nil
}

// normalize trims whitespace and strips HTML from every text field, so a
// value that is only whitespace or markup fails the required check below.
func normalize(p *InsertSighting) {
	p.WitnessName = clean(p.WitnessName)
	p.Location = clean(p.Location)
	p.MonumentSeen = clean(p.MonumentSeen)
	p.Description = clean(p.Description)
	if p.Coordinates != nil {
		c := clean(*p.Coordinates)
		if c == "" {
			p.Coordinates = nil
		} else {
			p.Coordinates = &c
		}
	}
}

func clean(s string) string {
	return strings.TrimSpace(utils.Sanitize(s))
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required and must not be empty"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func expectedType(field string) string {
	// All accepted fields are strings; keep the message honest if the
	// payload struct ever grows a non-string field.
	switch field {
	case "witnessName", "location", "monumentSeen", "description", "coordinates":
		return "string"
	default:
		return "valid value"
	}
}
