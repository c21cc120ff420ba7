package task

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const (
	// MaxTitleLength is the longest accepted task title, in characters
	MaxTitleLength = 50
	// MaxDescriptionLength is the longest accepted task description, in characters
	MaxDescriptionLength = 200

	requiredTag  = "required"
	requiredText = "this field is required"
)

// field-specific overrides, keyed by "<json field>.<tag>"
var fieldMessages = map[string]string{
	"assignee.required": "select an assignee",
	"assigned_to.min":   "select at least one assignee",
	"assigned_to.gt":    "select a valid assignee",
}

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	locale := en.New()
	translator, _ = ut.New(locale, locale).GetTranslator("en")

	validate = validator.New()
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterTranslation(
		requiredTag, translator,
		func(t ut.Translator) error { return t.Add(requiredTag, requiredText, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(requiredTag, fe.Field())
			return s
		},
	)
}

// FieldError is used to indicate an error with a specific field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError carries every field that failed validation
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func (err *ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	if len(err.Fields) == 0 {
		return err.Err.Error()
	}
	parts := make([]string, 0, len(err.Fields))
	for _, f := range err.Fields {
		parts = append(parts, f.Field+": "+f.Error)
	}
	return fmt.Sprintf("%s: %s", err.Err, strings.Join(parts, "; "))
}

func (err *ValidationError) Unwrap() error {
	return err.Err
}

// FieldError returns the message for field, or "" if it passed
func (err *ValidationError) FieldError(field string) string {
	for _, f := range err.Fields {
		if f.Field == field {
			return f.Error
		}
	}
	return ""
}

// FieldErrors extracts the per-field messages from err, if it is a validation error
func FieldErrors(err error) map[string]string {
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		return nil
	}
	out := make(map[string]string, len(vErr.Fields))
	for _, f := range vErr.Fields {
		out[f.Field] = f.Error
	}
	return out
}

// CreateInput holds the fields of the new task form. Exactly one assignee.
type CreateInput struct {
	Title       string `json:"title" validate:"required,max=50"`
	Description string `json:"description" validate:"required,max=200"`
	Assignee    int    `json:"assignee" validate:"required"`
}

// Validate trims the text fields and checks them against the task rules
func (in *CreateInput) Validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	return toValidationError(validate.Struct(in))
}

// EditInput holds the fields of the edit form. One or more assignees.
type EditInput struct {
	Title       string `json:"title" validate:"required,max=50"`
	Description string `json:"description" validate:"required,max=200"`
	AssignedTo  []int  `json:"assigned_to" validate:"min=1,dive,gt=0"`
}

// Validate trims the text fields and checks them against the task rules
func (in *EditInput) Validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	return toValidationError(validate.Struct(in))
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return fmt.Errorf("failed to validate task: %w", err)
	}

	fields := make([]FieldError, 0, len(vErrs))
	seen := make(map[string]bool)
	for _, fe := range vErrs {
		// dive errors are reported as assigned_to[0]; fold them into the list field
		name := fe.Field()
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		msg, ok := fieldMessages[name+"."+fe.Tag()]
		if !ok {
			msg = fe.Translate(translator)
		}
		fields = append(fields, FieldError{Field: name, Error: msg})
	}
	return &ValidationError{Err: ErrInvalidTask, Fields: fields}
}
