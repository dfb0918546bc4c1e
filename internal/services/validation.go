package services

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// custom validation tags & texts
const (
	notBlankTag         = "notblank"
	notBlankText        = "{0} cannot be blank"
	answerInOptionsTag  = "answer_in_options"
	answerInOptionsText = "{0} must be one of the options"
)

// ValidationError is returned when a draft fails validation.
// Fields maps the JSON path of every invalid field to its message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	paths := make([]string, 0, len(e.Fields))
	for path := range e.Fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		parts = append(parts, fmt.Sprintf("%s: %s", path, e.Fields[path]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// Validator validates drafts using struct tags, reporting errors by JSON name
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator creates a validator with english messages and the custom course tags registered
func NewValidator() *Validator {
	validate := validator.New()

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v := &Validator{
		validate:   validate,
		translator: translator,
	}

	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
	_ = validate.RegisterValidation(answerInOptionsTag, answerInOptionsValidation)
	v.registerCustomTranslation(notBlankTag, notBlankText)
	v.registerCustomTranslation(answerInOptionsTag, answerInOptionsText)

	return v
}

// Struct validates s and returns a *ValidationError listing every invalid field
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return fmt.Errorf("failed to validate: %w", err)
	}

	fields := make(map[string]string, len(vErrs))
	for _, vErr := range vErrs {
		fields[fieldPath(vErr.Namespace())] = vErr.Translate(v.translator)
	}
	return &ValidationError{Fields: fields}
}

func (v *Validator) registerCustomTranslation(tag, text string) {
	_ = v.validate.RegisterTranslation(
		tag, v.translator,
		func(t ut.Translator) error { return t.Add(tag, text, false) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// fieldPath drops the root struct name from a validator namespace
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

// answerInOptionsValidation checks that a question answer equals one of its sibling options
func answerInOptionsValidation(fl validator.FieldLevel) bool {
	answer := fl.Field().String()

	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return false
	}
	options := parent.FieldByName("Options")
	if !options.IsValid() || options.Kind() != reflect.Slice {
		return false
	}

	for i := 0; i < options.Len(); i++ {
		if options.Index(i).String() == answer {
			return true
		}
	}
	return false
}
