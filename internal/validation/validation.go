// Package validation wraps go-playground/validator with the custom rules and
// English messages used across mailschema.
package validation

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// SlugPattern is the pattern enforced by the "slug" rule.
const SlugPattern = `^[a-z][a-z0-9_]*$`

var slugRegex = regexp.MustCompile(SlugPattern)

var (
	// defaultValidator is shared by every caller so custom rules registered in
	// init are visible everywhere.
	defaultValidator = validator.New()
	defaultEn        = en.New()
	uni              = ut.New(defaultEn, defaultEn)
	trans, _         = uni.GetTranslator(defaultEn.Locale())
)

// FieldLevel is the field level interface.
type FieldLevel = validator.FieldLevel

// Violation is a single failed rule.
type Violation struct {
	Tag         string
	Field       string
	Namespace   string
	Err         error
	Description string
}

// Error returns the translated message when one exists.
func (e Violation) Error() string {
	if e.Description != "" {
		return e.Description
	}
	return e.Err.Error()
}

// StructError is the error returned by the validation of struct.
type StructError struct {
	Violations []Violation
}

// Error returns the error message.
func (s StructError) Error() string {
	sb := strings.Builder{}

	for _, v := range s.Violations {
		sb.WriteString(v.Error())
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String())
}

// RegisterValidation registers a custom rule on the shared validator.
func RegisterValidation(tag string, fn validator.Func) error {
	if err := defaultValidator.RegisterValidation(tag, fn); err != nil {
		return fmt.Errorf("register validation: %w", err)
	}
	return nil
}

// RegisterTranslation registers msg as the English message for tag. The
// message may refer to the field as {0} and the rule parameter as {1}.
func RegisterTranslation(tag, msg string) error {
	if err := defaultValidator.RegisterTranslation(
		tag,
		trans,
		func(ut ut.Translator) error {
			if err := ut.Add(tag, msg, true); err != nil {
				return fmt.Errorf("register translation: %w", err)
			}
			return nil
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field(), fe.Param())
			return t
		},
	); err != nil {
		return fmt.Errorf("register translation: %w", err)
	}
	return nil
}

// ValidateValue validates v against tag and returns the first Violation.
func ValidateValue(v any, tag string) error {
	if err := defaultValidator.Var(v, tag); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, e := range errs {
			return Violation{
				Tag:         e.Tag(),
				Err:         e,
				Description: e.Translate(trans),
			}
		}
	}
	return nil
}

// ValidateStruct validates every tagged field of s.
func ValidateStruct(s any) error {
	if err := defaultValidator.Struct(s); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		structError := &StructError{}
		for _, e := range errs {
			structError.Violations = append(structError.Violations, Violation{
				Tag:         e.Tag(),
				Field:       e.Field(),
				Namespace:   e.Namespace(),
				Err:         e,
				Description: e.Translate(trans),
			})
		}
		return structError
	}

	return nil
}

// isMultipleOf reports whether the numeric field is a multiple of the rule
// parameter. Zero values pass so that omitempty is not required.
func isMultipleOf(fl validator.FieldLevel) bool {
	step, err := strconv.ParseFloat(fl.Param(), 64)
	if err != nil || step <= 0 {
		return false
	}

	var v float64
	field := fl.Field()
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v = float64(field.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v = float64(field.Uint())
	case reflect.Float32, reflect.Float64:
		v = field.Float()
	default:
		return false
	}

	q := v / step
	return q == float64(int64(q))
}

func init() {
	if err := entranslations.RegisterDefaultTranslations(defaultValidator, trans); err != nil {
		fmt.Fprintf(os.Stderr, "validation register default translations: %v\n", err)
		os.Exit(1)
	}

	defaultValidator.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, key := range []string{"json", "yaml"} {
			name, _, _ := strings.Cut(f.Tag.Get(key), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})

	if err := RegisterValidation("slug", func(level validator.FieldLevel) bool {
		return slugRegex.MatchString(level.Field().String())
	}); err != nil {
		fmt.Fprintf(os.Stderr, "validation slug: %v\n", err)
		os.Exit(1)
	}
	if err := RegisterTranslation(
		"slug",
		"{0} must start with a lowercase letter and contain only lowercase letters, digits and underscores",
	); err != nil {
		fmt.Fprintf(os.Stderr, "validation slug: %v\n", err)
		os.Exit(1)
	}

	if err := RegisterValidation("multiple_of", isMultipleOf); err != nil {
		fmt.Fprintf(os.Stderr, "validation multiple_of: %v\n", err)
		os.Exit(1)
	}
	if err := RegisterTranslation("multiple_of", "{0} must be a multiple of {1}"); err != nil {
		fmt.Fprintf(os.Stderr, "validation multiple_of: %v\n", err)
		os.Exit(1)
	}
}
