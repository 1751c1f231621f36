package openapi

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/jakenesler/mailschema/internal/validation"
)

// String formats checked during schema validation in addition to the ones
// kin-openapi defines (byte, date, date-time). Each is backed by the
// go-playground rule of the same meaning so typed and untyped validation
// agree; uuid only accepts the lowercase hyphenated form.
var stringFormats = map[string]string{
	"uuid":  "uuid",
	"email": "email",
	"url":   "url",
}

func init() {
	for format, rule := range stringFormats {
		format, rule := format, rule
		openapi3.DefineStringFormatValidator(format, openapi3.NewCallbackValidator(func(s string) error {
			if err := validation.ValidateValue(s, rule); err != nil {
				return fmt.Errorf("not a valid %s", format)
			}
			return nil
		}))
	}
}
