package openapi

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"

	"github.com/jakenesler/mailschema/internal/validation"
)

// Generate derives the schema of v's type from its struct tags. See package
// mailapi for the tags that are understood.
func Generate(v any) (*openapi3.Schema, error) {
	ref, err := openapi3gen.NewSchemaRefForValue(v, nil, openapi3gen.SchemaCustomizer(customizeSchema))
	if err != nil {
		return nil, fmt.Errorf("generate schema for %T: %w", v, err)
	}
	return ref.Value, nil
}

// customizeSchema is called by openapi3gen for every generated schema. Array
// items and map values are generated with the tag of the field that holds
// them, before the field itself, so rules are split at "dive".
func customizeSchema(name string, t reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
	schema.Nullable = tag.Get("nullable") == "true"

	if t.Kind() == reflect.Struct {
		schema.Required = requiredFields(t)
	}

	raw, hasRules := tag.Lookup("validate")
	outer, inner, dive := splitRules(raw)

	if isContainer(t) {
		if hasRules && !dive {
			return fmt.Errorf("field %q: rules on %s must use dive", name, t)
		}
		schema.Description = tag.Get("description")
		return applyRules(schema, outer)
	}

	if dive {
		if err := applyRules(schema, inner); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		return applyValues(schema, tag)
	}

	if t.Kind() == reflect.Struct && tag.Get("description") == "" {
		return nil
	}
	schema.Description = tag.Get("description")
	if f := tag.Get("format"); f != "" {
		schema.Format = f
	}
	if err := applyRules(schema, outer); err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	return applyValues(schema, tag)
}

func isContainer(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Map:
		return true
	case reflect.Slice:
		return t.Elem().Kind() != reflect.Uint8
	}
	return false
}

// splitRules splits a validate tag into the rules of the field and the rules
// of its elements.
func splitRules(raw string) (outer, inner []string, dive bool) {
	if raw == "" {
		return nil, nil, false
	}
	for _, r := range strings.Split(raw, ",") {
		switch {
		case r == "dive":
			dive = true
		case dive:
			inner = append(inner, r)
		default:
			outer = append(outer, r)
		}
	}
	return outer, inner, dive
}

func requiredFields(t reflect.Type) []string {
	var required []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		jsonName, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if jsonName == "" || jsonName == "-" {
			continue
		}
		outer, _, _ := splitRules(f.Tag.Get("validate"))
		for _, r := range outer {
			if r == "required" {
				required = append(required, jsonName)
				break
			}
		}
	}
	return required
}

func applyRules(schema *openapi3.Schema, rules []string) error {
	for _, rule := range rules {
		key, param, _ := strings.Cut(rule, "=")
		switch key {
		case "", "required", "omitempty":
		case "min", "gte":
			if err := setBound(schema, param, true); err != nil {
				return err
			}
		case "max", "lte":
			if err := setBound(schema, param, false); err != nil {
				return err
			}
		case "len":
			if err := setBound(schema, param, true); err != nil {
				return err
			}
			if err := setBound(schema, param, false); err != nil {
				return err
			}
		case "oneof":
			if !schema.Type.Is(openapi3.TypeString) {
				return fmt.Errorf("oneof is only supported on strings")
			}
			schema.Enum = nil
			for _, v := range strings.Fields(param) {
				schema.Enum = append(schema.Enum, v)
			}
		case "multiple_of":
			n, err := strconv.ParseFloat(param, 64)
			if err != nil {
				return fmt.Errorf("multiple_of %q: %w", param, err)
			}
			schema.MultipleOf = &n
		case "uuid":
			schema.Format = "uuid"
		case "email":
			schema.Format = "email"
		case "url":
			schema.Format = "url"
		case "base64":
			schema.Format = "byte"
		case "slug":
			schema.Pattern = validation.SlugPattern
		case "datetime":
			switch param {
			case time.DateOnly:
				schema.Format = "date"
			case time.RFC3339:
				schema.Format = "date-time"
			default:
				return fmt.Errorf("datetime layout %q has no schema format", param)
			}
		default:
			return fmt.Errorf("rule %q has no schema equivalent", rule)
		}
	}
	return nil
}

func setBound(schema *openapi3.Schema, param string, lower bool) error {
	n, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return fmt.Errorf("bound %q: %w", param, err)
	}
	switch {
	case schema.Type.Is(openapi3.TypeString):
		u := uint64(n)
		if lower {
			schema.MinLength = u
		} else {
			schema.MaxLength = &u
		}
	case schema.Type.Is(openapi3.TypeInteger), schema.Type.Is(openapi3.TypeNumber):
		if lower {
			schema.Min = &n
		} else {
			schema.Max = &n
		}
	case schema.Type.Is(openapi3.TypeArray):
		u := uint64(n)
		if lower {
			schema.MinItems = u
		} else {
			schema.MaxItems = &u
		}
	case schema.Type.Is(openapi3.TypeObject):
		u := uint64(n)
		if lower {
			schema.MinProps = u
		} else {
			schema.MaxProps = &u
		}
	default:
		return fmt.Errorf("bound on untyped schema")
	}
	return nil
}

// applyValues sets the example and default of a scalar schema.
func applyValues(schema *openapi3.Schema, tag reflect.StructTag) error {
	if s, ok := tag.Lookup("example"); ok {
		v, err := parseScalar(schema, s)
		if err != nil {
			return fmt.Errorf("example: %w", err)
		}
		schema.Example = v
	}
	if s, ok := tag.Lookup("default"); ok {
		v, err := parseScalar(schema, s)
		if err != nil {
			return fmt.Errorf("default: %w", err)
		}
		schema.Default = v
	}
	return nil
}

// parseScalar converts a tag value to the Go type VisitJSON expects for the
// schema's type.
func parseScalar(schema *openapi3.Schema, s string) (any, error) {
	switch {
	case schema.Type.Is(openapi3.TypeInteger):
		return strconv.ParseInt(s, 10, 64)
	case schema.Type.Is(openapi3.TypeNumber):
		return strconv.ParseFloat(s, 64)
	case schema.Type.Is(openapi3.TypeBoolean):
		return strconv.ParseBool(s)
	case schema.Type.Is(openapi3.TypeString):
		return s, nil
	}
	return nil, fmt.Errorf("value %q on non-scalar schema", s)
}
