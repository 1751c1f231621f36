package openapi

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
)

// Example builds a value that satisfies schema, preferring the examples,
// defaults and enums it declares. Objects include every property.
func Example(schema *openapi3.Schema) any {
	return example(schema, "value")
}

func example(s *openapi3.Schema, name string) any {
	if s == nil {
		return nil
	}

	if len(s.AllOf) > 0 {
		out := make(map[string]any)
		for _, part := range s.AllOf {
			if m, ok := example(part.Value, name).(map[string]any); ok {
				for k, v := range m {
					out[k] = v
				}
			}
		}
		return out
	}

	switch {
	case s.Type.Is(openapi3.TypeObject):
		out := make(map[string]any, len(s.Properties))
		for prop, ref := range s.Properties {
			out[prop] = example(ref.Value, prop)
		}
		if ap := s.AdditionalProperties.Schema; ap != nil && len(s.Properties) == 0 {
			out["key"] = example(ap.Value, name)
		}
		return out
	case s.Type.Is(openapi3.TypeArray):
		if s.Example != nil {
			return s.Example
		}
		n := int(s.MinItems)
		if n == 0 {
			n = 1
		}
		items := make([]any, n)
		for i := range items {
			var item *openapi3.Schema
			if s.Items != nil {
				item = s.Items.Value
			}
			items[i] = example(item, fmt.Sprintf("%s-%d", name, i))
		}
		return items
	}

	if s.Example != nil {
		return s.Example
	}
	if s.Default != nil {
		return s.Default
	}
	if len(s.Enum) > 0 {
		return s.Enum[0]
	}

	switch {
	case s.Type.Is(openapi3.TypeString):
		return exampleString(s, name)
	case s.Type.Is(openapi3.TypeInteger):
		return int64(exampleNumber(s))
	case s.Type.Is(openapi3.TypeNumber):
		return exampleNumber(s)
	case s.Type.Is(openapi3.TypeBoolean):
		return false
	}
	return nil
}

func exampleString(s *openapi3.Schema, name string) string {
	switch s.Format {
	case "uuid":
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
	case "email":
		return "someone@example.com"
	case "url":
		return "https://example.com/" + strings.ReplaceAll(name, "_", "-")
	case "date":
		return "2024-01-01"
	case "date-time":
		return "2024-01-01T00:00:00Z"
	case "byte":
		return "ZXhhbXBsZQ=="
	}

	v := name
	if n := int(s.MinLength); len(v) < n {
		v += strings.Repeat("x", n-len(v))
	}
	if s.MaxLength != nil && uint64(len(v)) > *s.MaxLength {
		v = v[:*s.MaxLength]
	}
	return v
}

func exampleNumber(s *openapi3.Schema) float64 {
	v := 0.0
	if s.Min != nil {
		v = *s.Min
	}
	if m := s.MultipleOf; m != nil && *m > 0 {
		v = math.Ceil(v / *m) * *m
		if v == 0 {
			v = *m
		}
	}
	return v
}

// ExampleBody returns an example request body of the operation, or nil when
// it takes none.
func (c *Catalog) ExampleBody(name string) (any, error) {
	op, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	if op.Body == nil {
		return nil, nil
	}
	return Example(op.Body), nil
}

// ExampleParams returns example path and query parameters of the operation
// in their string form. Only required parameters are included unless all is
// set.
func (c *Catalog) ExampleParams(name string, all bool) (map[string]string, error) {
	op, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	for _, p := range op.Params {
		if !p.Required && !all {
			continue
		}
		out[p.Name] = fmt.Sprint(example(p.Schema, p.Name))
	}
	return out, nil
}

// ExampleResponse returns an example payload of the operation's response
// with the given status.
func (c *Catalog) ExampleResponse(name string, status int) (any, error) {
	op, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	s, ok := op.Response(status)
	if !ok {
		return nil, fmt.Errorf("%s does not declare status %d (declared: %s)", op.Name, status, joinStatuses(op.Statuses()))
	}
	return Example(s), nil
}

func joinStatuses(statuses []int) string {
	sort.Ints(statuses)
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = fmt.Sprint(s)
	}
	return strings.Join(parts, ", ")
}
