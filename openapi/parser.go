package openapi

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/jakenesler/mailschema/internal"
)

// Parse loads an OpenAPI document (JSON or YAML) and builds an Index.
func Parse(ctx context.Context, spec string, data []byte) (*Index, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("parsing OpenAPI document %s: %w", spec, err)
	}

	// Published documents often carry minor issues; index them anyway.
	if err := doc.Validate(ctx); err != nil {
		internal.From(ctx).Warnf("document %s does not validate: %v", spec, err)
	}

	return buildIndex(spec, doc), nil
}

func buildIndex(spec string, doc *openapi3.T) *Index {
	idx := &Index{
		Spec:      spec,
		Endpoints: make(map[string]map[string]*EndpointDetail),
	}
	if doc.Paths == nil {
		return idx
	}

	for path, pathItem := range doc.Paths.Map() {
		for method, op := range pathItem.Operations() {
			if op == nil {
				continue
			}

			method = strings.ToUpper(method)

			detail := &EndpointDetail{
				Spec:        spec,
				Operation:   op.OperationID,
				Method:      method,
				Path:        path,
				Summary:     op.Summary,
				Description: op.Description,
				Tags:        op.Tags,
				Responses:   make(map[string]string),
			}

			params := append(openapi3.Parameters(nil), pathItem.Parameters...)
			params = append(params, op.Parameters...)
			for _, pRef := range params {
				if pRef == nil || pRef.Value == nil {
					continue
				}
				p := pRef.Value
				pi := ParameterInfo{
					Name:        p.Name,
					In:          p.In,
					Required:    p.Required,
					Description: p.Description,
				}
				if p.Schema != nil && p.Schema.Value != nil {
					info := describeProperty(p.Schema.Value)
					pi.Type, pi.Format, pi.Enum = info.Type, info.Format, info.Enum
					if pi.Description == "" {
						pi.Description = info.Description
					}
				}
				detail.Parameters = append(detail.Parameters, pi)
			}

			if op.RequestBody != nil && op.RequestBody.Value != nil {
				detail.RequestBody = describeBody(op.RequestBody.Value.Content)
			}

			if op.Responses != nil {
				for code, respRef := range op.Responses.Map() {
					if respRef.Value != nil && respRef.Value.Description != nil {
						detail.Responses[code] = *respRef.Value.Description
					}
				}
			}

			if idx.Endpoints[path] == nil {
				idx.Endpoints[path] = make(map[string]*EndpointDetail)
			}
			idx.Endpoints[path][method] = detail
		}
	}

	return idx
}

// describeBody summarizes the first content type in name order.
func describeBody(content openapi3.Content) *SchemaInfo {
	types := make([]string, 0, len(content))
	for ct := range content {
		types = append(types, ct)
	}
	if len(types) == 0 {
		return nil
	}
	sort.Strings(types)

	si := &SchemaInfo{ContentType: types[0]}
	if mt := content[types[0]]; mt != nil && mt.Schema != nil && mt.Schema.Value != nil {
		si.Properties = flattenSchema(mt.Schema.Value)
		si.Required = mt.Schema.Value.Required
	}
	return si
}

// flattenSchema summarizes the top level properties of a schema.
func flattenSchema(schema *openapi3.Schema) map[string]PropertyInfo {
	if schema == nil || len(schema.Properties) == 0 {
		return nil
	}

	props := make(map[string]PropertyInfo, len(schema.Properties))
	for name, propRef := range schema.Properties {
		if propRef.Value == nil {
			props[name] = PropertyInfo{Type: "unknown"}
			continue
		}
		props[name] = describeProperty(propRef.Value)
	}
	return props
}

func describeProperty(p *openapi3.Schema) PropertyInfo {
	t := "unknown"
	if types := p.Type.Slice(); len(types) > 0 {
		t = types[0]
	}
	return PropertyInfo{
		Type:        t,
		Format:      p.Format,
		Enum:        p.Enum,
		Description: p.Description,
	}
}
