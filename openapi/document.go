package openapi

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// APIVersion is the version of the email marketing API the catalog describes.
const APIVersion = "1.0.0"

const securityScheme = "bearerAuth"

var tagDescriptions = map[string]string{
	"brands":       "Sending identities and their limits.",
	"campaigns":    "Emails sent to lists and segments.",
	"contacts":     "Subscribers of a brand.",
	"lists":        "Named groups of contacts.",
	"fields":       "Custom contact attributes.",
	"segments":     "Dynamic selections of contacts.",
	"users":        "Members of the account.",
	"connections":  "Delivery providers used by a brand.",
	"suppressions": "Addresses that must never be mailed.",
}

func buildDocument(ops []*Operation) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Email Marketing API",
			Description: "Brands, campaigns, contacts, lists, fields, segments, users, connections and suppression lists.",
			Version:     APIVersion,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			SecuritySchemes: openapi3.SecuritySchemes{
				securityScheme: &openapi3.SecuritySchemeRef{Value: openapi3.NewJWTSecurityScheme()},
			},
		},
		Security: *openapi3.NewSecurityRequirements().
			With(openapi3.NewSecurityRequirement().Authenticate(securityScheme)),
	}

	seen := make(map[string]bool)
	for _, op := range ops {
		if !seen[op.Tag] {
			seen[op.Tag] = true
			doc.Tags = append(doc.Tags, &openapi3.Tag{Name: op.Tag, Description: tagDescriptions[op.Tag]})
		}
		doc.AddOperation(op.Path, op.Method, documentOperation(op))
	}
	return doc
}

func documentOperation(op *Operation) *openapi3.Operation {
	o := openapi3.NewOperation()
	o.OperationID = op.Name
	o.Summary = op.Summary
	o.Tags = []string{op.Tag}

	for _, p := range op.Params {
		var param *openapi3.Parameter
		if p.In == InPath {
			param = openapi3.NewPathParameter(p.Name)
		} else {
			param = openapi3.NewQueryParameter(p.Name).WithRequired(p.Required)
		}
		o.AddParameter(param.WithSchema(p.Schema).WithDescription(p.Schema.Description))
	}

	if op.Body != nil {
		body := openapi3.NewRequestBody().
			WithRequired(true).
			WithContent(openapi3.NewContentWithSchema(op.Body, []string{op.ContentType}))
		o.RequestBody = &openapi3.RequestBodyRef{Value: body}
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(op.Responses))
	for _, status := range op.Statuses() {
		resp := openapi3.NewResponse().
			WithDescription(statusDescription(status, op)).
			WithJSONSchema(op.Responses[status])
		opts = append(opts, openapi3.WithStatus(status, &openapi3.ResponseRef{Value: resp}))
	}
	o.Responses = openapi3.NewResponses(opts...)
	return o
}

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Export encodes the catalog's document as JSON or YAML.
func (c *Catalog) Export(format string) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return json.MarshalIndent(c.doc, "", "  ")
	case FormatYAML:
		// Round trip through JSON so the YAML keys follow the json tags and
		// extensions of the openapi3 types.
		data, err := json.Marshal(c.doc)
		if err != nil {
			return nil, fmt.Errorf("encoding document: %w", err)
		}
		var tree any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("converting document: %w", err)
		}
		return yaml.Marshal(tree)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}
