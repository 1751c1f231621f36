package openapi

// EndpointSummary is a compact listing entry.
type EndpointSummary struct {
	Spec      string `json:"spec"`
	Operation string `json:"operation,omitempty"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	Summary   string `json:"summary"`
	Tag       string `json:"tag"`
}

// EndpointDetail is the full detail for a specific endpoint.
type EndpointDetail struct {
	Spec        string            `json:"spec"`
	Operation   string            `json:"operation,omitempty"`
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Parameters  []ParameterInfo   `json:"parameters,omitempty"`
	RequestBody *SchemaInfo       `json:"request_body,omitempty"`
	Responses   map[string]string `json:"responses,omitempty"`
}

// ParameterInfo describes a single parameter.
type ParameterInfo struct {
	Name        string `json:"name"`
	In          string `json:"in"`
	Required    bool   `json:"required"`
	Type        string `json:"type"`
	Format      string `json:"format,omitempty"`
	Enum        []any  `json:"enum,omitempty"`
	Description string `json:"description,omitempty"`
}

// SchemaInfo is a simplified schema representation.
type SchemaInfo struct {
	ContentType string                  `json:"content_type"`
	Properties  map[string]PropertyInfo `json:"properties,omitempty"`
	Required    []string                `json:"required,omitempty"`
}

// PropertyInfo summarizes one property of a schema.
type PropertyInfo struct {
	Type        string `json:"type"`
	Format      string `json:"format,omitempty"`
	Enum        []any  `json:"enum,omitempty"`
	Description string `json:"description,omitempty"`
}

func (e *EndpointDetail) summary() EndpointSummary {
	t := ""
	if len(e.Tags) > 0 {
		t = e.Tags[0]
	}
	return EndpointSummary{
		Spec:      e.Spec,
		Operation: e.Operation,
		Method:    e.Method,
		Path:      e.Path,
		Summary:   e.Summary,
		Tag:       t,
	}
}
