// Package validate checks request and response payloads against the
// operations of the catalog and interprets error responses.
package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/jakenesler/mailschema/internal/validation"
	"github.com/jakenesler/mailschema/mailapi"
	"github.com/jakenesler/mailschema/metrics"
	"github.com/jakenesler/mailschema/openapi"
)

// Validator validates payloads of catalog operations.
type Validator struct {
	catalog            *openapi.Catalog
	metrics            *metrics.Metrics
	allowUnknownParams bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithMetrics records every validation outcome in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(v *Validator) {
		v.metrics = m
	}
}

// WithUnknownParams makes Metadata drop parameters the operation does not
// declare instead of rejecting them.
func WithUnknownParams(allow bool) Option {
	return func(v *Validator) {
		v.allowUnknownParams = allow
	}
}

// New creates a Validator over c.
func New(c *openapi.Catalog, opts ...Option) *Validator {
	v := &Validator{catalog: c}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Body validates a request body. Multipart bodies are given as a JSON object
// of their form fields.
func (v *Validator) Body(operation string, data []byte) error {
	op, err := v.catalog.Get(operation)
	if err != nil {
		return err
	}
	_, err = v.body(op, data)
	v.observe(op.Name, PartBody, err)
	return err
}

func (v *Validator) body(op *openapi.Operation, data []byte) (any, error) {
	empty := len(bytes.TrimSpace(data)) == 0
	if op.Body == nil {
		if empty {
			return nil, nil
		}
		return nil, newPayloadError(op.Name, PartBody, []Violation{{
			Path: "/", Rule: "body", Reason: fmt.Sprintf("%s %s takes no request body", op.Method, op.Path),
		}})
	}
	if empty {
		return nil, newPayloadError(op.Name, PartBody, []Violation{{
			Path: "/", Rule: "body", Reason: "request body is required",
		}})
	}

	payload, err := decode(data)
	if err != nil {
		return nil, newPayloadError(op.Name, PartBody, []Violation{{Path: "/", Rule: "json", Reason: err.Error()}})
	}
	if err := op.Body.VisitJSON(payload, openapi3.MultiErrors(), openapi3.VisitAsRequest()); err != nil {
		return nil, newPayloadError(op.Name, PartBody, schemaViolations(err))
	}
	return payload, nil
}

// EncodeBody validates a typed body, e.g. a mailapi.CreateBrandBody, and
// returns its JSON encoding once both its struct tags and the operation's
// body schema accept it.
func (v *Validator) EncodeBody(operation string, body any) ([]byte, error) {
	op, err := v.catalog.Get(operation)
	if err != nil {
		return nil, err
	}
	if op.Body == nil {
		return nil, fmt.Errorf("%s takes no request body", op.Name)
	}

	if err := validation.ValidateStruct(body); err != nil {
		perr := newPayloadError(op.Name, PartBody, structViolations(err))
		v.observe(op.Name, PartBody, perr)
		return nil, perr
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding %s body: %w", op.Name, err)
	}
	if _, err := v.body(op, data); err != nil {
		v.observe(op.Name, PartBody, err)
		return nil, err
	}
	v.observe(op.Name, PartBody, nil)
	return data, nil
}

// Metadata validates path and query parameters given in their string form
// and returns them converted to the types their schemas declare.
func (v *Validator) Metadata(operation string, params map[string]string) (map[string]any, error) {
	op, err := v.catalog.Get(operation)
	if err != nil {
		return nil, err
	}
	values, err := v.metadata(op, params)
	v.observe(op.Name, PartMetadata, err)
	return values, err
}

func (v *Validator) metadata(op *openapi.Operation, params map[string]string) (map[string]any, error) {
	values := make(map[string]any, len(params))
	var violations []Violation

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p, ok := op.Param(name)
		if !ok {
			if !v.allowUnknownParams {
				violations = append(violations, Violation{
					Path: pointer([]string{name}), Rule: "unknown", Reason: fmt.Sprintf("%s does not accept parameter %q", op.Name, name),
				})
			}
			continue
		}
		value, err := coerce(p.Schema, params[name])
		if err != nil {
			violations = append(violations, Violation{Path: pointer([]string{name}), Rule: "type", Reason: err.Error()})
			continue
		}
		values[name] = value
	}

	if op.Metadata != nil {
		// Members are visited one by one so a failing path parameter does not
		// hide the query parameter failures.
		for _, part := range op.Metadata.AllOf {
			if err := part.Value.VisitJSON(values, openapi3.MultiErrors(), openapi3.VisitAsRequest()); err != nil {
				violations = append(violations, schemaViolations(err)...)
			}
		}
	}

	if len(violations) > 0 {
		return nil, newPayloadError(op.Name, PartMetadata, violations)
	}
	return values, nil
}

// coerce converts a raw parameter to the type of s. Arrays are comma
// separated.
func coerce(s *openapi3.Schema, raw string) (any, error) {
	switch {
	case s.Type.Is(openapi3.TypeInteger):
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", raw)
		}
		return n, nil
	case s.Type.Is(openapi3.TypeNumber):
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", raw)
		}
		return f, nil
	case s.Type.Is(openapi3.TypeBoolean):
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%q is not a boolean", raw)
		}
		return b, nil
	case s.Type.Is(openapi3.TypeArray):
		if raw == "" {
			return []any{}, nil
		}
		parts := strings.Split(raw, ",")
		items := make([]any, len(parts))
		for i, part := range parts {
			if s.Items == nil || s.Items.Value == nil {
				items[i] = part
				continue
			}
			item, err := coerce(s.Items.Value, part)
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return items, nil
	}
	return raw, nil
}

// Request validates both the parameters and the body of a call. Violations
// are reported together, under /params and /body.
func (v *Validator) Request(operation string, params map[string]string, body []byte) (map[string]any, error) {
	op, err := v.catalog.Get(operation)
	if err != nil {
		return nil, err
	}

	var violations []Violation
	values, err := v.metadata(op, params)
	v.observe(op.Name, PartMetadata, err)
	var perr *PayloadError
	if errors.As(err, &perr) {
		violations = append(violations, prefixed("params", perr.Violations)...)
	} else if err != nil {
		return nil, err
	}

	_, err = v.body(op, body)
	v.observe(op.Name, PartBody, err)
	if errors.As(err, &perr) {
		violations = append(violations, prefixed("body", perr.Violations)...)
	} else if err != nil {
		return nil, err
	}

	if len(violations) > 0 {
		return nil, newPayloadError(op.Name, PartRequest, violations)
	}
	return values, nil
}

// Response is a response payload that matched its declared schema.
type Response struct {
	Operation string
	Status    int
	Payload   any
	Raw       []byte
}

// Decode decodes the raw payload into out, e.g. a *mailapi.Brand.
func (r *Response) Decode(out any) error {
	if err := json.Unmarshal(r.Raw, out); err != nil {
		return fmt.Errorf("decoding %s %d response: %w", r.Operation, r.Status, err)
	}
	return nil
}

// Response validates a response payload against the schema declared for
// status. For error statuses the validated response is returned together
// with the *mailapi.Error it describes.
func (v *Validator) Response(operation string, status int, data []byte) (*Response, error) {
	op, err := v.catalog.Get(operation)
	if err != nil {
		return nil, err
	}
	schema, ok := op.Response(status)
	if !ok {
		return nil, fmt.Errorf("%w: %s does not declare %d", ErrUndeclaredStatus, op.Name, status)
	}

	payload, err := decode(data)
	if err != nil {
		perr := newPayloadError(op.Name, PartResponse, []Violation{{Path: "/", Rule: "json", Reason: err.Error()}})
		v.observe(op.Name, PartResponse, perr)
		return nil, perr
	}
	if err := schema.VisitJSON(payload, openapi3.MultiErrors(), openapi3.VisitAsResponse()); err != nil {
		perr := newPayloadError(op.Name, PartResponse, schemaViolations(err))
		v.observe(op.Name, PartResponse, perr)
		return nil, perr
	}
	v.observe(op.Name, PartResponse, nil)

	resp := &Response{Operation: op.Name, Status: status, Payload: payload, Raw: data}
	if status < http.StatusBadRequest {
		return resp, nil
	}

	if op.Paginated && status == http.StatusUnprocessableEntity {
		var body mailapi.PreconditionBody
		if err := resp.Decode(&body); err != nil {
			return nil, err
		}
		return resp, mailapi.NewPreconditionError(body)
	}
	var body mailapi.ErrorBody
	if err := resp.Decode(&body); err != nil {
		return nil, err
	}
	return resp, mailapi.NewError(status, body)
}

func (v *Validator) observe(operation, part string, err error) {
	if v.metrics == nil {
		return
	}
	outcome := metrics.OutcomeValid
	if err != nil {
		outcome = metrics.OutcomeInvalid
	}
	v.metrics.ObserveValidation(operation, part, outcome)
}

func decode(data []byte) (any, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("not valid JSON: %w", err)
	}
	return payload, nil
}
