package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jakenesler/mailschema/internal"
	"github.com/jakenesler/mailschema/mailapi"
	"github.com/jakenesler/mailschema/openapi"
	"github.com/jakenesler/mailschema/validate"
)

type payloadTools struct {
	catalog   *openapi.Catalog
	validator *validate.Validator
	maxBytes  int
}

func registerPayloadTools(s *server.MCPServer, t *payloadTools) {
	s.AddTool(
		mcp.NewTool("validate_request",
			mcp.WithDescription("Check the parameters and body of a call against an operation before sending it. Reports every violation with its JSON pointer."),
			mcp.WithString("operation", mcp.Required(), mcp.Description("Operation name, e.g. CreateBrand")),
			mcp.WithString("params", mcp.Description("Path and query parameters as a JSON object (e.g. {\"brand_id\": \"...\", \"limit\": 25}). Arrays are sent comma separated.")),
			mcp.WithString("body", mcp.Description("Request body as a JSON string. Multipart bodies are given as a JSON object of their form fields.")),
		),
		t.handleValidateRequest,
	)

	s.AddTool(
		mcp.NewTool("interpret_response",
			mcp.WithDescription("Check a response payload against what the operation declares for its status. Error responses are classified, including whether retrying later may help. Use fields/filter/limit to reduce the output."),
			mcp.WithString("operation", mcp.Required(), mcp.Description("Operation name, e.g. ListContacts")),
			mcp.WithNumber("status", mcp.Required(), mcp.Description("HTTP status code of the response")),
			mcp.WithString("body", mcp.Required(), mcp.Description("Response body as a JSON string")),
			mcp.WithString("fields", mcp.Description("Comma-separated fields to keep. Supports nested fields with dot notation (e.g. \"id,name,stats.opens\")")),
			mcp.WithString("filter", mcp.Description("Filter array results, or the data of a page. Format: \"field:op:value\". Ops: contains, eq, ne, gt, lt (e.g. \"status:eq:sent\")")),
			mcp.WithNumber("limit", mcp.Description("Max number of items to return from arrays")),
		),
		t.handleInterpretResponse,
	)

	s.AddTool(
		mcp.NewTool("example_payload",
			mcp.WithDescription("Produce an example payload that satisfies an operation's schema"),
			mcp.WithString("operation", mcp.Required(), mcp.Description("Operation name")),
			mcp.WithString("kind", mcp.Description("What to produce"), mcp.Enum("body", "params", "response")),
			mcp.WithNumber("status", mcp.Description("Response status for kind=response (default: the success status)")),
		),
		t.handleExamplePayload,
	)
}

func (t *payloadTools) handleValidateRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operation := mcp.ParseString(req, "operation", "")
	paramsStr := mcp.ParseString(req, "params", "")
	bodyStr := mcp.ParseString(req, "body", "")

	if operation == "" {
		return mcp.NewToolResultError("operation is required"), nil
	}

	params, err := parseParams(paramsStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	values, err := t.validator.Request(operation, params, []byte(bodyStr))
	if err != nil {
		internal.From(ctx).Debugf("request for %s rejected: %v", operation, err)
		return errorResult(err), nil
	}

	return jsonResult(map[string]any{"valid": true, "params": values}, t.maxBytes), nil
}

// parseParams flattens a JSON object of parameters to their string form.
func parseParams(s string) (map[string]string, error) {
	params := make(map[string]string)
	if strings.TrimSpace(s) == "" {
		return params, nil
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("invalid params JSON: %v", err)
	}
	for k, v := range raw {
		if items, ok := v.([]any); ok {
			parts := make([]string, len(items))
			for i, item := range items {
				parts[i] = fmt.Sprintf("%v", item)
			}
			params[k] = strings.Join(parts, ",")
			continue
		}
		params[k] = fmt.Sprintf("%v", v)
	}
	return params, nil
}

// interpretedError is the classification of an error response.
type interpretedError struct {
	Status        int      `json:"status"`
	Kind          string   `json:"kind"`
	Type          string   `json:"type"`
	Message       string   `json:"message"`
	Param         string   `json:"param,omitempty"`
	Code          string   `json:"code,omitempty"`
	Preconditions []string `json:"preconditions,omitempty"`
	Temporary     bool     `json:"temporary"`
}

var errorKinds = []struct {
	sentinel error
	kind     string
}{
	{mailapi.ErrNotFound, "not_found"},
	{mailapi.ErrForbidden, "forbidden"},
	{mailapi.ErrUnauthenticated, "unauthenticated"},
	{mailapi.ErrConflict, "conflict"},
	{mailapi.ErrPrecondition, "failed_precondition"},
	{mailapi.ErrRateLimited, "rate_limited"},
	{mailapi.ErrServer, "server"},
	{mailapi.ErrInvalidRequest, "invalid_request"},
}

func errorKind(err *mailapi.Error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.sentinel) {
			return k.kind
		}
	}
	return "unknown"
}

func (t *payloadTools) handleInterpretResponse(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operation := mcp.ParseString(req, "operation", "")
	status := mcp.ParseInt(req, "status", 0)
	bodyStr := mcp.ParseString(req, "body", "")

	if operation == "" || status == 0 {
		return mcp.NewToolResultError("operation and status are required"), nil
	}

	sh, err := parseShape(mcp.ParseString(req, "fields", ""), mcp.ParseString(req, "filter", ""), mcp.ParseInt(req, "limit", 0))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := t.validator.Response(operation, status, []byte(bodyStr))
	var apiErr *mailapi.Error
	switch {
	case errors.As(err, &apiErr):
		internal.From(ctx).Debugf("%s answered %v", operation, apiErr)
		return jsonResult(map[string]any{
			"valid": true,
			"error": interpretedError{
				Status:        apiErr.Status,
				Kind:          errorKind(apiErr),
				Type:          string(apiErr.Type),
				Message:       apiErr.Message,
				Param:         apiErr.Param,
				Code:          apiErr.Code,
				Preconditions: apiErr.Preconditions,
				Temporary:     apiErr.Temporary(),
			},
		}, t.maxBytes), nil
	case err != nil:
		return errorResult(err), nil
	}

	payload := resp.Payload
	if !sh.empty() {
		payload = sh.apply(payload)
	}
	return jsonResult(map[string]any{"valid": true, "status": resp.Status, "payload": payload}, t.maxBytes), nil
}

func (t *payloadTools) handleExamplePayload(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operation := mcp.ParseString(req, "operation", "")
	kind := mcp.ParseString(req, "kind", "body")

	op, err := t.catalog.Get(operation)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var example any
	switch kind {
	case "body":
		if op.Body == nil {
			return mcp.NewToolResultText(fmt.Sprintf("%s %s takes no request body.", op.Method, op.Path)), nil
		}
		example, err = t.catalog.ExampleBody(op.Name)
	case "params":
		example, err = t.catalog.ExampleParams(op.Name, true)
	case "response":
		example, err = t.catalog.ExampleResponse(op.Name, mcp.ParseInt(req, "status", op.SuccessStatus()))
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown kind %q: want body, params or response", kind)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(example, t.maxBytes), nil
}

// errorResult reports a rejected payload with its violations, or any other
// failure as text.
func errorResult(err error) *mcp.CallToolResult {
	var perr *validate.PayloadError
	if errors.As(err, &perr) {
		data, _ := json.MarshalIndent(map[string]any{"valid": false, "error": perr}, "", "  ")
		return mcp.NewToolResultError(string(data))
	}
	return mcp.NewToolResultError(err.Error())
}

// jsonResult renders v, cut to maxBytes when that is positive.
func jsonResult(v any, maxBytes int) *mcp.CallToolResult {
	data, _ := json.MarshalIndent(v, "", "  ")
	if maxBytes > 0 && len(data) > maxBytes {
		cut := maxBytes
		for cut > 0 && !utf8.RuneStart(data[cut]) {
			cut--
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s\n... truncated at %d of %d bytes; narrow the result with fields, filter or limit",
			data[:cut], cut, len(data)))
	}
	return mcp.NewToolResultText(string(data))
}
