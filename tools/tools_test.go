package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakenesler/mailschema/config"
	"github.com/jakenesler/mailschema/metrics"
	"github.com/jakenesler/mailschema/openapi"
	"github.com/jakenesler/mailschema/validate"
)

const brandID = "7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51"

type fixture struct {
	srv     *server.MCPServer
	metrics *metrics.Metrics
}

func newFixture(t *testing.T, specs map[string]string) *fixture {
	t.Helper()
	m, err := metrics.New()
	require.NoError(t, err)

	cfg := config.Default()
	catalog := openapi.Default()
	store := openapi.NewStore(catalog, specs)
	store.LoadAll(context.Background())

	v := validate.New(catalog, validate.WithMetrics(m))
	return &fixture{srv: NewServer(cfg, catalog, store, v, m), metrics: m}
}

func (f *fixture) call(t *testing.T, name string, args map[string]any) (string, bool) {
	t.Helper()
	msg, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "tools/call",
		"params":  map[string]any{"name": name, "arguments": args},
	})
	require.NoError(t, err)

	resp, ok := f.srv.HandleMessage(context.Background(), msg).(mcp.JSONRPCResponse)
	require.True(t, ok, "tool %s did not answer with a result", name)
	result, ok := resp.Result.(mcp.CallToolResult)
	require.True(t, ok)
	require.NotEmpty(t, result.Content)
	content, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return content.Text, result.IsError
}

func TestDocTools(t *testing.T) {
	published := filepath.Join(t.TempDir(), "published.json")
	data, err := openapi.Default().Export(openapi.FormatJSON)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(published, data, 0o600))

	f := newFixture(t, map[string]string{"published": published})

	t.Run("list_specs", func(t *testing.T) {
		text, isErr := f.call(t, "list_specs", nil)
		require.False(t, isErr)
		var specs []struct {
			Name      string `json:"name"`
			Builtin   bool   `json:"builtin"`
			Endpoints int    `json:"endpoints"`
		}
		require.NoError(t, json.Unmarshal([]byte(text), &specs))
		require.Len(t, specs, 2)
		assert.Equal(t, "mail", specs[0].Name)
		assert.True(t, specs[0].Builtin)
		assert.Equal(t, 44, specs[0].Endpoints)
		assert.Equal(t, "published", specs[1].Name)
	})

	t.Run("list_operations", func(t *testing.T) {
		text, isErr := f.call(t, "list_operations", map[string]any{"tag": "suppressions"})
		require.False(t, isErr)
		assert.Contains(t, text, "# mail operations (3)")
		assert.Contains(t, text, "- CreateSuppression POST /brands/{brand_id}/suppressions: Suppress an address")

		text, _ = f.call(t, "list_operations", map[string]any{"tag": "webhooks"})
		assert.Equal(t, "No operations match the given filters.", text)

		_, isErr = f.call(t, "list_operations", map[string]any{"spec": "legacy"})
		assert.True(t, isErr)
	})

	t.Run("search_operations", func(t *testing.T) {
		text, isErr := f.call(t, "search_operations", map[string]any{"query": "send"})
		require.False(t, isErr)
		assert.Contains(t, text, "**[mail]** SendCampaign POST /brands/{brand_id}/campaigns/{campaign_id}/send")
		assert.Contains(t, text, "**[published]** SendCampaign")

		_, isErr = f.call(t, "search_operations", nil)
		assert.True(t, isErr)
	})

	t.Run("get_operation_details", func(t *testing.T) {
		text, isErr := f.call(t, "get_operation_details", map[string]any{"operation": "CreateField"})
		require.False(t, isErr)
		var detail openapi.EndpointDetail
		require.NoError(t, json.Unmarshal([]byte(text), &detail))
		assert.Equal(t, "/brands/{brand_id}/fields", detail.Path)
		require.NotNil(t, detail.RequestBody)
		assert.Contains(t, detail.RequestBody.Required, "key")

		text, isErr = f.call(t, "get_operation_details", map[string]any{"spec": "published", "path": "/users/{user_id}", "method": "delete"})
		require.False(t, isErr)
		assert.Contains(t, text, "DeleteUser")

		_, isErr = f.call(t, "get_operation_details", map[string]any{})
		assert.True(t, isErr)
	})

	t.Run("refresh_specs", func(t *testing.T) {
		text, isErr := f.call(t, "refresh_specs", nil)
		require.False(t, isErr)
		assert.Equal(t, "All documents refreshed successfully", text)

		_, isErr = f.call(t, "refresh_specs", map[string]any{"spec": "mail"})
		assert.True(t, isErr)
	})
}

func TestPayloadTools(t *testing.T) {
	f := newFixture(t, nil)

	t.Run("validate_request", func(t *testing.T) {
		text, isErr := f.call(t, "validate_request", map[string]any{
			"operation": "ListContacts",
			"params":    `{"brand_id": "` + brandID + `", "limit": 50}`,
		})
		require.False(t, isErr, text)
		assert.Contains(t, text, `"limit": 50`)

		text, isErr = f.call(t, "validate_request", map[string]any{
			"operation": "CreateList",
			"params":    `{"brand_id": "` + brandID + `"}`,
			"body":      `{"name": "", "confirm_redirect_url": "thanks"}`,
		})
		require.True(t, isErr)
		var out struct {
			Valid bool                  `json:"valid"`
			Error validate.PayloadError `json:"error"`
		}
		require.NoError(t, json.Unmarshal([]byte(text), &out))
		assert.False(t, out.Valid)
		assert.Equal(t, "request", out.Error.Part)
		require.Len(t, out.Error.Violations, 2)
		assert.Equal(t, "/body/confirm_redirect_url", out.Error.Violations[0].Path)
		assert.Equal(t, "/body/name", out.Error.Violations[1].Path)

		_, isErr = f.call(t, "validate_request", map[string]any{"operation": "CreateList", "params": "{"})
		assert.True(t, isErr)
	})

	t.Run("interpret_response", func(t *testing.T) {
		campaign := func(id, name, status string) map[string]any {
			example, err := openapi.Default().ExampleResponse("GetCampaign", http.StatusOK)
			require.NoError(t, err)
			c := example.(map[string]any)
			c["id"], c["name"], c["status"] = id, name, status
			return c
		}
		page, err := json.Marshal(map[string]any{
			"has_more": true,
			"cursor":   "abc",
			"data": []any{
				campaign(brandID, "Spring sale", "sent"),
				campaign("3a1d5e7f-9b2c-4d6e-8f0a-1b3c5d7e9f20", "Draft", "draft"),
			},
		})
		require.NoError(t, err)

		text, isErr := f.call(t, "interpret_response", map[string]any{
			"operation": "ListCampaigns",
			"status":    200,
			"body":      string(page),
			"filter":    "status:eq:draft",
			"fields":    "id,name",
		})
		require.False(t, isErr, text)
		var out struct {
			Payload struct {
				HasMore bool             `json:"has_more"`
				Data    []map[string]any `json:"data"`
			} `json:"payload"`
		}
		require.NoError(t, json.Unmarshal([]byte(text), &out))
		assert.True(t, out.Payload.HasMore)
		assert.Equal(t, []map[string]any{{"id": "3a1d5e7f-9b2c-4d6e-8f0a-1b3c5d7e9f20", "name": "Draft"}}, out.Payload.Data)

		text, isErr = f.call(t, "interpret_response", map[string]any{
			"operation": "CreateBrand",
			"status":    503,
			"body":      `{"type": "server_error", "message": "Try again later"}`,
		})
		require.False(t, isErr, text)
		assert.Contains(t, text, `"kind": "server"`)
		assert.Contains(t, text, `"temporary": true`)

		text, isErr = f.call(t, "interpret_response", map[string]any{
			"operation": "CreateUser",
			"status":    422,
			"body":      `{"type": "resource_already_exists", "message": "User exists", "param": "email"}`,
		})
		require.False(t, isErr, text)
		assert.Contains(t, text, `"kind": "conflict"`)
		assert.Contains(t, text, `"temporary": false`)

		_, isErr = f.call(t, "interpret_response", map[string]any{"operation": "GetBrand", "status": 201, "body": "{}"})
		assert.True(t, isErr)
		_, isErr = f.call(t, "interpret_response", map[string]any{"operation": "GetBrand", "status": 200, "body": "{}", "filter": "id"})
		assert.True(t, isErr)
	})

	t.Run("example_payload", func(t *testing.T) {
		text, isErr := f.call(t, "example_payload", map[string]any{"operation": "CreateSegment"})
		require.False(t, isErr)
		var body map[string]any
		require.NoError(t, json.Unmarshal([]byte(text), &body))
		assert.Contains(t, body, "conditions")

		text, _ = f.call(t, "example_payload", map[string]any{"operation": "GetBrand"})
		assert.Equal(t, "GET /brands/{brand_id} takes no request body.", text)

		text, isErr = f.call(t, "example_payload", map[string]any{"operation": "GetBrand", "kind": "response", "status": 404})
		require.False(t, isErr)
		assert.Contains(t, text, `"code": "resource_missing"`)

		_, isErr = f.call(t, "example_payload", map[string]any{"operation": "GetBrand", "kind": "schema"})
		assert.True(t, isErr)
	})

	t.Run("calls are counted", func(t *testing.T) {
		expected := strings.NewReader(`
# HELP mailschema_tool_calls_total The total count of MCP tool calls, by tool and outcome.
# TYPE mailschema_tool_calls_total counter
mailschema_tool_calls_total{outcome="error",tool="example_payload"} 1
mailschema_tool_calls_total{outcome="error",tool="interpret_response"} 2
mailschema_tool_calls_total{outcome="error",tool="validate_request"} 2
mailschema_tool_calls_total{outcome="ok",tool="example_payload"} 3
mailschema_tool_calls_total{outcome="ok",tool="interpret_response"} 3
mailschema_tool_calls_total{outcome="ok",tool="validate_request"} 1
`)
		assert.NoError(t, testutil.GatherAndCompare(f.metrics.Registry(), expected, "mailschema_tool_calls_total"))
	})
}

func TestJSONResultTruncates(t *testing.T) {
	res := jsonResult(map[string]string{"name": strings.Repeat("x", 100)}, 32)
	text := res.Content[0].(mcp.TextContent).Text
	assert.True(t, strings.HasPrefix(text, "{\n  \"name\": \"xxx"))
	assert.Contains(t, text, "truncated at 32 of")

	// {\n  "name": " is 13 bytes and each é takes two, so byte 16 is inside the second é.
	res = jsonResult(map[string]string{"name": strings.Repeat("é", 20)}, 16)
	text = res.Content[0].(mcp.TextContent).Text
	head, _, _ := strings.Cut(text, "\n...")
	assert.True(t, utf8.ValidString(head))
	assert.True(t, strings.HasSuffix(head, `"é`))
	assert.Contains(t, text, "truncated at 15 of")
}
