package tools

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/jakenesler/mailschema/config"
	"github.com/jakenesler/mailschema/metrics"
	"github.com/jakenesler/mailschema/openapi"
	"github.com/jakenesler/mailschema/validate"
)

// Instructions describe the tool set to MCP clients.
const Instructions = "mailschema describes the email marketing API: brands, campaigns, contacts, lists, " +
	"custom fields, segments, users, delivery connections and suppressions. Use list_operations and " +
	"search_operations to find an operation, get_operation_details for its contract, example_payload " +
	"for a valid starting point, validate_request before sending a call and interpret_response to " +
	"check and classify what came back."

// RegisterAll registers all tools with the MCP server.
func RegisterAll(s *server.MCPServer, cfg *config.Config, catalog *openapi.Catalog, store *openapi.Store, v *validate.Validator) {
	registerDocTools(s, store)
	registerPayloadTools(s, &payloadTools{
		catalog:   catalog,
		validator: v,
		maxBytes:  cfg.MaxResponseSizeKB * 1024,
	})
}

// NewServer creates an MCP server with every tool registered. m may be nil.
func NewServer(cfg *config.Config, catalog *openapi.Catalog, store *openapi.Store, v *validate.Validator, m *metrics.Metrics) *server.MCPServer {
	s := server.NewMCPServer(
		cfg.Server.Name,
		cfg.Server.Version,
		server.WithToolCapabilities(true),
		server.WithInstructions(Instructions),
		server.WithToolHandlerMiddleware(CallMiddleware(m)),
		server.WithRecovery(),
	)
	RegisterAll(s, cfg, catalog, store, v)
	return s
}
