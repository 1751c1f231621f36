package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jakenesler/mailschema/openapi"
)

func registerDocTools(s *server.MCPServer, store *openapi.Store) {
	// list_specs
	s.AddTool(
		mcp.NewTool("list_specs",
			mcp.WithDescription("List the API documents that can be browsed: the built-in email marketing catalog and any OpenAPI files configured under specs"),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListSpecs(ctx, store)
		},
	)

	// list_operations
	s.AddTool(
		mcp.NewTool("list_operations",
			mcp.WithDescription("List API operations, optionally filtered by tag or HTTP method"),
			mcp.WithString("spec", mcp.Description("Document name (default: mail)")),
			mcp.WithString("tag", mcp.Description("Filter by tag, e.g. campaigns")),
			mcp.WithString("method", mcp.Description("Filter by HTTP method (GET, POST, PATCH, DELETE)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			spec := mcp.ParseString(req, "spec", openapi.BuiltinSpec)
			tag := mcp.ParseString(req, "tag", "")
			method := strings.ToUpper(mcp.ParseString(req, "method", ""))
			return handleListOperations(ctx, store, spec, tag, method)
		},
	)

	// search_operations
	s.AddTool(
		mcp.NewTool("search_operations",
			mcp.WithDescription("Search operations by path, operation name, summary, description and tags"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
			mcp.WithString("spec", mcp.Description("Limit search to one document")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			query := mcp.ParseString(req, "query", "")
			spec := mcp.ParseString(req, "spec", "")
			return handleSearchOperations(ctx, store, query, spec)
		},
	)

	// get_operation_details
	s.AddTool(
		mcp.NewTool("get_operation_details",
			mcp.WithDescription("Get parameters, request body and responses of one operation, addressed by operation name or by path and method"),
			mcp.WithString("spec", mcp.Description("Document name (default: mail)")),
			mcp.WithString("operation", mcp.Description("Operation name, e.g. CreateCampaign")),
			mcp.WithString("path", mcp.Description("Endpoint path, e.g. /brands/{brand_id}/lists")),
			mcp.WithString("method", mcp.Description("HTTP method (defaults to GET)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			spec := mcp.ParseString(req, "spec", openapi.BuiltinSpec)
			operation := mcp.ParseString(req, "operation", "")
			path := mcp.ParseString(req, "path", "")
			method := strings.ToUpper(mcp.ParseString(req, "method", "GET"))
			return handleGetOperationDetails(ctx, store, spec, operation, path, method)
		},
	)

	// refresh_specs
	s.AddTool(
		mcp.NewTool("refresh_specs",
			mcp.WithDescription("Re-read and re-parse configured OpenAPI files, all of them or one"),
			mcp.WithString("spec", mcp.Description("Document name to refresh (omit for all)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			spec := mcp.ParseString(req, "spec", "")
			return handleRefreshSpecs(ctx, store, spec)
		},
	)
}

func handleListSpecs(_ context.Context, store *openapi.Store) (*mcp.CallToolResult, error) {
	type specInfo struct {
		Name      string `json:"name"`
		Builtin   bool   `json:"builtin"`
		Endpoints int    `json:"endpoints"`
	}

	specs := make([]specInfo, 0)
	for _, name := range store.Names() {
		info := specInfo{Name: name, Builtin: name == openapi.BuiltinSpec}
		if idx := store.GetIndex(name); idx != nil {
			info.Endpoints = idx.Count()
		}
		specs = append(specs, info)
	}

	data, _ := json.MarshalIndent(specs, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}

func handleListOperations(_ context.Context, store *openapi.Store, spec, tag, method string) (*mcp.CallToolResult, error) {
	idx := store.GetIndex(spec)
	if idx == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no document loaded as %q; see list_specs", spec)), nil
	}

	endpoints := idx.Filter(tag, method)
	if len(endpoints) == 0 {
		return mcp.NewToolResultText("No operations match the given filters."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s operations (%d)\n\n", spec, len(endpoints)))

	byTag := make(map[string][]openapi.EndpointSummary)
	for _, ep := range endpoints {
		t := ep.Tag
		if t == "" {
			t = "untagged"
		}
		byTag[t] = append(byTag[t], ep)
	}
	tags := make([]string, 0, len(byTag))
	for t := range byTag {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	for _, t := range tags {
		sb.WriteString(fmt.Sprintf("## %s\n", t))
		for _, ep := range byTag[t] {
			sb.WriteString(fmt.Sprintf("- %s %s %s: %s\n", ep.Operation, ep.Method, ep.Path, ep.Summary))
		}
		sb.WriteString("\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func handleSearchOperations(_ context.Context, store *openapi.Store, query, spec string) (*mcp.CallToolResult, error) {
	if query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	results := store.Search(query, spec)
	if len(results) == 0 {
		return mcp.NewToolResultText("No results found."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Search results for %q (%d matches)\n\n", query, len(results)))
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("**[%s]** %s %s %s\n", r.Spec, r.Operation, r.Method, r.Path))
		if r.Summary != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", r.Summary))
		}
		sb.WriteString("\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func handleGetOperationDetails(_ context.Context, store *openapi.Store, spec, operation, path, method string) (*mcp.CallToolResult, error) {
	if operation == "" && path == "" {
		return mcp.NewToolResultError("operation or path is required"), nil
	}

	idx := store.GetIndex(spec)
	if idx == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no document loaded as %q", spec)), nil
	}

	var (
		detail *openapi.EndpointDetail
		err    error
	)
	if operation != "" {
		detail, err = idx.Operation(operation)
	} else {
		detail, err = idx.GetDetail(path, method)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, _ := json.MarshalIndent(detail, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}

func handleRefreshSpecs(ctx context.Context, store *openapi.Store, spec string) (*mcp.CallToolResult, error) {
	if spec != "" {
		if err := store.Refresh(ctx, spec); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to refresh %s: %v", spec, err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Refreshed %s", spec)), nil
	}

	errs := store.RefreshAll(ctx)
	if len(errs) > 0 {
		names := make([]string, 0, len(errs))
		for name := range errs {
			names = append(names, name)
		}
		sort.Strings(names)

		var sb strings.Builder
		sb.WriteString("Refresh completed with errors:\n")
		for _, name := range names {
			sb.WriteString(fmt.Sprintf("- %s: %v\n", name, errs[name]))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}

	return mcp.NewToolResultText("All documents refreshed successfully"), nil
}
