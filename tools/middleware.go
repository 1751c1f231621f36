package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/xid"

	"github.com/jakenesler/mailschema/internal"
	"github.com/jakenesler/mailschema/metrics"
)

// CallMiddleware gives every tool call an id and a logger carrying it, and
// counts the call by outcome when m is set.
func CallMiddleware(m *metrics.Metrics) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			logger := internal.Logger().With("call", xid.New().String(), "tool", req.Params.Name)
			start := time.Now()

			res, err := next(internal.With(ctx, logger), req)

			outcome := metrics.OutcomeOK
			if err != nil || (res != nil && res.IsError) {
				outcome = metrics.OutcomeError
			}
			if err != nil {
				logger.Errorw("tool call failed", "error", err)
			} else {
				logger.Debugw("tool call", "outcome", outcome, "elapsed", time.Since(start))
			}
			if m != nil {
				m.ObserveToolCall(req.Params.Name, outcome)
			}
			return res, err
		}
	}
}
