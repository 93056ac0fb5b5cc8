// CLAUDE:SUMMARY MCP tool surface: report_parse and report_formats registered over the kit transport glue.
package reportpipe

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/autodiag/dtcparse/kit"
)

// RegisterMCP registers the report tools on an MCP server. The stdio
// transport keeps this a local surface: no listener, no network.
func (e *Engine) RegisterMCP(srv *mcp.Server) {
	e.registerParseTool(srv)
	e.registerFormatsTool(srv)
}

// --- parse ---

type parseReq struct {
	Payload       string `json:"payload"`
	PayloadBase64 string `json:"payload_base64"`
	Format        string `json:"format"`
}

func (e *Engine) registerParseTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "report_parse",
		Description: "Parse a vehicle diagnostic report (text, pdf or xml) into structured trouble codes with severity, category and cost estimates.",
		InputSchema: kit.InputSchema(map[string]any{
			"payload":        map[string]any{"type": "string", "description": "Report content for text/xml payloads"},
			"payload_base64": map[string]any{"type": "string", "description": "Base64-encoded content for binary (pdf) payloads"},
			"format":         map[string]any{"type": "string", "enum": SupportedFormats(), "description": "Declared payload format"},
		}, []string{"format"}),
	}

	var endpoint kit.Endpoint = func(ctx context.Context, req any) (any, error) {
		r := req.(*parseReq)
		payload := []byte(r.Payload)
		if r.PayloadBase64 != "" {
			decoded, err := base64.StdEncoding.DecodeString(r.PayloadBase64)
			if err != nil {
				return nil, fmt.Errorf("payload_base64: %w", err)
			}
			payload = decoded
		}
		return e.Parse(ctx, payload, Format(r.Format)), nil
	}
	endpoint = kit.Chain(e.logCalls("report_parse"))(endpoint)

	decode := func(req *mcp.CallToolRequest) (any, error) {
		var r parseReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &r, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// logCalls is a kit middleware logging tool invocations at debug level.
func (e *Engine) logCalls(tool string) kit.Middleware {
	return func(next kit.Endpoint) kit.Endpoint {
		return func(ctx context.Context, req any) (any, error) {
			resp, err := next(ctx, req)
			if err != nil {
				e.logger.Debug("mcp tool failed", "tool", tool, "error", err)
			} else {
				e.logger.Debug("mcp tool served", "tool", tool)
			}
			return resp, err
		}
	}
}

// --- formats ---

func (e *Engine) registerFormatsTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "report_formats",
		Description: "List the payload formats the report parser accepts.",
		InputSchema: kit.InputSchema(map[string]any{}, nil),
	}

	endpoint := func(_ context.Context, _ any) (any, error) {
		return map[string]any{"formats": SupportedFormats()}, nil
	}

	decode := func(_ *mcp.CallToolRequest) (any, error) {
		return nil, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}
