package reportpipe

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var testMCPImpl = &mcp.Implementation{Name: "dtcparse-test", Version: "0.1.0"}

func mcpSession(t *testing.T) *mcp.ClientSession {
	t.Helper()
	engine := New(Config{})
	srv := mcp.NewServer(testMCPImpl, nil)
	engine.RegisterMCP(srv)

	serverT, clientT := mcp.NewInMemoryTransports()
	ctx := context.Background()
	go func() { _ = srv.Run(ctx, serverT) }()

	client := mcp.NewClient(testMCPImpl, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func mcpCallTool(t *testing.T, session *mcp.ClientSession, name string, args any) string {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if err := result.GetError(); err != nil {
		t.Fatalf("CallTool(%s) tool error: %v", name, err)
	}
	tc, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("CallTool(%s): expected TextContent", name)
	}
	return tc.Text
}

func TestMCP_ReportFormats(t *testing.T) {
	// WHAT: report_formats lists the supported format tags.
	session := mcpSession(t)
	out := mcpCallTool(t, session, "report_formats", map[string]any{})

	var resp struct {
		Formats []string `json:"formats"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Formats) != 3 {
		t.Errorf("formats = %v, want text/pdf/xml", resp.Formats)
	}
}

func TestMCP_ReportParse(t *testing.T) {
	// WHAT: report_parse returns the full ParseResult as JSON.
	session := mcpSession(t)
	out := mcpCallTool(t, session, "report_parse", map[string]any{
		"payload": "1 Fault Found:\nP0300 - Random Misfire\n",
		"format":  "text",
	})

	var res ParseResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !res.Success || len(res.Codes) != 1 || res.Codes[0].Code != "P0300" {
		t.Errorf("result = %+v", res)
	}
}

func TestMCP_ReportParseBase64(t *testing.T) {
	// WHAT: binary payloads travel base64-encoded.
	session := mcpSession(t)
	payload := base64.StdEncoding.EncodeToString([]byte("2 Faults Found:\n17158 - Databus Error\n"))
	out := mcpCallTool(t, session, "report_parse", map[string]any{
		"payload_base64": payload,
		"format":         "text",
	})

	var res ParseResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(res.Codes) != 1 || res.Codes[0].Code != "17158" {
		t.Errorf("codes = %+v", res.Codes)
	}
}

func TestMCP_ReportParseUnsupportedFormat(t *testing.T) {
	// WHAT: an unsupported format is a structured failure inside the
	// result, not a tool error.
	session := mcpSession(t)
	out := mcpCallTool(t, session, "report_parse", map[string]any{
		"payload": "hello",
		"format":  "docx",
	})

	var res ParseResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Success || !strings.Contains(res.Error, "unsupported format") {
		t.Errorf("result = %+v", res)
	}
}
