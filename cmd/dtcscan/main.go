// CLAUDE:SUMMARY Entry point for the dtcscan CLI — parses a diagnostic report file to JSON, or serves the engine over MCP stdio.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	_ "modernc.org/sqlite"

	"github.com/autodiag/dtcparse/dbopen"
	"github.com/autodiag/dtcparse/dtc"
	"github.com/autodiag/dtcparse/reportpipe"
)

func main() {
	formatFlag := flag.String("format", "", "payload format: text, pdf or xml (default: from file extension)")
	registryPath := flag.String("registry", env("REGISTRY_FILE", ""), "registry YAML file (default: embedded registry)")
	registryDB := flag.String("registry-db", env("REGISTRY_DB", ""), "registry SQLite database (overrides -registry)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: dtcscan [flags] <report-file>\n")
		fmt.Fprintf(os.Stderr, "       MCP_TRANSPORT=stdio dtcscan [flags]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logLevel := env("LOG_LEVEL", "info")
	var lvl slog.Level
	switch logLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	registry, err := loadRegistry(ctx, *registryPath, *registryDB)
	if err != nil {
		slog.Error("load registry", "error", err)
		os.Exit(1)
	}

	engine := reportpipe.New(reportpipe.Config{
		Registry: registry,
		Logger:   logger,
	})

	if env("MCP_TRANSPORT", "") == "stdio" {
		mcpSrv := mcp.NewServer(&mcp.Implementation{
			Name:    "dtcscan",
			Version: "1.0.0",
		}, nil)
		engine.RegisterMCP(mcpSrv)
		slog.Info("MCP stdio server starting", "known_codes", registry.Len())
		if err := mcpSrv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
			slog.Error("MCP server", "error", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	payload, err := os.ReadFile(path)
	if err != nil {
		slog.Error("read report", "path", path, "error", err)
		os.Exit(1)
	}

	format := reportpipe.Format(*formatFlag)
	if format == "" {
		format = detectFormat(path)
	}

	result := engine.Parse(ctx, payload, format)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		slog.Error("marshal result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if !result.Success {
		os.Exit(1)
	}
}

// loadRegistry picks the knowledge-base source: SQLite store, YAML file, or
// the embedded default, in that order of preference.
func loadRegistry(ctx context.Context, yamlPath, dbPath string) (*dtc.Registry, error) {
	if dbPath != "" {
		db, err := dbopen.Open(dbPath, dbopen.WithSchema(dtc.RegistrySchema))
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return dtc.LoadRegistryDB(ctx, db)
	}
	if yamlPath != "" {
		return dtc.LoadRegistry(yamlPath)
	}
	return dtc.DefaultRegistry(), nil
}

// detectFormat maps a file extension to a payload format. Unknown
// extensions pass through verbatim so the engine reports the unsupported
// tag itself instead of the CLI guessing.
func detectFormat(path string) reportpipe.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return reportpipe.FormatPDF
	case ".xml":
		return reportpipe.FormatXML
	case ".txt", ".log", ".text":
		return reportpipe.FormatText
	default:
		return reportpipe.Format(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	}
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
