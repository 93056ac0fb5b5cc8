// CLAUDE:SUMMARY Pipeline engine: format-dispatched content loading, code enrichment and the end-to-end Parse entry point.
// Package reportpipe parses raw vehicle diagnostic exports into structured
// results: extracted trouble codes enriched with description, severity,
// category and estimated repair cost, plus vehicle metadata and a rollup
// summary.
//
// Supported payload formats:
//   - text — plain scan logs (passthrough with newline normalization)
//   - pdf  — multi-page PDF exports (pdfcpu content-stream extraction)
//   - xml  — scan-tool XML dumps (schema-less leaf-text flattening)
//
// One Parse call transforms one document end to end with no shared mutable
// state; a single Engine is safe for concurrent use.
//
// Usage:
//
//	engine := reportpipe.New(reportpipe.Config{})
//	result := engine.Parse(ctx, payload, reportpipe.FormatText)
//	fmt.Println(result.Summary.Priority, len(result.Codes), "codes")
package reportpipe

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/autodiag/dtcparse/dtc"
	"github.com/autodiag/dtcparse/idgen"
)

// Engine is the report parsing engine. Immutable after New.
type Engine struct {
	cfg        Config
	logger     *slog.Logger
	registry   *dtc.Registry
	classifier dtc.Classifier
	newID      idgen.Generator
}

// New creates an Engine with the given configuration.
func New(cfg Config) *Engine {
	cfg.defaults()
	return &Engine{
		cfg:        cfg,
		logger:     cfg.Logger,
		registry:   cfg.Registry,
		classifier: cfg.Classifier,
		newID:      cfg.NewID,
	}
}

// Load decodes a payload of the declared format into normalized plain text.
// Line endings are normalized to \n so the line-oriented extraction passes
// behave identically across sources.
func (e *Engine) Load(payload []byte, format Format) (string, error) {
	if int64(len(payload)) > e.cfg.MaxPayloadSize {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrPayloadTooLarge, len(payload), e.cfg.MaxPayloadSize)
	}

	var text string
	var err error
	switch format {
	case FormatText:
		text, err = loadText(payload)
	case FormatPDF:
		text, err = loadPDF(payload)
	case FormatXML:
		text, err = loadXML(payload)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return "", err
	}
	return normalizeNewlines(text), nil
}

// Parse runs the full pipeline on one payload. It never returns a Go error:
// loader failures come back as ParseResult{Success: false} so a batch caller
// can continue past one bad document. An empty decoded document is a
// successful zero-code result, not a failure.
func (e *Engine) Parse(ctx context.Context, payload []byte, format Format) *ParseResult {
	res := &ParseResult{
		ID:       e.newID(),
		Format:   format,
		ParsedAt: time.Now().UTC(),
	}

	text, err := e.Load(payload, format)
	if err != nil {
		res.Error = err.Error()
		e.logger.Debug("parse failed", "format", format, "error", err)
		return res
	}

	res.Success = true
	res.Codes = e.enrich(text)
	res.VehicleInfo = dtc.ExtractVehicleInfo(text)
	res.Summary = dtc.Summarize(res.Codes)
	res.DiagnosticInfo = DiagnosticInfo{
		TotalErrors:     len(res.Codes),
		ReadinessStatus: readinessStatus(text),
		HasFreezeFrame:  hasFreezeFrame(text),
	}
	res.RawContentExcerpt = excerpt(text, e.cfg.ExcerptLen)

	e.logger.Debug("parsed report",
		"format", format,
		"codes", len(res.Codes),
		"priority", res.Summary.Priority)
	return res
}

// enrich extracts candidates and resolves each one against the registry,
// falling back to the classifier and cost estimator for unknown codes.
// Registry severity/category/cost are authoritative; the document's own
// wording still overrides the canned registry description.
func (e *Engine) enrich(text string) []dtc.Code {
	candidates := dtc.Extract(text, dtc.ExtractOptions{
		FaultBlockWindow: e.cfg.FaultBlockWindow,
	})

	codes := make([]dtc.Code, 0, len(candidates))
	for _, cand := range candidates {
		code := dtc.Code{Code: cand.Code, Description: cand.Description}
		if entry, known := e.registry.Lookup(cand.Code); known {
			code.Severity = entry.Severity
			code.Category = entry.Category
			code.EstimatedCost = entry.Cost
			if code.Description == "" {
				code.Description = entry.Description
			}
		} else {
			code.Category = e.classifier.Category(cand.Code, text)
			code.Severity = e.classifier.Severity(cand.Code, text)
			code.EstimatedCost = e.registry.Categories().EstimateCost(code.Category, code.Severity)
			if code.Description == "" {
				code.Description = "Unidentified fault code"
			}
		}
		codes = append(codes, code)
	}
	return codes
}

// ToLower can change byte lengths (e.g. U+023A lowers to a longer rune), so
// indexes into a lowered copy must never be applied to the original string.
// Case-insensitive matching here goes through regexp on the original text.
var readinessRe = regexp.MustCompile(`(?i)readiness[: \t]*([^\n]*)`)

// readinessStatus captures the value after a "Readiness:" label, if present.
func readinessStatus(text string) string {
	m := readinessRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return truncateRunes(strings.TrimSpace(m[1]), 80)
}

func hasFreezeFrame(text string) bool {
	return strings.Contains(strings.ToLower(text), "freeze frame")
}

func excerpt(text string, max int) string {
	return truncateRunes(strings.TrimSpace(text), max)
}

// truncateRunes caps s at max bytes without splitting a multi-byte rune.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
