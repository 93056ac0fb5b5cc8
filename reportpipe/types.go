// CLAUDE:SUMMARY Defines Format, DiagnosticInfo and ParseResult for the report parsing pipeline.
package reportpipe

import (
	"time"

	"github.com/autodiag/dtcparse/dtc"
)

// Format identifies the declared encoding of a report payload.
type Format string

const (
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
	FormatXML  Format = "xml"
)

// DiagnosticInfo carries scan-level facts that are not per-code.
type DiagnosticInfo struct {
	TotalErrors     int    `json:"total_errors"`
	ReadinessStatus string `json:"readiness_status,omitempty"`
	HasFreezeFrame  bool   `json:"has_freeze_frame"`
}

// ParseResult is the full outcome of parsing one report. On failure only
// ID, Success, Error, Format and ParsedAt are populated; downstream
// consumers must treat that differently from a successful zero-code result.
//
// ID and ParsedAt are the only non-deterministic fields: parsing the same
// payload twice yields identical results everywhere else.
type ParseResult struct {
	ID                string          `json:"id"`
	Success           bool            `json:"success"`
	Error             string          `json:"error,omitempty"`
	Codes             []dtc.Code      `json:"codes"`
	VehicleInfo       dtc.VehicleInfo `json:"vehicle_info"`
	DiagnosticInfo    DiagnosticInfo  `json:"diagnostic_info"`
	Summary           dtc.Summary     `json:"summary"`
	RawContentExcerpt string          `json:"raw_content_excerpt,omitempty"`
	Format            Format          `json:"format"`
	ParsedAt          time.Time       `json:"parsed_at"`
}

// SupportedFormats returns the format tags the loader implements.
func SupportedFormats() []string {
	return []string{string(FormatText), string(FormatPDF), string(FormatXML)}
}
