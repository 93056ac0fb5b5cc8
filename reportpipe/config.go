// CLAUDE:SUMMARY Configuration struct and defaults for the report parsing engine.
package reportpipe

import (
	"log/slog"

	"github.com/autodiag/dtcparse/dtc"
	"github.com/autodiag/dtcparse/idgen"
)

// Config configures a parsing Engine.
type Config struct {
	// MaxPayloadSize limits accepted payloads (default: 20 MB).
	MaxPayloadSize int64 `json:"max_payload_size" yaml:"max_payload_size"`

	// ContextWindow is the classifier window in bytes on each side of a
	// code occurrence (default: 500).
	ContextWindow int `json:"context_window" yaml:"context_window"`

	// FaultBlockWindow is how far past a "<N> Faults Found" marker the
	// extractor scans for code lines (default: 2000).
	FaultBlockWindow int `json:"fault_block_window" yaml:"fault_block_window"`

	// ExcerptLen caps ParseResult.RawContentExcerpt (default: 500).
	ExcerptLen int `json:"excerpt_len" yaml:"excerpt_len"`

	// Registry is the known-code knowledge base. Defaults to the embedded
	// registry data.
	Registry *dtc.Registry `json:"-" yaml:"-"`

	// Classifier infers category/severity for unknown codes. Defaults to
	// the keyword classifier over Registry's category table.
	Classifier dtc.Classifier `json:"-" yaml:"-"`

	// NewID generates analysis IDs. Defaults to "ana_"-prefixed UUIDv7.
	NewID idgen.Generator `json:"-" yaml:"-"`

	// Logger for debug breadcrumbs.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.MaxPayloadSize <= 0 {
		c.MaxPayloadSize = 20 * 1024 * 1024
	}
	if c.ContextWindow <= 0 {
		c.ContextWindow = 500
	}
	if c.FaultBlockWindow <= 0 {
		c.FaultBlockWindow = 2000
	}
	if c.ExcerptLen <= 0 {
		c.ExcerptLen = 500
	}
	if c.Registry == nil {
		c.Registry = dtc.DefaultRegistry()
	}
	if c.Classifier == nil {
		c.Classifier = &dtc.KeywordClassifier{
			Table:    c.Registry.Categories(),
			Window:   c.ContextWindow,
			Fallback: c.Registry.DefaultCategory(),
		}
	}
	if c.NewID == nil {
		c.NewID = idgen.Prefixed("ana_", idgen.Default)
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
