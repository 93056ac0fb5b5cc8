// CLAUDE:SUMMARY Core DTC vocabulary: Severity, Category, Code, registry Entry, summary and vehicle-info types.
// Package dtc implements the diagnostic-trouble-code vocabulary: extraction
// of code tokens from scan-report text, the known-code registry, keyword
// classification of unknown codes, repair-cost estimation, and the rollup
// summary.
//
// All tables (registry entries, category keywords, cost figures) are loaded
// once at startup and immutable afterwards, so a single Registry may be
// shared by concurrent parses without locking.
package dtc

// Severity rates how urgent a fault is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// valid reports whether s is one of the closed enum values.
func (s Severity) valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Category is a functional vehicle system (Engine, Brakes, ...). The set is
// open: registry config may declare categories beyond the builtin ones.
type Category string

const (
	CategoryEngine       Category = "Engine"
	CategoryTransmission Category = "Transmission"
	CategoryElectrical   Category = "Electrical"
	CategorySuspension   Category = "Suspension"
	CategoryBrakes       Category = "Brakes"
	CategoryAirCon       Category = "Air Conditioning"
	CategoryEmission     Category = "Emission System"
	CategoryFuel         Category = "Fuel System"
	CategoryExhaust      Category = "Exhaust System"
	CategorySafety       Category = "Safety Systems"
)

// Code is a fully enriched diagnostic trouble code as it appears in a parse
// result. Codes are unique within one result (dedup happens at extraction).
type Code struct {
	Code          string   `json:"code"`
	Description   string   `json:"description"`
	Severity      Severity `json:"severity"`
	Category      Category `json:"category"`
	EstimatedCost int64    `json:"estimated_cost"`
}

// Entry is a known-code registry record. Severity, Category and Cost are
// authoritative for the code; Description may be overridden by the wording
// found in the scanned document itself.
type Entry struct {
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Category    Category `json:"category"`
	Cost        int64    `json:"cost"`
}

// VehicleInfo holds metadata recovered from the report text. Every field is
// optional: absence means the document did not mention it.
type VehicleInfo struct {
	VIN         string `json:"vin,omitempty"`
	Mileage     int64  `json:"mileage,omitempty"`
	MileageUnit string `json:"mileage_unit,omitempty"` // "km" or "miles"
	ScanDate    string `json:"scan_date,omitempty"`
}

// CategoryStat aggregates the codes of one category within a summary.
type CategoryStat struct {
	Count         int      `json:"count"`
	Codes         []string `json:"codes"`
	EstimatedCost int64    `json:"estimated_cost"`
}

// Summary is the rollup over an enriched code list. Invariants:
// TotalErrors == CriticalErrors+MediumErrors+LowErrors == len(codes) and
// EstimatedTotalCost == sum of per-code costs.
type Summary struct {
	TotalErrors        int                       `json:"total_errors"`
	CriticalErrors     int                       `json:"critical_errors"`
	MediumErrors       int                       `json:"medium_errors"`
	LowErrors          int                       `json:"low_errors"`
	Categories         map[Category]CategoryStat `json:"categories"`
	EstimatedTotalCost int64                     `json:"estimated_total_cost"`
	Priority           Severity                  `json:"priority"`
	Recommendations    []string                  `json:"recommendations"`
}
