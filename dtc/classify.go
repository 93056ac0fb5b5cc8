// CLAUDE:SUMMARY Context-window keyword classifier for codes absent from the registry.
package dtc

import "strings"

// Classifier infers category and severity for a code the registry does not
// know, using the report text as its only context. Implementations must be
// pure: same inputs, same answer.
type Classifier interface {
	Category(code, fullText string) Category
	Severity(code, fullText string) Severity
}

// KeywordClassifier is the builtin Classifier: substring keyword matching
// over a bounded window around the code's first occurrence.
//
// Severity inference never yields "low" — only registry hits can. That
// asymmetry is deliberate: downstream priority escalation relies on
// inferred codes never being waved through as low.
type KeywordClassifier struct {
	// Table provides the per-category keyword lists, tried in table order.
	Table *CategoryTable

	// Window is the number of bytes kept on each side of the code's first
	// occurrence. Default 500.
	Window int

	// Fallback is returned when no keyword matches at all. Default Engine:
	// historically unclassifiable faults were binned there, and callers
	// depend on the skew, so it is configurable rather than fixed.
	Fallback Category
}

// heuristicRules run after the category table finds nothing. Broader nets,
// fixed order.
var heuristicRules = []struct {
	category Category
	words    []string
}{
	{CategoryEngine, []string{"engine", "motor", "cylinder"}},
	{CategoryTransmission, []string{"transmission", "gearbox", "clutch"}},
	{CategoryBrakes, []string{"abs", "brake", "esc", "tpms"}},
	{CategorySuspension, []string{"steering", "suspension"}},
	{CategoryElectrical, []string{"electrical", "databus", "can", "gateway"}},
	{CategoryAirCon, []string{"ac", "climate", "hvac"}},
	{CategoryFuel, []string{"fuel", "injection", "pump"}},
	{CategoryExhaust, []string{"exhaust", "catalytic", "emission"}},
}

// Failure-class language escalates to high; performance-class language
// settles at medium. Anything else defaults to medium.
var (
	highSeverityWords   = []string{"misfire", "failure", "critical", "severe", "broken", "damaged"}
	mediumSeverityWords = []string{"performance", "efficiency", "threshold", "range", "circuit"}
)

// Category infers the functional category for code from nearby text.
func (k *KeywordClassifier) Category(code, fullText string) Category {
	window := strings.ToLower(k.contextWindow(code, fullText))

	if k.Table != nil {
		for _, spec := range k.Table.Specs() {
			for _, kw := range spec.Keywords {
				if strings.Contains(window, strings.ToLower(kw)) {
					return spec.Name
				}
			}
		}
	}

	for _, rule := range heuristicRules {
		for _, w := range rule.words {
			if strings.Contains(window, w) {
				return rule.category
			}
		}
	}

	if k.Fallback != "" {
		return k.Fallback
	}
	return CategoryEngine
}

// Severity infers urgency from the whole document, not the window: failure
// language anywhere in a report is treated as relevant to every unknown code.
func (k *KeywordClassifier) Severity(code, fullText string) Severity {
	lower := strings.ToLower(fullText)
	for _, w := range highSeverityWords {
		if strings.Contains(lower, w) {
			return SeverityHigh
		}
	}
	for _, w := range mediumSeverityWords {
		if strings.Contains(lower, w) {
			return SeverityMedium
		}
	}
	return SeverityMedium
}

// contextWindow slices ±Window bytes around the first occurrence of code.
// If the code never appears verbatim the whole document is the window.
func (k *KeywordClassifier) contextWindow(code, fullText string) string {
	window := k.Window
	if window <= 0 {
		window = 500
	}
	idx := strings.Index(fullText, code)
	if idx < 0 {
		return fullText
	}
	start := idx - window
	if start < 0 {
		start = 0
	}
	end := idx + len(code) + window
	if end > len(fullText) {
		end = len(fullText)
	}
	return fullText[start:end]
}
