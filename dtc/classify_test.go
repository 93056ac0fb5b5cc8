package dtc

import (
	"strings"
	"testing"
)

func testClassifier(t *testing.T) *KeywordClassifier {
	t.Helper()
	r := DefaultRegistry()
	return &KeywordClassifier{
		Table:    r.Categories(),
		Fallback: r.DefaultCategory(),
	}
}

func TestCategory_UnknownCodeFromContext(t *testing.T) {
	// WHAT: a code the registry has never seen is classified from the text
	// around it.
	// WHY: fallback inference is the whole point of the classifier.
	k := testClassifier(t)
	text := "Engine misfire detected. Code Z9999 found during cylinder diagnostic."
	if got := k.Category("Z9999", text); got != CategoryEngine {
		t.Errorf("Category = %q, want Engine", got)
	}
	if got := k.Severity("Z9999", text); got != SeverityHigh {
		t.Errorf("Severity = %q, want high for misfire language", got)
	}
}

func TestCategory_TableOrderWins(t *testing.T) {
	// WHAT: the first category in table order whose keyword matches wins,
	// even when later categories would also match.
	k := testClassifier(t)
	// "transmission" and "voltage" both appear; Transmission precedes
	// Electrical in the table.
	text := "Code X1111 - transmission control reported low voltage"
	if got := k.Category("X1111", text); got != CategoryTransmission {
		t.Errorf("Category = %q, want Transmission by table order", got)
	}
}

func TestCategory_HeuristicFallbackChain(t *testing.T) {
	// WHAT: when no table keyword matches, the broader heuristic chain
	// still buckets the code.
	k := &KeywordClassifier{Fallback: CategoryEngine} // no table at all
	tests := []struct {
		text string
		want Category
	}{
		{"fault X2 near the gearbox housing", CategoryTransmission},
		{"X2 tpms pressure warning", CategoryBrakes},
		{"X2 steering rack play noted", CategorySuspension},
		{"X2 databus frame lost", CategoryElectrical},
		{"X2 hvac blower intermittent", CategoryAirCon},
		{"X2 injection pump seized", CategoryFuel},
		{"X2 catalytic converter rattle", CategoryExhaust},
		{"X2 motor mount torn", CategoryEngine},
	}
	for _, tt := range tests {
		if got := k.Category("X2", tt.text); got != tt.want {
			t.Errorf("Category(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestCategory_DefaultBias(t *testing.T) {
	// WHAT: nothing matches → the configured fallback category, Engine by
	// default.
	// WHY: the default bias is deliberate and relied upon downstream; it
	// must stay configurable, not hardcoded.
	k := testClassifier(t)
	if got := k.Category("X9", "no known words here"); got != CategoryEngine {
		t.Errorf("Category = %q, want the Engine default", got)
	}

	k.Fallback = CategoryElectrical
	if got := k.Category("X9", "no known words here"); got != CategoryElectrical {
		t.Errorf("Category = %q, want the configured fallback", got)
	}
}

func TestCategory_WindowBounds(t *testing.T) {
	// WHAT: keywords outside the ±Window slice around the code do not
	// influence classification.
	k := testClassifier(t)
	k.Window = 20
	text := "gearbox " + strings.Repeat("x", 200) + " Z8888 plain words " + strings.Repeat("y", 200) + " brake"
	if got := k.Category("Z8888", text); got != CategoryEngine {
		t.Errorf("Category = %q, want the default: both keywords sit outside the window", got)
	}
}

func TestSeverity_KeywordTiers(t *testing.T) {
	k := testClassifier(t)
	tests := []struct {
		text string
		want Severity
	}{
		{"component failure recorded", SeverityHigh},
		{"sensor broken, housing damaged", SeverityHigh},
		{"value above threshold", SeverityMedium},
		{"circuit intermittent", SeverityMedium},
		{"nothing noteworthy", SeverityMedium}, // default tier
	}
	for _, tt := range tests {
		if got := k.Severity("X1", tt.text); got != tt.want {
			t.Errorf("Severity(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestSeverity_NeverLow(t *testing.T) {
	// WHAT: inference can only return medium or high.
	// WHY: "low" is reserved for registry-vetted codes; downstream
	// priority escalation depends on the asymmetry.
	k := testClassifier(t)
	for _, text := range []string{"", "minor cosmetic note", "all ok"} {
		if got := k.Severity("X1", text); got == SeverityLow {
			t.Fatalf("Severity(%q) = low; inference must never yield low", text)
		}
	}
}
