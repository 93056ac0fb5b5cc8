package dtc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRegistry_ScenarioCodes(t *testing.T) {
	// WHAT: the embedded knowledge base knows the reference codes with
	// their canonical classification.
	// WHY: registry entries are authoritative for severity/category/cost.
	r := DefaultRegistry()

	tests := []struct {
		code     string
		severity Severity
		category Category
		cost     int64
	}{
		{"17158", SeverityMedium, CategoryElectrical, 8000},
		{"P0300", SeverityHigh, CategoryEngine, 15000},
		{"25472", SeverityHigh, CategoryTransmission, 20000},
		{"P0442", SeverityLow, CategoryEmission, 3000},
	}
	for _, tt := range tests {
		e, ok := r.Lookup(tt.code)
		if !ok {
			t.Errorf("Lookup(%q): not found", tt.code)
			continue
		}
		if e.Severity != tt.severity || e.Category != tt.category || e.Cost != tt.cost {
			t.Errorf("Lookup(%q) = %+v, want %s/%s/%d", tt.code, e, tt.severity, tt.category, tt.cost)
		}
	}

	if r.Len() < 20 {
		t.Errorf("registry has %d codes, want a realistic complement (>= 20)", r.Len())
	}
	if r.DefaultCategory() != CategoryEngine {
		t.Errorf("DefaultCategory = %q, want Engine", r.DefaultCategory())
	}
}

func TestLookup_NormalizesCase(t *testing.T) {
	r := DefaultRegistry()
	if _, ok := r.Lookup("p0300"); !ok {
		t.Error("Lookup(p0300): lower-case OBD-II code should hit the registry")
	}
}

func TestParseRegistry_Validation(t *testing.T) {
	// WHAT: malformed registry data is rejected at load, not at parse time.
	tests := []struct {
		name string
		yaml string
	}{
		{"bad severity", "codes:\n  - {code: P1000, severity: fatal, category: Engine, cost: 100}\n"},
		{"negative cost", "codes:\n  - {code: P1000, severity: low, category: Engine, cost: -5}\n"},
		{"duplicate code", "codes:\n  - {code: P1000, severity: low, category: Engine, cost: 5}\n  - {code: p1000, severity: low, category: Engine, cost: 5}\n"},
		{"duplicate category", "categories:\n  - {name: Engine}\n  - {name: Engine}\n"},
		{"not yaml", "\t{{{"},
	}
	for _, tt := range tests {
		if _, err := ParseRegistry([]byte(tt.yaml)); err == nil {
			t.Errorf("%s: ParseRegistry accepted invalid data", tt.name)
		}
	}

	_, err := ParseRegistry([]byte("codes:\n  - {code: P1000, severity: fatal, category: Engine, cost: 100}\n"))
	if !errors.Is(err, ErrInvalidRegistry) {
		t.Errorf("validation error = %v, want ErrInvalidRegistry", err)
	}
}

func TestLoadRegistry_File(t *testing.T) {
	// WHAT: a deployment override file loads with its own defaults applied.
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yaml")
	data := `
version: 2
default_category: Electrical
categories:
  - name: Electrical
    keywords: [voltage]
    base_cost: 4000
codes:
  - {code: "90001", description: Test entry, severity: low, category: Electrical, cost: 1500}
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if r.DefaultCategory() != CategoryElectrical {
		t.Errorf("DefaultCategory = %q, want Electrical", r.DefaultCategory())
	}
	if e, ok := r.Lookup("90001"); !ok || e.Cost != 1500 {
		t.Errorf("Lookup(90001) = %+v/%v, want cost 1500", e, ok)
	}
	// Multiplier defaults to 1.0 when omitted.
	spec, ok := r.Categories().Spec(CategoryElectrical)
	if !ok || spec.Multiplier != 1.0 {
		t.Errorf("Spec(Electrical) = %+v/%v, want multiplier 1.0", spec, ok)
	}
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	if _, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadRegistry on a missing file should fail")
	}
}
