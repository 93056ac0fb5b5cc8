// CLAUDE:SUMMARY Known-code registry and category table: YAML-loaded, schema-validated at startup, immutable afterwards.
package dtc

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidRegistry is returned when registry data fails validation.
var ErrInvalidRegistry = errors.New("dtc: invalid registry data")

//go:embed registry.yaml
var defaultRegistryYAML []byte

// CategorySpec is one row of the category table: the keyword list driving
// inference plus the cost parameters driving estimation.
type CategorySpec struct {
	Name       Category `yaml:"name"`
	Keywords   []string `yaml:"keywords"`
	BaseCost   int64    `yaml:"base_cost"`
	Multiplier float64  `yaml:"multiplier"`
}

// CategoryTable is the ordered category configuration. Order matters: the
// classifier tries categories in table order and the first keyword hit wins.
type CategoryTable struct {
	specs       []CategorySpec
	index       map[Category]int
	defaultCost int64
}

// Specs returns the category rows in declaration order.
func (t *CategoryTable) Specs() []CategorySpec { return t.specs }

// Spec returns the row for a category, if declared.
func (t *CategoryTable) Spec(c Category) (CategorySpec, bool) {
	i, ok := t.index[c]
	if !ok {
		return CategorySpec{}, false
	}
	return t.specs[i], true
}

// Registry is the immutable known-code knowledge base plus its category
// table. Build once at startup; concurrent lookups need no locking.
type Registry struct {
	entries         map[string]Entry
	cats            *CategoryTable
	defaultCategory Category
}

// registryFile is the YAML schema of a registry config document.
type registryFile struct {
	Version         int            `yaml:"version"`
	DefaultCategory Category       `yaml:"default_category"`
	DefaultCost     int64          `yaml:"default_cost"`
	Categories      []CategorySpec `yaml:"categories"`
	Codes           []struct {
		Code        string   `yaml:"code"`
		Description string   `yaml:"description"`
		Severity    Severity `yaml:"severity"`
		Category    Category `yaml:"category"`
		Cost        int64    `yaml:"cost"`
	} `yaml:"codes"`
}

// DefaultRegistry builds the registry from the embedded data file.
func DefaultRegistry() *Registry {
	r, err := ParseRegistry(defaultRegistryYAML)
	if err != nil {
		// The embedded file ships with the binary; failing to parse it is a
		// build defect, not a runtime condition.
		panic("dtc: embedded registry: " + err.Error())
	}
	return r
}

// LoadRegistry reads a registry config from a YAML file.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dtc: read registry: %w", err)
	}
	return ParseRegistry(data)
}

// ParseRegistry decodes and validates registry YAML.
func ParseRegistry(data []byte) (*Registry, error) {
	var f registryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("dtc: parse registry: %w", err)
	}

	cats := &CategoryTable{
		index:       make(map[Category]int, len(f.Categories)),
		defaultCost: f.DefaultCost,
	}
	if cats.defaultCost <= 0 {
		cats.defaultCost = defaultFlatCost
	}
	for _, cs := range f.Categories {
		if cs.Name == "" {
			return nil, fmt.Errorf("%w: category with empty name", ErrInvalidRegistry)
		}
		if _, dup := cats.index[cs.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidRegistry, cs.Name)
		}
		if cs.BaseCost < 0 {
			return nil, fmt.Errorf("%w: category %q has negative base cost", ErrInvalidRegistry, cs.Name)
		}
		if cs.Multiplier <= 0 {
			cs.Multiplier = 1.0
		}
		cats.index[cs.Name] = len(cats.specs)
		cats.specs = append(cats.specs, cs)
	}

	r := &Registry{
		entries:         make(map[string]Entry, len(f.Codes)),
		cats:            cats,
		defaultCategory: f.DefaultCategory,
	}
	if r.defaultCategory == "" {
		r.defaultCategory = CategoryEngine
	}

	for _, c := range f.Codes {
		code := NormalizeCode(c.Code)
		if code == "" {
			return nil, fmt.Errorf("%w: entry with empty code", ErrInvalidRegistry)
		}
		if _, dup := r.entries[code]; dup {
			return nil, fmt.Errorf("%w: duplicate code %q", ErrInvalidRegistry, code)
		}
		if !c.Severity.valid() {
			return nil, fmt.Errorf("%w: code %q has severity %q", ErrInvalidRegistry, code, c.Severity)
		}
		if c.Cost < 0 {
			return nil, fmt.Errorf("%w: code %q has negative cost", ErrInvalidRegistry, code)
		}
		r.entries[code] = Entry{
			Description: c.Description,
			Severity:    c.Severity,
			Category:    c.Category,
			Cost:        c.Cost,
		}
	}

	return r, nil
}

// Lookup returns the registry entry for a code. Codes are matched by their
// normalized form.
func (r *Registry) Lookup(code string) (Entry, bool) {
	e, ok := r.entries[NormalizeCode(code)]
	return e, ok
}

// Len returns the number of known codes.
func (r *Registry) Len() int { return len(r.entries) }

// Categories returns the category table.
func (r *Registry) Categories() *CategoryTable { return r.cats }

// DefaultCategory is the category assigned when nothing else matches.
func (r *Registry) DefaultCategory() Category { return r.defaultCategory }
