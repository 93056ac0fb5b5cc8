// CLAUDE:SUMMARY SQLite registry source: loads the knowledge base from an embedded store instead of YAML.
package dtc

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// RegistrySchema creates the tables a SQLite-backed registry reads from.
// Deployments that version their knowledge base in a database instead of
// YAML files apply this once and update rows out of band.
const RegistrySchema = `
CREATE TABLE IF NOT EXISTS registry_meta (
	id               INTEGER PRIMARY KEY CHECK (id = 1),
	version          INTEGER NOT NULL DEFAULT 1,
	default_category TEXT NOT NULL DEFAULT 'Engine',
	default_cost     INTEGER NOT NULL DEFAULT 5000
);
CREATE TABLE IF NOT EXISTS categories (
	position   INTEGER NOT NULL,
	name       TEXT PRIMARY KEY,
	keywords   TEXT NOT NULL DEFAULT '[]',
	base_cost  INTEGER NOT NULL DEFAULT 0,
	multiplier REAL NOT NULL DEFAULT 1.0
);
CREATE TABLE IF NOT EXISTS codes (
	code        TEXT PRIMARY KEY,
	description TEXT NOT NULL DEFAULT '',
	severity    TEXT NOT NULL,
	category    TEXT NOT NULL,
	cost        INTEGER NOT NULL DEFAULT 0
);
`

// LoadRegistryDB reads a registry snapshot from an SQLite database opened by
// the caller (see dbopen). The returned Registry is an immutable copy:
// later writes to the database are not observed, which keeps concurrent
// parses on a consistent snapshot. Hot reload is load-again-and-swap.
func LoadRegistryDB(ctx context.Context, db *sql.DB) (*Registry, error) {
	cats := &CategoryTable{index: make(map[Category]int)}

	var defaultCategory Category = CategoryEngine
	var defaultCost int64 = defaultFlatCost
	row := db.QueryRowContext(ctx, `SELECT default_category, default_cost FROM registry_meta WHERE id = 1`)
	if err := row.Scan(&defaultCategory, &defaultCost); err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("dtc: registry meta: %w", err)
	}
	if defaultCost <= 0 {
		defaultCost = defaultFlatCost
	}
	cats.defaultCost = defaultCost

	rows, err := db.QueryContext(ctx, `SELECT name, keywords, base_cost, multiplier FROM categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("dtc: registry categories: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var spec CategorySpec
		var keywordsJSON string
		if err := rows.Scan(&spec.Name, &keywordsJSON, &spec.BaseCost, &spec.Multiplier); err != nil {
			return nil, fmt.Errorf("dtc: registry categories: %w", err)
		}
		if err := json.Unmarshal([]byte(keywordsJSON), &spec.Keywords); err != nil {
			return nil, fmt.Errorf("%w: category %q keywords: %v", ErrInvalidRegistry, spec.Name, err)
		}
		if spec.Multiplier <= 0 {
			spec.Multiplier = 1.0
		}
		cats.index[spec.Name] = len(cats.specs)
		cats.specs = append(cats.specs, spec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dtc: registry categories: %w", err)
	}

	r := &Registry{
		entries:         make(map[string]Entry),
		cats:            cats,
		defaultCategory: defaultCategory,
	}

	codeRows, err := db.QueryContext(ctx, `SELECT code, description, severity, category, cost FROM codes`)
	if err != nil {
		return nil, fmt.Errorf("dtc: registry codes: %w", err)
	}
	defer codeRows.Close()
	for codeRows.Next() {
		var code string
		var e Entry
		if err := codeRows.Scan(&code, &e.Description, &e.Severity, &e.Category, &e.Cost); err != nil {
			return nil, fmt.Errorf("dtc: registry codes: %w", err)
		}
		if !e.Severity.valid() {
			return nil, fmt.Errorf("%w: code %q has severity %q", ErrInvalidRegistry, code, e.Severity)
		}
		if e.Cost < 0 {
			return nil, fmt.Errorf("%w: code %q has negative cost", ErrInvalidRegistry, code)
		}
		r.entries[NormalizeCode(code)] = e
	}
	if err := codeRows.Err(); err != nil {
		return nil, fmt.Errorf("dtc: registry codes: %w", err)
	}

	return r, nil
}
