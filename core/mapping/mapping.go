package mapping

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// EntrySeparator separates `id:value` pairs.
	EntrySeparator = ";"
	// KeyValueSeparator separates the id from its display name.
	KeyValueSeparator = ":"
)

// Table maps opaque upstream identifiers to display names.
type Table map[string]string

// Parse builds a Table from raw mapping text.
// Malformed entries are logged and skipped; parsing never fails.
func Parse(raw string, logger *zap.Logger) Table {
	if logger == nil {
		logger = zap.NewNop()
	}

	table := make(Table)
	for _, entry := range strings.Split(raw, EntrySeparator) {
		if strings.TrimSpace(entry) == "" {
			continue
		}

		parts := strings.Split(entry, KeyValueSeparator)
		if len(parts) != 2 {
			logger.Warn("Invalid mapping entry skipped", zap.String("entry", entry))
			continue
		}

		id := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if id == "" || value == "" {
			logger.Warn("Invalid mapping entry skipped", zap.String("entry", entry))
			continue
		}

		table[id] = value
	}

	return table
}

// Resolve returns the display name for id.
// Empty values are treated as missing.
func (t Table) Resolve(id string) (string, bool) {
	value, ok := t[id]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Resolver resolves identifiers against a table and logs every miss.
type Resolver struct {
	table  Table
	logger *zap.Logger
}

// NewResolver creates a Resolver over table.
func NewResolver(table Table, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{table: table, logger: logger}
}

// Resolve looks up id and emits a warning when it is not mapped.
func (r *Resolver) Resolve(id string) (string, bool) {
	value, ok := r.table.Resolve(id)
	if !ok {
		r.logger.Warn("Mapping not found", zap.String("id", id))
	}
	return value, ok
}
