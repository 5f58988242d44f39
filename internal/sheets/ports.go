// Package sheets defines the boundary to the tabular store. Backends
// (Google Sheets, SQLite, in-memory) implement the same two operations:
// read all rows of a named table, replace all rows of a named table.
package sheets

import "context"

// Row maps canonical column names to string cell values. Missing
// columns read as "".
type Row map[string]string

// Ports for outbound adapters.
type (
	TableReader interface {
		// ReadTable returns every data row of the named table in
		// sheet order. An empty table (header only) returns no rows.
		ReadTable(ctx context.Context, name string) ([]Row, error)
	}

	TableWriter interface {
		// ReplaceTable overwrites the table's full contents with
		// header + rows. The write is atomic from the caller's view:
		// no partial result is ever observable.
		ReplaceTable(ctx context.Context, name string, header []string, rows []Row) error
	}

	TableStore interface {
		TableReader
		TableWriter
	}
)

// Get returns the cell for col, "" when absent.
func (r Row) Get(col string) string {
	return r[col]
}

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
