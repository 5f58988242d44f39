// Package storage is the SQLite rendition of the table store, for
// running the register without a spreadsheet (offline or self-hosted).
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"registro/internal/sheets"

	_ "modernc.org/sqlite"
)

// sqlTables maps canonical table names onto their SQL shape. Column
// order mirrors sheets.Headers.
var sqlTables = map[string]struct {
	relation string
	columns  []string
}{
	sheets.TableAppointments: {
		relation: "appointments",
		columns:  []string{"date", "time", "client", "service", "staff", "payment_method", "amount1", "amount2", "total_amount"},
	},
	sheets.TableExpenses: {
		relation: "expenses",
		columns:  []string{"date", "description", "amount"},
	},
	sheets.TableSales: {
		relation: "sales",
		columns:  []string{"date", "item", "amount", "seller"},
	},
}

type Repository struct {
	db *sql.DB
}

var _ sheets.TableStore = (*Repository)(nil)

func NewRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ReadTable returns all rows of the named table in insertion order.
func (r *Repository) ReadTable(ctx context.Context, name string) ([]sheets.Row, error) {
	spec, ok := sqlTables[name]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", name)
	}
	header := sheets.Headers(name)

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY position, id",
		strings.Join(spec.columns, ", "), spec.relation)
	dbRows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", spec.relation, err)
	}
	defer dbRows.Close()

	var out []sheets.Row
	for dbRows.Next() {
		cells := make([]string, len(spec.columns))
		dest := make([]any, len(cells))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := dbRows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", spec.relation, err)
		}
		row := make(sheets.Row, len(header))
		for i, col := range header {
			row[col] = cells[i]
		}
		out = append(out, row)
	}
	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", spec.relation, err)
	}
	return out, nil
}

// ReplaceTable overwrites the table inside one transaction, so a
// failed write leaves the previous contents intact.
func (r *Repository) ReplaceTable(ctx context.Context, name string, header []string, rows []sheets.Row) error {
	spec, ok := sqlTables[name]
	if !ok {
		return fmt.Errorf("unknown table %q", name)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+spec.relation); err != nil {
		return fmt.Errorf("clear %s: %w", spec.relation, err)
	}

	placeholders := make([]string, len(spec.columns)+1)
	for i := range placeholders {
		placeholders[i] = "?"
	}
	insert := fmt.Sprintf("INSERT INTO %s (position, %s) VALUES (%s)",
		spec.relation, strings.Join(spec.columns, ", "), strings.Join(placeholders, ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	canonical := sheets.Headers(name)
	for pos, row := range rows {
		args := make([]any, 0, len(canonical)+1)
		args = append(args, pos)
		for _, col := range canonical {
			args = append(args, row.Get(col))
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert into %s: %w", spec.relation, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	slog.InfoContext(ctx, "Replaced table in SQLite",
		"table", name, "row_count", len(rows))
	return nil
}
