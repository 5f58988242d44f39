// Package memory is the in-process table store used by tests and as
// the default backend for local runs.
package memory

import (
	"context"
	"fmt"
	"sync"

	"registro/internal/sheets"
)

type table struct {
	header []string
	rows   []sheets.Row
}

// Store keeps whole tables in memory. Replace swaps the slice in one
// step under the lock, so reads never observe a partial write.
type Store struct {
	mu     sync.Mutex
	tables map[string]*table
}

var _ sheets.TableStore = (*Store)(nil)

// New creates an empty store with the three ledger tables present.
func New() *Store {
	s := &Store{tables: map[string]*table{}}
	for _, name := range sheets.TableNames() {
		s.tables[name] = &table{header: sheets.Headers(name)}
	}
	return s
}

func (s *Store) ReadTable(_ context.Context, name string) ([]sheets.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", name)
	}
	out := make([]sheets.Row, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, r.Clone())
	}
	return out, nil
}

func (s *Store) ReplaceTable(_ context.Context, name string, header []string, rows []sheets.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[name]
	if !ok {
		return fmt.Errorf("unknown table %q", name)
	}
	copied := make([]sheets.Row, 0, len(rows))
	for _, r := range rows {
		copied = append(copied, r.Clone())
	}
	t.header = append([]string(nil), header...)
	t.rows = copied
	return nil
}

// Seed loads rows into a table directly, bypassing the replace
// semantics. Test helper.
func (s *Store) Seed(name string, rows ...sheets.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[name]
	if !ok {
		t = &table{header: sheets.Headers(name)}
		s.tables[name] = t
	}
	for _, r := range rows {
		t.rows = append(t.rows, r.Clone())
	}
}
