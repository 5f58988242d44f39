// Package ledger reconciles a session's in-memory day against the full
// persisted dataset. The session only holds dates the user touched this
// login, so a naive overwrite of the remote table would erase every
// other day's history; Reconcile swaps out only the target date's rows.
package ledger

import (
	"errors"
	"fmt"
	"sort"

	"registro/internal/core"
	"registro/internal/sheets"
)

// ErrGuardAbort is returned when the session holds zero rows for the
// target date while the remote table has some. That state is
// indistinguishable from a session that never loaded the day's data, so
// the save for that table is cancelled rather than risk wiping it.
var ErrGuardAbort = errors.New("save cancelled: session is empty for a date the store still has")

// Reconcile computes the final row set to persist for one table:
// remote rows not matching target plus the session's rows for target.
// Date cells are normalized to the canonical YYYY-MM-DD form and every
// row is padded to the given header. Row order is: untouched remote
// rows first (original order), then the session's rows.
func Reconcile(remote, session []sheets.Row, target core.Date, header []string) ([]sheets.Row, error) {
	var sessionDay []sheets.Row
	for _, r := range session {
		if matchesDate(r, target) {
			sessionDay = append(sessionDay, r)
		}
	}

	var kept []sheets.Row
	remoteDayCount := 0
	for _, r := range remote {
		if matchesDate(r, target) {
			remoteDayCount++
			continue
		}
		kept = append(kept, r)
	}

	if len(sessionDay) == 0 && remoteDayCount > 0 {
		return nil, fmt.Errorf("%w (%d remote rows for %s)", ErrGuardAbort, remoteDayCount, target)
	}

	final := make([]sheets.Row, 0, len(kept)+len(sessionDay))
	for _, r := range append(kept, sessionDay...) {
		final = append(final, normalize(r, header))
	}
	return final, nil
}

// matchesDate parses the row's Date cell and compares at day precision.
// Unparsable or missing dates never match, so such rows are preserved
// with the "other dates" partition.
func matchesDate(r sheets.Row, target core.Date) bool {
	d, err := core.ParseDate(r.Get(sheets.ColDate))
	if err != nil {
		return false
	}
	return d.Equal(target)
}

// normalize pads the row to the canonical header and rewrites the date
// cell to ISO form. The input row is not mutated.
func normalize(r sheets.Row, header []string) sheets.Row {
	out := make(sheets.Row, len(header))
	for _, col := range header {
		out[col] = r.Get(col)
	}
	if d, err := core.ParseDate(out[sheets.ColDate]); err == nil {
		out[sheets.ColDate] = d.String()
	}
	return out
}

// TableResult is the outcome of reconciling and writing one table.
type TableResult struct {
	Table   string
	Saved   bool
	Guarded bool
	Rows    int
	Err     error
}

// SaveReport collects per-table outcomes of a day save. Tables are
// reconciled independently; a guard trip in one does not block the
// others, and the report says which datasets were protected.
type SaveReport struct {
	Results []TableResult
}

// Add records one table's outcome.
func (r *SaveReport) Add(res TableResult) {
	r.Results = append(r.Results, res)
}

// Guarded returns the names of tables whose save was cancelled by the
// safety guard, sorted for stable reporting.
func (r SaveReport) Guarded() []string {
	var out []string
	for _, res := range r.Results {
		if res.Guarded {
			out = append(out, res.Table)
		}
	}
	sort.Strings(out)
	return out
}

// Err returns the first hard failure (connectivity, write error), nil
// when every table either saved or was merely guarded.
func (r SaveReport) Err() error {
	for _, res := range r.Results {
		if res.Err != nil && !res.Guarded {
			return fmt.Errorf("table %s: %w", res.Table, res.Err)
		}
	}
	return nil
}

// AllSaved reports whether every table was written.
func (r SaveReport) AllSaved() bool {
	for _, res := range r.Results {
		if !res.Saved {
			return false
		}
	}
	return len(r.Results) > 0
}
