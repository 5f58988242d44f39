// Package store adapts between the table store's row representation
// and the session's typed records: it loads the full dataset at login
// and writes a single day back through the ledger merge on save.
package store

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"registro/internal/core"
	"registro/internal/ledger"
	applog "registro/internal/log"
	"registro/internal/session"
	"registro/internal/sheets"
)

type RecordStore struct {
	tables sheets.TableStore
	logger *applog.Logger
}

func New(tables sheets.TableStore, logger *applog.Logger) *RecordStore {
	return &RecordStore{
		tables: tables,
		logger: logger.WithComponent(applog.ComponentStore),
	}
}

// LoadAll reads the three tables concurrently and decodes every row
// into the session snapshot. Rows whose date cell does not parse are
// kept with a zero date (excluded from day-scoped totals) and counted
// in a warning; a failed table read fails the whole load.
func (s *RecordStore) LoadAll(ctx context.Context) (session.Snapshot, error) {
	var (
		apptRows, expRows, saleRows []sheets.Row
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		apptRows, err = s.tables.ReadTable(gctx, sheets.TableAppointments)
		return err
	})
	g.Go(func() (err error) {
		expRows, err = s.tables.ReadTable(gctx, sheets.TableExpenses)
		return err
	})
	g.Go(func() (err error) {
		saleRows, err = s.tables.ReadTable(gctx, sheets.TableSales)
		return err
	})
	if err := g.Wait(); err != nil {
		return session.Snapshot{}, fmt.Errorf("load tables: %w", err)
	}

	var snap session.Snapshot
	badDates := 0
	for _, r := range apptRows {
		a := decodeAppointment(r)
		if a.Date.IsZero() {
			badDates++
		}
		snap.Appointments = append(snap.Appointments, a)
	}
	for _, r := range expRows {
		e := decodeExpense(r)
		if e.Date.IsZero() {
			badDates++
		}
		snap.Expenses = append(snap.Expenses, e)
	}
	for _, r := range saleRows {
		sa := decodeSale(r)
		if sa.Date.IsZero() {
			badDates++
		}
		snap.Sales = append(snap.Sales, sa)
	}
	if badDates > 0 {
		s.logger.WarnContext(ctx, "Loaded rows with unparsable dates",
			applog.FieldRowCount, badDates)
	}
	s.logger.InfoContext(ctx, "Loaded working set",
		"appointments", len(snap.Appointments),
		"expenses", len(snap.Expenses),
		"sales", len(snap.Sales))
	return snap, nil
}

// SaveDay reconciles the session's records for the given date against
// each remote table and overwrites the changed tables. The three
// tables are handled independently and concurrently: a guard trip or
// failure in one never blocks the others. The report says, per table,
// whether it was saved, guarded or failed.
func (s *RecordStore) SaveDay(ctx context.Context, sess *session.Session, date core.Date) ledger.SaveReport {
	dayRows := map[string][]sheets.Row{
		sheets.TableAppointments: encodeAppointments(sess.AppointmentsOn(date)),
		sheets.TableExpenses:     encodeExpenses(sess.ExpensesOn(date)),
		sheets.TableSales:        encodeSales(sess.SalesOn(date)),
	}

	names := sheets.TableNames()
	results := make([]ledger.TableResult, len(names))

	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			results[i] = s.saveTable(ctx, name, dayRows[name], date)
			return nil
		})
	}
	_ = g.Wait()

	var report ledger.SaveReport
	for _, res := range results {
		report.Add(res)
	}
	return report
}

func (s *RecordStore) saveTable(ctx context.Context, name string, dayRows []sheets.Row, date core.Date) ledger.TableResult {
	res := ledger.TableResult{Table: name}

	remote, err := s.tables.ReadTable(ctx, name)
	if err != nil {
		res.Err = fmt.Errorf("read: %w", err)
		s.logger.ErrorContext(ctx, "Save failed reading table",
			applog.FieldTable, name, applog.FieldError, err)
		return res
	}

	header := sheets.Headers(name)
	final, err := ledger.Reconcile(remote, dayRows, date, header)
	if err != nil {
		res.Err = err
		if errors.Is(err, ledger.ErrGuardAbort) {
			res.Guarded = true
			s.logger.WarnContext(ctx, "Save guarded against mass deletion",
				applog.FieldTable, name,
				applog.FieldDate, date.String(),
				applog.FieldGuarded, true)
		} else {
			s.logger.ErrorContext(ctx, "Reconcile failed",
				applog.FieldTable, name, applog.FieldError, err)
		}
		return res
	}

	if err := s.tables.ReplaceTable(ctx, name, header, final); err != nil {
		res.Err = fmt.Errorf("replace: %w", err)
		s.logger.ErrorContext(ctx, "Save failed writing table",
			applog.FieldTable, name, applog.FieldError, err)
		return res
	}

	res.Saved = true
	res.Rows = len(final)
	s.logger.InfoContext(ctx, "Saved table",
		applog.FieldTable, name,
		applog.FieldDate, date.String(),
		applog.FieldRowCount, len(final))
	return res
}

func encodeAppointments(in []core.Appointment) []sheets.Row {
	out := make([]sheets.Row, 0, len(in))
	for _, a := range in {
		out = append(out, encodeAppointment(a))
	}
	return out
}

func encodeExpenses(in []core.Expense) []sheets.Row {
	out := make([]sheets.Row, 0, len(in))
	for _, e := range in {
		out = append(out, encodeExpense(e))
	}
	return out
}

func encodeSales(in []core.Sale) []sheets.Row {
	out := make([]sheets.Row, 0, len(in))
	for _, sa := range in {
		out = append(out, encodeSale(sa))
	}
	return out
}
