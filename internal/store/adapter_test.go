package store

import (
	"context"
	"log/slog"
	"testing"

	"registro/internal/core"
	applog "registro/internal/log"
	"registro/internal/session"
	"registro/internal/sheets"
	"registro/internal/sheets/memory"
)

func testLogger() *applog.Logger {
	return applog.New(slog.LevelError)
}

func apptRow(date, slot, client, staff, total string) sheets.Row {
	return sheets.Row{
		sheets.ColDate: date, sheets.ColTime: slot, sheets.ColClient: client,
		sheets.ColService: "Degradê", sheets.ColStaff: staff,
		sheets.ColPaymentMethod: "Pix", sheets.ColAmount1: total,
		sheets.ColTotalAmount: total,
	}
}

func TestLoadAllDecodes(t *testing.T) {
	mem := memory.New()
	mem.Seed(sheets.TableAppointments,
		// comma decimal, legacy numeric time cell
		sheets.Row{
			sheets.ColDate: "2025-06-14", sheets.ColTime: "14",
			sheets.ColClient: "João", sheets.ColStaff: "Aluízio",
			sheets.ColPaymentMethod: "Pix",
			sheets.ColAmount1:       "45,50", sheets.ColTotalAmount: "45,50",
		},
		// unparsable date, garbage and non-finite amounts
		sheets.Row{
			sheets.ColDate: "quarta-feira", sheets.ColTime: "10:00",
			sheets.ColClient: "???", sheets.ColStaff: "Aluízio",
			sheets.ColAmount1: "NaN", sheets.ColTotalAmount: "abc",
		},
	)
	mem.Seed(sheets.TableExpenses,
		sheets.Row{sheets.ColDate: "2025-06-14", sheets.ColDescription: "lâminas", sheets.ColAmount: "20.00"})

	snap, err := New(mem, testLogger()).LoadAll(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Appointments) != 2 || len(snap.Expenses) != 1 {
		t.Fatalf("unexpected sizes: %d appts, %d expenses", len(snap.Appointments), len(snap.Expenses))
	}
	a := snap.Appointments[0]
	if a.Slot != "14:00" {
		t.Fatalf("legacy time cell not normalized: %q", a.Slot)
	}
	if a.Total.Cents != 4550 {
		t.Fatalf("comma amount: expected 4550, got %d", a.Total.Cents)
	}
	if a.Payment != "Pix" {
		t.Fatalf("unexpected payment: %q", a.Payment)
	}
	bad := snap.Appointments[1]
	if !bad.Date.IsZero() || bad.Total.Cents != 0 || bad.Primary.Cents != 0 {
		t.Fatalf("malformed row should coerce to safe defaults: %+v", bad)
	}
}

func TestSaveDayPreservesOtherDates(t *testing.T) {
	mem := memory.New()
	mem.Seed(sheets.TableAppointments,
		apptRow("2025-06-13", "09:00", "Carlos", "Aluízio", "40.00"),
		apptRow("2025-06-14", "10:00", "João", "Aluízio", "50.00"),
	)
	rs := New(mem, testLogger())

	snap, err := rs.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	day := core.NewDate(2025, 6, 14)
	sess := session.New(snap, day, core.StrictSlotPolicy())
	if err := sess.AddAppointment(core.Appointment{
		Date: day, Slot: "11:00", Client: "Pedro", Service: "Social",
		Staff: "Lucas Borges", Payment: "Dinheiro", Total: core.Money{Cents: 3500},
	}); err != nil {
		t.Fatalf("add: %v", err)
	}

	report := rs.SaveDay(context.Background(), sess, day)
	if !report.AllSaved() {
		t.Fatalf("expected full save, got %+v", report)
	}

	rows, _ := mem.ReadTable(context.Background(), sheets.TableAppointments)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	// The untouched day survives.
	if rows[0][sheets.ColDate] != "2025-06-13" || rows[0][sheets.ColClient] != "Carlos" {
		t.Fatalf("other day's row damaged: %v", rows[0])
	}
}

func TestSaveDayGuardIsPerTable(t *testing.T) {
	mem := memory.New()
	mem.Seed(sheets.TableAppointments, apptRow("2025-06-14", "10:00", "João", "Aluízio", "50.00"))
	rs := New(mem, testLogger())

	// A fresh session that never loaded the day's data: zero records
	// for the date while the store has one appointment. Appointments
	// must be guarded, expenses and sales still go through.
	day := core.NewDate(2025, 6, 14)
	sess := session.New(session.Snapshot{}, day, core.StrictSlotPolicy())
	if err := sess.AddExpense(core.Expense{Date: day, Description: "lâminas", Amount: core.Money{Cents: 2000}}); err != nil {
		t.Fatalf("add: %v", err)
	}

	report := rs.SaveDay(context.Background(), sess, day)
	if guarded := report.Guarded(); len(guarded) != 1 || guarded[0] != sheets.TableAppointments {
		t.Fatalf("expected only Appointments guarded, got %v", guarded)
	}
	if report.Err() != nil {
		t.Fatalf("guard must not be a hard error: %v", report.Err())
	}

	// The guarded table is untouched.
	rows, _ := mem.ReadTable(context.Background(), sheets.TableAppointments)
	if len(rows) != 1 || rows[0][sheets.ColClient] != "João" {
		t.Fatalf("guarded table changed: %v", rows)
	}
	// The expense made it.
	exp, _ := mem.ReadTable(context.Background(), sheets.TableExpenses)
	if len(exp) != 1 || exp[0][sheets.ColDescription] != "lâminas" {
		t.Fatalf("expense not saved: %v", exp)
	}
}

func TestRoundTripCommaAmount(t *testing.T) {
	mem := memory.New()
	rs := New(mem, testLogger())
	day := core.NewDate(2025, 6, 14)

	sess := session.New(session.Snapshot{}, day, core.StrictSlotPolicy())
	cents, err := core.ParseDecimalToCents("45,50")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := sess.AddExpense(core.Expense{Date: day, Description: "toalhas", Amount: core.Money{Cents: cents}}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if report := rs.SaveDay(context.Background(), sess, day); !report.AllSaved() {
		t.Fatalf("save: %+v", report)
	}

	snap, err := rs.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Expenses) != 1 || snap.Expenses[0].Amount.Cents != 4550 {
		t.Fatalf("round trip: %+v", snap.Expenses)
	}
}
