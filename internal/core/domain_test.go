package core

import (
	"testing"
	"time"
)

func TestDateEqualAndString(t *testing.T) {
	d := NewDate(2025, 6, 14)
	if d.String() != "2025-06-14" {
		t.Fatalf("unexpected format: %s", d.String())
	}
	parsed, err := ParseDate(" 2025-06-14 ")
	if err != nil || !parsed.Equal(d) {
		t.Fatalf("parse mismatch: %v err=%v", parsed, err)
	}
	if _, err := ParseDate("14/06/2025"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
	if (Date{}).String() != "" {
		t.Fatalf("zero date should format empty")
	}
	// Day precision: time-of-day is irrelevant.
	noon := Date{Time: time.Date(2025, 6, 14, 12, 30, 0, 0, time.UTC)}
	if !noon.Equal(d) {
		t.Fatalf("same day with different clock should be equal")
	}
}

func TestAppointmentValidate(t *testing.T) {
	good := Appointment{
		Date: NewDate(2025, 6, 14), Slot: "10:00", Client: "João",
		Service: "Degradê", Staff: "Aluízio", Payment: "Pix",
		Primary: Money{Cents: 5000}, Total: Money{Cents: 5000},
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	split := good
	split.Payment = "Pix"
	split.Primary = Money{Cents: 3000}
	split.Secondary = Money{Cents: 2000}
	if err := split.Validate(); err != nil {
		t.Fatalf("valid split rejected: %v", err)
	}
	split.Secondary = Money{Cents: 1000}
	if err := split.Validate(); err != ErrSplitMismatch {
		t.Fatalf("expected ErrSplitMismatch, got %v", err)
	}

	bads := []Appointment{
		{Slot: "10:00", Client: "a", Staff: "b", Total: Money{Cents: 1}}, // zero date
		{Date: NewDate(2025, 6, 14), Client: "a", Staff: "b", Total: Money{Cents: 1}},
		{Date: NewDate(2025, 6, 14), Slot: "10:00", Client: "  ", Staff: "b", Total: Money{Cents: 1}},
		{Date: NewDate(2025, 6, 14), Slot: "10:00", Client: "a", Staff: "", Total: Money{Cents: 1}},
		{Date: NewDate(2025, 6, 14), Slot: "10:00", Client: "a", Staff: "b", Total: Money{Cents: 0}},
	}
	for i, a := range bads {
		if err := a.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestExpenseAndSaleValidate(t *testing.T) {
	day := NewDate(2025, 6, 14)
	if err := (Expense{Date: day, Description: "lâminas", Amount: Money{Cents: 2000}}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Expense{Date: day, Description: "", Amount: Money{Cents: 1}}).Validate(); err != ErrEmptyDescription {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}
	if err := (Expense{Date: day, Description: "x", Amount: Money{}}).Validate(); err != ErrInvalidAmount {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	if err := (Sale{Date: day, Item: "pomada", Amount: Money{Cents: 2500}, Seller: "Lucas Borges"}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Sale{Date: day, Item: "", Amount: Money{Cents: 1}, Seller: "x"}).Validate(); err != ErrEmptyItem {
		t.Fatalf("expected ErrEmptyItem, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	d := NewDate(2025, 6, 14)
	d2 := NewDate(2025, 6, 15)
	appts := []Appointment{
		{Date: d, Total: Money{Cents: 5000}},
		{Date: d, Total: Money{Cents: 3000}},
		{Date: d2, Total: Money{Cents: 10000}},
	}
	expenses := []Expense{{Date: d, Amount: Money{Cents: 2000}}}
	s := Summarize(appts, expenses, nil, d)
	if s.Appointments.Cents != 8000 {
		t.Fatalf("appointments: expected 8000, got %d", s.Appointments.Cents)
	}
	if s.Expenses.Cents != 2000 || s.Sales.Cents != 0 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if s.Net.Cents != 6000 {
		t.Fatalf("net: expected 6000, got %d", s.Net.Cents)
	}
}

func TestSummarizeSkipsUnparsableDates(t *testing.T) {
	d := NewDate(2025, 6, 14)
	// A record whose date failed to parse carries a zero date and must
	// never be counted toward a real day.
	appts := []Appointment{{Date: Date{}, Total: Money{Cents: 9999}}, {Date: d, Total: Money{Cents: 100}}}
	if s := Summarize(appts, nil, nil, d); s.Appointments.Cents != 100 {
		t.Fatalf("expected 100, got %d", s.Appointments.Cents)
	}
}
