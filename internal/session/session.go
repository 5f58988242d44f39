// Package session holds the per-login working set: every loaded record
// across all dates, plus the date currently being edited. A Session is
// built from a store snapshot at login and thrown away at logout; there
// is no global state.
package session

import (
	"errors"
	"fmt"

	"registro/internal/core"
)

// ErrSlotTaken rejects an appointment whose (date, slot, staff) is
// already booked under the active slot policy.
var ErrSlotTaken = errors.New("slot already booked for this staff member")

// ErrNoSuchRecord rejects a removal whose index does not point at a
// record of the selected date.
var ErrNoSuchRecord = errors.New("no such record")

// Snapshot is the full dataset handed over by the store at login.
type Snapshot struct {
	Appointments []core.Appointment
	Expenses     []core.Expense
	Sales        []core.Sale
}

// Session is the single in-memory source of truth between login and
// logout. It is not safe for concurrent use; the caller serializes
// access (one active session per login).
type Session struct {
	appointments []core.Appointment
	expenses     []core.Expense
	sales        []core.Sale

	selected core.Date
	policy   core.SlotPolicy
}

// New builds a session over a loaded snapshot, editing the given date.
func New(snap Snapshot, selected core.Date, policy core.SlotPolicy) *Session {
	return &Session{
		appointments: snap.Appointments,
		expenses:     snap.Expenses,
		sales:        snap.Sales,
		selected:     selected,
		policy:       policy,
	}
}

// SelectedDate returns the date currently displayed and edited.
func (s *Session) SelectedDate() core.Date { return s.selected }

// SelectDate switches the edited date. Records are kept; only the view
// and the save scope change.
func (s *Session) SelectDate(d core.Date) { s.selected = d }

// AddAppointment validates the record, runs the conflict check and
// appends it to the working set. The record never enters the set when
// either step fails.
func (s *Session) AddAppointment(a core.Appointment) error {
	if a.Payment == "" {
		a.Payment = core.PaymentUnspecified
	}
	if a.Secondary.Cents == 0 && a.Primary.Cents == 0 {
		a.Primary = a.Total
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if s.policy.Conflicts(s.appointments, a.Date, a.Slot, a.Staff, a.Service) {
		return fmt.Errorf("%w: %s %s / %s", ErrSlotTaken, a.Date, a.Slot, a.Staff)
	}
	s.appointments = append(s.appointments, a)
	return nil
}

func (s *Session) AddExpense(e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	s.expenses = append(s.expenses, e)
	return nil
}

func (s *Session) AddSale(sa core.Sale) error {
	if err := sa.Validate(); err != nil {
		return err
	}
	s.sales = append(s.sales, sa)
	return nil
}

// AppointmentsOn returns the selected-date view used by the UI; removal
// indexes refer to this view.
func (s *Session) AppointmentsOn(d core.Date) []core.Appointment {
	var out []core.Appointment
	for _, a := range s.appointments {
		if a.Date.Equal(d) {
			out = append(out, a)
		}
	}
	return out
}

func (s *Session) ExpensesOn(d core.Date) []core.Expense {
	var out []core.Expense
	for _, e := range s.expenses {
		if e.Date.Equal(d) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Session) SalesOn(d core.Date) []core.Sale {
	var out []core.Sale
	for _, sa := range s.sales {
		if sa.Date.Equal(d) {
			out = append(out, sa)
		}
	}
	return out
}

// RemoveAppointment deletes the idx-th appointment of the selected date.
func (s *Session) RemoveAppointment(idx int) error {
	pos := 0
	for i, a := range s.appointments {
		if !a.Date.Equal(s.selected) {
			continue
		}
		if pos == idx {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			return nil
		}
		pos++
	}
	return ErrNoSuchRecord
}

func (s *Session) RemoveExpense(idx int) error {
	pos := 0
	for i, e := range s.expenses {
		if !e.Date.Equal(s.selected) {
			continue
		}
		if pos == idx {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return nil
		}
		pos++
	}
	return ErrNoSuchRecord
}

func (s *Session) RemoveSale(idx int) error {
	pos := 0
	for i, sa := range s.sales {
		if !sa.Date.Equal(s.selected) {
			continue
		}
		if pos == idx {
			s.sales = append(s.sales[:i], s.sales[i+1:]...)
			return nil
		}
		pos++
	}
	return ErrNoSuchRecord
}

// Summary totals the selected date.
func (s *Session) Summary() core.DaySummary {
	return core.Summarize(s.appointments, s.expenses, s.sales, s.selected)
}

// Policy exposes the conflict policy for availability checks.
func (s *Session) Policy() core.SlotPolicy { return s.policy }
