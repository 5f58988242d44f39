package core

// DaySummary aggregates the cashflow of a single business day.
type DaySummary struct {
	Date         Date
	Appointments Money
	Sales        Money
	Expenses     Money
	Net          Money
}

// Summarize totals appointment revenue, sale revenue and expenses for
// the given day and computes the net profit. Records for other days are
// ignored; records with a zero (unparsable) date never match a real day
// and so contribute nothing.
func Summarize(appts []Appointment, expenses []Expense, sales []Sale, day Date) DaySummary {
	s := DaySummary{Date: day}
	for _, a := range appts {
		if a.Date.Equal(day) {
			s.Appointments = s.Appointments.Add(a.Total)
		}
	}
	for _, sa := range sales {
		if sa.Date.Equal(day) {
			s.Sales = s.Sales.Add(sa.Amount)
		}
	}
	for _, e := range expenses {
		if e.Date.Equal(day) {
			s.Expenses = s.Expenses.Add(e.Amount)
		}
	}
	s.Net = s.Appointments.Add(s.Sales).Sub(s.Expenses)
	return s
}
