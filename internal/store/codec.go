package store

import (
	"registro/internal/core"
	"registro/internal/sheets"
)

// Row↔record codecs. Dates and amounts are strings on the sheet side;
// parsing is safe-by-default here: a bad amount coerces to zero cents
// and a bad date to the zero date. Callers count and log zero dates.

func decodeAppointment(r sheets.Row) core.Appointment {
	date, _ := core.ParseDate(r.Get(sheets.ColDate))
	payment := core.PaymentMethod(r.Get(sheets.ColPaymentMethod))
	if payment == "" {
		payment = core.PaymentUnspecified
	}
	a := core.Appointment{
		Date:      date,
		Slot:      core.NormalizeSlot(r.Get(sheets.ColTime)),
		Client:    r.Get(sheets.ColClient),
		Service:   r.Get(sheets.ColService),
		Staff:     r.Get(sheets.ColStaff),
		Payment:   payment,
		Primary:   core.CoerceCents(r.Get(sheets.ColAmount1)),
		Secondary: core.CoerceCents(r.Get(sheets.ColAmount2)),
		Total:     core.CoerceCents(r.Get(sheets.ColTotalAmount)),
	}
	// Older rows predate the TotalAmount column.
	if a.Total.Cents == 0 {
		a.Total = a.Primary.Add(a.Secondary)
	}
	return a
}

func encodeAppointment(a core.Appointment) sheets.Row {
	return sheets.Row{
		sheets.ColDate:          a.Date.String(),
		sheets.ColTime:          a.Slot,
		sheets.ColClient:        a.Client,
		sheets.ColService:       a.Service,
		sheets.ColStaff:         a.Staff,
		sheets.ColPaymentMethod: string(a.Payment),
		sheets.ColAmount1:       a.Primary.String(),
		sheets.ColAmount2:       a.Secondary.String(),
		sheets.ColTotalAmount:   a.Total.String(),
	}
}

func decodeExpense(r sheets.Row) core.Expense {
	date, _ := core.ParseDate(r.Get(sheets.ColDate))
	return core.Expense{
		Date:        date,
		Description: r.Get(sheets.ColDescription),
		Amount:      core.CoerceCents(r.Get(sheets.ColAmount)),
	}
}

func encodeExpense(e core.Expense) sheets.Row {
	return sheets.Row{
		sheets.ColDate:        e.Date.String(),
		sheets.ColDescription: e.Description,
		sheets.ColAmount:      e.Amount.String(),
	}
}

func decodeSale(r sheets.Row) core.Sale {
	date, _ := core.ParseDate(r.Get(sheets.ColDate))
	return core.Sale{
		Date:   date,
		Item:   r.Get(sheets.ColItem),
		Amount: core.CoerceCents(r.Get(sheets.ColAmount)),
		Seller: r.Get(sheets.ColSeller),
	}
}

func encodeSale(s core.Sale) sheets.Row {
	return sheets.Row{
		sheets.ColDate:   s.Date.String(),
		sheets.ColItem:   s.Item,
		sheets.ColAmount: s.Amount.String(),
		sheets.ColSeller: s.Seller,
	}
}
