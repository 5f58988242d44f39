package sheets

// Canonical table names.
const (
	TableAppointments = "Appointments"
	TableExpenses     = "Expenses"
	TableSales        = "Sales"
)

// Canonical column names shared across tables.
const (
	ColDate          = "Date"
	ColTime          = "Time"
	ColClient        = "Client"
	ColService       = "Service"
	ColStaff         = "Staff"
	ColPaymentMethod = "PaymentMethod"
	ColAmount1       = "Amount1"
	ColAmount2       = "Amount2"
	ColTotalAmount   = "TotalAmount"
	ColDescription   = "Description"
	ColAmount        = "Amount"
	ColItem          = "Item"
	ColSeller        = "Seller"
)

// Headers returns the canonical column order for a table, nil for an
// unknown name. Rows written back to the store are padded to this
// order.
func Headers(table string) []string {
	switch table {
	case TableAppointments:
		return []string{ColDate, ColTime, ColClient, ColService, ColStaff, ColPaymentMethod, ColAmount1, ColAmount2, ColTotalAmount}
	case TableExpenses:
		return []string{ColDate, ColDescription, ColAmount}
	case TableSales:
		return []string{ColDate, ColItem, ColAmount, ColSeller}
	default:
		return nil
	}
}

// TableNames lists the three ledger tables in their fixed order.
func TableNames() []string {
	return []string{TableAppointments, TableExpenses, TableSales}
}
