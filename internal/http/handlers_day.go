package http

import (
	"net/http"

	"registro/internal/amqp"
	"registro/internal/core"
	"registro/internal/ledger"
	applog "registro/internal/log"
)

type dateRequest struct {
	Date string `json:"date"`
}

type appointmentView struct {
	Slot            string `json:"slot"`
	Client          string `json:"client"`
	Service         string `json:"service"`
	Staff           string `json:"staff"`
	Payment         string `json:"payment"`
	Amount          string `json:"amount"`
	SecondaryAmount string `json:"secondary_amount,omitempty"`
	Total           string `json:"total"`
}

type expenseView struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

type saleView struct {
	Item   string `json:"item"`
	Amount string `json:"amount"`
	Seller string `json:"seller"`
}

type summaryView struct {
	Date         string `json:"date"`
	Appointments string `json:"appointments"`
	Sales        string `json:"sales"`
	Expenses     string `json:"expenses"`
	Net          string `json:"net"`
}

type dayResponse struct {
	Date         string            `json:"date"`
	Appointments []appointmentView `json:"appointments"`
	Expenses     []expenseView     `json:"expenses"`
	Sales        []saleView        `json:"sales"`
	Summary      summaryView       `json:"summary"`
}

type tableResultView struct {
	Table   string `json:"table"`
	Saved   bool   `json:"saved"`
	Guarded bool   `json:"guarded"`
	Rows    int    `json:"rows,omitempty"`
	Error   string `json:"error,omitempty"`
}

type saveResponse struct {
	Saved   bool              `json:"saved"`
	Guarded []string          `json:"guarded,omitempty"`
	Tables  []tableResultView `json:"tables"`
}

func (s *Server) handleSelectDate(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	var req dateRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	d, err := core.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid date, expected YYYY-MM-DD")
		return
	}
	s.mu.Lock()
	sess.SelectDate(d)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"date": d.String()})
}

func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	s.mu.Lock()
	date := sess.SelectedDate()
	appts := sess.AppointmentsOn(date)
	expenses := sess.ExpensesOn(date)
	sales := sess.SalesOn(date)
	summary := sess.Summary()
	s.mu.Unlock()

	resp := dayResponse{
		Date:         date.String(),
		Appointments: make([]appointmentView, 0, len(appts)),
		Expenses:     make([]expenseView, 0, len(expenses)),
		Sales:        make([]saleView, 0, len(sales)),
		Summary:      newSummaryView(summary),
	}
	for _, a := range appts {
		v := appointmentView{
			Slot: a.Slot, Client: a.Client, Service: a.Service,
			Staff: a.Staff, Payment: string(a.Payment),
			Amount: a.Primary.String(), Total: a.Total.String(),
		}
		if a.Secondary.Cents > 0 {
			v.SecondaryAmount = a.Secondary.String()
		}
		resp.Appointments = append(resp.Appointments, v)
	}
	for _, e := range expenses {
		resp.Expenses = append(resp.Expenses, expenseView{Description: e.Description, Amount: e.Amount.String()})
	}
	for _, sa := range sales {
		resp.Sales = append(resp.Sales, saleView{Item: sa.Item, Amount: sa.Amount.String(), Seller: sa.Seller})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	s.mu.Lock()
	summary := sess.Summary()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, newSummaryView(summary))
}

// handleSlots returns the day's slot grid. With a staff query parameter
// the grid is filtered down to the slots still bookable for that staff
// member on the selected date.
func (s *Server) handleSlots(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	slots := core.GenerateSlots(s.cfg.OpenHour, s.cfg.CloseHour, s.cfg.SlotIntervalMin)

	staff := sanitize(r.URL.Query().Get("staff"))
	if staff == "" {
		writeJSON(w, http.StatusOK, map[string][]string{"slots": slots})
		return
	}
	service := sanitize(r.URL.Query().Get("service"))

	s.mu.Lock()
	date := sess.SelectedDate()
	existing := sess.AppointmentsOn(date)
	policy := sess.Policy()
	s.mu.Unlock()

	free := make([]string, 0, len(slots))
	for _, slot := range slots {
		if !policy.Conflicts(existing, date, slot, staff, service) {
			free = append(free, slot)
		}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"slots": free})
}

// handleSave reconciles the selected day against the store, table by
// table. Guard trips come back as 409 with the affected tables; hard
// store failures as 502. A successful save is announced over AMQP when
// a publisher is configured.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	s.mu.Lock()
	date := sess.SelectedDate()
	report := s.records.SaveDay(r.Context(), sess, date)
	summary := sess.Summary()
	apptCount := len(sess.AppointmentsOn(date))
	expCount := len(sess.ExpensesOn(date))
	saleCount := len(sess.SalesOn(date))
	s.mu.Unlock()

	resp := saveResponse{
		Saved:   report.AllSaved(),
		Guarded: report.Guarded(),
		Tables:  make([]tableResultView, 0, len(report.Results)),
	}
	for _, res := range report.Results {
		v := tableResultView{Table: res.Table, Saved: res.Saved, Guarded: res.Guarded, Rows: res.Rows}
		if res.Err != nil {
			v.Error = res.Err.Error()
		}
		resp.Tables = append(resp.Tables, v)
	}

	if err := report.Err(); err != nil {
		s.logger.ErrorContext(r.Context(), "Save failed",
			applog.FieldOperation, applog.OpSave,
			applog.FieldDate, date.String(),
			applog.FieldError, err)
		writeJSON(w, http.StatusBadGateway, resp)
		return
	}

	s.publishDaySaved(r, date, apptCount, expCount, saleCount, summary.Net.Cents, report)

	if len(resp.Guarded) > 0 {
		// Deliberate cancellation, not a failure: the client shows
		// which tables were protected and why.
		writeJSON(w, http.StatusConflict, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) publishDaySaved(r *http.Request, date core.Date, appts, expenses, sales int, netCents int64, report ledger.SaveReport) {
	if s.publisher == nil {
		return
	}
	msg := amqp.NewDaySavedMessage(date.String(), appts, expenses, sales, netCents, report.Guarded())
	if err := s.publisher.PublishDaySaved(r.Context(), msg); err != nil {
		// The save already succeeded; a lost notification is only
		// worth a log line.
		s.logger.WarnContext(r.Context(), "Failed to publish day-saved message",
			applog.FieldOperation, applog.OpPublish,
			applog.FieldError, err)
	}
}

func newSummaryView(sum core.DaySummary) summaryView {
	return summaryView{
		Date:         sum.Date.String(),
		Appointments: sum.Appointments.String(),
		Sales:        sum.Sales.String(),
		Expenses:     sum.Expenses.String(),
		Net:          sum.Net.String(),
	}
}
