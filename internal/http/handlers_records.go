package http

import (
	"errors"
	"net/http"
	"strconv"

	"registro/internal/core"
	applog "registro/internal/log"
	"registro/internal/session"
)

type appointmentRequest struct {
	Slot            string `json:"slot"`
	Client          string `json:"client"`
	Service         string `json:"service"`
	Staff           string `json:"staff"`
	Payment         string `json:"payment"`
	Amount          string `json:"amount"`
	SecondaryAmount string `json:"secondary_amount,omitempty"`
}

type expenseRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

type saleRequest struct {
	Item   string `json:"item"`
	Amount string `json:"amount"`
	Seller string `json:"seller"`
}

func (s *Server) handleAddAppointment(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	var req appointmentRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	primary, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}
	var secondary int64
	if sanitize(req.SecondaryAmount) != "" {
		secondary, err = core.ParseDecimalToCents(req.SecondaryAmount)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid secondary amount")
			return
		}
	}

	s.mu.Lock()
	a := core.Appointment{
		Date:      sess.SelectedDate(),
		Slot:      sanitize(req.Slot),
		Client:    sanitize(req.Client),
		Service:   sanitize(req.Service),
		Staff:     sanitize(req.Staff),
		Payment:   core.PaymentMethod(sanitize(req.Payment)),
		Primary:   core.Money{Cents: primary},
		Secondary: core.Money{Cents: secondary},
		Total:     core.Money{Cents: primary + secondary},
	}
	err = sess.AddAppointment(a)
	s.mu.Unlock()
	if err != nil {
		if errors.Is(err, session.ErrSlotTaken) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.logger.InfoContext(r.Context(), "Appointment registered",
		applog.FieldDate, a.Date.String(),
		applog.FieldSlot, a.Slot,
		applog.FieldStaff, a.Staff,
		applog.FieldService, a.Service)
	writeJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	var req expenseRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}

	s.mu.Lock()
	e := core.Expense{
		Date:        sess.SelectedDate(),
		Description: sanitize(req.Description),
		Amount:      core.Money{Cents: cents},
	}
	err = sess.AddExpense(e)
	s.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

func (s *Server) handleAddSale(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	var req saleRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}

	s.mu.Lock()
	sa := core.Sale{
		Date:   sess.SelectedDate(),
		Item:   sanitize(req.Item),
		Amount: core.Money{Cents: cents},
		Seller: sanitize(req.Seller),
	}
	err = sess.AddSale(sa)
	s.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

func (s *Server) handleDeleteAppointment(w http.ResponseWriter, r *http.Request) {
	s.deleteRecord(w, r, func(sess *session.Session, idx int) error {
		return sess.RemoveAppointment(idx)
	})
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	s.deleteRecord(w, r, func(sess *session.Session, idx int) error {
		return sess.RemoveExpense(idx)
	})
}

func (s *Server) handleDeleteSale(w http.ResponseWriter, r *http.Request) {
	s.deleteRecord(w, r, func(sess *session.Session, idx int) error {
		return sess.RemoveSale(idx)
	})
}

func (s *Server) deleteRecord(w http.ResponseWriter, r *http.Request, remove func(*session.Session, int) error) {
	sess := s.currentSession(r)
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	idx, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || idx < 0 {
		writeError(w, http.StatusBadRequest, "invalid record index")
		return
	}
	s.mu.Lock()
	err = remove(sess, idx)
	s.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}
