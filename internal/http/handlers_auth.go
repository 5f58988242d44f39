package http

import (
	"net/http"
	"time"

	"registro/internal/core"
	applog "registro/internal/log"
	"registro/internal/session"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token          string   `json:"token"`
	Date           string   `json:"date"`
	Slots          []string `json:"slots"`
	Staff          []string `json:"staff"`
	Services       []string `json:"services"`
	PaymentMethods []string `json:"payment_methods"`
}

// handleLogin checks credentials, loads the full dataset and opens the
// session. A failed load leaves no session behind: the user is not
// "logged in" over missing data.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !s.checker.Check(req.Username, req.Password) {
		s.logger.WarnContext(r.Context(), "Login rejected",
			applog.FieldOperation, applog.OpLogin,
			applog.FieldUser, req.Username)
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	snap, err := s.records.LoadAll(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Load failed during login",
			applog.FieldOperation, applog.OpLoad,
			applog.FieldError, err)
		writeError(w, http.StatusBadGateway, "could not load data from the store")
		return
	}

	today := time.Now()
	selected := core.NewDate(today.Year(), int(today.Month()), today.Day())
	policy := core.SlotPolicy{
		AllowQuickShare: s.cfg.AllowQuickShare,
		QuickService:    s.cfg.QuickService,
	}

	s.mu.Lock()
	s.sess = session.New(snap, selected, policy)
	s.token = newToken()
	token := s.token
	s.mu.Unlock()

	s.logger.InfoContext(r.Context(), "Session opened",
		applog.FieldOperation, applog.OpLogin,
		applog.FieldUser, req.Username,
		applog.FieldDate, selected.String())

	writeJSON(w, http.StatusOK, loginResponse{
		Token:          token,
		Date:           selected.String(),
		Slots:          core.GenerateSlots(s.cfg.OpenHour, s.cfg.CloseHour, s.cfg.SlotIntervalMin),
		Staff:          s.cfg.Staff,
		Services:       s.cfg.Services,
		PaymentMethods: s.cfg.PaymentMethods,
	})
}

// handleLogout discards the working set. Unsaved edits are gone, as in
// the paper workflow: the sidebar warns before this point, not here.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if s.currentSession(r) == nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	s.mu.Lock()
	s.sess = nil
	s.token = ""
	s.mu.Unlock()

	s.logger.InfoContext(r.Context(), "Session closed",
		applog.FieldOperation, applog.OpLogout)
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
