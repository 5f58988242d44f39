// Package http exposes the register as a small JSON API. All domain
// rules live below; handlers translate requests and map the error
// taxonomy onto status codes.
package http

import (
	"crypto/subtle"
	"net/http"
	"sync"

	"registro/internal/amqp"
	"registro/internal/auth"
	"registro/internal/config"
	applog "registro/internal/log"
	"registro/internal/session"
	"registro/internal/store"
)

type Server struct {
	http.Server

	cfg       *config.Config
	checker   auth.CredentialChecker
	records   *store.RecordStore
	publisher *amqp.Client
	logger    *applog.Logger

	// One active session per login. The mutex serializes every user
	// action; the domain assumes no concurrent edits.
	mu    sync.Mutex
	sess  *session.Session
	token string
}

func NewServer(addr string, cfg *config.Config, checker auth.CredentialChecker, records *store.RecordStore, publisher *amqp.Client, logger *applog.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		checker:   checker,
		records:   records,
		publisher: publisher,
		logger:    logger.WithComponent(applog.ComponentHTTP),
	}
	s.Addr = addr
	s.Handler = applog.Middleware(logger)(s.routes())
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.handleLogout)

	mux.HandleFunc("POST /api/date", s.handleSelectDate)
	mux.HandleFunc("GET /api/day", s.handleDay)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/slots", s.handleSlots)

	mux.HandleFunc("POST /api/appointments", s.handleAddAppointment)
	mux.HandleFunc("DELETE /api/appointments/{index}", s.handleDeleteAppointment)
	mux.HandleFunc("POST /api/expenses", s.handleAddExpense)
	mux.HandleFunc("DELETE /api/expenses/{index}", s.handleDeleteExpense)
	mux.HandleFunc("POST /api/sales", s.handleAddSale)
	mux.HandleFunc("DELETE /api/sales/{index}", s.handleDeleteSale)

	mux.HandleFunc("POST /api/save", s.handleSave)

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// currentSession returns the active session when the request carries
// the session token, nil otherwise. Callers hold no lock; the session
// pointer stays valid until logout swaps it out, and every handler
// takes s.mu before touching it.
func (s *Server) currentSession(r *http.Request) *session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil || s.token == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(bearerToken(r)), []byte(s.token)) != 1 {
		return nil
	}
	return s.sess
}
