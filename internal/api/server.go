package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"rankperm/adapters/report"
	"rankperm/app"
	"rankperm/domain/core"
)

// Server exposes the significance service over HTTP. The core stays an
// in-process computation; this surface just marshals one request in and one
// result record out.
type Server struct {
	router   *chi.Mux
	service  *app.SignificanceService
	markdown *report.MarkdownRenderer
}

// NewServer creates the HTTP server around a significance service.
func NewServer(service *app.SignificanceService) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		service:  service,
		markdown: report.NewMarkdownRenderer(),
	}
	s.routes()
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/api/v1/significance", s.handleSignificance)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleSignificance(w http.ResponseWriter, r *http.Request) {
	var req app.TestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := s.service.RunTest(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsValidationError(err) {
			status = http.StatusBadRequest
		}
		s.writeError(w, status, err.Error())
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(s.markdown.RenderHTML(result))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
