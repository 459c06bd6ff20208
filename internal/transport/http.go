package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mergington/activities/internal/domain/activity"
)

// ActivityService defines roster operations needed by the HTTP API.
type ActivityService interface {
	List(ctx context.Context) ([]activity.Activity, error)
	Signup(ctx context.Context, name, email string) error
	Unregister(ctx context.Context, name, email string) error
}

// Server wires HTTP handlers.
type Server struct {
	service ActivityService
	logger  *slog.Logger
}

// NewServer creates an HTTP router with middleware.
func NewServer(service ActivityService, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(logger))

	srv := &Server{service: service, logger: logger}

	r.Get("/activities", srv.handleList)
	r.Post("/activities/{name}/signup", srv.handleSignup)
	r.Delete("/activities/{name}/unregister", srv.handleUnregister)
	r.Get("/health", srv.handleHealth)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	acts, err := s.service.List(r.Context())
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, activityCollection(acts))
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")

	if err := s.service.Signup(r.Context(), name, email); err != nil {
		s.writeError(w, r, err, email)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (s *Server) handleUnregister(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")

	if err := s.service.Unregister(r.Context(), name, email); err != nil {
		s.writeError(w, r, err, email)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// writeError maps domain errors onto the API's status/detail contract.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, email string) {
	switch {
	case errors.Is(err, activity.ErrActivityNotFound):
		writeDetail(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, activity.ErrAlreadyRegistered):
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("%s is already signed up for this activity", email))
	case errors.Is(err, activity.ErrNotRegistered):
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("%s is not registered for this activity", email))
	case errors.Is(err, activity.ErrInvalidInput):
		writeDetail(w, http.StatusBadRequest, "email is required")
	default:
		if s.logger != nil {
			s.logger.Error("request failed", "path", r.URL.Path, "error", err)
		}
		writeDetail(w, http.StatusInternalServerError, "internal error")
	}
}

// activityName returns the {name} path segment. Activity names may contain
// spaces, so the segment arrives percent-encoded from most clients.
func activityName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}
