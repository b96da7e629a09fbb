package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mmynk/birthdaybook/internal/auth"
	"github.com/mmynk/birthdaybook/internal/storage"
)

// Apology is the uniform user-visible failure: a rendered page carrying a
// message and status code. Handlers return it (or any error that maps to it)
// instead of writing error responses themselves.
type Apology struct {
	Status  int
	Message string
}

func (a *Apology) Error() string { return a.Message }

// apologize builds a 400 apology, the default for validation and
// business-rule failures.
func apologize(message string) *Apology {
	return &Apology{Status: http.StatusBadRequest, Message: message}
}

// handlerFunc is a route handler that reports failure by returning an error.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// respondError is the sole top-level failure handler: it maps any error a
// handler returns onto the apology page. Unrecognized errors become a
// generic 500 so internals never leak into a response.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var ap *Apology
	var fieldErr *FieldError

	switch {
	case errors.As(err, &ap):
		// keep as is
	case errors.As(err, &fieldErr):
		ap = apologize(fieldErr.Message)
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, storage.ErrUsernameTaken),
		errors.Is(err, storage.ErrEmailTaken),
		errors.Is(err, storage.ErrFriendnameTaken):
		ap = apologize(err.Error())
	default:
		slog.Error("Unhandled error", "method", r.Method, "path", r.URL.Path, "error", err)
		ap = &Apology{Status: http.StatusInternalServerError, Message: "internal server error"}
	}

	s.renderApology(w, ap)
}

func (s *Server) renderApology(w http.ResponseWriter, ap *Apology) {
	data := apologyView{Title: "Apology", Status: ap.Status, Message: ap.Message}
	if err := s.render(w, ap.Status, "apology.html", data); err != nil {
		slog.Error("Failed to render apology", "error", err)
		http.Error(w, ap.Message, ap.Status)
	}
}

type apologyView struct {
	Title   string
	Status  int
	Message string
}
