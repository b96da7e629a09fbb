// Package web implements the HTML form interface: routing, typed form
// validation, template rendering and the apology error responder.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/birthdaybook/internal/auth"
	"github.com/mmynk/birthdaybook/internal/middleware"
	"github.com/mmynk/birthdaybook/internal/storage"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server holds the dependencies of every route handler.
type Server struct {
	store    storage.Store
	authn    *auth.PasswordAuthenticator
	sessions *auth.SessionManager
	tmpl     *template.Template

	// now is the clock used for age computation; swapped in tests.
	now func() time.Time
}

// New creates a Server backed by the given store and session manager.
func New(store storage.Store, sessions *auth.SessionManager) *Server {
	return &Server{
		store:    store,
		authn:    auth.NewPasswordAuthenticator(store),
		sessions: sessions,
		tmpl:     template.Must(template.ParseFS(templateFS, "templates/*.html")),
		now:      time.Now,
	}
}

// Handler builds the route table. Every route except /login, /register,
// /logout and /metrics sits behind the session guard.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	guard := middleware.RequireSession(s.sessions)

	// The "/" pattern also matches every unrouted path. Unknown paths get
	// the 404 apology before the session guard runs, so the response does
	// not depend on auth state.
	home := guard(s.handler(s.index, http.MethodGet))
	mux.Handle("/", middleware.Metrics("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			s.renderApology(w, &Apology{Status: http.StatusNotFound, Message: "not found"})
			return
		}
		home.ServeHTTP(w, r)
	})))

	s.route(mux, "/list", guard, s.list, http.MethodGet)
	s.route(mux, "/add", guard, s.add, http.MethodGet, http.MethodPost)
	s.route(mux, "/search", guard, s.search, http.MethodGet, http.MethodPost)
	s.route(mux, "/record", guard, s.record, http.MethodGet, http.MethodPost)
	s.route(mux, "/history", guard, s.history, http.MethodGet)
	s.route(mux, "/mypage", guard, s.mypage, http.MethodGet, http.MethodPost)
	s.route(mux, "/settings", guard, s.settings, http.MethodGet, http.MethodPost)
	s.route(mux, "/changepassword", guard, s.changePassword, http.MethodGet, http.MethodPost)

	s.route(mux, "/login", nil, s.login, http.MethodGet, http.MethodPost)
	s.route(mux, "/logout", nil, s.logout, http.MethodGet)
	s.route(mux, "/register", nil, s.register, http.MethodGet, http.MethodPost)

	mux.Handle("/metrics", promhttp.Handler())

	return middleware.Logging(middleware.NoCache(mux))
}

// route registers a handler with method filtering, per-route metrics and an
// optional wrapping middleware (the session guard).
func (s *Server) route(mux *http.ServeMux, path string, wrap func(http.Handler) http.Handler, fn handlerFunc, methods ...string) {
	h := s.handler(fn, methods...)
	if wrap != nil {
		h = wrap(h)
	}
	mux.Handle(path, middleware.Metrics(path, h))
}

// handler adapts a handlerFunc: disallowed methods get a 405 apology and any
// returned error goes through the apology responder.
func (s *Server) handler(fn handlerFunc, methods ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !slices.Contains(methods, r.Method) {
			s.renderApology(w, &Apology{Status: http.StatusMethodNotAllowed, Message: "method not allowed"})
			return
		}
		if err := fn(w, r); err != nil {
			s.respondError(w, r, err)
		}
	})
}

// render executes the named template into a buffer first, so a template
// failure can still become a clean apology instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
