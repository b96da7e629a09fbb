package web

import (
	"log/slog"
	"net/http"

	"github.com/mmynk/birthdaybook/internal/middleware"
)

// login clears any existing session, then either renders the login form or,
// on submission, verifies credentials and starts a session.
func (s *Server) login(w http.ResponseWriter, r *http.Request) error {
	s.sessions.Clear(w)

	if r.Method != http.MethodPost {
		return s.render(w, http.StatusOK, "login.html", pageView{Title: "Log In"})
	}

	form := parseLoginForm(r)
	if err := form.validate(); err != nil {
		return err
	}

	user, err := s.authn.Authenticate(r.Context(), form.Username, form.Password)
	if err != nil {
		return err
	}

	if err := s.sessions.Issue(w, user.ID); err != nil {
		return err
	}

	slog.Info("User logged in", "user_id", user.ID, "username", user.Username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
	return nil
}

// logout clears the session and renders the login page in place.
// It does not redirect; a fresh /login visit behaves the same anyway.
func (s *Server) logout(w http.ResponseWriter, r *http.Request) error {
	s.sessions.Clear(w)
	return s.render(w, http.StatusOK, "login.html", pageView{Title: "Log In"})
}

// register creates a new account. Duplicate usernames and emails are reported
// by the store's unique constraints, not by a pre-query.
func (s *Server) register(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		return s.render(w, http.StatusOK, "register.html", pageView{Title: "Register"})
	}

	form := parseRegisterForm(r)
	if err := form.validate(); err != nil {
		return err
	}

	user, err := s.authn.Register(r.Context(), form.Username, form.Email, form.Password)
	if err != nil {
		return err
	}

	slog.Info("User registered", "user_id", user.ID, "username", user.Username)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
	return nil
}

// changePassword updates the session user's password hash.
func (s *Server) changePassword(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		return s.render(w, http.StatusOK, "changepassword.html", pageView{Title: "Change Password"})
	}

	form := parsePasswordForm(r)
	if err := form.validate(); err != nil {
		return err
	}

	userID := middleware.GetUserID(r.Context())
	if err := s.authn.ChangePassword(r.Context(), userID, form.Password); err != nil {
		return err
	}

	slog.Info("Password changed", "user_id", userID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
	return nil
}

// pageView is the template data for pages that only need a title.
type pageView struct {
	Title string
}
