package web

import (
	"fmt"
	"net/http"

	"github.com/mmynk/birthdaybook/internal/age"
	"github.com/mmynk/birthdaybook/internal/middleware"
	"github.com/mmynk/birthdaybook/internal/models"
)

type mypageView struct {
	Title string
	User  *models.User
	Age   int
}

// mypage shows the user's own profile. An incomplete profile points the user
// at the settings page instead of rendering blanks.
func (s *Server) mypage(w http.ResponseWriter, r *http.Request) error {
	user, err := s.sessionUser(r)
	if err != nil {
		return err
	}

	if !user.HasProfile() {
		return apologize("register your information from settings")
	}

	userAge, err := age.AtString(user.Birthday, s.now())
	if err != nil {
		return err
	}

	return s.render(w, http.StatusOK, "mypage.html", mypageView{Title: "My Page", User: user, Age: userAge})
}

type settingsView struct {
	Title string
	User  *models.User
}

// settings updates the user's own birthday, gift item and price, then
// redisplays the form with the stored values.
func (s *Server) settings(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		user, err := s.sessionUser(r)
		if err != nil {
			return err
		}
		return s.render(w, http.StatusOK, "settings.html", settingsView{Title: "Settings", User: user})
	}

	form := parseSettingsForm(r)
	if err := form.validate(); err != nil {
		return err
	}

	userID := middleware.GetUserID(r.Context())
	if err := s.store.UpdateUserProfile(r.Context(), userID, form.Birthday, form.Item, form.Price); err != nil {
		return err
	}

	http.Redirect(w, r, "/settings", http.StatusSeeOther)
	return nil
}

// sessionUser loads the authenticated user's row. The guard has already
// validated the session, so a missing row is an internal inconsistency.
func (s *Server) sessionUser(r *http.Request) (*models.User, error) {
	userID := middleware.GetUserID(r.Context())
	user, err := s.store.GetUserByID(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("session user %s not found", userID)
	}
	return user, nil
}
