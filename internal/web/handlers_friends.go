package web

import (
	"net/http"

	"github.com/mmynk/birthdaybook/internal/age"
	"github.com/mmynk/birthdaybook/internal/middleware"
	"github.com/mmynk/birthdaybook/internal/models"
)

// homeLimit caps the home listing at the few most recent birthdays;
// /list shows everything.
const homeLimit = 5

type friendsView struct {
	Title   string
	Friends []models.Friend
}

// index shows up to homeLimit of the user's friends, newest birthday first.
// Unknown paths never reach here; the router 404s them before the guard.
func (s *Server) index(w http.ResponseWriter, r *http.Request) error {
	return s.renderFriends(w, r, homeLimit, "Home", "add friends from Add")
}

// list shows all of the user's friends, same ordering as the home page.
func (s *Server) list(w http.ResponseWriter, r *http.Request) error {
	return s.renderFriends(w, r, 0, "All Friends", "no friends added")
}

func (s *Server) renderFriends(w http.ResponseWriter, r *http.Request, limit int, title, emptyMsg string) error {
	userID := middleware.GetUserID(r.Context())

	friends, err := s.store.ListFriends(r.Context(), userID, limit)
	if err != nil {
		return err
	}
	if len(friends) == 0 {
		return apologize(emptyMsg)
	}

	if err := s.fillAges(friends); err != nil {
		return err
	}

	return s.render(w, http.StatusOK, "index.html", friendsView{Title: title, Friends: friends})
}

// add inserts a new friend for the session user. The table-wide friendname
// unique constraint reports duplicates.
func (s *Server) add(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		return s.render(w, http.StatusOK, "add.html", pageView{Title: "Add"})
	}

	form := parseAddForm(r)
	if err := form.validate(); err != nil {
		return err
	}

	friend := &models.Friend{
		UserID:     middleware.GetUserID(r.Context()),
		Friendname: form.Friendname,
		Birthday:   form.Birthday,
	}
	if err := s.store.CreateFriend(r.Context(), friend); err != nil {
		return err
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
	return nil
}

// search finds friends by exact birthday. The match runs across every user's
// friends, not just the session user's; see DESIGN.md.
func (s *Server) search(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		return s.render(w, http.StatusOK, "search.html", pageView{Title: "Search"})
	}

	form := parseSearchForm(r)
	if err := form.validate(); err != nil {
		return err
	}

	friends, err := s.store.FindFriendsByBirthday(r.Context(), form.Birthday)
	if err != nil {
		return err
	}
	if len(friends) == 0 {
		return apologize("no one matches selected birthday")
	}

	if err := s.fillAges(friends); err != nil {
		return err
	}

	return s.render(w, http.StatusOK, "searched.html", friendsView{Title: "Search Results", Friends: friends})
}

// fillAges computes each friend's current age from their stored birthday.
func (s *Server) fillAges(friends []models.Friend) error {
	now := s.now()
	for i := range friends {
		a, err := age.AtString(friends[i].Birthday, now)
		if err != nil {
			return err
		}
		friends[i].Age = a
	}
	return nil
}
