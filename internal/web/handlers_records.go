package web

import (
	"net/http"
	"strconv"

	"github.com/mmynk/birthdaybook/internal/age"
	"github.com/mmynk/birthdaybook/internal/middleware"
	"github.com/mmynk/birthdaybook/internal/models"
)

type recordPageView struct {
	Title       string
	Friendnames []string
}

type historyView struct {
	Title   string
	Records []models.GiftRecord
}

// record renders the gift form on GET and inserts a gift record on POST.
// A submitted age above the friend's computed current age means the entered
// birthday would be in the future, so the submission is rejected.
func (s *Server) record(w http.ResponseWriter, r *http.Request) error {
	userID := middleware.GetUserID(r.Context())

	if r.Method != http.MethodPost {
		names, err := s.store.ListFriendNames(r.Context(), userID)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return apologize("add friend info from Add first")
		}
		return s.render(w, http.StatusOK, "record.html", recordPageView{Title: "Record", Friendnames: names})
	}

	form := parseRecordForm(r)
	if err := form.validate(); err != nil {
		return err
	}

	submittedAge, err := strconv.Atoi(form.Age)
	if err != nil {
		return apologize("invalid age")
	}

	friend, err := s.store.GetFriendByName(r.Context(), userID, form.Friendname)
	if err != nil {
		return err
	}
	if friend == nil {
		return apologize("no friend found")
	}

	currentAge, err := age.AtString(friend.Birthday, s.now())
	if err != nil {
		return err
	}
	if submittedAge > currentAge {
		return apologize("that birthday is future")
	}

	record := &models.GiftRecord{
		UserID:     userID,
		Friendname: form.Friendname,
		Age:        submittedAge,
		Item:       form.Item,
		Price:      form.Price,
	}
	if err := s.store.CreateRecord(r.Context(), record); err != nil {
		return err
	}

	http.Redirect(w, r, "/record", http.StatusSeeOther)
	return nil
}

// history lists the user's gift records, grouped by friend name with the most
// recent age first.
func (s *Server) history(w http.ResponseWriter, r *http.Request) error {
	userID := middleware.GetUserID(r.Context())

	records, err := s.store.ListRecords(r.Context(), userID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return apologize("add your friend's birthday record from add page")
	}

	return s.render(w, http.StatusOK, "history.html", historyView{Title: "History", Records: records})
}
