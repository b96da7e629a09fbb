package web

import "net/http"

// FieldError reports the first failing field of a submitted form.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

// rule is one presence/equality check. Rules run in submission order and the
// first failure wins.
type rule struct {
	field string
	ok    bool
	msg   string
}

func firstFailure(rules ...rule) error {
	for _, ru := range rules {
		if !ru.ok {
			return &FieldError{Field: ru.field, Message: ru.msg}
		}
	}
	return nil
}

type loginForm struct {
	Username string
	Password string
}

func parseLoginForm(r *http.Request) loginForm {
	return loginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
}

func (f loginForm) validate() error {
	return firstFailure(
		rule{"username", f.Username != "", "must provide username"},
		rule{"password", f.Password != "", "must provide password"},
	)
}

type registerForm struct {
	Username     string
	Email        string
	Password     string
	Confirmation string
}

func parseRegisterForm(r *http.Request) registerForm {
	return registerForm{
		Username:     r.PostFormValue("username"),
		Email:        r.PostFormValue("email"),
		Password:     r.PostFormValue("password"),
		Confirmation: r.PostFormValue("confirmation"),
	}
}

// validate checks presence and the password match. Username and email
// uniqueness is not checked here: the store's unique constraints are the
// authoritative duplicate signal at insert time.
func (f registerForm) validate() error {
	return firstFailure(
		rule{"username", f.Username != "", "no username found"},
		rule{"email", f.Email != "", "no email found"},
		rule{"password", f.Password != "", "no password found"},
		rule{"confirmation", f.Confirmation != "", "no password confirmation"},
		rule{"confirmation", f.Password == f.Confirmation, "must provide same password"},
	)
}

type passwordForm struct {
	Password     string
	Confirmation string
}

func parsePasswordForm(r *http.Request) passwordForm {
	return passwordForm{
		Password:     r.PostFormValue("password"),
		Confirmation: r.PostFormValue("confirmation"),
	}
}

func (f passwordForm) validate() error {
	return firstFailure(
		rule{"password", f.Password != "", "no password found"},
		rule{"confirmation", f.Confirmation != "", "no password confirmation"},
		rule{"confirmation", f.Password == f.Confirmation, "must provide same password"},
	)
}

type addForm struct {
	Friendname string
	Birthday   string
}

func parseAddForm(r *http.Request) addForm {
	return addForm{
		Friendname: r.PostFormValue("friendname"),
		Birthday:   r.PostFormValue("birthday"),
	}
}

func (f addForm) validate() error {
	return firstFailure(
		rule{"friendname", f.Friendname != "", "no friendname found"},
		rule{"birthday", f.Birthday != "", "no birthday found"},
	)
}

type searchForm struct {
	Birthday string
}

func parseSearchForm(r *http.Request) searchForm {
	return searchForm{Birthday: r.PostFormValue("birthday")}
}

func (f searchForm) validate() error {
	return firstFailure(
		rule{"birthday", f.Birthday != "", "no birthday found"},
	)
}

type recordForm struct {
	Friendname string
	Age        string
	Item       string
	Price      string
}

func parseRecordForm(r *http.Request) recordForm {
	return recordForm{
		Friendname: r.PostFormValue("friendname"),
		Age:        r.PostFormValue("age"),
		Item:       r.PostFormValue("item"),
		Price:      r.PostFormValue("price"),
	}
}

func (f recordForm) validate() error {
	return firstFailure(
		rule{"friendname", f.Friendname != "", "no friendname found"},
		rule{"age", f.Age != "", "no age found"},
		rule{"item", f.Item != "", "no item found"},
		rule{"price", f.Price != "", "no price found"},
	)
}

type settingsForm struct {
	Birthday string
	Item     string
	Price    string
}

func parseSettingsForm(r *http.Request) settingsForm {
	return settingsForm{
		Birthday: r.PostFormValue("birthday"),
		Item:     r.PostFormValue("item"),
		Price:    r.PostFormValue("price"),
	}
}

func (f settingsForm) validate() error {
	return firstFailure(
		rule{"birthday", f.Birthday != "", "no birthday found"},
		rule{"item", f.Item != "", "no item found"},
		rule{"price", f.Price != "", "no price found"},
	)
}
