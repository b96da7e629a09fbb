package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mmynk/birthdaybook/internal/models"
)

// memoryUsers is a minimal in-memory UserStorage for authenticator tests.
type memoryUsers struct {
	users map[string]*models.User // keyed by username
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[string]*models.User)}
}

func (m *memoryUsers) CreateUser(_ context.Context, user *models.User) error {
	m.users[user.Username] = user
	return nil
}

func (m *memoryUsers) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	return m.users[username], nil
}

func (m *memoryUsers) UpdateUserPassword(_ context.Context, userID, passwordHash string) error {
	for _, u := range m.users {
		if u.ID == userID {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return errors.New("user not found")
}

func TestPasswordAuthenticator(t *testing.T) {
	store := newMemoryUsers()
	authn := NewPasswordAuthenticator(store)
	ctx := context.Background()

	user, err := authn.Register(ctx, "alice", "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.PasswordHash == "secret1" {
		t.Error("Password stored unhashed")
	}

	t.Run("correct password authenticates", func(t *testing.T) {
		got, err := authn.Authenticate(ctx, "alice", "secret1")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("Expected user %s, got %s", user.ID, got.ID)
		}
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := authn.Authenticate(ctx, "alice", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown username is rejected identically", func(t *testing.T) {
		_, err := authn.Authenticate(ctx, "nobody", "secret1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("ChangePassword rotates the hash", func(t *testing.T) {
		if err := authn.ChangePassword(ctx, user.ID, "newpw"); err != nil {
			t.Fatalf("ChangePassword failed: %v", err)
		}
		if _, err := authn.Authenticate(ctx, "alice", "secret1"); err == nil {
			t.Error("Old password still accepted")
		}
		if _, err := authn.Authenticate(ctx, "alice", "newpw"); err != nil {
			t.Errorf("New password rejected: %v", err)
		}
	})
}

// roundTrip issues a session cookie and copies it onto a fresh request, the
// way a browser would.
func roundTrip(t *testing.T, m *SessionManager, userID string) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	if err := m.Issue(rec, userID); err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSessionManager(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	t.Run("issued session validates", func(t *testing.T) {
		req := roundTrip(t, m, "user-123")
		userID, err := m.UserID(req)
		if err != nil {
			t.Fatalf("UserID failed: %v", err)
		}
		if userID != "user-123" {
			t.Errorf("Expected user-123, got %s", userID)
		}
	})

	t.Run("missing cookie is ErrNoSession", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := m.UserID(req)
		if !errors.Is(err, ErrNoSession) {
			t.Errorf("Expected ErrNoSession, got %v", err)
		}
	})

	t.Run("tampered cookie is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-token"})
		_, err := m.UserID(req)
		if !errors.Is(err, ErrInvalidSession) {
			t.Errorf("Expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("foreign secret is rejected", func(t *testing.T) {
		other := NewSessionManager("other-secret", time.Hour)
		req := roundTrip(t, other, "user-123")
		_, err := m.UserID(req)
		if !errors.Is(err, ErrInvalidSession) {
			t.Errorf("Expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("expired session is rejected", func(t *testing.T) {
		short := NewSessionManager("test-secret", -time.Minute)
		req := roundTrip(t, short, "user-123")
		_, err := m.UserID(req)
		if !errors.Is(err, ErrInvalidSession) {
			t.Errorf("Expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("Clear expires the cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		m.Clear(rec)
		cookies := rec.Result().Cookies()
		if len(cookies) != 1 || cookies[0].MaxAge != -1 {
			t.Errorf("Expected a single expiring cookie, got %+v", cookies)
		}
	})
}
