package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/praxislabs/praxis/internal/store"
)

func newTestManager(t *testing.T, ttl time.Duration) (*Manager, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return New(s.Users(), []byte("test-secret"), ttl), s
}

func TestRegisterAndLogin(t *testing.T) {
	m, _ := newTestManager(t, 0)
	ctx := context.Background()

	user, err := m.Register(ctx, "alice", "hunter2", "alice@example.com")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Username != "alice" || user.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	token, logged, err := m.Login(ctx, "alice", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatal("login returned a different user")
	}
	if logged.LastLogin.IsZero() {
		t.Error("expected last_login to be stamped")
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != user.ID || claims.Username != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	m, _ := newTestManager(t, 0)
	ctx := context.Background()

	if _, err := m.Register(ctx, "bob", "correct", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := m.Login(ctx, "bob", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := m.Login(ctx, "nobody", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterRequiresUsernameAndPassword(t *testing.T) {
	m, _ := newTestManager(t, 0)
	ctx := context.Background()

	if _, err := m.Register(ctx, "", "pw", ""); err == nil {
		t.Error("empty username should be rejected")
	}
	if _, err := m.Register(ctx, "user", "", ""); err == nil {
		t.Error("empty password should be rejected")
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	m, _ := newTestManager(t, 0)

	token, err := m.Issue("user-id", "alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := m.Verify(token + "x"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := m.Verify(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}

	other := New(nil, []byte("other-secret"), 0)
	if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken across secrets, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m, _ := newTestManager(t, -time.Minute)

	token, err := m.Issue("user-id", "alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}
