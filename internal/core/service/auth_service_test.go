package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/micropost/micropost/internal/core/domain"
)

func newAuthService(users *stubUserRepo, counter *stubCounter) *AuthService {
	return NewAuthService(users, counter, "test-secret", time.Hour, discardLogger)
}

func TestAuthService_FirstLoginRegisters(t *testing.T) {
	users := newStubUserRepo()
	counter := &stubCounter{}
	svc := newAuthService(users, counter)

	result, err := svc.LoginOrRegister(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Created {
		t.Error("expected Created=true for first-time username")
	}
	if result.UserID == 0 {
		t.Error("expected a non-zero user id")
	}
	if result.Token == "" {
		t.Error("expected a session token")
	}
	if counter.counts["userid"] != 1 {
		t.Errorf("expected exactly one id allocation, got %d", counter.counts["userid"])
	}

	// The username must be resolvable afterwards, and the record must map
	// back to the same name.
	id, ok, _ := users.LookupID(context.Background(), "alice")
	if !ok || id != result.UserID {
		t.Fatalf("username not resolvable after signup: ok=%v id=%d", ok, id)
	}
	user, err := users.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find registered user: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("expected username %q, got %q", "alice", user.Username)
	}
}

func TestAuthService_SecondLoginAuthenticates(t *testing.T) {
	users := newStubUserRepo()
	counter := &stubCounter{}
	svc := newAuthService(users, counter)

	first, err := svc.LoginOrRegister(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	second, err := svc.LoginOrRegister(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if second.Created {
		t.Error("expected Created=false for existing username")
	}
	if second.UserID != first.UserID {
		t.Errorf("login changed user id: %d → %d", first.UserID, second.UserID)
	}
	if counter.counts["userid"] != 1 {
		t.Errorf("login must not allocate a new id, got %d allocations", counter.counts["userid"])
	}
}

func TestAuthService_WrongPasswordRejected(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users, &stubCounter{})

	if _, err := svc.LoginOrRegister(context.Background(), "alice", "secret1"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, err := svc.LoginOrRegister(context.Background(), "alice", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_MissingFieldsRejected(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubCounter{})

	for _, tc := range []struct{ username, password string }{
		{"", "secret"},
		{"alice", ""},
		{"", ""},
	} {
		if _, err := svc.LoginOrRegister(context.Background(), tc.username, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("username=%q password=%q: expected ErrInvalidCredentials, got %v", tc.username, tc.password, err)
		}
	}
}

func TestAuthService_DistinctUsersGetDistinctIDs(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users, &stubCounter{})

	alice, err := svc.LoginOrRegister(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("signup alice: %v", err)
	}
	bob, err := svc.LoginOrRegister(context.Background(), "bob", "pw2")
	if err != nil {
		t.Fatalf("signup bob: %v", err)
	}

	if alice.UserID == bob.UserID {
		t.Fatalf("distinct users share id %d", alice.UserID)
	}
}

func TestAuthService_StoresHashNotPassword(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users, &stubCounter{})

	result, err := svc.LoginOrRegister(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	user, _ := users.FindByID(context.Background(), result.UserID)
	if user.CredentialHash == "secret1" || user.CredentialHash == "" {
		t.Fatalf("credential must be stored as a one-way hash, got %q", user.CredentialHash)
	}
}
