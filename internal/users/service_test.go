package users

import (
	"context"
	"errors"
	"testing"
)

func TestSignupAndAuthenticate(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	user, err := svc.Signup(ctx, "Jane@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if user.Email != "jane@example.com" {
		t.Fatalf("expected normalized email, got %s", user.Email)
	}
	if user.PasswordHash == "" || user.PasswordHash == "hunter22" {
		t.Fatalf("expected hashed password")
	}

	got, err := svc.Authenticate(ctx, "jane@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected user %s, got %s", user.ID, got.ID)
	}
}

func TestAuthenticateFailuresAreGeneric(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "jane@example.com", "hunter22"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"missing email", "", "hunter22"},
		{"missing password", "jane@example.com", ""},
		{"unknown email", "nobody@example.com", "hunter22"},
		{"wrong password", "jane@example.com", "wrong"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Authenticate(ctx, tc.email, tc.password); !errors.Is(err, ErrUnauthenticated) {
				t.Fatalf("expected ErrUnauthenticated, got %v", err)
			}
		})
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "jane@example.com", "hunter22"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if _, err := svc.Signup(ctx, "JANE@example.com", "other"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestGetOrCreateByEmailIsIdempotent(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	first, err := svc.GetOrCreateByEmail(ctx, "oauth@example.com")
	if err != nil {
		t.Fatalf("GetOrCreateByEmail: %v", err)
	}
	second, err := svc.GetOrCreateByEmail(ctx, "oauth@example.com")
	if err != nil {
		t.Fatalf("GetOrCreateByEmail: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same user, got %s vs %s", first.ID, second.ID)
	}
	if first.PasswordHash != "" {
		t.Fatalf("expected passwordless user")
	}
}
