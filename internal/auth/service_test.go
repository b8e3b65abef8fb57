package auth

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/safiyu/ranthal/internal/identity"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(identity.NewStore(), []byte("test-secret"), 24*time.Hour, zap.NewNop())
}

func TestRegisterIssuesVerifiableToken(t *testing.T) {
	svc := newTestService(t)

	token, userID, err := svc.Register("alice@example.com", "secret123", "Alice")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if userID != "user_1" {
		t.Fatalf("expected user_1, got %s", userID)
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("token did not verify: %v", err)
	}
	if claims.Subject != userID {
		t.Fatalf("expected subject %s, got %s", userID, claims.Subject)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email claim: %s", claims.Email)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	if _, _, err := svc.Register("alice@example.com", "secret123", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, _, err := svc.Register("alice@example.com", "other", "")
	if !errors.Is(err, identity.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRegisterNeverStoresPlaintext(t *testing.T) {
	store := identity.NewStore()
	svc := NewService(store, []byte("test-secret"), time.Hour, zap.NewNop())

	if _, _, err := svc.Register("alice@example.com", "secret123", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	ident, err := store.Get("alice@example.com")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ident.PasswordHash == "secret123" || ident.PasswordHash == "" {
		t.Fatalf("password not hashed: %q", ident.PasswordHash)
	}
}

func TestLoginErrorsAreIndistinguishable(t *testing.T) {
	svc := newTestService(t)
	if _, _, err := svc.Register("alice@example.com", "secret123", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, _, unknownErr := svc.Login("nobody@example.com", "secret123")
	_, _, _, wrongPassErr := svc.Login("alice@example.com", "wrong")

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongPassErr, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassErr)
	}
	if unknownErr.Error() != wrongPassErr.Error() {
		t.Fatalf("errors differ: %q vs %q", unknownErr, wrongPassErr)
	}
}

func TestLoginReturnsStoredName(t *testing.T) {
	svc := newTestService(t)
	if _, _, err := svc.Register("alice@example.com", "secret123", "Alice"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, userID, name, err := svc.Login("alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || userID != "user_1" || name != "Alice" {
		t.Fatalf("unexpected login result: token=%q id=%q name=%q", token, userID, name)
	}
}

func TestVerifyTokenExpiry(t *testing.T) {
	svc := newTestService(t)
	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, _, err := svc.Register("alice@example.com", "secret123", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Still valid one second before the expiry instant.
	svc.now = func() time.Time { return issuedAt.Add(24*time.Hour - time.Second) }
	if _, err := svc.VerifyToken(token); err != nil {
		t.Fatalf("token should still verify: %v", err)
	}

	svc.now = func() time.Time { return issuedAt.Add(24*time.Hour + time.Second) }
	if _, err := svc.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestVerifyTokenRejectsGarbageAndForeignSignature(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.VerifyToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}

	other := NewService(identity.NewStore(), []byte("other-secret"), time.Hour, zap.NewNop())
	foreign, _, err := other.Register("alice@example.com", "secret123", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.VerifyToken(foreign); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestWhoAmIReadsNameFromStore(t *testing.T) {
	svc := newTestService(t)
	token, userID, err := svc.Register("alice@example.com", "secret123", "Alice")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	profile := svc.WhoAmI(claims)
	if profile.ID != userID || profile.Email != "alice@example.com" || profile.Name != "Alice" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestWhoAmISurvivesMissingIdentity(t *testing.T) {
	// A valid token can outlive the store contents after a restart; the
	// profile then carries only what the token proves.
	svc := newTestService(t)
	claims := &Claims{Email: "ghost@example.com"}
	claims.Subject = "user_9"

	profile := svc.WhoAmI(claims)
	if profile.ID != "user_9" || profile.Email != "ghost@example.com" || profile.Name != "" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}
