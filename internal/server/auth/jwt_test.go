package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/avolkau/fittrack/internal/common"
	"github.com/avolkau/fittrack/internal/server/models"
)

func newTestIssuer(secret string, lifetime time.Duration) *TokenIssuer {
	return NewTokenIssuer([]byte(secret), "fittrack", "fittrack-client", lifetime)
}

func TestIssueAndValidate_Success(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer("super-secret", time.Hour)
	user := &models.User{ID: 123, Email: "alice@x.com"}

	tok, expiresAt, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expected expiry in the future, got %v", expiresAt)
	}

	gotUserID, err := issuer.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if gotUserID != user.ID {
		t.Fatalf("userID mismatch: got %d want %d", gotUserID, user.ID)
	}
}

func TestIssue_UniqueNonce(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer("super-secret", time.Hour)
	user := &models.User{ID: 7, Email: "bob@x.com"}

	tok1, _, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	tok2, _, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if tok1 == tok2 {
		t.Fatalf("two tokens issued for the same user must differ")
	}
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer("secret", -1*time.Second)
	tok, _, err := issuer.Issue(&models.User{ID: 1})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = issuer.Validate(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for expired token, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := newTestIssuer("right-secret", time.Hour).Issue(&models.User{ID: 2})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = newTestIssuer("wrong-secret", time.Hour).Validate(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestValidate_WrongIssuerOrAudience(t *testing.T) {
	t.Parallel()

	tok, _, err := NewTokenIssuer([]byte("k"), "other-issuer", "other-client", time.Hour).
		Issue(&models.User{ID: 3})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = newTestIssuer("k", time.Hour).Validate(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for issuer/audience mismatch, got %v", err)
	}
}

func TestValidate_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := newTestIssuer("k", time.Hour).Validate("not.a.jwt")
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for malformed token, got %v", err)
	}
}
