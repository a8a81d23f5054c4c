package session

import (
	"errors"
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/sneha-510/smart-coalmine-system/config"
)

func newTestManager(sessionTTL, refreshTTL time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		SessionSecret:   "test-secret-key-for-signing",
		SessionTTL:      sessionTTL,
		RefreshTokenTTL: refreshTTL,
	})
}

func TestIssueAndParseSessionToken(t *testing.T) {
	m := newTestManager(time.Hour, 24*time.Hour)

	token, err := m.IssueSessionToken(42, "worker")
	if err != nil {
		t.Fatalf("IssueSessionToken: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", claims.UserID)
	}
	if claims.Role != "worker" {
		t.Errorf("expected role=worker, got %s", claims.Role)
	}
	if claims.TokenType != "session" {
		t.Errorf("expected token_type=session, got %s", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("expected a jti")
	}
}

func TestRefreshTokenType(t *testing.T) {
	m := newTestManager(time.Hour, 24*time.Hour)

	token, err := m.IssueRefreshToken(42, "worker")
	if err != nil {
		t.Fatalf("IssueRefreshToken: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("expected token_type=refresh, got %s", claims.TokenType)
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := newTestManager(-time.Minute, 24*time.Hour)

	token, err := m.IssueSessionToken(42, "worker")
	if err != nil {
		t.Fatalf("IssueSessionToken: %v", err)
	}

	_, err = m.ParseToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got: %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager(time.Hour, 24*time.Hour)
	token, err := m.IssueSessionToken(42, "worker")
	if err != nil {
		t.Fatalf("IssueSessionToken: %v", err)
	}

	other := NewManager(&config.AuthConfig{
		SessionSecret:   "a-completely-different-secret",
		SessionTTL:      time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	})

	_, err = other.ParseToken(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got: %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager(time.Hour, 24*time.Hour)

	_, err := m.ParseToken("not.a.token")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got: %v", err)
	}
}

func TestUniqueJTIs(t *testing.T) {
	m := newTestManager(time.Hour, 24*time.Hour)

	first, _ := m.IssueSessionToken(42, "worker")
	second, _ := m.IssueSessionToken(42, "worker")

	c1, err := m.ParseToken(first)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	c2, err := m.ParseToken(second)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if c1.ID == c2.ID {
		t.Error("two tokens should never share a jti")
	}
}

func TestParseToken_MissingExpiry(t *testing.T) {
	m := newTestManager(time.Hour, 24*time.Hour)

	// Validly signed but without exp; such a token must be rejected
	// rather than parsed into claims with a nil ExpiresAt.
	claims := Claims{
		UserID:    42,
		Role:      "worker",
		TokenType: "session",
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:       "no-expiry-jti",
			IssuedAt: jwtv5.NewNumericDate(time.Now()),
			Issuer:   "smart-coalmine-system",
		},
	}
	token, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).
		SignedString([]byte("test-secret-key-for-signing"))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := m.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got: %v", err)
	}
}
