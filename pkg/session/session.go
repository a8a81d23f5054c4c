// Package session issues and verifies signed session tokens.
// The client never supplies a raw user id; identity is always resolved
// from a token signed by the server.
package session

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sneha-510/smart-coalmine-system/config"
)

var (
	ErrTokenExpired = errors.New("session token expired")
	ErrTokenInvalid = errors.New("session token invalid")
)

// Claims are the custom claims carried by a session token.
type Claims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"` // "session" | "refresh"
	jwtv5.RegisteredClaims
}

// Manager signs and parses session tokens.
type Manager struct {
	secret          []byte
	sessionTTL      time.Duration
	refreshTokenTTL time.Duration
}

// NewManager creates a session token manager from auth configuration.
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:          []byte(cfg.SessionSecret),
		sessionTTL:      cfg.SessionTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
	}
}

// SessionTTL returns the lifetime of a session token (and of its cookie).
func (m *Manager) SessionTTL() time.Duration {
	return m.sessionTTL
}

// IssueSessionToken signs a session token for the given user.
func (m *Manager) IssueSessionToken(userID uint, role string) (string, error) {
	return m.issue(userID, role, "session", m.sessionTTL)
}

// IssueRefreshToken signs a refresh token for the given user.
func (m *Manager) IssueRefreshToken(userID uint, role string) (string, error) {
	return m.issue(userID, role, "refresh", m.refreshTokenTTL)
}

func (m *Manager) issue(userID uint, role, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(ttl)),
			Issuer:    "smart-coalmine-system",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken verifies a token and returns its claims.
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	// Every token this manager issues carries exp; callers rely on it.
	if claims.ExpiresAt == nil {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
