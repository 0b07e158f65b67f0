package auth

import (
	"errors"
	"fmt"
	"time"

	"affiliate_portal/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultSessionTTL = 24 * time.Hour

var ErrInvalidSession = errors.New("invalid session token")

// SessionManager issues and verifies signed session tokens carrying the
// authenticated principal.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

type sessionClaims struct {
	Admin bool `json:"adm,omitempty"`
	jwt.RegisteredClaims
}

func (m *SessionManager) Issue(principal *model.Principal) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Admin: principal.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (m *SessionManager) Verify(tokenString string) (*model.Principal, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}

	return &model.Principal{
		Subject: claims.Subject,
		Admin:   claims.Admin,
	}, nil
}
