// Package token issues and verifies the bearer tokens presented by the
// seller client in the Authorization header.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "yemi-seller"

// ErrInvalidToken is returned when a token fails signature or claim checks.
var ErrInvalidToken = errors.New("invalid token")

// Manager signs and parses seller bearer tokens with a shared HS256 secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager constructs a Manager. secret must be non-empty and ttl positive.
func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("empty signing secret")
	}
	if ttl <= 0 {
		return nil, errors.New("invalid token TTL")
	}
	return &Manager{secret: []byte(secret), ttl: ttl}, nil
}

// Issue returns a signed bearer token whose subject is the seller ID.
func (m *Manager) Issue(sellerID string) (string, error) {
	if sellerID == "" {
		return "", errors.New("empty seller ID")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sellerID,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the token signature, issuer, and expiry, and returns the
// seller ID from the subject claim.
func (m *Manager) Parse(tokenStr string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
