package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ev-storefront/internal/domain"
)

type TokenIssuer interface {
	Issue(identity domain.Identity) (string, error)
}

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}

type claims struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTManager issues and verifies HS256 bearer tokens signed with a shared secret.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *JWTManager) Issue(identity domain.Identity) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		ID:    identity.UserID.String(),
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify returns domain.ErrInvalidCredential for every rejected token; the
// underlying reason is wrapped for logging only.
func (m *JWTManager) Verify(_ context.Context, token string) (domain.Identity, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return domain.Identity{}, errors.Join(domain.ErrInvalidCredential, err)
	}

	userID, err := uuid.Parse(c.ID)
	if err != nil {
		return domain.Identity{}, errors.Join(domain.ErrInvalidCredential, fmt.Errorf("malformed id claim: %w", err))
	}
	return domain.Identity{UserID: userID, Email: c.Email}, nil
}
