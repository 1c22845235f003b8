package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/taskflow-server/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents session JWT claims. Subject carries the user ID.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewJWT creates a new JWT token manager with the provided secret key and session lifetime.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	return &JWT{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

var _ model.TokenManager = (*JWT)(nil)

// GenerateSessionToken signs a token carrying the identity claim.
func (j *JWT) GenerateSessionToken(claim model.IdentityClaim) (string, time.Time, error) {
	now := j.now()
	expiresAt := now.Add(j.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claim.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: claim.Email,
		Name:  claim.Name,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, expiresAt.Truncate(time.Second), nil
}

// ParseSessionToken validates signature, algorithm and expiry of a session token.
func (j *JWT) ParseSessionToken(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return model.TokenClaims{}, fmt.Errorf("%w: %v", model.ErrTokenMalformed, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return model.TokenClaims{}, fmt.Errorf("%w: %v", model.ErrTokenExpired, err)
		default:
			return model.TokenClaims{}, fmt.Errorf("%w: %v", model.ErrTokenInvalid, err)
		}
	}
	if !token.Valid {
		return model.TokenClaims{}, model.ErrTokenInvalid
	}
	if claims.Subject == "" {
		return model.TokenClaims{}, fmt.Errorf("%w: missing subject", model.ErrTokenInvalid)
	}

	result := model.TokenClaims{
		Subject:   claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	return result, nil
}
