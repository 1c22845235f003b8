package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/taskflow-server/internal/model"
)

func TestJWT_SessionToken_Roundtrip(t *testing.T) {
	t.Parallel()

	j := NewJWT("secret", time.Hour)
	claim := model.IdentityClaim{ID: uuid.New(), Email: "alice@example.com", Name: "Alice"}

	token, expiresAt, err := j.GenerateSessionToken(claim)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 2*time.Second)

	got, err := j.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, claim.ID.String(), got.Subject)
	assert.Equal(t, claim.Email, got.Email)
	assert.Equal(t, claim.Name, got.Name)
	assert.Equal(t, expiresAt.Unix(), got.ExpiresAt.Unix())
	assert.False(t, got.IssuedAt.IsZero())
}

func TestJWT_ParseSessionToken_Errors(t *testing.T) {
	t.Parallel()

	claim := model.IdentityClaim{ID: uuid.New(), Email: "bob@example.com", Name: "Bob"}

	expired := NewJWT("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, _, err := expired.GenerateSessionToken(claim)
	require.NoError(t, err)

	foreignToken, _, err := NewJWT("other-secret", time.Hour).GenerateSessionToken(claim)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claim.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: claim.ID.String()},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "garbage", token: "not-a-jwt", wantErr: model.ErrTokenMalformed},
		{name: "empty", token: "", wantErr: model.ErrTokenMalformed},
		{name: "expired", token: expiredToken, wantErr: model.ErrTokenExpired},
		{name: "foreign signature", token: foreignToken, wantErr: model.ErrTokenInvalid},
		{name: "alg none", token: noneToken, wantErr: model.ErrTokenInvalid},
		{name: "missing exp", token: noExpiry, wantErr: model.ErrTokenInvalid},
		{name: "missing subject", token: noSubject, wantErr: model.ErrTokenInvalid},
	}

	j := NewJWT("secret", time.Hour)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := j.ParseSessionToken(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
