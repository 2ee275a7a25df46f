package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func newTestService(t *testing.T, secret string, lifetime time.Duration, now time.Time) *hmacJWTService {
	t.Helper()
	svc, err := newHMACJWTService(secret, lifetime, func() time.Time { return now })
	require.NoError(t, err)
	return svc
}

func signRaw(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	assert.Error(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 0})
	assert.Error(t, err)

	svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 60 * time.Minute
	userID := uuid.New()
	svc := newTestService(t, testSecret, lifetime, fixedTime)

	token, expiresAt, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, fixedTime.Add(lifetime).Equal(expiresAt))

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)

	other, _, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	assert.NotEqual(t, token, other, "jti makes every token unique")
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 60 * time.Minute
	userID := uuid.New()

	issuer := newTestService(t, testSecret, lifetime, fixedTime)
	validToken, _, err := issuer.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	accessClaims := func(tokenType string, uid uuid.UUID) jwtCustomClaims {
		return jwtCustomClaims{
			UserID:    uid,
			TokenType: tokenType,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   uid.String(),
				IssuedAt:  jwt.NewNumericDate(fixedTime),
				ExpiresAt: jwt.NewNumericDate(fixedTime.Add(lifetime)),
			},
		}
	}

	tests := []struct {
		name    string
		svc     *hmacJWTService
		token   string
		wantErr error
	}{
		{
			name:  "valid token",
			svc:   issuer,
			token: validToken,
		},
		{
			name:  "within clock skew after expiry",
			svc:   newTestService(t, testSecret, lifetime, fixedTime.Add(lifetime+10*time.Second)),
			token: validToken,
		},
		{
			name:    "expired token",
			svc:     newTestService(t, testSecret, lifetime, fixedTime.Add(lifetime+time.Hour)),
			token:   validToken,
			wantErr: ErrExpiredToken,
		},
		{
			name:    "issued in the future",
			svc:     newTestService(t, testSecret, lifetime, fixedTime.Add(-time.Hour)),
			token:   validToken,
			wantErr: ErrTokenNotYetValid,
		},
		{
			name:    "invalid signature",
			svc:     newTestService(t, "wrong-secret-that-is-long-enough-for-testing", lifetime, fixedTime),
			token:   validToken,
			wantErr: ErrInvalidSignature,
		},
		{
			name:    "malformed token",
			svc:     issuer,
			token:   "this.is.not.a.valid.jwt.token",
			wantErr: ErrMalformedToken,
		},
		{
			name:    "empty token",
			svc:     issuer,
			token:   "",
			wantErr: ErrMalformedToken,
		},
		{
			name:    "HS512 rejected",
			svc:     issuer,
			token:   signRaw(t, jwt.SigningMethodHS512, []byte(testSecret), accessClaims(TokenTypeAccess, userID)),
			wantErr: ErrInvalidSignature,
		},
		{
			name:    "unsigned token rejected",
			svc:     issuer,
			token:   signRaw(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, accessClaims(TokenTypeAccess, userID)),
			wantErr: ErrInvalidSignature,
		},
		{
			name:    "wrong token type",
			svc:     issuer,
			token:   signRaw(t, jwt.SigningMethodHS256, []byte(testSecret), accessClaims("refresh", userID)),
			wantErr: ErrWrongTokenType,
		},
		{
			name:    "missing user id",
			svc:     issuer,
			token:   signRaw(t, jwt.SigningMethodHS256, []byte(testSecret), accessClaims(TokenTypeAccess, uuid.Nil)),
			wantErr: ErrMalformedToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := tt.svc.ValidateToken(context.Background(), tt.token)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, userID, claims.UserID)
				return
			}

			require.Error(t, err)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
