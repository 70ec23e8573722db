package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidly/rental-system/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Sign(domain.Identity{UserID: "u1", IsAdmin: true})
	require.NoError(t, err)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, domain.Identity{UserID: "u1", IsAdmin: true}, identity)
}

func TestTokenService_DefaultsToNonAdmin(t *testing.T) {
	svc := NewTokenService("secret", 0)

	token, err := svc.Sign(domain.Identity{UserID: "u2"})
	require.NoError(t, err)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.False(t, identity.IsAdmin)
	assert.Equal(t, defaultTokenTTL, svc.ttl)
}

func TestTokenService_Verify_Rejects(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	valid, err := svc.Sign(domain.Identity{UserID: "u1"})
	require.NoError(t, err)

	otherSecret, err := NewTokenService("other", time.Hour).Sign(domain.Identity{UserID: "u1"})
	require.NoError(t, err)

	expiredSvc := NewTokenService("secret", time.Hour)
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredSvc.Sign(domain.Identity{UserID: "u1"})
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"empty":        "",
		"malformed":    "not-a-token",
		"tampered":     valid + "x",
		"wrong secret": otherSecret,
		"expired":      expired,
		"alg none":     unsigned,
		"alg HS512":    hs512,
		"no expiry":    noExpiry,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		})
	}
}
