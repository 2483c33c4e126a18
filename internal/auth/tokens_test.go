package auth

import (
	"crypto/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviethruster/thruster-server/internal/domain"
)

func newTestTokenService(t *testing.T, duration time.Duration) *TokenService {
	t.Helper()

	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	svc, err := NewTokenService(key, duration)
	require.NoError(t, err)
	return svc
}

func TestGenerateAndVerifyAccessToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	user := &domain.User{ID: "user-1", Username: "alex"}

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "alex", claims.Username)
	assert.NotEmpty(t, claims.TokenID)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	_, err := svc.VerifyAccessToken("v4.local.garbage")
	require.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	token, err := svc.GenerateAccessToken(&domain.User{ID: "user-1", Username: "alex"})
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(token)
	require.Error(t, err)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	svc1 := newTestTokenService(t, time.Hour)
	svc2 := newTestTokenService(t, time.Hour)

	token, err := svc1.GenerateAccessToken(&domain.User{ID: "user-1", Username: "alex"})
	require.NoError(t, err)

	_, err = svc2.VerifyAccessToken(token)
	require.Error(t, err)
}

func TestNewTokenServiceRejectsBadKey(t *testing.T) {
	_, err := NewTokenService([]byte("too short"), time.Hour)
	require.Error(t, err)
}

func TestLoadOrGenerateKeyRoundTrip(t *testing.T) {
	dir := t.TempDir()

	key1, err := LoadOrGenerateKey(dir)
	require.NoError(t, err)
	assert.Len(t, key1, 32)

	key2, err := LoadOrGenerateKey(dir)
	require.NoError(t, err)
	assert.Equal(t, key1, key2, "the saved key is reused on subsequent loads")
}
