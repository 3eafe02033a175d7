package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demandcast/internal/auth"
	"demandcast/internal/config"
	"demandcast/internal/domain"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		Secret:        "test-secret",
		SessionExpiry: time.Hour,
		Issuer:        "demandcast-test",
	}
}

func TestSessions_IssueAndValidate(t *testing.T) {
	sessions := auth.NewSessions(testAuthConfig())
	sessionID := uuid.New()

	token, expiry, err := sessions.Issue(sessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiry.After(time.Now()))

	claims, err := sessions.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, "demandcast-test", claims.Issuer)
}

func TestSessions_ValidateRejectsGarbage(t *testing.T) {
	sessions := auth.NewSessions(testAuthConfig())

	_, err := sessions.Validate("not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestSessions_ValidateRejectsWrongSecret(t *testing.T) {
	sessions := auth.NewSessions(testAuthConfig())
	token, _, err := sessions.Issue(uuid.New())
	require.NoError(t, err)

	other := auth.NewSessions(config.AuthConfig{
		Secret:        "different-secret",
		SessionExpiry: time.Hour,
		Issuer:        "demandcast-test",
	})
	_, err = other.Validate(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestSessions_ValidateRejectsExpired(t *testing.T) {
	sessions := auth.NewSessions(config.AuthConfig{
		Secret:        "test-secret",
		SessionExpiry: -time.Minute,
		Issuer:        "demandcast-test",
	})
	token, _, err := sessions.Issue(uuid.New())
	require.NoError(t, err)

	_, err = sessions.Validate(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerifyAdminKey(t *testing.T) {
	hash, err := auth.HashAdminKey("swordfish")
	require.NoError(t, err)

	assert.NoError(t, auth.VerifyAdminKey(hash, "swordfish"))
	assert.ErrorIs(t, auth.VerifyAdminKey(hash, "wrong"), domain.ErrUnauthorized)
	assert.ErrorIs(t, auth.VerifyAdminKey("", "swordfish"), domain.ErrUnauthorized)
	assert.ErrorIs(t, auth.VerifyAdminKey(hash, ""), domain.ErrUnauthorized)
}
