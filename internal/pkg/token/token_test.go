package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIssuePairAndVerify(t *testing.T) {
	svc := NewService("test_secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	pair, err := svc.IssuePair(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	access, err := svc.Verify(pair.Access)
	assert.NoError(t, err)
	assert.Equal(t, userID, access.UserID)
	assert.Equal(t, TypeAccess, access.TokenType)
	assert.NotEmpty(t, access.JTI)

	refresh, err := svc.Verify(pair.Refresh)
	assert.NoError(t, err)
	assert.Equal(t, userID, refresh.UserID)
	assert.Equal(t, TypeRefresh, refresh.TokenType)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewService("secret_a", time.Hour, 24*time.Hour)
	verifier := NewService("secret_b", time.Hour, 24*time.Hour)

	pair, err := issuer.IssuePair(uuid.New())
	assert.NoError(t, err)

	_, err = verifier.Verify(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	svc := NewService("test_secret", -time.Minute, -time.Minute)

	pair, err := svc.IssuePair(uuid.New())
	assert.NoError(t, err)

	_, err = svc.Verify(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewService("test_secret", time.Hour, 24*time.Hour)

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
