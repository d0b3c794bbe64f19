package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	svc, err := NewTokenService("test-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)
	return svc
}

func TestNewTokenServiceUnknownAlgorithm(t *testing.T) {
	_, err := NewTokenService("test-secret", "HS9000", time.Minute)
	assert.Error(t, err)
}

func TestIssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t)

	token, expiresAt, err := svc.Issue("admin@superwise.ai")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims := svc.Verify(token)
	require.NotNil(t, claims)
	assert.Equal(t, "admin@superwise.ai", claims.Subject)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := newTestTokenService(t)

	token, _, err := svc.IssueWithTTL("admin@superwise.ai", -time.Minute)
	require.NoError(t, err)

	assert.Nil(t, svc.Verify(token))
}

func TestVerifyMalformedToken(t *testing.T) {
	svc := newTestTokenService(t)

	assert.Nil(t, svc.Verify(""))
	assert.Nil(t, svc.Verify("not-a-token"))
	assert.Nil(t, svc.Verify("aaa.bbb.ccc"))
}

func TestVerifyTamperedToken(t *testing.T) {
	svc := newTestTokenService(t)

	token, _, err := svc.Issue("admin@superwise.ai")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	assert.Nil(t, svc.Verify(tampered))
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := newTestTokenService(t)
	verifier, err := NewTokenService("other-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)

	token, _, err := issuer.Issue("admin@superwise.ai")
	require.NoError(t, err)

	assert.Nil(t, verifier.Verify(token))
}

func TestVerifyRejectsDifferentAlgorithm(t *testing.T) {
	issuer, err := NewTokenService("test-secret", "HS512", 30*time.Minute)
	require.NoError(t, err)
	verifier := newTestTokenService(t)

	token, _, err := issuer.Issue("admin@superwise.ai")
	require.NoError(t, err)

	assert.Nil(t, verifier.Verify(token))
}
