package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodecRequiresSecret(t *testing.T) {
	_, err := NewCodec("", time.Hour)
	assert.Error(t, err)
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	codec, err := NewCodec("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := codec.Issue("user@example.com", "org_123")
	require.NoError(t, err)

	claims, ok := codec.Verify(token)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "org_123", claims.OrganizationId)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	codec, err := NewCodec("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := codec.Issue("user@example.com", "org_123")
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "aaaa"
	_, ok := codec.Verify(tampered)
	assert.False(t, ok)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	issuer, err := NewCodec("secret-a", time.Hour)
	require.NoError(t, err)
	verifier, err := NewCodec("secret-b", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("user@example.com", "org_123")
	require.NoError(t, err)

	_, ok := verifier.Verify(token)
	assert.False(t, ok)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	// NewCodec floors non-positive TTLs to the default, so build an already
	// expired token with the smallest representable TTL.
	codec, err := NewCodec("test-secret", time.Nanosecond)
	require.NoError(t, err)

	token, err := codec.Issue("user@example.com", "org_123")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, ok := codec.Verify(token)
	assert.False(t, ok)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	codec, err := NewCodec("test-secret", time.Hour)
	require.NoError(t, err)

	_, ok := codec.Verify("not-a-jwt")
	assert.False(t, ok)
}

func TestDefaultTTL(t *testing.T) {
	codec, err := NewCodec("test-secret", 0)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, codec.TTL())
}
