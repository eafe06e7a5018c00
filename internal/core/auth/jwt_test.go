package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTer(ttl time.Duration) *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "booknest", TTL: ttl}
}

func TestIssueAndParse(t *testing.T) {
	j := newJWTer(time.Hour)

	token, err := j.Issue(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "booknest", claims.Issuer)
}

func TestParseNonAdminClaim(t *testing.T) {
	j := newJWTer(time.Hour)

	token, err := j.Issue(7, false)
	require.NoError(t, err)

	claims, err := j.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UID)
	assert.False(t, claims.IsAdmin)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := newJWTer(time.Hour).Issue(1, false)
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("different"), Issuer: "booknest", TTL: time.Hour}
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	// beyond the 60s leeway
	j := newJWTer(-2 * time.Minute)
	token, err := j.Issue(1, false)
	require.NoError(t, err)

	_, err = j.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := newJWTer(time.Hour).Parse("not.a.token")
	assert.Error(t, err)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	minted := &JWTer{Secret: []byte("test-secret"), Issuer: "someone-else", TTL: time.Hour}
	token, err := minted.Issue(1, false)
	require.NoError(t, err)

	_, err = newJWTer(time.Hour).Parse(token)
	assert.Error(t, err)
}
